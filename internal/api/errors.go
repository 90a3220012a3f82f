package api

import (
	"errors"                  // Error inspection
	"net/http"                // HTTP status codes
	"cglines/internal/domain" // Sentinel errors

	"github.com/gin-gonic/gin" // Gin web framework
)

// serviceError translates a service error into a user-facing JSON response.
// Every failure is terminal for the request; nothing is retried here.
func serviceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidAmount):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Amount must be a positive number of coins"})
	case errors.Is(err, domain.ErrInsufficientBalance):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Insufficient balance. Please add more coins to your wallet"})
	case errors.Is(err, domain.ErrInvalidSlot):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Selected date and time is not available"})
	case errors.Is(err, domain.ErrMissingDescription):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please describe what you'd like to discuss"})
	case errors.Is(err, domain.ErrMissingExpertise):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please select your experience level"})
	case errors.Is(err, domain.ErrInvalidPaymentMethod):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Payment method must be coins or card"})
	case errors.Is(err, domain.ErrProfessionalNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Professional not found"})
	case errors.Is(err, domain.ErrInvalidRating):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please select a star rating between 1 and 5"})
	case errors.Is(err, domain.ErrMissingComment):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please enter a comment"})
	case errors.Is(err, domain.ErrPaymentFailed):
		c.JSON(http.StatusPaymentRequired, gin.H{"error": "Payment failed. Please try again"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong. Please try again"})
	}
}

// currentUserID extracts the authenticated user ID set by the JWT middleware.
func currentUserID(c *gin.Context) (uint, bool) {
	userID, exists := c.Get("userID") // Get userID from context
	if !exists {
		// If not, return unauthorized
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return 0, false
	}
	return userID.(uint), true
}
