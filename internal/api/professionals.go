package api

import (
	"net/http"                 // HTTP status codes
	"cglines/internal/catalog" // Professional directory
	"cglines/internal/domain"  // Importing domain models
	"cglines/internal/review"  // Review service

	"github.com/gin-gonic/gin" // Gin web framework
	"gorm.io/gorm"             // GORM ORM library
)

// ReviewRequest represents a submitted review
type ReviewRequest struct {
	Rating  int    `json:"rating" binding:"required"` // Star rating, 1 to 5
	Comment string `json:"comment"`                   // Review text
}

// ListProfessionalsHandler returns the professional directory
func ListProfessionalsHandler(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"professionals": cat.All()}) // Return every catalog entry
	}
}

// GetProfessionalHandler returns a single professional by id
func GetProfessionalHandler(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		professional, ok := cat.ByID(c.Param("id")) // Look the professional up
		if !ok {
			// If not found, return not found
			c.JSON(http.StatusNotFound, gin.H{"error": "Professional not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"professional": professional}) // Return the entry
	}
}

// ListReviewsHandler returns the reviews for a professional
func ListReviewsHandler(svc *review.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		reviews, err := svc.List(c.Request.Context(), c.Param("id")) // Fetch newest first
		if err != nil {
			serviceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"reviews": reviews}) // Return the reviews
	}
}

// AddReviewHandler stores a review from the authenticated user
func AddReviewHandler(db *gorm.DB, svc *review.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c) // Get userID from context
		if !ok {
			return
		}
		var req ReviewRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		var user domain.User // Fetch the reviewer for the display name
		if err := db.First(&user, userID).Error; err != nil {
			// If user not found, return unauthorized
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		// Store the review through the service
		r, err := svc.Add(c.Request.Context(), userID, user.Name, c.Param("id"), req.Rating, req.Comment)
		if err != nil {
			serviceError(c, err)
			return
		}
		// Return the created review
		c.JSON(http.StatusCreated, gin.H{"message": "Review submitted", "review": r})
	}
}
