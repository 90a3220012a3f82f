package api

import (
	"context"                  // Context for Redis operations
	"net/http"                 // HTTP status codes
	"strconv"                  // String conversion
	"time"                     // Time durations
	"cglines/internal/booking" // Booking orchestrator
	"cglines/internal/domain"  // Importing domain models
	"cglines/internal/utils"   // Utility functions

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
)

// appointmentsCacheKey builds the appointment list cache key for a user
func appointmentsCacheKey(userID uint) string {
	return "appointments:user:" + strconv.Itoa(int(userID))
}

// BookAppointmentHandler books an appointment for the authenticated user
func BookAppointmentHandler(svc *booking.Service, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c) // Get userID from context
		if !ok {
			return
		}
		var req booking.Request // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		// Run the booking flow: slot validation, payment, persistence
		appt, err := svc.Book(c.Request.Context(), userID, req)
		if err != nil {
			serviceError(c, err)
			return
		}
		// Drop stale caches: the wallet changed on coin payments and the
		// appointment list changed either way
		ctx := context.Background()
		if appt.PaymentMethod == domain.PaymentCoins {
			invalidateWalletCaches(ctx, rdb, userID)
		}
		_ = utils.DeleteCache(ctx, rdb, appointmentsCacheKey(userID))
		// Return the created appointment
		c.JSON(http.StatusCreated, gin.H{"message": "Appointment booked", "appointment": appt})
	}
}

// ListAppointmentsHandler returns the authenticated user's appointments
func ListAppointmentsHandler(svc *booking.Service, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c) // Get userID from context
		if !ok {
			return
		}
		ctx := context.Background()              // Context for Redis operations
		cacheKey := appointmentsCacheKey(userID) // Cache key for the list
		var cached []domain.Appointment          // Cached appointment list
		found, err := utils.GetCache(ctx, rdb, cacheKey, &cached)
		// If found in cache, return it
		if err == nil && found {
			c.JSON(http.StatusOK, gin.H{"appointments": cached, "cached": true})
			return
		}
		// If not in cache, fetch through the orchestrator
		appts, err := svc.List(c.Request.Context(), userID)
		if err != nil {
			serviceError(c, err)
			return
		}
		_ = utils.SetCache(ctx, rdb, cacheKey, appts, 60*time.Second)        // Cache for 60 seconds
		c.JSON(http.StatusOK, gin.H{"appointments": appts, "cached": false}) // Return the list
	}
}
