package main

import (
	"context"                    // context package is needed for Redis operations
	"log"                        // log package is needed for logging
	"cglines/internal/api"       // Custom package for API handlers
	"cglines/internal/booking"   // Booking orchestrator
	"cglines/internal/catalog"   // Professional directory
	"cglines/internal/config"    // Custom package for configuration
	"cglines/internal/middleware" // Custom package for middleware
	"cglines/internal/review"    // Review service
	"cglines/internal/store"     // Persistence layer
	"cglines/internal/wallet"    // Wallet ledger

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
	"gorm.io/driver/mysql"         // MySQL driver for GORM
	"gorm.io/gorm"                 // GORM ORM library
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Setup Data Source Name (DSN) and connect to the database
	dsn := cfg.DBUser + ":" + cfg.DBPassword + "@tcp(" + cfg.DBHost + ":" + cfg.DBPort + ")/" + cfg.DBName + "?parseTime=true"
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err) // Fatal error if DB connection fails
	}

	// Setup Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr, // Redis server address
		Password: cfg.RedisPass, // Redis password
		DB:       cfg.RedisDB,   // Redis database number
	})

	// Test Redis connection
	_, err = redisClient.Ping(context.Background()).Result()
	if err != nil {
		logrus.Fatalf("failed to connect to Redis: %v", err)
	}

	// Wire the services: one store, the ledger over it, the orchestrator
	// over the ledger plus the professional catalog
	dataStore := store.NewGormStore(db)
	professionals := catalog.New()
	ledger := wallet.NewLedger(dataStore)
	bookings := booking.NewService(ledger, dataStore, professionals, cfg.AppointmentCost)
	reviews := review.NewService(dataStore, professionals)

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup Gin
	r := gin.Default() // Gin router instance

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	// Auth routes
	r.POST("/user", api.RegisterHandler(db))            // Registration endpoint
	r.GET("/user", api.LoginHandler(db, cfg.JWTSecret)) // Login endpoint

	// Public catalog routes
	r.GET("/professionals", api.ListProfessionalsHandler(professionals))     // Directory endpoint
	r.GET("/professionals/:id", api.GetProfessionalHandler(professionals))   // Single professional endpoint
	r.GET("/professionals/:id/reviews", api.ListReviewsHandler(reviews))     // Review list endpoint
	r.GET("/coins/packages", api.CoinPackagesHandler())                      // Coin package endpoint

	// Wallet routes (protected by JWT)
	walletGroup := r.Group("/wallet")
	walletGroup.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret))                           // Protect wallet routes with JWT middleware
	walletGroup.GET("", api.GetWalletHandler(ledger, redisClient))                         // Wallet record endpoint
	walletGroup.GET("/balance", api.GetBalanceHandler(ledger))                             // Balance endpoint
	walletGroup.POST("/coins", api.AddCoinsHandler(ledger, redisClient))                   // Top-up endpoint
	walletGroup.GET("/transactions", api.GetTransactionHistoryHandler(ledger, redisClient)) // Transaction history endpoint

	// Appointment routes (protected by JWT)
	apptGroup := r.Group("/appointments")
	apptGroup.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret))                  // Protect appointment routes with JWT middleware
	apptGroup.POST("", api.BookAppointmentHandler(bookings, redisClient))       // Booking endpoint
	apptGroup.GET("", api.ListAppointmentsHandler(bookings, redisClient))       // Appointment list endpoint

	// Review submission (protected by JWT)
	r.POST("/professionals/:id/reviews", middleware.JWTAuthMiddleware(cfg.JWTSecret), api.AddReviewHandler(db, reviews))

	// Admin routes (protected, admin only)
	adminGroup := r.Group("/admin")
	// Protect admin routes with JWT and AdminOnly middleware
	adminGroup.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret), middleware.AdminOnlyMiddleware(db))
	adminGroup.GET("/users", api.ListUsersHandler(db, redisClient))               // List users endpoint
	adminGroup.GET("/transactions", api.ListTransactionsHandler(db, redisClient)) // List transactions endpoint

	log.Println("Server running on " + cfg.AppPort) // Log server start
	r.Run(":" + cfg.AppPort)                        // Start the server on port cfg.AppPort
}
