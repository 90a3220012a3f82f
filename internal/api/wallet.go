package api

import (
	"context"                  // Context for Redis operations
	"net/http"                 // HTTP status codes
	"strconv"                  // String conversion
	"time"                     // Time durations
	"cglines/internal/catalog" // Coin packages
	"cglines/internal/domain"  // Importing domain models
	"cglines/internal/utils"   // Utility functions
	"cglines/internal/wallet"  // Wallet ledger service

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
)

// AddCoinsRequest represents a coin top-up request
type AddCoinsRequest struct {
	Amount int64 `json:"amount" binding:"required,gt=0"` // Coins to add
}

// walletCacheKey builds the wallet cache key for a user
func walletCacheKey(userID uint) string {
	return "wallet:user:" + strconv.Itoa(int(userID))
}

// invalidateWalletCaches drops the wallet and transaction history caches
// after a mutation (simple version: delete the first 5 pages)
func invalidateWalletCaches(ctx context.Context, rdb *redis.Client, userID uint) {
	_ = utils.DeleteCache(ctx, rdb, walletCacheKey(userID)) // Invalidate wallet cache
	txKeyPrefix := "txhistory:user:" + strconv.Itoa(int(userID))
	for i := 1; i <= 5; i++ {
		// Delete cache entries
		_ = utils.DeleteCache(ctx, rdb, txKeyPrefix+":page:"+strconv.Itoa(i)+":size:20")
	}
}

// GetWalletHandler returns the wallet record for the authenticated user
func GetWalletHandler(ledger *wallet.Ledger, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c) // Get userID from context
		if !ok {
			return
		}
		ctx := context.Background()                          // Context for Redis operations
		cacheKey := walletCacheKey(userID)                   // Cache key for wallet
		var data domain.WalletData                           // Wallet record to hold data
		found, err := utils.GetCache(ctx, rdb, cacheKey, &data) // Try to get from cache
		// If found in cache, return it
		if err == nil && found {
			// Return cached wallet
			c.JSON(http.StatusOK, gin.H{"wallet": data, "cached": true})
			return
		}
		// If not in cache, load through the ledger (initializes on first access)
		walletData, err := ledger.GetWalletData(c.Request.Context(), userID)
		if err != nil {
			serviceError(c, err)
			return
		}
		_ = utils.SetCache(ctx, rdb, cacheKey, walletData, 60*time.Second)   // Cache the wallet for 60 seconds
		c.JSON(http.StatusOK, gin.H{"wallet": walletData, "cached": false}) // Return wallet record
	}
}

// GetBalanceHandler returns just the coin balance for the authenticated user
func GetBalanceHandler(ledger *wallet.Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c) // Get userID from context
		if !ok {
			return
		}
		balance, err := ledger.GetBalance(c.Request.Context(), userID) // Read the balance
		if err != nil {
			serviceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"balance": balance}) // Return the balance
	}
}

// AddCoinsHandler credits coins to the authenticated user's wallet
func AddCoinsHandler(ledger *wallet.Ledger, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c) // Get userID from context
		if !ok {
			return
		}
		var req AddCoinsRequest // Bind JSON request to struct
		// Validate request
		if err := c.ShouldBindJSON(&req); err != nil || req.Amount <= 0 {
			// If invalid, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid amount"})
			return
		}
		// Credit the wallet through the ledger
		walletData, err := ledger.AddCoins(c.Request.Context(), userID, req.Amount)
		if err != nil {
			serviceError(c, err)
			return
		}
		invalidateWalletCaches(context.Background(), rdb, userID) // Drop stale caches
		// Return success response
		c.JSON(http.StatusOK, gin.H{"message": "Coins added successfully", "wallet": walletData})
	}
}

// GetTransactionHistoryHandler returns the authenticated user's transactions
func GetTransactionHistoryHandler(ledger *wallet.Ledger, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c) // Get userID from context
		if !ok {
			return
		}
		page := 1      // Default page
		pageSize := 20 // Default page size
		// If page exists in query
		if p := c.Query("page"); p != "" {
			// Convert page to integer
			if v, err := strconv.Atoi(p); err == nil && v > 0 {
				page = v // Set page if valid
			}
		}
		// If page_size exists in query
		if ps := c.Query("page_size"); ps != "" {
			// Convert page_size to integer
			if v, err := strconv.Atoi(ps); err == nil && v > 0 && v <= 100 {
				pageSize = v // Set page size if valid
			}
		}
		// Redis cache key
		cacheKey := "txhistory:user:" + strconv.Itoa(int(userID)) + ":page:" + strconv.Itoa(page) + ":size:" + strconv.Itoa(pageSize)
		ctx := context.Background() // Context for Redis operations
		var cached struct {
			Transactions []domain.Transaction `json:"transactions"` // List of transactions
			Page         int                  `json:"page"`         // Current page
			PageSize     int                  `json:"page_size"`    // Page size
			Total        int                  `json:"total"`        // Total transactions
			TotalPages   int                  `json:"total_pages"`  // Total pages
		}
		// Try to get from cache
		found, err := utils.GetCache(ctx, rdb, cacheKey, &cached)
		// If found in cache, return it
		if err == nil && found {
			c.JSON(http.StatusOK, gin.H{
				"transactions": cached.Transactions, // Cached transactions
				"page":         cached.Page,         // Current page
				"page_size":    cached.PageSize,     // Page size
				"total":        cached.Total,        // Total transactions
				"total_pages":  cached.TotalPages,   // Total pages
				"cached":       true,
			})
			return
		}
		// Load the full newest-first log through the ledger
		walletData, err := ledger.GetWalletData(c.Request.Context(), userID)
		if err != nil {
			serviceError(c, err)
			return
		}
		total := len(walletData.Transactions) // Total count of transactions
		// Slice out the requested page
		start := (page - 1) * pageSize
		if start > total {
			start = total
		}
		end := start + pageSize
		if end > total {
			end = total
		}
		transactions := walletData.Transactions[start:end]
		// Calculate total pages
		totalPages := (total + pageSize - 1) / pageSize
		resp := gin.H{
			"transactions": transactions, // List of transactions
			"page":         page,         // Current page
			"page_size":    pageSize,     // Page size
			"total":        total,        // Total transactions
			"total_pages":  totalPages,   // Total pages
			"cached":       false,        // Not from cache
		}
		// Cache the result for 60 seconds
		_ = utils.SetCache(ctx, rdb, cacheKey, resp, 60*time.Second)
		c.JSON(http.StatusOK, resp) // Return transaction history
	}
}

// CoinPackagesHandler returns the predefined top-up bundles
func CoinPackagesHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"packages": catalog.CoinPackages}) // Return the bundles
	}
}
