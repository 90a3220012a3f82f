package domain

// Wallet Model
type Wallet struct {
	ID      uint  `gorm:"primaryKey" json:"id"`          // Primary key
	UserID  uint  `gorm:"uniqueIndex" json:"user_id"`    // Foreign key to User
	Balance int64 `gorm:"not null;default:0" json:"balance"` // Coin balance, never negative
}

// WalletData is the wallet record handed to callers: the current balance
// plus the full transaction history, newest first.
type WalletData struct {
	Balance      int64         `json:"balance"`      // Current coin balance
	Transactions []Transaction `json:"transactions"` // Newest-first transaction log
}
