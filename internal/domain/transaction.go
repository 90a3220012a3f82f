package domain

import "time"

// Transaction types
const (
	TransactionCredit = "credit" // Coins added to a wallet
	TransactionDebit  = "debit"  // Coins deducted from a wallet
)

// Transaction Model. Transactions are append-only: once written they are
// never edited or deleted.
type Transaction struct {
	Seq           uint      `gorm:"primaryKey" json:"-"`          // Insertion order, newest has the highest Seq
	ID            string    `gorm:"uniqueIndex;not null" json:"id"` // UUID assigned at creation
	WalletID      uint      `gorm:"index" json:"-"`               // Foreign key to Wallet
	Amount        int64     `gorm:"not null" json:"amount"`       // Coins moved, always positive
	Type          string    `gorm:"not null" json:"type"`         // Transaction type: credit or debit
	Description   string    `json:"description"`                  // Free-text label
	AppointmentID *string   `json:"appointment_id,omitempty"`     // Back-reference to the Appointment that caused a debit
	Date          time.Time `json:"date"`                         // Timestamp of creation
}
