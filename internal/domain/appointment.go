package domain

import "time"

// Payment methods
const (
	PaymentCoins = "coins" // Paid from the coin wallet
	PaymentCard  = "card"  // Card payment, simulated only
)

// Appointment statuses
const (
	StatusConfirmed = "confirmed"
	StatusPending   = "pending"
	StatusCancelled = "cancelled"
)

// Appointment Model. Created only after payment succeeds and never mutated
// afterwards.
type Appointment struct {
	ID             string    `gorm:"primaryKey" json:"id"`         // UUID assigned at booking time
	UserID         uint      `gorm:"index" json:"user_id"`         // Foreign key to User
	ProfessionalID string    `gorm:"index" json:"professional_id"` // Catalog reference
	Date           string    `gorm:"not null" json:"date"`         // Selected date, e.g. 2023-06-15
	Time           string    `gorm:"not null" json:"time"`         // Selected time, e.g. 09:00 AM
	Description    string    `gorm:"not null" json:"description"`  // What the user wants to discuss
	ExpertiseLevel string    `gorm:"not null" json:"expertise_level"` // beginner, intermediate or advanced
	PaymentMethod  string    `gorm:"not null" json:"payment_method"`  // coins or card
	Cost           int64     `gorm:"not null" json:"cost"`         // Coins charged for the booking
	Status         string    `gorm:"not null" json:"status"`       // confirmed on successful creation
	CreatedAt      time.Time `json:"created_at"`                   // Timestamp of creation
}
