package domain

import "time"

// Review Model
type Review struct {
	ID             string    `gorm:"primaryKey" json:"id"`         // UUID assigned at creation
	ProfessionalID string    `gorm:"index" json:"professional_id"` // Catalog reference
	UserID         uint      `gorm:"index" json:"user_id"`         // Foreign key to User
	UserName       string    `json:"user_name"`                    // Display name at review time
	Rating         int       `gorm:"not null" json:"rating"`       // Star rating, 1 to 5
	Comment        string    `gorm:"not null" json:"comment"`      // Review text
	Date           time.Time `json:"date"`                         // Timestamp of creation
}
