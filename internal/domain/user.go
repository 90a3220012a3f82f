package domain

// User Model
type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`           // Primary key
	Name     string `gorm:"not null" json:"name"`           // Display name
	Email    string `gorm:"unique;not null" json:"email"`   // Unique email, stored lowercase
	Password string `gorm:"not null" json:"-"`              // Hashed password
	Role     string `gorm:"default:user" json:"role"`       // Role: user or admin
	Wallet   Wallet `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"wallet"` // One-to-one relationship with Wallet
}
