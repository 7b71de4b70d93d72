package entity

import (
	"time"
)

// User is a customer account. Checkout works for guests too; signing in
// just pre-fills the form and associates orders with the account.
type User struct {
	ID           string    `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"uniqueIndex" json:"email"`
	PasswordHash string    `json:"-"`
	FullName     string    `json:"full_name,omitempty"`
	PhoneNumber  string    `json:"phone_number,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

func (User) TableName() string { return "users" }
