package entity

import (
	"time"
)

// Reservation is created by a customer and only ever deleted by admin.
type Reservation struct {
	ID              string    `gorm:"primaryKey" json:"id"`
	Name            string    `json:"name"`
	PhoneNumber     string    `json:"phone_number"`
	ReservationTime time.Time `json:"reservation_time"`
	Guests          int       `json:"guests"`
	SpecialRequest  string    `json:"special_request,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

func (Reservation) TableName() string { return "reservations" }
