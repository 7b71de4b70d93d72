package entity

import (
	"time"
)

// Payment is one payment attempt against the gateway. A retried checkout
// produces a fresh order and a fresh payment row, never an update in place.
type Payment struct {
	ID      string `gorm:"primaryKey" json:"id"`
	OrderID string `gorm:"index" json:"order_id"`

	// Provider-assigned id for this attempt, distinct from the order id.
	TrackingID string `gorm:"index" json:"tracking_id"`
	Provider   string `json:"provider"`

	// "initiated" on creation, then whatever the provider reports.
	Status           string `json:"status"`
	ConfirmationCode string `json:"confirmation_code,omitempty"`
	PaymentMethod    string `json:"payment_method,omitempty"`
	Amount           int64  `json:"amount"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Payment) TableName() string { return "payments" }
