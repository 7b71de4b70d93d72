package entity

import (
	"time"
)

const (
	DeliveryTypeDelivery = "delivery"
	DeliveryTypePickup   = "pickup"
)

const (
	PaymentMethodOnline = "online"
	PaymentMethodCash   = "cash"
)

// Payment status of an order. pending is the only non-terminal state.
const (
	PaymentPending   = "pending"
	PaymentCompleted = "completed"
	PaymentFailed    = "failed"
)

type Order struct {
	// Generated by the placement flow before the insert, so the payment
	// gateway can carry it as the merchant reference.
	ID string `gorm:"primaryKey" json:"id"`

	CustomerName string `json:"customer_name"`
	PhoneNumber  string `json:"phone_number"`
	Email        string `json:"email"`

	DeliveryType    string `json:"delivery_type"`
	DeliveryAddress string `json:"delivery_address,omitempty"`

	OrderStatus   string `json:"order_status"`
	TotalAmount   int64  `json:"total_amount"`
	PaymentStatus string `json:"payment_status"`

	ScheduledFor *time.Time `json:"scheduled_for,omitempty"`

	// Set when a signed-in customer places the order, nil for guests.
	UserID *string `json:"user_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
}

func (Order) TableName() string { return "orders" }
