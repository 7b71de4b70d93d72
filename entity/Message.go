package entity

import (
	"time"
)

const (
	SenderCustomer = "customer"
	SenderAdmin    = "admin"
)

type Message struct {
	ID     string `gorm:"primaryKey" json:"id"`
	Sender string `json:"sender"`
	Body   string `json:"message"`

	// Contact details, customer-sent messages only.
	CustomerName  string `json:"customer_name,omitempty"`
	CustomerEmail string `json:"customer_email,omitempty"`
	CustomerPhone string `json:"customer_phone,omitempty"`

	// Flips false -> true only.
	IsRead bool `json:"is_read"`

	// Admin replies reference the message they answer.
	ReplyTo *string `json:"reply_to,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

func (Message) TableName() string { return "messages" }
