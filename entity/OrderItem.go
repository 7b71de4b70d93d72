package entity

import (
	"time"
)

// OrderItem is created atomically with its Order and never mutated after.
type OrderItem struct {
	ID         string `gorm:"primaryKey" json:"id"`
	OrderID    string `gorm:"index" json:"order_id"`
	MenuItemID string `json:"menu_item_id"`
	Quantity   int    `json:"quantity"`
	Note       string `json:"note,omitempty"`

	// Snapshot of the menu price at placement time, decoupled from
	// later menu edits.
	PriceAtTime int64 `json:"price_at_time"`

	CreatedAt time.Time `json:"created_at"`

	MenuItem *MenuItem `gorm:"foreignKey:MenuItemID" json:"menu_item,omitempty"`
}

func (OrderItem) TableName() string { return "order_items" }
