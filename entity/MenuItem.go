package entity

import (
	"time"

	"gorm.io/datatypes"
)

// Menu categories shown in the storefront tabs.
const (
	CategoryBurgers  = "burgers"
	CategoryChicken  = "chicken"
	CategorySides    = "sides"
	CategoryDrinks   = "drinks"
	CategoryDesserts = "desserts"
)

func ValidCategory(c string) bool {
	switch c {
	case CategoryBurgers, CategoryChicken, CategorySides, CategoryDrinks, CategoryDesserts:
		return true
	}
	return false
}

type MenuItem struct {
	ID          string `gorm:"primaryKey" json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	Category    string `json:"category"`

	// Price in UGX, no decimals.
	Price int64 `json:"price"`

	// Toggled independently of full edits.
	IsAvailable bool `json:"is_available"`
	IsFavorite  bool `json:"is_favorite"`

	Tags datatypes.JSON `json:"tags"` // []string

	CreatedAt time.Time `json:"created_at"`
}

func (MenuItem) TableName() string { return "menu_items" }
