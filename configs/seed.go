package configs

import (
	"encoding/json"
	"log"

	"github.com/Xebarter/Manziz/entity"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
)

// SeedAdmin creates the panel account on first boot.
func SeedAdmin(cfg *Config) error {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	if err := db.Model(&entity.Admin{}).Where("email = ?", cfg.AdminEmail).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("admin already exists:", cfg.AdminEmail)
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := entity.Admin{
		ID:           uuid.NewString(),
		Email:        cfg.AdminEmail,
		PasswordHash: string(hash),
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	log.Println("admin seeded:", cfg.AdminEmail)
	return nil
}

// SampleMenu is the canned storefront content: seeded on an empty database
// and served by the degraded-mode fallback source when live reads fail.
func SampleMenu() []entity.MenuItem {
	items := []struct {
		name, desc, category string
		price                int64
		favorite             bool
		tags                 []string
	}{
		{"Classic Beef Burger", "Flame-grilled beef patty with lettuce, tomato and house sauce", entity.CategoryBurgers, 18000, true, []string{"beef", "bestseller"}},
		{"Double Cheese Burger", "Two patties, double cheddar, caramelized onions", entity.CategoryBurgers, 25000, true, []string{"beef", "cheese"}},
		{"Crispy Chicken Burger", "Buttermilk fried chicken breast with slaw", entity.CategoryBurgers, 20000, false, []string{"chicken"}},
		{"Grilled Chicken Quarter", "Charcoal-grilled quarter chicken with spice rub", entity.CategoryChicken, 22000, true, []string{"grilled"}},
		{"Chicken Wings (6pc)", "Choice of BBQ or hot sauce", entity.CategoryChicken, 17000, false, []string{"wings", "spicy"}},
		{"Masala Chips", "Hand-cut fries tossed in masala spice", entity.CategorySides, 10000, true, []string{"vegetarian"}},
		{"Plain Chips", "Hand-cut fries, salted", entity.CategorySides, 8000, false, []string{"vegetarian"}},
		{"Fresh Passion Juice", "Squeezed to order", entity.CategoryDrinks, 6000, false, []string{"fresh", "cold"}},
		{"Soda (500ml)", "Assorted flavors", entity.CategoryDrinks, 3000, false, nil},
		{"Chocolate Brownie", "Warm brownie with chocolate drizzle", entity.CategoryDesserts, 12000, true, []string{"sweet"}},
	}

	out := make([]entity.MenuItem, 0, len(items))
	for _, it := range items {
		tags := it.tags
		if tags == nil {
			tags = []string{}
		}
		b, _ := json.Marshal(tags)
		out = append(out, entity.MenuItem{
			ID:          uuid.NewString(),
			Name:        it.name,
			Description: it.desc,
			Category:    it.category,
			Price:       it.price,
			IsAvailable: true,
			IsFavorite:  it.favorite,
			Tags:        datatypes.JSON(b),
		})
	}
	return out
}

// SeedMenu populates an empty menu with the sample items.
func SeedMenu() error {
	var count int64
	if err := db.Model(&entity.MenuItem{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	items := SampleMenu()
	if err := db.Create(&items).Error; err != nil {
		return err
	}
	log.Println("menu seeded with sample items")
	return nil
}
