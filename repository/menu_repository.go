package repository

import (
	"errors"

	"github.com/Xebarter/Manziz/apperr"
	"github.com/Xebarter/Manziz/entity"

	"gorm.io/gorm"
)

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

// List returns menu items newest first, optionally filtered by category
// and availability.
func (r *MenuRepository) List(category string, availableOnly bool) ([]entity.MenuItem, error) {
	q := r.DB.Model(&entity.MenuItem{}).Order("created_at DESC")
	if category != "" {
		q = q.Where("category = ?", category)
	}
	if availableOnly {
		q = q.Where("is_available = ?", true)
	}
	var items []entity.MenuItem
	err := q.Find(&items).Error
	return items, err
}

// ListFavorites returns the homepage highlight items: favorited AND
// available, newest first.
func (r *MenuRepository) ListFavorites(limit int) ([]entity.MenuItem, error) {
	if limit <= 0 {
		limit = 6
	}
	var items []entity.MenuItem
	err := r.DB.
		Where("is_favorite = ? AND is_available = ?", true, true).
		Order("created_at DESC").Limit(limit).
		Find(&items).Error
	return items, err
}

func (r *MenuRepository) Get(id string) (*entity.MenuItem, error) {
	var item entity.MenuItem
	if err := r.DB.First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (r *MenuRepository) Create(item *entity.MenuItem) error {
	return r.DB.Create(item).Error
}

func (r *MenuRepository) Update(item *entity.MenuItem) error {
	return r.DB.Save(item).Error
}

func (r *MenuRepository) Delete(id string) error {
	res := r.DB.Delete(&entity.MenuItem{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

// SetAvailability flips the availability flag without touching the rest
// of the row.
func (r *MenuRepository) SetAvailability(id string, available bool) error {
	return r.toggle(id, "is_available", available)
}

// SetFavorite flips the homepage highlight flag.
func (r *MenuRepository) SetFavorite(id string, favorite bool) error {
	return r.toggle(id, "is_favorite", favorite)
}

func (r *MenuRepository) toggle(id, column string, value bool) error {
	res := r.DB.Model(&entity.MenuItem{}).Where("id = ?", id).Update(column, value)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.ErrNotFound
	}
	return nil
}
