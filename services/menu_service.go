package services

import (
	"encoding/json"
	"log"

	"github.com/Xebarter/Manziz/apperr"
	"github.com/Xebarter/Manziz/entity"
	"github.com/Xebarter/Manziz/repository"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// MenuSource is the degraded-mode strategy: reads come from the live
// database, and when that fails the service falls back to canned content
// instead of leaving the storefront blank.
type MenuSource interface {
	List(category string, availableOnly bool) ([]entity.MenuItem, error)
	Favorites(limit int) ([]entity.MenuItem, error)
}

// LiveSource reads from the menu repository.
type LiveSource struct {
	Repo *repository.MenuRepository
}

func (s *LiveSource) List(category string, availableOnly bool) ([]entity.MenuItem, error) {
	return s.Repo.List(category, availableOnly)
}

func (s *LiveSource) Favorites(limit int) ([]entity.MenuItem, error) {
	return s.Repo.ListFavorites(limit)
}

// FallbackSource serves a fixed snapshot of sample items.
type FallbackSource struct {
	Items []entity.MenuItem
}

func (s *FallbackSource) List(category string, availableOnly bool) ([]entity.MenuItem, error) {
	out := make([]entity.MenuItem, 0, len(s.Items))
	for _, it := range s.Items {
		if category != "" && it.Category != category {
			continue
		}
		if availableOnly && !it.IsAvailable {
			continue
		}
		out = append(out, it)
	}
	return out, nil
}

func (s *FallbackSource) Favorites(limit int) ([]entity.MenuItem, error) {
	out := make([]entity.MenuItem, 0, limit)
	for _, it := range s.Items {
		if it.IsFavorite && it.IsAvailable {
			out = append(out, it)
			if len(out) == limit {
				break
			}
		}
	}
	return out, nil
}

type MenuService struct {
	Repo     *repository.MenuRepository
	live     MenuSource
	fallback MenuSource
}

func NewMenuService(repo *repository.MenuRepository, fallback MenuSource) *MenuService {
	return &MenuService{Repo: repo, live: &LiveSource{Repo: repo}, fallback: fallback}
}

// List serves live content, degrading to the fallback source on error.
func (s *MenuService) List(category string, availableOnly bool) ([]entity.MenuItem, error) {
	items, err := s.live.List(category, availableOnly)
	if err != nil && s.fallback != nil {
		log.Printf("menu list failed, serving fallback content: %v", err)
		return s.fallback.List(category, availableOnly)
	}
	return items, err
}

func (s *MenuService) Favorites(limit int) ([]entity.MenuItem, error) {
	items, err := s.live.Favorites(limit)
	if err != nil && s.fallback != nil {
		log.Printf("menu favorites failed, serving fallback content: %v", err)
		return s.fallback.Favorites(limit)
	}
	return items, err
}

func (s *MenuService) Get(id string) (*entity.MenuItem, error) {
	return s.Repo.Get(id)
}

// ----- admin mutations -----

type MenuItemIn struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	ImageURL    string   `json:"image_url"`
	Category    string   `json:"category" binding:"required"`
	Price       int64    `json:"price" binding:"required,min=1"`
	IsAvailable *bool    `json:"is_available"`
	IsFavorite  bool     `json:"is_favorite"`
	Tags        []string `json:"tags"`
}

func (s *MenuService) Create(in *MenuItemIn) (*entity.MenuItem, error) {
	if !entity.ValidCategory(in.Category) {
		v := apperr.NewValidation()
		v.Add("category", "unknown category")
		return nil, v
	}

	available := true
	if in.IsAvailable != nil {
		available = *in.IsAvailable
	}
	item := &entity.MenuItem{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Description: in.Description,
		ImageURL:    in.ImageURL,
		Category:    in.Category,
		Price:       in.Price,
		IsAvailable: available,
		IsFavorite:  in.IsFavorite,
		Tags:        tagsJSON(in.Tags),
	}
	if err := s.Repo.Create(item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *MenuService) Update(id string, in *MenuItemIn) (*entity.MenuItem, error) {
	item, err := s.Repo.Get(id)
	if err != nil {
		return nil, err
	}
	if !entity.ValidCategory(in.Category) {
		v := apperr.NewValidation()
		v.Add("category", "unknown category")
		return nil, v
	}

	item.Name = in.Name
	item.Description = in.Description
	item.ImageURL = in.ImageURL
	item.Category = in.Category
	item.Price = in.Price
	if in.IsAvailable != nil {
		item.IsAvailable = *in.IsAvailable
	}
	item.IsFavorite = in.IsFavorite
	item.Tags = tagsJSON(in.Tags)

	if err := s.Repo.Update(item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *MenuService) Delete(id string) error {
	return s.Repo.Delete(id)
}

func (s *MenuService) SetAvailability(id string, available bool) error {
	return s.Repo.SetAvailability(id, available)
}

func (s *MenuService) SetFavorite(id string, favorite bool) error {
	return s.Repo.SetFavorite(id, favorite)
}

func tagsJSON(tags []string) datatypes.JSON {
	if tags == nil {
		tags = []string{}
	}
	b, _ := json.Marshal(tags)
	return datatypes.JSON(b)
}
