package services

import (
	"testing"

	"github.com/Xebarter/Manziz/apperr"
	"github.com/Xebarter/Manziz/configs"
	"github.com/Xebarter/Manziz/entity"
	"github.com/Xebarter/Manziz/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMenuService(t *testing.T, db *gorm.DB) *MenuService {
	t.Helper()
	return NewMenuService(repository.NewMenuRepository(db),
		&FallbackSource{Items: configs.SampleMenu()})
}

func TestMenuCreateAndList(t *testing.T) {
	db := newTestDB(t)
	svc := newMenuService(t, db)

	_, err := svc.Create(&MenuItemIn{
		Name: "Rolex Deluxe", Category: entity.CategoryBurgers, Price: 8000,
		Tags: []string{"street-food"},
	})
	require.NoError(t, err)
	_, err = svc.Create(&MenuItemIn{
		Name: "Stoney Tangawizi", Category: entity.CategoryDrinks, Price: 2500,
	})
	require.NoError(t, err)

	all, err := svc.List("", false)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	drinks, err := svc.List(entity.CategoryDrinks, false)
	require.NoError(t, err)
	require.Len(t, drinks, 1)
	assert.Equal(t, "Stoney Tangawizi", drinks[0].Name)
}

func TestMenuCreateRejectsUnknownCategory(t *testing.T) {
	db := newTestDB(t)
	svc := newMenuService(t, db)

	_, err := svc.Create(&MenuItemIn{Name: "X", Category: "pizza", Price: 1000})
	var vErr *apperr.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "category")
}

func TestMenuAvailabilityFilter(t *testing.T) {
	db := newTestDB(t)
	svc := newMenuService(t, db)

	on, err := svc.Create(&MenuItemIn{Name: "A", Category: entity.CategoryBurgers, Price: 1000})
	require.NoError(t, err)
	off, err := svc.Create(&MenuItemIn{Name: "B", Category: entity.CategoryBurgers, Price: 1000})
	require.NoError(t, err)
	require.NoError(t, svc.SetAvailability(off.ID, false))

	visible, err := svc.List("", true)
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Equal(t, on.ID, visible[0].ID)

	all, err := svc.List("", false)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestMenuFavoritesCapped(t *testing.T) {
	db := newTestDB(t)
	svc := newMenuService(t, db)

	for i := 0; i < 8; i++ {
		_, err := svc.Create(&MenuItemIn{
			Name: "F", Category: entity.CategoryBurgers, Price: 1000, IsFavorite: true,
		})
		require.NoError(t, err)
	}

	favs, err := svc.Favorites(6)
	require.NoError(t, err)
	assert.Len(t, favs, 6)
}

func TestMenuUpdateKeepsAvailabilityWhenOmitted(t *testing.T) {
	db := newTestDB(t)
	svc := newMenuService(t, db)

	item, err := svc.Create(&MenuItemIn{Name: "A", Category: entity.CategoryBurgers, Price: 1000})
	require.NoError(t, err)
	require.NoError(t, svc.SetAvailability(item.ID, false))

	updated, err := svc.Update(item.ID, &MenuItemIn{
		Name: "A2", Category: entity.CategoryBurgers, Price: 1500,
	})
	require.NoError(t, err)
	assert.Equal(t, "A2", updated.Name)
	assert.False(t, updated.IsAvailable, "omitted is_available must not reset the flag")
}

func TestMenuFallsBackWhenLiveReadFails(t *testing.T) {
	// No migration: every live read errors on the missing table.
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	svc := newMenuService(t, db)

	items, err := svc.List("", true)
	require.NoError(t, err)
	assert.NotEmpty(t, items, "fallback content keeps the storefront populated")

	favs, err := svc.Favorites(6)
	require.NoError(t, err)
	assert.NotEmpty(t, favs)
}

func TestMenuDelete(t *testing.T) {
	db := newTestDB(t)
	svc := newMenuService(t, db)

	item, err := svc.Create(&MenuItemIn{Name: "A", Category: entity.CategoryBurgers, Price: 1000})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(item.ID))
	_, err = svc.Get(item.ID)
	require.ErrorIs(t, err, apperr.ErrNotFound)
}
