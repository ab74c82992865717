package menu_test

import (
	"context"
	"food-ordering-api/entities"
	"food-ordering-api/pkg/menu"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.Category{}, &entities.MenuItem{}))
	return db
}

func TestMenuRepository(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := menu.NewMenuRepository(db)

	pizzas := &entities.Category{ID: uuid.New(), Name: "Pizzas", DisplayOrder: 2}
	sides := &entities.Category{ID: uuid.New(), Name: "Sides", DisplayOrder: 1}
	require.NoError(t, db.Create([]*entities.Category{pizzas, sides}).Error)

	margherita := &entities.MenuItem{
		ID: uuid.New(), CategoryID: pizzas.ID, Name: "Margherita",
		Price: 9.50, IsAvailable: true, DisplayOrder: 1,
	}
	calzone := &entities.MenuItem{
		ID: uuid.New(), CategoryID: pizzas.ID, Name: "Calzone",
		Price: 11.00, IsAvailable: true, DisplayOrder: 2,
	}
	bread := &entities.MenuItem{
		ID: uuid.New(), CategoryID: sides.ID, Name: "Garlic Bread",
		Price: 3.25, IsAvailable: true, DisplayOrder: 1,
	}
	require.NoError(t, db.Create([]*entities.MenuItem{margherita, calzone, bread}).Error)
	require.NoError(t, db.Model(calzone).Update("is_available", false).Error)

	t.Run("categories ordered by display order", func(t *testing.T) {
		categories, err := repo.GetCategories(ctx)
		require.NoError(t, err)
		require.Len(t, categories, 2)
		assert.Equal(t, "Sides", categories[0].Name)
		assert.Equal(t, "Pizzas", categories[1].Name)
	})

	t.Run("all items hides unavailable ones", func(t *testing.T) {
		items, err := repo.GetMenuItems(ctx, "all")
		require.NoError(t, err)
		require.Len(t, items, 2)
		for _, item := range items {
			assert.NotEqual(t, "Calzone", item.Name)
		}
	})

	t.Run("category filter", func(t *testing.T) {
		items, err := repo.GetMenuItems(ctx, pizzas.ID.String())
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "Margherita", items[0].Name)
	})

	t.Run("lookup by id", func(t *testing.T) {
		item, err := repo.GetMenuItemByID(ctx, bread.ID.String())
		require.NoError(t, err)
		assert.Equal(t, 3.25, item.Price)

		_, err = repo.GetMenuItemByID(ctx, uuid.NewString())
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})
}
