package menu

import (
	"food-ordering-api/entities"
	"context"
	"gorm.io/gorm"
)

type (
	MenuRepository interface {
		GetCategories(ctx context.Context) ([]*entities.Category, error)
		GetMenuItems(ctx context.Context, categoryID string) ([]*entities.MenuItem, error)
		GetMenuItemByID(ctx context.Context, id string) (*entities.MenuItem, error)
	}

	menuRepository struct {
		db *gorm.DB
	}
)

func NewMenuRepository(db *gorm.DB) MenuRepository {
	return &menuRepository{db: db}
}

func (r *menuRepository) GetCategories(ctx context.Context) ([]*entities.Category, error) {
	var categories []*entities.Category
	if err := r.db.WithContext(ctx).
		Order("display_order asc").
		Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *menuRepository) GetMenuItems(ctx context.Context, categoryID string) ([]*entities.MenuItem, error) {
	var items []*entities.MenuItem

	query := r.db.WithContext(ctx).Where("is_available = ?", true)

	if categoryID != "" && categoryID != "all" {
		query = query.Where("category_id = ?", categoryID)
	}

	if err := query.Order("display_order asc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *menuRepository) GetMenuItemByID(ctx context.Context, id string) (*entities.MenuItem, error) {
	var item entities.MenuItem
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}
