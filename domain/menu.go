package domain

import (
	"errors"
	"time"
)

// CategoryAll is the sentinel filter value meaning "no category filter".
const CategoryAll = "all"

var (
	MessageSuccessGetCategories = "categories retrieved successfully"
	MessageSuccessGetMenuItems  = "menu items retrieved successfully"

	MessageFailedGetCategories = "failed to retrieve categories"
	MessageFailedGetMenuItems  = "failed to retrieve menu items"

	ErrMenuItemNotFound    = errors.New("menu item not found")
	ErrMenuItemUnavailable = errors.New("menu item is not available")
)

type (
	CategoryResponse struct {
		ID           string `json:"id"`
		Name         string `json:"name"`
		Description  string `json:"description,omitempty"`
		DisplayOrder int    `json:"display_order"`
	}

	MenuItemResponse struct {
		ID           string    `json:"id"`
		CategoryID   string    `json:"category_id"`
		Name         string    `json:"name"`
		Description  string    `json:"description,omitempty"`
		Price        float64   `json:"price"`
		ImageURL     string    `json:"image_url,omitempty"`
		DisplayOrder int       `json:"display_order"`
		CreatedAt    time.Time `json:"created_at"`
	}
)
