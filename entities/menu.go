package entities

import (
	"github.com/google/uuid"
)

type Category struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description,omitempty"`
	DisplayOrder int       `json:"display_order"`

	Timestamp
}

type MenuItem struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CategoryID   uuid.UUID `json:"category_id"`
	Name         string    `json:"name"`
	Description  string    `json:"description,omitempty"`
	Price        float64   `json:"price"`
	ImageURL     string    `json:"image_url,omitempty"`
	IsAvailable  bool      `gorm:"default:true" json:"is_available"`
	DisplayOrder int       `json:"display_order"`

	Category *Category `gorm:"foreignKey:CategoryID"`
	Timestamp
}
