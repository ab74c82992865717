package entities

import (
	"github.com/google/uuid"
)

type Order struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID          uuid.UUID `json:"user_id"`
	TotalAmount     float64   `json:"total_amount"`
	DeliveryAddress string    `json:"delivery_address"`
	Phone           string    `json:"phone"`
	Notes           string    `json:"notes,omitempty"`
	// Status is opaque text here; transitions happen in an external process.
	Status string `gorm:"default:'pending'" json:"status"`

	User  *User       `gorm:"foreignKey:UserID"`
	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
	Timestamp
}

// OrderItem carries the unit price captured at checkout time, decoupled from
// later menu price changes.
type OrderItem struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	OrderID    uuid.UUID `json:"order_id"`
	MenuItemID uuid.UUID `json:"menu_item_id"`
	Quantity   int       `json:"quantity"`
	Price      float64   `json:"price"`

	MenuItem *MenuItem `gorm:"foreignKey:MenuItemID"`
	Timestamp
}
