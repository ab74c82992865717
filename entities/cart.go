package entities

import (
	"github.com/google/uuid"
)

// CartItem holds one menu item and its requested quantity for one user.
// Uniqueness per (user, menu item) is enforced by the cart service, which
// merges quantities into an existing row instead of inserting a second one.
type CartItem struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID     uuid.UUID `json:"user_id"`
	MenuItemID uuid.UUID `json:"menu_item_id"`
	Quantity   int       `json:"quantity"`

	User     *User     `gorm:"foreignKey:UserID"`
	MenuItem *MenuItem `gorm:"foreignKey:MenuItemID"`
	Timestamp
}
