package entities

import (
	"github.com/google/uuid"
)

// User is the per-identity profile row. Credentials live in the external
// identity provider; this table only keeps contact info for checkout prefill.
type User struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Email   string    `gorm:"uniqueIndex" json:"email"`
	Name    string    `json:"name"`
	Address string    `json:"address,omitempty"`
	Phone   string    `json:"phone,omitempty"`

	Timestamp
}
