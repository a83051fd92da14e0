package domain

import (
	"time"

	"github.com/google/uuid"
)

// Category represents a product category. Deleting a category cascades to
// the products referencing it; the cascade is guaranteed by the storage
// schema, not by application code.
type Category struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}
