package entity

import (
	"time"

	"github.com/google/uuid"
)

// Category representa una categoría de productos (jerárquica opcional).
type Category struct {
	Paging
	ID          uuid.UUID  `db:"category_id"`
	ParentID    *uuid.UUID `db:"parent_id"` // nil si es raíz
	Name        string     `db:"name"`
	Description string     `db:"description"`
	ImagePath   string     `db:"image_path"`
	IsActive    bool       `db:"is_active"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
}
