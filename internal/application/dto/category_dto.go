package dto

import (
	"time"

	"github.com/google/uuid"
)

// CategoryRequest alta y modificación de una categoría.
type CategoryRequest struct {
	ParentID    *uuid.UUID `json:"parentId"`
	Name        string     `json:"name" validate:"required,min=1,max=100"`
	Description string     `json:"description" validate:"max=500"`
	ImagePath   string     `json:"imagePath" validate:"max=300"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID          uuid.UUID  `json:"id"`
	ParentID    *uuid.UUID `json:"parentId"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	ImagePath   string     `json:"imagePath"`
	IsActive    bool       `json:"isActive"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}
