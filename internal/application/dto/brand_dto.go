package dto

import (
	"time"

	"github.com/google/uuid"
)

// BrandRequest alta y modificación de una marca. LogoPath es una referencia temporal
// devuelta por /api/uploads o la ruta ya guardada (sin cambios).
type BrandRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Description string `json:"description" validate:"max=500"`
	LogoPath    string `json:"logoPath" validate:"max=300"`
}

// BrandResponse salida de una marca.
type BrandResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	LogoPath    string    `json:"logoPath"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
