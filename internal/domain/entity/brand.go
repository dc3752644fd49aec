package entity

import (
	"time"

	"github.com/google/uuid"
)

// Brand marca comercial de productos.
type Brand struct {
	Paging
	ID          uuid.UUID `db:"brand_id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	LogoPath    string    `db:"logo_path"` // ruta relativa en el almacenamiento de archivos
	IsActive    bool      `db:"is_active"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}
