package entity

import (
	"time"

	"github.com/google/uuid"
)

// Supplier proveedor al que se emiten órdenes de compra.
type Supplier struct {
	Paging
	ID          uuid.UUID `db:"supplier_id"`
	Name        string    `db:"name"`
	TaxID       string    `db:"tax_id"` // NIT / RUC, único
	ContactName string    `db:"contact_name"`
	Email       string    `db:"email"`
	Phone       string    `db:"phone"`
	Address     string    `db:"address"`
	IsActive    bool      `db:"is_active"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}
