package entity

import (
	"time"

	"github.com/google/uuid"
)

// Nombres de rol con significado para la autorización.
const (
	RoleAdmin    = "admin"
	RoleManager  = "manager"
	RoleCustomer = "customer"
)

// Role rol de usuario.
type Role struct {
	Paging
	ID          uuid.UUID `db:"role_id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	IsActive    bool      `db:"is_active"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}
