package entity

import (
	"time"

	"github.com/google/uuid"
)

// User representa un usuario del sistema.
type User struct {
	Paging
	ID             uuid.UUID `db:"user_id"`
	RoleID         uuid.UUID `db:"role_id"`
	RoleName       string    `db:"role_name"` // solo lectura, viene del join con roles
	FirstName      string    `db:"first_name"`
	LastName       string    `db:"last_name"`
	Email          string    `db:"email"`
	PasswordHash   string    `db:"password_hash"` // digest, nunca la contraseña en claro
	AvatarPath     string    `db:"avatar_path"`
	EmailConfirmed bool      `db:"email_confirmed"`
	IsActive       bool      `db:"is_active"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}
