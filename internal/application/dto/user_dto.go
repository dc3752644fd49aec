package dto

import (
	"time"

	"github.com/google/uuid"
)

// UserRequest alta y modificación de un usuario por un administrador.
// Password vacío en una modificación conserva la contraseña actual.
type UserRequest struct {
	RoleID     uuid.UUID `json:"roleId" validate:"required"`
	FirstName  string    `json:"firstName" validate:"required,min=1,max=100"`
	LastName   string    `json:"lastName" validate:"max=100"`
	Email      string    `json:"email" validate:"required,email"`
	Password   string    `json:"password" validate:"omitempty,min=8,max=72"`
	AvatarPath string    `json:"avatarPath" validate:"max=300"`
}

// RegisterRequest auto-registro de un cliente.
type RegisterRequest struct {
	FirstName string `json:"firstName" validate:"required,min=1,max=100"`
	LastName  string `json:"lastName" validate:"max=100"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8,max=72"`
}

// UserResponse salida de un usuario (sin contraseña).
type UserResponse struct {
	ID             uuid.UUID `json:"id"`
	RoleID         uuid.UUID `json:"roleId"`
	RoleName       string    `json:"roleName"`
	FirstName      string    `json:"firstName"`
	LastName       string    `json:"lastName"`
	Email          string    `json:"email"`
	AvatarPath     string    `json:"avatarPath"`
	EmailConfirmed bool      `json:"emailConfirmed"`
	IsActive       bool      `json:"isActive"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// LoginRequest credenciales.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse token JWT y usuario autenticado.
type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresIn int          `json:"expiresIn"` // segundos
	User      UserResponse `json:"user"`
}
