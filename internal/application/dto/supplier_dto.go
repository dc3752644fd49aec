package dto

import (
	"time"

	"github.com/google/uuid"
)

// SupplierRequest alta y modificación de un proveedor.
type SupplierRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=150"`
	TaxID       string `json:"taxId" validate:"required,min=3,max=30"`
	ContactName string `json:"contactName" validate:"max=150"`
	Email       string `json:"email" validate:"omitempty,email"`
	Phone       string `json:"phone" validate:"max=30"`
	Address     string `json:"address" validate:"max=300"`
}

// SupplierResponse salida de un proveedor.
type SupplierResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	TaxID       string    `json:"taxId"`
	ContactName string    `json:"contactName"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Address     string    `json:"address"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
