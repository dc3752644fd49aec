package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductRequest alta y modificación de un producto.
type ProductRequest struct {
	BrandID     uuid.UUID       `json:"brandId" validate:"required"`
	CategoryID  uuid.UUID       `json:"categoryId" validate:"required"`
	SupplierID  *uuid.UUID      `json:"supplierId"`
	SKU         string          `json:"sku" validate:"required,min=1,max=100"`
	Name        string          `json:"name" validate:"required,min=1,max=200"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" validate:"gte=0"`
	Cost        decimal.Decimal `json:"cost" validate:"gte=0"`
	ImagePath   string          `json:"imagePath" validate:"max=300"`
}

// ProductQuery filtros adicionales del listado de productos.
type ProductQuery struct {
	ListQuery
	BrandID    string `query:"brandId" validate:"omitempty,uuid"`
	CategoryID string `query:"categoryId" validate:"omitempty,uuid"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          uuid.UUID       `json:"id"`
	BrandID     uuid.UUID       `json:"brandId"`
	CategoryID  uuid.UUID       `json:"categoryId"`
	SupplierID  *uuid.UUID      `json:"supplierId"`
	SKU         string          `json:"sku"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Cost        decimal.Decimal `json:"cost"`
	ImagePath   string          `json:"imagePath"`
	IsActive    bool            `json:"isActive"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// ProductDetailResponse producto con los nombres de marca, categoría y proveedor.
type ProductDetailResponse struct {
	ProductResponse
	BrandName    string `json:"brandName"`
	CategoryName string `json:"categoryName"`
	SupplierName string `json:"supplierName"`
}
