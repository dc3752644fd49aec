package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo.
type Product struct {
	Paging
	ID          uuid.UUID       `db:"product_id"`
	BrandID     uuid.UUID       `db:"brand_id"`
	CategoryID  uuid.UUID       `db:"category_id"`
	SupplierID  *uuid.UUID      `db:"supplier_id"` // proveedor habitual, opcional
	SKU         string          `db:"sku"`         // único
	Name        string          `db:"name"`
	Description string          `db:"description"`
	Price       decimal.Decimal `db:"price"` // precio de venta
	Cost        decimal.Decimal `db:"cost"`  // último costo de compra
	ImagePath   string          `db:"image_path"`
	IsActive    bool            `db:"is_active"`
	CreatedAt   time.Time       `db:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at"`
}

// ProductDetail producto con los nombres de sus relaciones (rama GET_DETAILS_BY_ID).
type ProductDetail struct {
	Product
	BrandName    string `db:"brand_name"`
	CategoryName string `db:"category_name"`
	SupplierName string `db:"supplier_name"`
}
