package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PurchaseOrderItemRequest línea de la orden. El subtotal lo calcula el servidor.
type PurchaseOrderItemRequest struct {
	ProductID   uuid.UUID       `json:"productId" validate:"required"`
	ProductName string          `json:"productName" validate:"max=200"`
	Quantity    decimal.Decimal `json:"quantity" validate:"gt=0"`
	UnitCost    decimal.Decimal `json:"unitCost" validate:"gte=0"`
}

// PurchaseOrderRequest alta y modificación de una orden de compra.
type PurchaseOrderRequest struct {
	SupplierID   uuid.UUID                  `json:"supplierId" validate:"required"`
	OrderNumber  string                     `json:"orderNumber" validate:"required,min=1,max=50"`
	OrderDate    time.Time                  `json:"orderDate" validate:"required"`
	ExpectedDate *time.Time                 `json:"expectedDate"`
	Status       string                     `json:"status" validate:"omitempty,oneof=draft sent received cancelled"`
	Notes        string                     `json:"notes" validate:"max=1000"`
	Items        []PurchaseOrderItemRequest `json:"items" validate:"required,min=1,dive"`
}

// PurchaseOrderItemResponse línea con subtotal.
type PurchaseOrderItemResponse struct {
	ProductID   uuid.UUID       `json:"productId"`
	ProductName string          `json:"productName"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitCost    decimal.Decimal `json:"unitCost"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// PurchaseOrderResponse cabecera de la orden; Items solo viene en el detalle.
type PurchaseOrderResponse struct {
	ID           uuid.UUID                   `json:"id"`
	SupplierID   uuid.UUID                   `json:"supplierId"`
	OrderNumber  string                      `json:"orderNumber"`
	OrderDate    time.Time                   `json:"orderDate"`
	ExpectedDate *time.Time                  `json:"expectedDate"`
	Status       string                      `json:"status"`
	Notes        string                      `json:"notes"`
	TotalAmount  decimal.Decimal             `json:"totalAmount"`
	Items        []PurchaseOrderItemResponse `json:"items,omitempty"`
	IsActive     bool                        `json:"isActive"`
	CreatedAt    time.Time                   `json:"createdAt"`
	UpdatedAt    time.Time                   `json:"updatedAt"`
}

// PurchaseOrderDetailResponse orden con el nombre del proveedor.
type PurchaseOrderDetailResponse struct {
	PurchaseOrderResponse
	SupplierName string `json:"supplierName"`
}
