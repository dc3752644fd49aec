package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Estados de una orden de compra.
const (
	PurchaseOrderDraft     = "draft"
	PurchaseOrderSent      = "sent"
	PurchaseOrderReceived  = "received"
	PurchaseOrderCancelled = "cancelled"
)

// PurchaseOrder cabecera de una orden de compra a proveedor.
// Items solo viene poblado en la rama GET_DETAILS_BY_ID (columna jsonb).
type PurchaseOrder struct {
	Paging
	ID           uuid.UUID           `db:"purchase_order_id"`
	SupplierID   uuid.UUID           `db:"supplier_id"`
	OrderNumber  string              `db:"order_number"`
	OrderDate    time.Time           `db:"order_date"`
	ExpectedDate *time.Time          `db:"expected_date"`
	Status       string              `db:"status"`
	Notes        string              `db:"notes"`
	TotalAmount  decimal.Decimal     `db:"total_amount"`
	Items        []PurchaseOrderItem `db:"items"`
	IsActive     bool                `db:"is_active"`
	CreatedAt    time.Time           `db:"created_at"`
	UpdatedAt    time.Time           `db:"updated_at"`
}

// PurchaseOrderItem línea de una orden de compra (se serializa a jsonb).
type PurchaseOrderItem struct {
	ProductID   uuid.UUID       `json:"productId"`
	ProductName string          `json:"productName,omitempty"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitCost    decimal.Decimal `json:"unitCost"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// PurchaseOrderDetail orden con el nombre del proveedor y sus líneas.
type PurchaseOrderDetail struct {
	PurchaseOrder
	SupplierName string `db:"supplier_name"`
}
