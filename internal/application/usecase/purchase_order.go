package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/ecommerce-admin-api/internal/application/crud"
	"github.com/jhoicas/ecommerce-admin-api/internal/application/dto"
	"github.com/jhoicas/ecommerce-admin-api/internal/application/mapping"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain/entity"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain/repository"
)

// PurchaseOrderProcedure procedimiento almacenado de órdenes de compra.
const PurchaseOrderProcedure = "usp_purchase_orders"

// PurchaseOrderRenderer genera el documento imprimible de una orden.
type PurchaseOrderRenderer interface {
	Render(ctx context.Context, order *entity.PurchaseOrderDetail) ([]byte, error)
}

// PurchaseOrderService CRUD de órdenes de compra más el detalle con líneas.
type PurchaseOrderService struct {
	*crud.Service[entity.PurchaseOrder, dto.PurchaseOrderRequest, dto.PurchaseOrderResponse]
	details     repository.Gateway[entity.PurchaseOrderDetail]
	detailModel *mapping.Profile[entity.PurchaseOrderDetail, dto.PurchaseOrderDetailResponse]
	renderer    PurchaseOrderRenderer
}

// PurchaseOrderRecord perfil de entrada: subtotales, total y estado por defecto.
var PurchaseOrderRecord = mapping.NewProfile(
	func(_ *dto.PurchaseOrderRequest, o *entity.PurchaseOrder) {
		o.OrderNumber = strings.ToUpper(strings.TrimSpace(o.OrderNumber))
		if o.Status == "" {
			o.Status = entity.PurchaseOrderDraft
		}
	},
	func(_ *dto.PurchaseOrderRequest, o *entity.PurchaseOrder) {
		total := decimal.Zero
		for i := range o.Items {
			it := &o.Items[i]
			it.Subtotal = it.Quantity.Mul(it.UnitCost)
			total = total.Add(it.Subtotal)
		}
		o.TotalAmount = total
	},
)

// NewPurchaseOrderService el número de orden es la clave única.
// renderer puede ser nil: PDF devuelve entonces un error interno.
func NewPurchaseOrderService(gw repository.Gateway[entity.PurchaseOrder], details repository.Gateway[entity.PurchaseOrderDetail], renderer PurchaseOrderRenderer, log zerolog.Logger) *PurchaseOrderService {
	svc := crud.NewService(crud.Descriptor[entity.PurchaseOrder, dto.PurchaseOrderRequest, dto.PurchaseOrderResponse]{
		Entity:    "orden de compra",
		Procedure: PurchaseOrderProcedure,
		IDParam:   "purchase_order_id",
		NotFound:  "orden de compra no encontrada",
		Duplicate: "ya existe una orden de compra con ese número",
		ToRecord:  PurchaseOrderRecord,
		ToModel:   mapping.NewProfile[entity.PurchaseOrder, dto.PurchaseOrderResponse](),
		SetID:     func(o *entity.PurchaseOrder, id uuid.UUID) { o.ID = id },
		Params: func(o *entity.PurchaseOrder) repository.Params {
			return repository.Params{
				"supplier_id":   o.SupplierID,
				"order_number":  o.OrderNumber,
				"order_date":    o.OrderDate,
				"expected_date": o.ExpectedDate,
				"status":        o.Status,
				"notes":         o.Notes,
				"total_amount":  o.TotalAmount,
				"items":         o.Items, // jsonb
			}
		},
		DuplicateKeys: func(o *entity.PurchaseOrder) repository.Params {
			return repository.Params{"order_number": o.OrderNumber}
		},
	}, gw, nil, log)

	return &PurchaseOrderService{
		Service:     svc,
		details:     details,
		detailModel: mapping.NewProfile[entity.PurchaseOrderDetail, dto.PurchaseOrderDetailResponse](),
		renderer:    renderer,
	}
}

// GetDetails orden con proveedor y líneas.
func (s *PurchaseOrderService) GetDetails(ctx context.Context, id uuid.UUID) (*dto.PurchaseOrderDetailResponse, error) {
	rec, err := s.FindDetails(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.detailModel.MapPtr(rec), nil
}

// FindDetails registro crudo del detalle (lo usa también el PDF).
func (s *PurchaseOrderService) FindDetails(ctx context.Context, id uuid.UUID) (*entity.PurchaseOrderDetail, error) {
	params := repository.NewParams(repository.ActivityGetDetailsByID).With("purchase_order_id", id)
	rec, err := s.details.GetOne(ctx, PurchaseOrderProcedure, params)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, domain.NotFound("orden de compra no encontrada")
	}
	return rec, nil
}

// PDF documento de la orden con sus líneas.
func (s *PurchaseOrderService) PDF(ctx context.Context, id uuid.UUID) ([]byte, error) {
	if s.renderer == nil {
		return nil, domain.Internal(nil, "generación de PDF no configurada")
	}
	rec, err := s.FindDetails(ctx, id)
	if err != nil {
		return nil, err
	}
	doc, err := s.renderer.Render(ctx, rec)
	if err != nil {
		return nil, domain.Internal(err, "no se pudo generar el PDF de la orden %s", rec.OrderNumber)
	}
	return doc, nil
}
