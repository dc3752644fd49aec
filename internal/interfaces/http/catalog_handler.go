package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ecommerce-admin-api/internal/application/crud"
	"github.com/jhoicas/ecommerce-admin-api/internal/application/dto"
	"github.com/jhoicas/ecommerce-admin-api/internal/application/usecase"
)

// ProductHandler CRUD de productos más el detalle con nombres de relaciones.
type ProductHandler struct {
	*CRUDHandler[dto.ProductRequest, dto.ProductResponse]
	svc *usecase.ProductService
}

// NewProductHandler el listado admite además brandId y categoryId.
func NewProductHandler(svc *usecase.ProductService, val *Validator) *ProductHandler {
	h := &ProductHandler{svc: svc}
	h.CRUDHandler = NewCRUDHandler[dto.ProductRequest, dto.ProductResponse](svc, val).
		WithFilter(func(c *fiber.Ctx) (crud.Filter, error) {
			var q dto.ProductQuery
			if err := bindQuery(c, val, &q); err != nil {
				return crud.Filter{}, err
			}
			return usecase.ProductFilter(q), nil
		})
	return h
}

// Details godoc
// @Summary      Detalle de producto
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Router       /api/products/{id}/details [get]
func (h *ProductHandler) Details(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	out, err := h.svc.GetDetails(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(dto.OK("consulta exitosa", out))
}

// PurchaseOrderHandler CRUD de órdenes de compra, detalle y PDF.
type PurchaseOrderHandler struct {
	*CRUDHandler[dto.PurchaseOrderRequest, dto.PurchaseOrderResponse]
	svc *usecase.PurchaseOrderService
}

// NewPurchaseOrderHandler construye el handler.
func NewPurchaseOrderHandler(svc *usecase.PurchaseOrderService, val *Validator) *PurchaseOrderHandler {
	return &PurchaseOrderHandler{
		CRUDHandler: NewCRUDHandler[dto.PurchaseOrderRequest, dto.PurchaseOrderResponse](svc, val),
		svc:         svc,
	}
}

// Details godoc
// @Summary      Detalle de orden de compra con líneas
// @Tags         purchase-orders
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la orden"
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Router       /api/purchase-orders/{id}/details [get]
func (h *PurchaseOrderHandler) Details(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	out, err := h.svc.GetDetails(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(dto.OK("consulta exitosa", out))
}

// PDF godoc
// @Summary      PDF de la orden de compra
// @Tags         purchase-orders
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "ID de la orden"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.Response
// @Router       /api/purchase-orders/{id}/pdf [get]
func (h *PurchaseOrderHandler) PDF(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	doc, err := h.svc.PDF(c.UserContext(), id)
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`inline; filename="orden-%s.pdf"`, id))
	return c.Send(doc)
}
