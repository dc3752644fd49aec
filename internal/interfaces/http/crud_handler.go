package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jhoicas/ecommerce-admin-api/internal/application/crud"
	"github.com/jhoicas/ecommerce-admin-api/internal/application/dto"
	"github.com/jhoicas/ecommerce-admin-api/internal/application/usecase"
	"github.com/jhoicas/ecommerce-admin-api/pkg/pagination"
)

// crudService operaciones que expone cada entidad. Lo cumple *crud.Service y los
// servicios que lo embeben (productos, órdenes de compra, usuarios).
type crudService[W, M any] interface {
	GetAll(ctx context.Context, f crud.Filter) (*pagination.Page[M], error)
	GetByID(ctx context.Context, id uuid.UUID) (*M, error)
	Create(ctx context.Context, in W) (*crud.Confirmation, error)
	Update(ctx context.Context, id uuid.UUID, in W) (*crud.Confirmation, error)
	ChangeStatus(ctx context.Context, id uuid.UUID) (*crud.Confirmation, error)
	Delete(ctx context.Context, id uuid.UUID) (*crud.Confirmation, error)
}

// filterFunc lee el filtro del listado desde la query string.
type filterFunc func(c *fiber.Ctx) (crud.Filter, error)

// CRUDHandler handlers HTTP comunes a todas las entidades. W es el DTO de entrada y M el de salida.
type CRUDHandler[W, M any] struct {
	svc    crudService[W, M]
	val    *Validator
	filter filterFunc
}

// NewCRUDHandler el listado usa search/pageIndex/pageSize salvo que se indique WithFilter.
func NewCRUDHandler[W, M any](svc crudService[W, M], val *Validator) *CRUDHandler[W, M] {
	h := &CRUDHandler[W, M]{svc: svc, val: val}
	h.filter = h.listFilter
	return h
}

// WithFilter reemplaza la lectura del filtro del listado.
func (h *CRUDHandler[W, M]) WithFilter(f filterFunc) *CRUDHandler[W, M] {
	h.filter = f
	return h
}

func (h *CRUDHandler[W, M]) listFilter(c *fiber.Ctx) (crud.Filter, error) {
	var q dto.ListQuery
	if err := bindQuery(c, h.val, &q); err != nil {
		return crud.Filter{}, err
	}
	return usecase.ListFilter(q), nil
}

// GetAll GET /<entidad>?search=&pageIndex=&pageSize=
func (h *CRUDHandler[W, M]) GetAll(c *fiber.Ctx) error {
	f, err := h.filter(c)
	if err != nil {
		return err
	}
	page, err := h.svc.GetAll(c.UserContext(), f)
	if err != nil {
		return err
	}
	return c.JSON(dto.OK("consulta exitosa", page))
}

// GetByID GET /<entidad>/:id
func (h *CRUDHandler[W, M]) GetByID(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	out, err := h.svc.GetByID(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(dto.OK("consulta exitosa", out))
}

// Create POST /<entidad>
func (h *CRUDHandler[W, M]) Create(c *fiber.Ctx) error {
	var in W
	if err := bindBody(c, h.val, &in); err != nil {
		return err
	}
	out, err := h.svc.Create(c.UserContext(), in)
	if err != nil {
		return err
	}
	return c.JSON(dto.OK("registro creado", out))
}

// Update PUT /<entidad>/:id
func (h *CRUDHandler[W, M]) Update(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	var in W
	if err := bindBody(c, h.val, &in); err != nil {
		return err
	}
	out, err := h.svc.Update(c.UserContext(), id, in)
	if err != nil {
		return err
	}
	return c.JSON(dto.OK("registro actualizado", out))
}

// ChangeStatus PATCH /<entidad>/:id/status (alterna activo / inactivo)
func (h *CRUDHandler[W, M]) ChangeStatus(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	out, err := h.svc.ChangeStatus(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(dto.OK("estado actualizado", out))
}

// Delete DELETE /<entidad>/:id
func (h *CRUDHandler[W, M]) Delete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	out, err := h.svc.Delete(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(dto.OK("registro eliminado", out))
}

// mount registra las rutas comunes; las mutaciones pasan antes por write (RBAC).
func (h *CRUDHandler[W, M]) mount(r fiber.Router, prefix string, write fiber.Handler) fiber.Router {
	g := r.Group(prefix)
	g.Get("/", h.GetAll)
	g.Get("/:id", h.GetByID)
	g.Post("/", write, h.Create)
	g.Put("/:id", write, h.Update)
	g.Patch("/:id/status", write, h.ChangeStatus)
	g.Delete("/:id", write, h.Delete)
	return g
}
