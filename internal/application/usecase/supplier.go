package usecase

import (
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/ecommerce-admin-api/internal/application/crud"
	"github.com/jhoicas/ecommerce-admin-api/internal/application/dto"
	"github.com/jhoicas/ecommerce-admin-api/internal/application/mapping"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain/entity"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain/repository"
)

// SupplierProcedure procedimiento almacenado de proveedores.
const SupplierProcedure = "usp_suppliers"

// SupplierService CRUD de proveedores.
type SupplierService = crud.Service[entity.Supplier, dto.SupplierRequest, dto.SupplierResponse]

// NewSupplierService el identificador tributario es la clave única.
func NewSupplierService(gw repository.Gateway[entity.Supplier], log zerolog.Logger) *SupplierService {
	return crud.NewService(crud.Descriptor[entity.Supplier, dto.SupplierRequest, dto.SupplierResponse]{
		Entity:    "proveedor",
		Procedure: SupplierProcedure,
		IDParam:   "supplier_id",
		NotFound:  "proveedor no encontrado",
		Duplicate: "ya existe un proveedor con ese identificador tributario",
		ToRecord: mapping.NewProfile(func(_ *dto.SupplierRequest, s *entity.Supplier) {
			s.Name = mapping.NormalizeName(s.Name)
			s.TaxID = strings.ToUpper(strings.TrimSpace(s.TaxID))
			s.Email = mapping.NormalizeEmail(s.Email)
		}),
		ToModel: mapping.NewProfile[entity.Supplier, dto.SupplierResponse](),
		SetID:   func(s *entity.Supplier, id uuid.UUID) { s.ID = id },
		Params: func(s *entity.Supplier) repository.Params {
			return repository.Params{
				"name":         s.Name,
				"tax_id":       s.TaxID,
				"contact_name": s.ContactName,
				"email":        s.Email,
				"phone":        s.Phone,
				"address":      s.Address,
			}
		},
		DuplicateKeys: func(s *entity.Supplier) repository.Params {
			return repository.Params{"tax_id": s.TaxID}
		},
	}, gw, nil, log)
}
