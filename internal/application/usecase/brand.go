package usecase

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/ecommerce-admin-api/internal/application/crud"
	"github.com/jhoicas/ecommerce-admin-api/internal/application/dto"
	"github.com/jhoicas/ecommerce-admin-api/internal/application/mapping"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain/entity"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain/repository"
)

// BrandProcedure procedimiento almacenado de marcas.
const BrandProcedure = "usp_brands"

// BrandService CRUD de marcas.
type BrandService = crud.Service[entity.Brand, dto.BrandRequest, dto.BrandResponse]

// NewBrandService el nombre es la clave única; el logo se guarda en brands/.
func NewBrandService(gw repository.Gateway[entity.Brand], assets repository.AssetStore, log zerolog.Logger) *BrandService {
	return crud.NewService(crud.Descriptor[entity.Brand, dto.BrandRequest, dto.BrandResponse]{
		Entity:    "marca",
		Procedure: BrandProcedure,
		IDParam:   "brand_id",
		NotFound:  "marca no encontrada",
		Duplicate: "ya existe una marca con ese nombre",
		ToRecord: mapping.NewProfile(func(_ *dto.BrandRequest, b *entity.Brand) {
			b.Name = mapping.NormalizeName(b.Name)
		}),
		ToModel: mapping.NewProfile[entity.Brand, dto.BrandResponse](),
		SetID:   func(b *entity.Brand, id uuid.UUID) { b.ID = id },
		Params: func(b *entity.Brand) repository.Params {
			return repository.Params{
				"name":        b.Name,
				"description": b.Description,
				"logo_path":   b.LogoPath,
			}
		},
		DuplicateKeys: func(b *entity.Brand) repository.Params {
			return repository.Params{"name": b.Name}
		},
		Asset: &crud.Asset[entity.Brand]{
			Folder: BrandFolder,
			Get:    func(b *entity.Brand) string { return b.LogoPath },
			Set:    func(b *entity.Brand, path string) { b.LogoPath = path },
		},
	}, gw, assets, log)
}
