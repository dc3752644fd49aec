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

// CategoryProcedure procedimiento almacenado de categorías.
const CategoryProcedure = "usp_categories"

// CategoryService CRUD de categorías.
type CategoryService = crud.Service[entity.Category, dto.CategoryRequest, dto.CategoryResponse]

// NewCategoryService parent_id nulo = categoría raíz.
func NewCategoryService(gw repository.Gateway[entity.Category], assets repository.AssetStore, log zerolog.Logger) *CategoryService {
	return crud.NewService(crud.Descriptor[entity.Category, dto.CategoryRequest, dto.CategoryResponse]{
		Entity:    "categoría",
		Procedure: CategoryProcedure,
		IDParam:   "category_id",
		NotFound:  "categoría no encontrada",
		Duplicate: "ya existe una categoría con ese nombre",
		ToRecord: mapping.NewProfile(func(_ *dto.CategoryRequest, c *entity.Category) {
			c.Name = mapping.NormalizeName(c.Name)
		}),
		ToModel: mapping.NewProfile[entity.Category, dto.CategoryResponse](),
		SetID:   func(c *entity.Category, id uuid.UUID) { c.ID = id },
		Params: func(c *entity.Category) repository.Params {
			return repository.Params{
				"parent_id":   c.ParentID,
				"name":        c.Name,
				"description": c.Description,
				"image_path":  c.ImagePath,
			}
		},
		DuplicateKeys: func(c *entity.Category) repository.Params {
			return repository.Params{"name": c.Name}
		},
		Asset: &crud.Asset[entity.Category]{
			Folder: CategoryFolder,
			Get:    func(c *entity.Category) string { return c.ImagePath },
			Set:    func(c *entity.Category, path string) { c.ImagePath = path },
		},
	}, gw, assets, log)
}
