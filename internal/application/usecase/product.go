package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/ecommerce-admin-api/internal/application/crud"
	"github.com/jhoicas/ecommerce-admin-api/internal/application/dto"
	"github.com/jhoicas/ecommerce-admin-api/internal/application/mapping"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain/entity"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain/repository"
)

// ProductProcedure procedimiento almacenado de productos.
const ProductProcedure = "usp_products"

// ProductService CRUD de productos más el detalle con nombres de relaciones.
type ProductService struct {
	*crud.Service[entity.Product, dto.ProductRequest, dto.ProductResponse]
	details     repository.Gateway[entity.ProductDetail]
	detailModel *mapping.Profile[entity.ProductDetail, dto.ProductDetailResponse]
}

// NewProductService el SKU es la clave única; la imagen se guarda en products/.
func NewProductService(gw repository.Gateway[entity.Product], details repository.Gateway[entity.ProductDetail], assets repository.AssetStore, log zerolog.Logger) *ProductService {
	svc := crud.NewService(crud.Descriptor[entity.Product, dto.ProductRequest, dto.ProductResponse]{
		Entity:    "producto",
		Procedure: ProductProcedure,
		IDParam:   "product_id",
		NotFound:  "producto no encontrado",
		Duplicate: "ya existe un producto con ese SKU",
		ToRecord: mapping.NewProfile(func(_ *dto.ProductRequest, p *entity.Product) {
			p.SKU = strings.ToUpper(strings.TrimSpace(p.SKU))
			p.Name = mapping.NormalizeName(p.Name)
		}),
		ToModel: mapping.NewProfile[entity.Product, dto.ProductResponse](),
		SetID:   func(p *entity.Product, id uuid.UUID) { p.ID = id },
		Params: func(p *entity.Product) repository.Params {
			return repository.Params{
				"brand_id":    p.BrandID,
				"category_id": p.CategoryID,
				"supplier_id": p.SupplierID,
				"sku":         p.SKU,
				"name":        p.Name,
				"description": p.Description,
				"price":       p.Price,
				"cost":        p.Cost,
				"image_path":  p.ImagePath,
			}
		},
		// el estado luego cambia solo con CHANGE_STATUS
		InsertParams: func(*entity.Product) repository.Params {
			return repository.Params{"is_active": true}
		},
		DuplicateKeys: func(p *entity.Product) repository.Params {
			return repository.Params{"sku": p.SKU}
		},
		Asset: &crud.Asset[entity.Product]{
			Folder: ProductFolder,
			Get:    func(p *entity.Product) string { return p.ImagePath },
			Set:    func(p *entity.Product, path string) { p.ImagePath = path },
		},
	}, gw, assets, log)

	return &ProductService{
		Service:     svc,
		details:     details,
		detailModel: mapping.NewProfile[entity.ProductDetail, dto.ProductDetailResponse](),
	}
}

// GetDetails producto con marca, categoría y proveedor (rama GET_DETAILS_BY_ID).
func (s *ProductService) GetDetails(ctx context.Context, id uuid.UUID) (*dto.ProductDetailResponse, error) {
	params := repository.NewParams(repository.ActivityGetDetailsByID).With("product_id", id)
	rec, err := s.details.GetOne(ctx, ProductProcedure, params)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, domain.NotFound("producto no encontrado")
	}
	return s.detailModel.MapPtr(rec), nil
}

// ProductFilter traduce la consulta HTTP al filtro del servicio; los ids ya vienen validados.
func ProductFilter(q dto.ProductQuery) crud.Filter {
	f := ListFilter(q.ListQuery)
	extra := repository.Params{}
	if id, err := uuid.Parse(q.BrandID); err == nil {
		extra["brand_id"] = id
	}
	if id, err := uuid.Parse(q.CategoryID); err == nil {
		extra["category_id"] = id
	}
	if len(extra) > 0 {
		f.Extra = extra
	}
	return f
}

// ListFilter filtro común de los listados.
func ListFilter(q dto.ListQuery) crud.Filter {
	return crud.Filter{
		Search:    strings.TrimSpace(q.Search),
		PageIndex: q.PageIndex,
		PageSize:  q.PageSize,
	}
}
