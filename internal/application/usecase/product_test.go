package usecase_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ecommerce-admin-api/internal/application/dto"
	"github.com/jhoicas/ecommerce-admin-api/internal/application/usecase"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain/entity"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain/repository"
)

func TestProductFilter_IdsOpcionales(t *testing.T) {
	brand := uuid.New()

	f := usecase.ProductFilter(dto.ProductQuery{
		ListQuery: dto.ListQuery{Search: " tal ", PageIndex: 2, PageSize: 5},
		BrandID:   brand.String(),
	})

	assert.Equal(t, "tal", f.Search)
	assert.Equal(t, 2, f.PageIndex)
	assert.Equal(t, brand, f.Extra["brand_id"])
	_, hasCategory := f.Extra["category_id"]
	assert.False(t, hasCategory)

	assert.Nil(t, usecase.ProductFilter(dto.ProductQuery{}).Extra)
}

func TestProductService_GetAllReenviaFiltros(t *testing.T) {
	gw := &stubGateway[entity.Product]{}
	svc := usecase.NewProductService(gw, &stubGateway[entity.ProductDetail]{}, stubAssets{}, zerolog.Nop())
	category := uuid.New()

	_, err := svc.GetAll(context.Background(), usecase.ProductFilter(dto.ProductQuery{CategoryID: category.String()}))

	require.NoError(t, err)
	assert.Equal(t, category, gw.last(repository.ActivityGetAll)["category_id"])
}

func TestProductService_CreateNormalizaYActiva(t *testing.T) {
	gw := &stubGateway[entity.Product]{ok: true}
	svc := usecase.NewProductService(gw, &stubGateway[entity.ProductDetail]{}, stubAssets{}, zerolog.Nop())

	_, err := svc.Create(context.Background(), dto.ProductRequest{
		BrandID: uuid.New(), CategoryID: uuid.New(), SKU: " ab-12 ", Name: "Taladro", Price: decimal.NewFromInt(10),
	})

	require.NoError(t, err)
	assert.Equal(t, "AB-12", gw.last(repository.ActivityCheckDuplicate)["sku"])
	insert := gw.last(repository.ActivityInsert)
	assert.Equal(t, "AB-12", insert["sku"])
	assert.Equal(t, true, insert["is_active"])
}

func TestProductService_DetalleConNombres(t *testing.T) {
	detail := &entity.ProductDetail{
		Product:   entity.Product{ID: uuid.New(), SKU: "AB-12", Price: decimal.NewFromInt(10)},
		BrandName: "Acme",
	}
	svc := usecase.NewProductService(&stubGateway[entity.Product]{}, &stubGateway[entity.ProductDetail]{one: detail}, stubAssets{}, zerolog.Nop())

	got, err := svc.GetDetails(context.Background(), detail.ID)

	require.NoError(t, err)
	assert.Equal(t, detail.ID, got.ID)
	assert.Equal(t, "AB-12", got.SKU)
	assert.Equal(t, "Acme", got.BrandName)
	assert.True(t, got.Price.Equal(decimal.NewFromInt(10)))
}

func TestProductService_UpdateConservaEstado(t *testing.T) {
	id := uuid.New()
	stored := &entity.Product{ID: id, SKU: "AB-12", Name: "Taladro", IsActive: false}
	gw := &stubGateway[entity.Product]{ok: true, one: stored}
	svc := usecase.NewProductService(gw, &stubGateway[entity.ProductDetail]{}, stubAssets{}, zerolog.Nop())

	_, err := svc.Update(context.Background(), id, dto.ProductRequest{
		BrandID: uuid.New(), CategoryID: uuid.New(), SKU: "AB-12", Name: "Taladro percutor", Price: decimal.NewFromInt(12),
	})

	require.NoError(t, err)
	update := gw.last(repository.ActivityUpdate)
	require.NotNil(t, update)
	assert.Equal(t, "Taladro percutor", update["name"])
	_, sent := update["is_active"]
	assert.False(t, sent, "un producto desactivado sigue desactivado tras editarlo")
}
