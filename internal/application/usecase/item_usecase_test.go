package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

type itemEnv struct {
	uc    *usecase.ItemUseCase
	items *fakeItemRepo
	deps  *fakeDeps
}

func newItemEnv() itemEnv {
	items := newFakeItemRepo()
	statuses := newFakeStatusRepo()
	suppliers := newFakeSupplierRepo()
	categories := newFakeCategoryRepo()
	warehouses := newFakeWarehouseRepo()
	deps := newFakeDeps()

	// Referencias válidas por defecto para no repetir el seed en cada test.
	now := time.Now()
	statuses.store["st-item"] = &entity.Status{ID: "st-item", Category: entity.StatusCategoryItem, Label: "disponible", CreatedAt: now}
	suppliers.store["sup-1"] = &entity.Supplier{ID: "sup-1", Name: "Textiles del Sur", NIT: "900123456", CreatedAt: now}
	categories.store["cat-1"] = &entity.Category{ID: "cat-1", Name: "telas", CreatedAt: now}
	warehouses.store["wh-1"] = &entity.Warehouse{ID: "wh-1", Name: "principal", StatusID: "st-general", CreatedAt: now}

	runner := &fakeRefRunner{refs: repository.ReferenceRepos{Item: items, Deps: deps}}
	uc := usecase.NewItemUseCase(items, statuses, suppliers, categories, warehouses, runner)
	return itemEnv{uc: uc, items: items, deps: deps}
}

func validMaterialRequest() dto.CreateItemRequest {
	return dto.CreateItemRequest{
		Code:           "TELA-001",
		Name:           "Tela algodón blanco",
		Kind:           entity.ItemKindRawMaterial,
		UnitPrice:      decimal.NewFromInt(12500),
		AvailableStock: 80,
		StatusID:       "st-item",
		SupplierID:     "sup-1",
		CategoryID:     "cat-1",
		WarehouseID:    "wh-1",
		Material: &dto.MaterialDTO{
			UnitMeasure: "metro",
			Width:       decimal.NewFromFloat(1.5),
			Composition: "95% algodón 5% elastano",
		},
	}
}

func TestItemCreate_MateriaPrima(t *testing.T) {
	env := newItemEnv()

	resp, err := env.uc.Create("user-1", validMaterialRequest())

	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, entity.ItemKindRawMaterial, resp.Kind)
	require.NotNil(t, resp.Material)
	assert.Equal(t, "metro", resp.Material.UnitMeasure)
	assert.Nil(t, resp.Garment)
}

func TestItemCreate_KindInvalido(t *testing.T) {
	env := newItemEnv()
	in := validMaterialRequest()
	in.Kind = "service"

	_, err := env.uc.Create("user-1", in)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestItemCreate_DetalleNoCorrespondeAlKind(t *testing.T) {
	env := newItemEnv()

	// Materia prima con detalle de prenda.
	in := validMaterialRequest()
	in.Garment = &dto.GarmentDTO{Size: "M", Color: "blanco", Gender: "dama"}
	_, err := env.uc.Create("user-1", in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// Prenda terminada con detalle de materia prima.
	in = validMaterialRequest()
	in.Kind = entity.ItemKindFinishedProduct
	_, err = env.uc.Create("user-1", in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestItemCreate_PrecioNoPositivo(t *testing.T) {
	env := newItemEnv()
	in := validMaterialRequest()
	in.UnitPrice = decimal.Zero

	_, err := env.uc.Create("user-1", in)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestItemCreate_CodigoDuplicado(t *testing.T) {
	env := newItemEnv()
	_, err := env.uc.Create("user-1", validMaterialRequest())
	require.NoError(t, err)

	_, err = env.uc.Create("user-1", validMaterialRequest())

	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestItemCreate_ProveedorInexistente(t *testing.T) {
	env := newItemEnv()
	in := validMaterialRequest()
	in.SupplierID = "sup-fantasma"

	_, err := env.uc.Create("user-1", in)

	var notFound *domain.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "supplier", notFound.Kind)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestItemDelete_BloqueadoPorLineaDeOrdenActiva(t *testing.T) {
	env := newItemEnv()
	resp, err := env.uc.Create("user-1", validMaterialRequest())
	require.NoError(t, err)
	env.deps.activeLineByItem[resp.ID] = true

	err = env.uc.Delete(context.Background(), resp.ID)

	var inUse *domain.ResourceInUseError
	require.ErrorAs(t, err, &inUse)
	assert.Equal(t, "item", inUse.Kind)
	assert.Equal(t, "order_line", inUse.BlockedBy)

	// El item sigue existiendo.
	got, err := env.uc.GetByID(resp.ID)
	require.NoError(t, err)
	assert.NotNil(t, got)
}

func TestItemDelete_SinLineasActivas(t *testing.T) {
	env := newItemEnv()
	resp, err := env.uc.Create("user-1", validMaterialRequest())
	require.NoError(t, err)

	require.NoError(t, env.uc.Delete(context.Background(), resp.ID))

	got, err := env.uc.GetByID(resp.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestItemList_BajoStockMinimo(t *testing.T) {
	env := newItemEnv()

	low := validMaterialRequest()
	min := int64(100)
	low.MinStock = &min // stock 80 < mínimo 100

	ok := validMaterialRequest()
	ok.Code = "TELA-002"

	_, err := env.uc.Create("user-1", low)
	require.NoError(t, err)
	_, err = env.uc.Create("user-1", ok)
	require.NoError(t, err)

	list, err := env.uc.ListBelowMinStock(20, 0)
	require.NoError(t, err)
	require.Len(t, list.Items, 1)
	assert.Equal(t, "TELA-001", list.Items[0].Code)
}
