package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

func newStatusEnv() (*usecase.StatusUseCase, *fakeStatusRepo, *fakeDeps) {
	repo := newFakeStatusRepo()
	deps := newFakeDeps()
	runner := &fakeRefRunner{refs: repository.ReferenceRepos{Status: repo, Deps: deps}}
	return usecase.NewStatusUseCase(repo, runner), repo, deps
}

func seedStatus(repo *fakeStatusRepo, id, category, label string) {
	repo.store[id] = &entity.Status{ID: id, Category: category, Label: label, CreatedAt: time.Now()}
}

func TestStatusCreate_CategoriaInvalida(t *testing.T) {
	uc, _, _ := newStatusEnv()

	_, err := uc.Create(dto.CreateStatusRequest{Category: "payment", Label: "pendiente"})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestStatusCreate_ParDuplicado(t *testing.T) {
	uc, repo, _ := newStatusEnv()
	seedStatus(repo, "st-1", entity.StatusCategoryOrder, "pendiente")

	_, err := uc.Create(dto.CreateStatusRequest{Category: entity.StatusCategoryOrder, Label: "pendiente"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	// Misma etiqueta en otra categoría sí es válida.
	resp, err := uc.Create(dto.CreateStatusRequest{Category: entity.StatusCategoryItem, Label: "pendiente"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
}

func TestStatusDelete_BloqueadoPorBodega(t *testing.T) {
	uc, repo, deps := newStatusEnv()
	seedStatus(repo, "st-general", entity.StatusCategoryGeneral, "activo")
	deps.warehouseByStatus["st-general"] = true

	err := uc.Delete(context.Background(), "st-general")

	var inUse *domain.ResourceInUseError
	require.ErrorAs(t, err, &inUse)
	assert.Equal(t, "status", inUse.Kind)
	assert.Equal(t, "warehouse", inUse.BlockedBy)
	assert.ErrorIs(t, err, domain.ErrConflict)

	// El estado sigue existiendo.
	got, err := repo.GetByID("st-general")
	require.NoError(t, err)
	assert.NotNil(t, got)
}

func TestStatusDelete_ReportaElPrimerBloqueante(t *testing.T) {
	uc, repo, deps := newStatusEnv()
	seedStatus(repo, "st-x", entity.StatusCategoryGeneral, "activo")
	deps.itemByStatus["st-x"] = true
	deps.userByStatus["st-x"] = true

	err := uc.Delete(context.Background(), "st-x")

	var inUse *domain.ResourceInUseError
	require.ErrorAs(t, err, &inUse)
	// Bodegas van primero pero no hay; items van antes que usuarios.
	assert.Equal(t, "item", inUse.BlockedBy)
}

func TestStatusDelete_SinDependientes(t *testing.T) {
	uc, repo, _ := newStatusEnv()
	seedStatus(repo, "st-huerfano", entity.StatusCategoryOrder, "borrador")

	err := uc.Delete(context.Background(), "st-huerfano")

	require.NoError(t, err)
	got, err := repo.GetByID("st-huerfano")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStatusDelete_DesbloqueadoTrasRetirarDependiente(t *testing.T) {
	uc, repo, deps := newStatusEnv()
	seedStatus(repo, "st-general", entity.StatusCategoryGeneral, "activo")
	deps.warehouseByStatus["st-general"] = true

	err := uc.Delete(context.Background(), "st-general")
	require.Error(t, err)

	// El dependiente desaparece; el mismo borrado ahora procede.
	deps.warehouseByStatus["st-general"] = false
	err = uc.Delete(context.Background(), "st-general")
	require.NoError(t, err)
}

func TestStatusDelete_NoExiste(t *testing.T) {
	uc, _, _ := newStatusEnv()

	err := uc.Delete(context.Background(), "st-fantasma")

	var notFound *domain.NotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "status", notFound.Kind)
}
