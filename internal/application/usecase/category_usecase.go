package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/guard"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// CategoryUseCase casos de uso CRUD para categorías de items.
type CategoryUseCase struct {
	repo     repository.CategoryRepository
	txRunner RefTxRunner
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository, txRunner RefTxRunner) *CategoryUseCase {
	return &CategoryUseCase{repo: repo, txRunner: txRunner}
}

// Create crea una categoría; el nombre es clave natural única.
func (uc *CategoryUseCase) Create(in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	existing, err := uc.repo.GetByName(in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	category := &entity.Category{
		ID:        uuid.New().String(),
		Name:      in.Name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// GetByID obtiene una categoría por ID.
func (uc *CategoryUseCase) GetByID(id string) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, nil
	}
	return toCategoryResponse(category), nil
}

// List lista categorías con paginación.
func (uc *CategoryUseCase) List(limit, offset int) ([]dto.CategoryResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, category := range list {
		items = append(items, *toCategoryResponse(category))
	}
	return items, nil
}

// Delete elimina una categoría si ningún item la referencia.
func (uc *CategoryUseCase) Delete(ctx context.Context, id string) error {
	return uc.txRunner.RunRef(ctx, func(refs repository.ReferenceRepos) error {
		category, err := refs.Category.GetByID(id)
		if err != nil {
			return err
		}
		if category == nil {
			return &domain.NotFoundError{Kind: "category", ID: id}
		}
		blocked, err := guard.ForCategory(refs.Deps, id).Check()
		if err != nil {
			return err
		}
		if blocked != "" {
			return &domain.ResourceInUseError{Kind: "category", ID: id, BlockedBy: blocked}
		}
		return refs.Category.Delete(id)
	})
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	return &dto.CategoryResponse{ID: c.ID, Name: c.Name, CreatedAt: c.CreatedAt}
}
