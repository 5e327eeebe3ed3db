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

var validStatusCategories = map[string]bool{
	entity.StatusCategoryItem:    true,
	entity.StatusCategoryOrder:   true,
	entity.StatusCategoryUser:    true,
	entity.StatusCategoryGeneral: true,
}

// StatusUseCase casos de uso del catálogo de estados.
type StatusUseCase struct {
	repo     repository.StatusRepository
	txRunner RefTxRunner
}

// NewStatusUseCase construye el caso de uso.
func NewStatusUseCase(repo repository.StatusRepository, txRunner RefTxRunner) *StatusUseCase {
	return &StatusUseCase{repo: repo, txRunner: txRunner}
}

// Create crea un estado. El par (categoría, etiqueta) es único.
func (uc *StatusUseCase) Create(in dto.CreateStatusRequest) (*dto.StatusResponse, error) {
	if !validStatusCategories[in.Category] || in.Label == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByCategoryAndLabel(in.Category, in.Label)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	status := &entity.Status{
		ID:        uuid.New().String(),
		Category:  in.Category,
		Label:     in.Label,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(status); err != nil {
		return nil, err
	}
	return toStatusResponse(status), nil
}

// GetByID obtiene un estado por ID.
func (uc *StatusUseCase) GetByID(id string) (*dto.StatusResponse, error) {
	status, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if status == nil {
		return nil, nil
	}
	return toStatusResponse(status), nil
}

// ListByCategory lista los estados de una categoría.
func (uc *StatusUseCase) ListByCategory(category string, limit, offset int) (*dto.StatusListResponse, error) {
	if !validStatusCategories[category] {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.repo.ListByCategory(category, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.StatusResponse, 0, len(list))
	for _, status := range list {
		items = append(items, *toStatusResponse(status))
	}
	return &dto.StatusListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un estado si ningún dependiente lo referencia. Comprobación
// y borrado corren en la misma transacción.
func (uc *StatusUseCase) Delete(ctx context.Context, id string) error {
	return uc.txRunner.RunRef(ctx, func(refs repository.ReferenceRepos) error {
		status, err := refs.Status.GetByID(id)
		if err != nil {
			return err
		}
		if status == nil {
			return &domain.NotFoundError{Kind: "status", ID: id}
		}
		blocked, err := guard.ForStatus(refs.Deps, id).Check()
		if err != nil {
			return err
		}
		if blocked != "" {
			return &domain.ResourceInUseError{Kind: "status", ID: id, BlockedBy: blocked}
		}
		return refs.Status.Delete(id)
	})
}

func toStatusResponse(s *entity.Status) *dto.StatusResponse {
	return &dto.StatusResponse{ID: s.ID, Category: s.Category, Label: s.Label}
}
