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

// WarehouseUseCase casos de uso CRUD para bodegas.
type WarehouseUseCase struct {
	repo       repository.WarehouseRepository
	statusRepo repository.StatusRepository
	txRunner   RefTxRunner
}

// NewWarehouseUseCase construye el caso de uso.
func NewWarehouseUseCase(repo repository.WarehouseRepository, statusRepo repository.StatusRepository, txRunner RefTxRunner) *WarehouseUseCase {
	return &WarehouseUseCase{repo: repo, statusRepo: statusRepo, txRunner: txRunner}
}

// Create crea una bodega; el nombre es único y el estado debe existir.
func (uc *WarehouseUseCase) Create(in dto.CreateWarehouseRequest) (*dto.WarehouseResponse, error) {
	existing, err := uc.repo.GetByName(in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	status, err := uc.statusRepo.GetByID(in.StatusID)
	if err != nil {
		return nil, err
	}
	if status == nil {
		return nil, &domain.NotFoundError{Kind: "status", ID: in.StatusID}
	}
	now := time.Now()
	warehouse := &entity.Warehouse{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Address:   in.Address,
		StatusID:  in.StatusID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(warehouse); err != nil {
		return nil, err
	}
	return toWarehouseResponse(warehouse), nil
}

// GetByID obtiene una bodega por ID.
func (uc *WarehouseUseCase) GetByID(id string) (*dto.WarehouseResponse, error) {
	warehouse, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, nil
	}
	return toWarehouseResponse(warehouse), nil
}

// Update actualiza una bodega.
func (uc *WarehouseUseCase) Update(id string, in dto.UpdateWarehouseRequest) (*dto.WarehouseResponse, error) {
	warehouse, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, nil
	}
	if in.Name != nil {
		warehouse.Name = *in.Name
	}
	if in.Address != nil {
		warehouse.Address = *in.Address
	}
	if in.StatusID != nil {
		status, err := uc.statusRepo.GetByID(*in.StatusID)
		if err != nil {
			return nil, err
		}
		if status == nil {
			return nil, &domain.NotFoundError{Kind: "status", ID: *in.StatusID}
		}
		warehouse.StatusID = *in.StatusID
	}
	warehouse.UpdatedAt = time.Now()
	if err := uc.repo.Update(warehouse); err != nil {
		return nil, err
	}
	return toWarehouseResponse(warehouse), nil
}

// List lista bodegas con paginación.
func (uc *WarehouseUseCase) List(limit, offset int) ([]dto.WarehouseResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.WarehouseResponse, 0, len(list))
	for _, warehouse := range list {
		items = append(items, *toWarehouseResponse(warehouse))
	}
	return items, nil
}

// Delete elimina una bodega si ningún item la referencia.
func (uc *WarehouseUseCase) Delete(ctx context.Context, id string) error {
	return uc.txRunner.RunRef(ctx, func(refs repository.ReferenceRepos) error {
		warehouse, err := refs.Warehouse.GetByID(id)
		if err != nil {
			return err
		}
		if warehouse == nil {
			return &domain.NotFoundError{Kind: "warehouse", ID: id}
		}
		blocked, err := guard.ForWarehouse(refs.Deps, id).Check()
		if err != nil {
			return err
		}
		if blocked != "" {
			return &domain.ResourceInUseError{Kind: "warehouse", ID: id, BlockedBy: blocked}
		}
		return refs.Warehouse.Delete(id)
	})
}

func toWarehouseResponse(w *entity.Warehouse) *dto.WarehouseResponse {
	return &dto.WarehouseResponse{
		ID:        w.ID,
		Name:      w.Name,
		Address:   w.Address,
		StatusID:  w.StatusID,
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}
}
