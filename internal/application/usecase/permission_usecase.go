package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/guard"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// PermissionUseCase casos de uso CRUD para permisos.
type PermissionUseCase struct {
	repo     repository.PermissionRepository
	txRunner RefTxRunner
}

// NewPermissionUseCase construye el caso de uso.
func NewPermissionUseCase(repo repository.PermissionRepository, txRunner RefTxRunner) *PermissionUseCase {
	return &PermissionUseCase{repo: repo, txRunner: txRunner}
}

// Create crea un permiso con nombre único.
func (uc *PermissionUseCase) Create(in dto.CreatePermissionRequest) (*dto.PermissionResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByName(in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	perm := &entity.Permission{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
	}
	if err := uc.repo.Create(perm); err != nil {
		return nil, err
	}
	return &dto.PermissionResponse{ID: perm.ID, Name: perm.Name, Description: perm.Description}, nil
}

// GetByID obtiene un permiso por ID.
func (uc *PermissionUseCase) GetByID(id string) (*dto.PermissionResponse, error) {
	perm, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if perm == nil {
		return nil, nil
	}
	return &dto.PermissionResponse{ID: perm.ID, Name: perm.Name, Description: perm.Description}, nil
}

// List lista permisos con paginación.
func (uc *PermissionUseCase) List(limit, offset int) ([]dto.PermissionResponse, error) {
	perms, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PermissionResponse, 0, len(perms))
	for _, p := range perms {
		out = append(out, dto.PermissionResponse{ID: p.ID, Name: p.Name, Description: p.Description})
	}
	return out, nil
}

// Delete elimina un permiso si ningún rol lo tiene concedido.
func (uc *PermissionUseCase) Delete(ctx context.Context, id string) error {
	return uc.txRunner.RunRef(ctx, func(refs repository.ReferenceRepos) error {
		perm, err := refs.Permission.GetByID(id)
		if err != nil {
			return err
		}
		if perm == nil {
			return &domain.NotFoundError{Kind: "permission", ID: id}
		}
		blocked, err := guard.ForPermission(refs.Deps, id).Check()
		if err != nil {
			return err
		}
		if blocked != "" {
			return &domain.ResourceInUseError{Kind: "permission", ID: id, BlockedBy: blocked}
		}
		return refs.Permission.Delete(id)
	})
}
