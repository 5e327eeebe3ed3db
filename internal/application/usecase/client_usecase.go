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

// ClientUseCase casos de uso CRUD para clientes internos.
type ClientUseCase struct {
	repo     repository.ClientRepository
	txRunner RefTxRunner
}

// NewClientUseCase construye el caso de uso.
func NewClientUseCase(repo repository.ClientRepository, txRunner RefTxRunner) *ClientUseCase {
	return &ClientUseCase{repo: repo, txRunner: txRunner}
}

// Create crea un cliente interno; el email es clave natural única.
func (uc *ClientUseCase) Create(in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	existing, err := uc.repo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	client := &entity.Client{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// GetByID obtiene un cliente por ID.
func (uc *ClientUseCase) GetByID(id string) (*dto.ClientResponse, error) {
	client, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, nil
	}
	return toClientResponse(client), nil
}

// List lista clientes con paginación.
func (uc *ClientUseCase) List(limit, offset int) ([]dto.ClientResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ClientResponse, 0, len(list))
	for _, client := range list {
		items = append(items, *toClientResponse(client))
	}
	return items, nil
}

// Delete elimina un cliente si ninguna orden lo referencia.
func (uc *ClientUseCase) Delete(ctx context.Context, id string) error {
	return uc.txRunner.RunRef(ctx, func(refs repository.ReferenceRepos) error {
		client, err := refs.Client.GetByID(id)
		if err != nil {
			return err
		}
		if client == nil {
			return &domain.NotFoundError{Kind: "client", ID: id}
		}
		blocked, err := guard.ForClient(refs.Deps, id).Check()
		if err != nil {
			return err
		}
		if blocked != "" {
			return &domain.ResourceInUseError{Kind: "client", ID: id, BlockedBy: blocked}
		}
		return refs.Client.Delete(id)
	})
}

func toClientResponse(c *entity.Client) *dto.ClientResponse {
	return &dto.ClientResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		CreatedAt: c.CreatedAt,
	}
}
