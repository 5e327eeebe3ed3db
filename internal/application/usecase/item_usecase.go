package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/guard"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// ItemUseCase casos de uso CRUD para items. El stock disponible no se edita
// por aquí después de la creación: lo muta el motor de órdenes.
type ItemUseCase struct {
	repo          repository.ItemRepository
	statusRepo    repository.StatusRepository
	supplierRepo  repository.SupplierRepository
	categoryRepo  repository.CategoryRepository
	warehouseRepo repository.WarehouseRepository
	txRunner      RefTxRunner
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(
	repo repository.ItemRepository,
	statusRepo repository.StatusRepository,
	supplierRepo repository.SupplierRepository,
	categoryRepo repository.CategoryRepository,
	warehouseRepo repository.WarehouseRepository,
	txRunner RefTxRunner,
) *ItemUseCase {
	return &ItemUseCase{
		repo:          repo,
		statusRepo:    statusRepo,
		supplierRepo:  supplierRepo,
		categoryRepo:  categoryRepo,
		warehouseRepo: warehouseRepo,
		txRunner:      txRunner,
	}
}

// Create crea un item. Código único; precio positivo; stock inicial no
// negativo; todas las referencias (estado, proveedor, categoría, bodega)
// deben existir. El detalle por tipo debe corresponder al Kind.
func (uc *ItemUseCase) Create(userID string, in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	if in.Kind != entity.ItemKindRawMaterial && in.Kind != entity.ItemKindFinishedProduct {
		return nil, domain.ErrInvalidInput
	}
	if !in.UnitPrice.GreaterThan(decimal.Zero) || in.AvailableStock < 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.Kind == entity.ItemKindRawMaterial && in.Garment != nil {
		return nil, domain.ErrInvalidInput
	}
	if in.Kind == entity.ItemKindFinishedProduct && in.Material != nil {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByCode(in.Code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	if err := uc.checkReferences(in.StatusID, in.SupplierID, in.CategoryID, in.WarehouseID); err != nil {
		return nil, err
	}

	now := time.Now()
	item := &entity.Item{
		ID:             uuid.New().String(),
		Code:           in.Code,
		Name:           in.Name,
		Kind:           in.Kind,
		UnitPrice:      in.UnitPrice,
		AvailableStock: in.AvailableStock,
		MinStock:       in.MinStock,
		MaxStock:       in.MaxStock,
		StatusID:       in.StatusID,
		SupplierID:     in.SupplierID,
		CategoryID:     in.CategoryID,
		WarehouseID:    in.WarehouseID,
		UserID:         userID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if in.Material != nil {
		item.Material = &entity.MaterialDetail{
			UnitMeasure: in.Material.UnitMeasure,
			Width:       in.Material.Width,
			Composition: in.Material.Composition,
		}
	}
	if in.Garment != nil {
		item.Garment = &entity.GarmentDetail{
			Size:   in.Garment.Size,
			Color:  in.Garment.Color,
			Gender: in.Garment.Gender,
		}
	}
	if err := uc.repo.Create(item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

func (uc *ItemUseCase) checkReferences(statusID, supplierID, categoryID, warehouseID string) error {
	status, err := uc.statusRepo.GetByID(statusID)
	if err != nil {
		return err
	}
	if status == nil {
		return &domain.NotFoundError{Kind: "status", ID: statusID}
	}
	supplier, err := uc.supplierRepo.GetByID(supplierID)
	if err != nil {
		return err
	}
	if supplier == nil {
		return &domain.NotFoundError{Kind: "supplier", ID: supplierID}
	}
	category, err := uc.categoryRepo.GetByID(categoryID)
	if err != nil {
		return err
	}
	if category == nil {
		return &domain.NotFoundError{Kind: "category", ID: categoryID}
	}
	warehouse, err := uc.warehouseRepo.GetByID(warehouseID)
	if err != nil {
		return err
	}
	if warehouse == nil {
		return &domain.NotFoundError{Kind: "warehouse", ID: warehouseID}
	}
	return nil
}

// GetByID obtiene un item por ID.
func (uc *ItemUseCase) GetByID(id string) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	return toItemResponse(item), nil
}

// Update actualiza un item. El stock disponible no se toca por aquí.
func (uc *ItemUseCase) Update(id string, in dto.UpdateItemRequest) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	if in.Name != nil {
		item.Name = *in.Name
	}
	if in.UnitPrice != nil {
		if !in.UnitPrice.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		item.UnitPrice = *in.UnitPrice
	}
	if in.MinStock != nil {
		item.MinStock = in.MinStock
	}
	if in.MaxStock != nil {
		item.MaxStock = in.MaxStock
	}
	if in.StatusID != nil {
		status, err := uc.statusRepo.GetByID(*in.StatusID)
		if err != nil {
			return nil, err
		}
		if status == nil {
			return nil, &domain.NotFoundError{Kind: "status", ID: *in.StatusID}
		}
		item.StatusID = *in.StatusID
	}
	if in.SupplierID != nil {
		supplier, err := uc.supplierRepo.GetByID(*in.SupplierID)
		if err != nil {
			return nil, err
		}
		if supplier == nil {
			return nil, &domain.NotFoundError{Kind: "supplier", ID: *in.SupplierID}
		}
		item.SupplierID = *in.SupplierID
	}
	if in.CategoryID != nil {
		category, err := uc.categoryRepo.GetByID(*in.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, &domain.NotFoundError{Kind: "category", ID: *in.CategoryID}
		}
		item.CategoryID = *in.CategoryID
	}
	if in.WarehouseID != nil {
		warehouse, err := uc.warehouseRepo.GetByID(*in.WarehouseID)
		if err != nil {
			return nil, err
		}
		if warehouse == nil {
			return nil, &domain.NotFoundError{Kind: "warehouse", ID: *in.WarehouseID}
		}
		item.WarehouseID = *in.WarehouseID
	}
	if in.Material != nil {
		if item.Kind != entity.ItemKindRawMaterial {
			return nil, domain.ErrInvalidInput
		}
		item.Material = &entity.MaterialDetail{
			UnitMeasure: in.Material.UnitMeasure,
			Width:       in.Material.Width,
			Composition: in.Material.Composition,
		}
	}
	if in.Garment != nil {
		if item.Kind != entity.ItemKindFinishedProduct {
			return nil, domain.ErrInvalidInput
		}
		item.Garment = &entity.GarmentDetail{
			Size:   in.Garment.Size,
			Color:  in.Garment.Color,
			Gender: in.Garment.Gender,
		}
	}
	item.UpdatedAt = time.Now()
	if err := uc.repo.Update(item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// List lista items con paginación.
func (uc *ItemUseCase) List(limit, offset int) (*dto.ItemListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	return toItemListResponse(list, limit, offset), nil
}

// ListBelowMinStock lista items con stock por debajo del mínimo configurado.
func (uc *ItemUseCase) ListBelowMinStock(limit, offset int) (*dto.ItemListResponse, error) {
	list, err := uc.repo.ListBelowMinStock(limit, offset)
	if err != nil {
		return nil, err
	}
	return toItemListResponse(list, limit, offset), nil
}

// Delete elimina un item si no aparece en líneas de órdenes activas
// (no terminales). Comprobación y borrado en la misma transacción.
func (uc *ItemUseCase) Delete(ctx context.Context, id string) error {
	return uc.txRunner.RunRef(ctx, func(refs repository.ReferenceRepos) error {
		item, err := refs.Item.GetByID(id)
		if err != nil {
			return err
		}
		if item == nil {
			return &domain.NotFoundError{Kind: "item", ID: id}
		}
		blocked, err := guard.ForItem(refs.Deps, id).Check()
		if err != nil {
			return err
		}
		if blocked != "" {
			return &domain.ResourceInUseError{Kind: "item", ID: id, BlockedBy: blocked}
		}
		return refs.Item.Delete(id)
	})
}

func toItemResponse(i *entity.Item) *dto.ItemResponse {
	resp := &dto.ItemResponse{
		ID:             i.ID,
		Code:           i.Code,
		Name:           i.Name,
		Kind:           i.Kind,
		UnitPrice:      i.UnitPrice,
		AvailableStock: i.AvailableStock,
		MinStock:       i.MinStock,
		MaxStock:       i.MaxStock,
		StatusID:       i.StatusID,
		SupplierID:     i.SupplierID,
		CategoryID:     i.CategoryID,
		WarehouseID:    i.WarehouseID,
		CreatedAt:      i.CreatedAt,
		UpdatedAt:      i.UpdatedAt,
	}
	if i.Material != nil {
		resp.Material = &dto.MaterialDTO{
			UnitMeasure: i.Material.UnitMeasure,
			Width:       i.Material.Width,
			Composition: i.Material.Composition,
		}
	}
	if i.Garment != nil {
		resp.Garment = &dto.GarmentDTO{
			Size:   i.Garment.Size,
			Color:  i.Garment.Color,
			Gender: i.Garment.Gender,
		}
	}
	return resp
}

func toItemListResponse(list []*entity.Item, limit, offset int) *dto.ItemListResponse {
	items := make([]dto.ItemResponse, 0, len(list))
	for _, item := range list {
		items = append(items, *toItemResponse(item))
	}
	return &dto.ItemListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}
}
