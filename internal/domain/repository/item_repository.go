package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// ItemRepository define el puerto de persistencia para Item (DIP).
type ItemRepository interface {
	Create(item *entity.Item) error
	GetByID(id string) (*entity.Item, error)
	// GetByIDForUpdate bloquea la fila para update (SELECT FOR UPDATE).
	// Usado por el motor de órdenes durante validación + descuento de stock.
	GetByIDForUpdate(id string) (*entity.Item, error)
	GetByCode(code string) (*entity.Item, error)
	Update(item *entity.Item) error
	// UpdateStock actualiza solo el stock disponible (usado por el motor de órdenes).
	UpdateStock(itemID string, availableStock int64) error
	List(limit, offset int) ([]*entity.Item, error)
	// ListBelowMinStock lista items con stock por debajo de su mínimo configurado.
	ListBelowMinStock(limit, offset int) ([]*entity.Item, error)
	Delete(id string) error
}
