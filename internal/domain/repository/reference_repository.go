package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// StatusRepository puerto para el catálogo de estados.
type StatusRepository interface {
	Create(status *entity.Status) error
	GetByID(id string) (*entity.Status, error)
	GetByCategoryAndLabel(category, label string) (*entity.Status, error)
	ListByCategory(category string, limit, offset int) ([]*entity.Status, error)
	Update(status *entity.Status) error
	Delete(id string) error
}

// CategoryRepository puerto para categorías de items.
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id string) (*entity.Category, error)
	GetByName(name string) (*entity.Category, error)
	List(limit, offset int) ([]*entity.Category, error)
	Update(category *entity.Category) error
	Delete(id string) error
}

// WarehouseRepository puerto para bodegas.
type WarehouseRepository interface {
	Create(warehouse *entity.Warehouse) error
	GetByID(id string) (*entity.Warehouse, error)
	GetByName(name string) (*entity.Warehouse, error)
	List(limit, offset int) ([]*entity.Warehouse, error)
	Update(warehouse *entity.Warehouse) error
	Delete(id string) error
}

// SupplierRepository puerto para proveedores.
type SupplierRepository interface {
	Create(supplier *entity.Supplier) error
	GetByID(id string) (*entity.Supplier, error)
	GetByNIT(nit string) (*entity.Supplier, error)
	List(limit, offset int) ([]*entity.Supplier, error)
	Update(supplier *entity.Supplier) error
	Delete(id string) error
}

// ClientRepository puerto para clientes internos.
type ClientRepository interface {
	Create(client *entity.Client) error
	GetByID(id string) (*entity.Client, error)
	GetByEmail(email string) (*entity.Client, error)
	List(limit, offset int) ([]*entity.Client, error)
	Update(client *entity.Client) error
	Delete(id string) error
}
