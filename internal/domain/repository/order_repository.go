package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// OrderRepository define el puerto de persistencia para Order y sus líneas.
// La orden es dueña exclusiva de sus líneas.
type OrderRepository interface {
	Create(order *entity.Order) error
	// CreateLine inserta una línea. Si ya existe una línea para (orden, item)
	// la cantidad se acumula sobre ella: la identidad compuesta admite a lo
	// sumo una fila por par.
	CreateLine(line *entity.OrderLine) error
	// GetByID carga la cabecera con sus líneas.
	GetByID(id string) (*entity.Order, error)
	GetLine(orderID, itemID string) (*entity.OrderLine, error)
	UpdateHeader(order *entity.Order) error
	// UpdateLine cambia cantidad/precio; nunca la identidad (orden, item).
	UpdateLine(line *entity.OrderLine) error
	List(limit, offset int) ([]*entity.Order, error)
	DeleteLines(orderID string) error
	Delete(id string) error
}

// InvoiceRepository define el puerto de persistencia para facturas de órdenes.
type InvoiceRepository interface {
	Create(invoice *entity.Invoice) error
	ExistsByOrder(orderID string) (bool, error)
	ListByOrder(orderID string) ([]*entity.Invoice, error)
}
