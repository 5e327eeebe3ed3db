package orders

import (
	"context"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para el motor de
// órdenes: o se confirma el conjunto completo de mutaciones o ninguna.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		orderRepo repository.OrderRepository,
		itemRepo repository.ItemRepository,
		invoiceRepo repository.InvoiceRepository,
	) error) error
}

// SheetLine línea enriquecida para la hoja de orden imprimible.
type SheetLine struct {
	Line     entity.OrderLine
	ItemCode string
	ItemName string
}

// SheetGenerator genera la representación imprimible (hoja de alistamiento)
// de una orden.
type SheetGenerator interface {
	GenerateOrderSheet(ctx context.Context, order *entity.Order, client *entity.Client, status *entity.Status, lines []SheetLine) ([]byte, error)
}
