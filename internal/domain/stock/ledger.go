// Package stock implementa el libro de stock: ajustes atómicos sobre la
// cantidad disponible de un item con piso en cero.
package stock

import (
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// Ledger aplica ajustes con signo sobre AvailableStock (negativo = consumo,
// positivo = reposición). Muta la representación en memoria; la transacción
// que lo envuelve es responsable de persistir el item como parte de la misma
// unidad de trabajo.
//
// No es idempotente: llamar Adjust dos veces con el mismo delta lo aplica dos
// veces. El caller debe invocarlo exactamente una vez por evento lógico.
type Ledger struct{}

// NewLedger construye el libro de stock.
func NewLedger() *Ledger { return &Ledger{} }

// Adjust calcula AvailableStock + delta. Si el resultado es negativo retorna
// InsufficientStockError sin mutar nada; si no, fija el nuevo valor.
func (l *Ledger) Adjust(item *entity.Item, delta int64) error {
	newStock := item.AvailableStock + delta
	if newStock < 0 {
		return &domain.InsufficientStockError{
			ItemID:    item.ID,
			Available: item.AvailableStock,
			Requested: -delta,
		}
	}
	item.AvailableStock = newStock
	return nil
}
