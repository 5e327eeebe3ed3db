// Package orders implementa el motor de consistencia orden-inventario:
// creación atómica de órdenes contra items con stock (validar todo, luego
// mutar todo) y el ciclo de vida de la orden (cabecera, líneas, cierre,
// eliminación protegida por facturas).
package orders

import (
	"github.com/jhoicas/almacen-api/internal/domain/repository"
	"github.com/jhoicas/almacen-api/internal/domain/stock"
)

// OrderUseCase casos de uso del agregado Orden.
type OrderUseCase struct {
	txRunner   TxRunner
	ledger     *stock.Ledger
	orderRepo  repository.OrderRepository
	itemRepo   repository.ItemRepository
	statusRepo repository.StatusRepository
	clientRepo repository.ClientRepository
}

// NewOrderUseCase construye el caso de uso. Los repos recibidos aquí van
// atados al pool (lecturas); las escrituras pasan por el TxRunner.
func NewOrderUseCase(
	txRunner TxRunner,
	ledger *stock.Ledger,
	orderRepo repository.OrderRepository,
	itemRepo repository.ItemRepository,
	statusRepo repository.StatusRepository,
	clientRepo repository.ClientRepository,
) *OrderUseCase {
	return &OrderUseCase{
		txRunner:   txRunner,
		ledger:     ledger,
		orderRepo:  orderRepo,
		itemRepo:   itemRepo,
		statusRepo: statusRepo,
		clientRepo: clientRepo,
	}
}
