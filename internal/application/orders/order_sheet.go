package orders

import (
	"context"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// OrderSheetUseCase genera la hoja de alistamiento imprimible de una orden
// (para el piso del almacén).
type OrderSheetUseCase struct {
	orders    *OrderUseCase
	generator SheetGenerator
}

// NewOrderSheetUseCase construye el caso de uso.
func NewOrderSheetUseCase(orders *OrderUseCase, generator SheetGenerator) *OrderSheetUseCase {
	return &OrderSheetUseCase{orders: orders, generator: generator}
}

// OrderSheet carga la orden con cliente, estado y nombres de item, y delega
// la generación del PDF.
func (uc *OrderSheetUseCase) OrderSheet(ctx context.Context, orderID string) ([]byte, error) {
	order, err := uc.orders.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, &domain.NotFoundError{Kind: "order", ID: orderID}
	}

	status, err := uc.orders.statusRepo.GetByID(order.StatusID)
	if err != nil {
		return nil, err
	}

	var client *entity.Client
	if order.ClientID != nil {
		client, err = uc.orders.clientRepo.GetByID(*order.ClientID)
		if err != nil {
			return nil, err
		}
	}

	lines := make([]SheetLine, 0, len(order.Lines))
	for _, line := range order.Lines {
		item, err := uc.orders.itemRepo.GetByID(line.ItemID)
		if err != nil {
			return nil, err
		}
		sl := SheetLine{Line: line}
		if item != nil {
			sl.ItemCode = item.Code
			sl.ItemName = item.Name
		}
		lines = append(lines, sl)
	}

	return uc.generator.GenerateOrderSheet(ctx, order, client, status, lines)
}
