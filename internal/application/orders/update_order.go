package orders

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// UpdateHeaderInput cambios permitidos sobre la cabecera: solo estado y
// cliente. PlacedAt y las líneas no se tocan por aquí.
type UpdateHeaderInput struct {
	StatusID *string
	ClientID *string
}

// UpdateHeader actualiza estado y/o cliente de la cabecera. El estado nuevo
// debe existir y pertenecer a la categoría "order"; el cliente debe existir.
func (uc *OrderUseCase) UpdateHeader(ctx context.Context, id string, input UpdateHeaderInput) (*entity.Order, error) {
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, &domain.NotFoundError{Kind: "order", ID: id}
	}
	if input.StatusID != nil {
		status, err := uc.statusRepo.GetByID(*input.StatusID)
		if err != nil {
			return nil, err
		}
		if status == nil {
			return nil, &domain.NotFoundError{Kind: "status", ID: *input.StatusID}
		}
		if status.Category != entity.StatusCategoryOrder {
			return nil, &domain.InvalidOrderError{Reason: "el estado no pertenece a la categoría de órdenes"}
		}
		order.StatusID = *input.StatusID
	}
	if input.ClientID != nil {
		client, err := uc.clientRepo.GetByID(*input.ClientID)
		if err != nil {
			return nil, err
		}
		if client == nil {
			return nil, &domain.NotFoundError{Kind: "client", ID: *input.ClientID}
		}
		order.ClientID = input.ClientID
	}
	order.UpdatedAt = time.Now()
	if err := uc.orderRepo.UpdateHeader(order); err != nil {
		return nil, err
	}
	return order, nil
}

// UpdateLineInput cambios permitidos sobre una línea. La identidad
// (orden, item) es fija.
type UpdateLineInput struct {
	Quantity  *int64
	UnitPrice *decimal.Decimal
}

// UpdateLine cambia cantidad y/o precio de una línea existente. No revalida
// ni ajusta stock: cambiar la cantidad después de la creación no reconcilia
// AvailableStock. Limitación conocida del sistema.
func (uc *OrderUseCase) UpdateLine(ctx context.Context, orderID, itemID string, input UpdateLineInput) (*entity.OrderLine, error) {
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, &domain.NotFoundError{Kind: "order", ID: orderID}
	}
	line, err := uc.orderRepo.GetLine(orderID, itemID)
	if err != nil {
		return nil, err
	}
	if line == nil {
		return nil, &domain.NotFoundError{Kind: "order_line", ID: orderID + "/" + itemID}
	}
	if input.Quantity != nil {
		if *input.Quantity < 1 {
			return nil, &domain.InvalidOrderError{Reason: "la cantidad debe ser al menos 1"}
		}
		line.Quantity = *input.Quantity
	}
	if input.UnitPrice != nil {
		if !input.UnitPrice.GreaterThan(decimal.Zero) {
			return nil, &domain.InvalidOrderError{Reason: "el precio unitario debe ser mayor que cero"}
		}
		line.UnitPrice = *input.UnitPrice
	}
	if err := uc.orderRepo.UpdateLine(line); err != nil {
		return nil, err
	}
	return line, nil
}

// CloseOrder marca la orden como terminal fijando ClosedAt una sola vez.
// Las líneas de una orden cerrada dejan de bloquear la eliminación de sus items.
func (uc *OrderUseCase) CloseOrder(ctx context.Context, id string) (*entity.Order, error) {
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, &domain.NotFoundError{Kind: "order", ID: id}
	}
	if order.Closed() {
		return nil, domain.ErrConflict
	}
	now := time.Now()
	order.ClosedAt = &now
	order.UpdatedAt = now
	if err := uc.orderRepo.UpdateHeader(order); err != nil {
		return nil, err
	}
	return order, nil
}
