package orders

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// OrderLineInput línea solicitada: item, cantidad y precio capturado.
type OrderLineInput struct {
	ItemID    string
	Quantity  int64
	UnitPrice decimal.Decimal
}

// CreateOrderInput entrada para crear una orden.
type CreateOrderInput struct {
	ClientID *string
	StatusID string
	Lines    []OrderLineInput
}

// CreateOrder crea la orden completa como una sola unidad atómica:
//
//  1. valida la estructura (al menos una línea) y resuelve estado y cliente;
//  2. dentro de una transacción, valida cada línea en el orden recibido
//     contra el stock original del item, bloqueando la fila
//     (SELECT FOR UPDATE) sin mutar nada;
//  3. solo cuando el conjunto entero pasó, descuenta el stock línea a línea
//     y persiste cabecera, líneas e items ajustados en la misma transacción.
//
// La estructura en dos pasadas evita que una orden multi-línea consuma stock
// parcialmente antes de fallar en una línea posterior.
//
// Las líneas con item repetido no se combinan: cada una se valida contra el
// stock original capturado en la pasada 1 y se descuenta por separado en la
// pasada 2. Dos líneas del mismo item que individualmente caben pueden
// sobregirar en conjunto el valor que una comprobación combinada permitiría;
// el descuento sigue teniendo piso en cero, así que un sobregiro real hace
// fallar la transacción completa. Comportamiento pendiente de revisión con
// producto; no cambiarlo en silencio.
func (uc *OrderUseCase) CreateOrder(ctx context.Context, input CreateOrderInput) (*entity.Order, error) {
	if len(input.Lines) == 0 {
		return nil, &domain.InvalidOrderError{Reason: "se requiere al menos una línea"}
	}

	status, err := uc.statusRepo.GetByID(input.StatusID)
	if err != nil {
		return nil, err
	}
	if status == nil {
		return nil, &domain.NotFoundError{Kind: "status", ID: input.StatusID}
	}
	if status.Category != entity.StatusCategoryOrder {
		return nil, &domain.InvalidOrderError{Reason: "el estado no pertenece a la categoría de órdenes"}
	}

	if input.ClientID != nil {
		client, err := uc.clientRepo.GetByID(*input.ClientID)
		if err != nil {
			return nil, err
		}
		if client == nil {
			return nil, &domain.NotFoundError{Kind: "client", ID: *input.ClientID}
		}
	}

	now := time.Now()
	order := &entity.Order{
		ID:        uuid.New().String(),
		PlacedAt:  now,
		ClientID:  input.ClientID,
		StatusID:  input.StatusID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = uc.txRunner.Run(ctx, func(
		orderRepo repository.OrderRepository,
		itemRepo repository.ItemRepository,
		_ repository.InvoiceRepository,
	) error {
		// Pasada 1: validar todas las líneas, en el orden recibido, contra el
		// stock original. Cada item se bloquea una sola vez (FOR UPDATE) y su
		// stock de entrada se captura como snapshot.
		items := make(map[string]*entity.Item)
		original := make(map[string]int64)
		for _, line := range input.Lines {
			if line.Quantity < 1 {
				return &domain.InvalidOrderError{Reason: "la cantidad debe ser al menos 1"}
			}
			if !line.UnitPrice.GreaterThan(decimal.Zero) {
				return &domain.InvalidOrderError{Reason: "el precio unitario debe ser mayor que cero"}
			}
			item := items[line.ItemID]
			if item == nil {
				loaded, err := itemRepo.GetByIDForUpdate(line.ItemID)
				if err != nil {
					return err
				}
				if loaded == nil {
					return &domain.NotFoundError{Kind: "item", ID: line.ItemID}
				}
				items[line.ItemID] = loaded
				original[line.ItemID] = loaded.AvailableStock
				item = loaded
			}
			if original[line.ItemID] < line.Quantity {
				return &domain.InsufficientStockError{
					ItemID:    item.ID,
					Available: original[line.ItemID],
					Requested: line.Quantity,
				}
			}
		}

		// Pasada 2: descontar stock por cada línea y persistir todo junto.
		for _, line := range input.Lines {
			if err := uc.ledger.Adjust(items[line.ItemID], -line.Quantity); err != nil {
				return err
			}
		}
		for _, item := range items {
			if err := itemRepo.UpdateStock(item.ID, item.AvailableStock); err != nil {
				return err
			}
		}
		if err := orderRepo.Create(order); err != nil {
			return err
		}
		for _, line := range input.Lines {
			ol := &entity.OrderLine{
				OrderID:   order.ID,
				ItemID:    line.ItemID,
				Quantity:  line.Quantity,
				UnitPrice: line.UnitPrice,
			}
			if err := orderRepo.CreateLine(ol); err != nil {
				return err
			}
			order.Lines = append(order.Lines, *ol)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}
