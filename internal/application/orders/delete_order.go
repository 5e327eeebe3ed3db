package orders

import (
	"context"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// DeleteOrder elimina la orden y todas sus líneas en una transacción.
// Bloqueada si la orden tiene facturas asociadas. El stock consumido por las
// líneas NO se restaura: las órdenes son registros terminales, no reversibles.
func (uc *OrderUseCase) DeleteOrder(ctx context.Context, id string) error {
	return uc.txRunner.Run(ctx, func(
		orderRepo repository.OrderRepository,
		_ repository.ItemRepository,
		invoiceRepo repository.InvoiceRepository,
	) error {
		order, err := orderRepo.GetByID(id)
		if err != nil {
			return err
		}
		if order == nil {
			return &domain.NotFoundError{Kind: "order", ID: id}
		}
		hasInvoices, err := invoiceRepo.ExistsByOrder(id)
		if err != nil {
			return err
		}
		if hasInvoices {
			return &domain.ResourceInUseError{Kind: "order", ID: id, BlockedBy: "invoice"}
		}
		if err := orderRepo.DeleteLines(id); err != nil {
			return err
		}
		return orderRepo.Delete(id)
	})
}

// GetOrder carga una orden con sus líneas; nil si no existe.
func (uc *OrderUseCase) GetOrder(ctx context.Context, id string) (*entity.Order, error) {
	return uc.orderRepo.GetByID(id)
}

// ListOrders lista órdenes con paginación.
func (uc *OrderUseCase) ListOrders(ctx context.Context, limit, offset int) ([]*entity.Order, error) {
	return uc.orderRepo.List(limit, offset)
}
