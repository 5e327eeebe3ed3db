package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/almacen-api/internal/application/orders"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// Ensure TxRunner implements orders.TxRunner and usecase.RefTxRunner.
var _ orders.TxRunner = (*TxRunner)(nil)
var _ usecase.RefTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con los repos del motor de órdenes
// atados a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	orderRepo repository.OrderRepository,
	itemRepo repository.ItemRepository,
	invoiceRepo repository.InvoiceRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	orderRepo := NewOrderRepository(tx)
	itemRepo := NewItemRepository(tx)
	invoiceRepo := NewInvoiceRepository(tx)

	if err := fn(orderRepo, itemRepo, invoiceRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunRef inicia una transacción con los repos de entidades de referencia
// atados a la tx. Usado por las eliminaciones con guard referencial y el
// reemplazo del conjunto de permisos de un rol: la comprobación de
// dependientes y la mutación ven el mismo snapshot.
func (r *TxRunner) RunRef(ctx context.Context, fn func(refs repository.ReferenceRepos) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	refs := repository.ReferenceRepos{
		Status:     NewStatusRepository(tx),
		Category:   NewCategoryRepository(tx),
		Warehouse:  NewWarehouseRepository(tx),
		Supplier:   NewSupplierRepository(tx),
		Client:     NewClientRepository(tx),
		Item:       NewItemRepository(tx),
		Role:       NewRoleRepository(tx),
		Permission: NewPermissionRepository(tx),
		Deps:       NewDependencyRepository(tx),
	}

	if err := fn(refs); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
