package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.DependencyRepository = (*DependencyRepo)(nil)

// DependencyRepo predicados de existencia para el guard referencial
// (usable con pool o tx). Cada consulta es un EXISTS puntual: observa el
// estado persistido actual, sin caché entre llamadas.
type DependencyRepo struct {
	q Querier
}

// NewDependencyRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDependencyRepository(q Querier) *DependencyRepo {
	return &DependencyRepo{q: q}
}

func (r *DependencyRepo) exists(query, id string) (bool, error) {
	var exists bool
	if err := r.q.QueryRow(context.Background(), query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("exists dependent: %w", err)
	}
	return exists, nil
}

// ExistsWarehouseByStatus alguna bodega referencia el estado.
func (r *DependencyRepo) ExistsWarehouseByStatus(statusID string) (bool, error) {
	return r.exists(`SELECT EXISTS (SELECT 1 FROM warehouses WHERE status_id = $1)`, statusID)
}

// ExistsItemByStatus algún item referencia el estado.
func (r *DependencyRepo) ExistsItemByStatus(statusID string) (bool, error) {
	return r.exists(`SELECT EXISTS (SELECT 1 FROM items WHERE status_id = $1)`, statusID)
}

// ExistsOrderByStatus alguna orden referencia el estado.
func (r *DependencyRepo) ExistsOrderByStatus(statusID string) (bool, error) {
	return r.exists(`SELECT EXISTS (SELECT 1 FROM orders WHERE status_id = $1)`, statusID)
}

// ExistsUserByStatus algún usuario referencia el estado.
func (r *DependencyRepo) ExistsUserByStatus(statusID string) (bool, error) {
	return r.exists(`SELECT EXISTS (SELECT 1 FROM users WHERE status_id = $1)`, statusID)
}

// ExistsItemByCategory algún item referencia la categoría.
func (r *DependencyRepo) ExistsItemByCategory(categoryID string) (bool, error) {
	return r.exists(`SELECT EXISTS (SELECT 1 FROM items WHERE category_id = $1)`, categoryID)
}

// ExistsItemByWarehouse algún item referencia la bodega.
func (r *DependencyRepo) ExistsItemByWarehouse(warehouseID string) (bool, error) {
	return r.exists(`SELECT EXISTS (SELECT 1 FROM items WHERE warehouse_id = $1)`, warehouseID)
}

// ExistsItemBySupplier algún item referencia el proveedor.
func (r *DependencyRepo) ExistsItemBySupplier(supplierID string) (bool, error) {
	return r.exists(`SELECT EXISTS (SELECT 1 FROM items WHERE supplier_id = $1)`, supplierID)
}

// ExistsOrderByClient alguna orden referencia el cliente.
func (r *DependencyRepo) ExistsOrderByClient(clientID string) (bool, error) {
	return r.exists(`SELECT EXISTS (SELECT 1 FROM orders WHERE client_id = $1)`, clientID)
}

// ExistsUserByRole algún usuario tiene asignado el rol.
func (r *DependencyRepo) ExistsUserByRole(roleID string) (bool, error) {
	return r.exists(`SELECT EXISTS (SELECT 1 FROM users WHERE role_id = $1)`, roleID)
}

// ExistsRoleByPermission algún rol tiene concedido el permiso.
func (r *DependencyRepo) ExistsRoleByPermission(permissionID string) (bool, error) {
	return r.exists(`SELECT EXISTS (SELECT 1 FROM role_permissions WHERE permission_id = $1)`, permissionID)
}

// ExistsActiveOrderLineByItem el item aparece en alguna línea de una orden
// no terminal (closed_at IS NULL).
func (r *DependencyRepo) ExistsActiveOrderLineByItem(itemID string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM order_lines ol
			JOIN orders o ON o.id = ol.order_id
			WHERE ol.item_id = $1 AND o.closed_at IS NULL
		)`
	return r.exists(query, itemID)
}
