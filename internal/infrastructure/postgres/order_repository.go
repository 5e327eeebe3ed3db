package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación de OrderRepository (usable con pool o tx).
// La orden es dueña exclusiva de sus líneas: order_lines solo se toca por aquí.
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create persiste la cabecera de la orden.
func (r *OrderRepo) Create(order *entity.Order) error {
	query := `
		INSERT INTO orders (id, placed_at, closed_at, client_id, status_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.PlacedAt, order.ClosedAt, order.ClientID, order.StatusID,
		order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// CreateLine inserta una línea. La identidad compuesta (order_id, item_id)
// admite a lo sumo una fila por par: si la línea ya existe la cantidad se
// acumula sobre ella.
func (r *OrderRepo) CreateLine(line *entity.OrderLine) error {
	query := `
		INSERT INTO order_lines (order_id, item_id, quantity, unit_price)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (order_id, item_id)
		DO UPDATE SET quantity = order_lines.quantity + EXCLUDED.quantity`
	_, err := r.q.Exec(context.Background(), query,
		line.OrderID, line.ItemID, line.Quantity, line.UnitPrice,
	)
	if err != nil {
		return fmt.Errorf("insert order line: %w", err)
	}
	return nil
}

// GetByID carga la cabecera con sus líneas.
func (r *OrderRepo) GetByID(id string) (*entity.Order, error) {
	query := `
		SELECT id, placed_at, closed_at, client_id, status_id, created_at, updated_at
		FROM orders WHERE id = $1`
	var o entity.Order
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&o.ID, &o.PlacedAt, &o.ClosedAt, &o.ClientID, &o.StatusID, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	lines, err := r.linesByOrder(id)
	if err != nil {
		return nil, err
	}
	o.Lines = lines
	return &o, nil
}

// GetLine obtiene una línea por su identidad compuesta.
func (r *OrderRepo) GetLine(orderID, itemID string) (*entity.OrderLine, error) {
	query := `
		SELECT order_id, item_id, quantity, unit_price
		FROM order_lines WHERE order_id = $1 AND item_id = $2`
	var l entity.OrderLine
	err := r.q.QueryRow(context.Background(), query, orderID, itemID).Scan(
		&l.OrderID, &l.ItemID, &l.Quantity, &l.UnitPrice,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order line: %w", err)
	}
	return &l, nil
}

// UpdateHeader actualiza los campos mutables de la cabecera. placed_at nunca cambia.
func (r *OrderRepo) UpdateHeader(order *entity.Order) error {
	query := `
		UPDATE orders SET closed_at = $2, client_id = $3, status_id = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.ClosedAt, order.ClientID, order.StatusID, order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update order: %w", err)
	}
	return nil
}

// UpdateLine cambia cantidad/precio de una línea; nunca su identidad.
func (r *OrderRepo) UpdateLine(line *entity.OrderLine) error {
	query := `
		UPDATE order_lines SET quantity = $3, unit_price = $4
		WHERE order_id = $1 AND item_id = $2`
	_, err := r.q.Exec(context.Background(), query,
		line.OrderID, line.ItemID, line.Quantity, line.UnitPrice,
	)
	if err != nil {
		return fmt.Errorf("update order line: %w", err)
	}
	return nil
}

// List lista cabeceras con sus líneas, más recientes primero.
func (r *OrderRepo) List(limit, offset int) ([]*entity.Order, error) {
	query := `
		SELECT id, placed_at, closed_at, client_id, status_id, created_at, updated_at
		FROM orders ORDER BY placed_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.Order
	for rows.Next() {
		var o entity.Order
		if err := rows.Scan(&o.ID, &o.PlacedAt, &o.ClosedAt, &o.ClientID, &o.StatusID, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, &o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, o := range list {
		lines, err := r.linesByOrder(o.ID)
		if err != nil {
			return nil, err
		}
		o.Lines = lines
	}
	return list, nil
}

// DeleteLines elimina todas las líneas de una orden.
func (r *OrderRepo) DeleteLines(orderID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM order_lines WHERE order_id = $1`, orderID)
	if err != nil {
		return fmt.Errorf("delete order lines: %w", err)
	}
	return nil
}

// Delete elimina la cabecera. Las líneas deben borrarse antes (DeleteLines).
func (r *OrderRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	return nil
}

func (r *OrderRepo) linesByOrder(orderID string) ([]entity.OrderLine, error) {
	query := `
		SELECT order_id, item_id, quantity, unit_price
		FROM order_lines WHERE order_id = $1 ORDER BY item_id`
	rows, err := r.q.Query(context.Background(), query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list order lines: %w", err)
	}
	defer rows.Close()
	var lines []entity.OrderLine
	for rows.Next() {
		var l entity.OrderLine
		if err := rows.Scan(&l.OrderID, &l.ItemID, &l.Quantity, &l.UnitPrice); err != nil {
			return nil, fmt.Errorf("scan order line: %w", err)
		}
		lines = append(lines, l)
	}
	return lines, rows.Err()
}
