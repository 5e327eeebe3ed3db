package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo implementación del puerto ItemRepository sobre PostgreSQL (usable con pool o tx).
// Los atributos por tipo (materia prima / prenda) viven como columnas anulables
// en la misma tabla; Kind decide cuáles se materializan en la entidad.
type ItemRepo struct {
	q Querier
}

// NewItemRepository construye el adaptador de persistencia para items. Pasar pool o tx (Querier).
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

const itemColumns = `
	id, code, name, kind, unit_price, available_stock, min_stock, max_stock,
	status_id, supplier_id, category_id, warehouse_id, user_id,
	unit_measure, width, composition, size, color, gender,
	created_at, updated_at`

// Create persiste un nuevo item.
func (r *ItemRepo) Create(item *entity.Item) error {
	query := `
		INSERT INTO items (id, code, name, kind, unit_price, available_stock, min_stock, max_stock,
			status_id, supplier_id, category_id, warehouse_id, user_id,
			unit_measure, width, composition, size, color, gender, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)`
	unitMeasure, width, composition, size, color, gender := detailColumns(item)
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.Code, item.Name, item.Kind, item.UnitPrice, item.AvailableStock,
		item.MinStock, item.MaxStock, item.StatusID, item.SupplierID, item.CategoryID,
		item.WarehouseID, item.UserID,
		unitMeasure, width, composition, size, color, gender,
		item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

// GetByID obtiene un item por ID.
func (r *ItemRepo) GetByID(id string) (*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get item")
}

// GetByIDForUpdate obtiene un item y bloquea la fila (SELECT FOR UPDATE).
// El motor de órdenes lo usa para serializar validación + descuento de stock.
func (r *ItemRepo) GetByIDForUpdate(id string) (*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get item for update")
}

// GetByCode obtiene un item por código.
func (r *ItemRepo) GetByCode(code string) (*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE code = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, code), "get item by code")
}

// Update actualiza un item. No toca available_stock: eso es del motor de órdenes.
func (r *ItemRepo) Update(item *entity.Item) error {
	query := `
		UPDATE items SET name = $2, unit_price = $3, min_stock = $4, max_stock = $5,
			status_id = $6, supplier_id = $7, category_id = $8, warehouse_id = $9,
			unit_measure = $10, width = $11, composition = $12, size = $13, color = $14, gender = $15,
			updated_at = $16
		WHERE id = $1`
	unitMeasure, width, composition, size, color, gender := detailColumns(item)
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.Name, item.UnitPrice, item.MinStock, item.MaxStock,
		item.StatusID, item.SupplierID, item.CategoryID, item.WarehouseID,
		unitMeasure, width, composition, size, color, gender,
		item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update item: %w", err)
	}
	return nil
}

// UpdateStock actualiza solo el stock disponible (usado por el motor de órdenes).
func (r *ItemRepo) UpdateStock(itemID string, availableStock int64) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE items SET available_stock = $2, updated_at = now() WHERE id = $1`,
		itemID, availableStock,
	)
	if err != nil {
		return fmt.Errorf("update item stock: %w", err)
	}
	return nil
}

// List lista items con paginación.
func (r *ItemRepo) List(limit, offset int) ([]*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	return r.scanMany(query, limit, offset)
}

// ListBelowMinStock lista items con stock por debajo de su mínimo configurado.
func (r *ItemRepo) ListBelowMinStock(limit, offset int) ([]*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items
		WHERE min_stock IS NOT NULL AND available_stock < min_stock
		ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	return r.scanMany(query, limit, offset)
}

// Delete elimina un item por ID.
func (r *ItemRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	return nil
}

func (r *ItemRepo) scanOne(row pgx.Row, op string) (*entity.Item, error) {
	item, err := scanItem(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return item, nil
}

func (r *ItemRepo) scanMany(query string, args ...any) ([]*entity.Item, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()
	var list []*entity.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		list = append(list, item)
	}
	return list, rows.Err()
}

func scanItem(row pgx.Row) (*entity.Item, error) {
	var i entity.Item
	var unitMeasure, composition, size, color, gender *string
	var width *decimal.Decimal
	err := row.Scan(
		&i.ID, &i.Code, &i.Name, &i.Kind, &i.UnitPrice, &i.AvailableStock,
		&i.MinStock, &i.MaxStock, &i.StatusID, &i.SupplierID, &i.CategoryID,
		&i.WarehouseID, &i.UserID,
		&unitMeasure, &width, &composition, &size, &color, &gender,
		&i.CreatedAt, &i.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	derefStr := func(p *string) string {
		if p != nil {
			return *p
		}
		return ""
	}
	switch i.Kind {
	case entity.ItemKindRawMaterial:
		w := decimal.Zero
		if width != nil {
			w = *width
		}
		i.Material = &entity.MaterialDetail{
			UnitMeasure: derefStr(unitMeasure),
			Width:       w,
			Composition: derefStr(composition),
		}
	case entity.ItemKindFinishedProduct:
		i.Garment = &entity.GarmentDetail{
			Size:   derefStr(size),
			Color:  derefStr(color),
			Gender: derefStr(gender),
		}
	}
	return &i, nil
}

func detailColumns(item *entity.Item) (unitMeasure *string, width *decimal.Decimal, composition, size, color, gender *string) {
	if item.Material != nil {
		unitMeasure = nullIfEmpty(item.Material.UnitMeasure)
		w := item.Material.Width
		width = &w
		composition = nullIfEmpty(item.Material.Composition)
	}
	if item.Garment != nil {
		size = nullIfEmpty(item.Garment.Size)
		color = nullIfEmpty(item.Garment.Color)
		gender = nullIfEmpty(item.Garment.Gender)
	}
	return
}
