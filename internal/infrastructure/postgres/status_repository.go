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

var _ repository.StatusRepository = (*StatusRepo)(nil)

// StatusRepo implementación de StatusRepository (usable con pool o tx).
type StatusRepo struct {
	q Querier
}

// NewStatusRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStatusRepository(q Querier) *StatusRepo {
	return &StatusRepo{q: q}
}

// Create persiste un estado. El par (category, label) tiene constraint único.
func (r *StatusRepo) Create(status *entity.Status) error {
	query := `
		INSERT INTO statuses (id, category, label, created_at)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query,
		status.ID, status.Category, status.Label, status.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert status: %w", err)
	}
	return nil
}

// GetByID obtiene un estado por ID.
func (r *StatusRepo) GetByID(id string) (*entity.Status, error) {
	query := `SELECT id, category, label, created_at FROM statuses WHERE id = $1`
	var s entity.Status
	err := r.q.QueryRow(context.Background(), query, id).Scan(&s.ID, &s.Category, &s.Label, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get status: %w", err)
	}
	return &s, nil
}

// GetByCategoryAndLabel obtiene un estado por su par único.
func (r *StatusRepo) GetByCategoryAndLabel(category, label string) (*entity.Status, error) {
	query := `SELECT id, category, label, created_at FROM statuses WHERE category = $1 AND label = $2`
	var s entity.Status
	err := r.q.QueryRow(context.Background(), query, category, label).Scan(&s.ID, &s.Category, &s.Label, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get status by category and label: %w", err)
	}
	return &s, nil
}

// ListByCategory lista estados de una categoría.
func (r *StatusRepo) ListByCategory(category string, limit, offset int) ([]*entity.Status, error) {
	query := `
		SELECT id, category, label, created_at FROM statuses
		WHERE category = $1 ORDER BY label LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, category, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list statuses: %w", err)
	}
	defer rows.Close()
	var list []*entity.Status
	for rows.Next() {
		var s entity.Status
		if err := rows.Scan(&s.ID, &s.Category, &s.Label, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan status: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Update actualiza la etiqueta de un estado.
func (r *StatusRepo) Update(status *entity.Status) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE statuses SET label = $2 WHERE id = $1`,
		status.ID, status.Label,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update status: %w", err)
	}
	return nil
}

// Delete elimina un estado por ID.
func (r *StatusRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM statuses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete status: %w", err)
	}
	return nil
}
