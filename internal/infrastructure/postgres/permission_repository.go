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

var _ repository.PermissionRepository = (*PermissionRepo)(nil)

// PermissionRepo implementación de PermissionRepository (usable con pool o tx).
type PermissionRepo struct {
	q Querier
}

// NewPermissionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPermissionRepository(q Querier) *PermissionRepo {
	return &PermissionRepo{q: q}
}

// Create persiste un permiso. El nombre tiene constraint único.
func (r *PermissionRepo) Create(permission *entity.Permission) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO permissions (id, name, description, created_at) VALUES ($1, $2, $3, now())`,
		permission.ID, permission.Name, permission.Description,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert permission: %w", err)
	}
	return nil
}

// GetByID obtiene un permiso por ID.
func (r *PermissionRepo) GetByID(id string) (*entity.Permission, error) {
	var p entity.Permission
	err := r.q.QueryRow(context.Background(),
		`SELECT id, name, description, created_at FROM permissions WHERE id = $1`, id,
	).Scan(&p.ID, &p.Name, &p.Description, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get permission: %w", err)
	}
	return &p, nil
}

// GetByName obtiene un permiso por su nombre único.
func (r *PermissionRepo) GetByName(name string) (*entity.Permission, error) {
	var p entity.Permission
	err := r.q.QueryRow(context.Background(),
		`SELECT id, name, description, created_at FROM permissions WHERE name = $1`, name,
	).Scan(&p.ID, &p.Name, &p.Description, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get permission by name: %w", err)
	}
	return &p, nil
}

// List lista permisos con paginación.
func (r *PermissionRepo) List(limit, offset int) ([]*entity.Permission, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, name, description, created_at FROM permissions ORDER BY name LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("list permissions: %w", err)
	}
	defer rows.Close()
	var list []*entity.Permission
	for rows.Next() {
		var p entity.Permission
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan permission: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Delete elimina un permiso por ID.
func (r *PermissionRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM permissions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete permission: %w", err)
	}
	return nil
}
