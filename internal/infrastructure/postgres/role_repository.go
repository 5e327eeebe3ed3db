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

var _ repository.RoleRepository = (*RoleRepo)(nil)

// RoleRepo implementación de RoleRepository, incluida la tabla de unión
// role_permissions (usable con pool o tx).
type RoleRepo struct {
	q Querier
}

// NewRoleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewRoleRepository(q Querier) *RoleRepo {
	return &RoleRepo{q: q}
}

// Create persiste un rol. El nombre tiene constraint único.
func (r *RoleRepo) Create(role *entity.Role) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO roles (id, name, created_at) VALUES ($1, $2, now())`,
		role.ID, role.Name,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert role: %w", err)
	}
	return nil
}

// GetByID obtiene un rol por ID.
func (r *RoleRepo) GetByID(id string) (*entity.Role, error) {
	var role entity.Role
	err := r.q.QueryRow(context.Background(),
		`SELECT id, name, created_at FROM roles WHERE id = $1`, id,
	).Scan(&role.ID, &role.Name, &role.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get role: %w", err)
	}
	return &role, nil
}

// GetByName obtiene un rol por su nombre único.
func (r *RoleRepo) GetByName(name string) (*entity.Role, error) {
	var role entity.Role
	err := r.q.QueryRow(context.Background(),
		`SELECT id, name, created_at FROM roles WHERE name = $1`, name,
	).Scan(&role.ID, &role.Name, &role.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get role by name: %w", err)
	}
	return &role, nil
}

// List lista roles con paginación.
func (r *RoleRepo) List(limit, offset int) ([]*entity.Role, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, name, created_at FROM roles ORDER BY name LIMIT $1 OFFSET $2`, limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	defer rows.Close()
	var list []*entity.Role
	for rows.Next() {
		var role entity.Role
		if err := rows.Scan(&role.ID, &role.Name, &role.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan role: %w", err)
		}
		list = append(list, &role)
	}
	return list, rows.Err()
}

// Delete elimina un rol y sus aristas de permisos.
func (r *RoleRepo) Delete(id string) error {
	if _, err := r.q.Exec(context.Background(), `DELETE FROM role_permissions WHERE role_id = $1`, id); err != nil {
		return fmt.Errorf("delete role permissions: %w", err)
	}
	if _, err := r.q.Exec(context.Background(), `DELETE FROM roles WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete role: %w", err)
	}
	return nil
}

// ListPermissions lista los permisos concedidos a un rol.
func (r *RoleRepo) ListPermissions(roleID string) ([]*entity.Permission, error) {
	query := `
		SELECT p.id, p.name, p.description, p.created_at
		FROM permissions p
		JOIN role_permissions rp ON rp.permission_id = p.id
		WHERE rp.role_id = $1 ORDER BY p.name`
	rows, err := r.q.Query(context.Background(), query, roleID)
	if err != nil {
		return nil, fmt.Errorf("list role permissions: %w", err)
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

// GrantExists indica si la arista (rol, permiso) ya existe.
func (r *RoleRepo) GrantExists(roleID, permissionID string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS (SELECT 1 FROM role_permissions WHERE role_id = $1 AND permission_id = $2)`,
		roleID, permissionID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("grant exists: %w", err)
	}
	return exists, nil
}

// Grant inserta la arista (rol, permiso).
func (r *RoleRepo) Grant(roleID, permissionID string) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO role_permissions (role_id, permission_id) VALUES ($1, $2)`,
		roleID, permissionID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrAlreadyGranted
		}
		return fmt.Errorf("grant permission: %w", err)
	}
	return nil
}

// Revoke elimina la arista (rol, permiso).
func (r *RoleRepo) Revoke(roleID, permissionID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM role_permissions WHERE role_id = $1 AND permission_id = $2`,
		roleID, permissionID,
	)
	if err != nil {
		return fmt.Errorf("revoke permission: %w", err)
	}
	return nil
}

// ClearPermissions elimina todas las aristas de un rol.
func (r *RoleRepo) ClearPermissions(roleID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM role_permissions WHERE role_id = $1`, roleID,
	)
	if err != nil {
		return fmt.Errorf("clear role permissions: %w", err)
	}
	return nil
}
