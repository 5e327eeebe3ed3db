package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// UserRepository puerto de persistencia para usuarios.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
	Update(user *entity.User) error
}

// RoleRepository puerto para roles y su conjunto de permisos (muchos a muchos).
type RoleRepository interface {
	Create(role *entity.Role) error
	GetByID(id string) (*entity.Role, error)
	GetByName(name string) (*entity.Role, error)
	List(limit, offset int) ([]*entity.Role, error)
	Delete(id string) error

	// Aristas rol-permiso. Sin atributos en la arista.
	ListPermissions(roleID string) ([]*entity.Permission, error)
	GrantExists(roleID, permissionID string) (bool, error)
	Grant(roleID, permissionID string) error
	Revoke(roleID, permissionID string) error
	ClearPermissions(roleID string) error
}

// PermissionRepository puerto para permisos.
type PermissionRepository interface {
	Create(permission *entity.Permission) error
	GetByID(id string) (*entity.Permission, error)
	GetByName(name string) (*entity.Permission, error)
	List(limit, offset int) ([]*entity.Permission, error)
	Delete(id string) error
}
