package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/guard"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// RoleUseCase administra roles y su conjunto de permisos. La arista
// rol-permiso no tiene atributos: conceder dos veces es un error, no un
// reemplazo silencioso.
type RoleUseCase struct {
	roleRepo repository.RoleRepository
	permRepo repository.PermissionRepository
	txRunner RefTxRunner
}

// NewRoleUseCase construye el caso de uso.
func NewRoleUseCase(roleRepo repository.RoleRepository, permRepo repository.PermissionRepository, txRunner RefTxRunner) *RoleUseCase {
	return &RoleUseCase{roleRepo: roleRepo, permRepo: permRepo, txRunner: txRunner}
}

// Create crea un rol con nombre único.
func (uc *RoleUseCase) Create(in dto.CreateRoleRequest) (*dto.RoleResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.roleRepo.GetByName(in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	role := &entity.Role{ID: uuid.New().String(), Name: in.Name}
	if err := uc.roleRepo.Create(role); err != nil {
		return nil, err
	}
	return &dto.RoleResponse{ID: role.ID, Name: role.Name}, nil
}

// GetByID obtiene un rol con sus permisos.
func (uc *RoleUseCase) GetByID(id string) (*dto.RoleResponse, error) {
	role, err := uc.roleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, nil
	}
	perms, err := uc.roleRepo.ListPermissions(id)
	if err != nil {
		return nil, err
	}
	return toRoleResponse(role, perms), nil
}

// List lista roles sin expandir permisos.
func (uc *RoleUseCase) List(limit, offset int) ([]dto.RoleResponse, error) {
	roles, err := uc.roleRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.RoleResponse, 0, len(roles))
	for _, r := range roles {
		out = append(out, dto.RoleResponse{ID: r.ID, Name: r.Name})
	}
	return out, nil
}

// Delete elimina un rol si ningún usuario lo tiene asignado.
func (uc *RoleUseCase) Delete(ctx context.Context, id string) error {
	return uc.txRunner.RunRef(ctx, func(refs repository.ReferenceRepos) error {
		role, err := refs.Role.GetByID(id)
		if err != nil {
			return err
		}
		if role == nil {
			return &domain.NotFoundError{Kind: "role", ID: id}
		}
		blocked, err := guard.ForRole(refs.Deps, id).Check()
		if err != nil {
			return err
		}
		if blocked != "" {
			return &domain.ResourceInUseError{Kind: "role", ID: id, BlockedBy: blocked}
		}
		return refs.Role.Delete(id)
	})
}

// Grant concede un permiso a un rol. Conceder un permiso ya presente falla:
// la arista no tiene atributos que actualizar.
func (uc *RoleUseCase) Grant(roleID, permissionID string) error {
	role, err := uc.roleRepo.GetByID(roleID)
	if err != nil {
		return err
	}
	if role == nil {
		return &domain.NotFoundError{Kind: "role", ID: roleID}
	}
	perm, err := uc.permRepo.GetByID(permissionID)
	if err != nil {
		return err
	}
	if perm == nil {
		return &domain.NotFoundError{Kind: "permission", ID: permissionID}
	}
	exists, err := uc.roleRepo.GrantExists(roleID, permissionID)
	if err != nil {
		return err
	}
	if exists {
		return domain.ErrAlreadyGranted
	}
	return uc.roleRepo.Grant(roleID, permissionID)
}

// Revoke retira un permiso de un rol. Revocar una arista inexistente falla.
func (uc *RoleUseCase) Revoke(roleID, permissionID string) error {
	exists, err := uc.roleRepo.GrantExists(roleID, permissionID)
	if err != nil {
		return err
	}
	if !exists {
		return &domain.NotFoundError{Kind: "role_permission", ID: roleID + "/" + permissionID}
	}
	return uc.roleRepo.Revoke(roleID, permissionID)
}

// ReplacePermissions sustituye el conjunto completo de permisos del rol.
// Todo o nada: cada ID se resuelve antes de tocar la tabla; un ID
// inexistente deja el conjunto original intacto.
func (uc *RoleUseCase) ReplacePermissions(ctx context.Context, roleID string, in dto.ReplacePermissionsRequest) error {
	return uc.txRunner.RunRef(ctx, func(refs repository.ReferenceRepos) error {
		role, err := refs.Role.GetByID(roleID)
		if err != nil {
			return err
		}
		if role == nil {
			return &domain.NotFoundError{Kind: "role", ID: roleID}
		}
		// Primera pasada: resolver todos los IDs sin mutar nada.
		seen := make(map[string]bool, len(in.PermissionIDs))
		for _, pid := range in.PermissionIDs {
			if seen[pid] {
				continue
			}
			perm, err := refs.Permission.GetByID(pid)
			if err != nil {
				return err
			}
			if perm == nil {
				return &domain.NotFoundError{Kind: "permission", ID: pid}
			}
			seen[pid] = true
		}
		// Segunda pasada: limpiar y volver a conceder.
		if err := refs.Role.ClearPermissions(roleID); err != nil {
			return err
		}
		for pid := range seen {
			if err := refs.Role.Grant(roleID, pid); err != nil {
				return err
			}
		}
		return nil
	})
}

func toRoleResponse(role *entity.Role, perms []*entity.Permission) *dto.RoleResponse {
	out := &dto.RoleResponse{ID: role.ID, Name: role.Name}
	for _, p := range perms {
		out.Permissions = append(out.Permissions, dto.PermissionResponse{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
		})
	}
	return out
}
