package dto

// CreateRoleRequest entrada para crear un rol.
type CreateRoleRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// CreatePermissionRequest entrada para crear un permiso.
type CreatePermissionRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Description string `json:"description"`
}

// ReplacePermissionsRequest conjunto completo de permisos a dejar en el rol.
type ReplacePermissionsRequest struct {
	PermissionIDs []string `json:"permission_ids" validate:"required"`
}

// PermissionResponse salida de un permiso.
type PermissionResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// RoleResponse salida de un rol con sus permisos.
type RoleResponse struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	Permissions []PermissionResponse `json:"permissions,omitempty"`
}
