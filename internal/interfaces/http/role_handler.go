package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
)

// RoleHandler maneja roles, permisos y la relación entre ambos (protegido).
type RoleHandler struct {
	roles *usecase.RoleUseCase
	perms *usecase.PermissionUseCase
}

// NewRoleHandler construye el handler.
func NewRoleHandler(roles *usecase.RoleUseCase, perms *usecase.PermissionUseCase) *RoleHandler {
	return &RoleHandler{roles: roles, perms: perms}
}

// Create godoc
// @Summary      Crear rol
// @Tags         roles
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateRoleRequest  true  "name"
// @Success      201   {object}  dto.RoleResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/roles [post]
func (h *RoleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateRoleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	role, err := h.roles.Create(in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(role)
}

// GetByID obtiene un rol con sus permisos.
func (h *RoleHandler) GetByID(c *fiber.Ctx) error {
	role, err := h.roles.GetByID(c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	if role == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "rol no encontrado"})
	}
	return c.JSON(role)
}

// List lista roles con paginación.
func (h *RoleHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()
	list, err := h.roles.List(page.Limit, page.Offset)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(list)
}

// Delete godoc
// @Summary      Eliminar rol
// @Description  Bloqueada mientras algún usuario tenga el rol asignado.
// @Tags         roles
// @Security     Bearer
// @Param        id  path  string  true  "ID del rol"
// @Success      204
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/roles/{id} [delete]
func (h *RoleHandler) Delete(c *fiber.Ctx) error {
	if err := h.roles.Delete(c.Context(), c.Params("id")); err != nil {
		return domainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Grant godoc
// @Summary      Otorgar un permiso a un rol
// @Tags         roles
// @Security     Bearer
// @Param        id      path  string  true  "ID del rol"
// @Param        permId  path  string  true  "ID del permiso"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse  "ya otorgado"
// @Router       /api/roles/{id}/permissions/{permId} [post]
func (h *RoleHandler) Grant(c *fiber.Ctx) error {
	if err := h.roles.Grant(c.Params("id"), c.Params("permId")); err != nil {
		return domainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Revoke godoc
// @Summary      Retirar un permiso de un rol
// @Tags         roles
// @Security     Bearer
// @Param        id      path  string  true  "ID del rol"
// @Param        permId  path  string  true  "ID del permiso"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse  "arista inexistente"
// @Router       /api/roles/{id}/permissions/{permId} [delete]
func (h *RoleHandler) Revoke(c *fiber.Ctx) error {
	if err := h.roles.Revoke(c.Params("id"), c.Params("permId")); err != nil {
		return domainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ReplacePermissions godoc
// @Summary      Sustituir el conjunto completo de permisos de un rol
// @Description  Todo o nada: si algún ID no existe ningún permiso cambia.
// @Tags         roles
// @Security     Bearer
// @Accept       json
// @Param        id    path  string  true  "ID del rol"
// @Param        body  body  dto.ReplacePermissionsRequest  true  "permission_ids"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/roles/{id}/permissions [put]
func (h *RoleHandler) ReplacePermissions(c *fiber.Ctx) error {
	var in dto.ReplacePermissionsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.roles.ReplacePermissions(c.Context(), c.Params("id"), in); err != nil {
		return domainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// CreatePermission registra un permiso.
func (h *RoleHandler) CreatePermission(c *fiber.Ctx) error {
	var in dto.CreatePermissionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	perm, err := h.perms.Create(in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(perm)
}

// GetPermission obtiene un permiso por ID.
func (h *RoleHandler) GetPermission(c *fiber.Ctx) error {
	perm, err := h.perms.GetByID(c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	if perm == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "permiso no encontrado"})
	}
	return c.JSON(perm)
}

// ListPermissions lista permisos con paginación.
func (h *RoleHandler) ListPermissions(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()
	list, err := h.perms.List(page.Limit, page.Offset)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(list)
}

// DeletePermission godoc
// @Summary      Eliminar permiso
// @Description  Bloqueada mientras algún rol lo tenga otorgado.
// @Tags         roles
// @Security     Bearer
// @Param        id  path  string  true  "ID del permiso"
// @Success      204
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/permissions/{id} [delete]
func (h *RoleHandler) DeletePermission(c *fiber.Ctx) error {
	if err := h.perms.Delete(c.Context(), c.Params("id")); err != nil {
		return domainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
