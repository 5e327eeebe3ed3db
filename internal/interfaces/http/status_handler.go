package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
)

// StatusHandler maneja el catálogo de estados (protegido).
type StatusHandler struct {
	uc *usecase.StatusUseCase
}

// NewStatusHandler construye el handler.
func NewStatusHandler(uc *usecase.StatusUseCase) *StatusHandler {
	return &StatusHandler{uc: uc}
}

// Create godoc
// @Summary      Crear estado
// @Tags         statuses
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateStatusRequest  true  "category, label"
// @Success      201   {object}  dto.StatusResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/statuses [post]
func (h *StatusHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	status, err := h.uc.Create(in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(status)
}

// GetByID obtiene un estado por ID.
func (h *StatusHandler) GetByID(c *fiber.Ctx) error {
	status, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	if status == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "estado no encontrado"})
	}
	return c.JSON(status)
}

// ListByCategory godoc
// @Summary      Listar estados de una categoría
// @Tags         statuses
// @Security     Bearer
// @Produce      json
// @Param        category  query  string  true  "item | order | user | general"
// @Success      200  {object}  dto.StatusListResponse
// @Router       /api/statuses [get]
func (h *StatusHandler) ListByCategory(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()
	list, err := h.uc.ListByCategory(c.Query("category"), page.Limit, page.Offset)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(list)
}

// Delete godoc
// @Summary      Eliminar estado
// @Description  Bloqueada mientras alguna bodega, item, orden o usuario lo referencie.
// @Tags         statuses
// @Security     Bearer
// @Param        id  path  string  true  "ID del estado"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/statuses/{id} [delete]
func (h *StatusHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return domainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
