package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/orders"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// OrderHandler maneja las peticiones HTTP del motor de órdenes (protegido).
type OrderHandler struct {
	uc    *orders.OrderUseCase
	sheet *orders.OrderSheetUseCase
}

// NewOrderHandler construye el handler.
func NewOrderHandler(uc *orders.OrderUseCase, sheet *orders.OrderSheetUseCase) *OrderHandler {
	return &OrderHandler{uc: uc, sheet: sheet}
}

// Create godoc
// @Summary      Crear orden
// @Description  Crea la orden completa de forma atómica: valida todas las
//
//	líneas contra el stock disponible y solo entonces descuenta.
//	Cualquier línea inválida o con stock insuficiente rechaza la
//	orden entera sin tocar nada.
//
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOrderRequest  true  "status_id, lines; client_id opcional"
// @Success      201   {object}  dto.OrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/orders [post]
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	input := orders.CreateOrderInput{
		ClientID: in.ClientID,
		StatusID: in.StatusID,
	}
	for _, l := range in.Lines {
		input.Lines = append(input.Lines, orders.OrderLineInput{
			ItemID:    l.ItemID,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
		})
	}
	order, err := h.uc.CreateOrder(c.Context(), input)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toOrderResponse(order))
}

// GetByID godoc
// @Summary      Obtener orden
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la orden"
// @Success      200  {object}  dto.OrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id} [get]
func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	order, err := h.uc.GetOrder(c.Context(), c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	if order == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "orden no encontrada"})
	}
	return c.JSON(toOrderResponse(order))
}

// List godoc
// @Summary      Listar órdenes
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Tamaño de página (default 20)"
// @Param        offset  query  int  false  "Desplazamiento"
// @Success      200  {object}  dto.OrderListResponse
// @Router       /api/orders [get]
func (h *OrderHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()
	list, err := h.uc.ListOrders(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return domainError(c, err)
	}
	items := make([]dto.OrderResponse, 0, len(list))
	for _, order := range list {
		items = append(items, *toOrderResponse(order))
	}
	return c.JSON(dto.OrderListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	})
}

// UpdateHeader godoc
// @Summary      Actualizar cabecera de orden
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la orden"
// @Param        body  body  dto.UpdateOrderHeaderRequest  true  "status_id y/o client_id"
// @Success      200   {object}  dto.OrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/orders/{id} [put]
func (h *OrderHandler) UpdateHeader(c *fiber.Ctx) error {
	var in dto.UpdateOrderHeaderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	order, err := h.uc.UpdateHeader(c.Context(), c.Params("id"), orders.UpdateHeaderInput{
		StatusID: in.StatusID,
		ClientID: in.ClientID,
	})
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(toOrderResponse(order))
}

// UpdateLine godoc
// @Summary      Actualizar línea de orden
// @Description  Cambia cantidad y/o precio de una línea. El stock del item
//
//	no se reconcilia.
//
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id      path  string  true  "ID de la orden"
// @Param        itemId  path  string  true  "ID del item de la línea"
// @Param        body    body  dto.UpdateOrderLineRequest  true  "quantity y/o unit_price"
// @Success      200   {object}  dto.OrderLineResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/lines/{itemId} [put]
func (h *OrderHandler) UpdateLine(c *fiber.Ctx) error {
	var in dto.UpdateOrderLineRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	line, err := h.uc.UpdateLine(c.Context(), c.Params("id"), c.Params("itemId"), orders.UpdateLineInput{
		Quantity:  in.Quantity,
		UnitPrice: in.UnitPrice,
	})
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(dto.OrderLineResponse{
		ItemID:    line.ItemID,
		Quantity:  line.Quantity,
		UnitPrice: line.UnitPrice,
		Subtotal:  line.Subtotal(),
	})
}

// Close godoc
// @Summary      Cerrar orden
// @Description  Marca la orden como terminal. Una orden cerrada deja de
//
//	bloquear la eliminación de sus items.
//
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la orden"
// @Success      200  {object}  dto.OrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/close [post]
func (h *OrderHandler) Close(c *fiber.Ctx) error {
	order, err := h.uc.CloseOrder(c.Context(), c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(toOrderResponse(order))
}

// Delete godoc
// @Summary      Eliminar orden
// @Description  Elimina la orden y todas sus líneas. Bloqueada si la orden
//
//	tiene facturas. El stock descontado no se restaura.
//
// @Tags         orders
// @Security     Bearer
// @Param        id  path  string  true  "ID de la orden"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/orders/{id} [delete]
func (h *OrderHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.DeleteOrder(c.Context(), c.Params("id")); err != nil {
		return domainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Sheet godoc
// @Summary      Hoja de alistamiento PDF
// @Tags         orders
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "ID de la orden"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/sheet [get]
func (h *OrderHandler) Sheet(c *fiber.Ctx) error {
	pdfBytes, err := h.sheet.OrderSheet(c.Context(), c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="orden-`+c.Params("id")+`.pdf"`)
	return c.Send(pdfBytes)
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	resp := &dto.OrderResponse{
		ID:       o.ID,
		PlacedAt: o.PlacedAt,
		ClosedAt: o.ClosedAt,
		ClientID: o.ClientID,
		StatusID: o.StatusID,
		Lines:    make([]dto.OrderLineResponse, 0, len(o.Lines)),
		Total:    o.Total(),
	}
	for _, l := range o.Lines {
		resp.Lines = append(resp.Lines, dto.OrderLineResponse{
			ItemID:    l.ItemID,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
			Subtotal:  l.Subtotal(),
		})
	}
	return resp
}
