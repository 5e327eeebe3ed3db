package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderLineRequest línea solicitada en la creación de una orden.
type OrderLineRequest struct {
	ItemID    string          `json:"item_id" validate:"required"`
	Quantity  int64           `json:"quantity" validate:"min=1"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// CreateOrderRequest entrada para crear una orden.
type CreateOrderRequest struct {
	ClientID *string            `json:"client_id"`
	StatusID string             `json:"status_id" validate:"required"`
	Lines    []OrderLineRequest `json:"lines" validate:"required,min=1"`
}

// UpdateOrderHeaderRequest cambios permitidos sobre la cabecera.
type UpdateOrderHeaderRequest struct {
	StatusID *string `json:"status_id"`
	ClientID *string `json:"client_id"`
}

// UpdateOrderLineRequest cambios sobre una línea (nunca su identidad).
type UpdateOrderLineRequest struct {
	Quantity  *int64           `json:"quantity" validate:"omitempty,min=1"`
	UnitPrice *decimal.Decimal `json:"unit_price"`
}

// OrderLineResponse línea en respuestas.
type OrderLineResponse struct {
	ItemID    string          `json:"item_id"`
	Quantity  int64           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// OrderResponse salida de una orden con total derivado.
type OrderResponse struct {
	ID       string              `json:"id"`
	PlacedAt time.Time           `json:"placed_at"`
	ClosedAt *time.Time          `json:"closed_at,omitempty"`
	ClientID *string             `json:"client_id,omitempty"`
	StatusID string              `json:"status_id"`
	Lines    []OrderLineResponse `json:"lines"`
	Total    decimal.Decimal     `json:"total"`
}

// OrderListResponse lista paginada de órdenes.
type OrderListResponse struct {
	Items []OrderResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
