package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// MaterialDTO atributos de materia prima.
type MaterialDTO struct {
	UnitMeasure string          `json:"unit_measure"`
	Width       decimal.Decimal `json:"width"`
	Composition string          `json:"composition"`
}

// GarmentDTO atributos de prenda terminada.
type GarmentDTO struct {
	Size   string `json:"size"`
	Color  string `json:"color"`
	Gender string `json:"gender"`
}

// CreateItemRequest entrada para crear un item (materia prima o producto terminado).
type CreateItemRequest struct {
	Code           string          `json:"code" validate:"required,min=1,max=100"`
	Name           string          `json:"name" validate:"required,min=1,max=200"`
	Kind           string          `json:"kind" validate:"required,oneof=raw_material finished_product"`
	UnitPrice      decimal.Decimal `json:"unit_price"`
	AvailableStock int64           `json:"available_stock"`
	MinStock       *int64          `json:"min_stock"`
	MaxStock       *int64          `json:"max_stock"`
	StatusID       string          `json:"status_id" validate:"required"`
	SupplierID     string          `json:"supplier_id" validate:"required"`
	CategoryID     string          `json:"category_id" validate:"required"`
	WarehouseID    string          `json:"warehouse_id" validate:"required"`
	Material       *MaterialDTO    `json:"material"`
	Garment        *GarmentDTO     `json:"garment"`
}

// UpdateItemRequest entrada para actualizar un item. El stock no se toca por
// aquí: lo maneja el motor de órdenes.
type UpdateItemRequest struct {
	Name        *string          `json:"name" validate:"omitempty,min=1,max=200"`
	UnitPrice   *decimal.Decimal `json:"unit_price"`
	MinStock    *int64           `json:"min_stock"`
	MaxStock    *int64           `json:"max_stock"`
	StatusID    *string          `json:"status_id"`
	SupplierID  *string          `json:"supplier_id"`
	CategoryID  *string          `json:"category_id"`
	WarehouseID *string          `json:"warehouse_id"`
	Material    *MaterialDTO     `json:"material"`
	Garment     *GarmentDTO      `json:"garment"`
}

// ItemResponse salida de un item.
type ItemResponse struct {
	ID             string          `json:"id"`
	Code           string          `json:"code"`
	Name           string          `json:"name"`
	Kind           string          `json:"kind"`
	UnitPrice      decimal.Decimal `json:"unit_price"`
	AvailableStock int64           `json:"available_stock"`
	MinStock       *int64          `json:"min_stock,omitempty"`
	MaxStock       *int64          `json:"max_stock,omitempty"`
	StatusID       string          `json:"status_id"`
	SupplierID     string          `json:"supplier_id"`
	CategoryID     string          `json:"category_id"`
	WarehouseID    string          `json:"warehouse_id"`
	Material       *MaterialDTO    `json:"material,omitempty"`
	Garment        *GarmentDTO     `json:"garment,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// ItemListResponse lista paginada de items.
type ItemListResponse struct {
	Items []ItemResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
