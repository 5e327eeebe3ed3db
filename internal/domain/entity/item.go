package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de item del almacén.
const (
	ItemKindRawMaterial     = "raw_material"     // materia prima (tela, hilo, insumos)
	ItemKindFinishedProduct = "finished_product" // producto terminado (prenda)
)

// MaterialDetail atributos propios de la materia prima.
type MaterialDetail struct {
	UnitMeasure string          // metro, kilo, unidad
	Width       decimal.Decimal // ancho de la tela en metros (cero si no aplica)
	Composition string          // ej: 95% algodón 5% elastano
}

// GarmentDetail atributos propios de la prenda terminada.
type GarmentDetail struct {
	Size   string // XS..XXL o numérica
	Color  string
	Gender string // dama, caballero, unisex
}

// Item representa una unidad con stock del almacén. Kind discrimina entre
// materia prima y producto terminado; la lógica de stock, precio y código
// se escribe una sola vez sobre los campos comunes.
// AvailableStock nunca es negativo: todo ajuste que lo dejaría por debajo
// de cero se rechaza completo, no se recorta.
type Item struct {
	ID             string
	Code           string // único
	Name           string
	Kind           string // raw_material | finished_product
	UnitPrice      decimal.Decimal
	AvailableStock int64
	MinStock       *int64
	MaxStock       *int64
	StatusID       string
	SupplierID     string
	CategoryID     string
	WarehouseID    string
	UserID         string // usuario dueño del registro
	Material       *MaterialDetail
	Garment        *GarmentDetail
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// BelowMinStock indica si el stock disponible está por debajo del mínimo configurado.
func (i *Item) BelowMinStock() bool {
	return i.MinStock != nil && i.AvailableStock < *i.MinStock
}
