package entity

import "time"

// Categorías del catálogo de estados. La categoría particiona los estados
// por el tipo de entidad al que aplican.
const (
	StatusCategoryItem    = "item"
	StatusCategoryOrder   = "order"
	StatusCategoryUser    = "user"
	StatusCategoryGeneral = "general" // activo, inactivo, pendiente, cancelado
)

// UserStatusActive etiqueta del estado de usuario que habilita el login.
const UserStatusActive = "activo"

// Status valor de enumeración etiquetado ("Estado"): par (categoría, etiqueta),
// único por combinación. Compartido por muchas entidades; nunca es propiedad
// de una sola.
type Status struct {
	ID        string
	Category  string
	Label     string
	CreatedAt time.Time
}
