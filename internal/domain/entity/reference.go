package entity

import "time"

// Entidades de referencia compartidas: independientes, identificadas por ID,
// con clave natural única opcional (nombre, código, email). Cada una tiene
// cero o más colecciones dependientes en el resto del sistema; su
// eliminación pasa primero por el guard referencial.

// Category categoría de items.
type Category struct {
	ID        string
	Name      string // único
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Warehouse bodega o sección física del almacén.
type Warehouse struct {
	ID        string
	Name      string // único
	Address   string
	StatusID  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Supplier proveedor de materia prima o producto terminado.
type Supplier struct {
	ID        string
	Name      string
	NIT       string // único
	Phone     string
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Client cliente interno al que se asocian órdenes.
type Client struct {
	ID        string
	Name      string
	Email     string // único
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
