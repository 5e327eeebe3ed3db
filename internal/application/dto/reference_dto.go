package dto

import "time"

// ── Estados ───────────────────────────────────────────────────────────────────

// CreateStatusRequest entrada para crear un estado del catálogo.
type CreateStatusRequest struct {
	Category string `json:"category" validate:"required,oneof=item order user general"`
	Label    string `json:"label" validate:"required,min=1,max=100"`
}

// StatusResponse salida de un estado.
type StatusResponse struct {
	ID       string `json:"id"`
	Category string `json:"category"`
	Label    string `json:"label"`
}

// StatusListResponse lista de estados de una categoría.
type StatusListResponse struct {
	Items []StatusResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}

// ── Categorías ────────────────────────────────────────────────────────────────

// CreateCategoryRequest entrada para crear una categoría.
type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// ── Bodegas ───────────────────────────────────────────────────────────────────

// CreateWarehouseRequest entrada para crear una bodega.
type CreateWarehouseRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=100"`
	Address  string `json:"address"`
	StatusID string `json:"status_id" validate:"required"`
}

// UpdateWarehouseRequest entrada para actualizar una bodega.
type UpdateWarehouseRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=1,max=100"`
	Address  *string `json:"address"`
	StatusID *string `json:"status_id"`
}

// WarehouseResponse salida de una bodega.
type WarehouseResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	StatusID  string    `json:"status_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ── Proveedores ───────────────────────────────────────────────────────────────

// CreateSupplierRequest entrada para crear un proveedor.
type CreateSupplierRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=200"`
	NIT   string `json:"nit" validate:"required"`
	Phone string `json:"phone"`
	Email string `json:"email" validate:"omitempty,email"`
}

// SupplierResponse salida de un proveedor.
type SupplierResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	NIT       string    `json:"nit"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// ── Clientes internos ─────────────────────────────────────────────────────────

// CreateClientRequest entrada para crear un cliente interno.
type CreateClientRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=200"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone"`
}

// ClientResponse salida de un cliente interno.
type ClientResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}
