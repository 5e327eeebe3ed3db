package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrInsufficientStock  = errors.New("stock insuficiente")
	ErrAlreadyGranted     = errors.New("el permiso ya está asignado al rol")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
)

// NotFoundError indica que una entidad referenciada no existe.
// Compatible con errors.Is(err, ErrNotFound).
type NotFoundError struct {
	Kind string // item, order, status, category, warehouse, supplier, client, role, permission, user
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Kind, e.ID, ErrNotFound)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// InvalidOrderError indica una orden estructuralmente inválida
// (sin líneas, cantidad o precio no positivos, estado de otra categoría).
type InvalidOrderError struct {
	Reason string
}

func (e *InvalidOrderError) Error() string {
	return fmt.Sprintf("orden inválida: %s", e.Reason)
}

func (e *InvalidOrderError) Is(target error) bool { return target == ErrInvalidInput }

// InsufficientStockError indica que un ajuste dejaría el stock por debajo de cero.
// Nunca se recorta la cantidad: la operación completa se rechaza.
type InsufficientStockError struct {
	ItemID    string
	Available int64
	Requested int64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("item %s: stock insuficiente (disponible %d, solicitado %d)", e.ItemID, e.Available, e.Requested)
}

func (e *InsufficientStockError) Is(target error) bool { return target == ErrInsufficientStock }

// ResourceInUseError indica que la eliminación fue bloqueada por registros dependientes.
// BlockedBy nombra el tipo de dependiente que bloqueó (warehouse, item, order, ...).
type ResourceInUseError struct {
	Kind      string
	ID        string
	BlockedBy string
}

func (e *ResourceInUseError) Error() string {
	return fmt.Sprintf("%s %s en uso: referenciado por %s", e.Kind, e.ID, e.BlockedBy)
}

func (e *ResourceInUseError) Is(target error) bool { return target == ErrConflict }
