package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order cabecera de una orden. La orden es dueña exclusiva de sus líneas:
// eliminar la orden elimina todas sus líneas. PlacedAt se fija una sola vez
// en la creación; ClosedAt marca la orden como terminal.
type Order struct {
	ID        string
	PlacedAt  time.Time
	ClosedAt  *time.Time
	ClientID  *string // cliente interno, opcional
	StatusID  string  // estado de la categoría "order"
	Lines     []OrderLine
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Total suma los subtotales de las líneas actuales.
func (o *Order) Total() decimal.Decimal {
	total := decimal.Zero
	for _, line := range o.Lines {
		total = total.Add(line.Subtotal())
	}
	return total
}

// Closed indica si la orden es terminal.
func (o *Order) Closed() bool { return o.ClosedAt != nil }

// OrderLine línea de una orden: identidad compuesta (OrderID, ItemID).
// Quantity y UnitPrice se capturan al momento de la orden, independientes
// del precio actual del item; la identidad (orden, item) nunca cambia.
type OrderLine struct {
	OrderID   string
	ItemID    string
	Quantity  int64
	UnitPrice decimal.Decimal
}

// Subtotal cantidad por precio unitario capturado.
func (l OrderLine) Subtotal() decimal.Decimal {
	return decimal.NewFromInt(l.Quantity).Mul(l.UnitPrice)
}
