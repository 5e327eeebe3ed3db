package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice factura generada a partir de una orden. Una orden con al menos
// una factura no puede eliminarse.
type Invoice struct {
	ID       string
	OrderID  string
	Number   string // único
	Total    decimal.Decimal
	IssuedAt time.Time
}
