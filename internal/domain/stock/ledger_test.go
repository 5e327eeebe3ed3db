package stock_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/stock"
)

func newItem(available int64) *entity.Item {
	return &entity.Item{
		ID:             "item-1",
		Code:           "TELA-001",
		Kind:           entity.ItemKindRawMaterial,
		UnitPrice:      decimal.NewFromInt(10),
		AvailableStock: available,
	}
}

// Consumo normal: el delta negativo descuenta del stock disponible.
func TestLedger_Adjust_Consumo(t *testing.T) {
	ledger := stock.NewLedger()
	item := newItem(10)

	require.NoError(t, ledger.Adjust(item, -4))
	assert.Equal(t, int64(6), item.AvailableStock)
}

// Reposición: el delta positivo suma.
func TestLedger_Adjust_Reposicion(t *testing.T) {
	ledger := stock.NewLedger()
	item := newItem(3)

	require.NoError(t, ledger.Adjust(item, 7))
	assert.Equal(t, int64(10), item.AvailableStock)
}

// Invariante: el stock nunca queda negativo; el ajuste se rechaza completo,
// no se recorta, y el item no se muta.
func TestLedger_Adjust_RechazaStockNegativo(t *testing.T) {
	ledger := stock.NewLedger()
	item := newItem(5)

	err := ledger.Adjust(item, -6)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInsufficientStock))

	var insufficientErr *domain.InsufficientStockError
	require.ErrorAs(t, err, &insufficientErr)
	assert.Equal(t, "item-1", insufficientErr.ItemID)
	assert.Equal(t, int64(5), insufficientErr.Available)
	assert.Equal(t, int64(6), insufficientErr.Requested)

	assert.Equal(t, int64(5), item.AvailableStock, "un ajuste rechazado no debe mutar el stock")
}

// Consumir exactamente todo el stock es válido (el piso es cero, no uno).
func TestLedger_Adjust_ConsumoExacto(t *testing.T) {
	ledger := stock.NewLedger()
	item := newItem(5)

	require.NoError(t, ledger.Adjust(item, -5))
	assert.Equal(t, int64(0), item.AvailableStock)
}

// El ledger no es idempotente: dos llamadas con el mismo delta se aplican
// dos veces. El caller llama exactamente una vez por evento lógico.
func TestLedger_Adjust_NoEsIdempotente(t *testing.T) {
	ledger := stock.NewLedger()
	item := newItem(10)

	require.NoError(t, ledger.Adjust(item, -4))
	require.NoError(t, ledger.Adjust(item, -4))
	assert.Equal(t, int64(2), item.AvailableStock)
}
