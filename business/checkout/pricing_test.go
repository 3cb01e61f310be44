package checkout

import (
	"testing"
	"urbankicks/domain"

	"github.com/stretchr/testify/assert"
)

func TestShippingCost(t *testing.T) {
	assert.Equal(t, 50.0, ShippingCost(ShippingStandard))
	assert.Equal(t, 100.0, ShippingCost(ShippingExpress))
	assert.Equal(t, 250.0, ShippingCost(ShippingSameDay))
}

func TestShippingCostUnknownFallsBackToStandard(t *testing.T) {
	assert.Equal(t, 50.0, ShippingCost("Carrier Pigeon"))
	assert.Equal(t, 50.0, ShippingCost(""))
}

func TestComputeTotals(t *testing.T) {
	items := []domain.CartItem{
		{ProductID: 1, Price: 650, Quantity: 2},
	}

	totals := ComputeTotals(items, ShippingStandard, "")

	assert.Equal(t, 1300.0, totals.Subtotal)
	assert.Equal(t, 50.0, totals.ShippingCost)
	assert.Equal(t, 104.0, totals.Taxes)
	assert.Equal(t, 0.0, totals.Discount)
	assert.Equal(t, 1454.0, totals.Total)
}

func TestComputeTotalsWithPromoCode(t *testing.T) {
	items := []domain.CartItem{
		{ProductID: 1, Price: 650, Quantity: 2},
	}

	totals := ComputeTotals(items, ShippingExpress, "WELCOME10")

	assert.Equal(t, 1300.0, totals.Subtotal)
	assert.Equal(t, 100.0, totals.ShippingCost)
	assert.Equal(t, 104.0, totals.Taxes)
	assert.Equal(t, 5.0, totals.Discount)
	assert.Equal(t, 1499.0, totals.Total)
}

func TestComputeTotalsRoundsToCents(t *testing.T) {
	items := []domain.CartItem{
		{ProductID: 1, Price: 19.99, Quantity: 3},
	}

	totals := ComputeTotals(items, ShippingStandard, "")

	assert.Equal(t, 59.97, totals.Subtotal)
	assert.Equal(t, 4.8, totals.Taxes)
	assert.Equal(t, 114.77, totals.Total)
}

func TestComputeTotalsEmptyCart(t *testing.T) {
	totals := ComputeTotals(nil, ShippingStandard, "")

	assert.Equal(t, 0.0, totals.Subtotal)
	assert.Equal(t, 0.0, totals.Taxes)
	assert.Equal(t, 50.0, totals.Total)
}
