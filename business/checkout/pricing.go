package checkout

import (
	"math"
	"urbankicks/domain"
)

// Shipping methods and their flat costs.
const (
	ShippingStandard = "Standard"
	ShippingExpress  = "Express"
	ShippingSameDay  = "Same-day"
)

var shippingCosts = map[string]float64{
	ShippingStandard: 50,
	ShippingExpress:  100,
	ShippingSameDay:  250,
}

const (
	taxRate = 0.08

	// Flat discount applied whenever a promo code is present. The code
	// itself is not checked against the registry here; the server keeps
	// a promo_codes table for when that changes.
	promoDiscount = 5
)

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ShippingCost returns the flat cost for a method, falling back to
// Standard for anything unknown.
func ShippingCost(method string) float64 {
	if cost, ok := shippingCosts[method]; ok {
		return cost
	}
	return shippingCosts[ShippingStandard]
}

// ComputeTotals prices the cart snapshot. Every component is rounded to
// two decimals before the final sum, which is rounded again.
func ComputeTotals(items []domain.CartItem, shippingMethod, promoCode string) domain.Totals {
	subtotal := 0.0
	for _, item := range items {
		subtotal += item.Price * float64(item.Quantity)
	}
	subtotal = round2(subtotal)

	shippingCost := ShippingCost(shippingMethod)
	taxes := round2(subtotal * taxRate)

	discount := 0.0
	if promoCode != "" {
		discount = promoDiscount
	}

	return domain.Totals{
		Subtotal:     subtotal,
		ShippingCost: shippingCost,
		Taxes:        taxes,
		Discount:     discount,
		Total:        round2(subtotal + shippingCost + taxes - discount),
	}
}
