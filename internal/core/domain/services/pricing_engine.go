package services

import (
	"errors"

	"fulfillment/internal/core/domain/model/customer"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// DeliveryRatePerKm is the delivery fee charged per kilometer of great-circle distance.
const DeliveryRatePerKm = 2

// PricedLine is a line that contributes to an item subtotal.
// Both cart line items and order items satisfy it.
type PricedLine interface {
	UnitPrice() decimal.Decimal
	Quantity() int
}

// Lines adapts a slice of concrete line types to PricedLine.
func Lines[T PricedLine](items []T) []PricedLine {
	lines := make([]PricedLine, len(items))
	for i, item := range items {
		lines[i] = item
	}
	return lines
}

// CostBreakdown is the checkout cost of a cart. Money values are rounded to
// cents for display; FinalCost is computed from the unrounded order cost.
type CostBreakdown struct {
	ItemSubtotal    decimal.Decimal
	DistanceKm      float64
	DeliveryFee     decimal.Decimal
	OrderCost       decimal.Decimal
	DiscountPercent int
	FinalCost       decimal.Decimal
}

// PricingEngine computes delivery distance and checkout cost. It holds no
// state and every method is deterministic given its inputs.
//
// Example usage:
//
//	engine := services.NewPricingEngine()
//	cost, err := engine.ComputeCheckoutCost(services.Lines(cart.Items()), home, shop.Location(), true)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(cost.FinalCost.StringFixed(2))
type PricingEngine struct{}

func NewPricingEngine() PricingEngine {
	return PricingEngine{}
}

// ComputeCheckoutCost prices lines delivered from restaurantLocation to
// customerLocation. The membership flag is resolved by the caller.
func (PricingEngine) ComputeCheckoutCost(
	lines []PricedLine,
	customerLocation kernel.Location,
	restaurantLocation kernel.Location,
	membershipActive bool,
) (CostBreakdown, error) {
	if err := errors.Join(customerLocation.Validate(), restaurantLocation.Validate()); err != nil {
		return CostBreakdown{}, err
	}

	subtotal := decimal.Zero
	for _, line := range lines {
		lineTotal := kernel.RoundMoney(line.UnitPrice().Mul(decimal.NewFromInt(int64(line.Quantity()))))
		subtotal = subtotal.Add(lineTotal)
	}

	distance := customerLocation.Distance(restaurantLocation)
	deliveryFee := decimal.NewFromFloat(distance).Mul(decimal.NewFromInt(DeliveryRatePerKm))
	orderCost := subtotal.Add(deliveryFee)

	discountPercent := 0
	if membershipActive {
		discountPercent = customer.MembershipDiscountPercent
	}
	discount := decimal.NewFromInt(int64(discountPercent)).Div(decimal.NewFromInt(100))
	finalCost := orderCost.Mul(decimal.NewFromInt(1).Sub(discount))

	return CostBreakdown{
		ItemSubtotal:    kernel.RoundMoney(subtotal),
		DistanceKm:      distance,
		DeliveryFee:     kernel.RoundMoney(deliveryFee),
		OrderCost:       kernel.RoundMoney(orderCost),
		DiscountPercent: discountPercent,
		FinalCost:       kernel.RoundMoney(finalCost),
	}, nil
}
