// Package queries contains read operations. Handlers read straight from the
// database into response models and never go through the aggregates' units
// of work.
package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/customer"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrViewCartQueryIsNotConstructed = errors.New(
		"ViewCartQuery must be created via NewViewCartQuery constructor",
	)
)

// ViewCartQuery shows a customer's open cart priced for delivery to location.
//
// Example:
//
//	query, err := NewViewCartQuery(buyer, home)
//	if err != nil {
//	    return err
//	}
//	view, err := handler.Handle(ctx, query)
//	fmt.Println(view.Cost.FinalCost.StringFixed(2))
type ViewCartQuery struct {
	buyer    *customer.Customer
	location kernel.Location

	guard guard.ConstructorGuard
}

func NewViewCartQuery(buyer *customer.Customer, location kernel.Location) (ViewCartQuery, error) {
	if err := errors.Join(buyer.Validate(), location.Validate()); err != nil {
		return ViewCartQuery{}, err
	}

	return ViewCartQuery{
		buyer:    buyer,
		location: location,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (q ViewCartQuery) Validate() error {
	return q.guard.Validate(ErrViewCartQueryIsNotConstructed)
}

func (q ViewCartQuery) Buyer() *customer.Customer {
	return q.buyer
}

func (q ViewCartQuery) Location() kernel.Location {
	return q.location
}

type CartItemView struct {
	Name      string
	UnitPrice decimal.Decimal
	Quantity  int
	LineTotal decimal.Decimal
}

type ViewCartQueryResponse struct {
	RestaurantID   kernel.RestaurantID
	RestaurantName string
	Items          []CartItemView
	TotalQuantity  int
	Cost           services.CostBreakdown
}
