package queries

import (
	"errors"
	"strings"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery reads one order with its items. Only the customer who placed
// it and the restaurant that fulfils it may see it.
type GetOrderQuery struct {
	actor     order.Actor
	orderCode string

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(actor order.Actor, orderCode string) (GetOrderQuery, error) {
	var codeErr error
	if strings.TrimSpace(orderCode) == "" {
		codeErr = errs.NewValueIsRequiredError("orderCode")
	}
	if err := errors.Join(actor.Validate(), codeErr); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		actor:     actor,
		orderCode: orderCode,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) Actor() order.Actor {
	return q.actor
}

func (q GetOrderQuery) OrderCode() string {
	return q.orderCode
}

type OrderItemView struct {
	Name      string
	UnitPrice decimal.Decimal
	Quantity  int
	LineTotal decimal.Decimal
}

// OrderView is the full order as shown on its detail page.
type OrderView struct {
	Code            string
	CustomerID      kernel.CustomerID
	RestaurantID    kernel.RestaurantID
	Recipient       string
	Phone           string
	DeliveryAddress string
	Status          order.Status
	CourierName     string
	CourierPhone    string
	Review          string
	Rating          *int
	RejectReason    string
	OrderDate       time.Time
	PlacedAt        time.Time
	TotalCost       decimal.Decimal
	Items           []OrderItemView
}
