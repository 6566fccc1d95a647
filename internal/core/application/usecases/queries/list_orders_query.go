package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrListOrdersQueryIsNotConstructed = errors.New(
		"ListOrdersQuery must be created via NewListOrdersQuery constructor",
	)
)

// ListOrdersQuery lists the actor's own orders in one scope. Customers have
// active and past scopes; restaurants additionally have incoming.
type ListOrdersQuery struct {
	actor    order.Actor
	statuses []order.Status

	guard guard.ConstructorGuard
}

func NewListOrdersQuery(actor order.Actor, scope order.Scope) (ListOrdersQuery, error) {
	if err := actor.Validate(); err != nil {
		return ListOrdersQuery{}, err
	}

	statuses, err := order.StatusesFor(actor.Role, scope)
	if err != nil {
		return ListOrdersQuery{}, err
	}

	return ListOrdersQuery{
		actor:    actor,
		statuses: statuses,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) Actor() order.Actor {
	return q.actor
}

func (q ListOrdersQuery) Statuses() []order.Status {
	statuses := make([]order.Status, len(q.statuses))
	copy(statuses, q.statuses)
	return statuses
}

type OrderSummaryView struct {
	Code         string
	CustomerID   kernel.CustomerID
	RestaurantID kernel.RestaurantID
	Recipient    string
	Status       order.Status
	OrderDate    time.Time
	PlacedAt     time.Time
	TotalCost    decimal.Decimal
}
