package commands

import (
	"errors"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrOrderActionCommandIsNotConstructed = errors.New(
		"OrderActionCommand must be created via NewOrderActionCommand constructor",
	)
	ErrOrderCodeIsRequired    = errs.NewValueIsRequiredError("orderCode")
	ErrRejectReasonIsRequired = errs.NewValueIsRequiredError("rejectReason")
)

// OrderActionCommand names an order and the actor acting on it. Accept,
// report and cancel need nothing else.
type OrderActionCommand struct { //nolint:recvcheck //using for validation
	actor     order.Actor
	orderCode string

	guard guard.ConstructorGuard
}

func NewOrderActionCommand(actor order.Actor, orderCode string) (OrderActionCommand, error) {
	cmd := OrderActionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setOrderCode(orderCode),
	); err != nil {
		return OrderActionCommand{}, err
	}

	return cmd, nil
}

func (c OrderActionCommand) Validate() error {
	return c.guard.Validate(ErrOrderActionCommandIsNotConstructed)
}

func (c OrderActionCommand) Actor() order.Actor {
	return c.actor
}

func (c OrderActionCommand) OrderCode() string {
	return c.orderCode
}

func (c *OrderActionCommand) setActor(actor order.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *OrderActionCommand) setOrderCode(orderCode string) error {
	if strings.TrimSpace(orderCode) == "" {
		return ErrOrderCodeIsRequired
	}

	c.orderCode = orderCode
	return nil
}

// RejectOrderCommand is a restaurant declining a Pending order.
type RejectOrderCommand struct {
	OrderActionCommand
	reason string
}

func NewRejectOrderCommand(actor order.Actor, orderCode, reason string) (RejectOrderCommand, error) {
	base, err := NewOrderActionCommand(actor, orderCode)
	if strings.TrimSpace(reason) == "" {
		err = errors.Join(err, ErrRejectReasonIsRequired)
	}
	if err != nil {
		return RejectOrderCommand{}, err
	}

	return RejectOrderCommand{OrderActionCommand: base, reason: reason}, nil
}

func (c RejectOrderCommand) Reason() string {
	return c.reason
}

// ReviewOrderCommand is a customer rating an Accepted order.
type ReviewOrderCommand struct {
	OrderActionCommand
	rating kernel.Rating
	review string
}

func NewReviewOrderCommand(actor order.Actor, orderCode string, rating int, review string) (ReviewOrderCommand, error) {
	base, err := NewOrderActionCommand(actor, orderCode)
	r, ratingErr := kernel.NewRating(rating)
	if err = errors.Join(err, ratingErr); err != nil {
		return ReviewOrderCommand{}, err
	}

	return ReviewOrderCommand{OrderActionCommand: base, rating: r, review: review}, nil
}

func (c ReviewOrderCommand) Rating() kernel.Rating {
	return c.rating
}

func (c ReviewOrderCommand) Review() string {
	return c.review
}
