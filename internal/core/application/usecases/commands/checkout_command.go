package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/customer"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrCheckoutCommandIsNotConstructed = errors.New(
		"CheckoutCommand must be created via NewCheckoutCommand constructor",
	)
	ErrRecipientIsRequired       = errs.NewValueIsRequiredError("recipient")
	ErrPhoneIsRequired           = errs.NewValueIsRequiredError("phone")
	ErrDeliveryAddressIsRequired = errs.NewValueIsRequiredError("deliveryAddress")
)

// CheckoutCommand turns the customer's open cart into a Pending order
// delivered to location. QuotedCost, when set, is the final cost the customer
// was shown and must still match the cost computed at commit time.
//
// Example:
//
//	cmd, err := NewCheckoutCommand(buyer, order.Details{
//	    Recipient:       "Ann",
//	    Phone:           "555-0199",
//	    DeliveryAddress: "1 Main St",
//	}, home, &quoted)
//	if err != nil {
//	    return err
//	}
//	code, err := handler.Handle(ctx, cmd)
type CheckoutCommand struct { //nolint:recvcheck //using for validation
	customer   *customer.Customer
	details    order.Details
	location   kernel.Location
	quotedCost *decimal.Decimal

	guard guard.ConstructorGuard
}

func NewCheckoutCommand(
	buyer *customer.Customer,
	details order.Details,
	location kernel.Location,
	quotedCost *decimal.Decimal,
) (CheckoutCommand, error) {
	cmd := CheckoutCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomer(buyer),
		cmd.setDetails(details),
		cmd.setLocation(location),
		cmd.setQuotedCost(quotedCost),
	); err != nil {
		return CheckoutCommand{}, err
	}

	return cmd, nil
}

func (c CheckoutCommand) Validate() error {
	return c.guard.Validate(ErrCheckoutCommandIsNotConstructed)
}

func (c CheckoutCommand) Customer() *customer.Customer {
	return c.customer
}

func (c CheckoutCommand) Details() order.Details {
	return c.details
}

func (c CheckoutCommand) Location() kernel.Location {
	return c.location
}

// QuotedCost returns the cost the customer agreed to, or nil when none was given.
func (c CheckoutCommand) QuotedCost() *decimal.Decimal {
	return c.quotedCost
}

func (c *CheckoutCommand) setCustomer(buyer *customer.Customer) error {
	if err := buyer.Validate(); err != nil {
		return err
	}

	c.customer = buyer
	return nil
}

func (c *CheckoutCommand) setDetails(details order.Details) error {
	var err error
	if details.Recipient == "" {
		err = errors.Join(err, ErrRecipientIsRequired)
	}
	if details.Phone == "" {
		err = errors.Join(err, ErrPhoneIsRequired)
	}
	if details.DeliveryAddress == "" {
		err = errors.Join(err, ErrDeliveryAddressIsRequired)
	}
	if err != nil {
		return err
	}

	c.details = details
	return nil
}

func (c *CheckoutCommand) setLocation(location kernel.Location) error {
	if err := location.Validate(); err != nil {
		return err
	}

	c.location = location
	return nil
}

func (c *CheckoutCommand) setQuotedCost(quotedCost *decimal.Decimal) error {
	if quotedCost == nil {
		return nil
	}
	if err := kernel.ValidatePrice("quotedCost", *quotedCost); err != nil {
		return err
	}

	quoted := *quotedCost
	c.quotedCost = &quoted
	return nil
}
