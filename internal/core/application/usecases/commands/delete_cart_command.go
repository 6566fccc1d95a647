package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrDeleteCartCommandIsNotConstructed = errors.New(
	"DeleteCartCommand must be created via NewDeleteCartCommand constructor",
)

// DeleteCartCommand discards the customer's open cart and all its items.
type DeleteCartCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.CustomerID

	guard guard.ConstructorGuard
}

func NewDeleteCartCommand(customerID kernel.CustomerID) (DeleteCartCommand, error) {
	if err := customerID.Validate(); err != nil {
		return DeleteCartCommand{}, err
	}

	return DeleteCartCommand{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteCartCommand) Validate() error {
	return c.guard.Validate(ErrDeleteCartCommandIsNotConstructed)
}

func (c DeleteCartCommand) CustomerID() kernel.CustomerID {
	return c.customerID
}
