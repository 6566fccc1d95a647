package commands

import (
	"errors"
	"fmt"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrUpdateCartItemCommandIsNotConstructed = errors.New(
	"UpdateCartItemCommand must be created via NewUpdateCartItemCommand constructor",
)

// UpdateCartItemCommand sets the quantity of an item already in the cart.
// Quantity zero removes the item.
type UpdateCartItemCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.CustomerID
	itemName   string
	quantity   int

	guard guard.ConstructorGuard
}

func NewUpdateCartItemCommand(customerID kernel.CustomerID, itemName string, quantity int) (UpdateCartItemCommand, error) {
	cmd := UpdateCartItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setItemName(itemName),
		cmd.setQuantity(quantity),
	); err != nil {
		return UpdateCartItemCommand{}, err
	}

	return cmd, nil
}

// NewRemoveCartItemCommand is NewUpdateCartItemCommand with quantity zero.
func NewRemoveCartItemCommand(customerID kernel.CustomerID, itemName string) (UpdateCartItemCommand, error) {
	return NewUpdateCartItemCommand(customerID, itemName, 0)
}

func (c UpdateCartItemCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCartItemCommandIsNotConstructed)
}

func (c UpdateCartItemCommand) CustomerID() kernel.CustomerID {
	return c.customerID
}

func (c UpdateCartItemCommand) ItemName() string {
	return c.itemName
}

func (c UpdateCartItemCommand) Quantity() int {
	return c.quantity
}

func (c *UpdateCartItemCommand) setCustomerID(customerID kernel.CustomerID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *UpdateCartItemCommand) setItemName(itemName string) error {
	if strings.TrimSpace(itemName) == "" {
		return ErrItemNameIsRequired
	}

	c.itemName = itemName
	return nil
}

func (c *UpdateCartItemCommand) setQuantity(quantity int) error {
	if quantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is negative", quantity))
	}

	c.quantity = quantity
	return nil
}
