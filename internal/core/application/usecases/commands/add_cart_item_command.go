package commands

import (
	"errors"
	"fmt"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrAddCartItemCommandIsNotConstructed = errors.New(
		"AddCartItemCommand must be created via NewAddCartItemCommand constructor",
	)
	ErrItemNameIsRequired = errs.NewValueIsRequiredError("itemName")
)

// AddCartItemCommand puts an item from a restaurant's menu into the
// customer's cart, opening the cart on first add.
//
// Example:
//
//	cmd, err := NewAddCartItemCommand(7, 3, "Margherita", decimal.RequireFromString("9.50"), 2)
//	if err != nil {
//	    return err
//	}
//	total, err := handler.Handle(ctx, cmd)
type AddCartItemCommand struct { //nolint:recvcheck //using for validation
	customerID   kernel.CustomerID
	restaurantID kernel.RestaurantID
	itemName     string
	unitPrice    decimal.Decimal
	quantity     int

	guard guard.ConstructorGuard
}

func NewAddCartItemCommand(
	customerID kernel.CustomerID,
	restaurantID kernel.RestaurantID,
	itemName string,
	unitPrice decimal.Decimal,
	quantity int,
) (AddCartItemCommand, error) {
	cmd := AddCartItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setRestaurantID(restaurantID),
		cmd.setItemName(itemName),
		cmd.setUnitPrice(unitPrice),
		cmd.setQuantity(quantity),
	); err != nil {
		return AddCartItemCommand{}, err
	}

	return cmd, nil
}

func (c AddCartItemCommand) Validate() error {
	return c.guard.Validate(ErrAddCartItemCommandIsNotConstructed)
}

func (c AddCartItemCommand) CustomerID() kernel.CustomerID {
	return c.customerID
}

func (c AddCartItemCommand) RestaurantID() kernel.RestaurantID {
	return c.restaurantID
}

func (c AddCartItemCommand) ItemName() string {
	return c.itemName
}

func (c AddCartItemCommand) UnitPrice() decimal.Decimal {
	return c.unitPrice
}

func (c AddCartItemCommand) Quantity() int {
	return c.quantity
}

func (c *AddCartItemCommand) setCustomerID(customerID kernel.CustomerID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *AddCartItemCommand) setRestaurantID(restaurantID kernel.RestaurantID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}

	c.restaurantID = restaurantID
	return nil
}

func (c *AddCartItemCommand) setItemName(itemName string) error {
	if strings.TrimSpace(itemName) == "" {
		return ErrItemNameIsRequired
	}

	c.itemName = itemName
	return nil
}

func (c *AddCartItemCommand) setUnitPrice(unitPrice decimal.Decimal) error {
	if err := kernel.ValidatePrice("unitPrice", unitPrice); err != nil {
		return err
	}

	c.unitPrice = unitPrice
	return nil
}

func (c *AddCartItemCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not positive", quantity))
	}

	c.quantity = quantity
	return nil
}
