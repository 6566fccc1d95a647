package cart

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// MultipleCartsCode is the application code reported when a customer tries to
// shop from a second restaurant while a cart is open.
const MultipleCartsCode = 690

var (
	ErrCartIsNotConstructed = errs.NewValueIsRequiredError(
		"cart must be created via NewCart or RestoreCart constructors")

	// ErrMultipleCartsNotAllowed is returned when the customer already has an
	// open cart bound to a different restaurant.
	ErrMultipleCartsNotAllowed = &errs.ConflictError{
		Resource: "cart",
		Reason:   "Only 1 Cart Allowed",
		Code:     MultipleCartsCode,
	}
)

// Code builds the cart code for a (customer, restaurant) pair.
func Code(customerID kernel.CustomerID, restaurantID kernel.RestaurantID) string {
	return fmt.Sprintf("CC%sR%s", customerID, restaurantID)
}

// Cart is a customer's single open selection of items from one restaurant.
type Cart struct {
	code         string
	customerID   kernel.CustomerID
	restaurantID kernel.RestaurantID
	items        []*LineItem
	guard        guard.ConstructorGuard
}

func NewCart(customerID kernel.CustomerID, restaurantID kernel.RestaurantID) (*Cart, error) {
	return RestoreCart(customerID, restaurantID, nil)
}

// RestoreCart rebuilds a cart from storage.
func RestoreCart(customerID kernel.CustomerID, restaurantID kernel.RestaurantID, items []*LineItem) (*Cart, error) {
	if err := errors.Join(customerID.Validate(), restaurantID.Validate()); err != nil {
		return nil, err
	}

	c := &Cart{
		code:         Code(customerID, restaurantID),
		customerID:   customerID,
		restaurantID: restaurantID,
		items:        make([]*LineItem, 0, len(items)),
		guard:        guard.NewConstructorGuard(),
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
		if _, exists := c.findItem(item.Name()); exists {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				"items",
				fmt.Errorf("%q appears more than once", item.Name()),
			)
		}
		c.items = append(c.items, item)
	}

	return c, nil
}

func (c *Cart) Validate() error {
	if c == nil {
		return ErrCartIsNotConstructed
	}
	return c.guard.Validate(ErrCartIsNotConstructed)
}

func (c *Cart) Code() string {
	return c.code
}

func (c *Cart) CustomerID() kernel.CustomerID {
	return c.customerID
}

func (c *Cart) RestaurantID() kernel.RestaurantID {
	return c.restaurantID
}

// Items returns the line items in insertion order.
func (c *Cart) Items() []*LineItem {
	items := make([]*LineItem, len(c.items))
	copy(items, c.items)
	return items
}

func (c *Cart) Item(name string) (*LineItem, bool) {
	idx, ok := c.findItem(name)
	if !ok {
		return nil, false
	}
	return c.items[idx], true
}

func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// TotalQuantity is the sum of quantities over all line items.
func (c *Cart) TotalQuantity() int {
	total := 0
	for _, item := range c.items {
		total += item.Quantity()
	}
	return total
}

// Subtotal sums the rounded line totals without rounding the sum again.
func (c *Cart) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.items {
		total = total.Add(item.LineTotal())
	}
	return total
}

func (c *Cart) BelongsTo(restaurantID kernel.RestaurantID) bool {
	return c.restaurantID == restaurantID
}

// AddItem inserts the item with the given quantity when absent. When the item
// is already in the cart its quantity grows by one and the price captured on
// the first add is kept; unitPrice and quantity are ignored in that case.
func (c *Cart) AddItem(name string, unitPrice decimal.Decimal, quantity int) error {
	if idx, ok := c.findItem(name); ok {
		c.items[idx].increment()
		return nil
	}

	item, err := NewLineItem(name, unitPrice, quantity)
	if err != nil {
		return err
	}

	c.items = append(c.items, item)
	return nil
}

// SetItemQuantity updates the quantity of an item; zero removes the row.
func (c *Cart) SetItemQuantity(name string, quantity int) error {
	if quantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is negative", quantity),
		)
	}

	idx, ok := c.findItem(name)
	if !ok {
		return errs.NewObjectNotFoundError("cartItem", name)
	}

	if quantity == 0 {
		c.items = append(c.items[:idx], c.items[idx+1:]...)
		return nil
	}

	return c.items[idx].setQuantity(quantity)
}

func (c *Cart) RemoveItem(name string) error {
	return c.SetItemQuantity(name, 0)
}

func (c *Cart) findItem(name string) (int, bool) {
	for idx, item := range c.items {
		if item.Name() == name {
			return idx, true
		}
	}
	return -1, false
}
