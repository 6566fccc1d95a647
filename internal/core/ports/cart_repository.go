package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/cart"
	"fulfillment/internal/core/domain/model/kernel"
)

// CartRepository owns the mapping from a customer to at most one open cart.
type CartRepository interface {
	// FindOpenCart returns the customer's open cart, or nil when there is none.
	FindOpenCart(ctx context.Context, customerID kernel.CustomerID) (*cart.Cart, error)

	// FindOpenCartForUpdate is FindOpenCart with the cart row locked until the
	// surrounding transaction ends.
	FindOpenCartForUpdate(ctx context.Context, customerID kernel.CustomerID) (*cart.Cart, error)

	// Open creates the customer's cart for restaurantID, or returns the existing
	// one when it is bound to the same restaurant. The insert itself detects an
	// open cart for another restaurant and fails with cart.ErrMultipleCartsNotAllowed.
	Open(ctx context.Context, customerID kernel.CustomerID, restaurantID kernel.RestaurantID) (*cart.Cart, error)

	// Save persists the line items of the cart.
	Save(ctx context.Context, aggregate *cart.Cart) error

	// Close deletes the cart and all its line items.
	Close(ctx context.Context, aggregate *cart.Cart) error
}
