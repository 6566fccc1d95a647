package ports

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract of the order ledger.
type OrderRepository interface {
	// Add persists a new order and its item snapshot.
	// A duplicate order code fails with a Conflict error.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with its items by code.
	// Returns a Not-Found error when the code is unknown.
	Get(ctx context.Context, code string) (*order.Order, error)

	// GetForUpdate is Get with the order row locked until the surrounding
	// transaction ends.
	GetForUpdate(ctx context.Context, code string) (*order.Order, error)

	// Transition writes the mutable fields of aggregate provided the stored
	// status still equals from. Otherwise it fails with a Forbidden error.
	Transition(ctx context.Context, aggregate *order.Order, from order.Status) error

	// Delete removes the order and its items provided the stored status still
	// equals from. Otherwise it fails with a Forbidden error.
	Delete(ctx context.Context, aggregate *order.Order, from order.Status) error

	// ListPendingPlacedBefore returns up to limit Pending orders placed before t, oldest first.
	ListPendingPlacedBefore(ctx context.Context, t time.Time, limit int) ([]*order.Order, error)
}
