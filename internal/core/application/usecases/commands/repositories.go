// Package commands contains business operations that modify system state.
// Every handler follows the same shape: validate the command, begin a unit of
// work, re-read the aggregates it changes, apply domain rules, persist and
// commit. A deferred Rollback covers every early return.
package commands

import (
	"context"

	"fulfillment/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	CartRepoFactory interface {
		CartRepository() ports.CartRepository
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	RestaurantRepoFactory interface {
		RestaurantRepository() ports.RestaurantRepository
	}

	// CartUoW manages transactions for cart edits. Restaurants are only read.
	CartUoW interface {
		TxManager
		CartRepoFactory
		RestaurantRepoFactory
	}

	CartUoWFactory interface {
		Create() CartUoW
	}

	// OrderUoW manages lifecycle transitions. A review changes the order and
	// the restaurant rating aggregate in the same transaction.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		RestaurantRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// UoW spans carts, orders and restaurants. Checkout is the only command
	// that needs all three.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   c, err := uow.CartRepository().FindOpenCartForUpdate(ctx, customerID)
	//   // ... build the order
	//   err = uow.OrderRepository().Add(ctx, o)
	//   err = uow.CartRepository().Close(ctx, c)
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		CartRepoFactory
		OrderRepoFactory
		RestaurantRepoFactory
	}

	UoWFactory interface {
		Create() UoW
	}
)
