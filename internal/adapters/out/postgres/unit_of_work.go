// Package postgres provides the GORM implementation of the Unit of Work pattern.
// A unit of work spans one business transaction: every repository handed out
// after Begin is bound to the same *gorm.DB transaction, so a checkout or a
// review either lands completely or not at all.
//
// Usage:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
//
//	if err := uow.OrderRepository().Add(ctx, o); err != nil {
//	    return err
//	}
//	if err := uow.CartRepository().Close(ctx, c); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Rollback after a successful Commit returns gorm.ErrInvalidTransaction and is
// safe to ignore in a deferred call.
//
// Repositories report every aggregate they write through TrackAggregate. After
// a successful Commit the collected aggregates are handed to the hooks
// registered with WithCommitHook; Rollback discards them.
//
// Concurrency:
//   - Each UnitOfWork instance owns its own transaction and must not be shared
//     between goroutines.
//   - Cross-request races are resolved by row locks (FindOpenCartForUpdate,
//     GetForUpdate) and by conditional updates keyed on the expected status.
package postgres

import (
	"context"

	"fulfillment/internal/adapters/out/postgres/cartrepo"
	"fulfillment/internal/adapters/out/postgres/orderrepo"
	"fulfillment/internal/adapters/out/postgres/restaurantrepo"
	"fulfillment/internal/core/ports"

	"gorm.io/gorm"
)

type TrackedAggregate struct {
	ID        string
	Aggregate any
}

// CommitHook receives the aggregates written by a transaction after it
// committed. It runs outside the transaction and cannot fail the commit.
type CommitHook func(ctx context.Context, committed []TrackedAggregate)

type FactoryOption func(*GormUnitOfWorkFactory)

// WithCommitHook registers hook on every unit of work the factory creates.
func WithCommitHook(hook CommitHook) FactoryOption {
	return func(f *GormUnitOfWorkFactory) {
		f.onCommit = append(f.onCommit, hook)
	}
}

type GormUnitOfWorkFactory struct {
	db       *gorm.DB
	onCommit []CommitHook
}

func NewGormUnitOfWorkFactory(db *gorm.DB, opts ...FactoryOption) *GormUnitOfWorkFactory {
	f := &GormUnitOfWorkFactory{db: db}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		onCommit:          f.onCommit,
		trackedAggregates: make([]TrackedAggregate, 0),
	}
}

type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	onCommit          []CommitHook
	trackedAggregates []TrackedAggregate
}

func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}

	uow.tx = tx
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return nil
}

func (uow *GormUnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	committed := uow.trackedAggregates
	uow.trackedAggregates = make([]TrackedAggregate, 0)
	if err != nil {
		return err
	}

	if len(committed) > 0 {
		for _, hook := range uow.onCommit {
			hook(ctx, committed)
		}
	}
	return nil
}

func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return err
}

func (uow *GormUnitOfWork) CartRepository() ports.CartRepository {
	return cartrepo.NewGormCartRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) RestaurantRepository() ports.RestaurantRepository {
	return restaurantrepo.NewGormRestaurantRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) TrackAggregate(id string, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, TrackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
