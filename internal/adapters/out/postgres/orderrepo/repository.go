package orderrepo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"fulfillment/internal/adapters/out/postgres/dberr"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if dberr.IsUniqueViolation(err) {
			return errs.NewConflictErrorWithCause("order", "order code already exists", err)
		}
		return fmt.Errorf("insert order: %w", err)
	}

	r.tracker.TrackAggregate(aggregate.Code(), aggregate)
	return nil
}

func (r *GormOrderRepository) Get(ctx context.Context, code string) (*order.Order, error) {
	return r.get(r.db.WithContext(ctx), code)
}

func (r *GormOrderRepository) GetForUpdate(ctx context.Context, code string) (*order.Order, error) {
	return r.get(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), code)
}

// Transition is a conditional UPDATE: the row only changes while its status
// is still from, so a concurrent transition makes this one fail.
func (r *GormOrderRepository) Transition(ctx context.Context, aggregate *order.Order, from order.Status) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("code = ? AND status = ?", aggregate.Code(), int(from)).
		Updates(mutableColumns(aggregate))
	if result.Error != nil {
		return fmt.Errorf("update order: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewForbiddenError(
			"transition",
			fmt.Sprintf("order %s is no longer %s", aggregate.Code(), from),
		)
	}

	r.tracker.TrackAggregate(aggregate.Code(), aggregate)
	return nil
}

func (r *GormOrderRepository) Delete(ctx context.Context, aggregate *order.Order, from order.Status) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	db := r.db.WithContext(ctx)
	result := db.Where("code = ? AND status = ?", aggregate.Code(), int(from)).Delete(&OrderDTO{})
	if result.Error != nil {
		return fmt.Errorf("delete order: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewForbiddenError(
			"cancel",
			fmt.Sprintf("order %s is no longer %s", aggregate.Code(), from),
		)
	}

	if err := db.Where("order_code = ?", aggregate.Code()).Delete(&OrderItemDTO{}).Error; err != nil {
		return fmt.Errorf("delete order items: %w", err)
	}

	r.tracker.TrackAggregate(aggregate.Code(), aggregate)
	return nil
}

func (r *GormOrderRepository) ListPendingPlacedBefore(ctx context.Context, t time.Time, limit int) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).
		Preload("Items", orderItemsByPosition).
		Where("status = ? AND placed_at < ?", int(order.Pending), t).
		Order("placed_at ASC").
		Limit(limit).
		Find(&dtos).Error; err != nil {
		return nil, fmt.Errorf("list pending orders: %w", err)
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

func (r *GormOrderRepository) get(db *gorm.DB, code string) (*order.Order, error) {
	if strings.TrimSpace(code) == "" {
		return nil, errs.NewValueIsRequiredError("orderCode")
	}

	var dto OrderDTO
	if err := db.Preload("Items", orderItemsByPosition).First(&dto, "code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", code)
		}
		return nil, fmt.Errorf("get order: %w", err)
	}

	return toDomain(dto)
}

func orderItemsByPosition(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC")
}
