package cartrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/cart"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GormCartRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

func NewGormCartRepository(db *gorm.DB, tracker aggregateTracker) *GormCartRepository {
	return &GormCartRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormCartRepository) FindOpenCart(ctx context.Context, customerID kernel.CustomerID) (*cart.Cart, error) {
	return r.findByCustomer(r.db.WithContext(ctx), customerID)
}

func (r *GormCartRepository) FindOpenCartForUpdate(ctx context.Context, customerID kernel.CustomerID) (*cart.Cart, error) {
	return r.findByCustomer(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), customerID)
}

// Open inserts the cart row with ON CONFLICT DO NOTHING. When the unique index
// on customer_id swallowed the insert, the existing cart is locked and
// compared with the requested restaurant.
func (r *GormCartRepository) Open(
	ctx context.Context,
	customerID kernel.CustomerID,
	restaurantID kernel.RestaurantID,
) (*cart.Cart, error) {
	aggregate, err := cart.NewCart(customerID, restaurantID)
	if err != nil {
		return nil, err
	}

	dto := CartDTO{
		Code:         aggregate.Code(),
		CustomerID:   int64(customerID),
		RestaurantID: int64(restaurantID),
	}
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Omit(clause.Associations).
		Create(&dto)
	if result.Error != nil {
		return nil, fmt.Errorf("insert cart: %w", result.Error)
	}

	if result.RowsAffected == 1 {
		r.tracker.TrackAggregate(aggregate.Code(), aggregate)
		return aggregate, nil
	}

	existing, err := r.FindOpenCartForUpdate(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		// the conflicting cart was closed between the insert and the read
		return nil, errs.NewConflictError("cart", "open cart changed concurrently")
	}
	if !existing.BelongsTo(restaurantID) {
		return nil, cart.ErrMultipleCartsNotAllowed
	}

	return existing, nil
}

// Save replaces the stored line items with the ones held by the aggregate.
func (r *GormCartRepository) Save(ctx context.Context, aggregate *cart.Cart) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	db := r.db.WithContext(ctx)

	touch := db.Model(&CartDTO{}).Where("code = ?", aggregate.Code()).UpdateColumn("updated_at", time.Now().UTC())
	if touch.Error != nil {
		return fmt.Errorf("touch cart: %w", touch.Error)
	}
	if touch.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("cart", aggregate.Code())
	}

	if err := db.Where("cart_code = ?", aggregate.Code()).Delete(&CartItemDTO{}).Error; err != nil {
		return fmt.Errorf("clear cart items: %w", err)
	}

	if items := itemsFromDomain(aggregate); len(items) > 0 {
		if err := db.Create(&items).Error; err != nil {
			return fmt.Errorf("insert cart items: %w", err)
		}
	}

	r.tracker.TrackAggregate(aggregate.Code(), aggregate)
	return nil
}

func (r *GormCartRepository) Close(ctx context.Context, aggregate *cart.Cart) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	db := r.db.WithContext(ctx)
	if err := db.Where("cart_code = ?", aggregate.Code()).Delete(&CartItemDTO{}).Error; err != nil {
		return fmt.Errorf("delete cart items: %w", err)
	}

	result := db.Where("code = ?", aggregate.Code()).Delete(&CartDTO{})
	if result.Error != nil {
		return fmt.Errorf("delete cart: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("cart", aggregate.Code())
	}

	r.tracker.TrackAggregate(aggregate.Code(), aggregate)
	return nil
}

func (r *GormCartRepository) findByCustomer(db *gorm.DB, customerID kernel.CustomerID) (*cart.Cart, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}

	var dto CartDTO
	err := db.
		Preload("Items", func(tx *gorm.DB) *gorm.DB { return tx.Order("position ASC") }).
		Where("customer_id = ?", int64(customerID)).
		First(&dto).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find cart: %w", err)
	}

	return toDomain(dto)
}
