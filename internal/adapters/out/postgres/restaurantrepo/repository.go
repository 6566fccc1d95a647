package restaurantrepo

import (
	"context"
	"errors"
	"fmt"

	"fulfillment/internal/adapters/out/postgres/dberr"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/restaurant"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

type GormRestaurantRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

func NewGormRestaurantRepository(db *gorm.DB, tracker aggregateTracker) *GormRestaurantRepository {
	return &GormRestaurantRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormRestaurantRepository) Add(ctx context.Context, aggregate *restaurant.Restaurant) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if dberr.IsUniqueViolation(err) {
			return errs.NewConflictErrorWithCause("restaurant", "restaurant already exists", err)
		}
		return fmt.Errorf("insert restaurant: %w", err)
	}

	r.tracker.TrackAggregate(aggregate.ID().String(), aggregate)
	return nil
}

func (r *GormRestaurantRepository) Get(ctx context.Context, id kernel.RestaurantID) (*restaurant.Restaurant, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RestaurantDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", int64(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("restaurant", id)
		}
		return nil, fmt.Errorf("get restaurant: %w", err)
	}

	return toDomain(dto)
}

func (r *GormRestaurantRepository) GetAll(ctx context.Context) ([]*restaurant.Restaurant, error) {
	var dtos []RestaurantDTO
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&dtos).Error; err != nil {
		return nil, fmt.Errorf("list restaurants: %w", err)
	}

	restaurants := make([]*restaurant.Restaurant, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		restaurants = append(restaurants, aggregate)
	}

	return restaurants, nil
}

// AddRating updates both aggregate columns in one statement so concurrent
// reviews never lose an increment.
func (r *GormRestaurantRepository) AddRating(ctx context.Context, id kernel.RestaurantID, rating kernel.Rating) error {
	if err := errors.Join(id.Validate(), rating.Validate()); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&RestaurantDTO{}).
		Where("id = ?", int64(id)).
		UpdateColumns(map[string]any{
			"rating_sum":       gorm.Expr("rating_sum + ?", rating.Int()),
			"completed_orders": gorm.Expr("completed_orders + ?", 1),
		})
	if result.Error != nil {
		return fmt.Errorf("add restaurant rating: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("restaurant", id)
	}

	return nil
}
