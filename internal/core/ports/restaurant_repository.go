package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/restaurant"
)

// RestaurantRepository exposes the restaurant data fulfillment depends on.
type RestaurantRepository interface {
	// Add persists a restaurant. Restaurant onboarding lives elsewhere; this is
	// used for seeding and by the onboarding service's projection.
	Add(ctx context.Context, aggregate *restaurant.Restaurant) error

	// Get retrieves a restaurant by id or fails with a Not-Found error.
	Get(ctx context.Context, id kernel.RestaurantID) (*restaurant.Restaurant, error)

	// GetAll returns every restaurant.
	GetAll(ctx context.Context) ([]*restaurant.Restaurant, error)

	// AddRating increments the rating sum by rating and the completed-order
	// count by one in a single statement.
	AddRating(ctx context.Context, id kernel.RestaurantID, rating kernel.Rating) error
}
