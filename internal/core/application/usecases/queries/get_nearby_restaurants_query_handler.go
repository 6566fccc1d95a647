package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/restaurant"
	"fulfillment/internal/core/domain/services"

	"gorm.io/gorm"
)

// GetNearbyRestaurantsQueryHandler filters every restaurant by great-circle
// distance in memory, nearest first.
type GetNearbyRestaurantsQueryHandler struct {
	db     *gorm.DB
	finder services.RestaurantFinder
}

func NewGetNearbyRestaurantsQueryHandler(db *gorm.DB, finder services.RestaurantFinder) GetNearbyRestaurantsQueryHandler {
	return GetNearbyRestaurantsQueryHandler{
		db:     db,
		finder: finder,
	}
}

type restaurantRow struct {
	ID                int64
	Name              string
	Phone             string
	LocationLatitude  float64
	LocationLongitude float64
	RatingSum         int64
	CompletedOrders   int64
}

func (r restaurantRow) toDomain() (*restaurant.Restaurant, error) {
	location, err := kernel.NewLocation(r.LocationLatitude, r.LocationLongitude)
	if err != nil {
		return nil, err
	}

	return restaurant.RestoreRestaurant(
		kernel.RestaurantID(r.ID),
		r.Name,
		r.Phone,
		location,
		r.RatingSum,
		r.CompletedOrders,
	)
}

func (h GetNearbyRestaurantsQueryHandler) Handle(
	ctx context.Context,
	query GetNearbyRestaurantsQuery,
) ([]NearbyRestaurantView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var rows []restaurantRow
	if err := h.db.WithContext(ctx).Raw(`
		SELECT id, name, phone, location_latitude, location_longitude, rating_sum, completed_orders
		FROM restaurants
		ORDER BY id
	`).Scan(&rows).Error; err != nil {
		return nil, err
	}

	all := make([]*restaurant.Restaurant, 0, len(rows))
	for _, row := range rows {
		r, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		all = append(all, r)
	}

	nearby, err := h.finder.WithinRadius(query.Origin(), all, query.RadiusKm())
	if err != nil {
		return nil, err
	}

	views := make([]NearbyRestaurantView, 0, len(nearby))
	for _, n := range nearby {
		views = append(views, NearbyRestaurantView{
			RestaurantView: restaurantView(n.Restaurant),
			DistanceKm:     n.DistanceKm,
		})
	}

	return views, nil
}

func restaurantView(r *restaurant.Restaurant) RestaurantView {
	return RestaurantView{
		ID:              r.ID(),
		Name:            r.Name(),
		Phone:           r.Phone(),
		Location:        r.Location(),
		CompletedOrders: r.CompletedOrders(),
		AverageRating:   r.AverageRating(),
	}
}
