package queries

import (
	"context"

	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetRestaurantQueryHandler struct {
	db *gorm.DB
}

func NewGetRestaurantQueryHandler(db *gorm.DB) GetRestaurantQueryHandler {
	return GetRestaurantQueryHandler{db: db}
}

func (h GetRestaurantQueryHandler) Handle(ctx context.Context, query GetRestaurantQuery) (RestaurantView, error) {
	if err := query.Validate(); err != nil {
		return RestaurantView{}, err
	}

	var row restaurantRow
	result := h.db.WithContext(ctx).Raw(`
		SELECT id, name, phone, location_latitude, location_longitude, rating_sum, completed_orders
		FROM restaurants
		WHERE id = ?
	`, int64(query.RestaurantID())).Scan(&row)
	if result.Error != nil {
		return RestaurantView{}, result.Error
	}
	if result.RowsAffected == 0 {
		return RestaurantView{}, errs.NewObjectNotFoundError("restaurant", query.RestaurantID())
	}

	r, err := row.toDomain()
	if err != nil {
		return RestaurantView{}, err
	}

	return restaurantView(r), nil
}
