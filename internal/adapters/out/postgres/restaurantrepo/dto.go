package restaurantrepo

import (
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/restaurant"
)

type RestaurantDTO struct {
	ID              int64       `gorm:"primaryKey;autoIncrement:false"`
	Name            string      `gorm:"type:varchar(255);not null"`
	Phone           string      `gorm:"type:varchar(32);not null"`
	Location        LocationDTO `gorm:"embedded;embeddedPrefix:location_"`
	RatingSum       int64       `gorm:"not null;default:0"`
	CompletedOrders int64       `gorm:"not null;default:0"`
}

type LocationDTO struct {
	Latitude  float64 `gorm:"not null"`
	Longitude float64 `gorm:"not null"`
}

func (RestaurantDTO) TableName() string {
	return "restaurants"
}

func fromDomain(aggregate *restaurant.Restaurant) RestaurantDTO {
	return RestaurantDTO{
		ID:    int64(aggregate.ID()),
		Name:  aggregate.Name(),
		Phone: aggregate.Phone(),
		Location: LocationDTO{
			Latitude:  aggregate.Location().Latitude(),
			Longitude: aggregate.Location().Longitude(),
		},
		RatingSum:       aggregate.RatingSum(),
		CompletedOrders: aggregate.CompletedOrders(),
	}
}

func toDomain(dto RestaurantDTO) (*restaurant.Restaurant, error) {
	location, err := kernel.NewLocation(dto.Location.Latitude, dto.Location.Longitude)
	if err != nil {
		return nil, err
	}

	return restaurant.RestoreRestaurant(
		kernel.RestaurantID(dto.ID),
		dto.Name,
		dto.Phone,
		location,
		dto.RatingSum,
		dto.CompletedOrders,
	)
}
