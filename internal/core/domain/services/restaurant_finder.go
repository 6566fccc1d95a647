package services

import (
	"fmt"
	"sort"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/restaurant"
	"fulfillment/internal/pkg/errs"
)

// NearbyRestaurant is a restaurant together with its distance from the search origin.
type NearbyRestaurant struct {
	Restaurant *restaurant.Restaurant
	DistanceKm float64
}

// RestaurantFinder selects restaurants around a point.
type RestaurantFinder struct{}

func NewRestaurantFinder() RestaurantFinder {
	return RestaurantFinder{}
}

// WithinRadius keeps restaurants strictly closer than radiusKm to origin,
// nearest first.
func (RestaurantFinder) WithinRadius(
	origin kernel.Location,
	restaurants []*restaurant.Restaurant,
	radiusKm float64,
) ([]NearbyRestaurant, error) {
	if err := origin.Validate(); err != nil {
		return nil, err
	}
	if radiusKm <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("radius", fmt.Errorf("%v is not positive", radiusKm))
	}

	nearby := make([]NearbyRestaurant, 0, len(restaurants))
	for _, r := range restaurants {
		if err := r.Validate(); err != nil {
			return nil, err
		}

		distance := r.DistanceTo(origin)
		if distance < radiusKm {
			nearby = append(nearby, NearbyRestaurant{Restaurant: r, DistanceKm: distance})
		}
	}

	sort.SliceStable(nearby, func(i, j int) bool {
		return nearby[i].DistanceKm < nearby[j].DistanceKm
	})

	return nearby, nil
}
