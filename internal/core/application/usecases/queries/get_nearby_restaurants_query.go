package queries

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// DefaultSearchRadiusKm is used when the caller gives no radius.
const DefaultSearchRadiusKm = 10

var (
	ErrGetNearbyRestaurantsQueryIsNotConstructed = errors.New(
		"GetNearbyRestaurantsQuery must be created via NewGetNearbyRestaurantsQuery constructor",
	)
)

type GetNearbyRestaurantsQuery struct {
	origin   kernel.Location
	radiusKm float64

	guard guard.ConstructorGuard
}

func NewGetNearbyRestaurantsQuery(origin kernel.Location, radiusKm float64) (GetNearbyRestaurantsQuery, error) {
	var radiusErr error
	if radiusKm <= 0 {
		radiusErr = errs.NewValueIsInvalidErrorWithCause("radius", fmt.Errorf("%v is not positive", radiusKm))
	}
	if err := errors.Join(origin.Validate(), radiusErr); err != nil {
		return GetNearbyRestaurantsQuery{}, err
	}

	return GetNearbyRestaurantsQuery{
		origin:   origin,
		radiusKm: radiusKm,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (q GetNearbyRestaurantsQuery) Validate() error {
	return q.guard.Validate(ErrGetNearbyRestaurantsQueryIsNotConstructed)
}

func (q GetNearbyRestaurantsQuery) Origin() kernel.Location {
	return q.origin
}

func (q GetNearbyRestaurantsQuery) RadiusKm() float64 {
	return q.radiusKm
}

type RestaurantView struct {
	ID              kernel.RestaurantID
	Name            string
	Phone           string
	Location        kernel.Location
	CompletedOrders int64
	AverageRating   decimal.Decimal
}

type NearbyRestaurantView struct {
	RestaurantView
	DistanceKm float64
}
