package restaurant

import (
	"errors"
	"fmt"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

const courierNameSuffix = " Courier"

var (
	ErrNameIsRequired  = errs.NewValueIsRequiredError("name")
	ErrPhoneIsRequired = errs.NewValueIsRequiredError("phone")

	ErrRestaurantIsNotConstructed = errors.New("Restaurant must be created via NewRestaurant constructor")
)

// Restaurant is the seller side of an order. Fulfillment reads its contact
// details and location and maintains its rating aggregate.
type Restaurant struct {
	id              kernel.RestaurantID
	name            string
	phone           string
	location        kernel.Location
	ratingSum       int64
	completedOrders int64
	guard           guard.ConstructorGuard
}

func NewRestaurant(id kernel.RestaurantID, name, phone string, location kernel.Location) (*Restaurant, error) {
	return RestoreRestaurant(id, name, phone, location, 0, 0)
}

func RestoreRestaurant(
	id kernel.RestaurantID,
	name string,
	phone string,
	location kernel.Location,
	ratingSum int64,
	completedOrders int64,
) (*Restaurant, error) {
	r := &Restaurant{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setName(name),
		r.setPhone(phone),
		r.setLocation(location),
		r.setRating(ratingSum, completedOrders),
	); err != nil {
		return nil, err
	}

	return r, nil
}

func (r *Restaurant) Validate() error {
	if r == nil {
		return ErrRestaurantIsNotConstructed
	}
	return r.guard.Validate(ErrRestaurantIsNotConstructed)
}

func (r *Restaurant) ID() kernel.RestaurantID {
	return r.id
}

func (r *Restaurant) Name() string {
	return r.name
}

func (r *Restaurant) Phone() string {
	return r.phone
}

func (r *Restaurant) Location() kernel.Location {
	return r.location
}

func (r *Restaurant) RatingSum() int64 {
	return r.ratingSum
}

func (r *Restaurant) CompletedOrders() int64 {
	return r.completedOrders
}

// CourierName is the courier identity handed to customers on acceptance.
func (r *Restaurant) CourierName() string {
	return r.name + courierNameSuffix
}

func (r *Restaurant) CourierPhone() string {
	return r.phone
}

// AverageRating is ratingSum / completedOrders rounded to two places, zero
// when no order has been reviewed yet.
func (r *Restaurant) AverageRating() decimal.Decimal {
	if r.completedOrders == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(r.ratingSum).
		DivRound(decimal.NewFromInt(r.completedOrders), kernel.MoneyPlaces)
}

// RecordReview adds one reviewed order to the aggregate.
func (r *Restaurant) RecordReview(rating kernel.Rating) error {
	if err := rating.Validate(); err != nil {
		return err
	}

	r.ratingSum += int64(rating)
	r.completedOrders++
	return nil
}

// DistanceTo returns the haversine distance in kilometers.
func (r *Restaurant) DistanceTo(location kernel.Location) float64 {
	return r.location.Distance(location)
}

func (r *Restaurant) setID(id kernel.RestaurantID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	r.id = id
	return nil
}

func (r *Restaurant) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameIsRequired
	}

	r.name = name
	return nil
}

func (r *Restaurant) setPhone(phone string) error {
	if strings.TrimSpace(phone) == "" {
		return ErrPhoneIsRequired
	}

	r.phone = phone
	return nil
}

func (r *Restaurant) setLocation(location kernel.Location) error {
	if err := location.Validate(); err != nil {
		return err
	}

	r.location = location
	return nil
}

func (r *Restaurant) setRating(ratingSum, completedOrders int64) error {
	if ratingSum < 0 || completedOrders < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"rating",
			fmt.Errorf("sum %d and count %d must not be negative", ratingSum, completedOrders),
		)
	}

	r.ratingSum = ratingSum
	r.completedOrders = completedOrders
	return nil
}
