package kernel

import (
	"fmt"
	"strconv"

	"fulfillment/internal/pkg/errs"
)

// CustomerID identifies a customer account issued by the registration service.
type CustomerID int64

// RestaurantID identifies a restaurant account issued by the registration service.
type RestaurantID int64

func (id CustomerID) Validate() error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("customerID", fmt.Errorf("%d is not positive", id))
	}
	return nil
}

func (id CustomerID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

func (id RestaurantID) Validate() error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("restaurantID", fmt.Errorf("%d is not positive", id))
	}
	return nil
}

func (id RestaurantID) String() string {
	return strconv.FormatInt(int64(id), 10)
}
