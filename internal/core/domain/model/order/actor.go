package order

import (
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

type Role string

const (
	RoleCustomer   Role = "customer"
	RoleRestaurant Role = "restaurant"
)

func (r Role) Validate() error {
	if r != RoleCustomer && r != RoleRestaurant {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", string(r)))
	}
	return nil
}

// Actor is the authenticated caller acting on an order.
type Actor struct {
	Role Role
	ID   int64
}

func CustomerActor(id kernel.CustomerID) Actor {
	return Actor{Role: RoleCustomer, ID: int64(id)}
}

func RestaurantActor(id kernel.RestaurantID) Actor {
	return Actor{Role: RoleRestaurant, ID: int64(id)}
}

func (a Actor) Validate() error {
	if err := a.Role.Validate(); err != nil {
		return err
	}
	if a.ID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("actor", fmt.Errorf("%d is not positive", a.ID))
	}
	return nil
}

func (a Actor) CustomerID() kernel.CustomerID {
	return kernel.CustomerID(a.ID)
}

func (a Actor) RestaurantID() kernel.RestaurantID {
	return kernel.RestaurantID(a.ID)
}

func (a Actor) String() string {
	return fmt.Sprintf("%s:%d", a.Role, a.ID)
}
