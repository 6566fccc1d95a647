package customer

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// MembershipDiscountPercent is the discount granted to customers with an active membership.
const MembershipDiscountPercent = 20

var ErrCustomerIsNotConstructed = errs.NewValueIsRequiredError(
	"customer must be created via NewCustomer constructor")

// Customer is the authenticated buyer as supplied by the account service.
// Only the identity and the membership window matter to fulfillment.
type Customer struct {
	id                  kernel.CustomerID
	membershipExpiresAt *time.Time
	guard               guard.ConstructorGuard
}

func NewCustomer(id kernel.CustomerID, membershipExpiresAt *time.Time) (*Customer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	c := &Customer{
		id:    id,
		guard: guard.NewConstructorGuard(),
	}
	if membershipExpiresAt != nil {
		expires := *membershipExpiresAt
		c.membershipExpiresAt = &expires
	}

	return c, nil
}

func (c *Customer) Validate() error {
	if c == nil {
		return ErrCustomerIsNotConstructed
	}
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

func (c *Customer) ID() kernel.CustomerID {
	return c.id
}

func (c *Customer) MembershipExpiresAt() *time.Time {
	return c.membershipExpiresAt
}

// HasActiveMembership is true iff an expiry exists and is strictly after at.
func (c *Customer) HasActiveMembership(at time.Time) bool {
	return c.membershipExpiresAt != nil && c.membershipExpiresAt.After(at)
}
