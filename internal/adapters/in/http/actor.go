package http

import (
	"net/http"
	"time"

	"fulfillment/internal/core/domain/model/customer"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// The gateway authenticates callers and forwards who they are in these headers.
const (
	HeaderActorRole         = "X-Actor-Role"
	HeaderActorID           = "X-Actor-ID"
	HeaderMembershipExpires = "X-Membership-Expires"
)

func bindHeader(c echo.Context, name string, required bool, dest any) (bool, error) {
	values, found := c.Request().Header[http.CanonicalHeaderKey(name)]
	if !found || len(values) == 0 {
		if required {
			return false, errs.NewValueIsRequiredError(name)
		}
		return false, nil
	}

	if err := runtime.BindStyledParameterWithOptions("simple", name, values[0], dest, runtime.BindStyledParameterOptions{
		ParamLocation: runtime.ParamLocationHeader,
		Explode:       false,
		Required:      required,
	}); err != nil {
		return false, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return true, nil
}

func actorFrom(c echo.Context) (order.Actor, error) {
	var role string
	if _, err := bindHeader(c, HeaderActorRole, true, &role); err != nil {
		return order.Actor{}, err
	}

	var id int64
	if _, err := bindHeader(c, HeaderActorID, true, &id); err != nil {
		return order.Actor{}, err
	}

	actor := order.Actor{Role: order.Role(role), ID: id}
	if err := actor.Validate(); err != nil {
		return order.Actor{}, err
	}
	return actor, nil
}

// customerFrom resolves the calling customer with the membership window the
// gateway reported. Restaurants are refused.
func customerFrom(c echo.Context) (*customer.Customer, error) {
	actor, err := actorFrom(c)
	if err != nil {
		return nil, err
	}
	if actor.Role != order.RoleCustomer {
		return nil, errs.NewForbiddenError(c.Path(), "only customers have a cart")
	}

	var expires time.Time
	found, err := bindHeader(c, HeaderMembershipExpires, false, &expires)
	if err != nil {
		return nil, err
	}

	var membership *time.Time
	if found {
		membership = &expires
	}
	return customer.NewCustomer(actor.CustomerID(), membership)
}

func restaurantFrom(c echo.Context) (order.Actor, error) {
	actor, err := actorFrom(c)
	if err != nil {
		return order.Actor{}, err
	}
	if actor.Role != order.RoleRestaurant {
		return order.Actor{}, errs.NewForbiddenError(c.Path(), "only restaurants may call this")
	}
	return actor, nil
}
