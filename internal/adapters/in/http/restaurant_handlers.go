package http

import (
	"net/http"
	"time"

	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// NearbyRestaurants handles GET /restaurants/nearby.
func (s *Server) NearbyRestaurants(ctx echo.Context) error {
	origin, err := bindLocation(ctx)
	if err != nil {
		return err
	}

	var radius *float64
	if err = runtime.BindQueryParameter("form", true, false, "radius", ctx.QueryParams(), &radius); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("radius", err)
	}

	radiusKm := float64(queries.DefaultSearchRadiusKm)
	if radius != nil {
		radiusKm = *radius
	}

	query, err := queries.NewGetNearbyRestaurantsQuery(origin, radiusKm)
	if err != nil {
		return err
	}

	views, err := s.h.NearbyRestaurants.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]NearbyRestaurant, len(views))
	for i, v := range views {
		response[i] = NearbyRestaurant{
			Restaurant: toRestaurant(v.RestaurantView),
			DistanceKm: v.DistanceKm,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// RevenueSummary handles GET /restaurants/revenue for the calling restaurant.
func (s *Server) RevenueSummary(ctx echo.Context) error {
	actor, err := restaurantFrom(ctx)
	if err != nil {
		return err
	}

	var startDate, endDate openapi_types.Date
	if err = runtime.BindQueryParameter("form", true, true, "startDate", ctx.QueryParams(), &startDate); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("startDate", err)
	}
	if err = runtime.BindQueryParameter("form", true, true, "endDate", ctx.QueryParams(), &endDate); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("endDate", err)
	}

	query, err := queries.NewGetRevenueSummaryQuery(actor.RestaurantID(), startDate.Time, endDate.Time)
	if err != nil {
		return err
	}

	summary, err := s.h.RevenueSummary.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, Revenue{
		StartDate:       summary.StartDate.Format(time.DateOnly),
		EndDate:         summary.EndDate.Format(time.DateOnly),
		CompletedOrders: summary.CompletedOrders,
		Revenue:         money(summary.Revenue),
	})
}

// GetRestaurant handles GET /restaurants/{id}.
func (s *Server) GetRestaurant(ctx echo.Context) error {
	var id int64
	if err := runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id, runtime.BindStyledParameterOptions{
		ParamLocation: runtime.ParamLocationPath,
		Explode:       false,
		Required:      true,
	}); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("id", err)
	}

	query, err := queries.NewGetRestaurantQuery(kernel.RestaurantID(id))
	if err != nil {
		return err
	}

	view, err := s.h.GetRestaurant.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, toRestaurant(view))
}
