package http

import (
	"net/http"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// ViewCart handles GET /cart.
func (s *Server) ViewCart(ctx echo.Context) error {
	buyer, err := customerFrom(ctx)
	if err != nil {
		return err
	}

	location, err := bindLocation(ctx)
	if err != nil {
		return err
	}

	query, err := queries.NewViewCartQuery(buyer, location)
	if err != nil {
		return err
	}

	view, err := s.h.ViewCart.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, toCart(view))
}

// DeleteCart handles DELETE /cart.
func (s *Server) DeleteCart(ctx echo.Context) error {
	buyer, err := customerFrom(ctx)
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteCartCommand(buyer.ID())
	if err != nil {
		return err
	}

	if err = s.h.DeleteCart.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AddCartItem handles POST /cart/items.
func (s *Server) AddCartItem(ctx echo.Context) error {
	buyer, err := customerFrom(ctx)
	if err != nil {
		return err
	}

	var body NewCartItem
	if err = ctx.Bind(&body); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("body", err)
	}

	cmd, err := commands.NewAddCartItemCommand(
		buyer.ID(),
		kernel.RestaurantID(body.RestaurantID),
		body.ItemName,
		body.UnitPrice,
		body.Quantity,
	)
	if err != nil {
		return err
	}

	total, err := s.h.AddCartItem.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, CartQuantity{TotalQuantity: total})
}

// UpdateCartItem handles PUT /cart/items/{itemName}. A quantity of zero
// removes the line.
func (s *Server) UpdateCartItem(ctx echo.Context) error {
	buyer, err := customerFrom(ctx)
	if err != nil {
		return err
	}

	itemName, err := bindItemName(ctx)
	if err != nil {
		return err
	}

	var body CartItemQuantity
	if err = ctx.Bind(&body); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("body", err)
	}

	cmd, err := commands.NewUpdateCartItemCommand(buyer.ID(), itemName, body.Quantity)
	if err != nil {
		return err
	}

	return s.updateCartItem(ctx, cmd)
}

// RemoveCartItem handles DELETE /cart/items/{itemName}.
func (s *Server) RemoveCartItem(ctx echo.Context) error {
	buyer, err := customerFrom(ctx)
	if err != nil {
		return err
	}

	itemName, err := bindItemName(ctx)
	if err != nil {
		return err
	}

	cmd, err := commands.NewRemoveCartItemCommand(buyer.ID(), itemName)
	if err != nil {
		return err
	}

	return s.updateCartItem(ctx, cmd)
}

func (s *Server) updateCartItem(ctx echo.Context, cmd commands.UpdateCartItemCommand) error {
	total, err := s.h.UpdateCartItem.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, CartQuantity{TotalQuantity: total})
}

func bindItemName(ctx echo.Context) (string, error) {
	var itemName string
	if err := runtime.BindStyledParameterWithOptions("simple", "itemName", ctx.Param("itemName"), &itemName, runtime.BindStyledParameterOptions{
		ParamLocation: runtime.ParamLocationPath,
		Explode:       false,
		Required:      true,
	}); err != nil {
		return "", errs.NewValueIsInvalidErrorWithCause("itemName", err)
	}
	return itemName, nil
}

func bindLocation(ctx echo.Context) (kernel.Location, error) {
	var lat, lon float64
	if err := runtime.BindQueryParameter("form", true, true, "lat", ctx.QueryParams(), &lat); err != nil {
		return kernel.Location{}, errs.NewValueIsInvalidErrorWithCause("lat", err)
	}
	if err := runtime.BindQueryParameter("form", true, true, "lon", ctx.QueryParams(), &lon); err != nil {
		return kernel.Location{}, errs.NewValueIsInvalidErrorWithCause("lon", err)
	}

	return kernel.NewLocation(lat, lon)
}
