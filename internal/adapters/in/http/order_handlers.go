package http

import (
	"net/http"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// Checkout handles POST /checkout.
func (s *Server) Checkout(ctx echo.Context) error {
	buyer, err := customerFrom(ctx)
	if err != nil {
		return err
	}

	var body Checkout
	if err = ctx.Bind(&body); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("body", err)
	}

	location, err := kernel.NewLocation(body.Lat, body.Lon)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCheckoutCommand(buyer, order.Details{
		Recipient:       body.Recipient,
		Phone:           body.Phone,
		DeliveryAddress: body.DeliveryAddress,
	}, location, body.QuotedCost)
	if err != nil {
		return err
	}

	code, err := s.h.Checkout.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, PlacedOrder{OrderCode: code})
}

// ListOrders handles GET /orders.
func (s *Server) ListOrders(ctx echo.Context) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return err
	}

	var scope string
	if err = runtime.BindQueryParameter("form", true, true, "scope", ctx.QueryParams(), &scope); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("scope", err)
	}

	query, err := queries.NewListOrdersQuery(actor, order.Scope(scope))
	if err != nil {
		return err
	}

	views, err := s.h.ListOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]OrderSummary, len(views))
	for i, v := range views {
		response[i] = toOrderSummary(v)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /orders/{code}.
func (s *Server) GetOrder(ctx echo.Context) error {
	actor, code, err := bindOrderAction(ctx)
	if err != nil {
		return err
	}

	query, err := queries.NewGetOrderQuery(actor, code)
	if err != nil {
		return err
	}

	view, err := s.h.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, toOrder(view))
}

// CancelOrder handles DELETE /orders/{code}.
func (s *Server) CancelOrder(ctx echo.Context) error {
	cmd, err := orderActionCommand(ctx)
	if err != nil {
		return err
	}

	if err = s.h.CancelOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AcceptOrder handles POST /orders/{code}/accept.
func (s *Server) AcceptOrder(ctx echo.Context) error {
	cmd, err := orderActionCommand(ctx)
	if err != nil {
		return err
	}

	if err = s.h.AcceptOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RejectOrder handles POST /orders/{code}/reject.
func (s *Server) RejectOrder(ctx echo.Context) error {
	actor, code, err := bindOrderAction(ctx)
	if err != nil {
		return err
	}

	var body Rejection
	if err = ctx.Bind(&body); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("body", err)
	}

	cmd, err := commands.NewRejectOrderCommand(actor, code, body.Reason)
	if err != nil {
		return err
	}

	if err = s.h.RejectOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ReviewOrder handles POST /orders/{code}/review.
func (s *Server) ReviewOrder(ctx echo.Context) error {
	actor, code, err := bindOrderAction(ctx)
	if err != nil {
		return err
	}

	var body Review
	if err = ctx.Bind(&body); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("body", err)
	}

	cmd, err := commands.NewReviewOrderCommand(actor, code, body.Rating, body.Review)
	if err != nil {
		return err
	}

	if err = s.h.ReviewOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ReportOrder handles POST /orders/{code}/report.
func (s *Server) ReportOrder(ctx echo.Context) error {
	cmd, err := orderActionCommand(ctx)
	if err != nil {
		return err
	}

	if err = s.h.ReportOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}

func bindOrderAction(ctx echo.Context) (order.Actor, string, error) {
	actor, err := actorFrom(ctx)
	if err != nil {
		return order.Actor{}, "", err
	}

	var code string
	if err = runtime.BindStyledParameterWithOptions("simple", "code", ctx.Param("code"), &code, runtime.BindStyledParameterOptions{
		ParamLocation: runtime.ParamLocationPath,
		Explode:       false,
		Required:      true,
	}); err != nil {
		return order.Actor{}, "", errs.NewValueIsInvalidErrorWithCause("code", err)
	}

	return actor, code, nil
}

func orderActionCommand(ctx echo.Context) (commands.OrderActionCommand, error) {
	actor, code, err := bindOrderAction(ctx)
	if err != nil {
		return commands.OrderActionCommand{}, err
	}
	return commands.NewOrderActionCommand(actor, code)
}
