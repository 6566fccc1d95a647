package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/order"
)

// ReviewOrderCommandHandler records a customer's rating. The order transition
// and the restaurant's rating aggregate are committed together, so the sum
// and the count never drift from the set of Reviewed orders.
type ReviewOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewReviewOrderCommandHandler(uowFactory OrderUoWFactory) ReviewOrderCommandHandler {
	return ReviewOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *ReviewOrderCommandHandler) Handle(ctx context.Context, cmd ReviewOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := lockOrderForAction(ctx, orderRepo, cmd.OrderActionCommand, order.ActionReview)
	if err != nil {
		return err
	}

	from := o.Status()
	if err = o.Review(cmd.Rating(), cmd.Review()); err != nil {
		return err
	}

	if err = orderRepo.Transition(ctx, o, from); err != nil {
		return err
	}

	if err = uow.RestaurantRepository().AddRating(ctx, o.RestaurantID(), cmd.Rating()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
