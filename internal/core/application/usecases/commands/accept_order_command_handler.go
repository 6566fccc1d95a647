package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/order"
)

// AcceptOrderCommandHandler lets a restaurant accept one of its Pending
// orders. The restaurant's own courier contact is written onto the order.
type AcceptOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewAcceptOrderCommandHandler(uowFactory OrderUoWFactory) AcceptOrderCommandHandler {
	return AcceptOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *AcceptOrderCommandHandler) Handle(ctx context.Context, cmd OrderActionCommand) error {
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
	o, err := lockOrderForAction(ctx, orderRepo, cmd, order.ActionAccept)
	if err != nil {
		return err
	}

	seller, err := uow.RestaurantRepository().Get(ctx, o.RestaurantID())
	if err != nil {
		return err
	}

	from := o.Status()
	if err = o.Accept(seller.CourierName(), seller.CourierPhone()); err != nil {
		return err
	}

	if err = orderRepo.Transition(ctx, o, from); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
