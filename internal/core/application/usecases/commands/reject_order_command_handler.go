package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/order"
)

type RejectOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewRejectOrderCommandHandler(uowFactory OrderUoWFactory) RejectOrderCommandHandler {
	return RejectOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *RejectOrderCommandHandler) Handle(ctx context.Context, cmd RejectOrderCommand) error {
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
	o, err := lockOrderForAction(ctx, orderRepo, cmd.OrderActionCommand, order.ActionReject)
	if err != nil {
		return err
	}

	from := o.Status()
	if err = o.Reject(cmd.Reason()); err != nil {
		return err
	}

	if err = orderRepo.Transition(ctx, o, from); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
