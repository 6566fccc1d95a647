package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/order"
)

type ReportOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewReportOrderCommandHandler(uowFactory OrderUoWFactory) ReportOrderCommandHandler {
	return ReportOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *ReportOrderCommandHandler) Handle(ctx context.Context, cmd OrderActionCommand) error {
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
	o, err := lockOrderForAction(ctx, orderRepo, cmd, order.ActionReport)
	if err != nil {
		return err
	}

	from := o.Status()
	if err = o.Report(); err != nil {
		return err
	}

	if err = orderRepo.Transition(ctx, o, from); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
