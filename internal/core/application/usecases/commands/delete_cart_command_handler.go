package commands

import (
	"context"

	"fulfillment/internal/pkg/errs"
)

type DeleteCartCommandHandler struct {
	uowFactory CartUoWFactory
}

func NewDeleteCartCommandHandler(uowFactory CartUoWFactory) DeleteCartCommandHandler {
	return DeleteCartCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle fails with Not-Found when the customer has no open cart.
func (h *DeleteCartCommandHandler) Handle(ctx context.Context, cmd DeleteCartCommand) error {
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

	cartRepo := uow.CartRepository()
	aggregate, err := cartRepo.FindOpenCartForUpdate(ctx, cmd.CustomerID())
	if err != nil {
		return err
	}
	if aggregate == nil {
		return errs.NewObjectNotFoundError("cart", cmd.CustomerID())
	}

	if err = cartRepo.Close(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
