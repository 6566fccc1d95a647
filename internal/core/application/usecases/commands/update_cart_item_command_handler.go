package commands

import (
	"context"

	"fulfillment/internal/pkg/errs"
)

// UpdateCartItemCommandHandler changes or removes a line of the customer's
// open cart. Removing the last line leaves an empty cart open.
type UpdateCartItemCommandHandler struct {
	uowFactory CartUoWFactory
}

func NewUpdateCartItemCommandHandler(uowFactory CartUoWFactory) UpdateCartItemCommandHandler {
	return UpdateCartItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns the total number of items left in the cart.
func (h *UpdateCartItemCommandHandler) Handle(ctx context.Context, cmd UpdateCartItemCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cartRepo := uow.CartRepository()
	aggregate, err := cartRepo.FindOpenCartForUpdate(ctx, cmd.CustomerID())
	if err != nil {
		return 0, err
	}
	if aggregate == nil {
		return 0, errs.NewObjectNotFoundError("cart", cmd.CustomerID())
	}

	if err = aggregate.SetItemQuantity(cmd.ItemName(), cmd.Quantity()); err != nil {
		return 0, err
	}

	if err = cartRepo.Save(ctx, aggregate); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return aggregate.TotalQuantity(), nil
}
