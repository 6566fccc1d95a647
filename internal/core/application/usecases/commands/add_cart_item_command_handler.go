package commands

import (
	"context"
)

// AddCartItemCommandHandler opens the customer's cart for the restaurant if
// needed and adds the item. Re-adding an item already in the cart raises its
// quantity by one and keeps the price captured on the first add.
type AddCartItemCommandHandler struct {
	uowFactory CartUoWFactory
}

func NewAddCartItemCommandHandler(uowFactory CartUoWFactory) AddCartItemCommandHandler {
	return AddCartItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns the total number of items in the cart after the add.
// A cart already open for another restaurant fails with
// cart.ErrMultipleCartsNotAllowed.
func (h *AddCartItemCommandHandler) Handle(ctx context.Context, cmd AddCartItemCommand) (int, error) {
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

	if _, err := uow.RestaurantRepository().Get(ctx, cmd.RestaurantID()); err != nil {
		return 0, err
	}

	cartRepo := uow.CartRepository()
	aggregate, err := cartRepo.Open(ctx, cmd.CustomerID(), cmd.RestaurantID())
	if err != nil {
		return 0, err
	}

	if err = aggregate.AddItem(cmd.ItemName(), cmd.UnitPrice(), cmd.Quantity()); err != nil {
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
