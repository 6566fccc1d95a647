package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/cart"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"
)

// ErrQuotedCostChanged reports that the cart, the restaurant or the
// membership changed between the cart view and checkout.
var ErrQuotedCostChanged = errs.NewConflictError("checkout", "quoted cost no longer matches the cart")

// CheckoutCommandHandler commits a cart into an order. Reading the cart,
// inserting the order with its item snapshot and closing the cart happen in
// one transaction: either all of them are visible afterwards or none.
type CheckoutCommandHandler struct {
	uowFactory UoWFactory
	pricing    services.PricingEngine
	now        func() time.Time
	location   *time.Location
}

// NewCheckoutCommandHandler builds the handler. location is the business time
// zone whose calendar day becomes the order date; nil means UTC.
func NewCheckoutCommandHandler(
	uowFactory UoWFactory,
	pricing services.PricingEngine,
	now func() time.Time,
	location *time.Location,
) CheckoutCommandHandler {
	if now == nil {
		now = time.Now
	}
	if location == nil {
		location = time.UTC
	}

	return CheckoutCommandHandler{
		uowFactory: uowFactory,
		pricing:    pricing,
		now:        now,
		location:   location,
	}
}

// Handle returns the code of the new order.
func (h *CheckoutCommandHandler) Handle(ctx context.Context, cmd CheckoutCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return "", err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	buyer := cmd.Customer()
	cartRepo := uow.CartRepository()
	aggregate, err := cartRepo.FindOpenCartForUpdate(ctx, buyer.ID())
	if err != nil {
		return "", err
	}
	if aggregate == nil || aggregate.IsEmpty() {
		return "", errs.NewObjectNotFoundError("cart", buyer.ID())
	}

	seller, err := uow.RestaurantRepository().Get(ctx, aggregate.RestaurantID())
	if err != nil {
		return "", err
	}

	placedAt := h.now().UTC()
	cost, err := h.pricing.ComputeCheckoutCost(
		services.Lines(aggregate.Items()),
		cmd.Location(),
		seller.Location(),
		buyer.HasActiveMembership(placedAt),
	)
	if err != nil {
		return "", err
	}

	if quoted := cmd.QuotedCost(); quoted != nil && !quoted.Equal(cost.FinalCost) {
		return "", ErrQuotedCostChanged
	}

	code, err := order.NewCode(buyer.ID(), aggregate.RestaurantID(), placedAt)
	if err != nil {
		return "", err
	}

	items, err := snapshotItems(aggregate)
	if err != nil {
		return "", err
	}

	placed, err := order.NewOrder(
		code,
		buyer.ID(),
		aggregate.RestaurantID(),
		cmd.Details(),
		placedAt.In(h.location),
		cost.FinalCost,
		items,
	)
	if err != nil {
		return "", err
	}

	if err = uow.OrderRepository().Add(ctx, placed); err != nil {
		return "", err
	}

	if err = cartRepo.Close(ctx, aggregate); err != nil {
		return "", err
	}

	if err = uow.Commit(ctx); err != nil {
		return "", err
	}

	return code, nil
}

func snapshotItems(c *cart.Cart) ([]order.Item, error) {
	lines := c.Items()
	items := make([]order.Item, 0, len(lines))
	for _, line := range lines {
		item, err := order.NewItem(line.Name(), line.UnitPrice(), line.Quantity())
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
