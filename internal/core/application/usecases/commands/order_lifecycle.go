package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
)

// lockOrderForAction re-reads the order under a row lock and runs the role,
// ownership and status checks for action before anything is changed.
func lockOrderForAction(
	ctx context.Context,
	repo ports.OrderRepository,
	cmd OrderActionCommand,
	action order.Action,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	o, err := repo.GetForUpdate(ctx, cmd.OrderCode())
	if err != nil {
		return nil, err
	}

	if err = o.Authorize(cmd.Actor(), action); err != nil {
		return nil, err
	}

	return o, nil
}
