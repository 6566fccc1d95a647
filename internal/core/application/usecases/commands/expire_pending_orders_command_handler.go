package commands

import (
	"context"
	"errors"
	"time"

	"fulfillment/internal/pkg/errs"
)

// ExpirePendingOrdersCommandHandler rejects stale Pending orders on behalf of
// the system. Each order is rejected in its own transaction; an order that a
// restaurant accepted or rejected in the meantime is skipped.
type ExpirePendingOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
	now        func() time.Time
}

func NewExpirePendingOrdersCommandHandler(uowFactory OrderUoWFactory, now func() time.Time) ExpirePendingOrdersCommandHandler {
	if now == nil {
		now = time.Now
	}

	return ExpirePendingOrdersCommandHandler{
		uowFactory: uowFactory,
		now:        now,
	}
}

// Handle returns how many orders were rejected.
func (h *ExpirePendingOrdersCommandHandler) Handle(ctx context.Context, cmd ExpirePendingOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	cutoff := h.now().UTC().Add(-cmd.TTL())
	stale, err := h.uowFactory.Create().OrderRepository().ListPendingPlacedBefore(ctx, cutoff, cmd.BatchSize())
	if err != nil {
		return 0, err
	}

	expired := 0
	var failures error
	for _, candidate := range stale {
		if err := ctx.Err(); err != nil {
			return expired, err
		}

		err := h.expire(ctx, candidate.Code())
		switch {
		case err == nil:
			expired++
		case errs.KindOf(err) == errs.KindForbidden, errs.KindOf(err) == errs.KindNotFound:
			// answered or cancelled after the listing
		default:
			failures = errors.Join(failures, err)
		}
	}

	return expired, failures
}

func (h *ExpirePendingOrdersCommandHandler) expire(ctx context.Context, code string) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.GetForUpdate(ctx, code)
	if err != nil {
		return err
	}

	from := o.Status()
	if err = o.Reject(ExpiredOrderRejectReason); err != nil {
		return err
	}

	if err = orderRepo.Transition(ctx, o, from); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
