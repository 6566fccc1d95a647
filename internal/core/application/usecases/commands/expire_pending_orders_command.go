package commands

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

const ExpiredOrderRejectReason = "Restaurant did not respond in time"

var ErrExpirePendingOrdersCommandIsNotConstructed = errors.New(
	"ExpirePendingOrdersCommand must be created via NewExpirePendingOrdersCommand constructor",
)

// ExpirePendingOrdersCommand rejects Pending orders that restaurants left
// unanswered for longer than ttl. At most batchSize orders are handled per run.
type ExpirePendingOrdersCommand struct { //nolint:recvcheck //using for validation
	ttl       time.Duration
	batchSize int

	guard guard.ConstructorGuard
}

func NewExpirePendingOrdersCommand(ttl time.Duration, batchSize int) (ExpirePendingOrdersCommand, error) {
	var err error
	if ttl <= 0 {
		err = errors.Join(err, errs.NewValueIsInvalidErrorWithCause("ttl", fmt.Errorf("%s is not positive", ttl)))
	}
	if batchSize <= 0 {
		err = errors.Join(err, errs.NewValueIsInvalidErrorWithCause("batchSize", fmt.Errorf("%d is not positive", batchSize)))
	}
	if err != nil {
		return ExpirePendingOrdersCommand{}, err
	}

	return ExpirePendingOrdersCommand{
		ttl:       ttl,
		batchSize: batchSize,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c ExpirePendingOrdersCommand) Validate() error {
	return c.guard.Validate(ErrExpirePendingOrdersCommandIsNotConstructed)
}

func (c ExpirePendingOrdersCommand) TTL() time.Duration {
	return c.ttl
}

func (c ExpirePendingOrdersCommand) BatchSize() int {
	return c.batchSize
}
