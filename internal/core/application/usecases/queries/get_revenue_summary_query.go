package queries

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetRevenueSummaryQueryIsNotConstructed = errors.New(
		"GetRevenueSummaryQuery must be created via NewGetRevenueSummaryQuery constructor",
	)
)

// GetRevenueSummaryQuery totals a restaurant's reviewed orders whose order
// date falls in [startDate, endDate]. Order dates are business calendar days,
// so only the year, month and day of each bound, read in its own location, count.
type GetRevenueSummaryQuery struct {
	restaurantID kernel.RestaurantID
	startDate    time.Time
	endDate      time.Time

	guard guard.ConstructorGuard
}

func NewGetRevenueSummaryQuery(
	restaurantID kernel.RestaurantID,
	startDate time.Time,
	endDate time.Time,
) (GetRevenueSummaryQuery, error) {
	if err := restaurantID.Validate(); err != nil {
		return GetRevenueSummaryQuery{}, err
	}

	start, end := calendarDay(startDate), calendarDay(endDate)
	if start.After(end) {
		return GetRevenueSummaryQuery{}, errs.NewValueIsInvalidErrorWithCause(
			"dateRange",
			fmt.Errorf("start %s is after end %s", start.Format(time.DateOnly), end.Format(time.DateOnly)),
		)
	}

	return GetRevenueSummaryQuery{
		restaurantID: restaurantID,
		startDate:    start,
		endDate:      end,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (q GetRevenueSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetRevenueSummaryQueryIsNotConstructed)
}

func (q GetRevenueSummaryQuery) RestaurantID() kernel.RestaurantID {
	return q.restaurantID
}

func (q GetRevenueSummaryQuery) StartDate() time.Time {
	return q.startDate
}

func (q GetRevenueSummaryQuery) EndDate() time.Time {
	return q.endDate
}

type GetRevenueSummaryQueryResponse struct {
	StartDate       time.Time
	EndDate         time.Time
	CompletedOrders int64
	Revenue         decimal.Decimal
}

func calendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
