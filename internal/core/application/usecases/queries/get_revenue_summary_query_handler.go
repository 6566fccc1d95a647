package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type GetRevenueSummaryQueryHandler struct {
	db *gorm.DB
}

func NewGetRevenueSummaryQueryHandler(db *gorm.DB) GetRevenueSummaryQueryHandler {
	return GetRevenueSummaryQueryHandler{db: db}
}

// Handle counts only Reviewed orders; a reported order is never completed.
func (h GetRevenueSummaryQueryHandler) Handle(
	ctx context.Context,
	query GetRevenueSummaryQuery,
) (GetRevenueSummaryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetRevenueSummaryQueryResponse{}, err
	}

	var row struct {
		CompletedOrders int64
		Revenue         decimal.Decimal
	}
	if err := h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*) AS completed_orders,
			COALESCE(SUM(order_cost), 0) AS revenue
		FROM orders
		WHERE restaurant_id = ?
			AND status = ?
			AND order_date BETWEEN ? AND ?
	`,
		int64(query.RestaurantID()),
		int(order.Reviewed),
		query.StartDate(),
		query.EndDate(),
	).Scan(&row).Error; err != nil {
		return GetRevenueSummaryQueryResponse{}, err
	}

	return GetRevenueSummaryQueryResponse{
		StartDate:       query.StartDate(),
		EndDate:         query.EndDate(),
		CompletedOrders: row.CompletedOrders,
		Revenue:         kernel.RoundMoney(row.Revenue),
	}, nil
}
