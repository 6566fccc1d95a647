package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"gorm.io/gorm"
)

type ListOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle returns the newest orders first.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderSummaryView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	ownerColumn := "customer_id"
	if query.Actor().Role == order.RoleRestaurant {
		ownerColumn = "restaurant_id"
	}

	statuses := make([]int, 0, len(query.Statuses()))
	for _, s := range query.Statuses() {
		statuses = append(statuses, int(s))
	}

	var rows []orderRow
	if err := h.db.WithContext(ctx).
		Table("orders").
		Select("code, customer_id, restaurant_id, recipient, status, order_date, placed_at, order_cost").
		Where(ownerColumn+" = ? AND status IN ?", query.Actor().ID, statuses).
		Order("placed_at DESC, code").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	views := make([]OrderSummaryView, 0, len(rows))
	for _, row := range rows {
		views = append(views, OrderSummaryView{
			Code:         row.Code,
			CustomerID:   kernel.CustomerID(row.CustomerID),
			RestaurantID: kernel.RestaurantID(row.RestaurantID),
			Recipient:    row.Recipient,
			Status:       order.Status(row.Status),
			OrderDate:    row.OrderDate.UTC(),
			PlacedAt:     row.PlacedAt.UTC(),
			TotalCost:    kernel.RoundMoney(row.OrderCost),
		})
	}

	return views, nil
}
