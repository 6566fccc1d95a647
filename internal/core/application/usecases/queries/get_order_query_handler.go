package queries

import (
	"context"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type GetOrderQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

type orderRow struct {
	Code            string
	CustomerID      int64
	RestaurantID    int64
	Recipient       string
	Phone           string
	DeliveryAddress string
	Status          int
	CourierName     string
	CourierPhone    string
	Review          string
	Rating          *int
	RejectReason    string
	OrderDate       time.Time
	PlacedAt        time.Time
	OrderCost       decimal.Decimal
}

type orderItemRow struct {
	ItemName  string
	UnitPrice decimal.Decimal
	Quantity  int
}

// Handle returns Not-Found for an unknown code before it checks ownership,
// so a missing order and a foreign one are told apart.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderView, error) {
	if err := query.Validate(); err != nil {
		return OrderView{}, err
	}

	db := h.db.WithContext(ctx)

	var row orderRow
	result := db.Raw(`
		SELECT
			code, customer_id, restaurant_id, recipient, phone, delivery_address,
			status, courier_name, courier_phone, review, rating, reject_reason,
			order_date, placed_at, order_cost
		FROM orders
		WHERE code = ?
	`, query.OrderCode()).Scan(&row)
	if result.Error != nil {
		return OrderView{}, result.Error
	}
	if result.RowsAffected == 0 {
		return OrderView{}, errs.NewObjectNotFoundError("order", query.OrderCode())
	}

	if !isParty(query.Actor(), row.CustomerID, row.RestaurantID) {
		return OrderView{}, errs.NewForbiddenError(
			"view",
			fmt.Sprintf("order %s does not belong to %s", row.Code, query.Actor()),
		)
	}

	var items []orderItemRow
	if err := db.Raw(`
		SELECT item_name, unit_price, quantity
		FROM order_items
		WHERE order_code = ?
		ORDER BY position
	`, row.Code).Scan(&items).Error; err != nil {
		return OrderView{}, err
	}

	view := OrderView{
		Code:            row.Code,
		CustomerID:      kernel.CustomerID(row.CustomerID),
		RestaurantID:    kernel.RestaurantID(row.RestaurantID),
		Recipient:       row.Recipient,
		Phone:           row.Phone,
		DeliveryAddress: row.DeliveryAddress,
		Status:          order.Status(row.Status),
		CourierName:     row.CourierName,
		CourierPhone:    row.CourierPhone,
		Review:          row.Review,
		Rating:          row.Rating,
		RejectReason:    row.RejectReason,
		OrderDate:       row.OrderDate.UTC(),
		PlacedAt:        row.PlacedAt.UTC(),
		TotalCost:       kernel.RoundMoney(row.OrderCost),
		Items:           make([]OrderItemView, 0, len(items)),
	}
	for _, item := range items {
		view.Items = append(view.Items, OrderItemView{
			Name:      item.ItemName,
			UnitPrice: kernel.RoundMoney(item.UnitPrice),
			Quantity:  item.Quantity,
			LineTotal: kernel.RoundMoney(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))),
		})
	}

	return view, nil
}

func isParty(actor order.Actor, customerID, restaurantID int64) bool {
	switch actor.Role {
	case order.RoleCustomer:
		return actor.ID == customerID
	case order.RoleRestaurant:
		return actor.ID == restaurantID
	default:
		return false
	}
}
