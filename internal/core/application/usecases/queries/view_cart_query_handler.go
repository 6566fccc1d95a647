package queries

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ViewCartQueryHandler prices the open cart through the same engine checkout
// uses, so the view matches what checkout will charge at the same instant.
type ViewCartQueryHandler struct {
	db      *gorm.DB
	pricing services.PricingEngine
	now     func() time.Time
}

func NewViewCartQueryHandler(db *gorm.DB, pricing services.PricingEngine, now func() time.Time) ViewCartQueryHandler {
	if now == nil {
		now = time.Now
	}

	return ViewCartQueryHandler{
		db:      db,
		pricing: pricing,
		now:     now,
	}
}

type cartHeaderRow struct {
	Code                string
	RestaurantID        int64
	RestaurantName      string
	RestaurantLatitude  float64
	RestaurantLongitude float64
}

type cartItemRow struct {
	ItemName string
	Price    decimal.Decimal `gorm:"column:unit_price"`
	Qty      int             `gorm:"column:quantity"`
}

func (r cartItemRow) UnitPrice() decimal.Decimal {
	return r.Price
}

func (r cartItemRow) Quantity() int {
	return r.Qty
}

func (h ViewCartQueryHandler) Handle(ctx context.Context, query ViewCartQuery) (ViewCartQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ViewCartQueryResponse{}, err
	}

	db := h.db.WithContext(ctx)
	customerID := query.Buyer().ID()

	var header cartHeaderRow
	result := db.Raw(`
		SELECT
			c.code,
			c.restaurant_id,
			r.name AS restaurant_name,
			r.location_latitude AS restaurant_latitude,
			r.location_longitude AS restaurant_longitude
		FROM carts c
		JOIN restaurants r ON r.id = c.restaurant_id
		WHERE c.customer_id = ?
	`, int64(customerID)).Scan(&header)
	if result.Error != nil {
		return ViewCartQueryResponse{}, result.Error
	}
	if result.RowsAffected == 0 {
		return ViewCartQueryResponse{}, errs.NewObjectNotFoundError("cart", customerID)
	}

	var rows []cartItemRow
	if err := db.Raw(`
		SELECT item_name, unit_price, quantity
		FROM cart_items
		WHERE cart_code = ?
		ORDER BY position
	`, header.Code).Scan(&rows).Error; err != nil {
		return ViewCartQueryResponse{}, err
	}

	restaurantLocation, err := kernel.NewLocation(header.RestaurantLatitude, header.RestaurantLongitude)
	if err != nil {
		return ViewCartQueryResponse{}, err
	}

	cost, err := h.pricing.ComputeCheckoutCost(
		services.Lines(rows),
		query.Location(),
		restaurantLocation,
		query.Buyer().HasActiveMembership(h.now().UTC()),
	)
	if err != nil {
		return ViewCartQueryResponse{}, err
	}

	response := ViewCartQueryResponse{
		RestaurantID:   kernel.RestaurantID(header.RestaurantID),
		RestaurantName: header.RestaurantName,
		Items:          make([]CartItemView, 0, len(rows)),
		Cost:           cost,
	}
	for _, row := range rows {
		response.Items = append(response.Items, CartItemView{
			Name:      row.ItemName,
			UnitPrice: kernel.RoundMoney(row.Price),
			Quantity:  row.Qty,
			LineTotal: kernel.RoundMoney(row.Price.Mul(decimal.NewFromInt(int64(row.Qty)))),
		})
		response.TotalQuantity += row.Qty
	}

	return response, nil
}
