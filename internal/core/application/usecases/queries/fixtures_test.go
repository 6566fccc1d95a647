package queries_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/adapters/out/postgres/testdb"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/restaurant"
	"fulfillment/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fixture struct {
	db      *gorm.DB
	factory *postgres_adapter.GormUnitOfWorkFactory
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	db := testdb.New(t)
	return fixture{db: db, factory: postgres_adapter.NewGormUnitOfWorkFactory(db)}
}

func (f fixture) uow() ports.UnitOfWork {
	return f.factory.Create()
}

func (f fixture) restaurant(t *testing.T, id kernel.RestaurantID, name string, lat float64) {
	t.Helper()
	r, err := restaurant.NewRestaurant(id, name, "555-01"+id.String(), kernel.MustNewLocation(lat, 0))
	require.NoError(t, err)
	require.NoError(t, f.uow().RestaurantRepository().Add(context.Background(), r))
}

type orderFixture struct {
	code       string
	customer   kernel.CustomerID
	restaurant kernel.RestaurantID
	status     order.Status
	placedAt   time.Time
	cost       string
}

func (f fixture) order(t *testing.T, s orderFixture) {
	t.Helper()

	pizza, err := order.NewItem("Pizza", decimal.RequireFromString("10.00"), 2)
	require.NoError(t, err)
	tea, err := order.NewItem("Iced Tea", decimal.RequireFromString("5.50"), 1)
	require.NoError(t, err)

	snapshot := order.Snapshot{
		Code:            s.code,
		CustomerID:      s.customer,
		RestaurantID:    s.restaurant,
		Recipient:       "Ann",
		Phone:           "555-0199",
		DeliveryAddress: "1 Main St",
		Status:          s.status,
		PlacedAt:        s.placedAt,
		TotalCost:       decimal.RequireFromString(s.cost),
		Items:           []order.Item{pizza, tea},
	}
	if s.status == order.Accepted || s.status == order.Reviewed || s.status == order.Reported {
		snapshot.CourierName = "Luigi's Courier"
		snapshot.CourierPhone = "555-0100"
	}
	if s.status == order.Reviewed {
		rating := kernel.Rating(5)
		snapshot.Rating = &rating
		snapshot.Review = "Great"
	}
	if s.status == order.Rejected {
		snapshot.RejectReason = "Closed"
	}

	o, err := order.RestoreOrder(snapshot)
	require.NoError(t, err)
	require.NoError(t, f.uow().OrderRepository().Add(context.Background(), o))
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}
