package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"fulfillment/internal/adapters/out/postgres/orderrepo"
	"fulfillment/internal/adapters/out/postgres/testdb"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id string, aggregate any) {
	m.Called(id, aggregate)
}

type OrderRepositoryTestSuite struct {
	suite.Suite
	db         *gorm.DB
	tracker    *MockAggregateTracker
	repository *orderrepo.GormOrderRepository
	placedAt   time.Time
}

func TestOrderRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryTestSuite))
}

func (suite *OrderRepositoryTestSuite) SetupTest() {
	suite.db = testdb.New(suite.T())
	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
	suite.placedAt = time.Date(2024, 5, 17, 18, 30, 0, 0, time.UTC)
}

func (suite *OrderRepositoryTestSuite) TestAdd_ValidOrder_Success() {
	ctx := context.Background()
	testOrder := suite.newOrder("OC1R2T20240517183000-A", suite.placedAt)

	suite.tracker.On("TrackAggregate", testOrder.Code(), testOrder).Once()

	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	got, err := suite.repository.Get(ctx, testOrder.Code())
	suite.Require().NoError(err)
	suite.Equal(order.Pending, got.Status())
	suite.Equal(kernel.CustomerID(1), got.CustomerID())
	suite.Equal(kernel.RestaurantID(2), got.RestaurantID())
	suite.Equal("Ann", got.Recipient())
	suite.True(decimal.RequireFromString("23.76").Equal(got.TotalCost()))
	suite.True(time.Date(2024, 5, 17, 0, 0, 0, 0, time.UTC).Equal(got.OrderDate()))

	items := got.Items()
	suite.Require().Len(items, 2)
	suite.Equal("Pizza", items[0].Name())
	suite.Equal(2, items[0].Quantity())
	suite.Equal("Cola", items[1].Name())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryTestSuite) TestAdd_DuplicateCode_Conflict() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	first := suite.newOrder("OC1R2T20240517183000-A", suite.placedAt)
	second := suite.newOrder("OC1R2T20240517183000-A", suite.placedAt)
	suite.Require().NoError(suite.repository.Add(ctx, first))

	err := suite.repository.Add(ctx, second)

	suite.Require().ErrorIs(err, errs.ErrConflict)
}

func (suite *OrderRepositoryTestSuite) TestGet_UnknownCode_NotFound() {
	_, err := suite.repository.Get(context.Background(), "OC9R9T20240101000000-X")

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryTestSuite) TestTransition_FromExpectedStatus_Persists() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	testOrder := suite.newOrder("OC1R2T20240517183000-A", suite.placedAt)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	suite.Require().NoError(testOrder.Accept("Luigi's Courier", "555-0100"))
	suite.Require().NoError(suite.repository.Transition(ctx, testOrder, order.Pending))

	rating, err := kernel.NewRating(4)
	suite.Require().NoError(err)
	suite.Require().NoError(testOrder.Review(rating, "warm and on time"))
	suite.Require().NoError(suite.repository.Transition(ctx, testOrder, order.Accepted))

	got, err := suite.repository.Get(ctx, testOrder.Code())
	suite.Require().NoError(err)
	suite.Equal(order.Reviewed, got.Status())
	suite.Equal("Luigi's Courier", got.CourierName())
	suite.Equal("warm and on time", got.ReviewText())
	suite.Require().NotNil(got.Rating())
	suite.Equal(4, got.Rating().Int())
}

func (suite *OrderRepositoryTestSuite) TestTransition_StaleStatus_Forbidden() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	testOrder := suite.newOrder("OC1R2T20240517183000-A", suite.placedAt)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	// a competing request already rejected the order
	competing, err := suite.repository.Get(ctx, testOrder.Code())
	suite.Require().NoError(err)
	suite.Require().NoError(competing.Reject("closed"))
	suite.Require().NoError(suite.repository.Transition(ctx, competing, order.Pending))

	suite.Require().NoError(testOrder.Accept("Luigi's Courier", "555-0100"))
	err = suite.repository.Transition(ctx, testOrder, order.Pending)

	suite.Require().ErrorIs(err, errs.ErrForbidden)

	got, err := suite.repository.Get(ctx, testOrder.Code())
	suite.Require().NoError(err)
	suite.Equal(order.Rejected, got.Status())
	suite.Equal("closed", got.RejectReason())
}

func (suite *OrderRepositoryTestSuite) TestDelete_PendingOrder_RemovesOrderAndItems() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	testOrder := suite.newOrder("OC1R2T20240517183000-A", suite.placedAt)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	suite.Require().NoError(suite.repository.Delete(ctx, testOrder, order.Pending))

	_, err := suite.repository.Get(ctx, testOrder.Code())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	var items int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderItemDTO{}).Count(&items).Error)
	suite.Zero(items)
}

func (suite *OrderRepositoryTestSuite) TestDelete_AcceptedOrder_Forbidden() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	testOrder := suite.newOrder("OC1R2T20240517183000-A", suite.placedAt)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))
	suite.Require().NoError(testOrder.Accept("Luigi's Courier", "555-0100"))
	suite.Require().NoError(suite.repository.Transition(ctx, testOrder, order.Pending))

	err := suite.repository.Delete(ctx, testOrder, order.Pending)

	suite.Require().ErrorIs(err, errs.ErrForbidden)
	_, err = suite.repository.Get(ctx, testOrder.Code())
	suite.Require().NoError(err)
}

func (suite *OrderRepositoryTestSuite) TestListPendingPlacedBefore_OldestFirst() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	older := suite.newOrder("OC1R2T20240517180000-A", suite.placedAt.Add(-30*time.Minute))
	old := suite.newOrder("OC1R2T20240517182000-B", suite.placedAt.Add(-10*time.Minute))
	fresh := suite.newOrder("OC1R2T20240517183000-C", suite.placedAt)
	accepted := suite.newOrder("OC1R2T20240517175000-D", suite.placedAt.Add(-40*time.Minute))
	for _, o := range []*order.Order{fresh, old, older, accepted} {
		suite.Require().NoError(suite.repository.Add(ctx, o))
	}
	suite.Require().NoError(accepted.Accept("Luigi's Courier", "555-0100"))
	suite.Require().NoError(suite.repository.Transition(ctx, accepted, order.Pending))

	got, err := suite.repository.ListPendingPlacedBefore(ctx, suite.placedAt.Add(-5*time.Minute), 10)

	suite.Require().NoError(err)
	suite.Require().Len(got, 2)
	suite.Equal(older.Code(), got[0].Code())
	suite.Equal(old.Code(), got[1].Code())
	suite.Len(got[0].Items(), 2)
}

func (suite *OrderRepositoryTestSuite) TestAdd_KeepsBusinessOrderDate() {
	ctx := context.Background()
	sydney := time.FixedZone("AEST", 10*60*60)
	testOrder := suite.newOrder("OC1R2T20240517183000-B", suite.placedAt.In(sydney))
	suite.tracker.On("TrackAggregate", testOrder.Code(), testOrder).Once()

	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	got, err := suite.repository.Get(ctx, testOrder.Code())
	suite.Require().NoError(err)
	suite.True(time.Date(2024, 5, 18, 0, 0, 0, 0, time.UTC).Equal(got.OrderDate()), got.OrderDate().String())
	suite.True(suite.placedAt.Equal(got.PlacedAt()))
}

func (suite *OrderRepositoryTestSuite) newOrder(code string, placedAt time.Time) *order.Order {
	pizza, err := order.NewItem("Pizza", decimal.RequireFromString("10.00"), 2)
	suite.Require().NoError(err)
	cola, err := order.NewItem("Cola", decimal.RequireFromString("1.50"), 1)
	suite.Require().NoError(err)

	o, err := order.NewOrder(
		code,
		1,
		2,
		order.Details{Recipient: "Ann", Phone: "555-0199", DeliveryAddress: "1 Main St"},
		placedAt,
		decimal.RequireFromString("23.76"),
		[]order.Item{pizza, cola},
	)
	suite.Require().NoError(err)
	return o
}
