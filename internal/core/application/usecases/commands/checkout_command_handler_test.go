package commands_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/cart"
	"fulfillment/internal/core/domain/model/customer"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var checkoutAt = time.Date(2024, 5, 17, 18, 30, 5, 0, time.UTC)

type checkoutFixture struct {
	uow            *MockUoW
	factory        *MockUoWFactory
	cartRepo       *MockCartRepository
	orderRepo      *MockOrderRepository
	restaurantRepo *MockRestaurantRepository
	handler        commands.CheckoutCommandHandler
}

func newCheckoutFixture() *checkoutFixture {
	f := &checkoutFixture{
		uow:            new(MockUoW),
		factory:        new(MockUoWFactory),
		cartRepo:       new(MockCartRepository),
		orderRepo:      new(MockOrderRepository),
		restaurantRepo: new(MockRestaurantRepository),
	}
	f.uow.On("CartRepository").Return(f.cartRepo).Maybe()
	f.uow.On("OrderRepository").Return(f.orderRepo).Maybe()
	f.uow.On("RestaurantRepository").Return(f.restaurantRepo).Maybe()
	f.uow.On("Rollback", mock.Anything).Return(nil).Maybe()
	f.factory.On("Create").Return(f.uow).Once()
	f.handler = commands.NewCheckoutCommandHandler(f.factory, services.NewPricingEngine(), func() time.Time { return checkoutAt }, nil)
	return f
}

func filledCart(t *testing.T) *cart.Cart {
	t.Helper()
	c, err := cart.NewCart(7, 3)
	require.NoError(t, err)
	require.NoError(t, c.AddItem("Fried Rice", decimal.RequireFromString("10.00"), 2))
	require.NoError(t, c.AddItem("Iced Tea", decimal.RequireFromString("5.50"), 1))
	return c
}

func newCheckoutCommand(t *testing.T, member bool, quoted *decimal.Decimal) commands.CheckoutCommand {
	t.Helper()

	var expires *time.Time
	if member {
		e := checkoutAt.Add(24 * time.Hour)
		expires = &e
	}
	buyer, err := customer.NewCustomer(7, expires)
	require.NoError(t, err)

	// ~2.1 km north of the restaurant, a delivery fee of 4.20
	cmd, err := commands.NewCheckoutCommand(
		buyer,
		order.Details{Recipient: "Ann", Phone: "555-0199", DeliveryAddress: "1 Main St"},
		kernel.MustNewLocation(0.018886, 0),
		quoted,
	)
	require.NoError(t, err)
	return cmd
}

func TestCheckoutCommandHandler_Handle_PlacesOrderAndClosesCart(t *testing.T) {
	ctx := t.Context()
	f := newCheckoutFixture()
	c := filledCart(t)

	var placed *order.Order
	mock.InOrder(
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.cartRepo.On("FindOpenCartForUpdate", ctx, kernel.CustomerID(7)).Return(c, nil).Once(),
		f.restaurantRepo.On("Get", ctx, kernel.RestaurantID(3)).Return(newRestaurant(t, 3), nil).Once(),
		f.orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).
			Run(func(args mock.Arguments) { placed = args.Get(1).(*order.Order) }).
			Return(nil).Once(),
		f.cartRepo.On("Close", ctx, c).Return(nil).Once(),
		f.uow.On("Commit", ctx).Return(nil).Once(),
	)

	code, err := f.handler.Handle(ctx, newCheckoutCommand(t, true, nil))

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(code, "OC7R3T20240517183005-"), code)
	require.NotNil(t, placed)
	assert.Equal(t, code, placed.Code())
	assert.Equal(t, order.Pending, placed.Status())
	assert.Equal(t, "23.76", placed.TotalCost().StringFixed(2))
	assert.Equal(t, checkoutAt, placed.PlacedAt())
	assert.Equal(t, time.Date(2024, 5, 17, 0, 0, 0, 0, time.UTC), placed.OrderDate())
	assert.Equal(t, "1 Main St", placed.DeliveryAddress())

	items := placed.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "Fried Rice", items[0].Name())
	assert.Equal(t, 2, items[0].Quantity())
	assert.Equal(t, "Iced Tea", items[1].Name())

	f.cartRepo.AssertExpectations(t)
	f.orderRepo.AssertExpectations(t)
	f.uow.AssertExpectations(t)
}

func TestCheckoutCommandHandler_Handle_OrderDateFollowsBusinessTimeZone(t *testing.T) {
	ctx := t.Context()
	f := newCheckoutFixture()
	sydney := time.FixedZone("AEST", 10*60*60)
	f.handler = commands.NewCheckoutCommandHandler(f.factory, services.NewPricingEngine(),
		func() time.Time { return checkoutAt }, sydney)
	c := filledCart(t)

	var placed *order.Order
	f.uow.On("Begin", ctx).Return(nil).Once()
	f.uow.On("Commit", ctx).Return(nil).Once()
	f.cartRepo.On("FindOpenCartForUpdate", ctx, kernel.CustomerID(7)).Return(c, nil).Once()
	f.cartRepo.On("Close", ctx, c).Return(nil).Once()
	f.restaurantRepo.On("Get", ctx, kernel.RestaurantID(3)).Return(newRestaurant(t, 3), nil).Once()
	f.orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).
		Run(func(args mock.Arguments) { placed = args.Get(1).(*order.Order) }).
		Return(nil).Once()

	code, err := f.handler.Handle(ctx, newCheckoutCommand(t, false, nil))

	require.NoError(t, err)
	require.NotNil(t, placed)
	// 18:30 UTC on the 17th is already the 18th in Sydney
	assert.Equal(t, time.Date(2024, 5, 18, 0, 0, 0, 0, time.UTC), placed.OrderDate())
	assert.Equal(t, checkoutAt, placed.PlacedAt())
	assert.True(t, strings.HasPrefix(code, "OC7R3T20240517183005-"), code)
}

func TestCheckoutCommandHandler_Handle_ExpiredMembershipPaysFullPrice(t *testing.T) {
	ctx := t.Context()
	f := newCheckoutFixture()
	c := filledCart(t)

	f.uow.On("Begin", ctx).Return(nil).Once()
	f.uow.On("Commit", ctx).Return(nil).Once()
	f.cartRepo.On("FindOpenCartForUpdate", ctx, kernel.CustomerID(7)).Return(c, nil).Once()
	f.cartRepo.On("Close", ctx, c).Return(nil).Once()
	f.restaurantRepo.On("Get", ctx, kernel.RestaurantID(3)).Return(newRestaurant(t, 3), nil).Once()
	f.orderRepo.On("Add", ctx, mock.MatchedBy(func(o *order.Order) bool {
		return o.TotalCost().StringFixed(2) == "29.70"
	})).Return(nil).Once()

	expired := checkoutAt
	buyer, err := customer.NewCustomer(7, &expired)
	require.NoError(t, err)
	cmd, err := commands.NewCheckoutCommand(buyer,
		order.Details{Recipient: "Ann", Phone: "555-0199", DeliveryAddress: "1 Main St"},
		kernel.MustNewLocation(0.018886, 0), nil)
	require.NoError(t, err)

	_, err = f.handler.Handle(ctx, cmd)

	require.NoError(t, err)
	f.orderRepo.AssertExpectations(t)
}

func TestCheckoutCommandHandler_Handle_NoOrEmptyCart_NotFound(t *testing.T) {
	empty, err := cart.NewCart(7, 3)
	require.NoError(t, err)

	for name, found := range map[string]*cart.Cart{"no cart": nil, "empty cart": empty} {
		t.Run(name, func(t *testing.T) {
			ctx := t.Context()
			f := newCheckoutFixture()
			f.uow.On("Begin", ctx).Return(nil).Once()
			f.cartRepo.On("FindOpenCartForUpdate", ctx, kernel.CustomerID(7)).Return(found, nil).Once()

			_, err := f.handler.Handle(ctx, newCheckoutCommand(t, false, nil))

			require.ErrorIs(t, err, errs.ErrObjectNotFound)
			f.orderRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
			f.uow.AssertNotCalled(t, "Commit", mock.Anything)
		})
	}
}

func TestCheckoutCommandHandler_Handle_QuotedCost(t *testing.T) {
	t.Run("matching quote is accepted", func(t *testing.T) {
		ctx := t.Context()
		f := newCheckoutFixture()
		c := filledCart(t)
		f.uow.On("Begin", ctx).Return(nil).Once()
		f.uow.On("Commit", ctx).Return(nil).Once()
		f.cartRepo.On("FindOpenCartForUpdate", ctx, kernel.CustomerID(7)).Return(c, nil).Once()
		f.cartRepo.On("Close", ctx, c).Return(nil).Once()
		f.restaurantRepo.On("Get", ctx, kernel.RestaurantID(3)).Return(newRestaurant(t, 3), nil).Once()
		f.orderRepo.On("Add", ctx, mock.Anything).Return(nil).Once()

		quoted := decimal.RequireFromString("23.76")
		_, err := f.handler.Handle(ctx, newCheckoutCommand(t, true, &quoted))

		require.NoError(t, err)
	})

	t.Run("stale quote is a conflict", func(t *testing.T) {
		ctx := t.Context()
		f := newCheckoutFixture()
		f.uow.On("Begin", ctx).Return(nil).Once()
		f.cartRepo.On("FindOpenCartForUpdate", ctx, kernel.CustomerID(7)).Return(filledCart(t), nil).Once()
		f.restaurantRepo.On("Get", ctx, kernel.RestaurantID(3)).Return(newRestaurant(t, 3), nil).Once()

		quoted := decimal.RequireFromString("20.00")
		_, err := f.handler.Handle(ctx, newCheckoutCommand(t, true, &quoted))

		require.ErrorIs(t, err, commands.ErrQuotedCostChanged)
		assert.Equal(t, errs.KindConflict, errs.KindOf(err))
		f.orderRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	})
}

func TestCheckoutCommandHandler_Handle_FailureAfterInsert_RollsBack(t *testing.T) {
	ctx := t.Context()
	f := newCheckoutFixture()
	c := filledCart(t)
	f.uow.On("Begin", ctx).Return(nil).Once()
	f.cartRepo.On("FindOpenCartForUpdate", ctx, kernel.CustomerID(7)).Return(c, nil).Once()
	f.restaurantRepo.On("Get", ctx, kernel.RestaurantID(3)).Return(newRestaurant(t, 3), nil).Once()
	f.orderRepo.On("Add", ctx, mock.Anything).Return(nil).Once()
	f.cartRepo.On("Close", ctx, c).Return(errors.New("connection reset")).Once()

	_, err := f.handler.Handle(ctx, newCheckoutCommand(t, false, nil))

	require.EqualError(t, err, "connection reset")
	assert.Equal(t, errs.KindInternal, errs.KindOf(err))
	f.uow.AssertNotCalled(t, "Commit", mock.Anything)
	f.uow.AssertCalled(t, "Rollback", ctx)
}

func TestNewCheckoutCommand_InvalidInput(t *testing.T) {
	buyer, err := customer.NewCustomer(7, nil)
	require.NoError(t, err)
	negative := decimal.NewFromInt(-1)

	_, err = commands.NewCheckoutCommand(buyer, order.Details{}, kernel.Location{}, &negative)

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrRecipientIsRequired)
	assert.ErrorIs(t, err, commands.ErrPhoneIsRequired)
	assert.ErrorIs(t, err, commands.ErrDeliveryAddressIsRequired)
	assert.ErrorIs(t, err, kernel.ErrLocationIsNotConstructed)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
