package commands_test

import (
	"errors"
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/cart"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/restaurant"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newRestaurant(t *testing.T, id kernel.RestaurantID) *restaurant.Restaurant {
	t.Helper()
	r, err := restaurant.NewRestaurant(id, "Luigi's", "555-0100", kernel.MustNewLocation(0, 0))
	require.NoError(t, err)
	return r
}

func newCartUoW(cartRepo *MockCartRepository, restaurantRepo *MockRestaurantRepository) (*MockUoW, *MockCartUoWFactory) {
	uow := new(MockUoW)
	uow.On("CartRepository").Return(cartRepo).Maybe()
	uow.On("RestaurantRepository").Return(restaurantRepo).Maybe()
	uow.On("Rollback", mock.Anything).Return(nil).Maybe()

	factory := new(MockCartUoWFactory)
	factory.On("Create").Return(uow).Once()
	return uow, factory
}

func TestAddCartItemCommandHandler_Handle_OpensCartAndAdds(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewAddCartItemCommand(7, 3, "Pizza", decimal.RequireFromString("10.00"), 2)
	require.NoError(t, err)

	opened, err := cart.NewCart(7, 3)
	require.NoError(t, err)

	cartRepo := new(MockCartRepository)
	restaurantRepo := new(MockRestaurantRepository)
	uow, factory := newCartUoW(cartRepo, restaurantRepo)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		restaurantRepo.On("Get", ctx, kernel.RestaurantID(3)).Return(newRestaurant(t, 3), nil).Once(),
		cartRepo.On("Open", ctx, kernel.CustomerID(7), kernel.RestaurantID(3)).Return(opened, nil).Once(),
		cartRepo.On("Save", ctx, opened).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
	)

	h := commands.NewAddCartItemCommandHandler(factory)
	total, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 2, total)
	cartRepo.AssertExpectations(t)
	restaurantRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAddCartItemCommandHandler_Handle_ReAddIncrementsByOneAndKeepsPrice(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewAddCartItemCommand(7, 3, "Pizza", decimal.RequireFromString("12.00"), 5)
	require.NoError(t, err)

	existing, err := cart.NewCart(7, 3)
	require.NoError(t, err)
	require.NoError(t, existing.AddItem("Pizza", decimal.RequireFromString("10.00"), 2))

	cartRepo := new(MockCartRepository)
	restaurantRepo := new(MockRestaurantRepository)
	uow, factory := newCartUoW(cartRepo, restaurantRepo)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	restaurantRepo.On("Get", ctx, kernel.RestaurantID(3)).Return(newRestaurant(t, 3), nil).Once()
	cartRepo.On("Open", ctx, kernel.CustomerID(7), kernel.RestaurantID(3)).Return(existing, nil).Once()
	cartRepo.On("Save", ctx, existing).Return(nil).Once()

	h := commands.NewAddCartItemCommandHandler(factory)
	total, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 3, total)
	item, ok := existing.Item("Pizza")
	require.True(t, ok)
	assert.Equal(t, "10.00", item.UnitPrice().StringFixed(2))
}

func TestAddCartItemCommandHandler_Handle_CartForOtherRestaurant_Conflict(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewAddCartItemCommand(7, 4, "Sushi", decimal.RequireFromString("8.00"), 1)
	require.NoError(t, err)

	cartRepo := new(MockCartRepository)
	restaurantRepo := new(MockRestaurantRepository)
	uow, factory := newCartUoW(cartRepo, restaurantRepo)
	uow.On("Begin", ctx).Return(nil).Once()
	restaurantRepo.On("Get", ctx, kernel.RestaurantID(4)).Return(newRestaurant(t, 4), nil).Once()
	cartRepo.On("Open", ctx, kernel.CustomerID(7), kernel.RestaurantID(4)).
		Return(nil, cart.ErrMultipleCartsNotAllowed).Once()

	h := commands.NewAddCartItemCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, cart.ErrMultipleCartsNotAllowed)
	assert.Equal(t, errs.KindConflict, errs.KindOf(err))
	cartRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	uow.AssertCalled(t, "Rollback", ctx)
}

func TestAddCartItemCommandHandler_Handle_UnknownRestaurant_NotFound(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewAddCartItemCommand(7, 99, "Pizza", decimal.RequireFromString("10.00"), 1)
	require.NoError(t, err)

	cartRepo := new(MockCartRepository)
	restaurantRepo := new(MockRestaurantRepository)
	uow, factory := newCartUoW(cartRepo, restaurantRepo)
	uow.On("Begin", ctx).Return(nil).Once()
	restaurantRepo.On("Get", ctx, kernel.RestaurantID(99)).
		Return(nil, errs.NewObjectNotFoundError("restaurant", 99)).Once()

	h := commands.NewAddCartItemCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	cartRepo.AssertNotCalled(t, "Open", mock.Anything, mock.Anything, mock.Anything)
}

func TestAddCartItemCommandHandler_Handle_ValidationError(t *testing.T) {
	factory := new(MockCartUoWFactory)
	h := commands.NewAddCartItemCommandHandler(factory)

	_, err := h.Handle(t.Context(), commands.AddCartItemCommand{})

	require.ErrorIs(t, err, commands.ErrAddCartItemCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestAddCartItemCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewAddCartItemCommand(7, 3, "Pizza", decimal.RequireFromString("10.00"), 1)
	require.NoError(t, err)

	uow := new(MockUoW)
	factory := new(MockCartUoWFactory)
	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(errors.New("begin error")).Once()

	h := commands.NewAddCartItemCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)

	require.EqualError(t, err, "begin error")
	uow.AssertExpectations(t)
}

func TestUpdateCartItemCommandHandler_Handle(t *testing.T) {
	newCart := func(t *testing.T) *cart.Cart {
		c, err := cart.NewCart(7, 3)
		require.NoError(t, err)
		require.NoError(t, c.AddItem("Pizza", decimal.RequireFromString("10.00"), 2))
		require.NoError(t, c.AddItem("Cola", decimal.RequireFromString("1.50"), 1))
		return c
	}

	t.Run("sets the quantity", func(t *testing.T) {
		ctx := t.Context()
		cmd, err := commands.NewUpdateCartItemCommand(7, "Pizza", 5)
		require.NoError(t, err)
		c := newCart(t)

		cartRepo := new(MockCartRepository)
		uow, factory := newCartUoW(cartRepo, new(MockRestaurantRepository))
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("Commit", ctx).Return(nil).Once()
		cartRepo.On("FindOpenCartForUpdate", ctx, kernel.CustomerID(7)).Return(c, nil).Once()
		cartRepo.On("Save", ctx, c).Return(nil).Once()

		h := commands.NewUpdateCartItemCommandHandler(factory)
		total, err := h.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, 6, total)
		uow.AssertExpectations(t)
	})

	t.Run("remove deletes the line and keeps the cart open", func(t *testing.T) {
		ctx := t.Context()
		cmd, err := commands.NewRemoveCartItemCommand(7, "Pizza")
		require.NoError(t, err)
		c := newCart(t)

		cartRepo := new(MockCartRepository)
		uow, factory := newCartUoW(cartRepo, new(MockRestaurantRepository))
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("Commit", ctx).Return(nil).Once()
		cartRepo.On("FindOpenCartForUpdate", ctx, kernel.CustomerID(7)).Return(c, nil).Once()
		cartRepo.On("Save", ctx, c).Return(nil).Once()

		h := commands.NewUpdateCartItemCommandHandler(factory)
		total, err := h.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, 1, total)
		_, ok := c.Item("Pizza")
		assert.False(t, ok)
		cartRepo.AssertNotCalled(t, "Close", mock.Anything, mock.Anything)
	})

	t.Run("no open cart", func(t *testing.T) {
		ctx := t.Context()
		cmd, err := commands.NewUpdateCartItemCommand(7, "Pizza", 1)
		require.NoError(t, err)

		cartRepo := new(MockCartRepository)
		uow, factory := newCartUoW(cartRepo, new(MockRestaurantRepository))
		uow.On("Begin", ctx).Return(nil).Once()
		cartRepo.On("FindOpenCartForUpdate", ctx, kernel.CustomerID(7)).Return(nil, nil).Once()

		h := commands.NewUpdateCartItemCommandHandler(factory)
		_, err = h.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("unknown item", func(t *testing.T) {
		ctx := t.Context()
		cmd, err := commands.NewUpdateCartItemCommand(7, "Lasagna", 1)
		require.NoError(t, err)

		cartRepo := new(MockCartRepository)
		uow, factory := newCartUoW(cartRepo, new(MockRestaurantRepository))
		uow.On("Begin", ctx).Return(nil).Once()
		cartRepo.On("FindOpenCartForUpdate", ctx, kernel.CustomerID(7)).Return(newCart(t), nil).Once()

		h := commands.NewUpdateCartItemCommandHandler(factory)
		_, err = h.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		cartRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestDeleteCartCommandHandler_Handle(t *testing.T) {
	t.Run("closes the open cart", func(t *testing.T) {
		ctx := t.Context()
		cmd, err := commands.NewDeleteCartCommand(7)
		require.NoError(t, err)
		c, err := cart.NewCart(7, 3)
		require.NoError(t, err)

		cartRepo := new(MockCartRepository)
		uow, factory := newCartUoW(cartRepo, new(MockRestaurantRepository))
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			cartRepo.On("FindOpenCartForUpdate", ctx, kernel.CustomerID(7)).Return(c, nil).Once(),
			cartRepo.On("Close", ctx, c).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
		)

		h := commands.NewDeleteCartCommandHandler(factory)
		require.NoError(t, h.Handle(ctx, cmd))
		cartRepo.AssertExpectations(t)
	})

	t.Run("no open cart", func(t *testing.T) {
		ctx := t.Context()
		cmd, err := commands.NewDeleteCartCommand(7)
		require.NoError(t, err)

		cartRepo := new(MockCartRepository)
		uow, factory := newCartUoW(cartRepo, new(MockRestaurantRepository))
		uow.On("Begin", ctx).Return(nil).Once()
		cartRepo.On("FindOpenCartForUpdate", ctx, kernel.CustomerID(7)).Return(nil, nil).Once()

		h := commands.NewDeleteCartCommandHandler(factory)
		err = h.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestNewAddCartItemCommand_InvalidInput(t *testing.T) {
	_, err := commands.NewAddCartItemCommand(0, 0, " ", decimal.NewFromInt(-1), 0)

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrItemNameIsRequired)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Equal(t, errs.KindInvalid, errs.KindOf(err))
}

func TestNewUpdateCartItemCommand_NegativeQuantity(t *testing.T) {
	_, err := commands.NewUpdateCartItemCommand(7, "Pizza", -1)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
