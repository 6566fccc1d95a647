// Package http is the inbound REST adapter. Requests are validated against
// the embedded OpenAPI document before they reach a handler, and core errors
// are translated into statuses by NewErrorHandler.
package http

import (
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// ServerInterface lists one method per operation of openapi.yaml.
type ServerInterface interface {
	ViewCart(ctx echo.Context) error
	DeleteCart(ctx echo.Context) error
	AddCartItem(ctx echo.Context) error
	UpdateCartItem(ctx echo.Context) error
	RemoveCartItem(ctx echo.Context) error
	Checkout(ctx echo.Context) error
	ListOrders(ctx echo.Context) error
	GetOrder(ctx echo.Context) error
	CancelOrder(ctx echo.Context) error
	AcceptOrder(ctx echo.Context) error
	RejectOrder(ctx echo.Context) error
	ReviewOrder(ctx echo.Context) error
	ReportOrder(ctx echo.Context) error
	NearbyRestaurants(ctx echo.Context) error
	RevenueSummary(ctx echo.Context) error
	GetRestaurant(ctx echo.Context) error
}

// EchoRouter is the subset of *echo.Echo and *echo.Group used for registration.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

func RegisterHandlers(router EchoRouter, si ServerInterface) {
	router.GET("/cart", si.ViewCart)
	router.DELETE("/cart", si.DeleteCart)
	router.POST("/cart/items", si.AddCartItem)
	router.PUT("/cart/items/:itemName", si.UpdateCartItem)
	router.DELETE("/cart/items/:itemName", si.RemoveCartItem)
	router.POST("/checkout", si.Checkout)
	router.GET("/orders", si.ListOrders)
	router.GET("/orders/:code", si.GetOrder)
	router.DELETE("/orders/:code", si.CancelOrder)
	router.POST("/orders/:code/accept", si.AcceptOrder)
	router.POST("/orders/:code/reject", si.RejectOrder)
	router.POST("/orders/:code/review", si.ReviewOrder)
	router.POST("/orders/:code/report", si.ReportOrder)
	router.GET("/restaurants/nearby", si.NearbyRestaurants)
	router.GET("/restaurants/revenue", si.RevenueSummary)
	router.GET("/restaurants/:id", si.GetRestaurant)
}

// Handlers groups the use cases the server delegates to.
type Handlers struct {
	AddCartItem    commands.AddCartItemCommandHandler
	UpdateCartItem commands.UpdateCartItemCommandHandler
	DeleteCart     commands.DeleteCartCommandHandler
	Checkout       commands.CheckoutCommandHandler
	AcceptOrder    commands.AcceptOrderCommandHandler
	RejectOrder    commands.RejectOrderCommandHandler
	ReviewOrder    commands.ReviewOrderCommandHandler
	ReportOrder    commands.ReportOrderCommandHandler
	CancelOrder    commands.CancelOrderCommandHandler

	ViewCart          queries.ViewCartQueryHandler
	GetOrder          queries.GetOrderQueryHandler
	ListOrders        queries.ListOrdersQueryHandler
	RevenueSummary    queries.GetRevenueSummaryQueryHandler
	NearbyRestaurants queries.GetNearbyRestaurantsQueryHandler
	GetRestaurant     queries.GetRestaurantQueryHandler
}

// Server implements ServerInterface on top of the application use cases.
type Server struct {
	h Handlers
}

var _ ServerInterface = (*Server)(nil)

func NewServer(handlers Handlers) *Server {
	return &Server{h: handlers}
}
