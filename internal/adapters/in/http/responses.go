package http

import (
	"strings"
	"time"

	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"

	"github.com/shopspring/decimal"
)

type NewCartItem struct {
	RestaurantID int64           `json:"restaurantId"`
	ItemName     string          `json:"itemName"`
	UnitPrice    decimal.Decimal `json:"unitPrice"`
	Quantity     int             `json:"quantity"`
}

type CartItemQuantity struct {
	Quantity int `json:"quantity"`
}

type Checkout struct {
	Recipient       string           `json:"recipient"`
	Phone           string           `json:"phone"`
	DeliveryAddress string           `json:"deliveryAddress"`
	Lat             float64          `json:"lat"`
	Lon             float64          `json:"lon"`
	QuotedCost      *decimal.Decimal `json:"quotedCost,omitempty"`
}

type Rejection struct {
	Reason string `json:"reason"`
}

type Review struct {
	Rating int    `json:"rating"`
	Review string `json:"review"`
}

type CartQuantity struct {
	TotalQuantity int `json:"totalQuantity"`
}

type PlacedOrder struct {
	OrderCode string `json:"orderCode"`
}

type LineItem struct {
	Name      string `json:"name"`
	UnitPrice string `json:"unitPrice"`
	Quantity  int    `json:"quantity"`
	LineTotal string `json:"lineTotal"`
}

type Cost struct {
	ItemSubtotal    string  `json:"itemSubtotal"`
	DistanceKm      float64 `json:"distanceKm"`
	DeliveryFee     string  `json:"deliveryFee"`
	OrderCost       string  `json:"orderCost"`
	DiscountPercent int     `json:"discountPercent"`
	FinalCost       string  `json:"finalCost"`
}

type Cart struct {
	RestaurantID   int64      `json:"restaurantId"`
	RestaurantName string     `json:"restaurantName"`
	Items          []LineItem `json:"items"`
	TotalQuantity  int        `json:"totalQuantity"`
	Cost           Cost       `json:"cost"`
}

type OrderSummary struct {
	Code         string    `json:"code"`
	CustomerID   int64     `json:"customerId"`
	RestaurantID int64     `json:"restaurantId"`
	Recipient    string    `json:"recipient"`
	Status       string    `json:"status"`
	OrderDate    string    `json:"orderDate"`
	PlacedAt     time.Time `json:"placedAt"`
	TotalCost    string    `json:"totalCost"`
}

type Order struct {
	OrderSummary
	Phone           string     `json:"phone"`
	DeliveryAddress string     `json:"deliveryAddress"`
	CourierName     string     `json:"courierName,omitempty"`
	CourierPhone    string     `json:"courierPhone,omitempty"`
	Rating          *int       `json:"rating,omitempty"`
	Review          string     `json:"review,omitempty"`
	RejectReason    string     `json:"rejectReason,omitempty"`
	Items           []LineItem `json:"items"`
}

type Revenue struct {
	StartDate       string `json:"startDate"`
	EndDate         string `json:"endDate"`
	CompletedOrders int64  `json:"completedOrders"`
	Revenue         string `json:"revenue"`
}

type Restaurant struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Phone           string  `json:"phone"`
	Lat             float64 `json:"lat"`
	Lon             float64 `json:"lon"`
	CompletedOrders int64   `json:"completedOrders"`
	AverageRating   string  `json:"averageRating"`
}

type NearbyRestaurant struct {
	Restaurant
	DistanceKm float64 `json:"distanceKm"`
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func statusName(s order.Status) string {
	return strings.ToLower(s.String())
}

func toCost(c services.CostBreakdown) Cost {
	return Cost{
		ItemSubtotal:    money(c.ItemSubtotal),
		DistanceKm:      c.DistanceKm,
		DeliveryFee:     money(c.DeliveryFee),
		OrderCost:       money(c.OrderCost),
		DiscountPercent: c.DiscountPercent,
		FinalCost:       money(c.FinalCost),
	}
}

func toCart(v queries.ViewCartQueryResponse) Cart {
	items := make([]LineItem, 0, len(v.Items))
	for _, item := range v.Items {
		items = append(items, LineItem{
			Name:      item.Name,
			UnitPrice: money(item.UnitPrice),
			Quantity:  item.Quantity,
			LineTotal: money(item.LineTotal),
		})
	}

	return Cart{
		RestaurantID:   int64(v.RestaurantID),
		RestaurantName: v.RestaurantName,
		Items:          items,
		TotalQuantity:  v.TotalQuantity,
		Cost:           toCost(v.Cost),
	}
}

func toOrderSummary(v queries.OrderSummaryView) OrderSummary {
	return OrderSummary{
		Code:         v.Code,
		CustomerID:   int64(v.CustomerID),
		RestaurantID: int64(v.RestaurantID),
		Recipient:    v.Recipient,
		Status:       statusName(v.Status),
		OrderDate:    v.OrderDate.Format(time.DateOnly),
		PlacedAt:     v.PlacedAt,
		TotalCost:    money(v.TotalCost),
	}
}

func toOrder(v queries.OrderView) Order {
	items := make([]LineItem, 0, len(v.Items))
	for _, item := range v.Items {
		items = append(items, LineItem{
			Name:      item.Name,
			UnitPrice: money(item.UnitPrice),
			Quantity:  item.Quantity,
			LineTotal: money(item.LineTotal),
		})
	}

	return Order{
		OrderSummary: OrderSummary{
			Code:         v.Code,
			CustomerID:   int64(v.CustomerID),
			RestaurantID: int64(v.RestaurantID),
			Recipient:    v.Recipient,
			Status:       statusName(v.Status),
			OrderDate:    v.OrderDate.Format(time.DateOnly),
			PlacedAt:     v.PlacedAt,
			TotalCost:    money(v.TotalCost),
		},
		Phone:           v.Phone,
		DeliveryAddress: v.DeliveryAddress,
		CourierName:     v.CourierName,
		CourierPhone:    v.CourierPhone,
		Rating:          v.Rating,
		Review:          v.Review,
		RejectReason:    v.RejectReason,
		Items:           items,
	}
}

func toRestaurant(v queries.RestaurantView) Restaurant {
	return Restaurant{
		ID:              int64(v.ID),
		Name:            v.Name,
		Phone:           v.Phone,
		Lat:             v.Location.Latitude(),
		Lon:             v.Location.Longitude(),
		CompletedOrders: v.CompletedOrders,
		AverageRating:   money(v.AverageRating),
	}
}
