package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	ErrOrderHasNoItems = errs.NewValueIsRequiredError("items")
)

// Order is the aggregate root of the order ledger. It is created in Pending
// status at checkout and afterwards changes only through lifecycle actions,
// each of which checks the acting role and ownership first.
type Order struct {
	code            string
	customerID      kernel.CustomerID
	restaurantID    kernel.RestaurantID
	recipient       string
	phone           string
	deliveryAddress string
	status          Status
	courierName     string
	courierPhone    string
	review          string
	rating          *kernel.Rating
	rejectReason    string
	placedAt        time.Time
	orderDate       time.Time
	totalCost       decimal.Decimal
	items           []Item

	isConstructed bool
}

// Details groups the customer-provided delivery fields of a new order.
// The order date of a new order is the calendar day of placedAt in the
// location placedAt carries, so callers pass it in the business time zone.
type Details struct {
	Recipient       string
	Phone           string
	DeliveryAddress string
}

func NewOrder(
	code string,
	customerID kernel.CustomerID,
	restaurantID kernel.RestaurantID,
	details Details,
	placedAt time.Time,
	totalCost decimal.Decimal,
	items []Item,
) (*Order, error) {
	order := &Order{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setCode(code),
		order.setParties(customerID, restaurantID),
		order.setDetails(details),
		order.setPlacedAt(placedAt),
		order.setTotalCost(totalCost),
		order.setItems(items),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Snapshot carries every persisted field of an order. A zero OrderDate
// defaults to the UTC day of PlacedAt.
type Snapshot struct {
	Code            string
	CustomerID      kernel.CustomerID
	RestaurantID    kernel.RestaurantID
	Recipient       string
	Phone           string
	DeliveryAddress string
	Status          Status
	CourierName     string
	CourierPhone    string
	Review          string
	Rating          *kernel.Rating
	RejectReason    string
	PlacedAt        time.Time
	OrderDate       time.Time
	TotalCost       decimal.Decimal
	Items           []Item
}

// RestoreOrder rebuilds an order from storage.
func RestoreOrder(s Snapshot) (*Order, error) {
	order := &Order{
		courierName:   s.CourierName,
		courierPhone:  s.CourierPhone,
		review:        s.Review,
		rejectReason:  s.RejectReason,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setCode(s.Code),
		order.setParties(s.CustomerID, s.RestaurantID),
		order.setDetails(Details{Recipient: s.Recipient, Phone: s.Phone, DeliveryAddress: s.DeliveryAddress}),
		order.setStatus(s.Status),
		order.setRating(s.Rating),
		order.setPlacedAt(s.PlacedAt),
		order.setTotalCost(s.TotalCost),
		order.setItems(s.Items),
	); err != nil {
		return nil, err
	}

	if !s.OrderDate.IsZero() {
		order.orderDate = calendarDay(s.OrderDate)
	}

	return order, nil
}

func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

func (o *Order) Code() string {
	return o.code
}

func (o *Order) CustomerID() kernel.CustomerID {
	return o.customerID
}

func (o *Order) RestaurantID() kernel.RestaurantID {
	return o.restaurantID
}

func (o *Order) Recipient() string {
	return o.recipient
}

func (o *Order) Phone() string {
	return o.phone
}

func (o *Order) DeliveryAddress() string {
	return o.deliveryAddress
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) CourierName() string {
	return o.courierName
}

func (o *Order) CourierPhone() string {
	return o.courierPhone
}

func (o *Order) ReviewText() string {
	return o.review
}

func (o *Order) Rating() *kernel.Rating {
	return o.rating
}

func (o *Order) RejectReason() string {
	return o.rejectReason
}

func (o *Order) PlacedAt() time.Time {
	return o.placedAt
}

// OrderDate is the business calendar day of checkout as midnight UTC, the
// form it takes in a date column.
func (o *Order) OrderDate() time.Time {
	return o.orderDate
}

func (o *Order) TotalCost() decimal.Decimal {
	return o.totalCost
}

func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// IsOwnedBy reports whether actor is the customer who placed the order or the
// restaurant that fulfils it.
func (o *Order) IsOwnedBy(actor Actor) bool {
	switch actor.Role {
	case RoleCustomer:
		return actor.CustomerID() == o.customerID
	case RoleRestaurant:
		return actor.RestaurantID() == o.restaurantID
	default:
		return false
	}
}

// AuthorizeViewer fails with Forbidden unless actor owns the order.
func (o *Order) AuthorizeViewer(actor Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if !o.IsOwnedBy(actor) {
		return errs.NewForbiddenError("view", fmt.Sprintf("order %s does not belong to %s", o.code, actor))
	}
	return nil
}

// Authorize checks, in order, that actor has the role the action needs, that
// actor owns the order, and that the current status admits the action.
func (o *Order) Authorize(actor Actor, action Action) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if actor.Role != action.Role() {
		return errs.NewForbiddenError(action.String(), fmt.Sprintf("%s cannot %s an order", actor.Role, action))
	}
	if !o.IsOwnedBy(actor) {
		return errs.NewForbiddenError(action.String(), fmt.Sprintf("order %s does not belong to %s", o.code, actor))
	}
	return o.status.Guard(action)
}

// Accept moves a Pending order to Accepted and records the courier contact.
func (o *Order) Accept(courierName, courierPhone string) error {
	if strings.TrimSpace(courierName) == "" || strings.TrimSpace(courierPhone) == "" {
		return errs.NewValueIsRequiredError("courier")
	}

	next, err := o.status.Apply(ActionAccept)
	if err != nil {
		return err
	}

	o.status = next
	o.courierName = courierName
	o.courierPhone = courierPhone
	return nil
}

// Reject moves a Pending order to Rejected with the given reason.
func (o *Order) Reject(reason string) error {
	if strings.TrimSpace(reason) == "" {
		return errs.NewValueIsRequiredError("rejectReason")
	}

	next, err := o.status.Apply(ActionReject)
	if err != nil {
		return err
	}

	o.status = next
	o.rejectReason = reason
	return nil
}

// Review moves an Accepted order to Reviewed. The caller must add the rating
// to the restaurant aggregate in the same unit of work.
func (o *Order) Review(rating kernel.Rating, review string) error {
	if err := rating.Validate(); err != nil {
		return err
	}

	next, err := o.status.Apply(ActionReview)
	if err != nil {
		return err
	}

	o.status = next
	o.rating = &rating
	o.review = review
	return nil
}

// Report moves an Accepted order to Reported.
func (o *Order) Report() error {
	next, err := o.status.Apply(ActionReport)
	if err != nil {
		return err
	}

	o.status = next
	return nil
}

// Cancel checks that the order may still be withdrawn. The order itself is
// deleted by the repository.
func (o *Order) Cancel() error {
	return o.status.Guard(ActionCancel)
}

func (o *Order) setCode(code string) error {
	if strings.TrimSpace(code) == "" {
		return errs.NewValueIsRequiredError("code")
	}

	o.code = code
	return nil
}

func (o *Order) setParties(customerID kernel.CustomerID, restaurantID kernel.RestaurantID) error {
	if err := errors.Join(customerID.Validate(), restaurantID.Validate()); err != nil {
		return err
	}

	o.customerID = customerID
	o.restaurantID = restaurantID
	return nil
}

func (o *Order) setDetails(d Details) error {
	var errRecipient, errPhone, errAddress error
	if strings.TrimSpace(d.Recipient) == "" {
		errRecipient = errs.NewValueIsRequiredError("recipient")
	}
	if strings.TrimSpace(d.Phone) == "" {
		errPhone = errs.NewValueIsRequiredError("phone")
	}
	if strings.TrimSpace(d.DeliveryAddress) == "" {
		errAddress = errs.NewValueIsRequiredError("deliveryAddress")
	}
	if err := errors.Join(errRecipient, errPhone, errAddress); err != nil {
		return err
	}

	o.recipient = d.Recipient
	o.phone = d.Phone
	o.deliveryAddress = d.DeliveryAddress
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	o.status = status
	return nil
}

func (o *Order) setRating(rating *kernel.Rating) error {
	if rating == nil {
		o.rating = nil
		return nil
	}
	if err := rating.Validate(); err != nil {
		return err
	}

	r := *rating
	o.rating = &r
	return nil
}

func (o *Order) setPlacedAt(placedAt time.Time) error {
	if placedAt.IsZero() {
		return errs.NewValueIsRequiredError("placedAt")
	}

	o.placedAt = placedAt.UTC()
	o.orderDate = calendarDay(placedAt)
	return nil
}

func calendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (o *Order) setTotalCost(totalCost decimal.Decimal) error {
	if err := kernel.ValidatePrice("totalCost", totalCost); err != nil {
		return err
	}

	o.totalCost = totalCost
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return ErrOrderHasNoItems
	}

	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}
