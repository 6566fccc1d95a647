package cart

import (
	"errors"
	"fmt"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")

// LineItem is one menu item in an open cart. The unit price is captured when
// the item is first added and is never refreshed afterwards.
type LineItem struct {
	name      string
	unitPrice decimal.Decimal
	quantity  int
	guard     guard.ConstructorGuard
}

func NewLineItem(name string, unitPrice decimal.Decimal, quantity int) (*LineItem, error) {
	item := &LineItem{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setName(name),
		item.setUnitPrice(unitPrice),
		item.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	return item, nil
}

func (i *LineItem) Validate() error {
	if i == nil {
		return ErrLineItemIsNotConstructed
	}
	return i.guard.Validate(ErrLineItemIsNotConstructed)
}

func (i *LineItem) Name() string {
	return i.name
}

func (i *LineItem) UnitPrice() decimal.Decimal {
	return i.unitPrice
}

func (i *LineItem) Quantity() int {
	return i.quantity
}

// LineTotal is unit price times quantity rounded to cents.
func (i *LineItem) LineTotal() decimal.Decimal {
	return kernel.RoundMoney(i.unitPrice.Mul(decimal.NewFromInt(int64(i.quantity))))
}

func (i *LineItem) increment() {
	i.quantity++
}

func (i *LineItem) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("itemName")
	}

	i.name = name
	return nil
}

func (i *LineItem) setUnitPrice(unitPrice decimal.Decimal) error {
	if err := kernel.ValidatePrice("unitPrice", unitPrice); err != nil {
		return err
	}

	i.unitPrice = unitPrice
	return nil
}

func (i *LineItem) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}

	i.quantity = quantity
	return nil
}
