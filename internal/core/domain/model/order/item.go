package order

import (
	"errors"
	"fmt"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Item is an immutable line of an order, copied from the cart at checkout.
type Item struct {
	name      string
	unitPrice decimal.Decimal
	quantity  int
}

func NewItem(name string, unitPrice decimal.Decimal, quantity int) (Item, error) {
	var errName, errQuantity error
	if strings.TrimSpace(name) == "" {
		errName = errs.NewValueIsRequiredError("itemName")
	}
	if quantity < 1 {
		errQuantity = errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}

	if err := errors.Join(errName, kernel.ValidatePrice("unitPrice", unitPrice), errQuantity); err != nil {
		return Item{}, err
	}

	return Item{name: name, unitPrice: unitPrice, quantity: quantity}, nil
}

func (i Item) Name() string {
	return i.name
}

func (i Item) UnitPrice() decimal.Decimal {
	return i.unitPrice
}

func (i Item) Quantity() int {
	return i.quantity
}

func (i Item) LineTotal() decimal.Decimal {
	return kernel.RoundMoney(i.unitPrice.Mul(decimal.NewFromInt(int64(i.quantity))))
}
