package kernel

import (
	"fmt"

	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// MoneyPlaces is the number of fractional digits kept for display amounts.
const MoneyPlaces = 2

// RoundMoney rounds half away from zero to MoneyPlaces.
func RoundMoney(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(MoneyPlaces)
}

// ValidatePrice rejects negative amounts and amounts with more than
// MoneyPlaces fractional digits, which the numeric(12,2) columns would round.
func ValidatePrice(paramName string, amount decimal.Decimal) error {
	if amount.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause(paramName, fmt.Errorf("%s is negative", amount.String()))
	}
	if !amount.Equal(RoundMoney(amount)) {
		return errs.NewValueIsInvalidErrorWithCause(
			paramName,
			fmt.Errorf("%s has more than %d decimal places", amount.String(), MoneyPlaces),
		)
	}
	return nil
}
