package order

import (
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"

	"github.com/oklog/ulid/v2"
)

const codeTimeLayout = "20060102150405"

// NewCode builds an order code of the form OC<customer>R<restaurant>T<yyyymmddhhmmss>-<suffix>.
// The suffix is the entropy part of a monotonic ULID, so codes minted for the
// same pair within one second stay distinct.
func NewCode(customerID kernel.CustomerID, restaurantID kernel.RestaurantID, at time.Time) (string, error) {
	id, err := ulid.New(ulid.Timestamp(at), ulid.DefaultEntropy())
	if err != nil {
		return "", fmt.Errorf("generate order code suffix: %w", err)
	}

	return fmt.Sprintf("OC%sR%sT%s-%s",
		customerID, restaurantID, at.Format(codeTimeLayout), id.String()[10:]), nil
}
