// Package kernel provides the primitives shared by every aggregate of the
// fulfillment core.
//
// The package includes:
//   - Location: an immutable latitude/longitude value object with haversine distance
//   - CustomerID and RestaurantID: identities issued by the account services
//   - RoundMoney and ValidatePrice: helpers for decimal money amounts
package kernel
