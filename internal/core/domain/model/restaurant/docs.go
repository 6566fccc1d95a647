// Package restaurant provides the Restaurant aggregate as seen by fulfillment:
// contact details used for the courier hand-off, the pickup location used for
// delivery pricing, and the rating aggregate.
//
// Key business rules:
//   - The courier assigned on acceptance is "<restaurant name> Courier" reachable
//     on the restaurant phone
//   - The rating sum and completed-order count only grow, always together
//   - The average rating is computed on read and is zero before the first review
package restaurant
