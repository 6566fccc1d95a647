// Package services contains stateless domain services of the fulfillment core.
//
// The package includes:
//   - PricingEngine: haversine delivery distance and the checkout cost breakdown
//     (item subtotal, per-kilometer delivery fee, membership discount)
//   - RestaurantFinder: restaurants strictly within a radius of a point
package services
