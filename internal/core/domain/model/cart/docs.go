// Package cart provides the Cart aggregate: a customer's single open selection
// of menu items from one restaurant.
//
// Key business rules:
//   - A customer holds at most one open cart; storage enforces it with a unique
//     index on the customer id
//   - A cart stays bound to the restaurant it was opened for; adding an item
//     from another restaurant fails with ErrMultipleCartsNotAllowed
//   - Re-adding an item increments its quantity by one and keeps the unit price
//     captured on the first add
//   - Setting a quantity to zero removes the line item
package cart
