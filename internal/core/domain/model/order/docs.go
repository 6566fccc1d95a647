// Package order provides the Order aggregate of the order ledger and the
// lifecycle state machine that governs it.
//
// The package includes:
//   - Order: the aggregate root holding delivery details, cost and the item snapshot
//   - Item: an immutable line copied from the cart at checkout
//   - Status and Action: the lifecycle states and the actions moving between them
//   - Actor and Role: the customer or restaurant acting on an order
//   - NewCode: the order code generator
//
// Key business rules:
//   - Orders are created Pending; restaurants accept or reject them, customers
//     cancel them while still Pending
//   - An Accepted order is either reviewed or reported by its customer, once
//   - Every action not allowed from the current status fails with a Forbidden error
//   - Only the owning customer or the owning restaurant may see or act on an order
//   - The item snapshot never changes after checkout
package order
