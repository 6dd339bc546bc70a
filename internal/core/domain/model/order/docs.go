// Package order implements the Order aggregate for the storefront after-sales core.
// An order moves through a fulfillment lifecycle (placed, processing, shipped,
// delivered, cancelled) and carries the payment state and delivery signals that
// the status projection and the complaint resolution flow depend on.
//
// The package enforces these invariants:
//   - Status transitions follow the fulfillment state machine
//   - Cancellation is only possible while the order is placed and not returning
//     to the provider
//   - Replacement orders are zero-amount clones of their parent's items and
//     keep a permanent parent linkage
//   - Payment status only moves pending -> paid -> refunded
//
// Orders can only be created through NewOrder, NewReplacementOrder, or
// RestoreOrder (persistence rehydration).
package order
