// Package order implements the Order aggregate: the immutable, stock-consistent
// record produced by checkout, and the state machine that governs its lifecycle
// through fulfillment or cancellation.
//
// An order's line items, prices, and shipping address are frozen snapshots
// taken at checkout time; later catalog changes never touch them. After
// creation only status-governed fields change (status, paymentStatus,
// deliveredAt, cancelledAt), and every transition is validated against the
// fixed state machine in status.go.
package order
