// Package cart implements the Cart aggregate: the per-user mutable scratchpad
// of line items that checkout consumes. A cart holds at most one line per
// (product, size, color) variant, never reserves stock, and is emptied rather
// than deleted for the life of the user.
package cart
