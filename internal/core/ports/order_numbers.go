package ports

import "context"

// OrderNumberGenerator allocates human-readable order numbers of the shape
// RC<YY><MM><sequence>. Allocation must use an atomic increment-and-read
// primitive, never "count existing orders plus one", which loses updates
// under concurrent checkouts. Numbers are unique forever; gaps left by failed
// checkouts are tolerable, duplicates are not.
type OrderNumberGenerator interface {
	NextOrderNumber(ctx context.Context) (string, error)
}
