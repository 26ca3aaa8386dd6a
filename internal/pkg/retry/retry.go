// Package retry applies the application's bounded retry policy to storage calls.
// Only idempotent operations may be retried: reads, and the conditional stock
// primitives whose effect is guarded by the database condition itself. Multi-step
// orchestrations must never be wrapped here; their callers decide whether to
// retry the whole operation.
package retry

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"

	"storefront/internal/pkg/errs"
)

const maxAttempts = 3

// Do runs op with exponential backoff, retrying transient failures up to three
// attempts in total. Domain outcomes (not-found, invalid values, version
// conflicts) are treated as permanent and returned immediately.
func Do(ctx context.Context, op func() error) error {
	policy := backoff.WithContext(
		backoff.WithMaxRetries(newBackOff(), maxAttempts-1),
		ctx,
	)

	return backoff.Retry(func() error {
		err := op()
		if err == nil {
			return nil
		}
		if isPermanent(err) {
			return backoff.Permanent(err)
		}
		return err
	}, policy)
}

func newBackOff() *backoff.ExponentialBackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 50 * time.Millisecond
	b.MaxInterval = 500 * time.Millisecond
	return b
}

func isPermanent(err error) bool {
	return errors.Is(err, errs.ErrObjectNotFound) ||
		errors.Is(err, errs.ErrValueIsInvalid) ||
		errors.Is(err, errs.ErrValueIsRequired) ||
		errors.Is(err, errs.ErrValueIsOutOfRange) ||
		errors.Is(err, errs.ErrVersionIsInvalid) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded)
}
