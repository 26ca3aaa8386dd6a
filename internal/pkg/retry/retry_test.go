package retry_test

import (
	"context"
	"errors"
	"testing"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/retry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDo_SucceedsFirstAttempt(t *testing.T) {
	calls := 0
	err := retry.Do(context.Background(), func() error {
		calls++
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestDo_RetriesTransientFailures(t *testing.T) {
	calls := 0
	err := retry.Do(context.Background(), func() error {
		calls++
		if calls < 3 {
			return errors.New("connection reset")
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestDo_GivesUpAfterMaxAttempts(t *testing.T) {
	calls := 0
	transient := errors.New("timeout")
	err := retry.Do(context.Background(), func() error {
		calls++
		return transient
	})

	require.ErrorIs(t, err, transient)
	assert.Equal(t, 3, calls)
}

func TestDo_DoesNotRetryDomainOutcomes(t *testing.T) {
	calls := 0
	err := retry.Do(context.Background(), func() error {
		calls++
		return errs.NewObjectNotFoundError("product", "p1")
	})

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.Equal(t, 1, calls)
}
