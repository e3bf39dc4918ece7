package utils_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/order-processor/pkg/utils"
	"github.com/stretchr/testify/assert"
)

func TestRetry(t *testing.T) {
	errTemporary := errors.New("temporary")
	errPermanent := errors.New("permanent")
	cfg := utils.RetryConfig{MaxAttempts: 3, InitialDelay: time.Millisecond, Multiplier: 2}

	testCases := []struct {
		name      string
		results   []error
		stopOn    []error
		wantErr   error
		wantCalls int
	}{
		{
			name:      "first attempt succeeds",
			results:   []error{nil},
			wantCalls: 1,
		},
		{
			name:      "succeeds after failures",
			results:   []error{errTemporary, errTemporary, nil},
			wantCalls: 3,
		},
		{
			name:      "gives up after max attempts",
			results:   []error{errTemporary, errTemporary, errTemporary},
			wantErr:   errTemporary,
			wantCalls: 3,
		},
		{
			name:      "stops on non-retryable error",
			results:   []error{errPermanent},
			stopOn:    []error{errPermanent},
			wantErr:   errPermanent,
			wantCalls: 1,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			calls := 0
			fn := func() error {
				err := tc.results[calls]
				calls++
				return err
			}

			err := utils.Retry(context.Background(), cfg, fn, tc.stopOn...)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tc.wantCalls, calls)
		})
	}
}

func TestRetry_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	err := utils.Retry(ctx, utils.RetryConfig{MaxAttempts: 5, InitialDelay: time.Hour}, func() error {
		calls++
		return errors.New("down")
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
}
