package trm_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/order-processor/pkg/trm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_Serializes(t *testing.T) {
	m := trm.NewManager()

	var (
		wg      sync.WaitGroup
		active  int
		maxSeen int
		mu      sync.Mutex
	)

	for range 20 {
		wg.Go(func() {
			_ = m.Do(context.Background(), func(ctx context.Context) error {
				mu.Lock()
				active++
				if active > maxSeen {
					maxSeen = active
				}
				mu.Unlock()

				time.Sleep(time.Millisecond)

				mu.Lock()
				active--
				mu.Unlock()
				return nil
			})
		})
	}
	wg.Wait()

	assert.Equal(t, 1, maxSeen)
}

func TestManager_ReturnsCallbackError(t *testing.T) {
	m := trm.NewManager()
	errBoom := errors.New("boom")

	err := m.Do(context.Background(), func(ctx context.Context) error {
		assert.True(t, trm.InTx(ctx))
		return errBoom
	})

	assert.ErrorIs(t, err, errBoom)
	assert.False(t, trm.InTx(context.Background()))
}

func TestManager_Nested(t *testing.T) {
	m := trm.NewManager()

	calls := 0
	err := m.Do(context.Background(), func(ctx context.Context) error {
		calls++
		return m.Do(ctx, func(context.Context) error {
			calls++
			return nil
		})
	})

	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestManager_ContextCanceledWhileWaiting(t *testing.T) {
	m := trm.NewManager()
	release := make(chan struct{})
	held := make(chan struct{})

	go func() {
		_ = m.Do(context.Background(), func(context.Context) error {
			close(held)
			<-release
			return nil
		})
	}()
	<-held
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	err := m.Do(ctx, func(context.Context) error {
		t.Fatal("callback must not run")
		return nil
	})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
