package trm

import "context"

// Manager runs callbacks with exclusive access to shared in-memory state.
type Manager interface {
	Do(ctx context.Context, callback func(ctx context.Context) error) error
}

type txKey struct{}

// InTx reports whether ctx belongs to a running callback.
func InTx(ctx context.Context) bool {
	_, ok := ctx.Value(txKey{}).(struct{})
	return ok
}

type txManager struct {
	sem chan struct{}
}

// NewManager returns a single-writer Manager. Callbacks never overlap.
func NewManager() Manager {
	return &txManager{sem: make(chan struct{}, 1)}
}

// Do waits for exclusive access or ctx cancellation. Nested calls from inside
// a callback reuse the held access instead of deadlocking.
func (t *txManager) Do(ctx context.Context, callback func(ctx context.Context) error) error {
	if InTx(ctx) {
		return callback(ctx)
	}

	select {
	case t.sem <- struct{}{}:
	case <-ctx.Done():
		return ctx.Err()
	}
	defer func() { <-t.sem }()

	return callback(context.WithValue(ctx, txKey{}, struct{}{}))
}
