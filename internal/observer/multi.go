package observer

import (
	"context"

	"github.com/SergeyBogomolovv/order-processor/internal/processor"
)

type multi []processor.Observer

// Multi fans events out to every observer in order.
func Multi(observers ...processor.Observer) processor.Observer {
	return multi(observers)
}

func (m multi) ItemProcessed(ctx context.Context, itemID, userID string, price float64) {
	for _, o := range m {
		o.ItemProcessed(ctx, itemID, userID, price)
	}
}

func (m multi) OrderSucceeded(ctx context.Context, orderID string, total float64) {
	for _, o := range m {
		o.OrderSucceeded(ctx, orderID, total)
	}
}

func (m multi) OrderFailed(ctx context.Context, orderID string, err error) {
	for _, o := range m {
		o.OrderFailed(ctx, orderID, err)
	}
}
