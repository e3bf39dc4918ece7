package observer_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/SergeyBogomolovv/order-processor/internal/entities"
	"github.com/SergeyBogomolovv/order-processor/internal/observer"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := observer.NewMetrics(reg)
	ctx := context.Background()

	m.ItemProcessed(ctx, "x", "u1", 10)
	m.ItemProcessed(ctx, "y", "u1", 20)
	m.OrderSucceeded(ctx, "o1", 30)
	m.OrderFailed(ctx, "o2", entities.NewItemError("x", entities.ErrInsufficientInventory))
	m.OrderFailed(ctx, "o3", entities.ErrEmptyOrder)

	expected := `
# HELP order_service_processor_items_processed_total Total number of priced order lines
# TYPE order_service_processor_items_processed_total counter
order_service_processor_items_processed_total 2
# HELP order_service_processor_orders_succeeded_total Total number of confirmed orders
# TYPE order_service_processor_orders_succeeded_total counter
order_service_processor_orders_succeeded_total 1
# HELP order_service_processor_orders_failed_total Total number of rejected orders by reason
# TYPE order_service_processor_orders_failed_total counter
order_service_processor_orders_failed_total{reason="EmptyOrder"} 1
order_service_processor_orders_failed_total{reason="InsufficientInventory"} 1
`
	assert.NoError(t, testutil.GatherAndCompare(reg, bytes.NewBufferString(expected),
		"order_service_processor_items_processed_total",
		"order_service_processor_orders_succeeded_total",
		"order_service_processor_orders_failed_total",
	))
}

func TestLoggerAndMulti(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	reg := prometheus.NewRegistry()

	o := observer.Multi(observer.NewLogger(logger), observer.NewMetrics(reg))
	ctx := context.Background()

	o.ItemProcessed(ctx, "x", "u1", 12.5)
	o.OrderSucceeded(ctx, "o1", 12.5)
	o.OrderFailed(ctx, "o2", entities.NewItemError("ghost", entities.ErrItemNotFound))

	out := buf.String()
	assert.Contains(t, out, "item processed")
	assert.Contains(t, out, "order processed")
	assert.Contains(t, out, "reason=ItemNotFound")
	assert.Contains(t, out, "item_id=ghost")

	count, err := testutil.GatherAndCount(reg, "order_service_processor_orders_succeeded_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
