package observer

import (
	"context"

	"github.com/SergeyBogomolovv/order-processor/internal/entities"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics exports pipeline events to Prometheus.
type Metrics struct {
	itemsProcessed  prometheus.Counter
	ordersSucceeded prometheus.Counter
	ordersFailed    *prometheus.CounterVec
	orderTotal      prometheus.Histogram
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		itemsProcessed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "order_service",
			Subsystem: "processor",
			Name:      "items_processed_total",
			Help:      "Total number of priced order lines",
		}),
		ordersSucceeded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "order_service",
			Subsystem: "processor",
			Name:      "orders_succeeded_total",
			Help:      "Total number of confirmed orders",
		}),
		ordersFailed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "order_service",
			Subsystem: "processor",
			Name:      "orders_failed_total",
			Help:      "Total number of rejected orders by reason",
		}, []string{"reason"}),
		orderTotal: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "order_service",
			Subsystem: "processor",
			Name:      "order_total",
			Help:      "Histogram of confirmed order totals",
			Buckets:   []float64{10, 25, 50, 100, 250, 500, 1000, 5000},
		}),
	}

	reg.MustRegister(m.itemsProcessed, m.ordersSucceeded, m.ordersFailed, m.orderTotal)
	return m
}

func (m *Metrics) ItemProcessed(context.Context, string, string, float64) {
	m.itemsProcessed.Inc()
}

func (m *Metrics) OrderSucceeded(_ context.Context, _ string, total float64) {
	m.ordersSucceeded.Inc()
	m.orderTotal.Observe(total)
}

func (m *Metrics) OrderFailed(_ context.Context, _ string, err error) {
	m.ordersFailed.WithLabelValues(entities.Reason(err)).Inc()
}
