package handler

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	ordersProcessed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "order_service",
			Subsystem: "kafka_consumer",
			Name:      "orders_processed_total",
			Help:      "Total number of confirmed orders consumed from Kafka",
		},
	)

	ordersRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "order_service",
			Subsystem: "kafka_consumer",
			Name:      "orders_rejected_total",
			Help:      "Total number of consumed orders rejected by the pipeline",
		},
		[]string{"reason"},
	)

	ordersFailed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "order_service",
			Subsystem: "kafka_consumer",
			Name:      "orders_failed_total",
			Help:      "Total number of failed order processing attempts",
		},
	)

	ordersDLQ = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "order_service",
			Subsystem: "kafka_consumer",
			Name:      "orders_dlq_total",
			Help:      "Total number of orders written to DLQ",
		},
	)

	commitErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "order_service",
			Subsystem: "kafka_consumer",
			Name:      "commit_errors_total",
			Help:      "Total number of Kafka commit errors",
		},
	)

	orderProcessingDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "order_service",
			Subsystem: "kafka_consumer",
			Name:      "order_processing_duration_seconds",
			Help:      "Histogram of order processing durations in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)

	ordersInProgress = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "order_service",
			Subsystem: "kafka_consumer",
			Name:      "orders_in_progress",
			Help:      "Number of orders currently being processed",
		},
	)
)

var (
	orderRequestTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "order_service",
			Subsystem: "http",
			Name:      "order_requests_total",
			Help:      "Total number of requests to place an order by outcome",
		},
		[]string{"status"},
	)
)

func RegisterMetrics(reg prometheus.Registerer) {
	reg.MustRegister(
		ordersProcessed,
		ordersRejected,
		ordersFailed,
		ordersDLQ,
		commitErrors,
		orderProcessingDuration,
		ordersInProgress,

		orderRequestTotal,
	)
}
