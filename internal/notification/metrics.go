package notification

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	notificationsQueued = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "order_service",
		Subsystem: "notifications",
		Name:      "queued_total",
		Help:      "Total number of notification intents queued for delivery.",
	})

	notificationsDropped = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "order_service",
		Subsystem: "notifications",
		Name:      "dropped_total",
		Help:      "Total number of notification intents dropped before delivery.",
	})

	notificationsDelivered = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "order_service",
		Subsystem: "notifications",
		Name:      "delivered_total",
		Help:      "Total number of delivered notifications.",
	}, []string{"type"})

	notificationsFailed = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "order_service",
		Subsystem: "notifications",
		Name:      "failed_total",
		Help:      "Total number of notifications that could not be delivered.",
	}, []string{"type"})
)

func RegisterMetrics(reg prometheus.Registerer) {
	reg.MustRegister(
		notificationsQueued,
		notificationsDropped,
		notificationsDelivered,
		notificationsFailed,
	)
}
