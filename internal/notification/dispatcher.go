package notification

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/SergeyBogomolovv/order-processor/internal/entities"
	"github.com/SergeyBogomolovv/order-processor/pkg/utils"
)

// deliveryTimeout bounds one delivery including its retries.
const deliveryTimeout = 10 * time.Second

// Delivery is one notification intent bound to the order that produced it.
type Delivery struct {
	OrderID      string
	Notification entities.Notification
}

// Transport performs the actual delivery.
type Transport interface {
	Send(ctx context.Context, d Delivery) error
	Close() error
}

// Dispatcher queues notification intents and delivers them in the background,
// so callers never wait on the transport.
type Dispatcher struct {
	logger    *slog.Logger
	transport Transport
	retry     utils.RetryConfig

	mu     sync.RWMutex
	closed bool
	queue  chan Delivery
	wg     sync.WaitGroup
}

func NewDispatcher(logger *slog.Logger, transport Transport, queueSize int, retry utils.RetryConfig) *Dispatcher {
	return &Dispatcher{
		logger:    logger.With(slog.String("service", "notification")),
		transport: transport,
		retry:     retry,
		queue:     make(chan Delivery, queueSize),
	}
}

// Notify enqueues intents without blocking. Intents that do not fit are dropped.
func (d *Dispatcher) Notify(ctx context.Context, orderID string, intents []entities.Notification) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	for _, n := range intents {
		if d.closed {
			notificationsDropped.Inc()
			d.logger.WarnContext(ctx, "dispatcher closed, notification dropped", slog.String("order_id", orderID), slog.String("type", string(n.Type)))
			continue
		}

		select {
		case d.queue <- Delivery{OrderID: orderID, Notification: n}:
			notificationsQueued.Inc()
		default:
			notificationsDropped.Inc()
			d.logger.WarnContext(ctx, "notification queue full, notification dropped", slog.String("order_id", orderID), slog.String("type", string(n.Type)))
		}
	}
}

// Start runs the delivery worker until Close. Cancelling ctx does not stop it:
// intents accepted before Close are still delivered, each under deliveryTimeout.
func (d *Dispatcher) Start(ctx context.Context) error {
	base := context.WithoutCancel(ctx)

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		for del := range d.queue {
			dctx, cancel := context.WithTimeout(base, deliveryTimeout)
			d.deliver(dctx, del)
			cancel()
		}
	}()
	return nil
}

func (d *Dispatcher) deliver(ctx context.Context, del Delivery) {
	err := utils.Retry(ctx, d.retry, func() error {
		return d.transport.Send(ctx, del)
	})
	if err != nil {
		notificationsFailed.WithLabelValues(string(del.Notification.Type)).Inc()
		d.logger.Error("failed to deliver notification",
			slog.String("order_id", del.OrderID),
			slog.String("type", string(del.Notification.Type)),
			slog.Any("error", err),
		)
		return
	}

	notificationsDelivered.WithLabelValues(string(del.Notification.Type)).Inc()
	d.logger.Debug("notification delivered", slog.String("order_id", del.OrderID), slog.String("type", string(del.Notification.Type)))
}

// Close stops accepting intents, waits until the queued ones are delivered and
// closes the transport.
func (d *Dispatcher) Close() error {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return nil
	}
	d.closed = true
	close(d.queue)
	d.mu.Unlock()

	d.wg.Wait()

	// only a dispatcher that was never started leaves intents behind
	for del := range d.queue {
		notificationsDropped.Inc()
		d.logger.Warn("dispatcher closed before start, notification dropped",
			slog.String("order_id", del.OrderID),
			slog.String("type", string(del.Notification.Type)),
		)
	}

	return d.transport.Close()
}
