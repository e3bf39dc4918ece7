package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/order-processor/internal/config"
	"github.com/segmentio/kafka-go"
)

// LogTransport only records intents in the log.
type LogTransport struct {
	logger *slog.Logger
}

func NewLogTransport(logger *slog.Logger) *LogTransport {
	return &LogTransport{logger: logger.With(slog.String("transport", "log"))}
}

func (t *LogTransport) Send(ctx context.Context, d Delivery) error {
	t.logger.InfoContext(ctx, "sending notification",
		slog.String("order_id", d.OrderID),
		slog.String("type", string(d.Notification.Type)),
		slog.String("recipient", d.Notification.Recipient),
	)
	return nil
}

func (t *LogTransport) Close() error {
	return nil
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Message is the payload published for every notification.
type Message struct {
	OrderID   string    `json:"order_id"`
	Type      string    `json:"type"`
	Recipient string    `json:"recipient"`
	CreatedAt time.Time `json:"created_at"`
}

// KafkaTransport hands intents to the delivery services listening on a topic.
type KafkaTransport struct {
	writer messageWriter
	now    func() time.Time
}

func NewKafkaTransport(cfg config.Kafka) *KafkaTransport {
	return newKafkaTransport(&kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.NotificationsTopic,
		Balancer:     &kafka.Hash{},
		BatchTimeout: cfg.BatchTimeout,
	}, time.Now)
}

func newKafkaTransport(w messageWriter, now func() time.Time) *KafkaTransport {
	return &KafkaTransport{writer: w, now: now}
}

func (t *KafkaTransport) Send(ctx context.Context, d Delivery) error {
	payload, err := json.Marshal(Message{
		OrderID:   d.OrderID,
		Type:      string(d.Notification.Type),
		Recipient: d.Notification.Recipient,
		CreatedAt: t.now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	// keyed by recipient so one recipient's messages stay ordered
	return t.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(d.Notification.Recipient),
		Value: payload,
	})
}

func (t *KafkaTransport) Close() error {
	return t.writer.Close()
}
