package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/order-processor/internal/config"
	"github.com/SergeyBogomolovv/order-processor/internal/entities"
	"github.com/go-playground/validator/v10"
	"github.com/segmentio/kafka-go"
)

type OrderPlacer interface {
	PlaceOrder(ctx context.Context, userID string, order entities.Order) (entities.ProcessResult, error)
}

type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

var errInvalidMessage = errors.New("invalid message")

const (
	fetchBackoff    = 100 * time.Millisecond
	maxFetchBackoff = 5 * time.Second
)

type kafkaHandler struct {
	dlq      messageWriter
	reader   messageReader
	logger   *slog.Logger
	validate *validator.Validate
	placer   OrderPlacer

	fetchBackoff time.Duration
}

func NewKafkaHandler(logger *slog.Logger, cfg config.Kafka, placer OrderPlacer) *kafkaHandler {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: cfg.Brokers,
		GroupID: cfg.GroupID,
		Topic:   cfg.OrdersTopic,
		MaxWait: cfg.ReaderMaxWait,
	})
	dlq := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: cfg.BatchTimeout,
	}
	return newKafkaHandler(logger, reader, dlq, placer)
}

func newKafkaHandler(logger *slog.Logger, reader messageReader, dlq messageWriter, placer OrderPlacer) *kafkaHandler {
	return &kafkaHandler{
		logger:   logger.With(slog.String("handler", "kafka")),
		reader:   reader,
		dlq:      dlq,
		validate: validator.New(),
		placer:   placer,

		fetchBackoff: fetchBackoff,
	}
}

// Consume reads orders until ctx is done or the reader is closed.
// Fetch errors are retried with a doubling delay.
func (h *kafkaHandler) Consume(ctx context.Context) {
	backoff := h.fetchBackoff
	for {
		m, err := h.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
				break
			}
			h.logger.Error("failed to fetch message", slog.Any("error", err), slog.Duration("backoff", backoff))
			select {
			case <-ctx.Done():
				return
			case <-time.After(backoff):
			}
			backoff = min(backoff*2, maxFetchBackoff)
			continue
		}
		backoff = h.fetchBackoff

		ordersInProgress.Inc()
		start := time.Now()
		err = h.handlePlaceOrder(ctx, m)
		orderProcessingDuration.Observe(time.Since(start).Seconds())
		ordersInProgress.Dec()

		switch {
		case err == nil:
		case errors.Is(err, errInvalidMessage):
			ordersFailed.Inc()
			h.logger.Error("failed to handle message", slog.Any("error", err))
			if err := h.WriteToDLQ(ctx, m); err != nil {
				h.logger.Error("failed to write message to DLQ", slog.Any("error", err))
				continue
			}
			ordersDLQ.Inc()
		default:
			// shared state was not reachable, leave the offset for redelivery
			ordersFailed.Inc()
			h.logger.Error("failed to place order", slog.Any("error", err))
			continue
		}

		if err := h.reader.CommitMessages(ctx, m); err != nil {
			commitErrors.Inc()
			h.logger.Error("failed to commit message", slog.Any("error", err))
		}
	}
}

func (h *kafkaHandler) handlePlaceOrder(ctx context.Context, m kafka.Message) error {
	var req OrderRequest
	if err := json.Unmarshal(m.Value, &req); err != nil {
		return fmt.Errorf("%w: failed to unmarshal order: %v", errInvalidMessage, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return fmt.Errorf("%w: invalid order data: %v", errInvalidMessage, err)
	}
	if req.OrderID == "" {
		req.OrderID = string(m.Key)
	}
	if req.OrderID == "" {
		return fmt.Errorf("%w: order id is missing", errInvalidMessage)
	}

	res, err := h.placer.PlaceOrder(ctx, req.UserID, OrderRequestToEntity(req))
	if err != nil {
		return err
	}

	if !res.Success {
		ordersRejected.WithLabelValues(res.Reason()).Inc()
		h.logger.Info("order rejected", slog.String("order_id", req.OrderID), slog.String("reason", res.Reason()))
		return nil
	}

	ordersProcessed.Inc()
	return nil
}

func (h *kafkaHandler) WriteToDLQ(ctx context.Context, m kafka.Message) error {
	return h.dlq.WriteMessages(ctx, kafka.Message{
		Topic:   fmt.Sprintf("%s-dlq", m.Topic),
		Key:     m.Key,
		Value:   m.Value,
		Headers: m.Headers,
	})
}

func (h *kafkaHandler) Close() error {
	if err := h.reader.Close(); err != nil {
		return err
	}
	return h.dlq.Close()
}
