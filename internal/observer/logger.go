package observer

import (
	"context"
	"log/slog"

	"github.com/SergeyBogomolovv/order-processor/internal/entities"
)

type Logger struct {
	logger *slog.Logger
}

func NewLogger(logger *slog.Logger) *Logger {
	return &Logger{logger: logger.With(slog.String("service", "processor"))}
}

func (l *Logger) ItemProcessed(ctx context.Context, itemID, userID string, price float64) {
	l.logger.DebugContext(ctx, "item processed",
		slog.String("item_id", itemID),
		slog.String("user_id", userID),
		slog.Float64("price", price),
	)
}

func (l *Logger) OrderSucceeded(ctx context.Context, orderID string, total float64) {
	l.logger.InfoContext(ctx, "order processed", slog.String("order_id", orderID), slog.Float64("total", total))
}

func (l *Logger) OrderFailed(ctx context.Context, orderID string, err error) {
	attrs := []any{
		slog.String("order_id", orderID),
		slog.String("reason", entities.Reason(err)),
		slog.Any("error", err),
	}
	if itemID, ok := entities.FailedItem(err); ok {
		attrs = append(attrs, slog.String("item_id", itemID))
	}
	l.logger.WarnContext(ctx, "order failed", attrs...)
}
