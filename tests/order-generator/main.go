package main

import (
	"context"
	"encoding/json"
	"flag"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

type Item struct {
	ID       string  `json:"id"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

type OrderRequest struct {
	OrderID       string `json:"order_id"`
	UserID        string `json:"user_id"`
	Items         []Item `json:"items"`
	PaymentMethod string `json:"payment_method,omitempty"`
}

var (
	itemIDs  = []string{"item-1", "item-2", "item-3", "item-4", "missing-item"}
	userIDs  = []string{"user-premium", "user-regular", "user-inactive", "ghost"}
	payments = []string{"", "credit_card", "paypal", "wire"}
)

func generateRandomOrder() OrderRequest {
	items := make([]Item, 1+rand.Intn(3))
	for i := range items {
		items[i] = Item{
			ID:       itemIDs[rand.Intn(len(itemIDs))],
			Quantity: 1 + rand.Intn(12),
			Price:    float64(100+rand.Intn(9900)) / 100,
		}
	}

	return OrderRequest{
		OrderID:       uuid.NewString(),
		UserID:        userIDs[rand.Intn(len(userIDs))],
		Items:         items,
		PaymentMethod: payments[rand.Intn(len(payments))],
	}
}

func main() {
	broker := flag.String("broker", "localhost:9092", "kafka broker address")
	topic := flag.String("topic", "orders", "orders topic")
	interval := flag.Duration("interval", 2*time.Second, "delay between orders")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	writer := &kafka.Writer{
		Addr:     kafka.TCP(*broker),
		Topic:    *topic,
		Balancer: &kafka.Hash{},
	}
	defer writer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	ticker := time.NewTicker(*interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			order := generateRandomOrder()
			data, err := json.Marshal(order)
			if err != nil {
				logger.Error("failed to marshal order", slog.Any("error", err))
				continue
			}
			if err := writer.WriteMessages(ctx, kafka.Message{Key: []byte(order.OrderID), Value: data}); err != nil {
				logger.Error("failed to write order", slog.Any("error", err))
				continue
			}
			logger.Info("order generated", slog.String("order_id", order.OrderID), slog.String("user_id", order.UserID))
		case <-ctx.Done():
			return
		}
	}
}
