package service

import (
	"context"
	"log/slog"

	"github.com/SergeyBogomolovv/order-processor/internal/entities"
	"github.com/SergeyBogomolovv/order-processor/internal/pricing"
	"github.com/SergeyBogomolovv/order-processor/pkg/trm"
)

type Processor interface {
	ProcessOrder(ctx context.Context, order *entities.Order, user *entities.User, inv entities.Inventory, cfg entities.PricingConfig) entities.ProcessResult
	Quote(order *entities.Order, user *entities.User, cfg entities.PricingConfig) (pricing.Breakdown, error)
}

// Store holds the shared users and inventory. Calls must be made inside txManager.Do.
type Store interface {
	User(id string) *entities.User
	UpsertUser(u entities.User) entities.User
	Inventory() entities.Inventory
	Stock(itemID string) (int, bool)
	SetStock(itemID string, quantity int)
}

type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
}

type orderService struct {
	logger    *slog.Logger
	txManager trm.Manager
	processor Processor
	store     Store
	cache     Cache
	pricing   entities.PricingConfig
}

func NewOrderService(
	logger *slog.Logger,
	txManager trm.Manager,
	processor Processor,
	store Store,
	cache Cache,
	pricing entities.PricingConfig,
) *orderService {
	return &orderService{
		logger:    logger.With(slog.String("service", "order")),
		txManager: txManager,
		processor: processor,
		store:     store,
		cache:     cache,
		pricing:   pricing,
	}
}

// PlaceOrder runs the pipeline for userID with exclusive access to the shared state.
// The returned error is set only when access could not be obtained; business
// failures are reported through the result.
func (s *orderService) PlaceOrder(ctx context.Context, userID string, order entities.Order) (entities.ProcessResult, error) {
	var res entities.ProcessResult

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		res = s.processor.ProcessOrder(ctx, &order, s.store.User(userID), s.store.Inventory(), s.pricing)
		return nil
	})
	if err != nil {
		return entities.ProcessResult{}, err
	}

	if res.Success {
		s.remember(res.Order)
	}
	return res, nil
}

func (s *orderService) QuoteOrder(ctx context.Context, userID string, order entities.Order) (pricing.Breakdown, error) {
	var b pricing.Breakdown
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		b, err = s.processor.Quote(&order, s.store.User(userID), s.pricing)
		return err
	})
	return b, err
}

func (s *orderService) remember(record *entities.OrderRecord) {
	data, err := record.Marshal()
	if err != nil {
		s.logger.Error("failed to marshal order record", slog.String("order_id", record.OrderID), slog.Any("error", err))
		return
	}
	s.cache.Set(record.OrderID, data)
}

// GetOrderByID returns a recently confirmed order.
func (s *orderService) GetOrderByID(ctx context.Context, orderID string) (entities.OrderRecord, error) {
	data, ok := s.cache.Get(orderID)
	if !ok {
		return entities.OrderRecord{}, entities.ErrOrderNotFound
	}

	var record entities.OrderRecord
	if err := record.Unmarshal(data); err != nil {
		s.logger.ErrorContext(ctx, "failed to unmarshal order record", slog.String("order_id", orderID), slog.Any("error", err))
		return entities.OrderRecord{}, err
	}
	return record, nil
}
