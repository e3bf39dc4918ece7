package processor

import (
	"context"
	"time"

	"github.com/SergeyBogomolovv/order-processor/internal/entities"
	"github.com/SergeyBogomolovv/order-processor/internal/inventory"
	"github.com/SergeyBogomolovv/order-processor/internal/loyalty"
	"github.com/SergeyBogomolovv/order-processor/internal/notification"
	"github.com/SergeyBogomolovv/order-processor/internal/pricing"
	"github.com/SergeyBogomolovv/order-processor/internal/validation"
)

type Clock interface {
	Now() time.Time
}

type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

var SystemClock Clock = ClockFunc(time.Now)

// Observer receives pipeline events. It must not influence the result.
type Observer interface {
	ItemProcessed(ctx context.Context, itemID, userID string, price float64)
	OrderSucceeded(ctx context.Context, orderID string, total float64)
	OrderFailed(ctx context.Context, orderID string, err error)
}

// Notifier takes over delivery of the intents of a confirmed order.
type Notifier interface {
	Notify(ctx context.Context, orderID string, intents []entities.Notification)
}

// Processor runs the order pipeline. It holds no state of its own; the caller
// owns the inventory and the user and must not share them across concurrent calls.
type Processor struct {
	clock    Clock
	observer Observer
	notifier Notifier
}

// New builds a Processor. Nil collaborators are replaced with no-ops and the system clock.
func New(clock Clock, observer Observer, notifier Notifier) *Processor {
	if clock == nil {
		clock = SystemClock
	}
	if observer == nil {
		observer = nopObserver{}
	}
	if notifier == nil {
		notifier = nopNotifier{}
	}
	return &Processor{clock: clock, observer: observer, notifier: notifier}
}

// ProcessOrder validates the order, reserves stock, prices it and confirms it.
// On failure no stock or loyalty change survives the call.
func (p *Processor) ProcessOrder(
	ctx context.Context,
	order *entities.Order,
	user *entities.User,
	inv entities.Inventory,
	cfg entities.PricingConfig,
) entities.ProcessResult {
	if err := validation.Validate(order, user); err != nil {
		return p.fail(ctx, order, entities.StageStart, err)
	}

	if _, err := inventory.Reserve(order.Items, inv); err != nil {
		return p.fail(ctx, order, entities.StageValidated, err)
	}

	now := p.clock.Now()
	quote := pricing.Quote(pricing.QuoteInput{
		Items:         order.Items,
		Tier:          user.Tier,
		State:         user.State,
		PaymentMethod: order.PaymentMethod,
		Month:         now.Month(),
		Config:        cfg,
	})
	for _, line := range quote.Lines {
		p.observer.ItemProcessed(ctx, line.ItemID, user.ID, line.Price)
	}

	record := &entities.OrderRecord{
		OrderID:   order.ID,
		UserID:    user.ID,
		Total:     quote.Total,
		Status:    entities.OrderStatusConfirmed,
		CreatedAt: now,
	}

	intents := notification.Decide(user, record.Total)
	if len(intents) > 0 {
		p.notifier.Notify(ctx, order.ID, intents)
	}

	loyalty.Award(user, loyalty.Points(record.Total, user.Tier))

	p.observer.OrderSucceeded(ctx, order.ID, record.Total)
	return entities.Succeeded(record, intents)
}

// Quote prices an order for a user without touching stock or loyalty.
func (p *Processor) Quote(order *entities.Order, user *entities.User, cfg entities.PricingConfig) (pricing.Breakdown, error) {
	if err := validation.Validate(order, user); err != nil {
		return pricing.Breakdown{}, err
	}
	for _, item := range order.Items {
		if item.Quantity <= 0 {
			return pricing.Breakdown{}, entities.NewItemError(item.ID, entities.ErrInvalidQuantity)
		}
	}
	return pricing.Quote(pricing.QuoteInput{
		Items:         order.Items,
		Tier:          user.Tier,
		State:         user.State,
		PaymentMethod: order.PaymentMethod,
		Month:         p.clock.Now().Month(),
		Config:        cfg,
	}), nil
}

func (p *Processor) fail(ctx context.Context, order *entities.Order, from entities.Stage, err error) entities.ProcessResult {
	var orderID string
	if order != nil {
		orderID = order.ID
	}
	p.observer.OrderFailed(ctx, orderID, err)
	return entities.Failed(from, err)
}

type nopObserver struct{}

func (nopObserver) ItemProcessed(context.Context, string, string, float64) {}
func (nopObserver) OrderSucceeded(context.Context, string, float64)        {}
func (nopObserver) OrderFailed(context.Context, string, error)             {}

type nopNotifier struct{}

func (nopNotifier) Notify(context.Context, string, []entities.Notification) {}
