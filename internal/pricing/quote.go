package pricing

import (
	"time"

	"github.com/SergeyBogomolovv/order-processor/internal/entities"
)

type LinePrice struct {
	ItemID string
	Base   float64
	Price  float64
}

// Breakdown holds the intermediate amounts of one order. Only Total is rounded.
type Breakdown struct {
	Lines      []LinePrice
	Subtotal   float64
	Shipping   float64
	Tax        float64
	PaymentFee float64
	Total      float64
}

type QuoteInput struct {
	Items         []entities.LineItem
	Tier          entities.Tier
	State         string
	PaymentMethod entities.PaymentMethod
	Month         time.Month
	Config        entities.PricingConfig
}

// Quote composes the order total. Tax and the payment fee are charged on the
// running total, so the order of the steps matters.
func Quote(in QuoteInput) Breakdown {
	b := Breakdown{Lines: make([]LinePrice, 0, len(in.Items))}

	for _, item := range in.Items {
		base := ItemBasePrice(item)
		price := discounted(base, item.Quantity, in.Tier, in.Month)
		b.Lines = append(b.Lines, LinePrice{ItemID: item.ID, Base: base, Price: price})
		b.Subtotal += price
	}

	b.Shipping = ShippingCost(b.Subtotal)
	total := b.Subtotal + b.Shipping

	b.Tax = Tax(total, in.State, in.Config)
	total += b.Tax

	b.PaymentFee = PaymentFee(total, in.PaymentMethod)
	total += b.PaymentFee

	b.Total = Round2(total)
	return b
}
