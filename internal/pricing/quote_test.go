package pricing_test

import (
	"testing"
	"time"

	"github.com/SergeyBogomolovv/order-processor/internal/entities"
	"github.com/SergeyBogomolovv/order-processor/internal/pricing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuote(t *testing.T) {
	testCases := []struct {
		name     string
		in       pricing.QuoteInput
		subtotal float64
		shipping float64
		tax      float64
		fee      float64
		total    float64
	}{
		{
			name: "regular user, no tax, credit card, off season",
			in: pricing.QuoteInput{
				Items:         []entities.LineItem{{ID: "a", Quantity: 1, Price: 100}},
				Tier:          entities.TierRegular,
				State:         "CA",
				PaymentMethod: entities.PaymentCreditCard,
				Month:         time.March,
			},
			subtotal: 100,
			shipping: 0,
			tax:      0,
			fee:      2.9,
			total:    102.90,
		},
		{
			name: "premium volume order in december with california tax and paypal",
			in: pricing.QuoteInput{
				Items:         []entities.LineItem{{ID: "a", Quantity: 12, Price: 10}},
				Tier:          entities.TierPremium,
				State:         "CA",
				PaymentMethod: entities.PaymentPayPal,
				Month:         time.December,
				Config:        entities.PricingConfig{TaxEnabled: true},
			},
			subtotal: 91.8,
			shipping: 5,
			tax:      7.018,
			fee:      3.529812,
			total:    107.35,
		},
		{
			name: "shipping is charged once on the subtotal",
			in: pricing.QuoteInput{
				Items: []entities.LineItem{
					{ID: "a", Quantity: 1, Price: 20},
					{ID: "b", Quantity: 2, Price: 15},
				},
				Tier:          entities.TierRegular,
				PaymentMethod: "cash",
				Month:         time.October,
			},
			subtotal: 50,
			shipping: 5,
			total:    55,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b := pricing.Quote(tc.in)

			require.Len(t, b.Lines, len(tc.in.Items))
			assert.InDelta(t, tc.subtotal, b.Subtotal, eps)
			assert.InDelta(t, tc.shipping, b.Shipping, eps)
			assert.InDelta(t, tc.tax, b.Tax, 1e-6)
			assert.InDelta(t, tc.fee, b.PaymentFee, 1e-6)
			assert.Equal(t, tc.total, b.Total)
		})
	}
}

func TestQuote_LinesMatchItemPrice(t *testing.T) {
	items := []entities.LineItem{
		{ID: "a", Quantity: 12, Price: 10},
		{ID: "b", Quantity: 6, Price: 2.5},
		{ID: "c", Quantity: 1, Price: 99.99},
	}

	for _, tier := range []entities.Tier{entities.TierPremium, entities.TierRegular} {
		t.Run(string(tier), func(t *testing.T) {
			b := pricing.Quote(pricing.QuoteInput{Items: items, Tier: tier, Month: time.December})

			require.Len(t, b.Lines, len(items))
			var subtotal float64
			for i, item := range items {
				assert.Equal(t, item.ID, b.Lines[i].ItemID)
				assert.Equal(t, pricing.ItemBasePrice(item), b.Lines[i].Base)
				assert.Equal(t, pricing.ItemPrice(item, tier, time.December), b.Lines[i].Price)
				subtotal += b.Lines[i].Price
			}
			assert.Equal(t, subtotal, b.Subtotal)
		})
	}
}
