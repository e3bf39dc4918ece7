package pricing_test

import (
	"testing"
	"time"

	"github.com/SergeyBogomolovv/order-processor/internal/entities"
	"github.com/SergeyBogomolovv/order-processor/internal/pricing"
	"github.com/stretchr/testify/assert"
)

const eps = 1e-9

func TestUserTypeDiscountRate(t *testing.T) {
	testCases := []struct {
		name     string
		tier     entities.Tier
		quantity int
		want     float64
	}{
		{"premium high volume", entities.TierPremium, 11, 0.15},
		{"premium exactly ten is mid volume", entities.TierPremium, 10, 0.10},
		{"premium mid volume", entities.TierPremium, 6, 0.10},
		{"premium exactly five is low volume", entities.TierPremium, 5, 0.05},
		{"premium single item", entities.TierPremium, 1, 0.05},
		{"regular high volume", entities.TierRegular, 11, 0.05},
		{"regular exactly ten", entities.TierRegular, 10, 0},
		{"regular low volume", entities.TierRegular, 1, 0},
		{"unknown tier", entities.Tier("gold"), 50, 0},
		{"tier match is exact", entities.Tier("Premium"), 50, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, pricing.UserTypeDiscountRate(tc.tier, tc.quantity))
		})
	}
}

func TestSeasonalDiscountRate(t *testing.T) {
	want := map[time.Month]float64{
		time.January:   0.10,
		time.February:  0,
		time.March:     0,
		time.April:     0,
		time.May:       0,
		time.June:      0.07,
		time.July:      0.07,
		time.August:    0.07,
		time.September: 0,
		time.October:   0,
		time.November:  0,
		time.December:  0.10,
	}

	for month, rate := range want {
		t.Run(month.String(), func(t *testing.T) {
			assert.Equal(t, rate, pricing.SeasonalDiscountRate(month))
		})
	}
}

func TestItemPrice_DiscountsCompound(t *testing.T) {
	item := entities.LineItem{ID: "a", Quantity: 12, Price: 10}

	got := pricing.ItemPrice(item, entities.TierPremium, time.December)

	// 120 * 0.85 * 0.90, not 120 * (1 - 0.25)
	assert.InDelta(t, 91.8, got, eps)
}

func TestItemPrice_NeverAboveBase(t *testing.T) {
	tiers := []entities.Tier{entities.TierPremium, entities.TierRegular, "other"}
	prices := []float64{0, 0.01, 9.99, 10, 250}

	for _, tier := range tiers {
		for month := time.January; month <= time.December; month++ {
			for qty := 1; qty <= 15; qty++ {
				for _, p := range prices {
					item := entities.LineItem{ID: "a", Quantity: qty, Price: p}
					assert.LessOrEqual(t, pricing.ItemPrice(item, tier, month), pricing.ItemBasePrice(item))
				}
			}
		}
	}
}

func TestShippingCost(t *testing.T) {
	testCases := []struct {
		subtotal float64
		want     float64
	}{
		{150, 0},
		{100, 0},
		{99.99, 5},
		{50, 5},
		{49.99, 10},
		{0, 10},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.want, pricing.ShippingCost(tc.subtotal), "subtotal %v", tc.subtotal)
	}
}

func TestTax(t *testing.T) {
	enabled := entities.PricingConfig{TaxEnabled: true}

	testCases := []struct {
		name  string
		state string
		cfg   entities.PricingConfig
		want  float64
	}{
		{"disabled", "CA", entities.PricingConfig{}, 0},
		{"california", "CA", enabled, 7.25},
		{"new york", "NY", enabled, 8},
		{"texas", "TX", enabled, 6.25},
		{"unknown state uses default", "WA", enabled, 5},
		{"empty state uses default", "", enabled, 5},
		{"state match is exact", "ca", enabled, 5},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, pricing.Tax(100, tc.state, tc.cfg), eps)
		})
	}
}

func TestPaymentFee(t *testing.T) {
	testCases := []struct {
		method entities.PaymentMethod
		want   float64
	}{
		{entities.PaymentCreditCard, 2.9},
		{"CREDIT_CARD", 2.9},
		{entities.PaymentPayPal, 3.4},
		{"PayPal", 3.4},
		{"bank_transfer", 0},
		{"", 0},
	}

	for _, tc := range testCases {
		t.Run(string(tc.method), func(t *testing.T) {
			assert.InDelta(t, tc.want, pricing.PaymentFee(100, tc.method), eps)
		})
	}
}

func TestRound2(t *testing.T) {
	testCases := []struct {
		in   float64
		want float64
	}{
		{19.995, 20.00},
		{19.994, 19.99},
		{2.675, 2.68},
		{107.348, 107.35},
		{102.9, 102.90},
		{0, 0},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.want, pricing.Round2(tc.in), "round2(%v)", tc.in)
	}
}
