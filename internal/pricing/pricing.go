package pricing

import (
	"strings"
	"time"

	"github.com/SergeyBogomolovv/order-processor/internal/entities"
	"github.com/shopspring/decimal"
)

func ItemBasePrice(item entities.LineItem) float64 {
	return item.Price * float64(item.Quantity)
}

// UserTypeDiscountRate returns the volume discount for a tier. Thresholds are strict.
func UserTypeDiscountRate(tier entities.Tier, quantity int) float64 {
	switch tier {
	case entities.TierPremium:
		if quantity > highVolumeQuantity {
			return premiumHighVolumeRate
		}
		if quantity > midVolumeQuantity {
			return premiumMidVolumeRate
		}
		return premiumLowVolumeRate
	case entities.TierRegular:
		if quantity > highVolumeQuantity {
			return regularHighVolumeRate
		}
		return 0
	default:
		return 0
	}
}

func SeasonalDiscountRate(month time.Month) float64 {
	return seasonalRates[month]
}

func ApplyDiscount(price, rate float64) float64 {
	return price * (1 - rate)
}

// ItemPrice applies the tier discount and then the seasonal discount on the already discounted amount.
func ItemPrice(item entities.LineItem, tier entities.Tier, month time.Month) float64 {
	return discounted(ItemBasePrice(item), item.Quantity, tier, month)
}

// discounted applies the tier discount, then the seasonal one, to base.
func discounted(base float64, quantity int, tier entities.Tier, month time.Month) float64 {
	price := ApplyDiscount(base, UserTypeDiscountRate(tier, quantity))
	return ApplyDiscount(price, SeasonalDiscountRate(month))
}

func ShippingCost(subtotal float64) float64 {
	switch {
	case subtotal >= freeShippingThreshold:
		return 0
	case subtotal >= reducedShippingThreshold:
		return reducedShippingCost
	default:
		return standardShippingCost
	}
}

func TaxRate(state string) float64 {
	if rate, ok := taxRates[state]; ok {
		return rate
	}
	return defaultTaxRate
}

func Tax(amount float64, state string, cfg entities.PricingConfig) float64 {
	if !cfg.TaxEnabled {
		return 0
	}
	return amount * TaxRate(state)
}

// PaymentFeeRate matches the method case-insensitively. Unknown methods are free.
func PaymentFeeRate(method entities.PaymentMethod) float64 {
	return paymentFees[strings.ToLower(string(method))]
}

func PaymentFee(amount float64, method entities.PaymentMethod) float64 {
	return amount * PaymentFeeRate(method)
}

// Round2 rounds half-up to cents. The decimal conversion keeps 19.995 at 20.00
// where float math would land on 19.99.
func Round2(amount float64) float64 {
	return decimal.NewFromFloat(amount).Round(2).InexactFloat64()
}
