package pricing

import "time"

const (
	premiumHighVolumeRate = 0.15
	premiumMidVolumeRate  = 0.10
	premiumLowVolumeRate  = 0.05
	regularHighVolumeRate = 0.05

	highVolumeQuantity = 10
	midVolumeQuantity  = 5
)

const (
	winterRate = 0.10
	summerRate = 0.07
)

const (
	freeShippingThreshold    = 100
	reducedShippingThreshold = 50
	standardShippingCost     = 10
	reducedShippingCost      = 5
)

const defaultTaxRate = 0.05

var taxRates = map[string]float64{
	"CA": 0.0725,
	"NY": 0.08,
	"TX": 0.0625,
}

// keyed by lower-case method name
var paymentFees = map[string]float64{
	"credit_card": 0.029,
	"paypal":      0.034,
}

var seasonalRates = map[time.Month]float64{
	time.December: winterRate,
	time.January:  winterRate,
	time.June:     summerRate,
	time.July:     summerRate,
	time.August:   summerRate,
}
