package loyalty

import (
	"math"
	"strings"

	"github.com/SergeyBogomolovv/order-processor/internal/entities"
)

const (
	premiumMultiplier = 10
	regularMultiplier = 20
)

// Points earned for an order total. Tier match is case-insensitive; unknown tiers earn at the regular rate.
func Points(total float64, tier entities.Tier) int {
	multiplier := regularMultiplier
	if strings.EqualFold(string(tier), string(entities.TierPremium)) {
		multiplier = premiumMultiplier
	}
	return int(math.Floor(total / float64(multiplier)))
}

// Award adds points to the user balance. Non-positive awards leave it unchanged.
func Award(user *entities.User, points int) {
	if points <= 0 {
		return
	}
	user.LoyaltyPoints += points
}
