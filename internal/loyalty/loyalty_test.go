package loyalty_test

import (
	"testing"

	"github.com/SergeyBogomolovv/order-processor/internal/entities"
	"github.com/SergeyBogomolovv/order-processor/internal/loyalty"
	"github.com/stretchr/testify/assert"
)

func TestPoints(t *testing.T) {
	testCases := []struct {
		name  string
		total float64
		tier  entities.Tier
		want  int
	}{
		{"premium", 103.80, entities.TierPremium, 10},
		{"regular", 103.80, entities.TierRegular, 5},
		{"premium any case", 103.80, "PREMIUM", 10},
		{"unknown tier earns regular rate", 103.80, "gold", 5},
		{"below one point", 9.99, entities.TierPremium, 0},
		{"exact multiple", 40, entities.TierRegular, 2},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, loyalty.Points(tc.total, tc.tier))
		})
	}
}

func TestAward(t *testing.T) {
	user := &entities.User{ID: "u1"}

	loyalty.Award(user, 10)
	loyalty.Award(user, 0)
	loyalty.Award(user, -3)
	loyalty.Award(user, 5)

	assert.Equal(t, 15, user.LoyaltyPoints)
}
