package entities

type Tier string

const (
	TierPremium Tier = "premium"
	TierRegular Tier = "regular"
)

const UserStatusActive = "active"

// User is owned by the caller. Email and Phone are empty when absent.
type User struct {
	ID            string
	Status        string
	Tier          Tier
	State         string
	Email         string
	Phone         string
	LoyaltyPoints int
}

func (u *User) Active() bool {
	return u.Status == UserStatusActive
}
