package notification

import "github.com/SergeyBogomolovv/order-processor/internal/entities"

const smsThreshold = 100

// Decide returns the notifications a confirmed order should produce. It never delivers them.
func Decide(user *entities.User, total float64) []entities.Notification {
	var out []entities.Notification

	if user.Email != "" {
		out = append(out, entities.Notification{Type: entities.NotificationEmail, Recipient: user.Email})
	}
	if user.Phone != "" && total > smsThreshold {
		out = append(out, entities.Notification{Type: entities.NotificationSMS, Recipient: user.Phone})
	}

	return out
}
