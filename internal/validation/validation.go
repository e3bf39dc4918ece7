package validation

import "github.com/SergeyBogomolovv/order-processor/internal/entities"

// Validate checks order preconditions. The first failing check wins.
func Validate(order *entities.Order, user *entities.User) error {
	if order == nil {
		return entities.ErrOrderNotFound
	}
	if user == nil {
		return entities.ErrUserNotFound
	}
	if !user.Active() {
		return entities.ErrUserInactive
	}
	if len(order.Items) == 0 {
		return entities.ErrEmptyOrder
	}
	return nil
}
