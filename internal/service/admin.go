package service

import (
	"context"

	"github.com/SergeyBogomolovv/order-processor/internal/entities"
)

// GetUser returns a copy of the stored user.
func (s *orderService) GetUser(ctx context.Context, userID string) (entities.User, error) {
	var u entities.User
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		stored := s.store.User(userID)
		if stored == nil {
			return entities.ErrUserNotFound
		}
		u = *stored
		return nil
	})
	return u, err
}

func (s *orderService) SaveUser(ctx context.Context, u entities.User) (entities.User, error) {
	var saved entities.User
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		saved = s.store.UpsertUser(u)
		return nil
	})
	return saved, err
}

func (s *orderService) GetStock(ctx context.Context, itemID string) (int, error) {
	var q int
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var ok bool
		q, ok = s.store.Stock(itemID)
		if !ok {
			return entities.NewItemError(itemID, entities.ErrItemNotFound)
		}
		return nil
	})
	return q, err
}

func (s *orderService) SetStock(ctx context.Context, itemID string, quantity int) error {
	return s.txManager.Do(ctx, func(ctx context.Context) error {
		s.store.SetStock(itemID, quantity)
		return nil
	})
}
