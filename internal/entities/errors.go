package entities

import (
	"errors"
	"fmt"
)

var (
	ErrOrderNotFound         = errors.New("order not found")
	ErrUserNotFound          = errors.New("user not found")
	ErrUserInactive          = errors.New("user account is not active")
	ErrEmptyOrder            = errors.New("order has no items")
	ErrItemNotFound          = errors.New("item not found in inventory")
	ErrInsufficientInventory = errors.New("insufficient inventory")
	ErrInvalidQuantity       = errors.New("quantity must be positive")

	ErrInvalidRecord = errors.New("invalid order record")
)

// ItemError ties a reservation failure to the item that caused it.
type ItemError struct {
	ItemID string
	Err    error
}

func NewItemError(itemID string, err error) *ItemError {
	return &ItemError{ItemID: itemID, Err: err}
}

func (e *ItemError) Error() string {
	switch e.Err {
	case ErrItemNotFound:
		return fmt.Sprintf("item %s not found in inventory", e.ItemID)
	case ErrInsufficientInventory:
		return fmt.Sprintf("insufficient inventory for item %s", e.ItemID)
	case ErrInvalidQuantity:
		return fmt.Sprintf("invalid quantity for item %s", e.ItemID)
	default:
		return fmt.Sprintf("item %s: %v", e.ItemID, e.Err)
	}
}

func (e *ItemError) Unwrap() error {
	return e.Err
}

// Reason codes reported to callers.
const (
	ReasonOrderNotFound         = "OrderNotFound"
	ReasonUserNotFound          = "UserNotFound"
	ReasonUserInactive          = "UserInactive"
	ReasonEmptyOrder            = "EmptyOrder"
	ReasonItemNotFound          = "ItemNotFound"
	ReasonInsufficientInventory = "InsufficientInventory"
	ReasonInvalidQuantity       = "InvalidQuantity"
	ReasonUnknown               = "Unknown"
)

// Reason maps an error from the processing taxonomy to its reason code.
func Reason(err error) string {
	switch {
	case errors.Is(err, ErrOrderNotFound):
		return ReasonOrderNotFound
	case errors.Is(err, ErrUserNotFound):
		return ReasonUserNotFound
	case errors.Is(err, ErrUserInactive):
		return ReasonUserInactive
	case errors.Is(err, ErrEmptyOrder):
		return ReasonEmptyOrder
	case errors.Is(err, ErrItemNotFound):
		return ReasonItemNotFound
	case errors.Is(err, ErrInsufficientInventory):
		return ReasonInsufficientInventory
	case errors.Is(err, ErrInvalidQuantity):
		return ReasonInvalidQuantity
	default:
		return ReasonUnknown
	}
}

// FailedItem returns the item ID carried by err, if any.
func FailedItem(err error) (string, bool) {
	var ie *ItemError
	if errors.As(err, &ie) {
		return ie.ItemID, true
	}
	return "", false
}
