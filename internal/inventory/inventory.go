package inventory

import "github.com/SergeyBogomolovv/order-processor/internal/entities"

// Check reports whether inv can cover the requested quantity of item.
// A non-positive quantity is rejected before the stock lookup.
func Check(item entities.LineItem, inv entities.Inventory) error {
	if item.Quantity <= 0 {
		return entities.NewItemError(item.ID, entities.ErrInvalidQuantity)
	}
	entry, ok := inv.Entry(item.ID)
	if !ok {
		return entities.NewItemError(item.ID, entities.ErrItemNotFound)
	}
	if entry.Quantity < item.Quantity {
		return entities.NewItemError(item.ID, entities.ErrInsufficientInventory)
	}
	return nil
}

// Reserve decrements stock for every item in order. If any item fails the check,
// the items reserved so far are rolled back and later items are left untouched.
func Reserve(items []entities.LineItem, inv entities.Inventory) ([]entities.LineItem, error) {
	reserved := make([]entities.LineItem, 0, len(items))

	for _, item := range items {
		if err := Check(item, inv); err != nil {
			Rollback(reserved, inv)
			return nil, err
		}

		entry, _ := inv.Entry(item.ID)
		entry.Quantity -= item.Quantity
		reserved = append(reserved, item)
	}

	return reserved, nil
}

// Rollback adds back exactly the reserved quantities. Items missing from inv are skipped.
func Rollback(items []entities.LineItem, inv entities.Inventory) {
	for _, item := range items {
		if entry, ok := inv.Entry(item.ID); ok {
			entry.Quantity += item.Quantity
		}
	}
}
