package entities

type InventoryEntry struct {
	Quantity int
}

// Inventory maps item IDs to stock entries. Entries are mutated in place.
type Inventory map[string]*InventoryEntry

// Entry returns the entry for id. A nil entry is reported as missing.
func (inv Inventory) Entry(id string) (*InventoryEntry, bool) {
	e, ok := inv[id]
	if !ok || e == nil {
		return nil, false
	}
	return e, true
}

// Snapshot copies current quantities.
func (inv Inventory) Snapshot() map[string]int {
	out := make(map[string]int, len(inv))
	for id, e := range inv {
		if e != nil {
			out[id] = e.Quantity
		}
	}
	return out
}

type PricingConfig struct {
	TaxEnabled bool
}
