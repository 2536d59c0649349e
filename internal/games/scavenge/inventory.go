package scavenge

// Inventory is a fixed-capacity slot array with a selection cursor.
// The selected index is always within [0, capacity).
type Inventory struct {
	slots    []*Item
	selected int
}

// NewInventory creates an inventory with the given capacity.
func NewInventory(capacity int) *Inventory {
	return &Inventory{slots: make([]*Item, capacity)}
}

// Capacity returns the fixed slot count.
func (inv *Inventory) Capacity() int {
	return len(inv.slots)
}

// SelectedIndex returns the cursor position.
func (inv *Inventory) SelectedIndex() int {
	return inv.selected
}

// Selected returns the item in the selected slot, nil if empty.
func (inv *Inventory) Selected() *Item {
	return inv.slots[inv.selected]
}

// Slot returns the item at index i, nil if empty or out of range.
func (inv *Inventory) Slot(i int) *Item {
	if i < 0 || i >= len(inv.slots) {
		return nil
	}
	return inv.slots[i]
}

// Add inserts an item, preferring the currently selected slot when it is
// empty, otherwise the first empty slot. Returns false when full.
func (inv *Inventory) Add(item *Item) bool {
	if inv.slots[inv.selected] == nil {
		inv.slots[inv.selected] = item
		return true
	}
	for i := range inv.slots {
		if inv.slots[i] == nil {
			inv.slots[i] = item
			return true
		}
	}
	return false
}

// RemoveSelected clears the selected slot and returns its item, nil if
// the slot was empty.
func (inv *Inventory) RemoveSelected() *Item {
	item := inv.slots[inv.selected]
	inv.slots[inv.selected] = nil
	return item
}

// Select moves the cursor to index i. Out-of-range requests are silently
// ignored.
func (inv *Inventory) Select(i int) {
	if i >= 0 && i < len(inv.slots) {
		inv.selected = i
	}
}

// Scroll moves the cursor by delta slots, wrapping around both ends.
func (inv *Inventory) Scroll(delta int) {
	n := len(inv.slots)
	inv.selected = ((inv.selected+delta)%n + n) % n
}
