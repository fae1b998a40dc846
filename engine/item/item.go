// Package item implements consumable items and the inventory that holds
// them. Inventories list their contents in the order items were first
// added, so player-facing menus stay stable between turns.
package item

// Target is what an item can restore when used.
type Target interface {
	Heal(amount float64)
	RestoreMP(amount float64)
}

// Item is an immutable consumable definition.
type Item struct {
	Name        string
	Description string
	HPRestore   float64
	MPRestore   float64
}

// Use applies the item's restores to target. A zero restore is skipped
// so items stay single-purpose in the narration.
func (i Item) Use(t Target) {
	if i.HPRestore > 0 {
		t.Heal(i.HPRestore)
	}
	if i.MPRestore > 0 {
		t.RestoreMP(i.MPRestore)
	}
}

// Entry is one inventory slot: an item and how many copies are held.
type Entry struct {
	Item  Item
	Count int
}

// Inventory holds a character's consumables keyed by item name.
type Inventory struct {
	entries map[string]*Entry
	order   []string
}

// NewInventory creates an empty inventory.
func NewInventory() *Inventory {
	return &Inventory{entries: map[string]*Entry{}}
}

// Add puts count copies of it into the inventory. Adding an item already
// held increases its count without changing its listing position.
func (inv *Inventory) Add(it Item, count int) {
	if count <= 0 {
		return
	}
	if e, ok := inv.entries[it.Name]; ok {
		e.Count += count
		return
	}
	inv.entries[it.Name] = &Entry{Item: it, Count: count}
	inv.order = append(inv.order, it.Name)
}

// Remove takes count copies of the named item. It reports false and
// changes nothing when fewer than count copies are held.
func (inv *Inventory) Remove(name string, count int) bool {
	e, ok := inv.entries[name]
	if !ok || count <= 0 || e.Count < count {
		return false
	}
	e.Count -= count
	if e.Count == 0 {
		delete(inv.entries, name)
		for i, n := range inv.order {
			if n == name {
				inv.order = append(inv.order[:i], inv.order[i+1:]...)
				break
			}
		}
	}
	return true
}

// Has reports whether at least one copy of the named item is held.
func (inv *Inventory) Has(name string) bool {
	e, ok := inv.entries[name]
	return ok && e.Count > 0
}

// Use applies the named item to target and consumes one copy. It reports
// false when the item is not held; nothing is consumed in that case.
func (inv *Inventory) Use(name string, t Target) bool {
	if !inv.Has(name) {
		return false
	}
	inv.entries[name].Item.Use(t)
	inv.Remove(name, 1)
	return true
}

// List returns the inventory entries in first-added order.
func (inv *Inventory) List() []Entry {
	out := make([]Entry, 0, len(inv.order))
	for _, name := range inv.order {
		out = append(out, *inv.entries[name])
	}
	return out
}

// Len returns the number of distinct items held.
func (inv *Inventory) Len() int { return len(inv.order) }
