package marina

import (
	"fmt"
	"slices"
	"strings"
)

// DefaultCapacity is the number of boats an inventory can hold unless configured otherwise.
const DefaultCapacity = 120

// Inventory is the ordered collection of boats stored at the marina.
//
// Boats keep the order in which they were added. Names are unique ignoring
// case: lookups act on the first match. No failed operation leaves the
// inventory modified.
type Inventory struct {
	boats    []Boat
	capacity int
	codec    Codec
}

// Option configures an Inventory.
type Option func(*Inventory)

// WithCapacity sets the maximum number of boats in the inventory.
func WithCapacity(n int) Option {
	return func(inv *Inventory) { inv.capacity = n }
}

// WithCodec sets the codec used to read and write boat lines.
func WithCodec(c Codec) Option {
	return func(inv *Inventory) { inv.codec = c }
}

// NewInventory creates an empty inventory.
func NewInventory(opts ...Option) *Inventory {
	inv := &Inventory{
		capacity: DefaultCapacity,
		codec:    DefaultCodec,
	}
	for _, opt := range opts {
		opt(inv)
	}
	return inv
}

// Codec returns the codec used by the inventory.
func (inv *Inventory) Codec() Codec { return inv.codec }

// Len returns the number of boats in the inventory.
func (inv *Inventory) Len() int { return len(inv.boats) }

// Cap returns the maximum number of boats in the inventory.
func (inv *Inventory) Cap() int { return inv.capacity }

// Boats returns a copy of the boats in storage order.
func (inv *Inventory) Boats() []Boat { return slices.Clone(inv.boats) }

// Sorted returns a copy of the boats ordered by name, ignoring case.
// Boats with the same name keep their relative order. The inventory order is
// not modified.
func (inv *Inventory) Sorted() []Boat {
	sorted := slices.Clone(inv.boats)
	slices.SortStableFunc(sorted, func(a, b Boat) int {
		return strings.Compare(foldName(a.Name), foldName(b.Name))
	})
	return sorted
}

// Find returns the index of the first boat with that name, ignoring case.
func (inv *Inventory) Find(name string) (int, bool) {
	key := foldName(name)
	for i, b := range inv.boats {
		if foldName(b.Name) == key {
			return i, true
		}
	}
	return -1, false
}

// Boat returns a copy of the first boat with that name, ignoring case.
func (inv *Inventory) Boat(name string) (Boat, bool) {
	i, ok := inv.Find(name)
	if !ok {
		return Boat{}, false
	}
	return inv.boats[i], true
}

// Append adds a boat at the end of the inventory.
//
// With a strict codec, a boat that would not read back from the boat file is
// rejected with ErrInvalidField: an empty name or tag, or a field containing a
// comma or a line break. A lenient inventory accepts it, and the next load
// drops or alters its line.
func (inv *Inventory) Append(b Boat) error {
	if len(inv.boats) >= inv.capacity {
		return fmt.Errorf("cannot add %q: %w (%d boats)", b.Name, ErrFull, inv.capacity)
	}
	if inv.codec.Strict {
		if err := writable(b); err != nil {
			return fmt.Errorf("cannot add %q: %w", b.Name, err)
		}
	}
	switch b.Owed.Currency() {
	case "":
		b.Owed = M(b.Owed.Decimal(), inv.codec.currency())
	case inv.codec.currency():
	default:
		return fmt.Errorf("cannot add %q: %w: balance in %s, want %s", b.Name, ErrInvalidField, b.Owed.Currency(), inv.codec.currency())
	}
	inv.boats = append(inv.boats, b)
	return nil
}

// Add parses a boat line and adds it at the end of the inventory.
func (inv *Inventory) Add(line string) error {
	b, err := inv.codec.Parse(line)
	if err != nil {
		return err
	}
	return inv.Append(b)
}

// Remove removes the first boat with that name, ignoring case.
// Following boats keep their relative order.
func (inv *Inventory) Remove(name string) error {
	i, ok := inv.Find(name)
	if !ok {
		return fmt.Errorf("cannot remove %q: %w", name, ErrNotFound)
	}
	inv.boats = slices.Delete(inv.boats, i, i+1)
	return nil
}

// Pay records a payment for the first boat with that name, ignoring case.
//
// A payment greater than the amount owed is rejected with ErrOverpayment and
// the balance is left unchanged. Zero and negative amounts are not checked.
func (inv *Inventory) Pay(name string, amount Money) error {
	i, ok := inv.Find(name)
	if !ok {
		return fmt.Errorf("cannot pay for %q: %w", name, ErrNotFound)
	}
	b := &inv.boats[i]
	if c := amount.Currency(); c != "" && c != b.Owed.Currency() {
		return fmt.Errorf("cannot pay %s for %q: balance is in %s", amount, b.Name, b.Owed.Currency())
	}
	if amount.GreaterThan(b.Owed) {
		return fmt.Errorf("cannot pay %s for %q: %w, %s", amount.Fixed(), b.Name, ErrOverpayment, b.Owed)
	}
	b.Owed = b.Owed.Sub(amount)
	return nil
}

// ApplyMonthlyCharges bills every boat its monthly charge.
func (inv *Inventory) ApplyMonthlyCharges() {
	for i := range inv.boats {
		b := &inv.boats[i]
		b.Owed = b.Owed.Add(b.MonthlyCharge())
	}
}

// Total returns the sum of all balances.
func (inv *Inventory) Total() Money {
	total := M(0, inv.codec.currency())
	for _, b := range inv.boats {
		total = total.Add(b.Owed)
	}
	return total
}
