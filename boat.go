package marina

import "golang.org/x/text/cases"

const (
	// MaxNameLen is the maximum number of characters kept from a boat name.
	MaxNameLen = 127
	// MaxTagLen is the maximum number of characters kept from a trailer tag.
	MaxTagLen = 19
)

// Boat is a boat stored at the marina.
type Boat struct {
	Name     string   // unique within an inventory, ignoring case
	Length   int      // in feet
	Location Location // where the boat is kept
	Owed     Money    // balance due
}

// Category returns the category of the place where the boat is kept.
func (b Boat) Category() Category { return b.location().Category() }

// MonthlyCharge returns the amount billed to the boat every month.
func (b Boat) MonthlyCharge() Money {
	return Rate(b.Category()).MulInt(b.Length)
}

// location returns the boat location, a boat without one is in slip 0.
func (b Boat) location() Location {
	if b.Location == nil {
		return Slip{}
	}
	return b.Location
}

// Equal reports whether a and b describe the same boat, with the same balance.
func (b Boat) Equal(c Boat) bool {
	return b.Name == c.Name &&
		b.Length == c.Length &&
		b.location() == c.location() &&
		b.Owed.Equal(c.Owed)
}

// foldName returns the key used to compare boat names.
func foldName(name string) string {
	return cases.Fold().String(name)
}

// SameName reports whether two boat names are equal, ignoring case.
func SameName(a, b string) bool {
	return foldName(a) == foldName(b)
}
