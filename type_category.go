package marina

import (
	"fmt"
	"strings"
)

// Category is the kind of place where a boat is kept.
//
// The category decides which Location is attached to a boat and the monthly
// rate it is billed.
type Category int

const (
	// CategorySlip is a boat kept in a numbered slip on the water.
	CategorySlip Category = iota
	// CategoryLand is a boat kept on land, in a lettered bay.
	CategoryLand
	// CategoryTrailer is a boat kept on a trailer identified by its tag.
	CategoryTrailer
	// CategoryStorage is a boat kept in a numbered storage space.
	CategoryStorage
)

// String returns the token used for the category in the boat file.
func (c Category) String() string {
	switch c {
	case CategorySlip:
		return "slip"
	case CategoryLand:
		return "land"
	case CategoryTrailer:
		// the file format has always spelled it this way.
		return "trailor"
	case CategoryStorage:
		return "storage"
	default:
		return fmt.Sprintf("Category(%d)", int(c))
	}
}

// ParseCategory parses a category token, ignoring case.
//
// An unknown token returns CategorySlip and false.
func ParseCategory(s string) (Category, bool) {
	switch strings.ToLower(s) {
	case "slip":
		return CategorySlip, true
	case "land":
		return CategoryLand, true
	case "trailor":
		return CategoryTrailer, true
	case "storage":
		return CategoryStorage, true
	default:
		return CategorySlip, false
	}
}

// Rate returns the monthly rate per foot of boat length for the category.
// The rate carries no currency and takes the one of the balance it is added to.
func Rate(c Category) Money {
	switch c {
	case CategorySlip:
		return M(12.50, "")
	case CategoryLand:
		return M(14.00, "")
	case CategoryTrailer:
		return M(25.00, "")
	case CategoryStorage:
		return M(11.20, "")
	default:
		return M(0, "")
	}
}
