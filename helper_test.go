package marina

import "github.com/google/go-cmp/cmp"

// USD is a helper for test to create usd money from const
func USD(v float64) Money { return M(v, "USD") }

// EUR is a helper for test to create euro money from const
func EUR(v float64) Money { return M(v, "EUR") }

// moneyEqual lets cmp compare Money values by amount and currency.
var moneyEqual = cmp.Comparer(func(a, b Money) bool { return a.Equal(b) })

// names returns the names of boats, in order.
func names(boats []Boat) []string {
	var n []string
	for _, b := range boats {
		n = append(n, b.Name)
	}
	return n
}
