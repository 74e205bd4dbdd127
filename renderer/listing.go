package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/marina"
)

// Listing renders boats as fixed-width columns, one line per boat, in the
// given order:
//
//	Serenity             25'    slip   # 3   Owes $ 150.00
//	Big Brother          20'    land      B   Owes $ 120.00
//	Sea Breeze           28' trailor ABC123   Owes $   0.00
//	Mirage               30' storage   # 42   Owes $  99.99
func Listing(boats []marina.Boat) string {
	var b strings.Builder
	for _, boat := range boats {
		owed := boat.Owed.Fixed()
		switch loc := boat.Location.(type) {
		case marina.Land:
			fmt.Fprintf(&b, "%-20s %2d'    land      %c   Owes $%7s\n", boat.Name, boat.Length, loc.Bay, owed)
		case marina.Trailer:
			fmt.Fprintf(&b, "%-20s %2d' trailor %s   Owes $%7s\n", boat.Name, boat.Length, loc.Tag, owed)
		case marina.Storage:
			fmt.Fprintf(&b, "%-20s %2d' storage   # %d   Owes $%7s\n", boat.Name, boat.Length, loc.Number, owed)
		case marina.Slip:
			fmt.Fprintf(&b, "%-20s %2d'    slip   # %d   Owes $%7s\n", boat.Name, boat.Length, loc.Number, owed)
		default:
			fmt.Fprintf(&b, "%-20s %2d'    slip   # %d   Owes $%7s\n", boat.Name, boat.Length, 0, owed)
		}
	}
	return b.String()
}
