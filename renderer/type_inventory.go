package renderer

import (
	"strings"

	"github.com/etnz/marina"
)

// Inventory is the view of the inventory used by the markdown templates.
// Values are already formatted for display.
type Inventory struct {
	// Title of the report.
	Title string `json:"title"`
	// Boats in display order.
	Boats []InventoryBoat `json:"boats"`
	// Total is the sum of all balances.
	Total string `json:"total"`
}

// InventoryBoat is a single row of the inventory.
type InventoryBoat struct {
	Name     string `json:"name"`
	Length   int    `json:"length"`
	Place    string `json:"place"`
	Location string `json:"location"`
	Owed     string `json:"owed"`
}

// NewInventory creates the view of boats, in the given order.
func NewInventory(boats []marina.Boat, total marina.Money) *Inventory {
	inv := &Inventory{
		Title: "Boat Inventory",
		Boats: make([]InventoryBoat, 0, len(boats)),
		Total: total.String(),
	}
	for _, b := range boats {
		inv.Boats = append(inv.Boats, InventoryBoat{
			Name:     escapeCell(b.Name),
			Length:   b.Length,
			Place:    b.Category().String(),
			Location: escapeCell(LocationString(b.Location)),
			Owed:     b.Owed.String(),
		})
	}
	return inv
}

// escapeCell escapes the characters that would break a markdown table cell.
func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
