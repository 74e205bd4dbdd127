package renderer

import (
	"strings"
	"testing"

	"github.com/etnz/marina"
)

// inventory returns the boats of an inventory decoded from lines, sorted for display.
func inventory(t *testing.T, lines ...string) *marina.Inventory {
	t.Helper()
	inv, err := marina.DecodeInventory(strings.NewReader(strings.Join(lines, "\n")))
	if err != nil {
		t.Fatalf("DecodeInventory() returned an unexpected error: %v", err)
	}
	return inv
}

func TestListing(t *testing.T) {
	inv := inventory(t,
		"Serenity,25,slip,3,150.00",
		"Big Brother,20,land,B,120.00",
		"Sea Breeze,28,trailor,ABC123,0.00",
		"Mirage,30,storage,42,99.99",
		"Kayak,8,slip,12,1234.5",
	)
	want := "" +
		"Big Brother          20'    land      B   Owes $ 120.00\n" +
		"Kayak                 8'    slip   # 12   Owes $1234.50\n" +
		"Mirage               30' storage   # 42   Owes $  99.99\n" +
		"Sea Breeze           28' trailor ABC123   Owes $   0.00\n" +
		"Serenity             25'    slip   # 3   Owes $ 150.00\n"

	if got := Listing(inv.Sorted()); got != want {
		t.Errorf("Listing() mismatch.\nGot:\n%s\nWant:\n%s", got, want)
	}
}

func TestListing_Empty(t *testing.T) {
	if got := Listing(nil); got != "" {
		t.Errorf("Listing(nil) = %q, want empty", got)
	}
}

func TestLocationString(t *testing.T) {
	tests := []struct {
		loc  marina.Location
		want string
	}{
		{marina.Slip{Number: 3}, "# 3"},
		{marina.Land{Bay: 'C'}, "C"},
		{marina.Trailer{Tag: "XYZ-12"}, "XYZ-12"},
		{marina.Storage{Number: 7}, "# 7"},
		{nil, "# 0"},
	}
	for _, tc := range tests {
		if got := LocationString(tc.loc); got != tc.want {
			t.Errorf("LocationString(%v) = %q, want %q", tc.loc, got, tc.want)
		}
	}
}
