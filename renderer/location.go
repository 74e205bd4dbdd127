package renderer

import (
	"fmt"

	"github.com/etnz/marina"
)

// LocationString renders where a boat is kept: "# 3" for a slip or a storage
// space, the bay letter for land and the tag for a trailer.
func LocationString(loc marina.Location) string {
	switch v := loc.(type) {
	case marina.Slip:
		return fmt.Sprintf("# %d", v.Number)
	case marina.Land:
		return string(v.Bay)
	case marina.Trailer:
		return v.Tag
	case marina.Storage:
		return fmt.Sprintf("# %d", v.Number)
	default:
		return "# 0"
	}
}
