package marina

import (
	"encoding/json"
	"fmt"
	"io"
)

// MarshalJSON writes the boat as a JSON object with a stable key order:
// name, length, category, the category specific key, owed and currency.
//
//	{"name":"Serenity","length":25,"category":"slip","slip":3,"owed":150.00,"currency":"USD"}
func (b Boat) MarshalJSON() ([]byte, error) {
	var o orderedObject
	o.Set("name", b.Name).Set("length", b.Length).Set("category", b.Category().String())
	switch loc := b.location().(type) {
	case Slip:
		o.Set("slip", loc.Number)
	case Land:
		o.Set("bay", string(loc.Bay))
	case Trailer:
		o.Set("tag", loc.Tag)
	case Storage:
		o.Set("storage", loc.Number)
	}
	o.SetAmount("owed", b.Owed).SetNonZero("currency", b.Owed.Currency())
	return o.Bytes()
}

// ExportJSON writes the boats as an indented JSON array.
func ExportJSON(w io.Writer, boats []Boat) error {
	if boats == nil {
		boats = []Boat{}
	}
	data, err := json.MarshalIndent(boats, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal boats: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write boats: %w", err)
	}
	return nil
}
