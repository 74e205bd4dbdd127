package marina

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
)

// Load reads boat lines from r and appends them to the inventory.
//
// Empty lines are ignored and lines of any length are read. Lines that cannot
// be parsed are skipped and logged. Boats beyond the inventory capacity are
// dropped without a log. The count of both is returned. Only read errors are
// returned as errors.
func (inv *Inventory) Load(r io.Reader) (skipped int, err error) {
	br := bufio.NewReader(r)
	for lineno := 1; ; lineno++ {
		line, readErr := br.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			return skipped, fmt.Errorf("error reading from input: %w", readErr)
		}
		line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
		if line != "" {
			switch err := inv.loadLine(line); {
			case errors.Is(err, ErrFull):
				skipped++
			case err != nil:
				log.Printf("skipping line %d: %v", lineno, err)
				skipped++
			}
		}
		if readErr == io.EOF {
			return skipped, nil
		}
	}
}

// loadLine parses a line and appends the boat.
func (inv *Inventory) loadLine(line string) error {
	b, err := inv.codec.Parse(line)
	if err != nil {
		return err
	}
	return inv.Append(b)
}

// Save writes one line per boat to w, in storage order.
func (inv *Inventory) Save(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, b := range inv.boats {
		if _, err := fmt.Fprintln(bw, inv.codec.Format(b)); err != nil {
			return fmt.Errorf("failed to write boat %q: %w", b.Name, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write boats: %w", err)
	}
	return nil
}

// DecodeInventory decodes boats from a stream of boat lines and returns a new
// Inventory. See Inventory.Load for the handling of invalid lines.
func DecodeInventory(r io.Reader, opts ...Option) (*Inventory, error) {
	inv := NewInventory(opts...)
	if _, err := inv.Load(r); err != nil {
		return nil, err
	}
	return inv, nil
}

// EncodeInventory persists the inventory to an io.Writer, one boat per line.
// Unlike the sorted listing, boats are written in storage order.
func EncodeInventory(w io.Writer, inv *Inventory) error {
	return inv.Save(w)
}
