package marina

import (
	"fmt"
	"os"
	"path/filepath"
)

// LoadInventory opens, decodes, and initializes an inventory from a given file path.
func LoadInventory(path string, opts ...Option) (*Inventory, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open file %q for reading: %w", path, err)
	}
	defer f.Close()

	inv, err := DecodeInventory(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("could not decode boat file %q: %w", path, err)
	}
	return inv, nil
}

// SaveInventory saves the inventory to the file at path, replacing its content.
// The file is rewritten in place: a failure in the middle of the write can
// lose data.
func SaveInventory(path string, inv *Inventory) error {
	if path == "" {
		return fmt.Errorf("cannot save inventory to an empty path")
	}

	// Ensure the directory for the boat file exists.
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("could not create directory for boat file %q: %w", path, err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not open file %q for writing: %w", path, err)
	}

	if err := EncodeInventory(file, inv); err != nil {
		file.Close()
		return fmt.Errorf("could not encode boat file %q: %w", path, err)
	}
	return file.Close()
}
