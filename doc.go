// Package marina provides the types and functions to manage the inventory of
// boats stored at a marina. It is designed to be local-first: the whole
// inventory lives in a single human-readable text file, one boat per line,
// that can be edited by hand and kept under version control.
//
// The core functionalities include:
//   - Boat Records: a boat's name, length, balance and where it is kept
//     (a slip, a land bay, a trailer or a storage space).
//   - Line Codec: the parsing and formatting of the comma separated line
//     format used to persist boats.
//   - Inventory Management: an ordered, capacity bounded collection of boats
//     keyed by their case-insensitive name, with operations to add, remove,
//     bill monthly charges and record payments.
//   - Data Persistence: loading and saving an inventory from and to its file.
//
// This package serves as the foundational logic for the `marina` command-line
// tool.
package marina
