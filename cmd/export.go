package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/marina"
	"github.com/google/subcommands"
)

type exportCmd struct {
	query string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the inventory as JSON" }
func (*exportCmd) Usage() string {
	return `marina export [-q <jsonpath>]

  Writes the boats, sorted by name, as a JSON array.
  With -q, writes only the values selected by the JSONPath expression.

Usage Examples:
# Names of the boats on a trailer.
$ marina export -q '$[?(@.category=="trailor")].name'
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.query, "q", "", "JSONPath expression selecting what to export")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	inv, err := DecodeInventory()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading boats: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.query == "" {
		if err := marina.ExportJSON(os.Stdout, inv.Sorted()); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	selected, err := query(inv.Sorted(), c.query)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	fmt.Println(string(selected))
	return subcommands.ExitSuccess
}

// query returns the JSON of the values that a JSONPath expression selects in
// the export of boats.
func query(boats []marina.Boat, expr string) ([]byte, error) {
	var buf bytes.Buffer
	if err := marina.ExportJSON(&buf, boats); err != nil {
		return nil, err
	}
	var doc any
	dec := json.NewDecoder(&buf)
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode the export: %w", err)
	}
	v, err := jsonpath.Get(expr, doc)
	if err != nil {
		return nil, fmt.Errorf("invalid query %q: %w", expr, err)
	}
	return json.MarshalIndent(v, "", "  ")
}
