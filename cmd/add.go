package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/marina"
	"github.com/google/subcommands"
)

type addCmd struct{}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add a boat to the inventory" }
func (*addCmd) Usage() string {
	return `marina add <name>,<length>,<category>,<extra>,<owed>

  Adds a boat at the end of the boat file. The boat is given as a line of the
  boat file, see 'marina topic file-format'.

Usage Examples:
$ marina add "Big Brother,20,land,B,120.00"
`
}

func (*addCmd) SetFlags(f *flag.FlagSet) {}

func (*addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: missing boat data")
		return subcommands.ExitUsageError
	}
	// An unquoted name with spaces arrives as several arguments.
	line := strings.Join(f.Args(), " ")

	inv, err := DecodeInventory()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading boats: %v\n", err)
		return subcommands.ExitFailure
	}

	switch err := inv.Add(line); {
	case errors.Is(err, marina.ErrFull):
		fmt.Fprintln(os.Stderr, "Boat inventory full. Cannot add more boats.")
		return subcommands.ExitFailure
	case err != nil:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	if err := EncodeInventory(inv); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving boats: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
