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

type removeCmd struct{}

func (*removeCmd) Name() string     { return "remove" }
func (*removeCmd) Synopsis() string { return "remove a boat from the inventory" }
func (*removeCmd) Usage() string {
	return `marina remove <name>

  Removes the boat with that name, ignoring case.
`
}

func (*removeCmd) SetFlags(f *flag.FlagSet) {}

func (*removeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: missing boat name")
		return subcommands.ExitUsageError
	}
	name := strings.Join(f.Args(), " ")

	inv, err := DecodeInventory()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading boats: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := inv.Remove(name); errors.Is(err, marina.ErrNotFound) {
		fmt.Fprintln(os.Stderr, "No boat with that name")
		return subcommands.ExitFailure
	}

	if err := EncodeInventory(inv); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving boats: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
