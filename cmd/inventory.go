package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/marina/renderer"
	"github.com/google/subcommands"
)

type inventoryCmd struct {
	markdown bool
}

func (*inventoryCmd) Name() string     { return "inventory" }
func (*inventoryCmd) Synopsis() string { return "list the boats sorted by name" }
func (*inventoryCmd) Usage() string {
	return `marina inventory [-md]

  Lists the boats sorted by name, with what each of them owes.
  The boat file is left unchanged.
`
}

func (c *inventoryCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.markdown, "md", false, "render the inventory as a markdown table")
}

func (c *inventoryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	inv, err := DecodeInventory()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading boats: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.markdown {
		printMarkdown(renderer.InventoryMarkdown(inv.Sorted(), inv.Total()))
		return subcommands.ExitSuccess
	}
	fmt.Print(renderer.Listing(inv.Sorted()))
	return subcommands.ExitSuccess
}
