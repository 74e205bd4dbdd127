package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type monthCmd struct{}

func (*monthCmd) Name() string     { return "month" }
func (*monthCmd) Synopsis() string { return "bill every boat its monthly charge" }
func (*monthCmd) Usage() string {
	return `marina month

  Adds to each boat its monthly charge, the rate of its category times its
  length. See 'marina topic billing'.
`
}

func (*monthCmd) SetFlags(f *flag.FlagSet) {}

func (*monthCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	inv, err := DecodeInventory()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading boats: %v\n", err)
		return subcommands.ExitFailure
	}

	inv.ApplyMonthlyCharges()

	if err := EncodeInventory(inv); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving boats: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Billed %d boats, %s owed in total\n", inv.Len(), inv.Total())
	return subcommands.ExitSuccess
}
