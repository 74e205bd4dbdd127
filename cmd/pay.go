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

type payCmd struct {
	amount string
}

func (*payCmd) Name() string     { return "pay" }
func (*payCmd) Synopsis() string { return "record a payment for a boat" }
func (*payCmd) Usage() string {
	return `marina pay -a <amount> <name>

  Records a payment for the boat with that name, ignoring case.
  A payment greater than the amount owed is refused.

Usage Examples:
$ marina pay -a 120 "Big Brother"
`
}

func (c *payCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.amount, "a", "", "amount paid")
}

func (c *payCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	amount, err := marina.Codec{Strict: true, Currency: inv.Codec().Currency}.ParseAmount(c.amount)
	if err != nil || !amount.IsPositive() {
		fmt.Fprintf(os.Stderr, "Error: -a must be a positive amount, got %q\n", c.amount)
		return subcommands.ExitUsageError
	}

	b, ok := inv.Boat(name)
	if !ok {
		fmt.Fprintln(os.Stderr, "No boat with that name")
		return subcommands.ExitFailure
	}
	if err := inv.Pay(b.Name, amount); err != nil {
		if errors.Is(err, marina.ErrOverpayment) {
			fmt.Fprintf(os.Stderr, "That is more than the amount owed, %s\n", b.Owed)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return subcommands.ExitFailure
	}

	if err := EncodeInventory(inv); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving boats: %v\n", err)
		return subcommands.ExitFailure
	}
	b, _ = inv.Boat(name)
	fmt.Printf("%s now owes %s\n", b.Name, b.Owed)
	return subcommands.ExitSuccess
}
