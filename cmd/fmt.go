package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/marina"
	"github.com/google/subcommands"
)

type fmtCmd struct {
	outputFile string
}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "rewrites the boat file in its canonical form"
}
func (*fmtCmd) Usage() string {
	return `marina fmt [-o <file>]

  Reads the boat file and writes it back in canonical form: lowercase
  categories, balances with two decimals and no empty fields. Lines that
  cannot be read are dropped and reported.
  By default, the boat file is rewritten in place. Use -o - to write to the
  standard output.

Usage Examples:
# Writes to the default boat file.
$ marina fmt

# Checks a file with the strict reader, without changing it.
$ marina -strict -boats-file old.csv fmt -o -
`
}

func (p *fmtCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.outputFile, "o", "", "Output file, '-' for the standard output. Defaults to the boat file.")
}

func (p *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := settings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	in, err := os.Open(cfg.BoatsFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not open boat file %q: %v\n", cfg.BoatsFile, err)
		return subcommands.ExitFailure
	}
	inv := marina.NewInventory(inventoryOptions(cfg)...)
	skipped, err := inv.Load(in)
	in.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding boat file %q: %v\n", cfg.BoatsFile, err)
		return subcommands.ExitFailure
	}
	if skipped > 0 {
		fmt.Fprintf(os.Stderr, "Warning: dropped %d lines of %q\n", skipped, cfg.BoatsFile)
	}

	switch p.outputFile {
	case "-":
		err = inv.Save(os.Stdout)
	case "":
		err = marina.SaveInventory(cfg.BoatsFile, inv)
	default:
		err = marina.SaveInventory(p.outputFile, inv)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error writing boats: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
