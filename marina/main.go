// Command marina manages the inventory of the boats stored at a marina.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/etnz/marina/cmd"
	"github.com/google/subcommands"
)

func main() {
	cmd.Complete("marina")

	commander := subcommands.NewCommander(flag.CommandLine, "marina")
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	commander.Register(commander.CommandsCommand(), "help")
	cmd.Register(commander)

	flag.Parse()

	// Unknown subcommands may be provided by a marina-<name> binary.
	if name := flag.Arg(0); name != "" && !cmd.Registered(name) {
		if found, code := cmd.RunExtension(name, flag.Args()[1:]); found {
			os.Exit(code)
		}
	}
	os.Exit(int(commander.Execute(context.Background())))
}
