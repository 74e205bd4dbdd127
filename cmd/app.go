// Package cmd implements the CLI application to manage the boats of a marina.
package cmd

import (
	"flag"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/marina"
	"github.com/etnz/marina/config"
	"github.com/google/subcommands"
)

// commands lists the subcommands, in registration order.
var commands = []subcommands.Command{
	&sessionCmd{},
	&inventoryCmd{},
	&addCmd{},
	&removeCmd{},
	&payCmd{},
	&monthCmd{},
	&exportCmd{},
	&fmtCmd{},
	&topicCmd{},
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for _, cmd := range commands {
		group := "boats"
		switch cmd.Name() {
		case "session":
			group = ""
		case "export", "fmt":
			group = "file"
		case "topic":
			group = "help"
		}
		c.Register(cmd, group)
	}
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var boatsFile = flag.String("boats-file", "", "Path to the boat file (defaults to $MARINA_BOATS_FILE or BoatData.csv)")
var capacity = flag.Int("capacity", 0, "Maximum number of boats (defaults to $MARINA_CAPACITY or 120)")
var strict = flag.Bool("strict", false, "Reject boat lines with invalid fields instead of reading them as zero")

// settings returns the configuration from the environment, overridden by the global flags.
func settings() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if *boatsFile != "" {
		cfg.BoatsFile = *boatsFile
	}
	if *capacity > 0 {
		cfg.Capacity = *capacity
	}
	cfg.Strict = cfg.Strict || *strict
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// inventoryOptions returns the inventory options for a configuration.
func inventoryOptions(cfg *config.Config) []marina.Option {
	return []marina.Option{
		marina.WithCapacity(cfg.Capacity),
		marina.WithCodec(marina.Codec{Strict: cfg.Strict, Currency: cfg.Currency}),
	}
}

// DecodeInventory loads the inventory from the application boat file.
func DecodeInventory() (*marina.Inventory, error) {
	cfg, err := settings()
	if err != nil {
		return nil, err
	}
	return marina.LoadInventory(cfg.BoatsFile, inventoryOptions(cfg)...)
}

// EncodeInventory saves the inventory into the application boat file.
func EncodeInventory(inv *marina.Inventory) error {
	cfg, err := settings()
	if err != nil {
		return err
	}
	return marina.SaveInventory(cfg.BoatsFile, inv)
}

// printMarkdown renders markdown for the terminal, or prints it raw if it cannot.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
