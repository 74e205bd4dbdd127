package cmd

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/etnz/marina"
	"github.com/etnz/marina/renderer"
	"github.com/google/subcommands"
)

// Session is the interactive menu over an inventory.
type Session struct {
	Inventory *marina.Inventory
	In        io.Reader
	Out       io.Writer

	in  *bufio.Reader
	err error
}

const (
	menuPrompt   = "\n(I)nventory, (A)dd, (R)emove, (P)ayment, (M)onth, e(X)it : "
	boatPrompt   = "Please enter the boat data in CSV format                 : "
	namePrompt   = "Please enter the boat name                               : "
	amountPrompt = "Please enter the amount to be paid                       : "
)

// Run reads menu choices until exit or the end of the input.
// Saving the inventory is left to the caller.
func (s *Session) Run() error {
	s.in = bufio.NewReader(s.In)
	fmt.Fprintln(s.Out, "Welcome to the Boat Management System")
	fmt.Fprintln(s.Out, "-------------------------------------")
	for {
		fmt.Fprint(s.Out, menuPrompt)
		choice, ok := s.readLine()
		if !ok {
			break
		}
		// An empty line reads as its line terminator.
		option, _ := utf8.DecodeRuneInString(choice + "\n")
		switch unicode.ToLower(option) {
		case 'i':
			fmt.Fprint(s.Out, renderer.Listing(s.Inventory.Sorted()))
		case 'a':
			s.add()
		case 'r':
			s.remove()
		case 'p':
			s.pay()
		case 'm':
			s.Inventory.ApplyMonthlyCharges()
		case 'x':
			fmt.Fprintln(s.Out, "\nExiting the Boat Management System")
			return s.err
		default:
			fmt.Fprintf(s.Out, "Invalid option %c\n", option)
		}
	}
	fmt.Fprintln(s.Out, "\nExiting the Boat Management System")
	return s.err
}

// readLine reads the next input line without its terminator.
// It reports false at the end of the input or on a read error.
func (s *Session) readLine() (string, bool) {
	line, err := s.in.ReadString('\n')
	if err != nil {
		if err != io.EOF {
			s.err = err
			return "", false
		}
		if line == "" {
			return "", false
		}
	}
	return strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r"), true
}

func (s *Session) add() {
	fmt.Fprint(s.Out, boatPrompt)
	line, ok := s.readLine()
	if !ok {
		return
	}
	err := s.Inventory.Add(line)
	switch {
	case err == nil:
	case errors.Is(err, marina.ErrFull):
		fmt.Fprintln(s.Out, "Boat inventory full. Cannot add more boats.")
	default:
		fmt.Fprintf(s.Out, "Invalid boat data: %v\n", err)
	}
}

func (s *Session) remove() {
	fmt.Fprint(s.Out, namePrompt)
	name, ok := s.readLine()
	if !ok {
		return
	}
	if err := s.Inventory.Remove(name); errors.Is(err, marina.ErrNotFound) {
		fmt.Fprintln(s.Out, "No boat with that name")
	}
}

func (s *Session) pay() {
	fmt.Fprint(s.Out, namePrompt)
	name, ok := s.readLine()
	if !ok {
		return
	}
	b, ok := s.Inventory.Boat(name)
	if !ok {
		fmt.Fprintln(s.Out, "No boat with that name")
		return
	}
	fmt.Fprint(s.Out, amountPrompt)
	input, ok := s.readLine()
	if !ok {
		return
	}
	amount, err := s.Inventory.Codec().ParseAmount(input)
	if err != nil {
		fmt.Fprintf(s.Out, "Invalid amount: %v\n", err)
		return
	}
	if err := s.Inventory.Pay(b.Name, amount); errors.Is(err, marina.ErrOverpayment) {
		fmt.Fprintf(s.Out, "That is more than the amount owed, $%s\n", b.Owed.Fixed())
	}
}

type sessionCmd struct{}

func (*sessionCmd) Name() string     { return "session" }
func (*sessionCmd) Synopsis() string { return "manage the boats from an interactive menu" }
func (*sessionCmd) Usage() string {
	return `marina session [<file>]

  Loads the boat file, then reads menu choices from the standard input:

    (I)nventory  lists the boats sorted by name
    (A)dd        adds a boat from a line in the boat file format
    (R)emove     removes a boat by name
    (P)ayment    records a payment for a boat
    (M)onth      bills every boat its monthly charge
    e(X)it       saves the boat file and exits

  The boat file is also saved at the end of the input.
  <file> defaults to the -boats-file flag.
`
}

func (*sessionCmd) SetFlags(f *flag.FlagSet) {}

func (*sessionCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() > 1 {
		fmt.Fprintf(os.Stderr, "Error: too many arguments, expected at most one boat file\n")
		return subcommands.ExitUsageError
	}
	cfg, err := settings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if f.NArg() == 1 {
		cfg.BoatsFile = f.Arg(0)
	}

	inv, err := marina.LoadInventory(cfg.BoatsFile, inventoryOptions(cfg)...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	s := &Session{Inventory: inv, In: os.Stdin, Out: os.Stdout}
	runErr := s.Run()
	if err := marina.SaveInventory(cfg.BoatsFile, inv); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error reading input: %v\n", runErr)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
