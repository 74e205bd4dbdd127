package cmd

import (
	"strings"
	"testing"

	"github.com/etnz/marina"
	"github.com/etnz/marina/renderer"
)

const (
	banner = "Welcome to the Boat Management System\n-------------------------------------\n"
	bye    = "\nExiting the Boat Management System\n"
)

func newSession(t *testing.T, input string, opts ...marina.Option) (*Session, *strings.Builder) {
	t.Helper()
	inv, err := marina.DecodeInventory(strings.NewReader("Serenity,25,slip,3,150.00\n"), opts...)
	if err != nil {
		t.Fatalf("DecodeInventory() failed: %v", err)
	}
	var out strings.Builder
	return &Session{Inventory: inv, In: strings.NewReader(input), Out: &out}, &out
}

func TestSession_AddAndList(t *testing.T) {
	s, out := newSession(t, "a\nBig Brother,20,land,B,120.00\ni\nx\n")
	if err := s.Run(); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	if s.Inventory.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", s.Inventory.Len())
	}
	listing := renderer.Listing(s.Inventory.Sorted())
	if !strings.HasPrefix(listing, "Big Brother") {
		t.Errorf("listing is not sorted by name:\n%s", listing)
	}
	want := banner + menuPrompt + boatPrompt + menuPrompt + listing + menuPrompt + bye
	if got := out.String(); got != want {
		t.Errorf("Run() output mismatch.\nGot:\n%q\nWant:\n%q", got, want)
	}
}

func TestSession_InvalidOption(t *testing.T) {
	s, out := newSession(t, "z\n\nX\n")
	if err := s.Run(); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	want := banner +
		menuPrompt + "Invalid option z\n" +
		menuPrompt + "Invalid option \n\n" +
		menuPrompt + bye
	if got := out.String(); got != want {
		t.Errorf("Run() output mismatch.\nGot:\n%q\nWant:\n%q", got, want)
	}
}

func TestSession_PaymentsAndMonth(t *testing.T) {
	// The input ends without an exit choice.
	s, out := newSession(t, "r\nNobody\np\nNobody\np\nserenity\n1000\nP\nSERENITY\n50\nm\n")
	if err := s.Run(); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	want := banner +
		menuPrompt + namePrompt + "No boat with that name\n" +
		menuPrompt + namePrompt + "No boat with that name\n" +
		menuPrompt + namePrompt + amountPrompt + "That is more than the amount owed, $150.00\n" +
		menuPrompt + namePrompt + amountPrompt +
		menuPrompt +
		menuPrompt + bye
	if got := out.String(); got != want {
		t.Errorf("Run() output mismatch.\nGot:\n%q\nWant:\n%q", got, want)
	}

	// 150 - 50 + 25 * 12.50
	b, _ := s.Inventory.Boat("Serenity")
	if got := b.Owed.Fixed(); got != "412.50" {
		t.Errorf("Serenity owes %s, want 412.50", got)
	}
}

func TestSession_Full(t *testing.T) {
	s, out := newSession(t, "a\nMirage,30,storage,42,0\nx\n", marina.WithCapacity(1))
	if err := s.Run(); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if !strings.Contains(out.String(), boatPrompt+"Boat inventory full. Cannot add more boats.\n") {
		t.Errorf("Run() did not report the full inventory:\n%s", out.String())
	}
	if s.Inventory.Len() != 1 {
		t.Errorf("Len() = %d, want 1", s.Inventory.Len())
	}
}

func TestSession_LongLine(t *testing.T) {
	long := strings.Repeat("x", 70000)
	s, out := newSession(t, "a\n"+long+",10,slip,1,0.00\ni\nx\n")
	if err := s.Run(); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if s.Inventory.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Inventory.Len())
	}
	if !strings.HasSuffix(out.String(), bye) {
		t.Errorf("Run() did not reach the exit choice:\n%s", out.String()[max(0, out.Len()-200):])
	}
}

func TestSession_Remove(t *testing.T) {
	s, _ := newSession(t, "r\nserenity\nx\n")
	if err := s.Run(); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if s.Inventory.Len() != 0 {
		t.Errorf("Len() = %d, want 0", s.Inventory.Len())
	}
}
