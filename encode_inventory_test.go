package marina

import (
	"bytes"
	"errors"
	"log"
	"os"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/google/go-cmp/cmp"
)

func TestDecodeInventory(t *testing.T) {
	stream := `
Serenity,25,slip,3,150.00
Big Brother,20,land,B,120.00

broken line
Sea Breeze,28,trailor,ABC123,0.00
Mirage,30,storage,42,99.99
`
	inv := NewInventory()
	skipped, err := inv.Load(strings.NewReader(stream))
	if err != nil {
		t.Fatalf("Load() returned an unexpected error: %v", err)
	}
	if skipped != 1 {
		t.Errorf("Load() skipped %d lines, want 1", skipped)
	}
	want := []string{"Serenity", "Big Brother", "Sea Breeze", "Mirage"}
	if diff := cmp.Diff(want, names(inv.Boats())); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeInventory_CRLF(t *testing.T) {
	inv, err := DecodeInventory(strings.NewReader("Serenity,25,slip,3,150.00\r\nMirage,30,storage,42,99.99\r\n"))
	if err != nil {
		t.Fatalf("DecodeInventory() returned an unexpected error: %v", err)
	}
	b, ok := inv.Boat("Serenity")
	if !ok || !b.Owed.Equal(USD(150)) {
		t.Errorf("Boat(Serenity) = %v, %v", b, ok)
	}
}

func TestDecodeInventory_LongLine(t *testing.T) {
	long := strings.Repeat("x", 70000)
	stream := "Serenity,25,slip,3,150.00\n" + long + ",10,slip,1,0.00\nMirage,30,storage,42,99.99\n"
	inv, err := DecodeInventory(strings.NewReader(stream))
	if err != nil {
		t.Fatalf("DecodeInventory() returned an unexpected error: %v", err)
	}
	want := []string{"Serenity", long[:MaxNameLen], "Mirage"}
	if diff := cmp.Diff(want, names(inv.Boats())); diff != "" {
		t.Errorf("DecodeInventory() mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeInventory_BeyondCapacity(t *testing.T) {
	var logs bytes.Buffer
	log.SetOutput(&logs)
	defer log.SetOutput(os.Stderr)

	stream := "A,1,slip,1,0\nB,1,slip,2,0\nC,1,slip,3,0\n"
	inv := NewInventory(WithCapacity(2))
	skipped, err := inv.Load(strings.NewReader(stream))
	if err != nil {
		t.Fatalf("Load() returned an unexpected error: %v", err)
	}
	if skipped != 1 {
		t.Errorf("Load() skipped %d lines, want 1", skipped)
	}
	if diff := cmp.Diff([]string{"A", "B"}, names(inv.Boats())); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
	if logs.Len() != 0 {
		t.Errorf("Load() logged boats beyond capacity: %s", logs.String())
	}
}

func TestDecodeInventory_LogsSkippedLines(t *testing.T) {
	var logs bytes.Buffer
	log.SetOutput(&logs)
	defer log.SetOutput(os.Stderr)

	if _, err := DecodeInventory(strings.NewReader("A,1,slip,1,0\nbroken\n")); err != nil {
		t.Fatalf("DecodeInventory() returned an unexpected error: %v", err)
	}
	if !strings.Contains(logs.String(), "skipping line 2") {
		t.Errorf("Load() log = %q, want a line about line 2", logs.String())
	}
}

func TestDecodeInventory_ReadError(t *testing.T) {
	boom := errors.New("boom")
	_, err := DecodeInventory(iotest.ErrReader(boom))
	if !errors.Is(err, boom) {
		t.Errorf("DecodeInventory() error = %v, want %v", err, boom)
	}
}

func TestEncodeInventory(t *testing.T) {
	// Lines are normalized: lowercase category, two decimal balance.
	stream := "Serenity,25,SLIP,3,150\nBig Brother,20,Land,B,120.5\nSea Breeze,28,trailor,ABC123,0\n"
	want := "Serenity,25,slip,3,150.00\nBig Brother,20,land,B,120.50\nSea Breeze,28,trailor,ABC123,0.00\n"

	inv, err := DecodeInventory(strings.NewReader(stream))
	if err != nil {
		t.Fatalf("DecodeInventory() returned an unexpected error: %v", err)
	}
	if got := encoded(t, inv); got != want {
		t.Errorf("EncodeInventory() produced incorrect output.\nGot:\n%s\nWant:\n%s", got, want)
	}
}

func TestEncodeInventory_WriteError(t *testing.T) {
	inv := newTestInventory(t, nil, "Serenity,25,slip,3,150.00")
	if err := EncodeInventory(failingWriter{}, inv); err == nil {
		t.Errorf("EncodeInventory() to a failing writer succeeded, want an error")
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }
