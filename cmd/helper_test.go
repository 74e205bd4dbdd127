package cmd

import (
	"context"
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/etnz/marina/config"
	"github.com/google/subcommands"
)

// createTempBoats creates a temporary boat file and makes it the application
// boat file for the duration of the test.
func createTempBoats(t *testing.T, content string) string {
	t.Helper()
	for _, key := range []string{config.EnvBoatsFile, config.EnvCapacity, config.EnvStrict, config.EnvCurrency} {
		t.Setenv(key, "")
	}

	path := filepath.Join(t.TempDir(), "boats.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write temp file: %v", err)
	}

	oldBoatsFile := boatsFile
	boatsFile = &path
	t.Cleanup(func() { boatsFile = oldBoatsFile })
	return path
}

// readFile returns the content of a file.
func readFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read %q: %v", path, err)
	}
	return string(content)
}

// run parses args for the command and executes it.
func run(t *testing.T, cmd subcommands.Command, args ...string) subcommands.ExitStatus {
	t.Helper()
	f := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	cmd.SetFlags(f)
	if err := f.Parse(args); err != nil {
		t.Fatalf("invalid arguments %q: %v", args, err)
	}
	return cmd.Execute(context.Background(), f)
}

// captureStdout returns what fn writes to the standard output.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	oldStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create pipe: %v", err)
	}
	os.Stdout = w
	defer func() { os.Stdout = oldStdout }()

	fn()

	w.Close()
	out, _ := io.ReadAll(r)
	return string(out)
}
