package cmd

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// writeExtension writes an executable marina-<name> script in a directory
// that becomes the PATH for the test.
func writeExtension(t *testing.T, name, script string) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("extensions are shell scripts in this test")
	}
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "marina-"+name), []byte("#!/bin/sh\n"+script), 0755); err != nil {
		t.Fatalf("Failed to write extension: %v", err)
	}
	t.Setenv("PATH", dir)
}

func TestRunExtension(t *testing.T) {
	path := createTempBoats(t, serenity)
	writeExtension(t, "hello", `echo "$1 $MARINA_BOATS_FILE $MARINA_CAPACITY $MARINA_STRICT $MARINA_CURRENCY"`)

	var found bool
	var code int
	got := captureStdout(t, func() { found, code = RunExtension("hello", []string{"world"}) })
	if !found || code != 0 {
		t.Fatalf("RunExtension() = %v, %d, want true, 0", found, code)
	}
	want := "world " + path + " 120 false USD"
	if strings.TrimSpace(got) != want {
		t.Errorf("extension output mismatch.\nGot:\n%s\nWant:\n%s", got, want)
	}
}

func TestRunExtension_ExitCode(t *testing.T) {
	createTempBoats(t, serenity)
	writeExtension(t, "fail", "exit 3\n")

	found, code := RunExtension("fail", nil)
	if !found || code != 3 {
		t.Errorf("RunExtension() = %v, %d, want true, 3", found, code)
	}
}

func TestRunExtension_NotFound(t *testing.T) {
	createTempBoats(t, serenity)
	t.Setenv("PATH", t.TempDir())

	if found, _ := RunExtension("nope", nil); found {
		t.Errorf("RunExtension(nope) found an extension")
	}
}

func TestRegistered(t *testing.T) {
	for _, name := range []string{"session", "pay", "topic", "help"} {
		if !Registered(name) {
			t.Errorf("Registered(%q) = false, want true", name)
		}
	}
	if Registered("hello") {
		t.Errorf("Registered(hello) = true, want false")
	}
}
