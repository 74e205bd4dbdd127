package cmd

import (
	"errors"
	"fmt"
	"log"
	"os"
	"os/exec"
	"strconv"

	"github.com/etnz/marina/config"
)

// Registered reports whether name is a subcommand of marina, builtin ones included.
func Registered(name string) bool {
	switch name {
	case "help", "flags", "commands":
		return true
	}
	for _, cmd := range commands {
		if cmd.Name() == name {
			return true
		}
	}
	return false
}

// RunExtension attempts to find and execute an external marina-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found or executed.
//
// The extension receives the settings in the same environment variables that
// configure marina.
func RunExtension(subcommand string, args []string) (bool, int) {
	externalCmdName := "marina-" + subcommand

	lp, err := exec.LookPath(externalCmdName)
	if err != nil {
		log.Printf("External command %q not found in PATH: %v", externalCmdName, err)
		return false, 0
	}

	cfg, err := settings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return true, 1
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = append(os.Environ(),
		config.EnvBoatsFile+"="+cfg.BoatsFile,
		config.EnvCapacity+"="+strconv.Itoa(cfg.Capacity),
		config.EnvStrict+"="+strconv.FormatBool(cfg.Strict),
		config.EnvCurrency+"="+cfg.Currency,
	)

	if err := cmd.Run(); err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			return true, exitError.ExitCode()
		}
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", externalCmdName, err)
		return true, 1
	}
	return true, 0
}
