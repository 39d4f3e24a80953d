// Command glox is a tree-walking interpreter for the Lox language: it
// tokenizes, parses, and evaluates Lox source through the tokenize,
// parse, evaluate, and run subcommands.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/gophlox/glox/cmd/glox/cmd"
)

func main() {
	os.Exit(run())
}

// run executes the root command and returns the process exit code,
// factored out of main so the testscript-driven CLI tests in cmd_test.go
// can invoke it in-process without calling os.Exit themselves.
func run() int {
	err := cmd.Execute()
	if err == nil {
		return 0
	}

	var exitErr *cmd.ExitError
	if errors.As(err, &exitErr) {
		// Subcommands already write their own diagnostics to stderr in the
		// exact format SPEC_FULL.md §6/§7 specifies; ExitError only carries
		// the process exit code back to main.
		return exitErr.Code
	}

	// An error cobra itself produced (unknown command, bad flag) rather than
	// one of our RunE handlers.
	fmt.Fprintln(os.Stderr, err)
	return 1
}
