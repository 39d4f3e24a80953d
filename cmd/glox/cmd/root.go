// Package cmd wires glox's four subcommands — tokenize, parse, evaluate,
// run — onto a shared cobra root command.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gophlox/glox/internal/clog"
	"github.com/gophlox/glox/internal/config"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// cfg holds the `.glox.yaml` defaults, loaded once at startup and
// overridden by any flag the user passes explicitly.
var cfg = mustLoadConfig()

var verbose bool

// diagLog carries the general-purpose --verbose diagnostic logger (source
// loading, config resolution); it is distinct from --trace's evaluator
// logger in run.go, which logs statement execution regardless of
// --verbose. Replaced in PersistentPreRunE once flags are parsed.
var diagLog = clog.Discard()

var rootCmd = &cobra.Command{
	Use:   "glox",
	Short: "A tree-walking interpreter for the Lox language",
	Long: `glox tokenizes, parses, and evaluates Lox programs.

It is a small recursive-descent interpreter: a lexer produces a token
stream, a parser builds an AST from it, and a tree-walking evaluator
executes that AST directly against a chain of lexical scopes.`,
	Version:       Version,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		diagLog = clog.New(os.Stderr, verbose)
		return nil
	},
}

// Execute runs the root command; the caller is responsible for mapping
// any returned *ExitError to the right process exit code.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose diagnostic logging")
}

func mustLoadConfig() *config.Config {
	c, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to load %s: %v\n", config.FileName, err)
		os.Exit(70)
	}
	return c
}
