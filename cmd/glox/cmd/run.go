package cmd

import (
	"fmt"
	"os"

	"github.com/maruel/natural"
	"github.com/spf13/cobra"

	"github.com/gophlox/glox/internal/clog"
	stderrors "github.com/gophlox/glox/internal/errors"
	"github.com/gophlox/glox/internal/interp/evaluator"
	"github.com/gophlox/glox/internal/lexer"
	"github.com/gophlox/glox/internal/parser"
	"github.com/gophlox/glox/pkg/token"
)

var (
	runTrace   bool
	runDumpEnv bool
)

var runCmd = &cobra.Command{
	Use:   "run <path>",
	Short: "Execute a Lox program",
	Long: `Parse a Lox source file as a statement list and execute it
sequentially against a fresh global scope. The global "clock" function is
predefined. Program output comes only from print statements.`,
	Args: cobra.ExactArgs(1),
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().BoolVar(&runTrace, "trace", cfg.Trace, "log each top-level statement's evaluation")
	runCmd.Flags().BoolVar(&runDumpEnv, "dump-env", cfg.DumpEnv, "print the final global environment's bindings")
}

func runRun(_ *cobra.Command, args []string) error {
	src, err := loadSource(args[0])
	if err != nil {
		return exitErrorf(70, "%s", err)
	}

	p := parser.New(lexer.New(src))
	program := p.ParseProgram()
	if p.HadError() {
		for _, perr := range p.Errors() {
			fmt.Fprintln(os.Stderr, perr)
		}
		return exitErrorf(65, "parsing failed with %d error(s)", len(p.Errors()))
	}

	interp := evaluator.New(os.Stdout)

	if runTrace {
		// --trace enables logging on its own; --verbose only raises the
		// level other diagnostics might use, it is not a gate on --trace.
		log := clog.New(os.Stderr, true)
		interp.Trace = func(pos token.Position, stack stderrors.StackTrace) {
			log.Debug("evaluating statement", "line", pos.Line, "column", pos.Column, "depth", stack.Depth())
		}
	}

	if runErr := interp.Interpret(program); runErr != nil {
		fmt.Fprintln(os.Stderr, runErr)
		return exitErrorf(stderrors.ExitCode(runErr), "execution failed")
	}

	if runDumpEnv {
		names := interp.Globals.Names()
		natural.Sort(names)
		for _, name := range names {
			value, _ := interp.Globals.Get(name)
			fmt.Printf("%s = %s\n", name, value.String())
		}
	}

	return nil
}
