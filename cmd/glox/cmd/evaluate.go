package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gophlox/glox/internal/interp/evaluator"
	"github.com/gophlox/glox/internal/lexer"
	"github.com/gophlox/glox/internal/parser"
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate <path>",
	Short: "Parse and evaluate a single expression, printing its value",
	Args:  cobra.ExactArgs(1),
	RunE:  runEvaluate,
}

func init() {
	rootCmd.AddCommand(evaluateCmd)
}

func runEvaluate(_ *cobra.Command, args []string) error {
	src, err := loadSource(args[0])
	if err != nil {
		return exitErrorf(70, "%s", err)
	}

	p := parser.New(lexer.New(src))
	expr := p.ParseExpression()
	if p.HadError() {
		for _, perr := range p.Errors() {
			fmt.Fprintln(os.Stderr, perr)
		}
		return exitErrorf(65, "parsing failed with %d error(s)", len(p.Errors()))
	}

	interp := evaluator.New(nil)
	value, evalErr := interp.EvalExpression(expr)
	if evalErr != nil {
		fmt.Fprintln(os.Stderr, evalErr)
		return exitErrorf(70, "evaluation failed")
	}

	fmt.Println(value.String())
	return nil
}
