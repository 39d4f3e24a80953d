package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gophlox/glox/internal/ast"
	"github.com/gophlox/glox/internal/lexer"
	"github.com/gophlox/glox/internal/parser"
	"github.com/gophlox/glox/pkg/printer"
)

var parseDumpAST bool

var parseCmd = &cobra.Command{
	Use:   "parse <path>",
	Short: "Parse a single expression and print its canonical form",
	Long: `Parse a single Lox expression and print it in canonical
S-expression form: (group E) for a parenthesized expression, (op L R) for
a binary operator, (op R) for a unary one, and literals in their
canonical form.`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().BoolVar(&parseDumpAST, "dump-ast", cfg.DumpAST, "dump the full AST structure instead of the canonical form")
}

func runParse(_ *cobra.Command, args []string) error {
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

	if parseDumpAST {
		fmt.Println(printer.DumpAST(expr.(ast.Node)))
		return nil
	}

	fmt.Println(printer.Expression(expr))
	return nil
}
