package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gophlox/glox/internal/lexer"
	"github.com/gophlox/glox/pkg/printer"
	"github.com/gophlox/glox/pkg/token"
)

var tokenizeJSON bool

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize <path>",
	Short: "Print the token stream for a Lox source file",
	Long: `Tokenize a Lox source file and print one line per token:

  <KIND> <lexeme> <literal>

<literal> is "null" for tokens carrying no value, the raw contents for
strings, and a canonical decimal for numbers.`,
	Args: cobra.ExactArgs(1),
	RunE: runTokenize,
}

func init() {
	rootCmd.AddCommand(tokenizeCmd)
	tokenizeCmd.Flags().BoolVar(&tokenizeJSON, "json", cfg.JSON, "emit the token stream as a JSON array")
}

func runTokenize(_ *cobra.Command, args []string) error {
	src, err := loadSource(args[0])
	if err != nil {
		return exitErrorf(70, "%s", err)
	}

	l := lexer.New(src)
	var tokens []token.Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == token.EOF {
			break
		}
	}

	if tokenizeJSON {
		out, err := printer.TokensJSON(tokens)
		if err != nil {
			return exitErrorf(70, "failed to render tokens as JSON: %s", err)
		}
		fmt.Println(string(out))
	} else {
		for _, tok := range tokens {
			fmt.Println(printer.Token(tok))
		}
	}

	if l.HadError() {
		for _, lerr := range l.Errors() {
			fmt.Fprintln(os.Stderr, lerr)
		}
		return exitErrorf(65, "tokenizing failed with %d error(s)", len(l.Errors()))
	}

	return nil
}
