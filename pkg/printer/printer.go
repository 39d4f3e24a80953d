// Package printer renders tokens, parsed expressions, and runtime values
// the way the `tokenize`, `parse`, and `evaluate` CLI subcommands need,
// keeping internal/ast and internal/lexer presentation-agnostic.
package printer

import (
	"fmt"
	"strconv"

	"github.com/gophlox/glox/pkg/token"
)

// Token renders one token as `<KIND> <lexeme> <literal>`, the line format
// `tokenize` writes to stdout. <literal> is "null" for tokens that carry no
// value, the raw string contents for STRING, and the canonical decimal
// form (always at least one fractional digit) for NUMBER.
func Token(tok token.Token) string {
	return fmt.Sprintf("%s %s %s", tok.Type, tok.Lexeme, TokenLiteral(tok))
}

// TokenLiteral renders just the <literal> field of Token's output.
func TokenLiteral(tok token.Token) string {
	switch tok.Type {
	case token.STRING:
		s, _ := tok.Literal.(string)
		return s
	case token.NUMBER:
		n, _ := tok.Literal.(float64)
		return CanonicalNumber(n, tok.NumDecimals)
	default:
		return "null"
	}
}

// CanonicalNumber renders n with at least one fractional digit, using
// decimals (the digit count recorded at lex time) when that is larger than
// the single digit a bare integer would need — matching the reference
// lexer's number-literal round-tripping rule (SPEC_FULL.md §6/§8).
func CanonicalNumber(n float64, decimals int) string {
	if decimals < 1 {
		decimals = 1
	}
	return strconv.FormatFloat(n, 'f', decimals, 64)
}

// Value renders a plain value the way `print` and `evaluate` do: no forced
// decimal point on integral numbers, no quotes around strings. Both
// runtime.Value and ast.Expression satisfy fmt.Stringer, so it accepts
// either; the CLI itself calls the value's String method directly.
func Value(v fmt.Stringer) string {
	return v.String()
}
