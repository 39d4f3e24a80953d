package parser

import (
	"fmt"

	"github.com/gophlox/glox/pkg/token"
)

// ParseError is a structured parse diagnostic with position information.
// The CLI renders it as `[line L] Error<where>: <message>`, matching the
// lexer's `[line L] Error: <message>` family (see SPEC_FULL.md §6).
type ParseError struct {
	Message string
	Where   string // e.g. "at ')'" or "at end"; empty if not applicable
	Pos     token.Position
}

func (e *ParseError) Error() string {
	if e.Where == "" {
		return fmt.Sprintf("[line %d] Error: %s", e.Pos.Line, e.Message)
	}
	return fmt.Sprintf("[line %d] Error %s: %s", e.Pos.Line, e.Where, e.Message)
}

func newParseError(tok token.Token, message string) *ParseError {
	where := fmt.Sprintf("at '%s'", tok.Lexeme)
	if tok.Type == token.EOF {
		where = "at end"
	}
	return &ParseError{Message: message, Where: where, Pos: tok.Pos}
}
