package token_test

import (
	"testing"

	"github.com/gophlox/glox/pkg/token"
)

func TestLookupIdentKeywords(t *testing.T) {
	cases := map[string]token.Type{
		"and":    token.AND,
		"class":  token.CLASS,
		"else":   token.ELSE,
		"false":  token.FALSE,
		"for":    token.FOR,
		"fun":    token.FUN,
		"if":     token.IF,
		"nil":    token.NIL,
		"or":     token.OR,
		"print":  token.PRINT,
		"return": token.RETURN,
		"super":  token.SUPER,
		"this":   token.THIS,
		"true":   token.TRUE,
		"var":    token.VAR,
		"while":  token.WHILE,
	}

	for lexeme, want := range cases {
		if got := token.LookupIdent(lexeme); got != want {
			t.Errorf("LookupIdent(%q) = %v, want %v", lexeme, got, want)
		}
	}
}

func TestLookupIdentIsCaseSensitive(t *testing.T) {
	// Unlike DWScript, this language's keywords are case-sensitive:
	// "And", "AND", "Var" etc. are plain identifiers, not keywords.
	for _, lexeme := range []string{"And", "AND", "Var", "VAR", "Print", "True"} {
		if got := token.LookupIdent(lexeme); got != token.IDENT {
			t.Errorf("LookupIdent(%q) = %v, want IDENT", lexeme, got)
		}
	}
}

func TestLookupIdentPlainIdentifier(t *testing.T) {
	if got := token.LookupIdent("counter"); got != token.IDENT {
		t.Errorf("LookupIdent(%q) = %v, want IDENT", "counter", got)
	}
}

func TestTypeStringKnownAndUnknown(t *testing.T) {
	if token.PLUS.String() != "PLUS" {
		t.Errorf("PLUS.String() = %q, want %q", token.PLUS.String(), "PLUS")
	}
	if got := token.Type(9999).String(); got == "" {
		t.Errorf("unknown Type.String() returned empty string")
	}
}
