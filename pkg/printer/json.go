package printer

import (
	"fmt"

	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"

	"github.com/gophlox/glox/pkg/token"
)

// TokensJSON renders tokens as an indented JSON array, one object per
// token with "type", "lexeme", and "literal" keys, backing `tokenize
// --json`. Built incrementally with sjson.SetBytes (rather than
// marshaling a Go struct) since the token stream is write-only output, not
// a structure this package ever needs to read back.
func TokensJSON(tokens []token.Token) ([]byte, error) {
	buf := []byte("[]")

	for i, tok := range tokens {
		prefix := fmt.Sprintf("%d.", i)
		var err error
		buf, err = sjson.SetBytes(buf, prefix+"type", tok.Type.String())
		if err != nil {
			return nil, err
		}
		buf, err = sjson.SetBytes(buf, prefix+"lexeme", tok.Lexeme)
		if err != nil {
			return nil, err
		}
		buf, err = sjson.SetBytes(buf, prefix+"literal", tokenLiteralJSONValue(tok))
		if err != nil {
			return nil, err
		}
	}

	return pretty.Pretty(buf), nil
}

// tokenLiteralJSONValue returns the Go value sjson should encode for a
// token's literal field: the raw string for STRING, the float for NUMBER,
// and nil (encoded as JSON null) for everything else.
func tokenLiteralJSONValue(tok token.Token) any {
	switch tok.Type {
	case token.STRING:
		s, _ := tok.Literal.(string)
		return s
	case token.NUMBER:
		n, _ := tok.Literal.(float64)
		return n
	default:
		return nil
	}
}
