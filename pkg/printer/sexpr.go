package printer

import (
	"fmt"
	"strings"

	"github.com/gophlox/glox/internal/ast"
	"github.com/gophlox/glox/pkg/token"
)

// Expression renders expr in the canonical S-expression form the `parse`
// subcommand prints: `(group E)` for a parenthesized expression, `(op L
// R)` for binary/logical, `(op R)` for unary, and literals in their
// canonical form (true/false/nil, raw string contents, numbers with at
// least one fractional digit). It mirrors ast.Expression.String() except
// for number literals, where that method's bare fmt.Sprintf("%v", v)
// would drop the forced decimal point CanonicalNumber guarantees.
func Expression(expr ast.Expression) string {
	switch e := expr.(type) {
	case *ast.Literal:
		return literalString(e)
	case *ast.Grouping:
		return fmt.Sprintf("(group %s)", Expression(e.Expression))
	case *ast.Unary:
		return fmt.Sprintf("(%s %s)", e.Operator.Lexeme, Expression(e.Right))
	case *ast.Binary:
		return fmt.Sprintf("(%s %s %s)", e.Operator.Lexeme, Expression(e.Left), Expression(e.Right))
	case *ast.Logical:
		return fmt.Sprintf("(%s %s %s)", e.Operator.Lexeme, Expression(e.Left), Expression(e.Right))
	case *ast.Variable:
		return e.Name.Lexeme
	case *ast.Assign:
		return fmt.Sprintf("(= %s %s)", e.Name.Lexeme, Expression(e.Value))
	case *ast.Call:
		args := make([]string, len(e.Args))
		for i, a := range e.Args {
			args[i] = Expression(a)
		}
		return fmt.Sprintf("(call %s %s)", Expression(e.Callee), strings.Join(args, " "))
	default:
		return expr.String()
	}
}

func literalString(lit *ast.Literal) string {
	switch v := lit.Value.(type) {
	case nil:
		return "nil"
	case bool:
		return fmt.Sprintf("%v", v)
	case string:
		return v
	case float64:
		return CanonicalNumber(v, numDecimalsOf(lit.Token))
	default:
		return fmt.Sprintf("%v", v)
	}
}

func numDecimalsOf(tok token.Token) int {
	return tok.NumDecimals
}
