package printer

import (
	"fmt"
	"strings"

	"github.com/kr/pretty"

	"github.com/gophlox/glox/internal/ast"
)

// DumpAST renders node as an indented structural tree, one line per node
// with its immediate scalar fields rendered via kr/pretty, backing `parse
// --dump-ast`. This is a type-switch-based recursive dumper in the same
// shape as the reference codebase's dumpASTNode, adapted to this
// language's smaller node set.
func DumpAST(node ast.Node) string {
	var sb strings.Builder
	dumpNode(&sb, node, 0)
	return sb.String()
}

func dumpNode(sb *strings.Builder, node ast.Node, indent int) {
	pad := strings.Repeat("  ", indent)

	switch n := node.(type) {
	case *ast.Program:
		fmt.Fprintf(sb, "%sProgram (%d statements)\n", pad, len(n.Statements))
		for _, stmt := range n.Statements {
			dumpNode(sb, stmt, indent+1)
		}

	case *ast.ExpressionStmt:
		fmt.Fprintf(sb, "%sExpressionStmt\n", pad)
		dumpNode(sb, n.Expr, indent+1)

	case *ast.Print:
		fmt.Fprintf(sb, "%sPrint\n", pad)
		dumpNode(sb, n.Expr, indent+1)

	case *ast.Var:
		fmt.Fprintf(sb, "%sVar %s\n", pad, pretty.Sprint(n.Name.Lexeme))
		if n.Initializer != nil {
			dumpNode(sb, n.Initializer, indent+1)
		}

	case *ast.Block:
		fmt.Fprintf(sb, "%sBlock (%d statements)\n", pad, len(n.Statements))
		for _, stmt := range n.Statements {
			dumpNode(sb, stmt, indent+1)
		}

	case *ast.If:
		fmt.Fprintf(sb, "%sIf\n", pad)
		dumpNode(sb, n.Condition, indent+1)
		dumpNode(sb, n.ThenBranch, indent+1)
		if n.ElseBranch != nil {
			dumpNode(sb, n.ElseBranch, indent+1)
		}

	case *ast.While:
		fmt.Fprintf(sb, "%sWhile\n", pad)
		dumpNode(sb, n.Condition, indent+1)
		dumpNode(sb, n.Body, indent+1)

	case *ast.Function:
		params := make([]string, len(n.Params))
		for i, p := range n.Params {
			params[i] = p.Lexeme
		}
		fmt.Fprintf(sb, "%sFunction %s(%s)\n", pad, n.Name.Lexeme, strings.Join(params, ", "))
		for _, stmt := range n.Body {
			dumpNode(sb, stmt, indent+1)
		}

	case *ast.Return:
		fmt.Fprintf(sb, "%sReturn\n", pad)
		if n.Value != nil {
			dumpNode(sb, n.Value, indent+1)
		}

	case *ast.Binary:
		fmt.Fprintf(sb, "%sBinary %s\n", pad, pretty.Sprint(n.Operator.Lexeme))
		dumpNode(sb, n.Left, indent+1)
		dumpNode(sb, n.Right, indent+1)

	case *ast.Logical:
		fmt.Fprintf(sb, "%sLogical %s\n", pad, pretty.Sprint(n.Operator.Lexeme))
		dumpNode(sb, n.Left, indent+1)
		dumpNode(sb, n.Right, indent+1)

	case *ast.Unary:
		fmt.Fprintf(sb, "%sUnary %s\n", pad, pretty.Sprint(n.Operator.Lexeme))
		dumpNode(sb, n.Right, indent+1)

	case *ast.Grouping:
		fmt.Fprintf(sb, "%sGrouping\n", pad)
		dumpNode(sb, n.Expression, indent+1)

	case *ast.Call:
		fmt.Fprintf(sb, "%sCall (%d args)\n", pad, len(n.Args))
		dumpNode(sb, n.Callee, indent+1)
		for _, arg := range n.Args {
			dumpNode(sb, arg, indent+1)
		}

	case *ast.Assign:
		fmt.Fprintf(sb, "%sAssign %s\n", pad, pretty.Sprint(n.Name.Lexeme))
		dumpNode(sb, n.Value, indent+1)

	case *ast.Variable:
		fmt.Fprintf(sb, "%sVariable %s\n", pad, pretty.Sprint(n.Name.Lexeme))

	case *ast.Literal:
		fmt.Fprintf(sb, "%sLiteral %s\n", pad, pretty.Sprint(n.Value))

	default:
		fmt.Fprintf(sb, "%s%T: %s\n", pad, node, pretty.Sprint(node))
	}
}
