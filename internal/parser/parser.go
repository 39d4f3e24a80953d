// Package parser implements a recursive-descent parser over the grammar in
// SPEC_FULL.md §4.3: expressions with standard precedence climbing,
// statements, and `for`-loop desugaring into `while`.
package parser

import (
	"github.com/gophlox/glox/internal/ast"
	"github.com/gophlox/glox/internal/lexer"
	"github.com/gophlox/glox/pkg/token"
)

const (
	maxParams = 250
	maxArgs   = 255
)

// Parser consumes tokens from a lexer.Lexer one at a time, maintaining a
// single token of lookahead (cur/peek), and accumulates *ParseError
// diagnostics rather than stopping at the first one.
type Parser struct {
	l *lexer.Lexer

	cur  token.Token
	peek token.Token

	errors []*ParseError
}

// New creates a Parser over l, priming the cur/peek lookahead pair.
func New(l *lexer.Lexer) *Parser {
	p := &Parser{l: l}
	p.cur = p.l.NextToken()
	p.peek = p.l.NextToken()
	return p
}

// Errors returns every parse diagnostic accumulated so far.
func (p *Parser) Errors() []*ParseError {
	return p.errors
}

// HadError reports whether any parse error was recorded.
func (p *Parser) HadError() bool {
	return len(p.errors) > 0
}

func (p *Parser) advance() token.Token {
	prev := p.cur
	p.cur = p.peek
	p.peek = p.l.NextToken()
	return prev
}

func (p *Parser) check(typ token.Type) bool {
	return p.cur.Type == typ
}

// matchAny advances and returns true if the current token has one of the
// given types; otherwise the parser position is left unchanged.
func (p *Parser) matchAny(types ...token.Type) bool {
	for _, typ := range types {
		if p.check(typ) {
			p.advance()
			return true
		}
	}
	return false
}

// expect advances past the current token if it has the given type;
// otherwise it records a parse error and returns the zero Token.
func (p *Parser) expect(typ token.Type, message string) token.Token {
	if p.check(typ) {
		return p.advance()
	}
	p.errors = append(p.errors, newParseError(p.cur, message))
	return token.Token{}
}

func (p *Parser) errorAt(tok token.Token, message string) {
	p.errors = append(p.errors, newParseError(tok, message))
}

// ParseProgram parses the full token stream as a statement list, used by
// the `run` subcommand. Parsing continues past each error via synchronize
// so the CLI can report more than one diagnostic per invocation.
func (p *Parser) ParseProgram() *ast.Program {
	prog := &ast.Program{}
	for !p.check(token.EOF) {
		stmt := p.declaration()
		if stmt != nil {
			prog.Statements = append(prog.Statements, stmt)
		}
	}
	return prog
}

// ParseExpression parses a single expression, used by the `parse` and
// `evaluate` subcommands.
func (p *Parser) ParseExpression() ast.Expression {
	return p.expression()
}

// synchronize discards tokens until it finds a plausible statement
// boundary: just past a ';', or at a statement-starting keyword. A keyword
// at start (where the failed declaration began) does not count, so that
// recovery always moves past at least one token.
func (p *Parser) synchronize(start token.Position) {
	for !p.check(token.EOF) {
		if p.cur.Pos.Offset != start.Offset {
			switch p.cur.Type {
			case token.CLASS, token.FUN, token.VAR, token.FOR, token.IF, token.WHILE, token.PRINT, token.RETURN:
				return
			}
		}
		if p.advance().Type == token.SEMICOLON {
			return
		}
	}
}

// declaration parses a top-level or block-level declaration, recovering
// via synchronize if a parse error was recorded while parsing it.
func (p *Parser) declaration() ast.Statement {
	errCountBefore := len(p.errors)
	start := p.cur.Pos

	var stmt ast.Statement
	switch {
	case p.check(token.FUN):
		p.advance()
		stmt = p.functionDeclaration("function")
	case p.check(token.VAR):
		p.advance()
		stmt = p.varDeclaration()
	default:
		stmt = p.statement()
	}

	if len(p.errors) > errCountBefore {
		p.synchronize(start)
		return nil
	}
	return stmt
}

func (p *Parser) functionDeclaration(kind string) ast.Statement {
	name := p.expect(token.IDENT, "Expect "+kind+" name.")
	p.expect(token.LPAREN, "Expect '(' after "+kind+" name.")

	var params []token.Token
	if !p.check(token.RPAREN) {
		for {
			if len(params) >= maxParams {
				p.errorAt(p.cur, "Can't have more than 250 parameters.")
			}
			params = append(params, p.expect(token.IDENT, "Expect parameter name."))
			if !p.matchAny(token.COMMA) {
				break
			}
		}
	}
	p.expect(token.RPAREN, "Expect ')' after parameters.")

	p.expect(token.LBRACE, "Expect '{' before "+kind+" body.")
	body := p.blockStatements()

	return &ast.Function{Name: name, Params: params, Body: body}
}

func (p *Parser) varDeclaration() ast.Statement {
	name := p.expect(token.IDENT, "Expect variable name.")

	var initializer ast.Expression
	if p.matchAny(token.EQUAL) {
		initializer = p.expression()
	}
	p.expect(token.SEMICOLON, "Expect ';' after variable declaration.")
	return &ast.Var{Name: name, Initializer: initializer}
}

func (p *Parser) statement() ast.Statement {
	switch {
	case p.check(token.PRINT):
		return p.printStatement()
	case p.check(token.LBRACE):
		lbrace := p.advance()
		return &ast.Block{LBrace: lbrace, Statements: p.blockStatements()}
	case p.check(token.IF):
		return p.ifStatement()
	case p.check(token.WHILE):
		return p.whileStatement()
	case p.check(token.FOR):
		return p.forStatement()
	case p.check(token.RETURN):
		return p.returnStatement()
	default:
		return p.expressionStatement()
	}
}

func (p *Parser) printStatement() ast.Statement {
	keyword := p.advance()
	expr := p.expression()
	p.expect(token.SEMICOLON, "Expect ';' after value.")
	return &ast.Print{Keyword: keyword, Expr: expr}
}

func (p *Parser) expressionStatement() ast.Statement {
	expr := p.expression()
	p.expect(token.SEMICOLON, "Expect ';' after expression.")
	return &ast.ExpressionStmt{Expr: expr}
}

// blockStatements parses declarations until a closing '}', consuming it.
func (p *Parser) blockStatements() []ast.Statement {
	var stmts []ast.Statement
	for !p.check(token.RBRACE) && !p.check(token.EOF) {
		if stmt := p.declaration(); stmt != nil {
			stmts = append(stmts, stmt)
		}
	}
	p.expect(token.RBRACE, "Expect '}' after block.")
	return stmts
}

func (p *Parser) ifStatement() ast.Statement {
	keyword := p.advance()
	p.expect(token.LPAREN, "Expect '(' after 'if'.")
	cond := p.expression()
	p.expect(token.RPAREN, "Expect ')' after if condition.")

	thenBranch := p.statement()
	var elseBranch ast.Statement
	if p.matchAny(token.ELSE) {
		elseBranch = p.statement()
	}
	return &ast.If{Keyword: keyword, Condition: cond, ThenBranch: thenBranch, ElseBranch: elseBranch}
}

func (p *Parser) whileStatement() ast.Statement {
	keyword := p.advance()
	p.expect(token.LPAREN, "Expect '(' after 'while'.")
	cond := p.expression()
	p.expect(token.RPAREN, "Expect ')' after condition.")
	body := p.statement()
	return &ast.While{Keyword: keyword, Condition: cond, Body: body}
}

// forStatement desugars `for(init; cond; inc) body` at parse time into
// `{ init; while(cond) { body; inc; } }`, per SPEC_FULL.md §4.3. A missing
// condition becomes the literal `true`; a missing initializer or increment
// simply drops that phase.
func (p *Parser) forStatement() ast.Statement {
	keyword := p.advance()
	p.expect(token.LPAREN, "Expect '(' after 'for'.")

	var initializer ast.Statement
	switch {
	case p.matchAny(token.SEMICOLON):
		initializer = nil
	case p.check(token.VAR):
		p.advance()
		initializer = p.varDeclaration()
	default:
		initializer = p.expressionStatement()
	}

	var condition ast.Expression
	if !p.check(token.SEMICOLON) {
		condition = p.expression()
	}
	p.expect(token.SEMICOLON, "Expect ';' after loop condition.")

	var increment ast.Expression
	if !p.check(token.RPAREN) {
		increment = p.expression()
	}
	p.expect(token.RPAREN, "Expect ')' after for clauses.")

	body := p.statement()

	if increment != nil {
		body = &ast.Block{
			LBrace:     keyword,
			Statements: []ast.Statement{body, &ast.ExpressionStmt{Expr: increment}},
		}
	}

	if condition == nil {
		condition = &ast.Literal{Token: keyword, Value: true}
	}
	loop := ast.Statement(&ast.While{Keyword: keyword, Condition: condition, Body: body})

	if initializer != nil {
		loop = &ast.Block{LBrace: keyword, Statements: []ast.Statement{initializer, loop}}
	}
	return loop
}

func (p *Parser) returnStatement() ast.Statement {
	keyword := p.advance()
	var value ast.Expression
	if !p.check(token.SEMICOLON) {
		value = p.expression()
	}
	p.expect(token.SEMICOLON, "Expect ';' after return value.")
	return &ast.Return{Keyword: keyword, Value: value}
}

// ---- Expressions, by descending precedence ----

func (p *Parser) expression() ast.Expression {
	return p.assignment()
}

// assignment is right-associative: `a = b = c` parses as `a = (b = c)`.
// Its left-hand side must already have parsed as a Variable; any other
// target is a fatal parse error.
func (p *Parser) assignment() ast.Expression {
	expr := p.logicOr()

	if p.check(token.EQUAL) {
		equals := p.advance()
		value := p.assignment()

		if v, ok := expr.(*ast.Variable); ok {
			return &ast.Assign{Name: v.Name, Value: value}
		}
		p.errorAt(equals, "Invalid assignment target.")
		return expr
	}
	return expr
}

func (p *Parser) logicOr() ast.Expression {
	expr := p.logicAnd()
	for p.check(token.OR) {
		op := p.advance()
		right := p.logicAnd()
		expr = &ast.Logical{Left: expr, Operator: op, Right: right}
	}
	return expr
}

func (p *Parser) logicAnd() ast.Expression {
	expr := p.equality()
	for p.check(token.AND) {
		op := p.advance()
		right := p.equality()
		expr = &ast.Logical{Left: expr, Operator: op, Right: right}
	}
	return expr
}

func (p *Parser) equality() ast.Expression {
	expr := p.comparison()
	for p.check(token.BANG_EQUAL) || p.check(token.EQUAL_EQUAL) {
		op := p.advance()
		right := p.comparison()
		expr = &ast.Binary{Left: expr, Operator: op, Right: right}
	}
	return expr
}

func (p *Parser) comparison() ast.Expression {
	expr := p.term()
	for p.check(token.GREATER) || p.check(token.GREATER_EQUAL) || p.check(token.LESS) || p.check(token.LESS_EQUAL) {
		op := p.advance()
		right := p.term()
		expr = &ast.Binary{Left: expr, Operator: op, Right: right}
	}
	return expr
}

func (p *Parser) term() ast.Expression {
	expr := p.factor()
	for p.check(token.MINUS) || p.check(token.PLUS) {
		op := p.advance()
		right := p.factor()
		expr = &ast.Binary{Left: expr, Operator: op, Right: right}
	}
	return expr
}

func (p *Parser) factor() ast.Expression {
	expr := p.unary()
	for p.check(token.SLASH) || p.check(token.STAR) {
		op := p.advance()
		right := p.unary()
		expr = &ast.Binary{Left: expr, Operator: op, Right: right}
	}
	return expr
}

func (p *Parser) unary() ast.Expression {
	if p.check(token.BANG) || p.check(token.MINUS) {
		op := p.advance()
		right := p.unary()
		return &ast.Unary{Operator: op, Right: right}
	}
	return p.call()
}

func (p *Parser) call() ast.Expression {
	expr := p.primary()
	for p.check(token.LPAREN) {
		p.advance()
		expr = p.finishCall(expr)
	}
	return expr
}

func (p *Parser) finishCall(callee ast.Expression) ast.Expression {
	var args []ast.Expression
	if !p.check(token.RPAREN) {
		for {
			if len(args) >= maxArgs {
				p.errorAt(p.cur, "Can't have more than 255 arguments.")
			}
			args = append(args, p.expression())
			if !p.matchAny(token.COMMA) {
				break
			}
		}
	}
	paren := p.expect(token.RPAREN, "Expect ')' after arguments.")
	return &ast.Call{Callee: callee, Paren: paren, Args: args}
}

func (p *Parser) primary() ast.Expression {
	switch {
	case p.check(token.FALSE):
		tok := p.advance()
		return &ast.Literal{Token: tok, Value: false}
	case p.check(token.TRUE):
		tok := p.advance()
		return &ast.Literal{Token: tok, Value: true}
	case p.check(token.NIL):
		tok := p.advance()
		return &ast.Literal{Token: tok, Value: nil}
	case p.check(token.NUMBER), p.check(token.STRING):
		tok := p.advance()
		return &ast.Literal{Token: tok, Value: tok.Literal}
	case p.check(token.IDENT):
		tok := p.advance()
		return &ast.Variable{Name: tok}
	case p.check(token.LPAREN):
		lparen := p.advance()
		expr := p.expression()
		p.expect(token.RPAREN, "Expect ')' after expression.")
		return &ast.Grouping{LParen: lparen, Expression: expr}
	default:
		p.errorAt(p.cur, "Expect expression.")
		// Return a harmless placeholder so callers composing this
		// expression don't need a nil check; the recorded error is
		// already fatal at the CLI boundary.
		return &ast.Literal{Token: p.cur, Value: nil}
	}
}
