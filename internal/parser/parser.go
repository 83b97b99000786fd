package parser

import (
	"slices"

	"github.com/kievzenit/elgol/internal/ast"
	"github.com/kievzenit/elgol/internal/compiler_errors"
	"github.com/kievzenit/elgol/internal/lexer"
)

// Parser is a recursive-descent parser for Elgol. It pulls tokens one at a
// time and stops at the first syntax error.
type Parser struct {
	lexer   *lexer.Lexer
	scanner lexer.TokenScanner
	eh      compiler_errors.ErrorHandler

	prev *lexer.Token
	curr *lexer.Token
	next *lexer.Token
}

// bailout unwinds the parser after the first syntax error has been reported.
type bailout struct{}

var bindingPowerLookup map[lexer.TokenKind]int = map[lexer.TokenKind]int{
	lexer.IGUAL:     10,
	lexer.DIFERENTE: 10,
	lexer.MAIOR:     20,
	lexer.MENOR:     20,
	lexer.PLUS:      30,
	lexer.MINUS:     30,
	lexer.TIMES:     40,
	lexer.DIVIDE:    40,
}

func NewParser(eh compiler_errors.ErrorHandler) *Parser {
	return &Parser{
		lexer: lexer.NewLexer(eh),
		eh:    eh,
	}
}

// ParseSource parses src with a fresh parser and returns the program, or nil
// on a syntax error, together with every lexical and syntactic diagnostic.
func ParseSource(src []byte) (*ast.Program, []compiler_errors.CompilerError) {
	eh := compiler_errors.NewErrorHandler()
	program := NewParser(eh).Parse(src)
	return program, eh.Errors()
}

// Parse resets the parser's lexer to src and parses a whole program.
func (p *Parser) Parse(src []byte) *ast.Program {
	p.lexer.Input(src)
	return p.ParseTokens(p.lexer)
}

// ParseTokens parses a whole program from scanner. It returns nil when a
// syntax error was reported.
func (p *Parser) ParseTokens(scanner lexer.TokenScanner) (program *ast.Program) {
	p.scanner = scanner
	p.prev, p.curr, p.next = nil, nil, nil

	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(bailout); !ok {
				panic(r)
			}
			program = nil
		}
	}()

	p.read()
	return p.parseProgram()
}

func (p *Parser) parseProgram() *ast.Program {
	program := &ast.Program{
		StartToken: p.curr,

		Components: make([]ast.Component, 0),
	}

	for p.curr.Kind != lexer.EOF {
		program.Components = append(program.Components, p.parseComponent())
	}

	return program
}

func (p *Parser) parseComponent() ast.Component {
	switch p.curr.Kind {
	case lexer.INTEIRO:
		return p.parseFunctionDefinition()
	case lexer.INICIO:
		startToken := p.curr
		return &ast.MainBlock{
			StartToken: startToken,

			Body: p.parseBlock(),
		}
	}

	p.expectAny(lexer.INTEIRO, lexer.INICIO)
	panic("unreachable")
}

func (p *Parser) parseFunctionDefinition() *ast.FunctionDefinition {
	startToken := p.curr
	typeName := p.parseTypeSpecifier()

	p.expect(lexer.FUNCTION_NAME)
	name := p.curr.Value
	p.read()

	p.expect(lexer.LPAREN)
	p.read()

	params := make([]*ast.Parameter, 0)
	if p.curr.Kind != lexer.RPAREN {
		params = append(params, p.parseParameter())
		for p.curr.Kind == lexer.COMMA {
			p.read()
			params = append(params, p.parseParameter())
		}
	}

	p.expect(lexer.RPAREN)
	p.read()

	p.expect(lexer.DOT)
	p.read()

	body := p.parseBlock()

	return &ast.FunctionDefinition{
		StartToken: startToken,

		Type:   typeName,
		Name:   name,
		Params: params,
		Body:   body,
	}
}

func (p *Parser) parseParameter() *ast.Parameter {
	startToken := p.curr
	typeName := p.parseTypeSpecifier()

	p.expect(lexer.IDENTIFIER)
	name := p.curr.Value
	p.read()

	return &ast.Parameter{
		StartToken: startToken,

		Type: typeName,
		Name: name,
	}
}

func (p *Parser) parseTypeSpecifier() string {
	p.expect(lexer.INTEIRO)
	typeName := p.curr.Value
	p.read()

	return typeName
}

func (p *Parser) parseBlock() *ast.Block {
	p.expect(lexer.INICIO)
	startToken := p.curr
	p.read()

	p.expect(lexer.DOT)
	p.read()

	stmts := make([]ast.Stmt, 0)
	for p.curr.Kind != lexer.FIM {
		stmts = append(stmts, p.parseStmt())
	}

	p.expect(lexer.FIM)
	p.read()

	p.expect(lexer.DOT)
	p.read()

	return &ast.Block{
		StartToken: startToken,

		Stmts: stmts,
	}
}

func (p *Parser) parseStmt() ast.Stmt {
	switch p.curr.Kind {
	case lexer.SE:
		return p.parseIfStmt()
	case lexer.ENQUANTO:
		return p.parseWhileStmt()
	case lexer.INTEIRO:
		return p.parseVarDeclStmt()
	}

	return p.parseExprStmt()
}

func (p *Parser) parseVarDeclStmt() *ast.VariableDeclaration {
	startToken := p.curr
	typeName := p.parseTypeSpecifier()

	p.expect(lexer.IDENTIFIER)
	name := p.curr.Value
	p.read()

	p.expect(lexer.DOT)
	p.read()

	return &ast.VariableDeclaration{
		StartToken: startToken,

		Type: typeName,
		Name: name,
	}
}

func (p *Parser) parseExprStmt() *ast.ExprStmt {
	expr := p.parseExpr()

	p.expect(lexer.DOT)
	p.read()

	return &ast.ExprStmt{
		Expr: expr,
	}
}

func (p *Parser) parseIfStmt() *ast.IfStatement {
	p.expect(lexer.SE)
	startToken := p.curr
	p.read()

	condition := p.parseExpr()

	p.expect(lexer.DOT)
	p.read()

	p.expect(lexer.ENTAO)
	p.read()

	p.expect(lexer.DOT)
	p.read()

	thenBlock := p.parseBranch()

	var elseBlock *ast.Block
	if p.curr.Kind == lexer.SENAO {
		p.read()

		p.expect(lexer.DOT)
		p.read()

		elseBlock = p.parseBranch()
	}

	return &ast.IfStatement{
		StartToken: startToken,

		Condition: condition,
		Then:      thenBlock,
		Else:      elseBlock,
	}
}

// parseBranch parses the body of an entao or senao branch: either a full
// block, or bare statements running up to the next senao or the fim of the
// enclosing block.
func (p *Parser) parseBranch() *ast.Block {
	if p.curr.Kind == lexer.INICIO {
		return p.parseBlock()
	}

	startToken := p.curr
	stmts := make([]ast.Stmt, 0)
	for !p.isCurrAny(lexer.SENAO, lexer.FIM, lexer.EOF) {
		stmts = append(stmts, p.parseStmt())
	}

	return &ast.Block{
		StartToken: startToken,

		Stmts: stmts,
	}
}

func (p *Parser) parseWhileStmt() *ast.WhileStatement {
	p.expect(lexer.ENQUANTO)
	startToken := p.curr
	p.read()

	condition := p.parseExpr()

	p.expect(lexer.DOT)
	p.read()

	body := p.parseBlock()

	return &ast.WhileStatement{
		StartToken: startToken,

		Condition: condition,
		Body:      body,
	}
}

func (p *Parser) parseExpr() ast.Expr {
	return p.parseBinaryExpr(0)
}

// parseBinaryExpr climbs the binding power table. Operators of equal power
// group to the left.
func (p *Parser) parseBinaryExpr(minBindingPower int) ast.Expr {
	left := p.parseUnaryExpr()

	for {
		op := p.curr
		bindingPower, ok := bindingPowerLookup[op.Kind]
		if !ok || bindingPower < minBindingPower {
			return left
		}
		p.read()

		right := p.parseBinaryExpr(bindingPower + 1)

		left = &ast.BinaryExpr{
			StartToken: left.FirstToken(),

			Op:    op.Value,
			Left:  left,
			Right: right,
		}
	}
}

func (p *Parser) parseUnaryExpr() ast.Expr {
	if p.curr.Kind != lexer.COMP {
		return p.parsePrimaryExpr()
	}

	startToken := p.curr
	p.read()

	return &ast.UnaryCompExpr{
		StartToken: startToken,

		Operand: p.parseUnaryExpr(),
	}
}

func (p *Parser) parsePrimaryExpr() ast.Expr {
	switch p.curr.Kind {
	case lexer.LPAREN:
		return p.parseParenExpr()
	case lexer.INTEGER:
		startToken := p.curr
		p.read()
		return &ast.IntegerLiteral{
			StartToken: startToken,

			Value: startToken.IntValue,
		}
	case lexer.ZERO:
		startToken := p.curr
		p.read()
		return &ast.IntegerLiteral{
			StartToken: startToken,

			Value: 0,
		}
	case lexer.IDENTIFIER, lexer.ELGIO:
		if p.peek().Kind == lexer.EQUALS {
			return p.parseAssignExpr()
		}
		return p.parseIdentExpr()
	case lexer.FUNCTION_NAME:
		return p.parseCallExpr()
	}

	p.unexpected()
	panic("unreachable")
}

// parseAssignExpr parses lvalue '=' expression. The value extends as far
// right as possible, so chained assignments group to the right.
func (p *Parser) parseAssignExpr() *ast.AssignExpr {
	p.expectAny(lexer.IDENTIFIER, lexer.ELGIO)
	startToken := p.curr
	target := p.curr.Value
	p.read()

	p.expect(lexer.EQUALS)
	p.read()

	value := p.parseExpr()

	return &ast.AssignExpr{
		StartToken: startToken,

		Target: target,
		Value:  value,
	}
}

func (p *Parser) parseParenExpr() ast.Expr {
	p.expect(lexer.LPAREN)
	p.read()

	expr := p.parseExpr()

	p.expect(lexer.RPAREN)
	p.read()

	return expr
}

func (p *Parser) parseCallExpr() *ast.FunctionCall {
	p.expect(lexer.FUNCTION_NAME)
	startToken := p.curr
	name := p.curr.Value
	p.read()

	p.expect(lexer.LPAREN)
	p.read()

	args := make([]ast.Expr, 0)
	if p.curr.Kind != lexer.RPAREN {
		args = append(args, p.parseExpr())
		for p.curr.Kind == lexer.COMMA {
			p.read()
			args = append(args, p.parseExpr())
		}
	}

	p.expect(lexer.RPAREN)
	p.read()

	return &ast.FunctionCall{
		StartToken: startToken,

		Name: name,
		Args: args,
	}
}

func (p *Parser) parseIdentExpr() *ast.IdentifierLookup {
	p.expectAny(lexer.IDENTIFIER, lexer.ELGIO)
	startToken := p.curr
	p.read()

	return &ast.IdentifierLookup{
		StartToken: startToken,

		Name: startToken.Value,
	}
}

func (p *Parser) read() *lexer.Token {
	p.prev = p.curr

	if p.next != nil {
		p.curr, p.next = p.next, nil
		return p.curr
	}

	token := p.scanner.Token()
	p.curr = &token
	return p.curr
}

// peek looks one token past curr without consuming it.
func (p *Parser) peek() *lexer.Token {
	if p.next == nil {
		token := p.scanner.Token()
		p.next = &token
	}

	return p.next
}

func (p *Parser) expect(kind lexer.TokenKind) {
	if p.curr.Kind != kind {
		p.fail(&UnexpectedExpectedError{
			position: positionOf(p.curr),

			Unexpected: p.curr,
			Expected:   kind,
		})
	}
}

func (p *Parser) expectAny(kinds ...lexer.TokenKind) {
	if p.isCurrAny(kinds...) {
		return
	}

	p.fail(&UnexpectedExpectedManyError{
		position: positionOf(p.curr),

		Unexpected: p.curr,
		Expected:   kinds,
	})
}

func (p *Parser) isCurrAny(kinds ...lexer.TokenKind) bool {
	return slices.Contains(kinds, p.curr.Kind)
}

func (p *Parser) unexpected() {
	p.fail(&UnexpectedError{
		position: positionOf(p.curr),

		Unexpected: p.curr,
	})
}

// fail reports err, adds a hint when the offending token directly follows
// an arithmetic operator, and abandons the parse.
func (p *Parser) fail(err compiler_errors.CompilerError) {
	p.eh.AddError(err)

	if p.prev != nil && p.prev.Kind.IsArithmetic() {
		p.eh.AddError(&MissingOperandError{
			position: positionOf(p.prev),

			Operator: p.prev,
		})
	}

	panic(bailout{})
}
