package ast

import "github.com/kievzenit/elgol/internal/lexer"

type Block struct {
	StartToken *lexer.Token

	Stmts []Stmt
}

type VariableDeclaration struct {
	StartToken *lexer.Token

	Type string
	Name string
}

type IfStatement struct {
	StartToken *lexer.Token

	Condition Expr
	Then      *Block
	// Else is nil when the statement has no senao branch.
	Else *Block
}

func (i *IfStatement) HasElse() bool {
	return i.Else != nil
}

type WhileStatement struct {
	StartToken *lexer.Token

	Condition Expr
	Body      *Block
}

// ExprStmt is an expression used as a statement. It is transparent in the
// tree rendering: only the wrapped expression shows up.
type ExprStmt struct {
	Expr Expr
}

func (b *Block) Kind() NodeKind               { return BlockKind }
func (v *VariableDeclaration) Kind() NodeKind { return VariableDeclarationKind }
func (i *IfStatement) Kind() NodeKind         { return IfStatementKind }
func (w *WhileStatement) Kind() NodeKind      { return WhileStatementKind }
func (e *ExprStmt) Kind() NodeKind            { return e.Expr.Kind() }

func (b *Block) FirstToken() *lexer.Token               { return b.StartToken }
func (v *VariableDeclaration) FirstToken() *lexer.Token { return v.StartToken }
func (i *IfStatement) FirstToken() *lexer.Token         { return i.StartToken }
func (w *WhileStatement) FirstToken() *lexer.Token      { return w.StartToken }
func (e *ExprStmt) FirstToken() *lexer.Token            { return e.Expr.FirstToken() }

func (v *VariableDeclaration) StmtNode() {}
func (i *IfStatement) StmtNode()         {}
func (w *WhileStatement) StmtNode()      {}
func (e *ExprStmt) StmtNode()            {}
