package ast

import "github.com/kievzenit/elgol/internal/lexer"

// AssignExpr stores into an lvalue: an identifier or elgio.
type AssignExpr struct {
	StartToken *lexer.Token

	Target string
	Value  Expr
}

// BinaryExpr keeps the operator's literal spelling ("+", "x", "igual", ...)
// as its tag.
type BinaryExpr struct {
	StartToken *lexer.Token

	Op    string
	Left  Expr
	Right Expr
}

type UnaryCompExpr struct {
	StartToken *lexer.Token

	Operand Expr
}

// IntegerLiteral also represents the zero keyword, with Value 0.
type IntegerLiteral struct {
	StartToken *lexer.Token

	Value int64
}

type IdentifierLookup struct {
	StartToken *lexer.Token

	Name string
}

type FunctionCall struct {
	StartToken *lexer.Token

	Name string
	Args []Expr
}

func (a *AssignExpr) Kind() NodeKind       { return AssignKind }
func (b *BinaryExpr) Kind() NodeKind       { return BinaryOperatorKind }
func (u *UnaryCompExpr) Kind() NodeKind    { return UnaryOperatorCompKind }
func (i *IntegerLiteral) Kind() NodeKind   { return IntegerLiteralKind }
func (i *IdentifierLookup) Kind() NodeKind { return IdentifierLookupKind }
func (f *FunctionCall) Kind() NodeKind     { return FunctionCallKind }

func (a *AssignExpr) FirstToken() *lexer.Token       { return a.StartToken }
func (b *BinaryExpr) FirstToken() *lexer.Token       { return b.StartToken }
func (u *UnaryCompExpr) FirstToken() *lexer.Token    { return u.StartToken }
func (i *IntegerLiteral) FirstToken() *lexer.Token   { return i.StartToken }
func (i *IdentifierLookup) FirstToken() *lexer.Token { return i.StartToken }
func (f *FunctionCall) FirstToken() *lexer.Token     { return f.StartToken }

func (a *AssignExpr) ExprNode()       {}
func (b *BinaryExpr) ExprNode()       {}
func (u *UnaryCompExpr) ExprNode()    {}
func (i *IntegerLiteral) ExprNode()   {}
func (i *IdentifierLookup) ExprNode() {}
func (f *FunctionCall) ExprNode()     {}
