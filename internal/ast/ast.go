package ast

import "github.com/kievzenit/elgol/internal/lexer"

type NodeKind string

const (
	ProgramKind             NodeKind = "program"
	FunctionDefinitionKind  NodeKind = "function_definition"
	MainBlockKind           NodeKind = "main_block"
	BlockKind               NodeKind = "block"
	VariableDeclarationKind NodeKind = "variable_declaration"
	IfStatementKind         NodeKind = "if_statement"
	WhileStatementKind      NodeKind = "while_statement"
	AssignKind              NodeKind = "assign"
	BinaryOperatorKind      NodeKind = "binary_operator"
	UnaryOperatorCompKind   NodeKind = "unary_operator_comp"
	IntegerLiteralKind      NodeKind = "integer_literal"
	IdentifierLookupKind    NodeKind = "identifier_lookup"
	FunctionCallKind        NodeKind = "function_call"
	ParameterKind           NodeKind = "parameter"
)

type AstNode interface {
	Kind() NodeKind
	FirstToken() *lexer.Token
}

// Component is a top-level item of a program.
type Component interface {
	AstNode
	ComponentNode()
}

type Stmt interface {
	AstNode
	StmtNode()
}

type Expr interface {
	AstNode
	ExprNode()
}

type Program struct {
	StartToken *lexer.Token

	Components []Component
}

type FunctionDefinition struct {
	StartToken *lexer.Token

	Type   string
	Name   string
	Params []*Parameter
	Body   *Block
}

type Parameter struct {
	StartToken *lexer.Token

	Type string
	Name string
}

type MainBlock struct {
	StartToken *lexer.Token

	Body *Block
}

func (p *Program) Kind() NodeKind            { return ProgramKind }
func (f *FunctionDefinition) Kind() NodeKind { return FunctionDefinitionKind }
func (p *Parameter) Kind() NodeKind          { return ParameterKind }
func (m *MainBlock) Kind() NodeKind          { return MainBlockKind }

func (p *Program) FirstToken() *lexer.Token            { return p.StartToken }
func (f *FunctionDefinition) FirstToken() *lexer.Token { return f.StartToken }
func (p *Parameter) FirstToken() *lexer.Token          { return p.StartToken }
func (m *MainBlock) FirstToken() *lexer.Token          { return m.StartToken }

func (f *FunctionDefinition) ComponentNode() {}
func (m *MainBlock) ComponentNode()          {}
