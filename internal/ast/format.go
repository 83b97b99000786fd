package ast

import (
	"strconv"
	"strings"
)

const indentUnit = "    "

// Format prints a program as canonical Elgol source. Positions and comments
// of the original input are not preserved, but parsing the output yields a
// tree with the same ToSExpr rendering.
func Format(program *Program) string {
	f := &formatter{}
	for i, component := range program.Components {
		if i > 0 {
			f.sb.WriteByte('\n')
		}
		f.component(component)
	}

	return f.sb.String()
}

// FormatExpr prints a single expression, parenthesizing every nested
// operator expression.
func FormatExpr(expr Expr) string {
	f := &formatter{}
	f.expr(expr)
	return f.sb.String()
}

type formatter struct {
	sb    strings.Builder
	depth int
}

func (f *formatter) line(parts ...string) {
	f.sb.WriteString(strings.Repeat(indentUnit, f.depth))
	for _, part := range parts {
		f.sb.WriteString(part)
	}
	f.sb.WriteByte('\n')
}

func (f *formatter) component(component Component) {
	switch c := component.(type) {
	case *FunctionDefinition:
		params := make([]string, len(c.Params))
		for i, param := range c.Params {
			params[i] = param.Type + " " + param.Name
		}
		f.line(c.Type, " ", c.Name, "(", strings.Join(params, ", "), ").")
		f.block(c.Body)
	case *MainBlock:
		f.block(c.Body)
	}
}

func (f *formatter) block(block *Block) {
	f.line("inicio.")
	f.depth++
	for _, stmt := range block.Stmts {
		f.stmt(stmt)
	}
	f.depth--
	f.line("fim.")
}

func (f *formatter) stmt(stmt Stmt) {
	switch s := stmt.(type) {
	case *VariableDeclaration:
		f.line(s.Type, " ", s.Name, ".")
	case *ExprStmt:
		f.line(FormatExpr(s.Expr), ".")
	case *IfStatement:
		f.line("se ", FormatExpr(s.Condition), ".")
		f.line("entao.")
		f.block(s.Then)
		if s.HasElse() {
			f.line("senao.")
			f.block(s.Else)
		}
	case *WhileStatement:
		f.line("enquanto ", FormatExpr(s.Condition), ".")
		f.block(s.Body)
	}
}

func (f *formatter) expr(expr Expr) {
	switch e := expr.(type) {
	case *AssignExpr:
		f.sb.WriteString(e.Target + " = ")
		f.expr(e.Value)
	case *BinaryExpr:
		f.operand(e.Left)
		f.sb.WriteString(" " + e.Op + " ")
		f.operand(e.Right)
	case *UnaryCompExpr:
		f.sb.WriteString("comp ")
		f.operand(e.Operand)
	case *IntegerLiteral:
		if e.Value == 0 {
			f.sb.WriteString("zero")
			return
		}
		f.sb.WriteString(strconv.FormatInt(e.Value, 10))
	case *IdentifierLookup:
		f.sb.WriteString(e.Name)
	case *FunctionCall:
		f.sb.WriteString(e.Name + "(")
		for i, arg := range e.Args {
			if i > 0 {
				f.sb.WriteString(", ")
			}
			f.expr(arg)
		}
		f.sb.WriteByte(')')
	}
}

func (f *formatter) operand(expr Expr) {
	switch expr.(type) {
	case *AssignExpr, *BinaryExpr:
		f.sb.WriteByte('(')
		f.expr(expr)
		f.sb.WriteByte(')')
	default:
		f.expr(expr)
	}
}
