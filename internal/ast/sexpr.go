package ast

import (
	"strconv"
	"strings"
)

// ToSExpr renders a node as a tagged tuple, for example
//
//	(assign "Resultado" (+ (integer_literal 2) (x (integer_literal 3) (integer_literal 4))))
//
// Binary operators are tagged with their literal spelling. An absent else
// branch is rendered as "none".
func ToSExpr(node AstNode) string {
	var sb strings.Builder
	writeSExpr(&sb, node)
	return sb.String()
}

func writeSExpr(sb *strings.Builder, node AstNode) {
	switch n := node.(type) {
	case *Program:
		sb.WriteString("(program")
		for _, component := range n.Components {
			sb.WriteByte(' ')
			writeSExpr(sb, component)
		}
		sb.WriteByte(')')
	case *FunctionDefinition:
		sb.WriteString("(function_definition " + n.Type + " " + strconv.Quote(n.Name) + " (params")
		for _, param := range n.Params {
			sb.WriteByte(' ')
			writeSExpr(sb, param)
		}
		sb.WriteString(") ")
		writeSExpr(sb, n.Body)
		sb.WriteByte(')')
	case *Parameter:
		sb.WriteString("(parameter " + n.Type + " " + strconv.Quote(n.Name) + ")")
	case *MainBlock:
		sb.WriteString("(main_block ")
		writeSExpr(sb, n.Body)
		sb.WriteByte(')')
	case *Block:
		sb.WriteString("(block")
		for _, stmt := range n.Stmts {
			sb.WriteByte(' ')
			writeSExpr(sb, stmt)
		}
		sb.WriteByte(')')
	case *VariableDeclaration:
		sb.WriteString("(variable_declaration " + n.Type + " " + strconv.Quote(n.Name) + ")")
	case *IfStatement:
		sb.WriteString("(if_statement ")
		writeSExpr(sb, n.Condition)
		sb.WriteByte(' ')
		writeSExpr(sb, n.Then)
		sb.WriteByte(' ')
		if n.HasElse() {
			writeSExpr(sb, n.Else)
		} else {
			sb.WriteString("none")
		}
		sb.WriteByte(')')
	case *WhileStatement:
		sb.WriteString("(while_statement ")
		writeSExpr(sb, n.Condition)
		sb.WriteByte(' ')
		writeSExpr(sb, n.Body)
		sb.WriteByte(')')
	case *ExprStmt:
		writeSExpr(sb, n.Expr)
	case *AssignExpr:
		sb.WriteString("(assign " + strconv.Quote(n.Target) + " ")
		writeSExpr(sb, n.Value)
		sb.WriteByte(')')
	case *BinaryExpr:
		sb.WriteString("(" + n.Op + " ")
		writeSExpr(sb, n.Left)
		sb.WriteByte(' ')
		writeSExpr(sb, n.Right)
		sb.WriteByte(')')
	case *UnaryCompExpr:
		sb.WriteString("(unary_operator_comp ")
		writeSExpr(sb, n.Operand)
		sb.WriteByte(')')
	case *IntegerLiteral:
		sb.WriteString("(integer_literal " + strconv.FormatInt(n.Value, 10) + ")")
	case *IdentifierLookup:
		sb.WriteString("(identifier_lookup " + strconv.Quote(n.Name) + ")")
	case *FunctionCall:
		sb.WriteString("(function_call " + strconv.Quote(n.Name))
		for _, arg := range n.Args {
			sb.WriteByte(' ')
			writeSExpr(sb, arg)
		}
		sb.WriteByte(')')
	default:
		panic("ToSExpr: unknown node type")
	}
}
