package ast

// Walk visits node and its descendants in source order. Children of a node
// are skipped when fn returns false for it.
func Walk(node AstNode, fn func(AstNode) bool) {
	if node == nil || !fn(node) {
		return
	}

	for _, child := range Children(node) {
		Walk(child, fn)
	}
}

// Children returns the direct children of node in source order.
func Children(node AstNode) []AstNode {
	children := make([]AstNode, 0)

	switch n := node.(type) {
	case *Program:
		for _, component := range n.Components {
			children = append(children, component)
		}
	case *FunctionDefinition:
		for _, param := range n.Params {
			children = append(children, param)
		}
		children = append(children, n.Body)
	case *MainBlock:
		children = append(children, n.Body)
	case *Block:
		for _, stmt := range n.Stmts {
			children = append(children, stmt)
		}
	case *IfStatement:
		children = append(children, n.Condition, n.Then)
		if n.HasElse() {
			children = append(children, n.Else)
		}
	case *WhileStatement:
		children = append(children, n.Condition, n.Body)
	case *ExprStmt:
		children = append(children, n.Expr)
	case *AssignExpr:
		children = append(children, n.Value)
	case *BinaryExpr:
		children = append(children, n.Left, n.Right)
	case *UnaryCompExpr:
		children = append(children, n.Operand)
	case *FunctionCall:
		for _, arg := range n.Args {
			children = append(children, arg)
		}
	}

	return children
}

// CountNodes returns the number of nodes in the tree rooted at node.
// Expression statements are not counted separately from their expression.
func CountNodes(node AstNode) int {
	count := 0
	Walk(node, func(n AstNode) bool {
		if _, ok := n.(*ExprStmt); !ok {
			count++
		}
		return true
	})

	return count
}
