package parser

import "github.com/texprlang/texpr/lexer"

// CollectingVisitor walks the tree in pre-order and records the kind and
// span of every node it sees. Tests use it to check traversal order and
// the span containment/monotonicity guarantees; later passes can use it
// as a skeleton for their own walks.
type CollectingVisitor struct {
	Kinds []string     // node kind names in pre-order
	Spans []lexer.Span // matching spans, same order
}

// record appends one visited node.
func (c *CollectingVisitor) record(kind string, span lexer.Span) {
	c.Kinds = append(c.Kinds, kind)
	c.Spans = append(c.Spans, span)
}

// walk visits a child list in order.
func (c *CollectingVisitor) walk(nodes []ExpressionNode) {
	for _, node := range nodes {
		node.Accept(c)
	}
}

func (c *CollectingVisitor) VisitExprRootNode(node ExprRootNode) {
	c.record("Root", node.Span())
	c.walk([]ExpressionNode{node.Child})
}

func (c *CollectingVisitor) VisitNullLiteralExpressionNode(node NullLiteralExpressionNode) {
	c.record("Null", node.Span())
}

func (c *CollectingVisitor) VisitBooleanLiteralExpressionNode(node BooleanLiteralExpressionNode) {
	c.record("Boolean", node.Span())
}

func (c *CollectingVisitor) VisitIntegerLiteralExpressionNode(node IntegerLiteralExpressionNode) {
	c.record("Integer", node.Span())
}

func (c *CollectingVisitor) VisitFloatLiteralExpressionNode(node FloatLiteralExpressionNode) {
	c.record("Float", node.Span())
}

func (c *CollectingVisitor) VisitStringLiteralExpressionNode(node StringLiteralExpressionNode) {
	c.record("String", node.Span())
}

func (c *CollectingVisitor) VisitListLiteralExpressionNode(node ListLiteralExpressionNode) {
	c.record("List", node.Span())
	c.walk(node.Elements)
}

func (c *CollectingVisitor) VisitMapLiteralExpressionNode(node MapLiteralExpressionNode) {
	c.record("Map", node.Span())
	c.walk(node.Children)
}

func (c *CollectingVisitor) VisitVarExpressionNode(node VarExpressionNode) {
	c.record("Var", node.Span())
}

func (c *CollectingVisitor) VisitDataRefExpressionNode(node DataRefExpressionNode) {
	c.record("DataRef", node.Span())
	c.walk(node.Accesses)
}

func (c *CollectingVisitor) VisitDataRefKeyExpressionNode(node DataRefKeyExpressionNode) {
	c.record("Key", node.Span())
}

func (c *CollectingVisitor) VisitDataRefIndexExpressionNode(node DataRefIndexExpressionNode) {
	c.record("Index", node.Span())
}

func (c *CollectingVisitor) VisitGlobalExpressionNode(node GlobalExpressionNode) {
	c.record("Global", node.Span())
}

func (c *CollectingVisitor) VisitFunctionCallExpressionNode(node FunctionCallExpressionNode) {
	c.record("Call", node.Span())
	c.walk(node.Arguments)
}

func (c *CollectingVisitor) VisitBinaryExpressionNode(node BinaryExpressionNode) {
	c.record("Binary", node.Span())
	c.walk([]ExpressionNode{node.Left, node.Right})
}

func (c *CollectingVisitor) VisitUnaryExpressionNode(node UnaryExpressionNode) {
	c.record("Unary", node.Span())
	c.walk([]ExpressionNode{node.Right})
}

func (c *CollectingVisitor) VisitConditionalExpressionNode(node ConditionalExpressionNode) {
	c.record("Conditional", node.Span())
	c.walk([]ExpressionNode{node.Condition, node.TrueExpr, node.FalseExpr})
}
