package parser

import (
	"bytes"
	"fmt"

	"github.com/samber/lo"
)

const INDENT_SIZE = 4 // Number of spaces per indentation level

// PrintingVisitor is a visitor that renders AST nodes as an indented
// tree into a buffer. It is shared by the repl and the CLI.
type PrintingVisitor struct {
	Indent int          // Current indentation level for formatting
	Buf    bytes.Buffer // Buffer accumulating the formatted output
}

// indent writes the current indentation level to the buffer
func (p *PrintingVisitor) indent() {
	for i := 0; i < p.Indent; i++ {
		p.Buf.WriteString(" ")
	}
}

// line writes one indented line for a node: its kind and detail.
func (p *PrintingVisitor) line(kind string, detail string) {
	p.indent()
	p.Buf.WriteString(fmt.Sprintf("%-12s %s\n", kind, detail))
}

// children visits a child list one indentation level deeper.
func (p *PrintingVisitor) children(nodes []ExpressionNode) {
	p.Indent += INDENT_SIZE
	lo.ForEach(nodes, func(child ExpressionNode, _ int) {
		child.Accept(p)
	})
	p.Indent -= INDENT_SIZE
}

// String returns the accumulated rendering.
func (p *PrintingVisitor) String() string {
	return p.Buf.String()
}

// VisitExprRootNode prints the root wrapper and descends into its child
func (p *PrintingVisitor) VisitExprRootNode(node ExprRootNode) {
	p.line("Root", "["+node.Literal()+"]")
	p.children([]ExpressionNode{node.Child})
}

// VisitNullLiteralExpressionNode prints the null literal
func (p *PrintingVisitor) VisitNullLiteralExpressionNode(node NullLiteralExpressionNode) {
	p.line("Null", "null")
}

// VisitBooleanLiteralExpressionNode prints a boolean literal
func (p *PrintingVisitor) VisitBooleanLiteralExpressionNode(node BooleanLiteralExpressionNode) {
	p.line("Boolean", fmt.Sprintf("%t", node.Value))
}

// VisitIntegerLiteralExpressionNode prints an integer literal
func (p *PrintingVisitor) VisitIntegerLiteralExpressionNode(node IntegerLiteralExpressionNode) {
	p.line("Integer", fmt.Sprintf("%s => %d", node.Token.Literal, node.Value))
}

// VisitFloatLiteralExpressionNode prints a float literal
func (p *PrintingVisitor) VisitFloatLiteralExpressionNode(node FloatLiteralExpressionNode) {
	p.line("Float", fmt.Sprintf("%s => %g", node.Token.Literal, node.Value))
}

// VisitStringLiteralExpressionNode prints a string literal
func (p *PrintingVisitor) VisitStringLiteralExpressionNode(node StringLiteralExpressionNode) {
	p.line("String", fmt.Sprintf("%q", node.Value))
}

// VisitListLiteralExpressionNode prints a list literal and its elements
func (p *PrintingVisitor) VisitListLiteralExpressionNode(node ListLiteralExpressionNode) {
	p.line("List", fmt.Sprintf("%d element(s)", len(node.Elements)))
	p.children(node.Elements)
}

// VisitMapLiteralExpressionNode prints a map literal and its children in
// key, value order
func (p *PrintingVisitor) VisitMapLiteralExpressionNode(node MapLiteralExpressionNode) {
	p.line("Map", fmt.Sprintf("%d entrie(s)", len(node.Children)/2))
	p.children(node.Children)
}

// VisitVarExpressionNode prints a variable reference
func (p *PrintingVisitor) VisitVarExpressionNode(node VarExpressionNode) {
	p.line("Var", "$"+node.Name)
}

// VisitDataRefExpressionNode prints a data reference and its access chain
func (p *PrintingVisitor) VisitDataRefExpressionNode(node DataRefExpressionNode) {
	p.line("DataRef", fmt.Sprintf("[%s] injected=%t", node.Literal(), node.IsInjected))
	p.children(node.Accesses)
}

// VisitDataRefKeyExpressionNode prints one named access step
func (p *PrintingVisitor) VisitDataRefKeyExpressionNode(node DataRefKeyExpressionNode) {
	p.line("Key", node.Name)
}

// VisitDataRefIndexExpressionNode prints one numeric access step
func (p *PrintingVisitor) VisitDataRefIndexExpressionNode(node DataRefIndexExpressionNode) {
	p.line("Index", node.Literal())
}

// VisitGlobalExpressionNode prints a dotted global name
func (p *PrintingVisitor) VisitGlobalExpressionNode(node GlobalExpressionNode) {
	p.line("Global", node.Name)
}

// VisitFunctionCallExpressionNode prints a function call and its arguments
func (p *PrintingVisitor) VisitFunctionCallExpressionNode(node FunctionCallExpressionNode) {
	p.line("Call", fmt.Sprintf("%s/%d", node.Name, len(node.Arguments)))
	p.children(node.Arguments)
}

// VisitBinaryExpressionNode prints a binary operation and its operands
func (p *PrintingVisitor) VisitBinaryExpressionNode(node BinaryExpressionNode) {
	p.line("Binary", node.Operation.Literal)
	p.children([]ExpressionNode{node.Left, node.Right})
}

// VisitUnaryExpressionNode prints a prefix operation and its operand
func (p *PrintingVisitor) VisitUnaryExpressionNode(node UnaryExpressionNode) {
	p.line("Unary", node.Operation.Literal)
	p.children([]ExpressionNode{node.Right})
}

// VisitConditionalExpressionNode prints a ternary and its three children
func (p *PrintingVisitor) VisitConditionalExpressionNode(node ConditionalExpressionNode) {
	p.line("Conditional", "? :")
	p.children([]ExpressionNode{node.Condition, node.TrueExpr, node.FalseExpr})
}
