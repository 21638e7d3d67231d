package parser

import (
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/texprlang/texpr/lexer"
)

// NodeVisitor implements the Visitor design pattern for traversing the
// Abstract Syntax Tree (AST). Each Visit method processes a specific node
// type, enabling operations like printing, collection, or transformation
// without embedding the operation in the nodes themselves.
type NodeVisitor interface {
	VisitExprRootNode(node ExprRootNode) // Entry point for visiting a parsed form

	// Literal value visitors - primitive leaves
	VisitNullLiteralExpressionNode(node NullLiteralExpressionNode)       // null
	VisitBooleanLiteralExpressionNode(node BooleanLiteralExpressionNode) // true, false
	VisitIntegerLiteralExpressionNode(node IntegerLiteralExpressionNode) // 42, 0x1A2B
	VisitFloatLiteralExpressionNode(node FloatLiteralExpressionNode)     // 3.14, 1e9
	VisitStringLiteralExpressionNode(node StringLiteralExpressionNode)   // 'hello'

	// Composite literal visitors
	VisitListLiteralExpressionNode(node ListLiteralExpressionNode) // [1, 2, 3]
	VisitMapLiteralExpressionNode(node MapLiteralExpressionNode)   // ['a': 1, 'b': 2]

	// Reference visitors
	VisitVarExpressionNode(node VarExpressionNode)                 // $name (variable form)
	VisitDataRefExpressionNode(node DataRefExpressionNode)         // $base.key.0[expr]
	VisitDataRefKeyExpressionNode(node DataRefKeyExpressionNode)   // one .key access step
	VisitDataRefIndexExpressionNode(node DataRefIndexExpressionNode) // one .123 access step
	VisitGlobalExpressionNode(node GlobalExpressionNode)           // a.b.c

	// Operation visitors
	VisitFunctionCallExpressionNode(node FunctionCallExpressionNode) // name(arg, ...)
	VisitBinaryExpressionNode(node BinaryExpressionNode)             // a + b, a and b, ...
	VisitUnaryExpressionNode(node UnaryExpressionNode)               // -a, not a
	VisitConditionalExpressionNode(node ConditionalExpressionNode)   // a ? b : c
}

// Node: base interface for all nodes of the AST
// Literal(): returns a source-shaped string rendering of the node
// Accept(): accepts a visitor
// Span(): returns the byte range of the tokens that produced the node
type Node interface {
	Literal() string
	Accept(visitor NodeVisitor)
	Span() lexer.Span
}

// ExpressionNode: base interface for all expression nodes.
// Every expression is a Node; Expression() is the marker method.
type ExpressionNode interface {
	Node
	Expression()
}

// ExprRootNode wraps exactly one expression and is what every public
// entry point returns. It exists so that later passes can substitute the
// root expression in place via ReplaceChild without re-rooting the tree.
type ExprRootNode struct {
	Child ExpressionNode // the single wrapped expression
}

// Literal returns the rendering of the wrapped expression.
func (root *ExprRootNode) Literal() string {
	return root.Child.Literal()
}

// Accept accepts a visitor (eg PrintingVisitor).
func (root *ExprRootNode) Accept(visitor NodeVisitor) {
	visitor.VisitExprRootNode(*root)
}

// Span returns the byte range of the wrapped expression.
func (root *ExprRootNode) Span() lexer.Span {
	return root.Child.Span()
}

// ReplaceChild substitutes the wrapped expression in place.
func (root *ExprRootNode) ReplaceChild(expr ExpressionNode) {
	root.Child = expr
}

// NullLiteralExpressionNode represents the null literal. It carries no
// value.
type NullLiteralExpressionNode struct {
	Token lexer.Token // The 'null' token
}

func (node *NullLiteralExpressionNode) Literal() string { return "null" }

// NullLiteralExpressionNode.Accept(): accepts a visitor
func (node *NullLiteralExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitNullLiteralExpressionNode(*node)
}

func (node *NullLiteralExpressionNode) Span() lexer.Span { return node.Token.Span() }
func (node *NullLiteralExpressionNode) Expression()      {}

// BooleanLiteralExpressionNode represents a boolean literal.
// Example: true, false
type BooleanLiteralExpressionNode struct {
	Token lexer.Token // The 'true' or 'false' token
	Value bool        // The boolean value
}

func (node *BooleanLiteralExpressionNode) Literal() string { return node.Token.Literal }

// BooleanLiteralExpressionNode.Accept(): accepts a visitor
func (node *BooleanLiteralExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitBooleanLiteralExpressionNode(*node)
}

func (node *BooleanLiteralExpressionNode) Span() lexer.Span { return node.Token.Span() }
func (node *BooleanLiteralExpressionNode) Expression()      {}

// IntegerLiteralExpressionNode represents an integer literal, decimal or
// hexadecimal, normalized to a signed 64-bit value.
// Example: 42, 0x1A2B
type IntegerLiteralExpressionNode struct {
	Token lexer.Token // The integer token with its source spelling
	Value int64       // The normalized signed value
}

func (node *IntegerLiteralExpressionNode) Literal() string { return node.Token.Literal }

// IntegerLiteralExpressionNode.Accept(): accepts a visitor
func (node *IntegerLiteralExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitIntegerLiteralExpressionNode(*node)
}

func (node *IntegerLiteralExpressionNode) Span() lexer.Span { return node.Token.Span() }
func (node *IntegerLiteralExpressionNode) Expression()      {}

// FloatLiteralExpressionNode represents a floating-point literal as an
// IEEE-754 double derived from the source spelling.
// Example: 3.14, 1.5e3, 12e-2
type FloatLiteralExpressionNode struct {
	Token lexer.Token // The float token with its source spelling
	Value float64     // The IEEE-754 double value
}

func (node *FloatLiteralExpressionNode) Literal() string { return node.Token.Literal }

// FloatLiteralExpressionNode.Accept(): accepts a visitor
func (node *FloatLiteralExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitFloatLiteralExpressionNode(*node)
}

func (node *FloatLiteralExpressionNode) Span() lexer.Span { return node.Token.Span() }
func (node *FloatLiteralExpressionNode) Expression()      {}

// StringLiteralExpressionNode represents a single-quoted string literal
// with all escapes resolved to their code-point values.
// Example: 'hello', 'a\nb', '✌'
type StringLiteralExpressionNode struct {
	Token lexer.Token // The string token; Literal holds the decoded value
	Value string      // The decoded string value
}

func (node *StringLiteralExpressionNode) Literal() string { return "'" + node.Value + "'" }

// StringLiteralExpressionNode.Accept(): accepts a visitor
func (node *StringLiteralExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitStringLiteralExpressionNode(*node)
}

func (node *StringLiteralExpressionNode) Span() lexer.Span { return node.Token.Span() }
func (node *StringLiteralExpressionNode) Expression()      {}

// ListLiteralExpressionNode represents a list literal. Elements are the
// element expressions in source order; an empty list has none.
// Example: [1, 2, 3], []
type ListLiteralExpressionNode struct {
	Token    lexer.Token      // The opening '[' token
	Elements []ExpressionNode // Element expressions in source order
	End      int              // Byte offset just past the closing ']'
}

func (node *ListLiteralExpressionNode) Literal() string {
	parts := lo.Map(node.Elements, func(e ExpressionNode, _ int) string { return e.Literal() })
	return "[" + strings.Join(parts, ",") + "]"
}

// ListLiteralExpressionNode.Accept(): accepts a visitor
func (node *ListLiteralExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitListLiteralExpressionNode(*node)
}

func (node *ListLiteralExpressionNode) Span() lexer.Span {
	return lexer.Span{Start: node.Token.Offset, End: node.End}
}
func (node *ListLiteralExpressionNode) Expression() {}

// MapLiteralExpressionNode represents a map literal. Children alternate
// key, value, key, value, ... in source order; the child count is always
// even and an empty map ([:]) has no children.
// Example: ['a': 1, 'b': 2], [:]
type MapLiteralExpressionNode struct {
	Token    lexer.Token      // The opening '[' token
	Children []ExpressionNode // Alternating key/value expressions
	End      int              // Byte offset just past the closing ']'
}

func (node *MapLiteralExpressionNode) Literal() string {
	if len(node.Children) == 0 {
		return "[:]"
	}
	parts := make([]string, 0, len(node.Children)/2)
	for i := 0; i+1 < len(node.Children); i += 2 {
		parts = append(parts, node.Children[i].Literal()+":"+node.Children[i+1].Literal())
	}
	return "[" + strings.Join(parts, ",") + "]"
}

// MapLiteralExpressionNode.Accept(): accepts a visitor
func (node *MapLiteralExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitMapLiteralExpressionNode(*node)
}

func (node *MapLiteralExpressionNode) Span() lexer.Span {
	return lexer.Span{Start: node.Token.Offset, End: node.End}
}
func (node *MapLiteralExpressionNode) Expression() {}

// VarExpressionNode represents a standalone variable: a '$' followed by
// an identifier. The reserved name 'ij' never appears here; the parser
// rejects it before construction.
// Example: $userName
type VarExpressionNode struct {
	Token lexer.Token // The DOLLAR_IDENT token
	Name  string      // The identifier without the '$'
}

func (node *VarExpressionNode) Literal() string { return "$" + node.Name }

// VarExpressionNode.Accept(): accepts a visitor
func (node *VarExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitVarExpressionNode(*node)
}

func (node *VarExpressionNode) Span() lexer.Span { return node.Token.Span() }
func (node *VarExpressionNode) Expression()      {}

// DataRefExpressionNode represents a data reference: a base key plus a
// chain of access steps. Accesses[0] is always a DataRefKeyExpressionNode
// (the base key); subsequent accesses are key steps, index steps, or
// arbitrary bracketed expressions acting as keys.
//
// IsInjected is true only for references constructed via the $ij. form,
// whose base key is the identifier that followed the dot.
// Example: $aaa.bbb.0.ccc[12], $ij.flags
type DataRefExpressionNode struct {
	Token      lexer.Token      // The DOLLAR_IDENT or DOLLAR_IJ_DOT token
	IsInjected bool             // true for $ij. references
	Accesses   []ExpressionNode // Base key plus access steps, in source order
	End        int              // Byte offset just past the last access step
}

func (node *DataRefExpressionNode) Literal() string {
	var builder strings.Builder
	if node.IsInjected {
		builder.WriteString("$ij")
	} else {
		builder.WriteString("$")
	}
	for i, access := range node.Accesses {
		switch step := access.(type) {
		case *DataRefKeyExpressionNode:
			if i > 0 || node.IsInjected {
				builder.WriteString(".")
			}
			builder.WriteString(step.Name)
		case *DataRefIndexExpressionNode:
			builder.WriteString("." + step.Literal())
		default:
			builder.WriteString("[" + access.Literal() + "]")
		}
	}
	return builder.String()
}

// DataRefExpressionNode.Accept(): accepts a visitor
func (node *DataRefExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitDataRefExpressionNode(*node)
}

func (node *DataRefExpressionNode) Span() lexer.Span {
	return lexer.Span{Start: node.Token.Offset, End: node.End}
}
func (node *DataRefExpressionNode) Expression() {}

// DataRefKeyExpressionNode represents one named access step of a data
// reference, including the base key.
// Example: the 'bbb' in $aaa.bbb
type DataRefKeyExpressionNode struct {
	Token lexer.Token // The token the key came from
	Name  string      // The key name, never empty
}

func (node *DataRefKeyExpressionNode) Literal() string { return node.Name }

// DataRefKeyExpressionNode.Accept(): accepts a visitor
func (node *DataRefKeyExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitDataRefKeyExpressionNode(*node)
}

func (node *DataRefKeyExpressionNode) Span() lexer.Span { return node.Token.Span() }
func (node *DataRefKeyExpressionNode) Expression()      {}

// DataRefIndexExpressionNode represents one numeric access step of a
// data reference.
// Example: the '0' in $aaa.bbb.0
type DataRefIndexExpressionNode struct {
	Token lexer.Token // The DOT_INDEX token
	Index uint32      // The decimal index after the dot
}

func (node *DataRefIndexExpressionNode) Literal() string {
	return strconv.FormatUint(uint64(node.Index), 10)
}

// DataRefIndexExpressionNode.Accept(): accepts a visitor
func (node *DataRefIndexExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitDataRefIndexExpressionNode(*node)
}

func (node *DataRefIndexExpressionNode) Span() lexer.Span { return node.Token.Span() }
func (node *DataRefIndexExpressionNode) Expression()      {}

// GlobalExpressionNode represents a dotted global name, not preceded by
// '$'. Name holds the full dotted path joined verbatim; resolution is a
// later pass's concern.
// Example: app.config.DEBUG
type GlobalExpressionNode struct {
	Token lexer.Token // The first identifier token
	Name  string      // The full dotted name
	End   int         // Byte offset just past the last name segment
}

func (node *GlobalExpressionNode) Literal() string { return node.Name }

// GlobalExpressionNode.Accept(): accepts a visitor
func (node *GlobalExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitGlobalExpressionNode(*node)
}

func (node *GlobalExpressionNode) Span() lexer.Span {
	return lexer.Span{Start: node.Token.Offset, End: node.End}
}
func (node *GlobalExpressionNode) Expression() {}

// FunctionCallExpressionNode represents a function call with its
// argument expressions as children.
// Example: min($a, 3), length($list)
type FunctionCallExpressionNode struct {
	Token     lexer.Token      // The function name token
	Name      string           // The function name
	Arguments []ExpressionNode // Argument expressions in source order
	End       int              // Byte offset just past the closing ')'
}

func (node *FunctionCallExpressionNode) Literal() string {
	parts := lo.Map(node.Arguments, func(a ExpressionNode, _ int) string { return a.Literal() })
	return node.Name + "(" + strings.Join(parts, ",") + ")"
}

// FunctionCallExpressionNode.Accept(): accepts a visitor
func (node *FunctionCallExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitFunctionCallExpressionNode(*node)
}

func (node *FunctionCallExpressionNode) Span() lexer.Span {
	return lexer.Span{Start: node.Token.Offset, End: node.End}
}
func (node *FunctionCallExpressionNode) Expression() {}

// BinaryExpressionNode represents a binary operation. The operator token
// identifies the operation; arity and precedence follow from it.
// Example: 1 + 2, $a == null, $x and $y
type BinaryExpressionNode struct {
	Operation lexer.Token    // The operator token
	Left      ExpressionNode // Left operand
	Right     ExpressionNode // Right operand
}

func (node *BinaryExpressionNode) Literal() string {
	op := node.Operation.Literal
	if node.Operation.Type == lexer.AND_OP || node.Operation.Type == lexer.OR_OP {
		// word operators need surrounding spaces to stay re-lexable
		op = " " + op + " "
	}
	return node.Left.Literal() + op + node.Right.Literal()
}

// BinaryExpressionNode.Accept(): accepts a visitor
func (node *BinaryExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitBinaryExpressionNode(*node)
}

func (node *BinaryExpressionNode) Span() lexer.Span {
	return lexer.Span{Start: node.Left.Span().Start, End: node.Right.Span().End}
}
func (node *BinaryExpressionNode) Expression() {}

// UnaryExpressionNode represents a prefix operation: unary minus or
// logical not.
// Example: -$a, not $done
type UnaryExpressionNode struct {
	Operation lexer.Token    // The operator token
	Right     ExpressionNode // The operand
}

func (node *UnaryExpressionNode) Literal() string {
	op := node.Operation.Literal
	if node.Operation.Type == lexer.NOT_OP {
		op += " "
	}
	return op + node.Right.Literal()
}

// UnaryExpressionNode.Accept(): accepts a visitor
func (node *UnaryExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitUnaryExpressionNode(*node)
}

func (node *UnaryExpressionNode) Span() lexer.Span {
	return lexer.Span{Start: node.Operation.Offset, End: node.Right.Span().End}
}
func (node *UnaryExpressionNode) Expression() {}

// ConditionalExpressionNode represents the ternary operator. It always
// has exactly three children and is right-biased: both branches are
// parsed at the ternary level.
// Example: $a ? 'yes' : 'no'
type ConditionalExpressionNode struct {
	Operation lexer.Token    // The '?' token
	Condition ExpressionNode // The condition
	TrueExpr  ExpressionNode // Value when the condition holds
	FalseExpr ExpressionNode // Value otherwise
}

func (node *ConditionalExpressionNode) Literal() string {
	return node.Condition.Literal() + "?" + node.TrueExpr.Literal() + ":" + node.FalseExpr.Literal()
}

// ConditionalExpressionNode.Accept(): accepts a visitor
func (node *ConditionalExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitConditionalExpressionNode(*node)
}

func (node *ConditionalExpressionNode) Span() lexer.Span {
	return lexer.Span{Start: node.Condition.Span().Start, End: node.FalseExpr.Span().End}
}
func (node *ConditionalExpressionNode) Expression() {}
