package parser

import (
	"github.com/texprlang/texpr/lexer"
)

// parseExpression is the entry point for parsing a full expression,
// ternary included. It delegates to parseInternal with the minimum
// precedence, allowing all operators to be parsed.
func (par *Parser) parseExpression() ExpressionNode {
	return par.parseInternal(MINIMUM_PRIORITY)
}

// parseInternal is the core of the Pratt parsing algorithm.
// It parses expressions while respecting operator precedence.
//
// Algorithm:
//  1. Parse a prefix construct (literal, reference, unary operator, or
//     bracketed form) via the registered unary function
//  2. While the next operator's precedence is at least currPrecedence:
//     a. Parse the operator as an infix expression
//     b. The result becomes the new left operand
//  3. Return the final expression
//
// Binary operators are all left-associative, so their parse functions
// recurse with precedence+1; the one right-biased construct (ternary)
// recurses back at the minimum level inside its own function.
func (par *Parser) parseInternal(currPrecedence int) ExpressionNode {
	unary, has := par.UnaryFuncs[par.CurrToken.Type]
	if !has {
		par.errorAtf(UNEXPECTED_TOKEN, par.CurrToken, "unexpected token: %s",
			describeToken(par.CurrToken))
		return nil
	}
	left := unary()
	if left == nil {
		return nil
	}
	for par.NextToken.Type != lexer.EOF_TYPE && getPrecedence(&par.NextToken) >= currPrecedence {
		binary, has := par.BinaryFuncs[par.NextToken.Type]
		par.advance()
		if !has {
			par.errorAtf(UNEXPECTED_TOKEN, par.CurrToken, "unexpected operator: %s",
				describeToken(par.CurrToken))
			return nil
		}
		left = binary(left)
		if left == nil {
			return nil
		}
	}
	return left
}

// parseParenthesizedExpression parses an expression enclosed in
// parentheses. Parentheses override precedence and are then erased:
// there is no dedicated node for them, the inner expression is returned
// directly.
//
// Syntax:
//
//	(expression)
func (par *Parser) parseParenthesizedExpression() ExpressionNode {
	// we are already at the LEFT_PAREN, so just advance
	par.advance()
	expr := par.parseExpression()
	if expr == nil {
		return nil
	}
	if !par.expectAdvance(lexer.RIGHT_PAREN) {
		return nil
	}
	return expr
}

// parseBinaryExpression parses binary (infix) expressions of the form
// left operator right. The right operand is parsed one precedence level
// up, which yields the left-associative tree: a - b - c is (a - b) - c.
//
// Supported operators:
//
//	Arithmetic: * / % + -
//	Comparison: < > <= >= == !=
//	Logical: and or
func (par *Parser) parseBinaryExpression(left ExpressionNode) ExpressionNode {
	op := par.CurrToken
	par.advance()
	right := par.parseInternal(getPrecedence(&op) + 1)
	if right == nil {
		return nil
	}

	return &BinaryExpressionNode{
		Operation: op,
		Left:      left,
		Right:     right,
	}
}

// parseUnaryExpression parses prefix expressions: unary minus and
// logical not. The operand is parsed at the prefix precedence, which is
// higher than every binary operator, so the prefix binds tightest:
// -a * b is (-a) * b, and chained prefixes nest (- -a, not not $b).
func (par *Parser) parseUnaryExpression() ExpressionNode {
	op := par.CurrToken
	par.advance()
	right := par.parseInternal(PREFIX_PRIORITY)
	if right == nil {
		return nil
	}

	return &UnaryExpressionNode{
		Operation: op,
		Right:     right,
	}
}

// parseConditionalExpression parses the ternary operator. The condition
// has already been parsed as the left operand; this function consumes
// '?', the true branch, ':', and the false branch.
//
// Both branches are parsed back at the minimum precedence, so a nested
// ternary in either branch is consumed greedily. That gives the
// right-biased reading: a ? b : c ? d : e is a ? b : (c ? d : e), and
// a ? b ? c : d : e is a ? (b ? c : d) : e.
func (par *Parser) parseConditionalExpression(cond ExpressionNode) ExpressionNode {
	op := par.CurrToken // the '?'
	par.advance()
	trueExpr := par.parseExpression()
	if trueExpr == nil {
		return nil
	}
	if !par.expectAdvance(lexer.COLON_DELIM) {
		return nil
	}
	par.advance()
	falseExpr := par.parseExpression()
	if falseExpr == nil {
		return nil
	}

	return &ConditionalExpressionNode{
		Operation: op,
		Condition: cond,
		TrueExpr:  trueExpr,
		FalseExpr: falseExpr,
	}
}
