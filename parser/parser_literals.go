package parser

import (
	"strconv"
	"strings"

	"github.com/texprlang/texpr/lexer"
)

// parseNullLiteral parses the null literal. Null carries no value.
func (par *Parser) parseNullLiteral() ExpressionNode {
	return &NullLiteralExpressionNode{
		Token: par.CurrToken,
	}
}

// parseBooleanLiteral parses boolean literal expressions.
//
// Examples:
//
//	true, false
func (par *Parser) parseBooleanLiteral() ExpressionNode {
	token := par.CurrToken
	return &BooleanLiteralExpressionNode{
		Token: token,
		Value: token.Type == lexer.TRUE_KEY,
	}
}

// parseIntegerLiteral parses integer literal expressions, decimal or
// hexadecimal, into a signed 64-bit value. A literal that does not fit
// in int64 is a parse error rather than a silent wrap.
//
// Examples:
//
//	42, 0, 0x1A2B
func (par *Parser) parseIntegerLiteral() ExpressionNode {
	token := par.CurrToken

	var val int64
	var err error
	if strings.HasPrefix(token.Literal, "0x") {
		val, err = strconv.ParseInt(token.Literal[2:], 16, 64)
	} else {
		val, err = strconv.ParseInt(token.Literal, 10, 64)
	}
	if err != nil {
		par.errorAtf(UNEXPECTED_TOKEN, token, "could not parse number literal: %s", token.Literal)
		return nil
	}

	return &IntegerLiteralExpressionNode{
		Token: token,
		Value: val,
	}
}

// parseFloatLiteral parses floating-point literal expressions into an
// IEEE-754 double.
//
// Examples:
//
//	3.14, 0.001, 1.5e3, 12e-2
func (par *Parser) parseFloatLiteral() ExpressionNode {
	token := par.CurrToken
	val, err := strconv.ParseFloat(token.Literal, 64)
	if err != nil {
		par.errorAtf(UNEXPECTED_TOKEN, token, "could not parse float literal: %s", token.Literal)
		return nil
	}
	return &FloatLiteralExpressionNode{
		Token: token,
		Value: val,
	}
}

// parseStringLiteral parses string literal expressions. The lexer has
// already stripped the quotes and resolved the escape sequences, so the
// token image is the decoded value.
//
// Examples:
//
//	'hello', 'a\tb', '✓'
func (par *Parser) parseStringLiteral() ExpressionNode {
	return &StringLiteralExpressionNode{
		Token: par.CurrToken,
		Value: par.CurrToken.Literal,
	}
}
