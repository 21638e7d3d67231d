/*
Package parser implements a Pratt parser (top-down operator precedence
parser) for the expression language embedded in the template engine.

The parser converts the token stream produced by the lexer into a typed
Abstract Syntax Tree (AST). It recognizes:
- Primitive literals (null, booleans, integers, floats, strings)
- Composite literals (lists, maps)
- Variables, data references (with the $ij. injected namespace), globals
- Function calls
- Binary, unary, and ternary operators with defined precedence

Key Features:
- Pratt parsing algorithm (precedence climbing) for expressions
- Bounded lookahead for the grammar's two ambiguities: function call vs
  identifier, and list vs map literal
- Error collection (doesn't panic on first error); entry points surface
  the first error, with lexical errors taking priority
- Five entry points, one per top-level form, each requiring end of input

The parser builds the tree and nothing else: no evaluation, no constant
folding, no symbol resolution. The parser never mutates a node after
creating it; ExprRootNode.ReplaceChild lets later passes swap the root.
*/
package parser

import (
	"fmt"

	"github.com/texprlang/texpr/lexer"
)

// Parser represents the parser state. A Parser instance owns its lexer
// and current position; independent instances are independent, but a
// single instance must not be shared across goroutines.
type Parser struct {
	Lex       lexer.Lexer // Lexer instance tokenizing the input
	CurrToken lexer.Token // Current token being processed
	NextToken lexer.Token // Next token (for lookahead)

	// Function maps for Pratt parsing
	// These maps associate token types with their parsing functions
	UnaryFuncs  map[lexer.TokenType]unaryParseFunction  // Tokens that can start an expression
	BinaryFuncs map[lexer.TokenType]binaryParseFunction // Binary/infix operators

	// Collect parsing errors instead of panicking
	Errors []*ParseError
}

// NewParser creates and initializes a new Parser for the given input.
// The parser is ready to use immediately; call one of the five entry
// points (ParseExpression, ParseExpressionList, ParseVariable,
// ParseDataReference, ParseGlobal) to parse a top-level form.
func NewParser(src string) *Parser {
	lex := lexer.NewLexer(src)

	par := &Parser{
		Lex: lex,
	}

	par.init()

	return par
}

// init initializes the parser's internal state: the Pratt function maps,
// the error list, and the two-token lookahead.
func (par *Parser) init() {
	par.UnaryFuncs = make(map[lexer.TokenType]unaryParseFunction)
	par.BinaryFuncs = make(map[lexer.TokenType]binaryParseFunction)
	par.Errors = make([]*ParseError, 0)

	// Register unary/prefix parsing functions
	// These handle tokens that can start an expression

	// Parenthesized expressions: (expr); parentheses are erased
	par.registerUnaryFuncs(par.parseParenthesizedExpression, lexer.LEFT_PAREN)

	// Primitive literals
	par.registerUnaryFuncs(par.parseIntegerLiteral, lexer.INT_LIT)
	par.registerUnaryFuncs(par.parseFloatLiteral, lexer.FLOAT_LIT)
	par.registerUnaryFuncs(par.parseStringLiteral, lexer.STRING_LIT)
	par.registerUnaryFuncs(par.parseBooleanLiteral, lexer.TRUE_KEY, lexer.FALSE_KEY)
	par.registerUnaryFuncs(par.parseNullLiteral, lexer.NULL_KEY)

	// Prefix operators: unary minus and logical not
	par.registerUnaryFuncs(par.parseUnaryExpression, lexer.MINUS_OP, lexer.NOT_OP)

	// Identifiers: function call when a '(' follows, dotted global otherwise
	par.registerUnaryFuncs(par.parseIdentifierExpression, lexer.IDENTIFIER_ID)

	// Data references: $name and the injected $ij. namespace
	par.registerUnaryFuncs(par.parseDataRefExpression, lexer.DOLLAR_IDENT, lexer.DOLLAR_IJ_DOT)

	// List and map literals both start with '['
	par.registerUnaryFuncs(par.parseBracketLiteral, lexer.LEFT_BRACKET)

	// Register binary/infix parsing functions

	// Arithmetic operators: *, /, %, +, -
	par.registerBinaryFuncs(par.parseBinaryExpression, lexer.MUL_OP, lexer.DIV_OP, lexer.MOD_OP, lexer.PLUS_OP, lexer.MINUS_OP)

	// Comparison operators: <, >, <=, >=, ==, !=
	par.registerBinaryFuncs(par.parseBinaryExpression, lexer.LT_OP, lexer.GT_OP, lexer.LE_OP, lexer.GE_OP, lexer.EQ_OP, lexer.NE_OP)

	// Word operators: and, or
	par.registerBinaryFuncs(par.parseBinaryExpression, lexer.AND_OP, lexer.OR_OP)

	// Ternary: cond ? then : else (right-biased)
	par.registerBinaryFuncs(par.parseConditionalExpression, lexer.QUESTION_OP)

	// Prime the token lookahead by advancing twice
	// After this, CurrToken and NextToken are both valid
	par.advance()
	par.advance()
}

// advance moves the parser forward by one token:
// CurrToken becomes NextToken, and NextToken is fetched from the lexer.
func (par *Parser) advance() {
	par.CurrToken = par.NextToken
	par.NextToken = par.Lex.NextToken()
}

// expectAdvance checks if the next token matches the expected type, and
// if so, advances the parser onto it.
//
// Returns:
//   - true if the next token matched and we advanced, false otherwise
func (par *Parser) expectAdvance(expected lexer.TokenType) bool {
	if !par.expectNext(expected) {
		return false
	}
	par.advance()
	return true
}

// expectNext checks if the next token matches the expected type.
// If not, it records an expected_token error at the lookahead token.
// This function doesn't advance the parser, it only checks.
func (par *Parser) expectNext(expected lexer.TokenType) bool {
	if par.NextToken.Type != expected {
		par.errorAtf(EXPECTED_TOKEN, par.NextToken, "expected %s, got %s",
			expected, describeToken(par.NextToken))
		return false
	}
	return true
}

// errorAtf records a parse error of the given kind at the given token.
func (par *Parser) errorAtf(kind ParseErrorKind, tok lexer.Token, format string, args ...interface{}) {
	par.Errors = append(par.Errors, &ParseError{
		Kind:    kind,
		Offset:  tok.Offset,
		Line:    tok.Line,
		Column:  tok.Column,
		Message: fmt.Sprintf(format, args...),
	})
}

// HasErrors returns true if there are parsing errors.
func (par *Parser) HasErrors() bool {
	return len(par.Errors) > 0
}

// GetErrors returns all parsing errors collected during parsing.
func (par *Parser) GetErrors() []*ParseError {
	return par.Errors
}

// describeToken renders a token for error messages.
func describeToken(tok lexer.Token) string {
	switch tok.Type {
	case lexer.EOF_TYPE:
		return "end of input"
	case lexer.INVALID_TYPE:
		return "invalid input"
	default:
		return fmt.Sprintf("%q", tok.Literal)
	}
}

// expectEndOfInput records a trailing_input error when tokens remain
// after the parsed form. Called by every entry point: each top-level
// form must fully consume its input.
func (par *Parser) expectEndOfInput() {
	if par.NextToken.Type != lexer.EOF_TYPE {
		par.errorAtf(TRAILING_INPUT, par.NextToken, "unexpected input after expression: %s",
			describeToken(par.NextToken))
	}
}

// Err returns the error an entry point should surface: the lexical error
// if one occurred (it is the root cause of any parse error that follows
// it), otherwise the first collected parse error, otherwise nil.
func (par *Parser) Err() error {
	if par.Lex.Err != nil {
		return par.Lex.Err
	}
	if len(par.Errors) > 0 {
		return par.Errors[0]
	}
	return nil
}

// ParseExpression parses the input as a single expression and requires
// end of input after it.
//
// Returns:
//   - *ExprRootNode: the root wrapper over the expression, or nil on error
//   - error: the lexical or parse error, carrying the input offset
//
// Example:
//
//	par := NewParser("1 + 2 * 3")
//	root, err := par.ParseExpression()
func (par *Parser) ParseExpression() (*ExprRootNode, error) {
	expr := par.parseExpression()
	if expr == nil {
		return nil, par.Err()
	}
	par.expectEndOfInput()
	if err := par.Err(); err != nil {
		return nil, err
	}
	return &ExprRootNode{Child: expr}, nil
}

// ParseExpressionList parses the input as one or more comma-separated
// expressions and requires end of input. Trailing commas are not
// permitted; an empty input is an error.
//
// Returns:
//   - []*ExprRootNode: one root wrapper per expression, in source order
//   - error: the lexical or parse error
func (par *Parser) ParseExpressionList() ([]*ExprRootNode, error) {
	if par.CurrToken.Type == lexer.EOF_TYPE {
		par.errorAtf(UNEXPECTED_TOKEN, par.CurrToken, "empty expression list")
		return nil, par.Err()
	}

	roots := make([]*ExprRootNode, 0)
	for {
		expr := par.parseExpression()
		if expr == nil {
			return nil, par.Err()
		}
		roots = append(roots, &ExprRootNode{Child: expr})
		if par.NextToken.Type != lexer.COMMA_DELIM {
			break
		}
		par.advance() // move to ,
		par.advance() // move past , to the next expression
	}

	par.expectEndOfInput()
	if err := par.Err(); err != nil {
		return nil, err
	}
	return roots, nil
}

// ParseVariable parses the input as a single variable reference: a '$'
// immediately followed by an identifier, with the reserved name 'ij'
// rejected. Requires end of input.
//
// Returns:
//   - *ExprRootNode: the root wrapper over a VarExpressionNode
//   - error: the lexical or parse error
func (par *Parser) ParseVariable() (*ExprRootNode, error) {
	if par.CurrToken.Type != lexer.DOLLAR_IDENT {
		par.errorAtf(UNEXPECTED_TOKEN, par.CurrToken, "expected variable, got %s",
			describeToken(par.CurrToken))
		return nil, par.Err()
	}

	name := par.CurrToken.Literal[1:]
	if name == "ij" {
		par.errorAtf(RESERVED_IJ, par.CurrToken, "Invalid param name 'ij' ('ij' is for injected data)")
		return nil, par.Err()
	}

	varNode := &VarExpressionNode{
		Token: par.CurrToken,
		Name:  name,
	}

	par.expectEndOfInput()
	if err := par.Err(); err != nil {
		return nil, err
	}
	return &ExprRootNode{Child: varNode}, nil
}

// ParseDataReference parses the input as a single data reference
// ($base.key.0[expr]... or the injected $ij.key form) and requires end
// of input.
//
// Returns:
//   - *ExprRootNode: the root wrapper over a DataRefExpressionNode
//   - error: the lexical or parse error
func (par *Parser) ParseDataReference() (*ExprRootNode, error) {
	if par.CurrToken.Type != lexer.DOLLAR_IDENT && par.CurrToken.Type != lexer.DOLLAR_IJ_DOT {
		par.errorAtf(UNEXPECTED_TOKEN, par.CurrToken, "expected data reference, got %s",
			describeToken(par.CurrToken))
		return nil, par.Err()
	}

	ref := par.parseDataRefExpression()
	if ref == nil {
		return nil, par.Err()
	}
	par.expectEndOfInput()
	if err := par.Err(); err != nil {
		return nil, err
	}
	return &ExprRootNode{Child: ref}, nil
}

// ParseGlobal parses the input as a dotted global name and requires end
// of input. The produced GlobalExpressionNode carries the full dotted
// name joined verbatim.
//
// Returns:
//   - *ExprRootNode: the root wrapper over a GlobalExpressionNode
//   - error: the lexical or parse error
func (par *Parser) ParseGlobal() (*ExprRootNode, error) {
	if par.CurrToken.Type != lexer.IDENTIFIER_ID {
		par.errorAtf(UNEXPECTED_TOKEN, par.CurrToken, "expected global, got %s",
			describeToken(par.CurrToken))
		return nil, par.Err()
	}

	global := par.parseGlobalExpression()
	if global == nil {
		return nil, par.Err()
	}
	par.expectEndOfInput()
	if err := par.Err(); err != nil {
		return nil, err
	}
	return &ExprRootNode{Child: global}, nil
}
