package parser

import "github.com/texprlang/texpr/lexer"

// Operator precedence constants.
// Higher number = higher precedence (binds tighter)
//
// Precedence Hierarchy (lowest to highest):
// 1. Ternary ? : (right-biased)
// 2. Logical OR
// 3. Logical AND
// 4. Equality operators
// 5. Relational operators
// 6. Additive operators
// 7. Multiplicative operators
// 8. Unary/Prefix operators
//
// All binary operators are left-associative, so the right operand of an
// operator is parsed at its precedence plus one. The ternary is handled
// by its own parse function, which parses both branches back at the
// lowest level to get the right-biased reading.
//
// Example: In "1 + 2 * 3", multiplication binds tighter than addition,
// so it's parsed as "1 + (2 * 3)" rather than "(1 + 2) * 3"
const (
	MINIMUM_PRIORITY = 0 // Base priority for starting expression parsing

	// Ternary conditional: ? :
	// Example: a ? b : c ? d : e is parsed as a ? b : (c ? d : e)
	TERNARY_PRIORITY = 10

	// Logical OR: or
	OR_PRIORITY = 20

	// Logical AND: and
	// Example: a and b binds tighter than a or b
	AND_PRIORITY = 30

	// Equality operators: == !=
	EQUALITY_PRIORITY = 40

	// Relational operators: < > <= >=
	RELATIONAL_PRIORITY = 50

	// Additive operators: + -
	PLUS_PRIORITY = 60

	// Multiplicative operators: * / %
	MUL_PRIORITY = 70

	// Unary/Prefix operators: - not
	// Binds tighter than any binary: -a * b is (-a) * b
	PREFIX_PRIORITY = 80
)

// getPrecedence returns the precedence level for a given token.
// This function is central to the Pratt parsing algorithm, determining
// how tightly operators bind to their operands.
//
// Returns:
//
//	An integer precedence level (higher = tighter binding), or -1 for
//	tokens that are not binary operators. A '-' seen here is always the
//	binary minus: the lookahead that consults precedence happens only
//	after a complete operand.
func getPrecedence(token *lexer.Token) int {
	switch token.Type {

	// Multiplicative: * / %
	case lexer.MUL_OP, lexer.DIV_OP, lexer.MOD_OP:
		return MUL_PRIORITY

	// Additive: + -
	case lexer.PLUS_OP, lexer.MINUS_OP:
		return PLUS_PRIORITY

	// Relational: < > <= >=
	case lexer.LT_OP, lexer.GT_OP, lexer.LE_OP, lexer.GE_OP:
		return RELATIONAL_PRIORITY

	// Equality: == !=
	case lexer.EQ_OP, lexer.NE_OP:
		return EQUALITY_PRIORITY

	// Logical AND: and
	case lexer.AND_OP:
		return AND_PRIORITY

	// Logical OR: or
	case lexer.OR_OP:
		return OR_PRIORITY

	// Ternary: ? (lowest operator precedence)
	case lexer.QUESTION_OP:
		return TERNARY_PRIORITY

	default:
		return -1 // Not a binary operator token
	}
}

// binaryParseFunction is a function type for parsing binary (and
// ternary) expressions. The already-parsed left operand is passed in;
// the function consumes the operator and the remaining operands and
// returns the complete expression node.
type binaryParseFunction func(ExpressionNode) ExpressionNode

// unaryParseFunction is a function type for parsing the constructs that
// can start an expression: literals, references, prefix operators, and
// bracketed forms.
type unaryParseFunction func() ExpressionNode

// registerUnaryFuncs is a helper to register a unary parsing function
// for multiple token types.
func (par *Parser) registerUnaryFuncs(f unaryParseFunction, tokenTypes ...lexer.TokenType) {
	for _, tokenType := range tokenTypes {
		par.UnaryFuncs[tokenType] = f
	}
}

// registerBinaryFuncs is a helper to register a binary parsing function
// for multiple token types.
func (par *Parser) registerBinaryFuncs(f binaryParseFunction, tokenTypes ...lexer.TokenType) {
	for _, tokenType := range tokenTypes {
		par.BinaryFuncs[tokenType] = f
	}
}
