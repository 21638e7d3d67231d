package parser

import (
	"strconv"

	"github.com/texprlang/texpr/lexer"
)

// parseIdentifierExpression parses the constructs that start with a bare
// identifier. One token of lookahead decides: an identifier immediately
// followed by '(' is a function call, anything else is a dotted global.
func (par *Parser) parseIdentifierExpression() ExpressionNode {
	if par.NextToken.Type == lexer.LEFT_PAREN {
		return par.parseFunctionCallExpression()
	}
	return par.parseGlobalExpression()
}

// parseGlobalExpression parses a dotted global name: an identifier
// followed by any number of dot-identifier tokens. The full name is
// joined verbatim into a single scalar; each DOT_IDENT image already
// carries its leading dot.
//
// Examples:
//
//	DEBUG, app.config.flags
func (par *Parser) parseGlobalExpression() ExpressionNode {
	token := par.CurrToken
	name := token.Literal
	end := token.End

	for par.NextToken.Type == lexer.DOT_IDENT {
		par.advance()
		name += par.CurrToken.Literal
		end = par.CurrToken.End
	}

	return &GlobalExpressionNode{
		Token: token,
		Name:  name,
		End:   end,
	}
}

// parseFunctionCallExpression parses a function call: the current token
// is the function name and the next token is '('. Arguments are full
// expressions separated by commas.
//
// Examples:
//
//	length($list), min($a, 3), isNonnull($ij.flags)
func (par *Parser) parseFunctionCallExpression() ExpressionNode {
	callNode := &FunctionCallExpressionNode{
		Token: par.CurrToken,
		Name:  par.CurrToken.Literal,
	}

	if !par.expectAdvance(lexer.LEFT_PAREN) {
		return nil
	}
	// if there are arguments, parse them
	if par.NextToken.Type != lexer.RIGHT_PAREN {
		par.advance()
		for {
			arg := par.parseExpression()
			if arg == nil {
				return nil
			}
			callNode.Arguments = append(callNode.Arguments, arg)
			if par.NextToken.Type == lexer.COMMA_DELIM {
				par.advance()
				par.advance()
			} else {
				break
			}
		}
	}

	if !par.expectAdvance(lexer.RIGHT_PAREN) {
		return nil
	}
	callNode.End = par.CurrToken.End
	return callNode
}

// parseDataRefExpression parses a data reference: a base key introduced
// by '$' or by the injected-data prefix '$ij.', followed by any number
// of access steps.
//
// Grammar:
//
//	( "$ij." IDENT | DOLLAR_IDENT ) ( DOT_IDENT | DOT_INDEX | "[" Expr "]" )*
//
// The first child is always the base DataRefKeyExpressionNode. The
// reserved name 'ij' is rejected as a plain base key; the injected form
// takes whatever identifier follows the dot.
//
// Examples:
//
//	$aaa, $ij.flags, $aaa.bbb.0.ccc[$i + 1]
func (par *Parser) parseDataRefExpression() ExpressionNode {
	refNode := &DataRefExpressionNode{
		Token: par.CurrToken,
	}

	switch par.CurrToken.Type {
	case lexer.DOLLAR_IJ_DOT:
		refNode.IsInjected = true
		if !par.expectAdvance(lexer.IDENTIFIER_ID) {
			return nil
		}
		refNode.Accesses = append(refNode.Accesses, &DataRefKeyExpressionNode{
			Token: par.CurrToken,
			Name:  par.CurrToken.Literal,
		})
	case lexer.DOLLAR_IDENT:
		name := par.CurrToken.Literal[1:]
		if name == "ij" {
			par.errorAtf(RESERVED_IJ, par.CurrToken, "Invalid param name 'ij' ('ij' is for injected data)")
			return nil
		}
		refNode.Accesses = append(refNode.Accesses, &DataRefKeyExpressionNode{
			Token: par.CurrToken,
			Name:  name,
		})
	default:
		par.errorAtf(UNEXPECTED_TOKEN, par.CurrToken, "expected data reference, got %s",
			describeToken(par.CurrToken))
		return nil
	}
	refNode.End = par.CurrToken.End

	// Access chain: .key, .index, or [expr]
	for {
		switch par.NextToken.Type {
		case lexer.DOT_IDENT:
			par.advance()
			refNode.Accesses = append(refNode.Accesses, &DataRefKeyExpressionNode{
				Token: par.CurrToken,
				Name:  par.CurrToken.Literal[1:],
			})
			refNode.End = par.CurrToken.End
		case lexer.DOT_INDEX:
			par.advance()
			index, err := strconv.ParseUint(par.CurrToken.Literal[1:], 10, 32)
			if err != nil {
				par.errorAtf(UNEXPECTED_TOKEN, par.CurrToken, "could not parse index: %s",
					par.CurrToken.Literal)
				return nil
			}
			refNode.Accesses = append(refNode.Accesses, &DataRefIndexExpressionNode{
				Token: par.CurrToken,
				Index: uint32(index),
			})
			refNode.End = par.CurrToken.End
		case lexer.LEFT_BRACKET:
			par.advance() // move to [
			par.advance() // move past [ to the key expression
			key := par.parseExpression()
			if key == nil {
				return nil
			}
			if !par.expectAdvance(lexer.RIGHT_BRACKET) {
				return nil
			}
			refNode.Accesses = append(refNode.Accesses, key)
			refNode.End = par.CurrToken.End
		default:
			return refNode
		}
	}
}
