package parser

import (
	"github.com/texprlang/texpr/lexer"
)

// parseBracketLiteral parses the two composite literals, which both
// start with '['. Bounded lookahead decides between them:
//
//	[]            empty list
//	[:]           empty map
//	[Expr , ...   list
//	[Expr ]       one-element list
//	[Expr : ...   map
//
// For the non-empty forms one expression is parsed first and the token
// after it settles the question, so nothing is ever re-parsed. Before
// any map key is consumed, an unquoted single identifier followed by ':'
// is rejected: it would be ambiguous with a one-segment global.
func (par *Parser) parseBracketLiteral() ExpressionNode {
	openToken := par.CurrToken

	switch par.NextToken.Type {
	case lexer.RIGHT_BRACKET:
		// [] is the empty list
		par.advance()
		return &ListLiteralExpressionNode{
			Token:    openToken,
			Elements: make([]ExpressionNode, 0),
			End:      par.CurrToken.End,
		}
	case lexer.COLON_DELIM:
		// [:] is the empty map
		par.advance()
		if !par.expectAdvance(lexer.RIGHT_BRACKET) {
			return nil
		}
		return &MapLiteralExpressionNode{
			Token:    openToken,
			Children: make([]ExpressionNode, 0),
			End:      par.CurrToken.End,
		}
	}

	par.advance() // move past [ to the first element or key
	if par.checkMapKeyNotIdentifier() {
		return nil
	}
	first := par.parseExpression()
	if first == nil {
		return nil
	}

	if par.NextToken.Type == lexer.COLON_DELIM {
		return par.parseMapLiteralRemainder(openToken, first)
	}
	return par.parseListLiteralRemainder(openToken, first)
}

// parseListLiteralRemainder parses the rest of a list literal after its
// first element. A trailing comma is allowed once at least one element
// precedes it.
//
// Examples:
//
//	[1, 2, 3], ['a', 'b',], [$x]
func (par *Parser) parseListLiteralRemainder(openToken lexer.Token, first ExpressionNode) ExpressionNode {
	listNode := &ListLiteralExpressionNode{
		Token:    openToken,
		Elements: []ExpressionNode{first},
	}

	for {
		switch par.NextToken.Type {
		case lexer.RIGHT_BRACKET:
			par.advance()
			listNode.End = par.CurrToken.End
			return listNode
		case lexer.COMMA_DELIM:
			par.advance() // move to ,
			if par.NextToken.Type == lexer.RIGHT_BRACKET {
				// trailing comma
				par.advance()
				listNode.End = par.CurrToken.End
				return listNode
			}
			par.advance() // move past , to the next element
			expr := par.parseExpression()
			if expr == nil {
				return nil
			}
			listNode.Elements = append(listNode.Elements, expr)
		default:
			par.errorAtf(EXPECTED_TOKEN, par.NextToken, "expected , or ], got %s",
				describeToken(par.NextToken))
			return nil
		}
	}
}

// parseMapLiteralRemainder parses the rest of a map literal after its
// first key. The next token is known to be ':'. Children are recorded
// alternating key, value, key, value in source order. A trailing comma
// is allowed after at least one entry.
//
// Examples:
//
//	['aaa': 'blah', 'bbb': 123], [1: 'one',]
func (par *Parser) parseMapLiteralRemainder(openToken lexer.Token, firstKey ExpressionNode) ExpressionNode {
	mapNode := &MapLiteralExpressionNode{
		Token:    openToken,
		Children: []ExpressionNode{firstKey},
	}

	// value of the first entry
	par.advance() // move to :
	par.advance() // move past : to the value
	value := par.parseExpression()
	if value == nil {
		return nil
	}
	mapNode.Children = append(mapNode.Children, value)

	for {
		switch par.NextToken.Type {
		case lexer.RIGHT_BRACKET:
			par.advance()
			mapNode.End = par.CurrToken.End
			return mapNode
		case lexer.COMMA_DELIM:
			par.advance() // move to ,
			if par.NextToken.Type == lexer.RIGHT_BRACKET {
				// trailing comma
				par.advance()
				mapNode.End = par.CurrToken.End
				return mapNode
			}
			par.advance() // move past , to the next key
			if par.checkMapKeyNotIdentifier() {
				return nil
			}
			key := par.parseExpression()
			if key == nil {
				return nil
			}
			mapNode.Children = append(mapNode.Children, key)
			if !par.expectAdvance(lexer.COLON_DELIM) {
				return nil
			}
			par.advance() // move past : to the value
			value := par.parseExpression()
			if value == nil {
				return nil
			}
			mapNode.Children = append(mapNode.Children, value)
		default:
			par.errorAtf(EXPECTED_TOKEN, par.NextToken, "expected , or ], got %s",
				describeToken(par.NextToken))
			return nil
		}
	}
}

// checkMapKeyNotIdentifier rejects an unquoted single identifier in key
// position: the current token is an identifier and the next token is
// ':'. Reports the error and returns true when the input is rejected.
//
// The restriction keeps map keys unambiguous; a one-segment global used
// as a key must be parenthesized, a string key must be quoted.
func (par *Parser) checkMapKeyNotIdentifier() bool {
	if par.CurrToken.Type == lexer.IDENTIFIER_ID && par.NextToken.Type == lexer.COLON_DELIM {
		par.errorAtf(DISALLOWED_MAP_KEY, par.CurrToken,
			"Disallowed single-identifier key %q in map literal (please use a string key in single quotes, or parenthesize a global key)",
			par.CurrToken.Literal)
		return true
	}
	return false
}
