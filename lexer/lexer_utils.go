package lexer

import (
	"strconv"
	"strings"
)

// isDigitASCII reports whether c is an ASCII decimal digit ('0'..'9').
// This is used in the hot path for number scanning.
func isDigitASCII(c byte) bool {
	return c >= '0' && c <= '9'
}

// isHexDigitUpper reports whether c is a hexadecimal digit as permitted
// in integer literals: '0'..'9' and uppercase 'A'..'F' only.
func isHexDigitUpper(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'A' && c <= 'F')
}

// isHexDigitASCII reports whether c is any ASCII hexadecimal digit.
// \uXXXX string escapes accept either case.
func isHexDigitASCII(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// isWhitespace checks if the given byte is insignificant whitespace
// between tokens: space, tab, carriage return, or line feed.
func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

// isAlpha checks if the given byte is an ASCII letter (a-z, A-Z).
// Identifiers in the expression language are ASCII-only.
func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// isIdentChar checks if the given byte may continue an identifier:
// letters, digits, or underscore.
func isIdentChar(c byte) bool {
	return isAlpha(c) || isDigitASCII(c) || c == '_'
}

// readStringLiteral reads and tokenizes a single-quoted string literal,
// resolving escape sequences to their code-point values.
//
// Supported escape sequences:
//   - \\  backslash
//   - \'  single quote
//   - \"  double quote
//   - \n \r \t \b \f  their conventional control characters
//   - \uXXXX  exactly four hex digits, yielding the code point
//
// A raw newline or end of input inside the literal is an
// unterminated_string error; any other escape is a bad_escape error.
//
// Returns:
//   - Token: A STRING_LIT token whose Literal is the decoded value,
//     or INVALID_TYPE at the point of a lexical error
//
// Example:
//
//	Source: 'aAb'
//	Returns: Token{Type: STRING_LIT, Literal: "aAb"}
func readStringLiteral(lex *Lexer) Token {
	start, line, column := lex.Position, lex.Line, lex.Column
	lex.Advance() // Consume opening quote

	var builder strings.Builder

	for lex.Current != '\'' {
		// Unterminated: end of input before the closing quote
		if lex.Current == 0 {
			return lex.errorToken(UNTERMINATED_STRING, lex.Position, lex.Line, lex.Column,
				"string literal not terminated")
		}

		// Raw newlines are not permitted inside string literals
		if lex.Current == '\n' || lex.Current == '\r' {
			return lex.errorToken(UNTERMINATED_STRING, lex.Position, lex.Line, lex.Column,
				"raw newline in string literal")
		}

		if lex.Current == '\\' {
			escStart, escLine, escColumn := lex.Position, lex.Line, lex.Column
			lex.Advance() // Consume the backslash
			if lex.Current == 0 || lex.Current == '\n' || lex.Current == '\r' {
				return lex.errorToken(UNTERMINATED_STRING, lex.Position, lex.Line, lex.Column,
					"string literal not terminated")
			}
			switch lex.Current {
			case '\\':
				builder.WriteByte('\\')
			case '\'':
				builder.WriteByte('\'')
			case '"':
				builder.WriteByte('"')
			case 'n':
				builder.WriteByte('\n')
			case 'r':
				builder.WriteByte('\r')
			case 't':
				builder.WriteByte('\t')
			case 'b':
				builder.WriteByte('\b')
			case 'f':
				builder.WriteByte('\f')
			case 'u':
				// Exactly four hex digits follow
				hexStart := lex.Position + 1
				for i := 0; i < 4; i++ {
					lex.Advance()
					if !isHexDigitASCII(lex.Current) {
						return lex.errorToken(BAD_ESCAPE, escStart, escLine, escColumn,
							"\\u escape requires exactly four hex digits")
					}
				}
				code, err := strconv.ParseUint(lex.Src[hexStart:lex.Position+1], 16, 32)
				if err != nil {
					return lex.errorToken(BAD_ESCAPE, escStart, escLine, escColumn,
						"invalid \\u escape: %s", lex.Src[hexStart:lex.Position+1])
				}
				builder.WriteRune(rune(code))
			default:
				return lex.errorToken(BAD_ESCAPE, escStart, escLine, escColumn,
					"invalid escape sequence: \\%s", string(lex.Current))
			}
			lex.Advance()
			continue
		}

		// Regular byte, UTF-8 passes through untouched
		builder.WriteByte(lex.Current)
		lex.Advance()
	}

	lex.Advance() // Consume closing quote
	return NewTokenWithMetadata(STRING_LIT, builder.String(), start, lex.Position, line, column)
}

// readNumber reads and tokenizes a numeric literal.
//
// Supported forms:
//   - Decimal integers: 0, 10, 123 (no octal; 0123 is decimal)
//   - Hexadecimal integers: 0x1A2B (lowercase x, uppercase hex digits only)
//   - Floats: 1.5, 0.001, 1.5e3, 12e-2 (lowercase e, digits on both
//     sides of any dot)
//
// A dot not followed by a digit is left for the next token, as is an 'e'
// not followed by a valid exponent. A lowercase hex digit inside a 0x
// literal is a bad_number error.
//
// Returns:
//   - Token: An INT_LIT or FLOAT_LIT token, or INVALID_TYPE on error
func readNumber(lex *Lexer) Token {
	start, line, column := lex.Position, lex.Line, lex.Column
	src := lex.Src
	n := lex.SrcLength

	// Hexadecimal integer literal: 0x with uppercase digits
	if lex.Current == '0' && lex.Peek() == 'x' {
		lex.Advance() // consume '0'
		lex.Advance() // consume 'x'
		digits := 0
		for isHexDigitUpper(lex.Current) {
			lex.Advance()
			digits++
		}
		if digits == 0 || (lex.Current >= 'a' && lex.Current <= 'f') {
			return lex.errorToken(BAD_NUMBER, start, line, column,
				"malformed hexadecimal literal (hex digits are 0-9 and uppercase A-F)")
		}
		return NewTokenWithMetadata(INT_LIT, src[start:lex.Position], start, lex.Position, line, column)
	}

	for isDigitASCII(lex.Current) {
		lex.Advance()
	}

	isFloat := false

	// Fractional part: the dot is consumed only when a digit follows,
	// otherwise it belongs to the next token
	if lex.Current == '.' && isDigitASCII(lex.Peek()) {
		isFloat = true
		lex.Advance() // consume '.'
		for isDigitASCII(lex.Current) {
			lex.Advance()
		}
	}

	// Exponent: lowercase e, optional sign, at least one digit
	if lex.Current == 'e' {
		j := lex.Position + 1
		if j < n && (src[j] == '+' || src[j] == '-') {
			j++
		}
		if j < n && isDigitASCII(src[j]) {
			isFloat = true
			for lex.Position < j {
				lex.Advance()
			}
			for isDigitASCII(lex.Current) {
				lex.Advance()
			}
		}
	}

	tokenType := INT_LIT
	if isFloat {
		tokenType = FLOAT_LIT
	}
	return NewTokenWithMetadata(tokenType, src[start:lex.Position], start, lex.Position, line, column)
}

// readIdentifier reads and tokenizes an identifier or keyword.
//
// Rules:
//   - Must start with an ASCII letter or underscore
//   - May contain letters, digits, or underscores
//   - Keywords (null, true, false, not, and, or) are identified via
//     lookupIdent as maximal matches
func readIdentifier(lex *Lexer) Token {
	start, line, column := lex.Position, lex.Line, lex.Column

	lex.Advance() // first character already validated by the caller
	for isIdentChar(lex.Current) {
		lex.Advance()
	}

	literal := lex.Src[start:lex.Position]

	return NewTokenWithMetadata(lookupIdent(literal), literal, start, lex.Position, line, column)
}

// readDollarReference reads a $-prefixed variable reference.
// Whitespace is not permitted between '$' and the identifier.
//
// Two shapes:
//   - $ident        -> DOLLAR_IDENT with image "$ident"
//   - $ij.          -> DOLLAR_IJ_DOT, a single token; emitted only when
//     the identifier is exactly "ij" and a dot immediately follows
func readDollarReference(lex *Lexer) Token {
	start, line, column := lex.Position, lex.Line, lex.Column
	lex.Advance() // consume '$'

	if !isAlpha(lex.Current) && lex.Current != '_' {
		return lex.errorToken(UNEXPECTED_CHAR, start, line, column,
			"'$' must be immediately followed by an identifier")
	}

	identStart := lex.Position
	for isIdentChar(lex.Current) {
		lex.Advance()
	}
	name := lex.Src[identStart:lex.Position]

	if name == "ij" && lex.Current == '.' {
		lex.Advance() // consume '.'
		return NewTokenWithMetadata(DOLLAR_IJ_DOT, "$ij.", start, lex.Position, line, column)
	}

	return NewTokenWithMetadata(DOLLAR_IDENT, "$"+name, start, lex.Position, line, column)
}

// readDotAccess reads a dot-access token: a '.' followed by optional
// whitespace (newlines included) and an identifier or a decimal index.
// The whitespace is absorbed and discarded; the emitted image is the dot
// immediately followed by the identifier or digits.
//
//	.name   -> DOT_IDENT  ".name"
//	. 12    -> DOT_INDEX  ".12"
func readDotAccess(lex *Lexer) Token {
	start, line, column := lex.Position, lex.Line, lex.Column
	lex.Advance() // consume '.'
	lex.IgnoreWhitespaces()

	if isDigitASCII(lex.Current) {
		numStart := lex.Position
		for isDigitASCII(lex.Current) {
			lex.Advance()
		}
		return NewTokenWithMetadata(DOT_INDEX, "."+lex.Src[numStart:lex.Position],
			start, lex.Position, line, column)
	}

	if isAlpha(lex.Current) || lex.Current == '_' {
		identStart := lex.Position
		for isIdentChar(lex.Current) {
			lex.Advance()
		}
		return NewTokenWithMetadata(DOT_IDENT, "."+lex.Src[identStart:lex.Position],
			start, lex.Position, line, column)
	}

	return lex.errorToken(UNEXPECTED_CHAR, start, line, column,
		"expected identifier or index after '.'")
}
