package parser

import (
	"fmt"
	"strings"
)

// ParseErrorKind tags the category of a parse error.
type ParseErrorKind string

// The parse error kinds.
const (
	UNEXPECTED_TOKEN   ParseErrorKind = "unexpected_token"   // a token that cannot appear here
	EXPECTED_TOKEN     ParseErrorKind = "expected_token"     // a specific token was required
	RESERVED_IJ        ParseErrorKind = "reserved_ij"        // 'ij' used as a variable or base key
	DISALLOWED_MAP_KEY ParseErrorKind = "disallowed_map_key" // unquoted single-identifier map key
	TRAILING_INPUT     ParseErrorKind = "trailing_input"     // tokens remain after the parsed form
)

// ParseError represents a parsing error with location information.
// The offset is the byte offset of the offending (lookahead) token.
type ParseError struct {
	Kind    ParseErrorKind // Category of the error
	Offset  int            // Byte offset of the offending token
	Line    int            // Line of the offending token (1-indexed)
	Column  int            // Column of the offending token (1-indexed)
	Message string         // Human-readable description
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("[%d:%d] PARSER ERROR: %s", e.Line, e.Column, e.Message)
}

// JoinErrors renders a collected error list as one message, one error per
// line. Used by the CLI when showing everything that was found.
func JoinErrors(errs []*ParseError) string {
	msgs := make([]string, 0, len(errs))
	for _, err := range errs {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "\n")
}
