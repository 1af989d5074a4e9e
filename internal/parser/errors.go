package parser

import "fmt"

// ParseError reports where parsing failed and what the grammar expected
// there. Position is a byte offset into the original raw input passed to
// Parse (not a trimmed or decorative-word-stripped copy) — the offset of the
// start of the token the grammar rejected, so a caller can point the user at
// the word that needs fixing.
type ParseError struct {
	Position int
	Expected []string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at byte %d: expected %v", e.Position, e.Expected)
}

func newParseError(pos int, expected ...string) *ParseError {
	return &ParseError{Position: pos, Expected: expected}
}
