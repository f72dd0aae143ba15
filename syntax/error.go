package syntax

import (
	"errors"
	"fmt"
)

// Fatal parse errors. Parse never returns a partially-built tree alongside
// one of these; the whole parse is abandoned.
var (
	// ErrUnmatchedParen indicates a ')' with no open group to close.
	ErrUnmatchedParen = errors.New("unexpected ')': no open group")

	// ErrMissingRepeatArgument indicates '*' or '+' with no preceding atom.
	ErrMissingRepeatArgument = errors.New("missing argument to repetition operator")

	// ErrEmptyClass indicates a character class with no members, '[]' or '[^]'.
	ErrEmptyClass = errors.New("empty character class")

	// ErrUnterminatedClass indicates a class whose ']' never arrived.
	ErrUnterminatedClass = errors.New("unterminated character class")

	// ErrInvalidEscape indicates a backslash followed by a character outside
	// the escape table.
	ErrInvalidEscape = errors.New("invalid escape sequence")

	// ErrTrailingBackslash indicates a pattern ending immediately after '\'.
	ErrTrailingBackslash = errors.New("trailing backslash at end of pattern")

	// ErrNestedTooDeep indicates group nesting beyond the configured limit.
	ErrNestedTooDeep = errors.New("groups nested too deeply")
)

// ParseError wraps a fatal parse error with the pattern and the byte
// position of the offending character.
//
// Use errors.Is to test for the specific violated rule:
//
//	_, err := syntax.Parse("a**b[")
//	if errors.Is(err, syntax.ErrUnterminatedClass) {
//	    // ...
//	}
type ParseError struct {
	Pattern string
	Pos     int
	Err     error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("error parsing pattern %q at position %d: %v", e.Pattern, e.Pos, e.Err)
}

// Unwrap returns the violated-rule sentinel.
func (e *ParseError) Unwrap() error {
	return e.Err
}
