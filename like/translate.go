package like

import (
	"errors"
	"fmt"

	"github.com/wyqzos/milvus/like/literal"
	"github.com/wyqzos/milvus/like/meta"
)

// ErrUnsupportedOperand indicates pattern compilation was invoked on a value
// that is not a byte sequence.
var ErrUnsupportedOperand = errors.New("unsupported operand type")

// OperandError wraps ErrUnsupportedOperand with the offending value's type.
type OperandError struct {
	Got any
}

// Error implements the error interface.
func (e *OperandError) Error() string {
	return fmt.Sprintf("like: unsupported operand type %T", e.Got)
}

// Unwrap returns ErrUnsupportedOperand.
func (e *OperandError) Unwrap() error {
	return ErrUnsupportedOperand
}

// TranslateRegex compiles a LIKE pattern into the equivalent reference
// regex. See meta.TranslateRegex for the translation rules; the result is
// consumed by NewRegexMatcher or NewBacktrackMatcher.
func TranslateRegex(pattern string) (string, error) {
	out, err := meta.TranslateRegex([]byte(pattern))
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// TranslateValue is TranslateRegex over a value of unknown type.
//
// Unlike matching, translation is a planning-time operation, so a
// non-byte-sequence operand is reported as a *OperandError rather than
// silently ignored.
func TranslateValue(operand any) (string, error) {
	switch v := operand.(type) {
	case string:
		return TranslateRegex(v)
	case []byte:
		out, err := meta.TranslateRegex(v)
		if err != nil {
			return "", err
		}
		return string(out), nil
	default:
		return "", &OperandError{Got: v}
	}
}

// FixedPrefix returns the longest literal byte prefix every matching input
// must start with. The query planner uses it to seed index range scans; the
// walk stops at the first unescaped wildcard. See literal.FixedPrefix.
func FixedPrefix(pattern string) (string, error) {
	out, err := literal.FixedPrefix([]byte(pattern))
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// RegexMatcher is the linear-time reference backend. See meta.RegexMatcher.
type RegexMatcher = meta.RegexMatcher

// NewRegexMatcher compiles a translated regex for the linear-time backend,
// configured for full-input match with dot-matches-newline in byte mode.
func NewRegexMatcher(regex string) (*RegexMatcher, error) {
	return meta.NewRegexMatcher([]byte(regex))
}

// BacktrackMatcher is the backtracking reference backend, for differential
// testing only. See meta.BacktrackMatcher.
type BacktrackMatcher = meta.BacktrackMatcher

// NewBacktrackMatcher compiles a translated regex for the backtracking
// backend.
func NewBacktrackMatcher(regex string) (*BacktrackMatcher, error) {
	return meta.NewBacktrackMatcher([]byte(regex))
}
