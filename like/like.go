// Package like provides a high-performance SQL LIKE pattern matcher for
// string-typed columns.
//
// A pattern uses '%' (any run of bytes), '_' (exactly one byte) and '\' as
// escape. Matching is byte-exact and full-input: the entire value must be
// consumed by the pattern, and a multi-byte UTF-8 character is matched by as
// many '_' as its byte length.
//
// like achieves high per-row throughput through:
//   - Compile-once segment form evaluated with a linear, backtracking-free walk
//   - Literal fast paths for the common shapes `lit`, `lit%`, `%lit`, `%lit%`
//   - SWAR-accelerated substring search primitives
//   - Required-literal prefilters, including a batch Aho-Corasick gate
//
// Basic usage:
//
//	m, err := like.Compile(`file\_%.csv`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	m.MatchString("file_2024.csv") // true
//	m.Match(columnValue)           // per-row evaluation, zero allocation
//
// The reference semantics are defined by TranslateRegex together with
// NewRegexMatcher: a full-input, dot-matches-newline regex run in byte mode.
// The fast matcher agrees with that reference, with one deliberate
// exception: after a segment is located by search, the next segment may
// start as early as one byte past that segment's start, so consecutive
// segments separated by '%' may overlap in the input (pattern `%aa%aa%`
// matches `aaa`, and `%abc%b%` matches `abcx`).
package like

import (
	"github.com/wyqzos/milvus/like/meta"
)

// Config controls engine behavior. See the meta package for the fields.
type Config = meta.Config

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() Config {
	return meta.DefaultConfig()
}

// Matcher represents a compiled LIKE pattern.
//
// A Matcher is immutable after compilation (statistics counters aside) and
// safe for concurrent use. Inputs are borrowed for the duration of a call
// and never retained.
type Matcher struct {
	engine  *meta.Engine
	pattern string
}

// Compile compiles a LIKE pattern.
//
// Returns an error only for a malformed pattern: a trailing lone escape
// byte. The error unwraps to segment.ErrTrailingEscape.
func Compile(pattern string) (*Matcher, error) {
	engine, err := meta.Compile([]byte(pattern))
	if err != nil {
		return nil, err
	}
	return &Matcher{
		engine:  engine,
		pattern: pattern,
	}, nil
}

// CompileWithConfig compiles a pattern with custom configuration.
func CompileWithConfig(pattern string, config Config) (*Matcher, error) {
	engine, err := meta.CompileWithConfig([]byte(pattern), config)
	if err != nil {
		return nil, err
	}
	return &Matcher{
		engine:  engine,
		pattern: pattern,
	}, nil
}

// MustCompile compiles a pattern and panics if it fails.
//
// This is useful for patterns known to be valid at compile time:
//
//	var csvFiles = like.MustCompile(`%.csv`)
func MustCompile(pattern string) *Matcher {
	m, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return m
}

// Pattern returns the source pattern the matcher was compiled from.
func (m *Matcher) Pattern() string {
	return m.pattern
}

// Strategy returns the execution strategy selected for this pattern.
func (m *Matcher) Strategy() meta.Strategy {
	return m.engine.Strategy()
}

// Stats returns a snapshot of the engine's execution statistics.
func (m *Matcher) Stats() meta.Stats {
	return m.engine.Stats()
}

// Match reports whether s is a full match of the pattern.
// Evaluation never fails and never allocates.
func (m *Matcher) Match(s []byte) bool {
	return m.engine.Match(s)
}

// MatchString is Match over the bytes of s.
func (m *Matcher) MatchString(s string) bool {
	return m.Match([]byte(s))
}

// MatchValue evaluates the pattern against a value of unknown type.
//
// Byte-sequence operands (string, []byte) are matched normally; any other
// operand, including nil, yields false without an error. The silent-false
// semantics let a compiled matcher sit in a generic predicate slot over
// heterogeneously-typed column values.
func (m *Matcher) MatchValue(operand any) bool {
	switch v := operand.(type) {
	case string:
		return m.MatchString(v)
	case []byte:
		return m.Match(v)
	default:
		return false
	}
}
