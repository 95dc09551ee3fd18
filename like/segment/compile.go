package segment

import (
	"github.com/wyqzos/milvus/internal/conv"
)

// Matcher is a LIKE pattern compiled to segment form.
//
// Compilation partitions the pattern on unescaped '%'. Evaluation locates the
// segments in order in the input, honoring the anchoring implied by the
// absence of a leading or trailing '%'.
//
// A Matcher is immutable after Compile and safe for concurrent use from any
// number of goroutines without synchronization. Match does not allocate and
// does not retain the input slice.
//
// Example:
//
//	m, err := segment.Compile([]byte(`file\_%.txt`))
//	if err != nil {
//	    return err
//	}
//	m.Match([]byte("file_report.txt")) // true
type Matcher struct {
	segments []Segment

	// leadingWildcard is true iff the pattern begins with an unescaped '%'.
	// When false the first segment is anchored at offset 0.
	leadingWildcard bool

	// trailingWildcard is true iff the pattern ends with an unescaped '%'.
	// When false the last segment is anchored at the end of input.
	trailingWildcard bool

	// minLength is the sum of segment lengths. Segments located across '%'
	// may overlap, so a matching input can be shorter (`%aa%aa%` has
	// minLength 4 and matches "aaa").
	minLength int
}

// Compile parses a LIKE pattern into a segment Matcher.
//
// Returns a *ParseError wrapping ErrTrailingEscape if the pattern ends with a
// lone escape byte. Compilation allocates O(len(pattern)) bytes once; the
// resulting Matcher is read-only.
func Compile(pattern []byte) (*Matcher, error) {
	m := &Matcher{}

	var (
		literal     []byte
		underscores []uint32
		length      int
		sawToken    bool
	)

	flush := func() {
		m.segments = append(m.segments, Segment{
			Literal:     literal,
			Underscores: underscores,
			Length:      length,
		})
		m.minLength += length
		literal = nil
		underscores = nil
		length = 0
	}

	err := Scan(pattern, func(tok Token) bool {
		switch tok.Kind {
		case TokenAnyRun:
			if !sawToken {
				m.leadingWildcard = true
			}
			m.trailingWildcard = true
			flush()
		case TokenAnyByte:
			m.trailingWildcard = false
			underscores = append(underscores, conv.IntToUint32(length))
			length++
		default:
			m.trailingWildcard = false
			literal = append(literal, tok.Byte)
			length++
		}
		sawToken = true
		return true
	})
	if err != nil {
		return nil, err
	}
	flush()

	return m, nil
}

// MustCompile is like Compile but panics on error.
// It simplifies initialization of package-level matchers for known-good
// patterns.
func MustCompile(pattern []byte) *Matcher {
	m, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return m
}

// Segments returns the compiled segments in pattern order.
// The returned slice is shared and must not be modified.
func (m *Matcher) Segments() []Segment {
	return m.segments
}

// LeadingWildcard reports whether the pattern begins with an unescaped '%'.
func (m *Matcher) LeadingWildcard() bool {
	return m.leadingWildcard
}

// TrailingWildcard reports whether the pattern ends with an unescaped '%'.
func (m *Matcher) TrailingWildcard() bool {
	return m.trailingWildcard
}

// MinLength returns the sum of the segment lengths. It is the minimum byte
// length of a matching input only when no two segments overlap in it; see
// Match.
func (m *Matcher) MinLength() int {
	return m.minLength
}
