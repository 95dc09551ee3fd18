// Package literal extracts literal byte sequences from LIKE patterns.
//
// The two extractions serve different consumers:
//   - FixedPrefix feeds the query planner: the longest byte prefix every
//     matching input must start with, used to seed index range scans.
//   - RequiredLiteral feeds prefilters: the longest contiguous byte run
//     every matching input must contain somewhere, used for fast candidate
//     rejection before full evaluation.
package literal

import (
	"github.com/wyqzos/milvus/like/segment"
)

// FixedPrefix returns the longest literal byte prefix implied by pattern.
//
// The walk appends decoded literal bytes and stops at the first unescaped
// wildcard ('%' or '_'). It never walks past that wildcard even when later
// parts of the pattern would pin further bytes: range-scan seeding relies on
// the stop point being exactly the first unescaped wildcard.
//
// A pattern with no unescaped wildcard yields the fully decoded pattern.
// A pattern ending in a lone escape byte returns a *segment.ParseError.
//
// Examples:
//
//	FixedPrefix([]byte("abc%"))      // "abc"
//	FixedPrefix([]byte("a_c"))       // "a"
//	FixedPrefix([]byte("%abc"))      // ""
//	FixedPrefix([]byte(`100\%`))     // "100%"
func FixedPrefix(pattern []byte) ([]byte, error) {
	var out []byte
	stopped := false
	err := segment.Scan(pattern, func(tok segment.Token) bool {
		if stopped {
			// Keep scanning: a trailing lone escape after the first
			// wildcard is still a parse error.
			return true
		}
		if tok.Kind == segment.TokenLiteral {
			out = append(out, tok.Byte)
			return true
		}
		stopped = true
		return true
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
