// Package prefilter provides literal-based candidate rejection for LIKE
// evaluation.
//
// A prefilter answers "can this input possibly match?" using only literal
// byte runs that every matching input must contain. A negative answer is
// definitive; a positive answer still requires full evaluation.
package prefilter

import (
	"github.com/wyqzos/milvus/simd"
)

// Literal rejects inputs that do not contain a single required byte run.
// Used per pattern, in front of the general segment walk.
type Literal struct {
	needle []byte
}

// NewLiteral builds a prefilter for the given required literal.
// The needle is retained, not copied.
func NewLiteral(needle []byte) *Literal {
	return &Literal{needle: needle}
}

// Needle returns the literal the filter scans for.
func (f *Literal) Needle() []byte {
	return f.needle
}

// Accept reports whether s contains the required literal. When false, no
// input equal to s can match the pattern the literal was extracted from.
func (f *Literal) Accept(s []byte) bool {
	return simd.Memmem(s, f.needle) >= 0
}

// Find returns the first occurrence of the required literal at or after
// start, or -1.
func (f *Literal) Find(s []byte, start int) int {
	if start < 0 {
		start = 0
	}
	if start > len(s) {
		return -1
	}
	idx := simd.Memmem(s[start:], f.needle)
	if idx < 0 {
		return -1
	}
	return start + idx
}
