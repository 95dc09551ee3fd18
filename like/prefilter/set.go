package prefilter

import (
	"github.com/coregx/ahocorasick"
)

// SetFilter rejects inputs that contain none of a batch of required
// literals. Used in front of a set of patterns evaluated per row: when the
// automaton finds no needle, no pattern that contributed a needle can match,
// and only the patterns without a usable literal need full evaluation.
//
// The automaton performs O(n) multi-pattern matching, so the gate costs one
// pass over the input regardless of how many patterns the batch holds.
type SetFilter struct {
	auto *ahocorasick.Automaton
}

// NewSetFilter builds a filter over the given required literals.
// Needles must be non-empty; an empty needle set is a caller bug since the
// filter would reject everything.
func NewSetFilter(needles [][]byte) (*SetFilter, error) {
	builder := ahocorasick.NewBuilder()
	for _, n := range needles {
		builder.AddPattern(n)
	}
	auto, err := builder.Build()
	if err != nil {
		return nil, err
	}
	return &SetFilter{auto: auto}, nil
}

// Accept reports whether s contains at least one of the filter's needles.
func (f *SetFilter) Accept(s []byte) bool {
	return f.auto.IsMatch(s)
}
