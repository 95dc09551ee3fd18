package like

import (
	"github.com/wyqzos/milvus/like/literal"
	"github.com/wyqzos/milvus/like/prefilter"
)

// MatcherSet evaluates a batch of LIKE patterns against each row value.
//
// Construction extracts every pattern's required literal and builds one
// Aho-Corasick automaton over them. Per row, a single automaton pass rejects
// all patterns whose literal is absent; only the remainder run their full
// matchers. Patterns without a usable literal (e.g. "%", "___") are always
// evaluated.
//
// Like Matcher, a MatcherSet is immutable after construction and safe for
// concurrent use.
type MatcherSet struct {
	matchers []*Matcher

	// gate is the batch literal filter; nil when no pattern contributed a
	// needle or prefiltering is disabled.
	gate *prefilter.SetFilter

	// gated[i] is true when pattern i contributed a needle to the gate
	// and may be skipped on a gate reject.
	gated []bool
}

// NewMatcherSet compiles a batch of patterns with the default configuration.
func NewMatcherSet(patterns []string) (*MatcherSet, error) {
	return NewMatcherSetWithConfig(patterns, DefaultConfig())
}

// NewMatcherSetWithConfig compiles a batch of patterns with custom
// configuration. Compilation fails on the first malformed pattern.
func NewMatcherSetWithConfig(patterns []string, config Config) (*MatcherSet, error) {
	ms := &MatcherSet{
		matchers: make([]*Matcher, 0, len(patterns)),
		gated:    make([]bool, len(patterns)),
	}

	var needles [][]byte
	for i, p := range patterns {
		m, err := CompileWithConfig(p, config)
		if err != nil {
			return nil, err
		}
		ms.matchers = append(ms.matchers, m)

		if !config.EnablePrefilter {
			continue
		}
		if req := literal.RequiredLiteral(m.engine.Matcher()); len(req) >= config.MinLiteralLen {
			needles = append(needles, req)
			ms.gated[i] = true
		}
	}

	if len(needles) > 0 {
		gate, err := prefilter.NewSetFilter(needles)
		if err != nil {
			// The automaton is an optimization; fall back to plain
			// per-pattern evaluation.
			for i := range ms.gated {
				ms.gated[i] = false
			}
			return ms, nil
		}
		ms.gate = gate
	}
	return ms, nil
}

// Len returns the number of patterns in the set.
func (ms *MatcherSet) Len() int {
	return len(ms.matchers)
}

// Matchers returns the compiled matchers in pattern order.
// The returned slice is shared and must not be modified.
func (ms *MatcherSet) Matchers() []*Matcher {
	return ms.matchers
}

// Match evaluates every pattern against s. results is reused when it has
// sufficient capacity; the returned slice holds one entry per pattern in
// order.
func (ms *MatcherSet) Match(s []byte, results []bool) []bool {
	if cap(results) < len(ms.matchers) {
		results = make([]bool, len(ms.matchers))
	}
	results = results[:len(ms.matchers)]

	rejectGated := ms.gate != nil && !ms.gate.Accept(s)
	for i, m := range ms.matchers {
		if rejectGated && ms.gated[i] {
			results[i] = false
			continue
		}
		results[i] = m.Match(s)
	}
	return results
}

// MatchAny reports whether at least one pattern in the set matches s.
func (ms *MatcherSet) MatchAny(s []byte) bool {
	rejectGated := ms.gate != nil && !ms.gate.Accept(s)
	for i, m := range ms.matchers {
		if rejectGated && ms.gated[i] {
			continue
		}
		if m.Match(s) {
			return true
		}
	}
	return false
}
