package literal

import (
	"github.com/wyqzos/milvus/like/segment"
)

// RequiredLiteral returns the longest contiguous literal byte run of the
// compiled pattern. Every input the pattern matches contains this run, which
// makes it a sound prefilter needle: if the run is absent the input cannot
// match.
//
// Runs are bounded by '%' (segment boundaries) and '_' (wildcard positions
// inside a segment). The returned slice aliases the matcher's compiled
// literal bytes and must not be modified. Returns nil for patterns with no
// literal bytes (e.g. "%", "___").
func RequiredLiteral(m *segment.Matcher) []byte {
	var best []byte
	for _, seg := range m.Segments() {
		li, ui, runStart := 0, 0, 0
		for p := 0; p <= seg.Length; p++ {
			atUnderscore := p < seg.Length && ui < len(seg.Underscores) && int(seg.Underscores[ui]) == p
			if p == seg.Length || atUnderscore {
				if li-runStart > len(best) {
					best = seg.Literal[runStart:li]
				}
				runStart = li
				if atUnderscore {
					ui++
				}
				continue
			}
			li++
		}
	}
	return best
}
