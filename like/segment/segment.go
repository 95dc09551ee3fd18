package segment

import (
	"fmt"

	"github.com/wyqzos/milvus/simd"
)

// Segment is one fixed-length template of a compiled LIKE pattern: the run of
// literal bytes and '_' wildcards between two consecutive unescaped '%'.
//
// A segment always matches exactly Length bytes of input. Literal holds the
// non-wildcard bytes in order; Underscores holds the ascending positions,
// within the segment's own Length-byte layout, that accept any byte.
//
// Segments are immutable after compilation. An empty segment (Length == 0)
// arises from runs of consecutive '%' and matches the empty string at any
// position.
type Segment struct {
	// Literal contains the non-wildcard bytes of the segment, in order.
	Literal []byte

	// Underscores lists the '_' positions within the segment layout,
	// strictly ascending.
	Underscores []uint32

	// Length is the number of input bytes the segment consumes:
	// len(Literal) + len(Underscores).
	Length int
}

// String returns a debug representation of the segment layout.
// Wildcard positions render as '_'.
func (g *Segment) String() string {
	buf := make([]byte, 0, g.Length)
	li, ui := 0, 0
	for p := 0; p < g.Length; p++ {
		if ui < len(g.Underscores) && int(g.Underscores[ui]) == p {
			buf = append(buf, '_')
			ui++
			continue
		}
		buf = append(buf, g.Literal[li])
		li++
	}
	return fmt.Sprintf("segment{%q}", buf)
}

// MatchesAt reports whether the segment matches s exactly at offset off.
//
// The check is a straight template walk: wildcard positions accept any byte,
// literal positions must compare equal. No allocation.
func (g *Segment) MatchesAt(s []byte, off int) bool {
	if off < 0 || off+g.Length > len(s) {
		return false
	}
	li, ui := 0, 0
	for p := 0; p < g.Length; p++ {
		if ui < len(g.Underscores) && int(g.Underscores[ui]) == p {
			ui++
			continue
		}
		if s[off+p] != g.Literal[li] {
			return false
		}
		li++
	}
	return true
}

// Find returns the smallest offset >= start at which the segment matches s,
// or -1 if there is none.
//
// Segments without wildcards reduce to a substring search and use
// simd.Memmem. Wildcarded segments scan candidate offsets; when the template
// begins with a literal byte, simd.Memchr skips runs of impossible offsets.
func (g *Segment) Find(s []byte, start int) int {
	if start < 0 {
		start = 0
	}
	if start+g.Length > len(s) {
		return -1
	}

	if len(g.Underscores) == 0 {
		idx := simd.Memmem(s[start:], g.Literal)
		if idx < 0 {
			return -1
		}
		return start + idx
	}

	limit := len(s) - g.Length

	// Template starts with a literal byte: candidates are exactly the
	// occurrences of that byte at offsets <= limit.
	if g.Underscores[0] != 0 {
		first := g.Literal[0]
		off := start
		for off <= limit {
			rel := simd.Memchr(s[off:limit+1], first)
			if rel < 0 {
				return -1
			}
			off += rel
			if g.MatchesAt(s, off) {
				return off
			}
			off++
		}
		return -1
	}

	// Template starts with '_': every offset is a candidate.
	for off := start; off <= limit; off++ {
		if g.MatchesAt(s, off) {
			return off
		}
	}
	return -1
}
