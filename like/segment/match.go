package segment

// Match reports whether s is a full match of the compiled pattern: the
// entire input must be consumed, with no implicit surrounding '%'.
//
// The walk keeps a single cursor and never backtracks across segments: each
// segment is a fixed-length template, so the earliest placement of a segment
// is always the most permissive one for the segments after it.
func (m *Matcher) Match(s []byte) bool {
	n := len(s)

	// Fast path: one segment anchored at both ends is a plain template
	// comparison. This also covers the empty pattern, which matches only
	// the empty input.
	if len(m.segments) == 1 && !m.leadingWildcard && !m.trailingWildcard {
		seg := &m.segments[0]
		return n == seg.Length && seg.MatchesAt(s, 0)
	}

	pos := 0
	last := len(m.segments) - 1
	for i := range m.segments {
		seg := &m.segments[i]
		if seg.Length == 0 {
			continue
		}
		switch {
		case i == 0 && !m.leadingWildcard:
			// Anchored head: must match at offset 0.
			if !seg.MatchesAt(s, 0) {
				return false
			}
			pos = seg.Length
		case i == last && !m.trailingWildcard:
			// Anchored tail: must match flush with the end of input.
			end := n - seg.Length
			if end < pos {
				return false
			}
			if !seg.MatchesAt(s, end) {
				return false
			}
		default:
			found := seg.Find(s, pos)
			if found < 0 {
				return false
			}
			// Advance by one byte, not by the segment length: '%' may
			// match zero bytes, so the next segment may overlap this one
			// starting one byte in.
			pos = found + 1
		}
	}
	return true
}

// MatchString is Match over the bytes of s.
func (m *Matcher) MatchString(s string) bool {
	return m.Match([]byte(s))
}
