package meta

import (
	"github.com/wyqzos/milvus/like/segment"
)

// Strategy represents the execution strategy for a compiled pattern.
//
// Selection is automatic based on the segment structure. The literal fast
// paths cover the overwhelmingly common pattern shapes in query workloads;
// everything else takes the general segment walk. All strategies agree with
// the segment walk on every input.
type Strategy int

const (
	// UseSegments is the general segment walk. Selected whenever no
	// specialized shape below applies: multiple literal segments, '_'
	// wildcards, or mixed anchoring.
	UseSegments Strategy = iota

	// UseEquality compares the whole input against the decoded literal.
	// Selected for patterns with no wildcards at all (e.g. `100\%` after
	// escape resolution).
	UseEquality

	// UsePrefix checks bytes.HasPrefix. Selected for `lit%` shapes: a
	// single wildcard-free head segment followed only by '%'.
	UsePrefix

	// UseSuffix checks bytes.HasSuffix. Selected for `%lit` shapes.
	UseSuffix

	// UseContains checks a substring search. Selected for `%lit%` shapes;
	// runs on simd.Memmem rather than the segment machinery.
	UseContains

	// UseMatchAll accepts every input. Selected for patterns consisting
	// solely of '%' runs.
	UseMatchAll
)

// String returns a human-readable representation of the Strategy.
func (s Strategy) String() string {
	switch s {
	case UseSegments:
		return "UseSegments"
	case UseEquality:
		return "UseEquality"
	case UsePrefix:
		return "UsePrefix"
	case UseSuffix:
		return "UseSuffix"
	case UseContains:
		return "UseContains"
	case UseMatchAll:
		return "UseMatchAll"
	default:
		return "Unknown"
	}
}

// SelectStrategy analyzes a compiled matcher and picks the execution
// strategy. For the literal fast paths it also returns the literal the path
// compares against; the slice aliases the matcher's compiled bytes.
func SelectStrategy(m *segment.Matcher) (Strategy, []byte) {
	segs := m.Segments()

	var nonEmpty *segment.Segment
	nonEmptyIdx := -1
	multiple := false
	for i := range segs {
		if segs[i].Length == 0 {
			continue
		}
		if nonEmpty != nil {
			multiple = true
			break
		}
		nonEmpty = &segs[i]
		nonEmptyIdx = i
	}

	if nonEmpty == nil {
		// Only '%' runs (or the empty pattern, which compiles to one
		// empty segment and no wildcard flags).
		if m.LeadingWildcard() || m.TrailingWildcard() {
			return UseMatchAll, nil
		}
		return UseEquality, nil
	}

	if multiple || len(nonEmpty.Underscores) != 0 {
		return UseSegments, nil
	}

	// Exactly one wildcard-free segment: anchoring decides the shape.
	headAnchored := nonEmptyIdx == 0 && !m.LeadingWildcard()
	tailAnchored := nonEmptyIdx == len(segs)-1 && !m.TrailingWildcard()
	switch {
	case headAnchored && tailAnchored:
		return UseEquality, nonEmpty.Literal
	case headAnchored:
		return UsePrefix, nonEmpty.Literal
	case tailAnchored:
		return UseSuffix, nonEmpty.Literal
	default:
		return UseContains, nonEmpty.Literal
	}
}
