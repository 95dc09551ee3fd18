package meta

import (
	"bytes"
	"sync/atomic"

	"github.com/wyqzos/milvus/like/prefilter"
	"github.com/wyqzos/milvus/like/segment"
	"github.com/wyqzos/milvus/simd"
)

// Engine orchestrates the execution paths for one compiled LIKE pattern.
//
// The Engine:
//  1. Compiles the pattern to segment form
//  2. Selects the execution strategy from the segment structure
//  3. Builds a required-literal prefilter when the general walk is selected
//  4. Dispatches each Match call to the selected path
//
// Thread safety: an Engine is immutable after compilation apart from its
// statistics counters, which are updated atomically. Any number of
// goroutines may call Match on the same Engine concurrently. Inputs are
// borrowed for the duration of a call and never retained.
type Engine struct {
	// stats MUST be first field for proper 8-byte alignment on 32-bit
	// platforms, so atomic operations on its uint64 fields work correctly.
	stats Stats

	matcher  *segment.Matcher
	strategy Strategy

	// literal backs the equality/prefix/suffix/contains fast paths.
	literal []byte

	// prefilter rejects inputs missing the pattern's required literal
	// before the segment walk runs. Nil when the strategy is a literal
	// fast path, when prefiltering is disabled, or when the pattern has
	// no usable literal.
	prefilter *prefilter.Literal

	// backtrack is the differential-testing shadow matcher; nil unless
	// Config.EnableBacktrackVerify.
	backtrack *BacktrackMatcher

	config Config
}

// Stats tracks execution statistics for performance analysis.
type Stats struct {
	// FastPathSearches counts matches answered by a literal fast path.
	FastPathSearches uint64

	// SegmentSearches counts matches answered by the segment walk.
	SegmentSearches uint64

	// PrefilterRejects counts inputs rejected by the required-literal
	// prefilter without running the walk.
	PrefilterRejects uint64

	// BacktrackDisagreements counts inputs where the backtracking shadow
	// matcher disagreed with the engine result. Overlapping segments
	// separated by '%' are the one known source of disagreement: the
	// segment walk permits the overlap, a consuming regex cannot.
	BacktrackDisagreements uint64
}

// Strategy returns the execution strategy selected for this engine.
func (e *Engine) Strategy() Strategy {
	return e.strategy
}

// Matcher returns the underlying segment matcher.
func (e *Engine) Matcher() *segment.Matcher {
	return e.matcher
}

// Stats returns a snapshot of the execution statistics.
func (e *Engine) Stats() Stats {
	return Stats{
		FastPathSearches:       atomic.LoadUint64(&e.stats.FastPathSearches),
		SegmentSearches:        atomic.LoadUint64(&e.stats.SegmentSearches),
		PrefilterRejects:       atomic.LoadUint64(&e.stats.PrefilterRejects),
		BacktrackDisagreements: atomic.LoadUint64(&e.stats.BacktrackDisagreements),
	}
}

// Match reports whether s is a full match of the pattern.
//
// Evaluation never fails and never allocates; invalid UTF-8 in s is matched
// byte by byte like any other input.
func (e *Engine) Match(s []byte) bool {
	got := e.match(s)
	if e.backtrack != nil && e.backtrack.Match(s) != got {
		atomic.AddUint64(&e.stats.BacktrackDisagreements, 1)
	}
	return got
}

func (e *Engine) match(s []byte) bool {
	switch e.strategy {
	case UseMatchAll:
		atomic.AddUint64(&e.stats.FastPathSearches, 1)
		return true
	case UseEquality:
		atomic.AddUint64(&e.stats.FastPathSearches, 1)
		return bytes.Equal(s, e.literal)
	case UsePrefix:
		atomic.AddUint64(&e.stats.FastPathSearches, 1)
		return bytes.HasPrefix(s, e.literal)
	case UseSuffix:
		atomic.AddUint64(&e.stats.FastPathSearches, 1)
		return bytes.HasSuffix(s, e.literal)
	case UseContains:
		atomic.AddUint64(&e.stats.FastPathSearches, 1)
		return simd.Memmem(s, e.literal) >= 0
	default:
		if e.prefilter != nil && !e.prefilter.Accept(s) {
			atomic.AddUint64(&e.stats.PrefilterRejects, 1)
			return false
		}
		atomic.AddUint64(&e.stats.SegmentSearches, 1)
		return e.matcher.Match(s)
	}
}
