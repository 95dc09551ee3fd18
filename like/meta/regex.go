package meta

import (
	"regexp"

	"github.com/dlclark/regexp2"

	"github.com/wyqzos/milvus/simd"
)

// widenLatin1 maps each byte of b to one rune. Rune-oriented backends driven
// through this mapping see exactly one position per input byte, which makes
// '_'/'%' byte semantics hold on arbitrary byte strings, including invalid
// UTF-8.
func widenLatin1(b []byte) string {
	runes := make([]rune, len(b))
	for i, c := range b {
		runes[i] = rune(c)
	}
	return string(runes)
}

// RegexMatcher evaluates a translated LIKE regex on the linear-time backend
// (the stdlib RE2-derived engine). It is the semantic reference for the fast
// matcher and the planner fallback: guaranteed linear on adversarial inputs
// like `%a%a%a%a%b` against long runs of 'a'.
//
// The backend is configured for full-input match with dot-matches-newline,
// and is driven in byte mode: both the regex and the haystack are widened so
// one byte is one position.
type RegexMatcher struct {
	re *regexp.Regexp
}

// NewRegexMatcher compiles a translated regex (see TranslateRegex) for the
// linear-time backend.
func NewRegexMatcher(regex []byte) (*RegexMatcher, error) {
	re, err := regexp.Compile(`(?s)\A(?:` + widenLatin1(regex) + `)\z`)
	if err != nil {
		return nil, err
	}
	return &RegexMatcher{re: re}, nil
}

// Match reports whether s, as a byte string, is a full match.
func (r *RegexMatcher) Match(s []byte) bool {
	// ASCII input needs no widening: byte positions and rune positions
	// already coincide.
	if simd.IsASCII(s) {
		return r.re.Match(s)
	}
	return r.re.MatchString(widenLatin1(s))
}

// MatchString is Match over the bytes of s.
func (r *RegexMatcher) MatchString(s string) bool {
	return r.Match([]byte(s))
}

// BacktrackMatcher evaluates a translated LIKE regex on the backtracking
// backend (regexp2). Same full-match, dot-matches-newline, byte-mode
// configuration as RegexMatcher.
//
// The backtracking engine carries no linear-time guarantee and exists for
// differential testing against the other matcher flavors; gate it behind
// Config.EnableBacktrackVerify.
type BacktrackMatcher struct {
	re *regexp2.Regexp
}

// NewBacktrackMatcher compiles a translated regex for the backtracking
// backend.
func NewBacktrackMatcher(regex []byte) (*BacktrackMatcher, error) {
	re, err := regexp2.Compile(`\A(?:`+widenLatin1(regex)+`)\z`, regexp2.Singleline)
	if err != nil {
		return nil, err
	}
	return &BacktrackMatcher{re: re}, nil
}

// Match reports whether s, as a byte string, is a full match.
func (r *BacktrackMatcher) Match(s []byte) bool {
	ok, err := r.re.MatchString(widenLatin1(s))
	if err != nil {
		// Only match timeouts surface here and none is configured.
		return false
	}
	return ok
}

// MatchString is Match over the bytes of s.
func (r *BacktrackMatcher) MatchString(s string) bool {
	return r.Match([]byte(s))
}
