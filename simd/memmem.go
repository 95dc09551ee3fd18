package simd

import "bytes"

// Memmem returns the index of the first instance of needle in haystack,
// or -1 if needle is not present in haystack.
//
// This is equivalent to bytes.Index but bootstraps the search with Memchr
// on a distinguishing byte of the needle, followed by full verification of
// each candidate position.
//
// Algorithm:
//  1. Pick the rarest byte of the needle (position-based heuristic)
//  2. Use Memchr to find candidate positions for that byte
//  3. Verify the full needle at each candidate
//  4. Return the first verified position, or -1
//
// Example:
//
//	pos := simd.Memmem([]byte("hello world"), []byte("world"))
//	// pos == 6
func Memmem(haystack, needle []byte) int {
	needleLen := len(needle)
	haystackLen := len(haystack)

	// Empty needle matches at start (mimics bytes.Index behavior)
	if needleLen == 0 {
		return 0
	}
	if haystackLen == 0 || needleLen > haystackLen {
		return -1
	}
	if needleLen == 1 {
		return Memchr(haystack, needle[0])
	}

	rareByte, rareIdx := selectRareByte(needle)

	searchStart := 0
	for {
		candidatePos := Memchr(haystack[searchStart:], rareByte)
		if candidatePos == -1 {
			return -1 // rare byte absent, needle cannot occur
		}
		candidatePos += searchStart

		// Candidate needle start implied by the rare byte position.
		needleStartPos := candidatePos - rareIdx
		if needleStartPos >= 0 && needleStartPos+needleLen <= haystackLen {
			if bytes.Equal(haystack[needleStartPos:needleStartPos+needleLen], needle) {
				return needleStartPos
			}
		}

		searchStart = candidatePos + 1
		if searchStart >= haystackLen {
			return -1
		}
	}
}

// selectRareByte returns a distinguishing byte of needle and its index.
//
// The last byte is a cheap but effective heuristic: word endings and
// terminators tend to be more distinctive than beginnings, and it is O(1)
// versus building a frequency table.
func selectRareByte(needle []byte) (rareByte byte, index int) {
	lastIdx := len(needle) - 1
	return needle[lastIdx], lastIdx
}
