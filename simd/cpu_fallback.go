//go:build !amd64

// Package simd provides SWAR-accelerated byte operations for high-performance
// pattern matching. The package automatically selects the widest stride the
// CPU handles well (based on available vector features on x86-64) and falls
// back to an 8-byte-at-a-time implementation elsewhere.
//
// The primary use case is accelerating LIKE segment searches by quickly
// locating literal bytes and substrings in column values.
package simd

// wideLoads is fixed to false off amd64: without feature detection there is
// no reliable signal that the unrolled loop pays for itself.
const wideLoads = false
