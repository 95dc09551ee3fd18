//go:build amd64

// Package simd provides SWAR-accelerated byte operations for high-performance
// pattern matching. The package automatically selects the widest stride the
// CPU handles well (based on available vector features on x86-64) and falls
// back to an 8-byte-at-a-time implementation elsewhere.
//
// The primary use case is accelerating LIKE segment searches by quickly
// locating literal bytes and substrings in column values.
package simd

import "golang.org/x/sys/cpu"

// wideLoads reports whether the CPU benefits from the unrolled 32-byte SWAR
// loop. On cores with 256-bit vector units the four independent 8-byte words
// per iteration keep the load ports saturated; on older cores the extra
// unrolling only adds branch overhead.
var wideLoads = cpu.X86.HasAVX2
