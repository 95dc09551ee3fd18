package simd

import (
	"encoding/binary"
	"math/bits"
)

const (
	lo8 = 0x0101010101010101
	hi8 = 0x8080808080808080
)

// Memchr returns the index of the first instance of needle in haystack,
// or -1 if needle is not present in haystack.
//
// This function is equivalent to bytes.IndexByte but uses the SWAR (SIMD
// Within A Register) technique, processing 8 bytes at a time with uint64
// bitwise operations, or 32 bytes per iteration on CPUs with wide vector
// units.
//
// Algorithm:
//  1. Broadcast needle to every byte of a uint64 mask
//  2. XOR each 8-byte chunk with the mask (matching bytes become 0x00)
//  3. Apply the zero-byte detection formula (Hacker's Delight technique)
//  4. Extract the position with a trailing zero count
//
// Example:
//
//	haystack := []byte("hello world")
//	pos := simd.Memchr(haystack, 'o')
//	// pos == 4
func Memchr(haystack []byte, needle byte) int {
	haystackLen := len(haystack)
	if haystackLen == 0 {
		return -1
	}

	// For small inputs, byte-by-byte is faster (no setup overhead)
	if haystackLen < 8 {
		for idx := 0; idx < haystackLen; idx++ {
			if haystack[idx] == needle {
				return idx
			}
		}
		return -1
	}

	// Broadcast needle to all 8 bytes of uint64
	// Example: needle=0x42 -> needleMask=0x4242424242424242
	needleMask := uint64(needle) * lo8

	idx := 0

	// Unrolled 32-byte stride for wide cores: four independent 8-byte words
	// per iteration. The words have no data dependency on each other, so the
	// loads and the zero-byte checks pipeline well.
	if wideLoads {
		for idx+32 <= haystackLen {
			w0 := binary.LittleEndian.Uint64(haystack[idx:]) ^ needleMask
			w1 := binary.LittleEndian.Uint64(haystack[idx+8:]) ^ needleMask
			w2 := binary.LittleEndian.Uint64(haystack[idx+16:]) ^ needleMask
			w3 := binary.LittleEndian.Uint64(haystack[idx+24:]) ^ needleMask

			z0 := (w0 - lo8) & ^w0 & hi8
			z1 := (w1 - lo8) & ^w1 & hi8
			z2 := (w2 - lo8) & ^w2 & hi8
			z3 := (w3 - lo8) & ^w3 & hi8

			if z0|z1|z2|z3 != 0 {
				if z0 != 0 {
					return idx + bits.TrailingZeros64(z0)/8
				}
				if z1 != 0 {
					return idx + 8 + bits.TrailingZeros64(z1)/8
				}
				if z2 != 0 {
					return idx + 16 + bits.TrailingZeros64(z2)/8
				}
				return idx + 24 + bits.TrailingZeros64(z3)/8
			}
			idx += 32
		}
	}

	// Process aligned 8-byte chunks
	for idx+8 <= haystackLen {
		// XOR makes matching bytes become 0x00
		xor := binary.LittleEndian.Uint64(haystack[idx:]) ^ needleMask

		// Zero-byte detection formula:
		//   (v - 0x0101...) & ^v & 0x8080...
		// Subtracting 0x01 from each byte borrows if the byte was 0x00;
		// AND with ^v isolates bytes that were originally zero; AND with
		// 0x80 extracts the marker bit per zero byte.
		hasZero := (xor - lo8) & ^xor & hi8
		if hasZero != 0 {
			// TrailingZeros64 counts bits to the first set bit;
			// divide by 8 to convert bit position to byte position.
			return idx + bits.TrailingZeros64(hasZero)/8
		}
		idx += 8
	}

	// Remaining 0-7 bytes
	for idx < haystackLen {
		if haystack[idx] == needle {
			return idx
		}
		idx++
	}

	return -1
}
