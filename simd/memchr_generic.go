package simd

import (
	"encoding/binary"
	"math/bits"
)

// SWAR (SIMD Within A Register) constants: lo8 replicates 0x01 into every
// byte of a uint64, hi8 replicates 0x80.
const (
	lo8 = uint64(0x0101010101010101)
	hi8 = uint64(0x8080808080808080)
)

// zeroBytes returns a uint64 with the high bit of byte k set iff byte k of v
// is zero, and no other bits set.
//
// This is the exact (carry-free) zero-byte detector: per byte it computes
// ((v & 0x7F) + 0x7F) | v, whose high bit is set iff the byte is non-zero,
// then inverts. Unlike the cheaper (v - lo8) & ^v & hi8 form, borrows cannot
// leak spurious bits into bytes above a match, which matters when the caller
// wants the last match (Memrchr) or a popcount (CountByte) rather than just
// the first set bit.
func zeroBytes(v uint64) uint64 {
	return ^(((v & ^hi8) + ^hi8) | v) & hi8
}

// memchrGeneric implements pure Go byte search using the SWAR technique,
// processing 8 bytes at a time with uint64 bitwise operations.
//
// This function is used as a fallback on all platforms:
//   - On amd64: fallback for small inputs (< 32 bytes) or when AVX2 is not available
//   - On other platforms: primary implementation
//
// Algorithm:
//  1. Broadcast needle into every byte of a uint64 mask
//  2. Read 8 haystack bytes as a little-endian uint64
//  3. XOR with the mask (matching bytes become 0x00)
//  4. Detect the first zero byte and extract its position via trailing zeros
//
// Performance: 2-5x faster than byte-by-byte comparison on medium/large inputs.
func memchrGeneric(haystack []byte, needle byte) int {
	n := len(haystack)
	if n == 0 {
		return -1
	}

	// For small inputs, byte-by-byte is faster (no setup overhead)
	if n < 8 {
		for i := 0; i < n; i++ {
			if haystack[i] == needle {
				return i
			}
		}
		return -1
	}

	// Broadcast needle: 0x42 -> 0x4242424242424242
	needleMask := uint64(needle) * lo8

	i := 0
	for i+8 <= n {
		chunk := binary.LittleEndian.Uint64(haystack[i:])
		xor := chunk ^ needleMask

		// Hacker's Delight zero-byte detect. Bits above the first match may
		// be polluted by borrows, but the lowest set bit is always exact,
		// which is all the forward scan needs.
		hasZero := (xor - lo8) & ^xor & hi8
		if hasZero != 0 {
			return i + bits.TrailingZeros64(hasZero)/8
		}

		i += 8
	}

	// Remaining 0-7 bytes
	for ; i < n; i++ {
		if haystack[i] == needle {
			return i
		}
	}
	return -1
}

// memrchrGeneric is the reverse counterpart of memchrGeneric: it returns the
// index of the last instance of needle, or -1. Chunks are walked from the
// tail, and within a chunk the highest matching byte is extracted with a
// leading-zero count, so the exact detector is required here.
func memrchrGeneric(haystack []byte, needle byte) int {
	n := len(haystack)
	if n == 0 {
		return -1
	}

	if n < 8 {
		for i := n - 1; i >= 0; i-- {
			if haystack[i] == needle {
				return i
			}
		}
		return -1
	}

	needleMask := uint64(needle) * lo8

	i := n
	for i >= 8 {
		chunk := binary.LittleEndian.Uint64(haystack[i-8:])
		if z := zeroBytes(chunk ^ needleMask); z != 0 {
			// Byte k of the little-endian read sits at bits 8k..8k+7, so the
			// highest set bit maps to the last matching byte of the chunk.
			return i - 8 + 7 - bits.LeadingZeros64(z)/8
		}
		i -= 8
	}

	// Remaining head bytes [0, i)
	for j := i - 1; j >= 0; j-- {
		if haystack[j] == needle {
			return j
		}
	}
	return -1
}

// countByteGeneric counts occurrences of needle using SWAR plus popcount:
// every matching byte contributes exactly one high bit to the exact zero
// detector, so a chunk's matches are a single OnesCount64.
func countByteGeneric(haystack []byte, needle byte) int {
	n := len(haystack)
	needleMask := uint64(needle) * lo8

	count := 0
	i := 0
	for i+8 <= n {
		chunk := binary.LittleEndian.Uint64(haystack[i:])
		count += bits.OnesCount64(zeroBytes(chunk ^ needleMask))
		i += 8
	}
	for ; i < n; i++ {
		if haystack[i] == needle {
			count++
		}
	}
	return count
}
