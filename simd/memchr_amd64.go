//go:build amd64

// Package simd provides SIMD-accelerated byte-scan primitives for the
// fastsearch library. The package automatically selects the best
// implementation based on available CPU features (AVX2 on x86-64) and falls
// back to optimized pure Go SWAR implementations on other platforms.
//
// The primary use case is the single-byte fast path of the substring
// searcher: finding, counting or reverse-finding one byte in a large buffer.
package simd

import "golang.org/x/sys/cpu"

// CPU feature detection flag set at package initialization, used to dispatch
// to the fastest available implementation.
var hasAVX2 = cpu.X86.HasAVX2

// memchrAVX2 is implemented in memchr_amd64.s using 256-bit vector
// operations, 32 bytes per iteration.
//
//go:noescape
func memchrAVX2(haystack []byte, needle byte) int

// Memchr returns the index of the first instance of needle in haystack,
// or -1 if needle is not present in haystack.
//
// This function is equivalent to bytes.IndexByte but dispatches to an AVX2
// kernel when available on x86-64, falling back to a pure Go SWAR
// implementation for short inputs and non-AVX2 CPUs.
//
// Example:
//
//	haystack := []byte("hello world")
//	pos := simd.Memchr(haystack, 'o')
//	// pos == 4
func Memchr(haystack []byte, needle byte) int {
	if len(haystack) == 0 {
		return -1
	}

	// For small inputs (< 32 bytes) the SIMD setup cost outweighs the
	// benefit; use the SWAR fallback.
	if hasAVX2 && len(haystack) >= 32 {
		return memchrAVX2(haystack, needle)
	}
	return memchrGeneric(haystack, needle)
}

// Memrchr returns the index of the last instance of needle in haystack, or
// -1 if needle is not present. It is the reverse counterpart of Memchr and is
// equivalent to bytes.LastIndexByte.
//
// The reverse scan has no assembly kernel; the SWAR implementation walks
// 8-byte chunks from the tail, which is sufficient for the reverse-search
// fast path it serves.
func Memrchr(haystack []byte, needle byte) int {
	return memrchrGeneric(haystack, needle)
}

// CountByte returns the number of instances of needle in haystack. It is
// equivalent to bytes.Count with a one-byte separator, using SWAR zero-byte
// detection plus popcount to count 8 bytes per step.
func CountByte(haystack []byte, needle byte) int {
	return countByteGeneric(haystack, needle)
}
