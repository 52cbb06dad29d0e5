// Package fastsearch provides a fast single-pattern substring search for Go.
//
// The search algorithm is a mix between Boyer-Moore-Horspool and Sunday: a
// compressed bad-character table (a single shift distance for the pattern's
// last byte) is combined with a 64-bit bloom filter over all pattern bytes.
// When the byte just past the current window provably does not occur in the
// pattern, the scanner jumps a full pattern length at once, which gives
// sub-linear behavior in practice on texts with many partial matches.
//
// fastsearch achieves its speedup through:
//   - Horspool bad-character shifts for the anchor (last pattern) byte
//   - A bloom-filter lookahead that skips whole pattern lengths
//   - A SIMD-accelerated single-byte path (see the simd package)
//
// Basic usage:
//
//	// One-shot search
//	pos := fastsearch.Index([]byte("my very long text to search for fast"), []byte("fast"))
//	// pos == 34
//
//	// Reusable matcher: preprocessing is amortized over many corpora
//	f := fastsearch.New([]byte("fast"))
//	for _, doc := range docs {
//	    if pos := f.Find(doc); pos != -1 {
//	        // ...
//	    }
//	}
//
// Performance characteristics:
//   - Preprocessing: O(m), three machine words of metadata, no allocation
//   - Search: O(n) expected, O(n*m) worst case, sub-linear on skip-friendly text
//   - Single-byte patterns: delegates to a block memchr scan
//
// All operations work on raw byte sequences. There is no Unicode or locale
// awareness, no multi-pattern search and no regular expression support; for
// those, use a dedicated engine.
package fastsearch

import (
	"github.com/coregx/fastsearch/internal/conv"
	"github.com/coregx/fastsearch/simd"
)

// bloomWidth is the fixed width of the bloom mask in bits. It is deliberately
// a constant 64 rather than the platform word size so that shift behavior and
// test vectors are identical on every target.
const bloomWidth = 64

// memchrCutoff is the corpus length at or below which the single-byte path
// uses a plain byte loop instead of the block scan; on tiny inputs the scan
// setup does not pay for itself.
const memchrCutoff = 10

// bloomAdd folds byte b into the mask. Bit (b & 63) is set for every byte
// that occurs anywhere in the pattern.
func bloomAdd(mask uint64, b byte) uint64 {
	return mask | 1<<(b&(bloomWidth-1))
}

// bloomHas reports whether b may occur in the pattern. False positives are
// possible (two bytes can share a bit), false negatives are not.
func bloomHas(mask uint64, b byte) bool {
	return mask&(1<<(b&(bloomWidth-1))) != 0
}

// Finder performs fast repeated substring searches for a single pattern.
//
// Construct once with New, then call Find, FindLast or Count on any number of
// corpora. Construction costs O(m) and never fails; the derived metadata is a
// pure function of the pattern bytes and is immutable afterwards, so a Finder
// is safe to share across goroutines searching independent corpora.
//
// The Finder keeps a borrowed view of the pattern slice passed to New. It
// does not copy the bytes; mutating them while the Finder is in use is
// undefined behavior. Pass a private copy if the original buffer is reused.
//
// Example:
//
//	f := fastsearch.New([]byte("needle"))
//	pos := f.Find([]byte("finding a needle in a haystack"))
//	// pos == 10
type Finder struct {
	pattern []byte
	mlast   int    // index of the anchor (last pattern) byte
	skip    int    // bad-character shift for the anchor byte, forward scan
	rskip   int    // mirror shift for the first pattern byte, reverse scan
	mask    uint64 // bloom filter over all pattern bytes
}

// New builds a Finder for pattern. It never fails: an empty pattern yields a
// degenerate Finder that matches at offset 0 in any corpus, and a one-byte
// pattern skips table construction entirely (searches dispatch to the
// single-byte fast path, which needs no metadata).
func New(pattern []byte) *Finder {
	f := &Finder{pattern: pattern}
	if len(pattern) > 1 {
		f.buildTable()
	}
	return f
}

// buildTable computes the compressed Boyer-Moore delta-1 table: the bloom
// mask over every pattern byte, the forward shift for the anchor byte and the
// reverse shift for the first byte. Called only for patterns of length >= 2.
func (f *Finder) buildTable() {
	p := f.pattern
	mlast := len(p) - 1
	f.mlast = mlast

	// Forward: process pattern[:mlast], remembering the distance from the end
	// to the rightmost earlier occurrence of the anchor byte. If the anchor
	// byte occurs nowhere else the default mlast-1 stands.
	f.skip = mlast - 1
	for i := 0; i < mlast; i++ {
		f.mask = bloomAdd(f.mask, p[i])
		if p[i] == p[mlast] {
			f.skip = mlast - i - 1
		}
	}
	// The anchor byte itself is folded in outside the loop.
	f.mask = bloomAdd(f.mask, p[mlast])

	// Reverse: mirror table for FindLast, anchored on the first byte. Walking
	// downward leaves the leftmost later occurrence in rskip.
	f.rskip = mlast - 1
	for i := mlast; i > 0; i-- {
		if p[i] == p[0] {
			f.rskip = i - 1
		}
	}
}

// String returns the pattern as a string, mainly for diagnostics.
func (f *Finder) String() string {
	return string(f.pattern)
}

// Find returns the index of the first occurrence of the pattern in haystack,
// or -1 if the pattern is not present.
//
// Edge cases, in priority order:
//   - empty pattern: matches at offset 0, even in an empty haystack
//   - empty haystack: -1
//   - pattern longer than haystack: -1
//
// Equivalent to bytes.Index(haystack, pattern) for all inputs.
func (f *Finder) Find(haystack []byte) int {
	m := len(f.pattern)
	if m == 0 {
		return 0
	}
	if len(haystack) == 0 {
		return -1
	}
	if m == 1 {
		return f.find1(haystack)
	}
	return f.find(haystack)
}

// FindString is Find for a string haystack. The haystack is viewed in place,
// no copy is made.
func (f *Finder) FindString(haystack string) int {
	return f.Find(conv.StringToBytes(haystack))
}

// find1 is the single-byte fast path. It never consults skip/mask.
func (f *Finder) find1(haystack []byte) int {
	n := len(haystack)
	if n-1 < 0 {
		return -1
	}
	c := f.pattern[0]
	if n > memchrCutoff {
		// Block memory scan. Corpus units are single bytes in Go, so a hit
		// needs no re-validation against wider-unit aliasing.
		return simd.Memchr(haystack, c)
	}
	for i := 0; i < n; i++ {
		if haystack[i] == c {
			return i
		}
	}
	return -1
}

// find is the general scan: Horspool anchored on the last pattern byte, with
// a bloom lookahead at the byte just past the window. A lookahead that would
// fall off the end of the haystack is treated as mask-negative, so the scan
// never reads past len(haystack).
func (f *Finder) find(haystack []byte) int {
	p := f.pattern
	n := len(haystack)
	m := len(p)
	w := n - m
	if w < 0 {
		return -1
	}

	mlast := f.mlast
	for i := 0; i <= w; i++ {
		if haystack[i+mlast] == p[mlast] {
			// Candidate window: verify the remaining bytes left to right.
			j := 0
			for j < mlast && haystack[i+j] == p[j] {
				j++
			}
			if j == mlast {
				return i
			}
			// Miss: if the byte after the window cannot occur in the pattern,
			// no window overlapping it can match either.
			if i+m >= n || !bloomHas(f.mask, haystack[i+m]) {
				i += m
			} else {
				i += f.skip
			}
		} else if i+m >= n || !bloomHas(f.mask, haystack[i+m]) {
			i += m
		}
	}
	return -1
}

// FindLast returns the index of the last occurrence of the pattern in
// haystack, or -1 if the pattern is not present. An empty pattern matches at
// offset len(haystack).
//
// Equivalent to bytes.LastIndex(haystack, pattern) for all inputs.
func (f *Finder) FindLast(haystack []byte) int {
	m := len(f.pattern)
	n := len(haystack)
	if m == 0 {
		return n
	}
	if n == 0 {
		return -1
	}
	if m == 1 {
		return f.findLast1(haystack)
	}
	return f.findLast(haystack)
}

// FindLastString is FindLast for a string haystack.
func (f *Finder) FindLastString(haystack string) int {
	return f.FindLast(conv.StringToBytes(haystack))
}

func (f *Finder) findLast1(haystack []byte) int {
	n := len(haystack)
	c := f.pattern[0]
	if n > memchrCutoff {
		return simd.Memrchr(haystack, c)
	}
	for i := n - 1; i >= 0; i-- {
		if haystack[i] == c {
			return i
		}
	}
	return -1
}

// findLast mirrors find: the anchor is the first pattern byte, the cursor
// walks from the last valid window down to 0 and the lookahead tests the byte
// just before the window. A lookahead at the left boundary is treated as
// mask-negative.
func (f *Finder) findLast(haystack []byte) int {
	p := f.pattern
	n := len(haystack)
	m := len(p)
	w := n - m
	if w < 0 {
		return -1
	}

	mlast := f.mlast
	for i := w; i >= 0; i-- {
		if haystack[i] == p[0] {
			j := mlast
			for j > 0 && haystack[i+j] == p[j] {
				j--
			}
			if j == 0 {
				return i
			}
			if i == 0 || !bloomHas(f.mask, haystack[i-1]) {
				i -= m
			} else {
				i -= f.rskip
			}
		} else if i == 0 || !bloomHas(f.mask, haystack[i-1]) {
			i -= m
		}
	}
	return -1
}

// Count returns the number of non-overlapping occurrences of the pattern in
// haystack. An empty pattern yields len(haystack)+1, one count per byte
// boundary.
//
// Equivalent to bytes.Count(haystack, pattern) for all inputs.
func (f *Finder) Count(haystack []byte) int {
	m := len(f.pattern)
	if m == 0 {
		return len(haystack) + 1
	}
	if len(haystack) == 0 {
		return 0
	}
	if m == 1 {
		return simd.CountByte(haystack, f.pattern[0])
	}
	return f.count(haystack)
}

// CountString is Count for a string haystack.
func (f *Finder) CountString(haystack string) int {
	return f.Count(conv.StringToBytes(haystack))
}

// count runs the forward scan loop in counting mode: each hit advances the
// cursor by a full pattern length, so occurrences never overlap.
func (f *Finder) count(haystack []byte) int {
	p := f.pattern
	n := len(haystack)
	m := len(p)
	w := n - m
	if w < 0 {
		return 0
	}

	mlast := f.mlast
	count := 0
	for i := 0; i <= w; i++ {
		if haystack[i+mlast] == p[mlast] {
			j := 0
			for j < mlast && haystack[i+j] == p[j] {
				j++
			}
			if j == mlast {
				count++
				i += mlast
				continue
			}
			if i+m >= n || !bloomHas(f.mask, haystack[i+m]) {
				i += m
			} else {
				i += f.skip
			}
		} else if i+m >= n || !bloomHas(f.mask, haystack[i+m]) {
			i += m
		}
	}
	return count
}

// Index returns the index of the first occurrence of needle in haystack, or
// -1 if needle is not present. It builds a transient Finder and discards it;
// use New directly when the same needle is searched more than once.
func Index(haystack, needle []byte) int {
	return New(needle).Find(haystack)
}

// IndexString is Index for string arguments.
func IndexString(haystack, needle string) int {
	return New(conv.StringToBytes(needle)).Find(conv.StringToBytes(haystack))
}

// LastIndex returns the index of the last occurrence of needle in haystack,
// or -1 if needle is not present.
func LastIndex(haystack, needle []byte) int {
	return New(needle).FindLast(haystack)
}

// Count returns the number of non-overlapping occurrences of needle in
// haystack.
func Count(haystack, needle []byte) int {
	return New(needle).Count(haystack)
}
