package fastsearch

import (
	"bytes"
	"fmt"
	"testing"
)

// benchCorpus builds a corpus of size n over a small alphabet with the
// needle planted near the end, which is the interesting case for skip
// behavior: lots of partial matches before the hit.
func benchCorpus(n int, needle []byte) []byte {
	corpus := bytes.Repeat([]byte("abcabdabe"), n/9+1)[:n]
	if n >= len(needle) {
		copy(corpus[n-len(needle):], needle)
	}
	return corpus
}

// BenchmarkFind compares the reusable Finder against bytes.Index across
// corpus sizes, needle planted at the end.
func BenchmarkFind(b *testing.B) {
	needle := []byte("abzabz")
	sizes := []int{64, 1024, 65536, 1048576}

	for _, size := range sizes {
		corpus := benchCorpus(size, needle)
		f := New(needle)

		b.Run(fmt.Sprintf("finder_%d", size), func(b *testing.B) {
			b.SetBytes(int64(size))
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = f.Find(corpus)
			}
		})

		b.Run(fmt.Sprintf("stdlib_%d", size), func(b *testing.B) {
			b.SetBytes(int64(size))
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = bytes.Index(corpus, needle)
			}
		})
	}
}

// BenchmarkFindNotFound measures the skip-friendly miss case: the lookahead
// byte is frequently absent from the needle, so the cursor jumps whole
// needle lengths.
func BenchmarkFindNotFound(b *testing.B) {
	needle := []byte("zzzzyzzz")
	sizes := []int{1024, 65536, 1048576}

	for _, size := range sizes {
		corpus := bytes.Repeat([]byte("abcdefgh"), size/8)

		b.Run(fmt.Sprintf("finder_%d", size), func(b *testing.B) {
			f := New(needle)
			b.SetBytes(int64(size))
			for i := 0; i < b.N; i++ {
				_ = f.Find(corpus)
			}
		})

		b.Run(fmt.Sprintf("stdlib_%d", size), func(b *testing.B) {
			b.SetBytes(int64(size))
			for i := 0; i < b.N; i++ {
				_ = bytes.Index(corpus, needle)
			}
		})
	}
}

// BenchmarkFindRepetitive is the adversarial case for Horspool scanning:
// the corpus is one repeated byte and the needle almost matches everywhere.
func BenchmarkFindRepetitive(b *testing.B) {
	needle := []byte("aaaaaaab")
	sizes := []int{1024, 65536}

	for _, size := range sizes {
		corpus := bytes.Repeat([]byte{'a'}, size)

		b.Run(fmt.Sprintf("finder_%d", size), func(b *testing.B) {
			f := New(needle)
			b.SetBytes(int64(size))
			for i := 0; i < b.N; i++ {
				_ = f.Find(corpus)
			}
		})

		b.Run(fmt.Sprintf("stdlib_%d", size), func(b *testing.B) {
			b.SetBytes(int64(size))
			for i := 0; i < b.N; i++ {
				_ = bytes.Index(corpus, needle)
			}
		})
	}
}

// BenchmarkOneShot measures the transient-Finder convenience form, including
// preprocessing per call.
func BenchmarkOneShot(b *testing.B) {
	needle := []byte("abzabz")
	corpus := benchCorpus(65536, needle)

	b.SetBytes(65536)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = Index(corpus, needle)
	}
}

// BenchmarkCount measures counting over a corpus with regular hits.
func BenchmarkCount(b *testing.B) {
	needle := []byte("ab")
	corpus := bytes.Repeat([]byte("abcd"), 16384)
	f := New(needle)

	b.Run("finder", func(b *testing.B) {
		b.SetBytes(int64(len(corpus)))
		for i := 0; i < b.N; i++ {
			_ = f.Count(corpus)
		}
	})
	b.Run("stdlib", func(b *testing.B) {
		b.SetBytes(int64(len(corpus)))
		for i := 0; i < b.N; i++ {
			_ = bytes.Count(corpus, needle)
		}
	})
}
