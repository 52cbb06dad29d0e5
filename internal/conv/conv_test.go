package conv

import (
	"bytes"
	"testing"
)

func TestStringToBytes(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"ascii", "hello world"},
		{"binary", "\x00\x01\xff"},
		{"long", string(bytes.Repeat([]byte{'x'}, 4096))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StringToBytes(tt.in)
			if !bytes.Equal(got, []byte(tt.in)) {
				t.Errorf("StringToBytes(%q) = %q", tt.in, got)
			}
			if len(got) != len(tt.in) {
				t.Errorf("length %d, want %d", len(got), len(tt.in))
			}
		})
	}
}

func TestStringToBytesZeroAlloc(t *testing.T) {
	s := "no allocation expected"
	allocs := testing.AllocsPerRun(100, func() {
		_ = StringToBytes(s)
	})
	if allocs != 0 {
		t.Errorf("StringToBytes allocates: %v allocs/op", allocs)
	}
}
