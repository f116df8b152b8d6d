package gamma

import (
	"testing"
)

func TestBitSetAppendBits(t *testing.T) {
	tests := []struct {
		name   string
		values []uint64
		bits   []int
		want   string
	}{
		{
			name:   "single bit",
			values: []uint64{1},
			bits:   []int{1},
			want:   "1",
		},
		{
			name:   "one byte",
			values: []uint64{0b11010110},
			bits:   []int{8},
			want:   "11010110",
		},
		{
			name:   "multiple values",
			values: []uint64{0b101, 0b11, 0b1111},
			bits:   []int{3, 2, 4},
			want:   "101111111",
		},
		{
			name:   "leading zeros kept",
			values: []uint64{0b1},
			bits:   []int{4},
			want:   "0001",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBitSet(0)
			for i, v := range tt.values {
				b.AppendBits(v, tt.bits[i])
			}
			if got := b.String(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBitSetIndexedRead(t *testing.T) {
	b := NewBitSet(0)
	b.AppendBit(1)
	b.AppendBit(0)
	b.AppendBit(1)
	b.AppendBit(1)

	if b.Len() != 4 {
		t.Fatalf("Len: got %d, want 4", b.Len())
	}
	want := []uint8{1, 0, 1, 1}
	for i, w := range want {
		if got := b.Bit(i); got != w {
			t.Errorf("Bit(%d): got %d, want %d", i, got, w)
		}
	}
}

func TestBitSetWordBoundary(t *testing.T) {
	// 130 bits forces the sequence across two word boundaries.
	b := NewBitSet(130)
	for i := 0; i < 130; i++ {
		b.AppendBit(uint8(i % 2))
	}

	if b.Len() != 130 {
		t.Fatalf("Len: got %d, want 130", b.Len())
	}
	for i := 0; i < 130; i++ {
		if got := b.Bit(i); got != uint8(i%2) {
			t.Fatalf("Bit(%d): got %d, want %d", i, got, i%2)
		}
	}
}

func TestBitSetSlice(t *testing.T) {
	b, err := ParseBits("0001010")
	if err != nil {
		t.Fatalf("ParseBits failed: %v", err)
	}

	s := b.Slice(3, 7)
	if got := s.String(); got != "1010" {
		t.Errorf("Slice(3, 7): got %q, want %q", got, "1010")
	}

	// The slice is a copy: appending to it must not disturb the source.
	s.AppendBit(1)
	if got := b.String(); got != "0001010" {
		t.Errorf("source changed after slice append: got %q", got)
	}

	if got := b.Slice(2, 2).Len(); got != 0 {
		t.Errorf("empty slice: got length %d, want 0", got)
	}
}

func TestBitSetAppend(t *testing.T) {
	a, _ := ParseBits("101")
	b, _ := ParseBits("0011")
	a.Append(b)
	if got := a.String(); got != "1010011" {
		t.Errorf("got %q, want %q", got, "1010011")
	}
}

func TestParseBitsInvalid(t *testing.T) {
	if _, err := ParseBits("01x1"); err == nil {
		t.Error("expected error for non-binary character")
	}
}

func TestBitSetRoundTripString(t *testing.T) {
	const s = "10110010111000101"
	b, err := ParseBits(s)
	if err != nil {
		t.Fatalf("ParseBits failed: %v", err)
	}
	if got := b.String(); got != s {
		t.Errorf("got %q, want %q", got, s)
	}
}
