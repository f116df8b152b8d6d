package gamma

import (
	"fmt"
	"strings"
)

const wordBits = 64

// BitSet is an ordered sequence of bits packed into 64-bit words.
// Bit 0 is the first bit appended; multi-bit values are laid out
// most-significant-bit first, matching standard binary notation.
// The zero value is an empty sequence ready for use.
type BitSet struct {
	words []uint64
	n     int
}

// NewBitSet returns an empty bit sequence with capacity for n bits.
func NewBitSet(n int) *BitSet {
	return &BitSet{words: make([]uint64, 0, (n+wordBits-1)/wordBits)}
}

// Len returns the number of bits in the sequence.
func (b *BitSet) Len() int { return b.n }

// Bit returns the bit at position i. It panics if i is out of range.
func (b *BitSet) Bit(i int) uint8 {
	if i < 0 || i >= b.n {
		panic(fmt.Sprintf("gamma: bit index %d out of range [0:%d]", i, b.n))
	}
	return uint8(b.words[i/wordBits] >> (wordBits - 1 - uint(i)%wordBits) & 1)
}

// AppendBit appends a single bit.
func (b *BitSet) AppendBit(bit uint8) {
	if b.n%wordBits == 0 {
		b.words = append(b.words, 0)
	}
	if bit&1 == 1 {
		b.words[b.n/wordBits] |= 1 << (wordBits - 1 - uint(b.n)%wordBits)
	}
	b.n++
}

// AppendBits appends the n low-order bits of value, most-significant
// bit first.
func (b *BitSet) AppendBits(value uint64, n int) {
	for i := n - 1; i >= 0; i-- {
		b.AppendBit(uint8(value >> uint(i) & 1))
	}
}

// Append appends every bit of other, in order.
func (b *BitSet) Append(other *BitSet) {
	for i := 0; i < other.Len(); i++ {
		b.AppendBit(other.Bit(i))
	}
}

// Slice returns an independent copy of bits [lo:hi). It panics if the
// range is invalid.
func (b *BitSet) Slice(lo, hi int) *BitSet {
	if lo < 0 || hi < lo || hi > b.n {
		panic(fmt.Sprintf("gamma: bit range [%d:%d] out of range [0:%d]", lo, hi, b.n))
	}
	out := NewBitSet(hi - lo)
	for i := lo; i < hi; i++ {
		out.AppendBit(b.Bit(i))
	}
	return out
}

// String renders the sequence as a string of '0' and '1' characters,
// first bit leftmost.
func (b *BitSet) String() string {
	var sb strings.Builder
	sb.Grow(b.n)
	for i := 0; i < b.n; i++ {
		sb.WriteByte('0' + b.Bit(i))
	}
	return sb.String()
}

// ParseBits parses a string of '0' and '1' characters into a BitSet.
func ParseBits(s string) (*BitSet, error) {
	out := NewBitSet(len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '0':
			out.AppendBit(0)
		case '1':
			out.AppendBit(1)
		default:
			return nil, fmt.Errorf("gamma: invalid bit character %q at position %d", s[i], i)
		}
	}
	return out, nil
}
