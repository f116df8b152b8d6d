package gamma

import (
	"errors"
	"fmt"
	"math/bits"
)

// Errors returned by the codec. Decoder truncation errors wrap
// ErrMalformedStream, so callers can match either the specific cut or
// the whole family with errors.Is.
var (
	ErrInvalidInput    = errors.New("gamma: input must be a positive integer")
	ErrMalformedStream = errors.New("gamma: malformed stream")
	ErrPrefixCutoff    = fmt.Errorf("%w: prefix cutoff", ErrMalformedStream)
	ErrOffsetCutoff    = fmt.Errorf("%w: offset cutoff", ErrMalformedStream)
	ErrOverflow        = errors.New("gamma: decoded value overflows int64")
)

// CodeLen returns the length in bits of the gamma code for x, which is
// 2*floor(log2 x)+1. It returns 0 for non-positive x, which has no
// code.
func CodeLen(x int64) int {
	if x <= 0 {
		return 0
	}
	return 2*bits.Len64(uint64(x)) - 1
}

// EncodeNumber encodes a single positive integer as an Elias gamma
// code. It returns ErrInvalidInput for x <= 0.
func EncodeNumber(x int64) (*BitSet, error) {
	out := NewBitSet(CodeLen(x))
	if err := appendNumber(out, x); err != nil {
		return nil, err
	}
	return out, nil
}

// appendNumber writes the code for x onto out: n-1 zeros and a
// terminating one (the length prefix), then the n-1 low-order bits of
// x (the offset), where n is the bit length of x.
func appendNumber(out *BitSet, x int64) error {
	if x <= 0 {
		return ErrInvalidInput
	}
	n := bits.Len64(uint64(x))
	out.AppendBits(1, n)
	out.AppendBits(uint64(x), n-1)
	return nil
}

// EncodeSequence encodes xs in input order into one concatenated
// stream. Prefix-freeness makes delimiters unnecessary. An empty
// input yields an empty BitSet. Any non-positive element aborts the
// whole encode with ErrInvalidInput; no partial output is returned.
func EncodeSequence(xs []int64) (*BitSet, error) {
	size := 0
	for _, x := range xs {
		size += CodeLen(x)
	}
	out := NewBitSet(size)
	for _, x := range xs {
		if err := appendNumber(out, x); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Decode parses a stream of concatenated gamma codes back into the
// integers that produced it. The entire input must be consumed: a
// final code cut off by the end of the stream is reported as
// ErrPrefixCutoff or ErrOffsetCutoff, never silently dropped. An
// empty input decodes to an empty sequence.
func Decode(bs *BitSet) ([]int64, error) {
	var out []int64
	for i := 0; i < bs.Len(); {
		zeros := 0
		for i < bs.Len() && bs.Bit(i) == 0 {
			zeros++
			i++
		}
		if i == bs.Len() {
			return nil, ErrPrefixCutoff
		}
		i++ // the terminating one

		if i+zeros > bs.Len() {
			return nil, ErrOffsetCutoff
		}
		if zeros > 62 {
			return nil, ErrOverflow
		}
		x := int64(1) << uint(zeros)
		for j := 0; j < zeros; j++ {
			x |= int64(bs.Bit(i+j)) << uint(zeros-1-j)
		}
		i += zeros

		out = append(out, x)
	}
	return out, nil
}
