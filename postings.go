package gamma

// EncodePostings encodes a strictly increasing list of positive
// document IDs as gamma-coded gaps: the first ID verbatim, then each
// ID minus its predecessor. Gap lists from real postings are heavily
// skewed toward small values, which is where gamma codes are
// shortest. A non-positive first ID or a non-increasing step aborts
// the encode with ErrInvalidInput and no partial output.
func EncodePostings(docIDs []int64) (*BitSet, error) {
	size := 0
	prev := int64(0)
	for _, id := range docIDs {
		if id <= prev {
			return nil, ErrInvalidInput
		}
		size += CodeLen(id - prev)
		prev = id
	}

	out := NewBitSet(size)
	prev = 0
	for _, id := range docIDs {
		if err := appendNumber(out, id-prev); err != nil {
			return nil, err
		}
		prev = id
	}
	return out, nil
}

// DecodePostings reverses EncodePostings, rebuilding document IDs by
// prefix-summing the decoded gaps.
func DecodePostings(bs *BitSet) ([]int64, error) {
	gaps, err := Decode(bs)
	if err != nil {
		return nil, err
	}
	ids := make([]int64, len(gaps))
	prev := int64(0)
	for i, gap := range gaps {
		prev += gap
		ids[i] = prev
	}
	return ids, nil
}
