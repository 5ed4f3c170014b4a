package primitives

// Index holds the ranked words bucketed by their most significant letter.
//
// It is built once and never modified afterwards, so it can be shared between
// goroutines without locking.
type Index struct {
	buckets [NumLetters][]Word
}

// NewIndex buckets already ranked words by their highest set position.
func NewIndex(words []Word) *Index {
	idx := &Index{}
	for _, w := range words {
		msl := w.Mask.Highest()
		idx.buckets[msl] = append(idx.buckets[msl], w)
	}
	return idx
}

// Bucket returns the words whose rarest letter has the given rank.
//
// The returned slice must not be modified.
func (idx *Index) Bucket(rank int) []Word {
	return idx.buckets[rank]
}

// Len returns the total number of indexed words.
func (idx *Index) Len() int {
	n := 0
	for _, b := range idx.buckets {
		n += len(b)
	}
	return n
}

// Sizes returns the number of words in each bucket.
func (idx *Index) Sizes() [NumLetters]int {
	var sizes [NumLetters]int
	for i, b := range idx.buckets {
		sizes[i] = len(b)
	}
	return sizes
}
