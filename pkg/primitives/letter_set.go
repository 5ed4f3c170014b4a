package primitives

import (
	"fmt"
	"math/bits"
)

// NumLetters is the size of the alphabet a LetterSet can hold.
const NumLetters = 26

// CoverSize is the number of letters a complete five word cover uses.
const CoverSize = NumLetters - 1

// LetterSet efficiently represents a set of letters as a 26-bit mask.
//
// Depending on where it came from, bit i either means "the i'th letter of the
// alphabet" (raw) or "the letter ranked i'th by rarity" (ranked). See Ranking.
type LetterSet uint32

// FullLetterSet contains every position.
const FullLetterSet LetterSet = 1<<NumLetters - 1

// Add adds a position to the set. pos must be in [0, NumLetters).
func (s *LetterSet) Add(pos int) {
	*s |= 1 << pos
}

// Contains checks if a position is in the set.
func (s LetterSet) Contains(pos int) bool {
	return s&(1<<pos) != 0
}

// Count returns the number of positions in the set.
func (s LetterSet) Count() int {
	return bits.OnesCount32(uint32(s))
}

// Disjoint reports whether the two sets share no position.
func (s LetterSet) Disjoint(other LetterSet) bool {
	return s&other == 0
}

func (s LetterSet) Union(other LetterSet) LetterSet {
	return s | other
}

// IsFull checks if the set is full.
func (s LetterSet) IsFull() bool {
	return s&FullLetterSet == FullLetterSet
}

// IsCover reports whether exactly one letter is absent.
func (s LetterSet) IsCover() bool {
	return s.Count() == CoverSize
}

// Highest returns the highest position in the set, or -1 if it is empty.
func (s LetterSet) Highest() int {
	return bits.Len32(uint32(s)) - 1
}

// HighestFree returns the highest position not in the set.
//
// Callers must never ask for a free position of a full set; doing so is a
// logic error and panics.
func (s LetterSet) HighestFree() int {
	if s.IsFull() {
		panic("HighestFree called on a full letter set")
	}
	return (^s & FullLetterSet).Highest()
}

func (s LetterSet) String() string {
	return fmt.Sprintf("%026b", uint32(s))
}
