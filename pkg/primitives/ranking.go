package primitives

import (
	"slices"
	"strings"
)

// Ranking maps each letter of the alphabet ('a' is 0) to its rarity rank.
//
// The least frequent letter gets rank 25, the most frequent rank 0.
type Ranking [NumLetters]int

// CountLetters counts the occurrences of each letter across the given words.
func CountLetters(words []Word) [NumLetters]int {
	var freqs [NumLetters]int
	for _, w := range words {
		for _, c := range w.Letters {
			freqs[c-'a']++
		}
	}
	return freqs
}

// NewRanking builds a ranking from per-letter frequencies.
//
// Letters with equal frequency keep alphabetical order, so the earlier letter
// gets the lower (more common) rank and the result is reproducible.
func NewRanking(freqs [NumLetters]int) Ranking {
	letters := make([]int, NumLetters)
	for i := range letters {
		letters[i] = i
	}
	slices.SortStableFunc(letters, func(a, b int) int {
		return freqs[b] - freqs[a]
	})

	var r Ranking
	for rank, letter := range letters {
		r[letter] = rank
	}
	return r
}

// IdentityRanking leaves every letter at its alphabet position.
func IdentityRanking() Ranking {
	var r Ranking
	for i := range r {
		r[i] = i
	}
	return r
}

// Remap returns the word with its mask rebuilt on ranked positions.
func (r Ranking) Remap(w Word) Word {
	out := Word{Letters: w.Letters}
	for _, c := range w.Letters {
		out.Mask.Add(r[c-'a'])
	}
	return out
}

// Letter returns the letter holding the given rank.
func (r Ranking) Letter(rank int) byte {
	for i, rk := range r {
		if rk == rank {
			return byte('a' + i)
		}
	}
	panic("ranking is not a permutation")
}

// Letters returns a ranked set back in alphabet letters.
func (r Ranking) Letters(s LetterSet) string {
	var b strings.Builder
	for i, rk := range r {
		if s.Contains(rk) {
			b.WriteByte(byte('a' + i))
		}
	}
	return b.String()
}

// String lists the letters from rarest to most common.
func (r Ranking) String() string {
	var b strings.Builder
	for rank := NumLetters - 1; rank >= 0; rank-- {
		b.WriteByte(r.Letter(rank))
	}
	return b.String()
}
