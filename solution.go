package cliques

import (
	"fmt"
	"strings"

	"crosswarped.com/cliques/pkg/primitives"
)

// Solution is five words with pairwise disjoint letters covering 25 letters.
//
// Words are in the order the search placed them: the word holding the rarest
// letter first.
type Solution [5]primitives.Word

// Mask returns the union of all five word masks.
func (s Solution) Mask() primitives.LetterSet {
	var m primitives.LetterSet
	for _, w := range s {
		m = m.Union(w.Mask)
	}
	return m
}

// Words returns the five spellings.
func (s Solution) Words() []string {
	words := make([]string, len(s))
	for i, w := range s {
		words[i] = w.String()
	}
	return words
}

// Repr returns the output line for the solution, without a trailing newline.
func (s Solution) Repr() string {
	return strings.Join(s.Words(), " ")
}

func (s Solution) DebugString() string {
	return fmt.Sprintf("Solution{mask: %s, words: %v}", s.Mask(), s.Words())
}
