package primitives

import "fmt"

// WordLength is the only word length we index.
const WordLength = 5

// Word is a five letter word with five distinct letters.
//
// Mask is either raw (bit per alphabet letter, as returned by ParseWord) or
// ranked (after Ranking.Remap). Letters always keep the original spelling.
type Word struct {
	Mask    LetterSet
	Letters [WordLength]byte
}

// ParseWord parses a single dictionary line into a Word.
//
// A trailing carriage return is ignored. The line is accepted only if it is
// exactly five lowercase ASCII letters, all different.
func ParseWord(line []byte) (Word, bool) {
	if n := len(line); n > 0 && line[n-1] == '\r' {
		line = line[:n-1]
	}
	if len(line) != WordLength {
		return Word{}, false
	}

	var w Word
	for i, c := range line {
		if c < 'a' || c > 'z' {
			return Word{}, false
		}
		w.Mask.Add(int(c - 'a'))
		w.Letters[i] = c
	}
	if w.Mask.Count() != WordLength {
		return Word{}, false
	}
	return w, true
}

// MustParseWord is like ParseWord but panics on input that is not a valid word.
func MustParseWord(s string) Word {
	w, ok := ParseWord([]byte(s))
	if !ok {
		panic(fmt.Sprintf("%q is not a five letter word with distinct letters", s))
	}
	return w
}

func (w Word) String() string {
	return string(w.Letters[:])
}

func (w Word) DebugString() string {
	return fmt.Sprintf("%#b %s", uint32(w.Mask), w)
}
