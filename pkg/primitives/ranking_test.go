package primitives

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewRanking_TiesKeepAlphabetOrder(t *testing.T) {
	if diff := cmp.Diff(IdentityRanking(), NewRanking([NumLetters]int{})); diff != "" {
		t.Errorf("ranking of equal frequencies mismatch (-want +got):\n%s", diff)
	}
}

func TestNewRanking(t *testing.T) {
	var freqs [NumLetters]int
	freqs['e'-'a'] = 10
	freqs['a'-'a'] = 5

	r := NewRanking(freqs)

	for _, tt := range []struct {
		letter byte
		rank   int
	}{
		{'e', 0},
		{'a', 1},
		{'b', 2},
		{'d', 4},
		{'f', 5},
		{'z', 25},
	} {
		if got := r[tt.letter-'a']; got != tt.rank {
			t.Errorf("rank of %c = %d, want %d", tt.letter, got, tt.rank)
		}
		if got := r.Letter(tt.rank); got != tt.letter {
			t.Errorf("Letter(%d) = %c, want %c", tt.rank, got, tt.letter)
		}
	}

	if got, want := r.String(), "zyxwvutsrqponmlkjihgfdcbae"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	ranks := r[:]
	sorted := slices.Clone(ranks)
	slices.Sort(sorted)
	for i, rk := range sorted {
		if rk != i {
			t.Fatalf("ranking %v is not a permutation", ranks)
		}
	}
}

func TestNewRanking_Deterministic(t *testing.T) {
	words := []Word{
		MustParseWord("ghost"),
		MustParseWord("bread"),
		MustParseWord("fjord"),
		MustParseWord("nymph"),
		MustParseWord("quick"),
	}
	want := NewRanking(CountLetters(words))
	for range 20 {
		if diff := cmp.Diff(want, NewRanking(CountLetters(words))); diff != "" {
			t.Fatalf("ranking changed between runs (-want +got):\n%s", diff)
		}
	}
}

func TestRanking_Remap(t *testing.T) {
	var freqs [NumLetters]int
	for i := range freqs {
		freqs[i] = i // 'z' is the most common, 'a' the rarest.
	}
	r := NewRanking(freqs)

	w := r.Remap(MustParseWord("abcde"))
	if got, want := w.Mask, LetterSet(0b11111<<21); got != want {
		t.Errorf("Remap(abcde).Mask = %s, want %s", got, want)
	}
	if got := w.Mask.Highest(); got != 25 {
		t.Errorf("most significant letter = %d, want 25", got)
	}
	if got := w.String(); got != "abcde" {
		t.Errorf("Remap changed the spelling to %q", got)
	}
	if got := r.Letters(w.Mask); got != "abcde" {
		t.Errorf("Letters() = %q, want abcde", got)
	}
}

func TestIndex(t *testing.T) {
	words := []Word{
		IdentityRanking().Remap(MustParseWord("abcde")),
		IdentityRanking().Remap(MustParseWord("vwxyz")),
		IdentityRanking().Remap(MustParseWord("uvwxy")),
		IdentityRanking().Remap(MustParseWord("fghij")),
	}
	idx := NewIndex(words)

	if idx.Len() != len(words) {
		t.Errorf("Len() = %d, want %d", idx.Len(), len(words))
	}
	for _, tt := range []struct {
		rank  int
		words []string
	}{
		{4, []string{"abcde"}},
		{9, []string{"fghij"}},
		{24, []string{"uvwxy"}},
		{25, []string{"vwxyz"}},
		{0, nil},
	} {
		var got []string
		for _, w := range idx.Bucket(tt.rank) {
			got = append(got, w.String())
		}
		if diff := cmp.Diff(tt.words, got); diff != "" {
			t.Errorf("bucket %d mismatch (-want +got):\n%s", tt.rank, diff)
		}
	}
	if sizes := idx.Sizes(); sizes[25] != 1 || sizes[3] != 0 {
		t.Errorf("Sizes() = %v", sizes)
	}
}
