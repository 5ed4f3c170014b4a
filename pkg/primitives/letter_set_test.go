package primitives

import (
	"testing"
)

func TestLetterSet_Add(t *testing.T) {
	var ls LetterSet

	tests := []struct {
		name      string
		pos       int
		wantCount int
	}{
		{"add 0", 0, 1},
		{"add 1", 1, 2},
		{"add 25", 25, 3},
		{"add 0 again", 0, 3}, // should not increase count
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ls.Add(tt.pos)
			if !ls.Contains(tt.pos) {
				t.Errorf("Contains(%d) = false after Add", tt.pos)
			}
			if ls.Count() != tt.wantCount {
				t.Errorf("count = %d, want %d", ls.Count(), tt.wantCount)
			}
		})
	}
}

func TestLetterSet_Highest(t *testing.T) {
	tests := []struct {
		name        string
		set         LetterSet
		highest     int
		highestFree int
	}{
		{"empty", 0, -1, 25},
		{"only 0", 1, 0, 25},
		{"top taken", 1 << 25, 25, 24},
		{"top three taken", 0b111 << 23, 25, 22},
		{"all but 0", FullLetterSet &^ 1, 25, 0},
		{"gap in the middle", FullLetterSet &^ (1 << 12), 25, 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.set.Highest(); got != tt.highest {
				t.Errorf("Highest() = %d, want %d", got, tt.highest)
			}
			if got := tt.set.HighestFree(); got != tt.highestFree {
				t.Errorf("HighestFree() = %d, want %d", got, tt.highestFree)
			}
		})
	}
}

func TestLetterSet_HighestFreePanicsWhenFull(t *testing.T) {
	almost := FullLetterSet &^ 1
	if almost.IsFull() {
		t.Fatalf("%s should not be full", almost)
	}
	if got := almost.HighestFree(); got != 0 {
		t.Errorf("HighestFree() = %d, want 0", got)
	}
	almost.Add(0)
	if !almost.IsFull() {
		t.Fatalf("%s should be full", almost)
	}

	defer func() {
		if recover() == nil {
			t.Error("expected HighestFree on a full set to panic")
		}
	}()
	almost.HighestFree()
}

func TestLetterSet_Cover(t *testing.T) {
	if !FullLetterSet.IsFull() {
		t.Error("FullLetterSet.IsFull() = false")
	}
	if FullLetterSet.IsCover() {
		t.Error("a full set is not a cover")
	}
	if !(FullLetterSet &^ (1 << 7)).IsCover() {
		t.Error("all letters but one should be a cover")
	}

	a := LetterSet(0b1010)
	b := LetterSet(0b0101)
	if !a.Disjoint(b) {
		t.Errorf("%s and %s should be disjoint", a, b)
	}
	if a.Disjoint(a.Union(b)) {
		t.Errorf("%s and %s should overlap", a, a.Union(b))
	}
	if !a.Contains(1) || a.Contains(0) {
		t.Errorf("Contains() wrong for %s", a)
	}
}
