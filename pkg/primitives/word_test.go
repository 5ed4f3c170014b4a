package primitives

import (
	"testing"
)

func TestParseWord(t *testing.T) {
	tests := []struct {
		line   string
		wantOK bool
	}{
		{"ghost", true},
		{"ghost\r", true},
		{"bread", true},
		{"apple", false}, // repeated p
		{"gh0st", false},
		{"Ghost", false},
		{"ab", false},
		{"", false},
		{"ghosts", false},
		{"ghos\r", false},
		{"ghost\r\r", false},
		{"ghost ", false},
		{"aaaaa", false},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			w, ok := ParseWord([]byte(tt.line))
			if ok != tt.wantOK {
				t.Fatalf("ParseWord(%q) ok = %v, want %v", tt.line, ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if got := w.String(); got != tt.line[:WordLength] {
				t.Errorf("String() = %q, want %q", got, tt.line[:WordLength])
			}
			if w.Mask.Count() != WordLength {
				t.Errorf("mask %s has %d letters", w.Mask, w.Mask.Count())
			}
		})
	}
}

func TestParseWord_RawMask(t *testing.T) {
	w := MustParseWord("abcde")
	if w.Mask != 0b11111 {
		t.Errorf("abcde mask = %s, want low five bits", w.Mask)
	}

	// Anagrams share a mask.
	if MustParseWord("bread").Mask != MustParseWord("beard").Mask {
		t.Error("bread and beard should have the same mask")
	}
}

func TestWord_DebugString(t *testing.T) {
	got := MustParseWord("abcde").DebugString()
	if want := "0b11111 abcde"; got != want {
		t.Errorf("DebugString() = %q, want %q", got, want)
	}
}
