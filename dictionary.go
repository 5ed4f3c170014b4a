package cliques

import (
	"bufio"
	"fmt"
	"io"

	"golang.org/x/exp/mmap"

	"crosswarped.com/cliques/pkg/primitives"
)

// maxLineLength bounds a single dictionary line.
const maxLineLength = 1 << 20

// LoadDictionary reads a newline separated word list and returns the lines
// that can hold a word.
//
// The file is scanned in place; only five byte lines (after dropping a
// trailing carriage return) are kept, packed into one buffer. Whether they
// are valid words is decided when the index is built.
func LoadDictionary(path string) ([][]byte, error) {
	r, err := mmap.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening dictionary: %w", err)
	}
	defer r.Close()

	if r.Len() == 0 {
		return nil, nil
	}
	return candidateLines(io.NewSectionReader(r, 0, int64(r.Len())))
}

func candidateLines(r io.Reader) ([][]byte, error) {
	var buf []byte
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)
	for scanner.Scan() {
		// ScanLines already strips a trailing '\r'.
		if line := scanner.Bytes(); len(line) == primitives.WordLength {
			buf = append(buf, line...)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading dictionary: %w", err)
	}

	const n = primitives.WordLength
	lines := make([][]byte, len(buf)/n)
	for i := range lines {
		lines[i] = buf[i*n : (i+1)*n : (i+1)*n]
	}
	return lines, nil
}
