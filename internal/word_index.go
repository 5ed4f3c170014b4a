package internal

import (
	"context"
	"slices"

	"crosswarped.com/cliques/pkg/primitives"
)

type BuildIndexParams struct {
	// Lines are raw dictionary lines, one candidate word each.
	Lines [][]byte

	// Ranking overrides the frequency based ranking when set.
	Ranking *primitives.Ranking
}

// IndexResult is the output of BuildIndex.
type IndexResult struct {
	Index   *primitives.Index
	Ranking primitives.Ranking

	LinesRead  int
	Parsed     int
	Duplicates int
}

// Words returns the number of words that made it into the index.
func (r *IndexResult) Words() int {
	return r.Parsed - r.Duplicates
}

// dedup sorts words by raw mask and keeps the first spelling of each letter set.
//
// The sort is stable, so "first" means first in input order, and the result
// does not depend on the order of the input otherwise.
func dedup(words []primitives.Word) []primitives.Word {
	slices.SortStableFunc(words, func(a, b primitives.Word) int {
		return int(a.Mask) - int(b.Mask)
	})
	return slices.CompactFunc(words, func(a, b primitives.Word) bool {
		return a.Mask == b.Mask
	})
}

// BuildIndex parses, deduplicates, ranks and buckets the given dictionary lines.
//
// Lines that are not five distinct lowercase letters are dropped silently.
// Anagrams collapse onto the first spelling seen.
func BuildIndex(ctx context.Context, p BuildIndexParams) (*IndexResult, error) {
	var parsed []primitives.Word
	for i, line := range p.Lines {
		if i%4096 == 0 && ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if w, ok := primitives.ParseWord(line); ok {
			parsed = append(parsed, w)
		}
	}
	numParsed := len(parsed)
	words := dedup(parsed)

	var ranking primitives.Ranking
	if p.Ranking != nil {
		ranking = *p.Ranking
	} else {
		ranking = primitives.NewRanking(primitives.CountLetters(words))
	}

	for i, w := range words {
		words[i] = ranking.Remap(w)
	}

	return &IndexResult{
		Index:      primitives.NewIndex(words),
		Ranking:    ranking,
		LinesRead:  len(p.Lines),
		Parsed:     numParsed,
		Duplicates: numParsed - len(words),
	}, ctx.Err()
}
