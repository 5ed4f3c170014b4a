package cliques

import (
	"context"
	"errors"
	"iter"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"crosswarped.com/cliques/internal"
	"crosswarped.com/cliques/pkg/primitives"
)

type Solver struct {
	Lines   [][]byte
	Workers int

	ranking *primitives.Ranking

	mu sync.Mutex
	// Do not access this field directly, use the Index method instead.
	lazyIndex *internal.IndexResult
}

type SolverParams struct {
	// Workers bounds the number of roots searched at once. Defaults to GOMAXPROCS.
	Workers int

	// Ranking replaces the frequency based letter ranking. It changes how
	// fast the search is, never what it finds.
	Ranking *primitives.Ranking
}

// SolveStats describes a finished search.
type SolveStats struct {
	Roots     int
	Solutions int64
	Duration  time.Duration
}

func CreateSolver(lines [][]byte, params SolverParams) *Solver {
	workers := params.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Solver{
		Lines:   lines,
		Workers: workers,
		ranking: params.Ranking,
	}
}

// CreateSolverFromWords is CreateSolver for callers holding strings.
func CreateSolverFromWords(words []string, params SolverParams) *Solver {
	lines := make([][]byte, len(words))
	for i, w := range words {
		lines[i] = []byte(w)
	}
	return CreateSolver(lines, params)
}

// Index builds the word index on first use and returns it afterwards.
func (s *Solver) Index(ctx context.Context) (*internal.IndexResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.lazyIndex != nil {
		return s.lazyIndex, nil
	}
	res, err := internal.BuildIndex(ctx, internal.BuildIndexParams{
		Lines:   s.Lines,
		Ranking: s.ranking,
	})
	if err != nil {
		return nil, err
	}
	s.lazyIndex = res
	return res, nil
}

// root is an independent subtree of the search: the first word is placed and
// the rank-25 letter has either been used by it or skipped.
type root struct {
	first   primitives.Word
	filter  primitives.LetterSet
	skipped bool
}

// rootsOf expands the first branch point of the search from the given state.
//
// The consume branch yields one root per fitting word. The skip branch is
// expanded once more so that every root has its first word placed.
func rootsOf(idx *primitives.Index, filter primitives.LetterSet, skipped bool) []root {
	letter := filter.HighestFree()

	var roots []root
	for _, w := range idx.Bucket(letter) {
		if !w.Mask.Disjoint(filter) {
			continue
		}
		roots = append(roots, root{first: w, filter: filter | w.Mask, skipped: skipped})
	}
	if !skipped {
		roots = append(roots, rootsOf(idx, filter|1<<letter, true)...)
	}
	return roots
}

// searchState is the read-only state shared by one search goroutine.
type searchState struct {
	index *primitives.Index
	emit  func(Solution) error
}

// solve places words at depth and beyond.
//
// letter is always the rarest free letter: either a word in its bucket uses it,
// or (once per path) it becomes the one letter the solution leaves out.
func (st *searchState) solve(filter primitives.LetterSet, skipped bool, depth int, sol *Solution) error {
	letter := filter.HighestFree()

	for _, w := range st.index.Bucket(letter) {
		if !w.Mask.Disjoint(filter) {
			continue
		}
		sol[depth] = w
		if depth == len(sol)-1 {
			if err := st.emit(*sol); err != nil {
				return err
			}
			continue
		}
		if err := st.solve(filter|w.Mask, skipped, depth+1, sol); err != nil {
			return err
		}
	}

	if !skipped {
		return st.solve(filter|1<<letter, true, depth, sol)
	}
	return nil
}

func (st *searchState) solveRoot(r root) error {
	var sol Solution
	sol[0] = r.first
	return st.solve(r.filter, r.skipped, 1, &sol)
}

// Solve runs the full search, handing every solution to sink exactly once.
//
// Roots are searched concurrently, so sink sees solutions in no particular
// order. The first sink error stops the search and is returned.
func (s *Solver) Solve(ctx context.Context, sink Sink) (SolveStats, error) {
	start := time.Now()

	res, err := s.Index(ctx)
	if err != nil {
		return SolveStats{}, err
	}

	roots := rootsOf(res.Index, 0, false)
	log.Debug().Int("roots", len(roots)).Int("workers", s.Workers).Msg("search-roots")

	var found atomic.Int64
	st := &searchState{
		index: res.Index,
		emit: func(sol Solution) error {
			found.Add(1)
			return sink.Emit(sol)
		},
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.Workers)
	for _, r := range roots {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return st.solveRoot(r)
		})
	}
	err = g.Wait()

	stats := SolveStats{
		Roots:     len(roots),
		Solutions: found.Load(),
		Duration:  time.Since(start),
	}
	if err == nil {
		err = ctx.Err()
	}
	return stats, err
}

var errStopIteration = errors.New("stop iteration")

// Solutions returns every solution, found sequentially on the calling goroutine.
//
// It yields nothing if the index cannot be built (the error is logged) or once
// ctx is done; use Solve to get errors back.
func (s *Solver) Solutions(ctx context.Context) iter.Seq[Solution] {
	return func(yield func(Solution) bool) {
		res, err := s.Index(ctx)
		if err != nil {
			log.Error().Err(err).Msg("building-index")
			return
		}

		st := &searchState{
			index: res.Index,
			emit: func(sol Solution) error {
				if !yield(sol) {
					return errStopIteration
				}
				return nil
			},
		}
		for _, r := range rootsOf(res.Index, 0, false) {
			if ctx.Err() != nil {
				return
			}
			if err := st.solveRoot(r); err != nil {
				return
			}
		}
	}
}
