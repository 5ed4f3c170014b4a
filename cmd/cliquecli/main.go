package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime/pprof"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/felixge/fgprof"
	"github.com/kr/pretty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"crosswarped.com/cliques"
)

func main() {
	file := flag.String("file", "words_alpha.txt", "The file to load words from")
	output := flag.String("output", "solution.txt", "The file to write solutions to")
	workers := flag.Int("workers", 0, "Roots searched concurrently (0 means GOMAXPROCS)")
	verbose := flag.Bool("verbose", false, "Enable debug logging")
	stats := flag.Bool("stats", false, "Print the word index before searching")

	profile := flag.Bool("profile", false, "Profile the search")
	profileMode := flag.String("profile-mode", "cpu", "Profile type: cpu (runtime/pprof) or wall (fgprof)")
	profileFile := flag.String("profile-file", "cpu.pprof", "The file to write the profile to")

	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	stop := func() error { return nil }
	if *profile {
		var err error
		if stop, err = startProfile(*profileMode, *profileFile); err != nil {
			log.Fatal().Err(err).Msg("starting profile")
		}
	}

	err := run(context.Background(), *file, *output, *workers, *stats)
	if perr := stop(); perr != nil {
		log.Error().Err(perr).Msg("stopping profile")
	}
	if err != nil {
		log.Fatal().Err(err).Msg("five-cliques failed")
	}
}

func run(ctx context.Context, file, output string, workers int, stats bool) error {
	start := time.Now()
	lines, err := cliques.LoadDictionary(file)
	if err != nil {
		return err
	}
	loaded := time.Now()

	solver := cliques.CreateSolver(lines, cliques.SolverParams{Workers: workers})
	res, err := solver.Index(ctx)
	if err != nil {
		return err
	}
	indexed := time.Now()

	log.Info().
		Str("file", file).
		Str("candidates", humanize.Comma(int64(res.LinesRead))).
		Str("words", humanize.Comma(int64(res.Words()))).
		Str("anagrams", humanize.Comma(int64(res.Duplicates))).
		Str("ranking", res.Ranking.String()).
		Msg("indexed-dictionary")
	if stats {
		pretty.Println(struct {
			Ranking string
			Buckets [26]int
		}{res.Ranking.String(), res.Index.Sizes()})
	}

	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer f.Close()

	sink := cliques.NewWriterSink(f)
	solved, err := solver.Solve(ctx, sink)
	if err != nil {
		return fmt.Errorf("searching: %w", err)
	}
	if err := sink.Flush(); err != nil {
		return fmt.Errorf("writing %s: %w", output, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", output, err)
	}

	log.Info().
		Str("output", output).
		Int("roots", solved.Roots).
		Str("solutions", humanize.Comma(solved.Solutions)).
		Msg("search-done")

	fmt.Printf("loading words     %s us\n", humanize.Comma(loaded.Sub(start).Microseconds()))
	fmt.Printf("indexed words     %s us\n", humanize.Comma(indexed.Sub(loaded).Microseconds()))
	fmt.Printf("solved            %s ms\n", humanize.Comma(solved.Duration.Milliseconds()))
	fmt.Printf("total             %s ms\n", humanize.Comma(time.Since(start).Milliseconds()))
	return nil
}

func startProfile(mode, path string) (func() error, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating profile file: %w", err)
	}

	switch mode {
	case "cpu":
		if err := pprof.StartCPUProfile(f); err != nil {
			f.Close()
			return nil, fmt.Errorf("starting CPU profile: %w", err)
		}
		return closeAfter(f, func() error {
			pprof.StopCPUProfile()
			return nil
		}), nil
	case "wall":
		return closeAfter(f, fgprof.Start(f, fgprof.FormatPprof)), nil
	default:
		f.Close()
		return nil, fmt.Errorf("unknown profile mode %q", mode)
	}
}

func closeAfter(c io.Closer, stop func() error) func() error {
	return func() error {
		if err := stop(); err != nil {
			c.Close()
			return err
		}
		return c.Close()
	}
}
