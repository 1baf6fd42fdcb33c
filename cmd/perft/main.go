package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sys/cpu"

	"github.com/hailam/chesscore/internal/board"
	"github.com/hailam/chesscore/internal/logx"
	"github.com/hailam/chesscore/internal/perft"
	"github.com/hailam/chesscore/internal/perftsuite"
	"github.com/hailam/chesscore/internal/storage"
)

func main() {
	fen := flag.String("fen", board.StartFEN, "FEN string (defaults to initial position)")
	depth := flag.Int("depth", 0, "Perft depth (required unless -suite is given)")
	divide := flag.Bool("divide", false, "Print per-move node counts at root")
	workers := flag.Int("workers", runtime.NumCPU(), "Goroutines used for the root moves")
	cacheMB := flag.Int64("cache", 0, "Transposition cache size in MB (0 disables)")
	suite := flag.String("suite", "", "EPD perft suite to check (.epd or .epd.zst), or \"standard\"")
	compress := flag.String("compress", "", "Write a zstd-compressed copy of -suite to this path and exit")
	store := flag.Bool("store", false, "Reuse and record results in the local database")
	info := flag.Bool("info", false, "Print CPU features and table sizes, then exit")
	slider := flag.String("slider", "magic", "Slider attack index: magic, pext or raycast")
	logLevel := flag.String("log-level", "info", "Log level")
	cpuProf := flag.String("cpuprofile", "", "Write CPU profile to file during run")
	flag.Parse()

	log := logx.NewLogger(os.Stderr)
	if err := logx.SetLevel(*logLevel); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	index, ok := board.ParseSliderIndex(*slider)
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown slider index %q\n", *slider)
		os.Exit(2)
	}

	start := time.Now()
	tables := board.BuildTables(index)
	log.Debug().Stringer("index", index).Dur("took", time.Since(start)).Msg("attack tables built")

	if *info {
		printInfo(tables)
		return
	}

	if *compress != "" {
		if err := compressSuite(*suite, *compress); err != nil {
			log.Fatal().Err(err).Msg("compress suite")
		}
		return
	}

	if *cpuProf != "" {
		f, err := os.Create(*cpuProf)
		if err != nil {
			fmt.Fprintf(os.Stderr, "creating cpuprofile: %v\n", err)
			os.Exit(2)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Fprintf(os.Stderr, "start cpu profile: %v\n", err)
			os.Exit(2)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	r := runner{tables: tables, workers: *workers, log: log}
	if *cacheMB > 0 {
		c, err := perft.NewCache(*cacheMB << 20)
		if err != nil {
			log.Fatal().Err(err).Msg("perft cache")
		}
		defer c.Close()
		r.cache = c
	}
	if *store {
		s, err := storage.OpenDefault()
		if err != nil {
			log.Fatal().Err(err).Msg("open result store")
		}
		defer s.Close()
		r.store = s
	}

	if *suite != "" {
		if err := r.runSuite(ctx, *suite, *depth); err != nil {
			log.Error().Err(err).Msg("suite")
			stop()
			os.Exit(1)
		}
		return
	}

	if *depth <= 0 {
		fmt.Fprintln(os.Stderr, "-depth must be > 0")
		os.Exit(2)
	}

	pos, err := board.ParseFENWith(tables, *fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ParseFEN error: %v\n", err)
		os.Exit(2)
	}

	if err := r.runPosition(ctx, pos, *depth, *divide); err != nil {
		if errors.Is(err, context.Canceled) {
			log.Warn().Msg("interrupted")
		} else {
			log.Error().Err(err).Msg("perft")
		}
		stop()
		os.Exit(1)
	}
}

type runner struct {
	tables  *board.Tables
	workers int
	cache   *perft.Cache
	store   *storage.Storage
	log     zerolog.Logger
}

func (r *runner) divide(ctx context.Context, pos *board.Position, depth int) ([]perft.Entry, error) {
	if r.cache != nil {
		return r.cache.ParallelDivide(ctx, pos, depth, r.workers)
	}
	return perft.ParallelDivide(ctx, pos, depth, r.workers)
}

func (r *runner) runPosition(ctx context.Context, pos *board.Position, depth int, divide bool) error {
	fen := pos.FEN()
	if r.store != nil && !divide {
		if res, err := r.store.Lookup(fen, depth); err == nil {
			r.log.Info().Time("recorded", res.RecordedAt).Msg("result from store")
			fmt.Printf("%d \t\t%d \t\t%s \t%.0f\n", depth, res.Nodes, res.Elapsed, res.NPS())
			return nil
		} else if !errors.Is(err, storage.ErrNotFound) {
			return err
		}
	}

	start := time.Now()
	entries, err := r.divide(ctx, pos, depth)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)
	nodes := perft.Total(entries)

	if divide {
		for _, e := range entries {
			fmt.Println(e)
		}
		fmt.Printf("Total: %d\n", nodes)
	} else {
		nps := float64(nodes) / elapsed.Seconds()
		// Single line: Depth Nodes Time NPS
		fmt.Printf("%d \t\t%d \t\t%s \t%.0f\n", depth, nodes, elapsed, nps)
	}
	if r.cache != nil {
		r.log.Debug().Float64("hit_ratio", r.cache.HitRatio()).Msg("perft cache")
	}

	if r.store != nil {
		res := storage.Result{FEN: fen, Depth: depth, Nodes: nodes, Elapsed: elapsed}
		if err := r.store.Save(res); err != nil {
			r.log.Warn().Err(err).Msg("could not save result")
		}
	}
	return nil
}

func (r *runner) runSuite(ctx context.Context, path string, maxDepth int) error {
	var cases []perftsuite.Case
	if path == "standard" {
		cases = perftsuite.Standard()
	} else {
		var err error
		if cases, err = perftsuite.Load(path); err != nil {
			return err
		}
	}

	count := func(ctx context.Context, pos *board.Position, depth int) (uint64, error) {
		// Suite positions are parsed on the default tables; count on ours.
		p, err := board.ParseFENWith(r.tables, pos.FEN())
		if err != nil {
			return 0, err
		}
		entries, err := r.divide(ctx, p, depth)
		if err != nil {
			return 0, err
		}
		return perft.Total(entries), nil
	}
	report := func(res perftsuite.Result) {
		ev := r.log.Info()
		if !res.OK() {
			ev = r.log.Error().Uint64("want", res.Want)
		}
		ev.Int("line", res.Case.Line).Int("depth", res.Depth).Uint64("nodes", res.Got).
			Dur("took", res.Elapsed).Msg(res.Case.FEN)
	}

	results, err := perftsuite.Run(ctx, cases, maxDepth, count, report)
	if err != nil {
		return err
	}
	if failed := perftsuite.Failures(results); len(failed) > 0 {
		return fmt.Errorf("%d of %d checks failed", len(failed), len(results))
	}
	r.log.Info().Int("checks", len(results)).Msg("suite passed")
	return nil
}

func compressSuite(src, dst string) error {
	if src == "" {
		return errors.New("-compress needs -suite")
	}
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if err := perftsuite.Compress(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func printInfo(t *board.Tables) {
	fmt.Printf("GOARCH:       %s\n", runtime.GOARCH)
	fmt.Printf("BMI2:         %v\n", cpu.X86.HasBMI2)
	fmt.Printf("Slider index: %s\n", t.Index())
	fmt.Printf("Bishop table: %d entries\n", t.SliderTableSize(board.Bishop))
	fmt.Printf("Rook table:   %d entries\n", t.SliderTableSize(board.Rook))
}
