package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"runtime"
	"runtime/pprof"

	"github.com/hailam/chesscore/internal/board"
	"github.com/hailam/chesscore/internal/logx"
	"github.com/hailam/chesscore/internal/storage"
	"github.com/hailam/chesscore/internal/uci"
)

var (
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to file")
	slider     = flag.String("slider", "magic", "slider attack index: magic, pext or raycast")
	threads    = flag.Int("threads", runtime.NumCPU(), "perft worker goroutines")
	store      = flag.Bool("store", false, "record perft results in the local database")
	logLevel   = flag.String("log-level", "info", "log level")
)

func main() {
	flag.Parse()

	// The protocol owns stdout, so logs go to stderr.
	log := logx.NewLogger(os.Stderr)
	if err := logx.SetLevel(*logLevel); err != nil {
		log.Fatal().Err(err).Msg("bad log level")
	}

	// Start CPU profiling if requested (via flag or environment variable)
	profilePath := *cpuprofile
	if profilePath == "" {
		profilePath = os.Getenv("CPUPROFILE")
	}
	if profilePath != "" {
		f, err := os.Create(profilePath)
		if err != nil {
			log.Fatal().Err(err).Msg("could not create CPU profile")
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal().Err(err).Msg("could not start CPU profile")
		}
		defer pprof.StopCPUProfile()
		log.Info().Str("path", profilePath).Msg("CPU profiling enabled")
	}

	index, ok := board.ParseSliderIndex(*slider)
	if !ok {
		log.Fatal().Str("slider", *slider).Msg("unknown slider index")
	}

	opts := []uci.Option{
		uci.WithTables(board.BuildTables(index)),
		uci.WithWorkers(*threads),
	}
	if *store {
		s, err := storage.OpenDefault()
		if err != nil {
			log.Warn().Err(err).Msg("result store not available")
		} else {
			defer s.Close()
			opts = append(opts, uci.WithStore(s))
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	protocol := uci.New(os.Stdout, log, opts...)
	if err := protocol.Run(ctx, os.Stdin); err != nil && ctx.Err() == nil {
		log.Error().Err(err).Msg("uci loop stopped")
	}
}
