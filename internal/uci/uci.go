// Package uci implements the subset of the Universal Chess Interface that a
// move generator can answer: position setup, perft and board inspection.
package uci

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/hailam/chesscore/internal/board"
	"github.com/hailam/chesscore/internal/perft"
	"github.com/hailam/chesscore/internal/storage"
)

// UCI implements the Universal Chess Interface protocol.
type UCI struct {
	out      io.Writer
	log      zerolog.Logger
	tables   *board.Tables
	position *board.Position
	workers  int

	// Optional result store; perft counts are saved when set.
	store *storage.Storage
}

// Option configures a UCI handler.
type Option func(*UCI)

// WithStore records every perft result in s.
func WithStore(s *storage.Storage) Option {
	return func(u *UCI) { u.store = s }
}

// WithTables uses t instead of the default tables.
func WithTables(t *board.Tables) Option {
	return func(u *UCI) { u.tables = t }
}

// WithWorkers sets the number of goroutines used by perft.
func WithWorkers(n int) Option {
	return func(u *UCI) { u.workers = max(n, 1) }
}

// New creates a new UCI protocol handler writing replies to out.
func New(out io.Writer, logger zerolog.Logger, opts ...Option) *UCI {
	u := &UCI{
		out:     out,
		log:     logger,
		workers: runtime.NumCPU(),
	}
	for _, opt := range opts {
		opt(u)
	}
	if u.tables == nil {
		u.tables = board.Default()
	}
	u.position = u.startPosition()
	return u
}

func (u *UCI) startPosition() *board.Position {
	pos, err := board.ParseFENWith(u.tables, board.StartFEN)
	if err != nil {
		panic(err)
	}
	return pos
}

// Position returns the current position.
func (u *UCI) Position() *board.Position {
	return u.position
}

// Run reads commands from in until "quit", EOF or ctx is done.
func (u *UCI) Run(ctx context.Context, in io.Reader) error {
	scanner := bufio.NewScanner(in)

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		parts := strings.Fields(line)
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "uci":
			u.handleUCI()
		case "isready":
			u.println("readyok")
		case "ucinewgame":
			u.position = u.startPosition()
		case "position":
			u.handlePosition(args)
		case "go":
			u.handleGo(ctx, args)
		case "setoption":
			u.handleSetOption(args)
		case "quit":
			return nil
		// Debug commands
		case "d":
			u.println(u.position.String())
		case "perft":
			u.handlePerft(ctx, args, false)
		case "divide":
			u.handlePerft(ctx, args, true)
		case "moves":
			u.handleMoves()
		default:
			u.log.Debug().Str("cmd", cmd).Msg("unknown command")
		}
	}
	return scanner.Err()
}

func (u *UCI) println(a ...any) {
	fmt.Fprintln(u.out, a...)
}

func (u *UCI) printf(format string, a ...any) {
	fmt.Fprintf(u.out, format, a...)
}

// handleUCI responds to the "uci" command.
func (u *UCI) handleUCI() {
	u.println("id name chesscore")
	u.println("id author chesscore authors")
	u.println()
	u.printf("option name Threads type spin default %d min 1 max 512\n", u.workers)
	u.printf("option name SliderIndex type combo default %s var magic var pext var raycast\n", u.tables.Index())
	u.println("uciok")
}

// handlePosition parses and sets up a position.
// Formats:
//   - position startpos
//   - position startpos moves e2e4 e7e5
//   - position fen <fen>
//   - position fen <fen> moves e2e4
func (u *UCI) handlePosition(args []string) {
	if len(args) == 0 {
		return
	}

	// Find "moves" keyword
	moveStart := len(args)
	for i, arg := range args {
		if arg == "moves" {
			moveStart = i
			break
		}
	}

	var pos *board.Position
	switch args[0] {
	case "startpos":
		pos = u.startPosition()
	case "fen":
		p, err := board.ParseFENWith(u.tables, strings.Join(args[1:moveStart], " "))
		if err != nil {
			u.printf("info string Invalid FEN: %v\n", err)
			return
		}
		pos = p
	default:
		return
	}

	if moveStart < len(args) {
		for _, moveStr := range args[moveStart+1:] {
			m, ok := board.ParseUCIMove(moveStr, pos)
			if !ok || !pos.IsLegal(m) {
				u.printf("info string Invalid move: %s\n", moveStr)
				return
			}
			pos.MakeMove(m)
		}
	}
	u.position = pos
}

// handleGo answers "go perft <depth>" with a divide. There is no search, so any
// other go command gets a null move back.
func (u *UCI) handleGo(ctx context.Context, args []string) {
	if len(args) >= 1 && args[0] == "perft" {
		u.handlePerft(ctx, args[1:], true)
		return
	}
	u.println("info string search is not supported")
	u.println("bestmove 0000")
}

// handleSetOption handles "setoption name <name> value <value>".
func (u *UCI) handleSetOption(args []string) {
	var name, value string
	readingName := false
	readingValue := false

	for _, arg := range args {
		switch arg {
		case "name":
			readingName = true
			readingValue = false
		case "value":
			readingName = false
			readingValue = true
		default:
			if readingName {
				if name != "" {
					name += " "
				}
				name += arg
			} else if readingValue {
				if value != "" {
					value += " "
				}
				value += arg
			}
		}
	}

	switch strings.ToLower(name) {
	case "threads":
		n, err := strconv.Atoi(value)
		if err != nil || n < 1 {
			u.printf("info string Invalid Threads value: %s\n", value)
			return
		}
		u.workers = n
	case "sliderindex":
		index, ok := board.ParseSliderIndex(strings.ToLower(value))
		if !ok {
			u.printf("info string Invalid SliderIndex value: %s\n", value)
			return
		}
		if index == u.tables.Index() {
			return
		}
		start := time.Now()
		u.tables = board.BuildTables(index)
		u.log.Info().Stringer("index", index).Dur("took", time.Since(start)).Msg("rebuilt attack tables")
		pos, err := board.ParseFENWith(u.tables, u.position.FEN())
		if err != nil {
			panic(err)
		}
		u.position = pos
	default:
		u.log.Debug().Str("name", name).Msg("unknown option")
	}
}

// handlePerft runs a perft test, optionally printing the count below each root move.
func (u *UCI) handlePerft(ctx context.Context, args []string, divide bool) {
	depth := 5
	if len(args) > 0 {
		d, err := strconv.Atoi(args[0])
		if err != nil || d < 1 {
			u.printf("info string Invalid depth: %s\n", args[0])
			return
		}
		depth = d
	}

	start := time.Now()
	entries, err := perft.ParallelDivide(ctx, u.position, depth, u.workers)
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			u.log.Error().Err(err).Msg("perft failed")
		}
		return
	}
	elapsed := time.Since(start)
	nodes := perft.Total(entries)

	if divide {
		for _, e := range entries {
			u.println(e)
		}
		u.println()
	}
	u.printf("Nodes: %d\n", nodes)
	u.printf("Time: %v\n", elapsed)
	if elapsed > 0 {
		nps := float64(nodes) / elapsed.Seconds()
		u.printf("NPS: %.0f\n", nps)
	}

	if u.store != nil {
		r := storage.Result{FEN: u.position.FEN(), Depth: depth, Nodes: nodes, Elapsed: elapsed}
		if err := u.store.Save(r); err != nil {
			u.log.Warn().Err(err).Msg("could not save perft result")
		}
	}
}

// handleMoves lists the legal moves in generation order.
func (u *UCI) handleMoves() {
	moves := u.position.LegalMoves().Slice()
	strs := make([]string, len(moves))
	for i, m := range moves {
		strs[i] = m.String()
	}
	u.printf("%d: %s\n", len(moves), strings.Join(strs, " "))
}
