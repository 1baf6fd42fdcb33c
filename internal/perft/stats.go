package perft

import "github.com/hailam/chesscore/internal/board"

// Stats breaks the leaf count down by the kind of the last move played,
// in the layout of the published perft tables.
type Stats struct {
	Nodes      uint64
	Captures   uint64
	EnPassant  uint64
	Castles    uint64
	Promotions uint64
	Checks     uint64
	Checkmates uint64
}

// Add accumulates o into s.
func (s *Stats) Add(o Stats) {
	s.Nodes += o.Nodes
	s.Captures += o.Captures
	s.EnPassant += o.EnPassant
	s.Castles += o.Castles
	s.Promotions += o.Promotions
	s.Checks += o.Checks
	s.Checkmates += o.Checkmates
}

// Detailed walks the full tree without bulk counting so every leaf move can
// be classified.
func Detailed(pos *board.Position, depth int) Stats {
	var s Stats
	if depth == 0 {
		s.Nodes = 1
		return s
	}

	var ml board.MoveList
	pos.GenerateLegal(&ml)
	for _, m := range ml.Slice() {
		if depth > 1 {
			pos.MakeMove(m)
			s.Add(Detailed(pos, depth-1))
			pos.UnmakeMove(m)
			continue
		}

		s.Nodes++
		if m.IsCapture(pos) {
			s.Captures++
		}
		switch m.Kind() {
		case board.EnPassant:
			s.EnPassant++
		case board.Castle:
			s.Castles++
		case board.Promotion:
			s.Promotions++
		}

		pos.MakeMove(m)
		if pos.InCheck() {
			s.Checks++
			if !pos.HasLegalMoves() {
				s.Checkmates++
			}
		}
		pos.UnmakeMove(m)
	}
	return s
}
