package board

import "fmt"

// CastlingRights represents the available castling options.
type CastlingRights uint8

const (
	WhiteKingSideCastle  CastlingRights = 1 << iota // K
	WhiteQueenSideCastle                            // Q
	BlackKingSideCastle                             // k
	BlackQueenSideCastle                            // q
	NoCastling           CastlingRights = 0
	AllCastling          CastlingRights = WhiteKingSideCastle | WhiteQueenSideCastle | BlackKingSideCastle | BlackQueenSideCastle
)

// String returns the FEN castling rights string.
func (cr CastlingRights) String() string {
	if cr == NoCastling {
		return "-"
	}
	s := ""
	if cr&WhiteKingSideCastle != 0 {
		s += "K"
	}
	if cr&WhiteQueenSideCastle != 0 {
		s += "Q"
	}
	if cr&BlackKingSideCastle != 0 {
		s += "k"
	}
	if cr&BlackQueenSideCastle != 0 {
		s += "q"
	}
	return s
}

// CanCastle returns true if the given side can castle in the given direction.
func (cr CastlingRights) CanCastle(c Color, kingSide bool) bool {
	if c == White {
		if kingSide {
			return cr&WhiteKingSideCastle != 0
		}
		return cr&WhiteQueenSideCastle != 0
	}
	if kingSide {
		return cr&BlackKingSideCastle != 0
	}
	return cr&BlackQueenSideCastle != 0
}

// castle describes one castling option on the standard board.
type castle struct {
	right        CastlingRights
	king, kingTo Square
	rook, rookTo Square
}

var castles = [4]castle{
	{WhiteKingSideCastle, E1, G1, H1, F1},
	{WhiteQueenSideCastle, E1, C1, A1, D1},
	{BlackKingSideCastle, E8, G8, H8, F8},
	{BlackQueenSideCastle, E8, C8, A8, D8},
}

// castlingMask[sq] lists the rights lost when a piece leaves or lands on sq.
var castlingMask = func() (m [64]CastlingRights) {
	for _, c := range castles {
		m[c.king] |= c.right
		m[c.rook] |= c.right
	}
	return m
}()

// rookCastleSquares returns the rook relocation for a castle ending on kingTo.
func rookCastleSquares(kingTo Square) (from, to Square) {
	for _, c := range castles {
		if c.kingTo == kingTo {
			return c.rook, c.rookTo
		}
	}
	panic("board: no castle ends on " + kingTo.String())
}

// CheckState classifies how many pieces give check.
type CheckState uint8

const (
	NoCheck CheckState = iota
	SingleCheck
	DoubleCheck
)

func (cs CheckState) String() string {
	switch cs {
	case NoCheck:
		return "none"
	case SingleCheck:
		return "single"
	case DoubleCheck:
		return "double"
	}
	return "unknown"
}

// State is the per-ply data that cannot be recovered from the board alone,
// plus the check and pin sets derived after each move.
type State struct {
	Checkers Bitboard    // Enemy pieces attacking the side-to-move's king
	Pinners  [2]Bitboard // [c]: sliders of color c pinning a piece to the other king
	Blockers [2]Bitboard // [c]: pieces of either color shielding c's king from a slider

	Captured  Piece  // Piece taken by the move that produced this state
	EnPassant Square // Target square after a double push, NoSquare otherwise
	Castling  CastlingRights
	HalfMoves int
	Hash      uint64
}

// Position represents a complete chess position.
type Position struct {
	toMove Color
	ply    int

	colors [2]Bitboard // All pieces of each color
	pieces [6]Bitboard // All pieces of each type
	board  [64]Piece

	// states[len-1] is the current state; MakeMove pushes, UnmakeMove pops.
	states []State

	tables *Tables
}

func newPosition(t *Tables) *Position {
	p := &Position{tables: t, states: make([]State, 1, 256)}
	p.states[0].EnPassant = NoSquare
	return p
}

// NewPosition creates the starting position.
func NewPosition() *Position {
	return MustParseFEN(StartFEN)
}

// Clone returns an independent deep copy, including the state history.
// Tables are shared since they are read-only.
func (p *Position) Clone() *Position {
	c := *p
	c.states = make([]State, len(p.states), cap(p.states))
	copy(c.states, p.states)
	return &c
}

// Tables returns the lookup tables the position was built with.
func (p *Position) Tables() *Tables {
	return p.tables
}

func (p *Position) state() *State {
	return &p.states[len(p.states)-1]
}

// State returns a copy of the current state.
func (p *Position) State() State {
	return *p.state()
}

// SideToMove returns the color to move.
func (p *Position) SideToMove() Color {
	return p.toMove
}

// Ply returns the number of half moves played since the start of the game.
func (p *Position) Ply() int {
	return p.ply
}

// FullMoveNumber returns the FEN full-move counter.
func (p *Position) FullMoveNumber() int {
	return p.ply/2 + 1
}

// Occupied returns every occupied square.
func (p *Position) Occupied() Bitboard {
	return p.colors[White] | p.colors[Black]
}

// ByColor returns the squares occupied by color c.
func (p *Position) ByColor(c Color) Bitboard {
	return p.colors[c]
}

// ByType returns the squares occupied by pieces of type pt, either color.
func (p *Position) ByType(pt PieceType) Bitboard {
	return p.pieces[pt]
}

// Pieces returns the pieces of type pt and color c.
func (p *Position) Pieces(pt PieceType, c Color) Bitboard {
	return p.pieces[pt] & p.colors[c]
}

// PieceAt returns the piece at the given square, or NoPiece if empty.
func (p *Position) PieceAt(sq Square) Piece {
	return p.board[sq]
}

// King returns the king square of color c.
func (p *Position) King(c Color) Square {
	return p.Pieces(King, c).LSB()
}

// Checkers returns the enemy pieces giving check.
func (p *Position) Checkers() Bitboard {
	return p.state().Checkers
}

// InCheck returns true if the side to move is in check.
func (p *Position) InCheck() bool {
	return p.state().Checkers != 0
}

// CheckState reports whether the side to move is in no, single or double check.
func (p *Position) CheckState() CheckState {
	switch checkers := p.state().Checkers; {
	case checkers == 0:
		return NoCheck
	case checkers.MoreThanOne():
		return DoubleCheck
	}
	return SingleCheck
}

// Pinners returns the sliders of color c that pin a piece to the other king.
func (p *Position) Pinners(c Color) Bitboard {
	return p.state().Pinners[c]
}

// Blockers returns the pieces standing between c's king and an enemy slider.
func (p *Position) Blockers(c Color) Bitboard {
	return p.state().Blockers[c]
}

// EnPassant returns the en passant target square, or NoSquare.
func (p *Position) EnPassant() Square {
	return p.state().EnPassant
}

// CastlingRights returns the remaining castling rights.
func (p *Position) CastlingRights() CastlingRights {
	return p.state().Castling
}

// HalfMoves returns the half-move clock (for the 50-move rule).
func (p *Position) HalfMoves() int {
	return p.state().HalfMoves
}

// Hash returns the Zobrist hash of the position.
func (p *Position) Hash() uint64 {
	return p.state().Hash
}

// Captured returns the piece taken by the last move, or NoPiece.
func (p *Position) Captured() Piece {
	return p.state().Captured
}

func (p *Position) addPiece(pc Piece, sq Square) {
	if strictChecks {
		assert(p.board[sq] == NoPiece, "add %s to occupied %s", pc, sq)
	}
	bb := SquareBB(sq)
	p.colors[pc.Color()] |= bb
	p.pieces[pc.Type()] |= bb
	p.board[sq] = pc
}

func (p *Position) removePiece(sq Square) Piece {
	pc := p.board[sq]
	if strictChecks {
		assert(pc != NoPiece, "remove from empty %s", sq)
	}
	bb := SquareBB(sq)
	p.colors[pc.Color()] &^= bb
	p.pieces[pc.Type()] &^= bb
	p.board[sq] = NoPiece
	return pc
}

func (p *Position) movePiece(from, to Square) {
	pc := p.board[from]
	if strictChecks {
		assert(pc != NoPiece, "move from empty %s", from)
		assert(p.board[to] == NoPiece, "move %s onto occupied %s", pc, to)
	}
	moveBB := SquareBB(from) | SquareBB(to)
	p.colors[pc.Color()] ^= moveBB
	p.pieces[pc.Type()] ^= moveBB
	p.board[from] = NoPiece
	p.board[to] = pc
}

// updateState recomputes checkers, pinners and blockers for the current state.
func (p *Position) updateState() {
	st := p.state()
	us := p.toMove
	them := us.Other()

	st.Checkers = p.AttackersTo(p.King(us), p.Occupied()) & p.colors[them]
	st.Blockers[White], st.Pinners[Black] = p.sliderBlockers(p.colors[Black], p.King(White))
	st.Blockers[Black], st.Pinners[White] = p.sliderBlockers(p.colors[White], p.King(Black))
}

// sliderBlockers returns the pieces that alone block a slider in sliders from
// reaching ksq, and the sliders that pin a piece of the king's own color.
func (p *Position) sliderBlockers(sliders Bitboard, ksq Square) (blockers, pinners Bitboard) {
	t := p.tables
	snipers := ((t.RookAttacks(ksq, Empty) & (p.pieces[Rook] | p.pieces[Queen])) |
		(t.BishopAttacks(ksq, Empty) & (p.pieces[Bishop] | p.pieces[Queen]))) & sliders
	occupied := p.Occupied() ^ snipers
	own := p.colors[p.board[ksq].Color()]

	for sniper := range snipers.All() {
		b := t.between[sniper][ksq] & occupied
		if b != 0 && !b.MoreThanOne() {
			blockers |= b
			if b&own != 0 {
				pinners |= SquareBB(sniper)
			}
		}
	}
	return blockers, pinners
}

// validate panics if the board array and the bitboards disagree.
func (p *Position) validate() {
	assert(p.colors[White]&p.colors[Black] == 0, "color sets overlap")
	var union Bitboard
	for pt := Pawn; pt <= King; pt++ {
		assert(union&p.pieces[pt] == 0, "%s set overlaps another type", pt)
		union |= p.pieces[pt]
	}
	assert(union == p.Occupied(), "type sets %x differ from color sets %x", uint64(union), uint64(p.Occupied()))
	for sq := A1; sq <= H8; sq++ {
		pc := p.board[sq]
		if pc == NoPiece {
			assert(!union.Has(sq), "%s empty on board but set in bitboards", sq)
			continue
		}
		assert(p.colors[pc.Color()].Has(sq) && p.pieces[pc.Type()].Has(sq),
			"%s on %s missing from bitboards", pc, sq)
	}
	assert(p.Pieces(King, White).PopCount() == 1 && p.Pieces(King, Black).PopCount() == 1, "need one king per side")
	assert(p.state().Checkers.PopCount() <= 2, "%d checkers", p.state().Checkers.PopCount())
}

// Validate checks if the position is playable.
func (p *Position) Validate() error {
	if p.Pieces(King, White).PopCount() != 1 {
		return fmt.Errorf("white must have exactly one king")
	}
	if p.Pieces(King, Black).PopCount() != 1 {
		return fmt.Errorf("black must have exactly one king")
	}
	if p.pieces[Pawn]&(rank1BB|rank8BB) != 0 {
		return fmt.Errorf("pawns cannot be on rank 1 or 8")
	}
	them := p.toMove.Other()
	if p.AttackersTo(p.King(them), p.Occupied())&p.colors[p.toMove] != 0 {
		return fmt.Errorf("side not to move is in check")
	}
	if n := p.state().Checkers.PopCount(); n > 2 {
		return fmt.Errorf("%d pieces give check", n)
	}
	return nil
}
