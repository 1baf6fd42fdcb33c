package board

// Move encodes a chess move in 16 bits:
// bits 0-5:   from square (0-63)
// bits 6-11:  to square (0-63)
// bits 12-14: tag (0=normal, 1=castle, 2=en passant, 3-6=promotion to N/B/R/Q)
type Move uint16

// MoveKind distinguishes the moves that need special handling on make/unmake.
type MoveKind uint8

const (
	Normal MoveKind = iota
	Castle
	EnPassant
	Promotion
)

func (k MoveKind) String() string {
	switch k {
	case Normal:
		return "normal"
	case Castle:
		return "castle"
	case EnPassant:
		return "en-passant"
	case Promotion:
		return "promotion"
	}
	return "unknown"
}

const (
	tagNormal uint16 = iota
	tagCastle
	tagEnPassant
	tagPromoKnight // Knight, Bishop, Rook, Queen follow in order
)

// NoMove represents an invalid or null move.
// A1 to A1 is never a real move, so the zero value is free.
const NoMove Move = 0

func encode(from, to Square, tag uint16) Move {
	return Move(from) | Move(to)<<6 | Move(tag)<<12
}

// NewMove creates a normal move.
func NewMove(from, to Square) Move {
	if strictChecks {
		assert(from != to, "move from %s to itself", from)
	}
	return encode(from, to, tagNormal)
}

// NewCastle creates a castling move (king's movement).
func NewCastle(from, to Square) Move {
	if strictChecks {
		assert(from != to, "castle from %s to itself", from)
		assert(from.Rank() == to.Rank(), "castle %s%s changes rank", from, to)
	}
	return encode(from, to, tagCastle)
}

// NewEnPassant creates an en passant capture move.
func NewEnPassant(from, to Square) Move {
	if strictChecks {
		dr := absDiff(int(from.Rank()), int(to.Rank()))
		assert(dr == 1, "en passant %s%s must advance one rank", from, to)
	}
	return encode(from, to, tagEnPassant)
}

// NewPromotion creates a promotion move.
func NewPromotion(from, to Square, promo PieceType) Move {
	if strictChecks {
		assert(from != to, "promotion from %s to itself", from)
		assert(promo >= Knight && promo <= Queen, "cannot promote to %s", promo)
	}
	return encode(from, to, tagPromoKnight+uint16(promo-Knight))
}

// NewMoveKind builds a move of the given kind. promo is only read for Promotion.
func NewMoveKind(from, to Square, kind MoveKind, promo PieceType) Move {
	switch kind {
	case Castle:
		return NewCastle(from, to)
	case EnPassant:
		return NewEnPassant(from, to)
	case Promotion:
		return NewPromotion(from, to, promo)
	}
	return NewMove(from, to)
}

// From returns the origin square.
func (m Move) From() Square {
	return Square(m & 0x3F)
}

// To returns the destination square.
func (m Move) To() Square {
	return Square((m >> 6) & 0x3F)
}

func (m Move) tag() uint16 {
	return uint16(m>>12) & 7
}

// Kind returns the move kind.
func (m Move) Kind() MoveKind {
	switch t := m.tag(); t {
	case tagNormal, tagCastle, tagEnPassant:
		return MoveKind(t)
	}
	return Promotion
}

// Promotion returns the promotion piece type, or NoPieceType for other moves.
func (m Move) Promotion() PieceType {
	t := m.tag()
	if t < tagPromoKnight {
		return NoPieceType
	}
	return Knight + PieceType(t-tagPromoKnight)
}

// IsPromotion returns true if this is a promotion move.
func (m Move) IsPromotion() bool {
	return m.tag() >= tagPromoKnight
}

// IsCastle returns true if this is a castling move.
func (m Move) IsCastle() bool {
	return m.tag() == tagCastle
}

// IsEnPassant returns true if this is an en passant capture.
func (m Move) IsEnPassant() bool {
	return m.tag() == tagEnPassant
}

// IsCapture returns true if this move captures a piece.
func (m Move) IsCapture(pos *Position) bool {
	if m.IsEnPassant() {
		return true
	}
	return pos.PieceAt(m.To()) != NoPiece
}

// String returns the UCI format of the move (e.g., "e2e4", "e7e8q").
func (m Move) String() string {
	if m == NoMove {
		return "0000"
	}
	s := m.From().String() + m.To().String()
	if m.IsPromotion() {
		s += string(m.Promotion().Char())
	}
	return s
}

// MoveList is a fixed-size list of moves to avoid allocations.
type MoveList struct {
	moves [256]Move
	count int
}

// NewMoveList creates an empty move list.
func NewMoveList() *MoveList {
	return &MoveList{}
}

// Add adds a move to the list.
func (ml *MoveList) Add(m Move) {
	ml.moves[ml.count] = m
	ml.count++
}

// Len returns the number of moves in the list.
func (ml *MoveList) Len() int {
	return ml.count
}

// Get returns the move at index i.
func (ml *MoveList) Get(i int) Move {
	return ml.moves[i]
}

// Clear clears the list.
func (ml *MoveList) Clear() {
	ml.count = 0
}

// Contains returns true if the list contains the move.
func (ml *MoveList) Contains(m Move) bool {
	for i := 0; i < ml.count; i++ {
		if ml.moves[i] == m {
			return true
		}
	}
	return false
}

// Slice returns the moves as a slice.
func (ml *MoveList) Slice() []Move {
	return ml.moves[:ml.count]
}

// truncate drops moves from index n onwards.
func (ml *MoveList) truncate(n int) {
	ml.count = n
}
