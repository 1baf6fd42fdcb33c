package board

// Color represents the color of a piece or player.
type Color uint8

const (
	White Color = iota
	Black
	NoColor Color = 2
)

// Other returns the opposite color.
func (c Color) Other() Color {
	return c ^ 1
}

// String returns the color name.
func (c Color) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		return "NoColor"
	}
}

// PieceType represents the type of a chess piece.
type PieceType uint8

const (
	Pawn PieceType = iota
	Knight
	Bishop
	Rook
	Queen
	King
	NoPieceType PieceType = 6
)

// PromotionTypes lists the piece types a pawn may promote to.
var PromotionTypes = [4]PieceType{Knight, Bishop, Rook, Queen}

// String returns the piece type name.
func (pt PieceType) String() string {
	switch pt {
	case Pawn:
		return "Pawn"
	case Knight:
		return "Knight"
	case Bishop:
		return "Bishop"
	case Rook:
		return "Rook"
	case Queen:
		return "Queen"
	case King:
		return "King"
	default:
		return "None"
	}
}

// Char returns the FEN character for the piece type (lowercase).
func (pt PieceType) Char() byte {
	if pt >= NoPieceType {
		return ' '
	}
	return "pnbrqk"[pt]
}

// Piece combines PieceType and Color into a single nonzero value.
// Encoded as: color<<3 | (pieceType+1). The zero value is NoPiece.
type Piece uint8

const NoPiece Piece = 0

const (
	WhitePawn   Piece = Piece(White)<<3 | Piece(Pawn+1)
	WhiteKnight Piece = Piece(White)<<3 | Piece(Knight+1)
	WhiteBishop Piece = Piece(White)<<3 | Piece(Bishop+1)
	WhiteRook   Piece = Piece(White)<<3 | Piece(Rook+1)
	WhiteQueen  Piece = Piece(White)<<3 | Piece(Queen+1)
	WhiteKing   Piece = Piece(White)<<3 | Piece(King+1)
	BlackPawn   Piece = Piece(Black)<<3 | Piece(Pawn+1)
	BlackKnight Piece = Piece(Black)<<3 | Piece(Knight+1)
	BlackBishop Piece = Piece(Black)<<3 | Piece(Bishop+1)
	BlackRook   Piece = Piece(Black)<<3 | Piece(Rook+1)
	BlackQueen  Piece = Piece(Black)<<3 | Piece(Queen+1)
	BlackKing   Piece = Piece(Black)<<3 | Piece(King+1)
)

// NewPiece creates a Piece from PieceType and Color.
func NewPiece(pt PieceType, c Color) Piece {
	if pt >= NoPieceType || c >= NoColor {
		return NoPiece
	}
	return Piece(c)<<3 | Piece(pt+1)
}

// Type returns the PieceType of the piece.
func (p Piece) Type() PieceType {
	if p == NoPiece {
		return NoPieceType
	}
	return PieceType(p&7) - 1
}

// Color returns the Color of the piece.
func (p Piece) Color() Color {
	if p == NoPiece {
		return NoColor
	}
	return Color(p >> 3)
}

// String returns the FEN character for the piece.
// Uppercase for white, lowercase for black.
func (p Piece) String() string {
	if p == NoPiece {
		return " "
	}
	c := p.Type().Char()
	if p.Color() == White {
		c -= 'a' - 'A'
	}
	return string(c)
}

// PieceFromChar converts a FEN character to a Piece.
func PieceFromChar(c byte) Piece {
	switch c {
	case 'P':
		return WhitePawn
	case 'N':
		return WhiteKnight
	case 'B':
		return WhiteBishop
	case 'R':
		return WhiteRook
	case 'Q':
		return WhiteQueen
	case 'K':
		return WhiteKing
	case 'p':
		return BlackPawn
	case 'n':
		return BlackKnight
	case 'b':
		return BlackBishop
	case 'r':
		return BlackRook
	case 'q':
		return BlackQueen
	case 'k':
		return BlackKing
	default:
		return NoPiece
	}
}
