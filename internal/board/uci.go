package board

// ParseUCIMove decodes a move in UCI long algebraic form ("e2e4", "e7e8q")
// against pos, which supplies the castle, en passant and promotion tags.
// It returns false for malformed text, an empty origin square, a missing
// promotion letter on a pawn reaching the last rank, or a promotion letter
// on any other move. The result is not checked for legality; see IsLegal.
func ParseUCIMove(s string, pos *Position) (Move, bool) {
	if len(s) != 4 && len(s) != 5 {
		return NoMove, false
	}
	from, err := ParseSquare(s[0:2])
	if err != nil {
		return NoMove, false
	}
	to, err := ParseSquare(s[2:4])
	if err != nil || from == to {
		return NoMove, false
	}

	promo := NoPieceType
	if len(s) == 5 {
		switch s[4] {
		case 'n':
			promo = Knight
		case 'b':
			promo = Bishop
		case 'r':
			promo = Rook
		case 'q':
			promo = Queen
		default:
			return NoMove, false
		}
	}

	piece := pos.PieceAt(from)
	if piece == NoPiece {
		return NoMove, false
	}

	switch pt := piece.Type(); {
	case pt == King && absDiff(int(from.File()), int(to.File())) == 2 && from.Rank() == to.Rank():
		if promo != NoPieceType {
			return NoMove, false
		}
		return NewCastle(from, to), true
	case pt == Pawn && to == pos.EnPassant() && from.File() != to.File():
		if promo != NoPieceType {
			return NoMove, false
		}
		return NewEnPassant(from, to), true
	case pt == Pawn && to.RelativeRank(piece.Color()) == Rank8:
		if promo == NoPieceType {
			return NoMove, false
		}
		return NewPromotion(from, to, promo), true
	}

	if promo != NoPieceType {
		return NoMove, false
	}
	return NewMove(from, to), true
}
