package board

import (
	"fmt"
	"strconv"
	"strings"
)

// StartFEN is the FEN string for the starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// KiwipeteFEN is the standard perft position exercising castling, pins and en passant.
const KiwipeteFEN = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"

// ParseFEN parses a FEN string using the default tables.
func ParseFEN(fen string) (*Position, error) {
	return ParseFENWith(Default(), fen)
}

// MustParseFEN is like ParseFEN but panics on malformed input.
func MustParseFEN(fen string) *Position {
	pos, err := ParseFEN(fen)
	if err != nil {
		panic(err)
	}
	return pos
}

// ParseFENWith parses a FEN string into a position backed by t.
// The half-move clock and full-move number are optional.
func ParseFENWith(t *Tables, fen string) (*Position, error) {
	parts := strings.Fields(fen)
	if len(parts) < 4 || len(parts) > 6 {
		return nil, fmt.Errorf("invalid FEN: need 4 to 6 fields, got %d", len(parts))
	}

	pos := newPosition(t)
	st := pos.state()

	// Parse piece placement (field 0)
	if err := parsePiecePlacement(pos, parts[0]); err != nil {
		return nil, err
	}

	// Parse side to move (field 1)
	switch parts[1] {
	case "w":
		pos.toMove = White
	case "b":
		pos.toMove = Black
	default:
		return nil, fmt.Errorf("invalid side to move: %s", parts[1])
	}

	// Parse castling rights (field 2)
	cr, err := parseCastlingRights(parts[2])
	if err != nil {
		return nil, err
	}
	st.Castling = cr

	// Parse en passant square (field 3)
	if parts[3] != "-" {
		sq, err := ParseSquare(parts[3])
		if err != nil {
			return nil, fmt.Errorf("invalid en passant square: %s", parts[3])
		}
		them := pos.toMove.Other()
		pawnSq := NewSquare(sq.File(), Rank4.Relative(them))
		if sq.RelativeRank(them) != Rank3 || pos.board[pawnSq] != NewPiece(Pawn, them) {
			return nil, fmt.Errorf("invalid en passant square: %s", parts[3])
		}
		st.EnPassant = sq
	}

	// Parse half-move clock (field 4, optional)
	if len(parts) > 4 {
		hmc, err := strconv.Atoi(parts[4])
		if err != nil || hmc < 0 {
			return nil, fmt.Errorf("invalid half-move clock: %s", parts[4])
		}
		st.HalfMoves = hmc
	}

	// Parse full-move number (field 5, optional)
	if len(parts) > 5 {
		fmn, err := strconv.Atoi(parts[5])
		if err != nil || fmn < 1 {
			return nil, fmt.Errorf("invalid full-move number: %s", parts[5])
		}
		pos.ply = 2 * (fmn - 1)
	}
	if pos.toMove == Black {
		pos.ply++
	}

	if pos.Pieces(King, White).PopCount() != 1 || pos.Pieces(King, Black).PopCount() != 1 {
		return nil, fmt.Errorf("invalid FEN: each side needs exactly one king")
	}

	pos.updateState()
	st.Hash = pos.ComputeHash()

	if err := pos.Validate(); err != nil {
		return nil, fmt.Errorf("invalid FEN: %w", err)
	}
	return pos, nil
}

// parsePiecePlacement parses the piece placement section of a FEN string.
func parsePiecePlacement(pos *Position, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("invalid piece placement: need 8 ranks, got %d", len(ranks))
	}

	for i, rankStr := range ranks {
		rank := Rank(7 - i) // FEN starts from rank 8
		file := 0

		for _, c := range rankStr {
			if file > 7 {
				return fmt.Errorf("too many squares in rank %d", rank+1)
			}

			if c >= '1' && c <= '8' {
				// Skip empty squares
				file += int(c - '0')
			} else {
				// Place a piece
				piece := PieceFromChar(byte(c))
				if piece == NoPiece {
					return fmt.Errorf("invalid piece character: %c", c)
				}
				pos.addPiece(piece, NewSquare(File(file), rank))
				file++
			}
		}

		if file != 8 {
			return fmt.Errorf("invalid number of squares in rank %d: got %d", rank+1, file)
		}
	}

	return nil
}

// parseCastlingRights parses the castling rights section of a FEN string.
func parseCastlingRights(castling string) (CastlingRights, error) {
	if castling == "-" {
		return NoCastling, nil
	}

	var cr CastlingRights
	for _, c := range castling {
		switch c {
		case 'K':
			cr |= WhiteKingSideCastle
		case 'Q':
			cr |= WhiteQueenSideCastle
		case 'k':
			cr |= BlackKingSideCastle
		case 'q':
			cr |= BlackQueenSideCastle
		default:
			return NoCastling, fmt.Errorf("invalid castling character: %c", c)
		}
	}

	return cr, nil
}

// FEN returns the FEN representation of the position.
func (p *Position) FEN() string {
	var sb strings.Builder
	st := p.state()

	// Piece placement
	for rank := Rank8; ; rank-- {
		empty := 0
		for file := FileA; file <= FileH; file++ {
			piece := p.board[NewSquare(file, rank)]
			if piece == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(piece.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank == Rank1 {
			break
		}
		sb.WriteByte('/')
	}

	// Side to move
	sb.WriteByte(' ')
	if p.toMove == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	// Castling rights
	sb.WriteByte(' ')
	sb.WriteString(st.Castling.String())

	// En passant
	sb.WriteByte(' ')
	if st.EnPassant == NoSquare {
		sb.WriteByte('-')
	} else {
		sb.WriteString(st.EnPassant.String())
	}

	// Half-move clock and full-move number
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(st.HalfMoves))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.FullMoveNumber()))

	return sb.String()
}
