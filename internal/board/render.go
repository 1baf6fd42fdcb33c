package board

import (
	"fmt"
	"strings"
)

// String returns a visual representation of the position.
// The layout is meant for people, not for parsing.
func (p *Position) String() string {
	var sb strings.Builder
	st := p.state()

	sb.WriteString("\n")
	for rank := Rank8; ; rank-- {
		fmt.Fprintf(&sb, "%d  ", rank+1)
		for file := FileA; file <= FileH; file++ {
			piece := p.board[NewSquare(file, rank)]
			if piece == NoPiece {
				sb.WriteString(". ")
			} else {
				sb.WriteString(piece.String() + " ")
			}
		}
		sb.WriteString("\n")
		if rank == Rank1 {
			break
		}
	}
	sb.WriteString("\n   a b c d e f g h\n\n")
	fmt.Fprintf(&sb, "FEN: %s\n", p.FEN())
	fmt.Fprintf(&sb, "Side to move: %s\n", p.toMove)
	fmt.Fprintf(&sb, "Castling: %s\n", st.Castling)
	fmt.Fprintf(&sb, "En passant: %s\n", st.EnPassant)
	fmt.Fprintf(&sb, "Check: %s", p.CheckState())
	if st.Checkers != 0 {
		sb.WriteString(" by")
		for sq := range st.Checkers.All() {
			sb.WriteString(" " + sq.String())
		}
	}
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "Hash: %016x\n", st.Hash)
	return sb.String()
}
