package board

// GeneratePseudoLegal appends every pseudo-legal move to ml: moves that obey
// piece movement rules but may leave the mover's king in check.
func (p *Position) GeneratePseudoLegal(ml *MoveList) {
	us := p.toMove
	targets := ^p.colors[us]

	p.generatePawnMoves(ml, us)
	for pt := Knight; pt <= King; pt++ {
		p.generatePieceMoves(ml, pt, us, targets)
	}
	p.generateCastlingMoves(ml, us)
}

// GenerateLegal appends every legal move to ml.
func (p *Position) GenerateLegal(ml *MoveList) {
	start := ml.Len()
	p.GeneratePseudoLegal(ml)
	p.filterLegalMoves(ml, start)
}

// LegalMoves generates all legal moves for the position.
func (p *Position) LegalMoves() *MoveList {
	ml := NewMoveList()
	p.GenerateLegal(ml)
	return ml
}

// generatePawnMoves generates pushes, captures, en passant and promotions.
func (p *Position) generatePawnMoves(ml *MoveList, us Color) {
	t := p.tables
	empty := ^p.Occupied()
	enemies := p.colors[us.Other()]
	ep := p.state().EnPassant

	up := North
	if us == Black {
		up = South
	}

	for from := range p.Pieces(Pawn, us).All() {
		if to, ok := from.Shift(up); ok && empty.Has(to) {
			addPawnMove(ml, us, from, to)
			if from.RelativeRank(us) == Rank2 {
				if to2, _ := to.Shift(up); empty.Has(to2) {
					ml.Add(NewMove(from, to2))
				}
			}
		}

		attacks := t.PawnAttacks(from, us)
		for to := range (attacks & enemies).All() {
			addPawnMove(ml, us, from, to)
		}
		if ep != NoSquare && attacks.Has(ep) {
			ml.Add(NewEnPassant(from, ep))
		}
	}
}

// addPawnMove adds a pawn move, expanding it into the four promotions on the last rank.
func addPawnMove(ml *MoveList, us Color, from, to Square) {
	if to.RelativeRank(us) != Rank8 {
		ml.Add(NewMove(from, to))
		return
	}
	for _, pt := range PromotionTypes {
		ml.Add(NewPromotion(from, to, pt))
	}
}

// generatePieceMoves generates moves for every piece of type pt onto targets.
func (p *Position) generatePieceMoves(ml *MoveList, pt PieceType, us Color, targets Bitboard) {
	t := p.tables
	occupied := p.Occupied()
	for from := range p.Pieces(pt, us).All() {
		for to := range (t.Attacks(pt, from, occupied) & targets).All() {
			ml.Add(NewMove(from, to))
		}
	}
}

// generateCastlingMoves adds castles whose right is held and whose path is empty.
// Whether the king passes through check is left to the legality filter.
func (p *Position) generateCastlingMoves(ml *MoveList, us Color) {
	rights := p.state().Castling
	if rights == NoCastling {
		return
	}
	occupied := p.Occupied()
	king, rook := NewPiece(King, us), NewPiece(Rook, us)

	for _, c := range castles[2*us : 2*us+2] {
		if rights&c.right == 0 || p.board[c.king] != king || p.board[c.rook] != rook {
			continue
		}
		if p.tables.between[c.king][c.rook]&occupied != 0 {
			continue
		}
		ml.Add(NewCastle(c.king, c.kingTo))
	}
}

// filterLegalMoves removes illegal moves from ml[start:] in place.
func (p *Position) filterLegalMoves(ml *MoveList, start int) {
	n := start
	for i := start; i < ml.Len(); i++ {
		if m := ml.Get(i); p.isLegal(m) {
			ml.moves[n] = m
			n++
		}
	}
	ml.truncate(n)
}

// IsLegal returns true if m is a legal move in the position.
// Unlike the generator's filter it accepts arbitrary input.
func (p *Position) IsLegal(m Move) bool {
	if m == NoMove {
		return false
	}
	ml := NewMoveList()
	p.GeneratePseudoLegal(ml)
	return ml.Contains(m) && p.isLegal(m)
}

// isLegal tests a pseudo-legal move against the check and pin state.
func (p *Position) isLegal(m Move) bool {
	t := p.tables
	st := p.state()
	us := p.toMove
	them := us.Other()
	from, to := m.From(), m.To()
	ksq := p.King(us)
	occupied := p.Occupied()

	if m.IsCastle() {
		if st.Checkers != 0 {
			return false
		}
		for sq := range (t.between[from][to] | SquareBB(to)).All() {
			if p.AttackersTo(sq, occupied)&p.colors[them] != 0 {
				return false
			}
		}
		return true
	}

	if from == ksq {
		// Remove the king so sliders see through its old square.
		return p.AttackersTo(to, occupied^SquareBB(from))&p.colors[them] == 0
	}

	if st.Checkers.MoreThanOne() {
		return false
	}

	if st.Checkers != 0 {
		checker := st.Checkers.LSB()
		evasions := st.Checkers | t.between[checker][ksq]
		if m.IsEnPassant() {
			if NewSquare(to.File(), from.Rank()) != checker && !evasions.Has(to) {
				return false
			}
		} else if !evasions.Has(to) {
			return false
		}
	}

	if st.Blockers[us].Has(from) && !t.lines[from][ksq].Has(to) {
		return false
	}

	if m.IsEnPassant() {
		// Both pawns leave the capture rank at once, which can uncover a slider.
		capSq := NewSquare(to.File(), from.Rank())
		occ := (occupied ^ SquareBB(from) ^ SquareBB(capSq)) | SquareBB(to)
		rooks := (p.pieces[Rook] | p.pieces[Queen]) & p.colors[them]
		bishops := (p.pieces[Bishop] | p.pieces[Queen]) & p.colors[them]
		return t.RookAttacks(ksq, occ)&rooks == 0 && t.BishopAttacks(ksq, occ)&bishops == 0
	}

	return true
}

// HasLegalMoves returns true if the side to move has at least one legal move.
func (p *Position) HasLegalMoves() bool {
	ml := NewMoveList()
	p.GeneratePseudoLegal(ml)
	for _, m := range ml.Slice() {
		if p.isLegal(m) {
			return true
		}
	}
	return false
}

// IsCheckmate returns true if the side to move is checkmated.
func (p *Position) IsCheckmate() bool {
	return p.InCheck() && !p.HasLegalMoves()
}

// IsStalemate returns true if the side to move is stalemated.
func (p *Position) IsStalemate() bool {
	return !p.InCheck() && !p.HasLegalMoves()
}
