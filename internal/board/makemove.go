package board

// MakeMove applies a legal move and pushes a new state.
// The move must come from the legal generator for this position.
func (p *Position) MakeMove(m Move) {
	z := &p.tables.zobrist
	us := p.toMove
	them := us.Other()
	from, to := m.From(), m.To()
	pc := p.board[from]

	if strictChecks {
		assert(pc != NoPiece && pc.Color() == us, "%s does not move a %s piece", m, us)
	}

	prev := *p.state()
	p.states = append(p.states, State{
		EnPassant: NoSquare,
		Castling:  prev.Castling,
		HalfMoves: prev.HalfMoves + 1,
		Hash:      prev.Hash ^ z.side,
	})
	st := p.state()

	if prev.EnPassant != NoSquare {
		st.Hash ^= z.enPassant[prev.EnPassant.File()]
	}

	capSq := to
	if m.IsEnPassant() {
		capSq = NewSquare(to.File(), from.Rank())
	}
	if captured := p.board[capSq]; captured != NoPiece {
		if strictChecks {
			assert(captured.Color() == them, "%s captures own %s", m, captured)
			assert(captured.Type() != King, "%s captures a king", m)
		}
		p.removePiece(capSq)
		st.Hash ^= z.pieceKey(captured, capSq)
		st.Captured = captured
		st.HalfMoves = 0
	}

	if m.IsCastle() {
		rookFrom, rookTo := rookCastleSquares(to)
		rook := p.board[rookFrom]
		p.movePiece(rookFrom, rookTo)
		st.Hash ^= z.pieceKey(rook, rookFrom) ^ z.pieceKey(rook, rookTo)
	}

	p.movePiece(from, to)
	st.Hash ^= z.pieceKey(pc, from) ^ z.pieceKey(pc, to)

	if pc.Type() == Pawn {
		st.HalfMoves = 0
		if m.IsPromotion() {
			promoted := NewPiece(m.Promotion(), us)
			p.removePiece(to)
			p.addPiece(promoted, to)
			st.Hash ^= z.pieceKey(pc, to) ^ z.pieceKey(promoted, to)
		} else if absDiff(int(from), int(to)) == 16 {
			st.EnPassant = (from + to) / 2
			st.Hash ^= z.enPassant[st.EnPassant.File()]
		}
	}

	if lost := castlingMask[from] | castlingMask[to]; st.Castling&lost != 0 {
		st.Hash ^= z.castling[st.Castling]
		st.Castling &^= lost
		st.Hash ^= z.castling[st.Castling]
	}

	p.toMove = them
	p.ply++
	p.updateState()

	if strictChecks {
		p.validate()
		assert(st.Hash == p.ComputeHash(), "incremental hash drifted after %s", m)
	}
}

// UnmakeMove reverts the most recent MakeMove. m must be that move.
func (p *Position) UnmakeMove(m Move) {
	if strictChecks {
		assert(len(p.states) > 1, "unmake %s with no move played", m)
	}
	st := p.state()
	p.toMove = p.toMove.Other()
	p.ply--
	us := p.toMove
	from, to := m.From(), m.To()

	if m.IsPromotion() {
		p.removePiece(to)
		p.addPiece(NewPiece(Pawn, us), to)
	}

	p.movePiece(to, from)

	if m.IsCastle() {
		rookFrom, rookTo := rookCastleSquares(to)
		p.movePiece(rookTo, rookFrom)
	}

	if st.Captured != NoPiece {
		capSq := to
		if m.IsEnPassant() {
			capSq = NewSquare(to.File(), from.Rank())
		}
		p.addPiece(st.Captured, capSq)
	}

	p.states = p.states[:len(p.states)-1]

	if strictChecks {
		p.validate()
	}
}
