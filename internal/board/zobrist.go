package board

// Zobrist hash keys for position hashing.
// Uses PRNG with fixed seed for reproducibility.
type zobristKeys struct {
	piece     [2][6][64]uint64 // [Color][PieceType][Square]
	enPassant [8]uint64        // One per file
	castling  [16]uint64       // All 16 castling combinations
	side      uint64           // XOR when black to move
}

// Simple PRNG for reproducible keys and magic candidates
type prng struct {
	state uint64
}

func newPRNG(seed uint64) *prng {
	return &prng{state: seed}
}

// xorshift64* algorithm
func (p *prng) next() uint64 {
	p.state ^= p.state >> 12
	p.state ^= p.state << 25
	p.state ^= p.state >> 27
	return p.state * 0x2545F4914F6CDD1D
}

// sparse returns a value with roughly 8 bits set.
func (p *prng) sparse() uint64 {
	return p.next() & p.next() & p.next()
}

func newZobristKeys() zobristKeys {
	var z zobristKeys
	rng := newPRNG(0x98F107A2BEEF1234)

	for c := White; c <= Black; c++ {
		for pt := Pawn; pt <= King; pt++ {
			for sq := A1; sq <= H8; sq++ {
				z.piece[c][pt][sq] = rng.next()
			}
		}
	}
	for file := 0; file < 8; file++ {
		z.enPassant[file] = rng.next()
	}
	for i := 0; i < 16; i++ {
		z.castling[i] = rng.next()
	}
	z.side = rng.next()
	return z
}

func (z *zobristKeys) pieceKey(p Piece, sq Square) uint64 {
	return z.piece[p.Color()][p.Type()][sq]
}

// ComputeHash computes the Zobrist hash for the position from scratch.
func (p *Position) ComputeHash() uint64 {
	z := &p.tables.zobrist
	var hash uint64
	for sq := A1; sq <= H8; sq++ {
		if pc := p.board[sq]; pc != NoPiece {
			hash ^= z.pieceKey(pc, sq)
		}
	}
	if p.toMove == Black {
		hash ^= z.side
	}
	st := p.state()
	hash ^= z.castling[st.Castling]
	if st.EnPassant != NoSquare {
		hash ^= z.enPassant[st.EnPassant.File()]
	}
	return hash
}
