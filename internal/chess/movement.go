package chess

var knightOffsets = [8][2]int{
	{-1, 2}, {-2, 1}, {1, 2}, {2, 1},
	{-1, -2}, {-2, -1}, {1, -2}, {2, -1},
}

// ComputePath returns the trajectory the piece would take to dst, or an
// invalid Path if the move is not legal for its kind. Whether the move
// exposes the mover's own king is not considered here.
func (b *Board) ComputePath(id PieceID, dst Coordinate) Path {
	p, ok := b.Piece(id)
	if !ok {
		return Path{}
	}
	if !dst.OnBoard() || dst == p.Square {
		return Path{}
	}
	if occ, ok := b.PieceAt(dst); ok && occ.Color == p.Color {
		return Path{}
	}

	switch p.Kind {
	case Pawn:
		return b.pawnPath(p, dst)
	case Knight:
		return knightPath(p, dst)
	case Bishop:
		return b.diagonalPath(p.Square, dst)
	case Rook:
		return b.straightPath(p.Square, dst)
	case Queen:
		if path := b.straightPath(p.Square, dst); path.Valid() {
			return path
		}
		return b.diagonalPath(p.Square, dst)
	case King:
		return kingPath(p, dst)
	}
	return Path{}
}

func (b *Board) straightPath(from, to Coordinate) Path {
	if from.File != to.File && from.Rank != to.Rank {
		return Path{}
	}
	return b.slide(from, to)
}

func (b *Board) diagonalPath(from, to Coordinate) Path {
	if abs(to.File-from.File) != abs(to.Rank-from.Rank) {
		return Path{}
	}
	return b.slide(from, to)
}

// slide walks from one square toward another along a line the caller has
// already checked, recording each intermediate square. Any occupied
// intermediate square invalidates the path.
func (b *Board) slide(from, to Coordinate) Path {
	df, dr := sign(to.File-from.File), sign(to.Rank-from.Rank)
	path := newPath(from)
	for sq := At(from.File+df, from.Rank+dr); sq != to; sq = At(sq.File+df, sq.Rank+dr) {
		if b.at(sq) != NoPiece {
			return Path{}
		}
		path.add(sq)
	}
	return path
}

func knightPath(p Piece, dst Coordinate) Path {
	for _, off := range knightOffsets {
		if dst == At(p.Square.File+off[0], p.Square.Rank+off[1]) {
			return newPath(p.Square)
		}
	}
	return Path{}
}

func kingPath(p Piece, dst Coordinate) Path {
	if abs(dst.File-p.Square.File) <= 1 && abs(dst.Rank-p.Square.Rank) <= 1 {
		return newPath(p.Square)
	}
	return Path{}
}

func (b *Board) pawnPath(p Piece, dst Coordinate) Path {
	from := p.Square
	df := dst.File - from.File
	dr := dst.Rank - from.Rank
	occupied := b.at(dst) != NoPiece

	switch {
	case df == 0 && dr == p.Direction && !occupied:
		return newPath(from)
	case df == 0 && dr == 2*p.Direction && !occupied && !p.Moved && from.Rank == pawnRank(p.Color):
		skipped := At(from.File, from.Rank+p.Direction)
		if b.at(skipped) != NoPiece {
			return Path{}
		}
		path := newPath(from)
		path.add(skipped)
		return path
	case abs(df) == 1 && dr == p.Direction && occupied:
		// same-color occupants were already rejected
		return newPath(from)
	}
	return Path{}
}

// pawnRank is the rank a color's pawns start on.
func pawnRank(c Color) int {
	if c == White {
		return 1
	}
	return 6
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	}
	return 0
}
