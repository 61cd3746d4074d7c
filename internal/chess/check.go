package chess

import "github.com/rs/zerolog/log"

var kingSteps = [8][2]int{
	{1, 0}, {1, 1}, {0, 1}, {-1, 1},
	{-1, 0}, {-1, -1}, {0, -1}, {1, -1},
}

// IsInCheck returns the path of the first opposing piece, in roster order,
// that can reach color's king. An invalid path means color is not in check.
func (e *Engine) IsInCheck(color Color) Path {
	king, ok := e.board.King(color)
	if !ok {
		return Path{}
	}
	for _, id := range e.board.rosters[color.Other()] {
		if id == NoPiece {
			continue
		}
		if path := e.board.ComputePath(id, king.Square); path.Valid() {
			return path
		}
	}
	return Path{}
}

// IsCheckmate reports whether color, in check along checkPath, has no way
// out. It tries every king step, then every move by another piece onto a
// square of checkPath (blocking, or capturing the checker on the path's
// first square). Each candidate is played silently and taken back.
func (e *Engine) IsCheckmate(color Color, checkPath Path) bool {
	king, ok := e.board.King(color)
	if !ok {
		return false
	}

	for _, step := range kingSteps {
		dst := At(king.Square.File+step[0], king.Square.Rank+step[1])
		if e.escapes(color, king.Square, dst) {
			return false
		}
	}

	for slot := 1; slot < rosterSize; slot++ {
		id := e.board.rosters[color][slot]
		if id == NoPiece {
			continue
		}
		from := e.board.piece(id).Square
		for _, sq := range checkPath.Squares {
			if e.escapes(color, from, sq) {
				return false
			}
		}
	}
	return true
}

// escapes reports whether moving from -> to is legal and leaves color's
// king out of check.
func (e *Engine) escapes(color Color, from, to Coordinate) bool {
	if !e.board.ComputePath(e.board.at(from), to).Valid() {
		return false
	}
	ok := e.safeAfter(color, from, to)
	log.Trace().Str("from", from.String()).Str("to", to.String()).Bool("escapes", ok).Msg("checkmate trial")
	return ok
}

// safeAfter plays from -> to as a trial and reports whether color's king is
// not attacked afterwards.
func (e *Engine) safeAfter(color Color, from, to Coordinate) bool {
	return e.tentative(from, to, func() bool {
		return !e.IsInCheck(color).Valid()
	})
}
