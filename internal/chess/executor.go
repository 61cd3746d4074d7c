package chess

// apply moves the piece on from to to, removing any captured piece from its
// roster, and logs one move record. The caller has already validated the move.
func (e *Engine) apply(from, to Coordinate) PieceID {
	b := e.board
	id := b.at(from)
	p := b.piece(id)

	rec := UndoRecord{
		kind:     recordMove,
		Piece:    id,
		From:     from,
		To:       to,
		Slot:     -1,
		WasMoved: p.Moved,
	}

	if victim := b.at(to); victim != NoPiece {
		v := b.piece(victim)
		rec.Captured = victim
		rec.Slot = b.slotOf(victim)
		b.rosters[v.Color][rec.Slot] = NoPiece
		e.notify().OnPieceCaptured(*v)
	}

	b.grid[to.File][to.Rank] = id
	b.grid[from.File][from.Rank] = NoPiece
	p.Square = to
	p.Moved = true

	e.undo.push(rec)
	e.notify().OnPieceMoved(*p, from, to)
	return rec.Captured
}

func lastRank(c Color) int {
	if c == White {
		return 7
	}
	return 0
}

// promote replaces a pawn standing on its farthest rank with a queen in the
// same roster slot. It reports whether a promotion happened.
func (e *Engine) promote(sq Coordinate) bool {
	b := e.board
	id := b.at(sq)
	pawn := *b.piece(id)
	if pawn.Kind != Pawn || sq.Rank != lastRank(pawn.Color) {
		return false
	}

	slot := b.slotOf(id)
	qid := b.newPiece(Queen, pawn.Color, sq)
	b.piece(qid).Moved = true
	b.grid[sq.File][sq.Rank] = qid
	b.rosters[pawn.Color][slot] = qid

	e.undo.push(UndoRecord{
		kind:        recordPromotion,
		Piece:       id,
		From:        sq,
		To:          sq,
		Slot:        slot,
		WasMoved:    pawn.Moved,
		Replacement: qid,
	})
	e.notify().OnPiecePromoted(pawn, *b.piece(qid))
	return true
}

// revert reverses a single record.
func (e *Engine) revert(rec UndoRecord) {
	b := e.board

	if rec.kind == recordPromotion {
		queen := *b.piece(rec.Replacement)
		b.grid[rec.To.File][rec.To.Rank] = rec.Piece
		b.rosters[queen.Color][rec.Slot] = rec.Piece
		b.dropLast(rec.Replacement)
		e.notify().OnPiecePromoted(queen, *b.piece(rec.Piece))
		return
	}

	p := b.piece(rec.Piece)
	b.grid[rec.From.File][rec.From.Rank] = rec.Piece
	b.grid[rec.To.File][rec.To.Rank] = NoPiece
	p.Square = rec.From
	p.Moved = rec.WasMoved
	e.notify().OnPieceMoved(*p, rec.To, rec.From)

	if rec.Captured != NoPiece {
		c := b.piece(rec.Captured)
		c.Square = rec.To
		b.grid[rec.To.File][rec.To.Rank] = rec.Captured
		b.rosters[c.Color][rec.Slot] = rec.Captured
		e.notify().OnPieceRestored(*c)
	}
}

// revertTurn pops the records of the last committed move: the move record
// and, when the move promoted, the promotion record above it.
func (e *Engine) revertTurn() bool {
	rec, ok := e.undo.pop()
	if !ok {
		return false
	}
	e.revert(rec)
	if rec.Promotion() {
		if below, ok := e.undo.pop(); ok {
			e.revert(below)
		}
	}
	return true
}

// tentative applies a move with notifications muted, runs check against the
// resulting position and restores the board before returning, whatever
// check does.
func (e *Engine) tentative(from, to Coordinate, check func() bool) bool {
	depth := e.undo.Len()
	e.muted++
	defer func() {
		for e.undo.Len() > depth {
			rec, _ := e.undo.pop()
			e.revert(rec)
		}
		e.muted--
	}()

	e.apply(from, to)
	return check()
}
