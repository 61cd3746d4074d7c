package chess

type recordKind uint8

const (
	recordMove recordKind = iota
	recordPromotion
)

// UndoRecord holds what is needed to reverse one board mutation.
//
// A move record relocates Piece from From to To and may carry the captured
// piece with the roster slot it came from. A promotion record replaces the
// pawn Piece on To with Replacement in roster slot Slot; it always sits on top
// of the move record that brought the pawn there.
type UndoRecord struct {
	kind        recordKind
	Piece       PieceID
	From        Coordinate
	To          Coordinate
	Captured    PieceID
	Slot        int
	WasMoved    bool
	Replacement PieceID
}

// Promotion reports whether the record is the second half of a promoting move.
func (r UndoRecord) Promotion() bool {
	return r.kind == recordPromotion
}

// UndoLog is a LIFO stack of undo records.
type UndoLog struct {
	records []UndoRecord
}

func (l *UndoLog) push(r UndoRecord) {
	l.records = append(l.records, r)
}

func (l *UndoLog) pop() (UndoRecord, bool) {
	if len(l.records) == 0 {
		return UndoRecord{}, false
	}
	r := l.records[len(l.records)-1]
	l.records = l.records[:len(l.records)-1]
	return r, true
}

// Len returns the number of records on the stack.
func (l *UndoLog) Len() int {
	return len(l.records)
}
