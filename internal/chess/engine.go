package chess

import (
	"fmt"

	"github.com/rs/zerolog/log"
)

// Engine drives one game: it owns the board and the undo log and turns
// two-phase square selections into moves. An Engine is not safe for
// concurrent use.
type Engine struct {
	board    *Board
	undo     UndoLog
	notifier Notifier
	muted    int

	turn     Color
	selected Coordinate
	pending  bool
	gameOver bool
	winner   Color
}

// NewGame starts a game from the standard layout with White to move.
func NewGame(n Notifier) *Engine {
	e, err := NewGameFromBoard(NewStandardBoard(), White, n)
	if err != nil {
		panic(err)
	}
	return e
}

// NewGameFromBoard starts a game from a custom position. Both kings must be
// on the board.
func NewGameFromBoard(b *Board, turn Color, n Notifier) (*Engine, error) {
	if err := b.Validate(); err != nil {
		return nil, fmt.Errorf("invalid board: %w", err)
	}
	for _, c := range []Color{White, Black} {
		if _, ok := b.King(c); !ok {
			return nil, fmt.Errorf("invalid board: no %s king", c)
		}
	}
	if n == nil {
		n = NopNotifier{}
	}
	return &Engine{board: b, notifier: n, turn: turn}, nil
}

func (e *Engine) notify() Notifier {
	if e.muted > 0 {
		return NopNotifier{}
	}
	return e.notifier
}

// Select feeds one square of input. With nothing selected it picks up a
// piece of the side to move; otherwise it tries to move the selected piece
// to sq. A nil result with a nil error means a piece was selected.
func (e *Engine) Select(sq Coordinate) (*MoveResult, error) {
	if e.gameOver {
		return nil, ErrGameOver
	}

	if !e.pending {
		p, ok := e.board.PieceAt(sq)
		if !ok || p.Color != e.turn {
			return nil, fmt.Errorf("%w: %s", ErrNotSelectable, sq)
		}
		e.selected = sq
		e.pending = true
		e.notifier.OnMessage(MessageClear)
		return nil, nil
	}

	from := e.selected
	e.pending = false
	return e.move(from, sq)
}

// Cancel drops a pending selection.
func (e *Engine) Cancel() {
	e.pending = false
}

func (e *Engine) move(from, to Coordinate) (*MoveResult, error) {
	id := e.board.at(from)
	if !e.board.ComputePath(id, to).Valid() {
		log.Debug().Str("from", from.String()).Str("to", to.String()).Msg("Rejected invalid move")
		e.notifier.OnMessage(MessageInvalid)
		return nil, fmt.Errorf("%w: %s to %s", ErrIllegalDestination, from, to)
	}

	if !e.safeAfter(e.turn, from, to) {
		log.Debug().Str("from", from.String()).Str("to", to.String()).Msg("Rejected self check")
		e.notifier.OnMessage(MessageSelfCheck)
		return nil, fmt.Errorf("%w: %s to %s", ErrSelfCheck, from, to)
	}

	mover := *e.board.piece(id)
	result := &MoveResult{
		From:  from.String(),
		To:    to.String(),
		Piece: mover.Kind.String(),
	}

	if captured := e.apply(from, to); captured != NoPiece {
		result.Captured = e.board.piece(captured).Kind.String()
	}
	result.Promoted = e.promote(to)

	opponent := e.turn.Other()
	if path := e.IsInCheck(opponent); path.Valid() {
		result.Check = true
		e.notifier.OnMessage(MessageCheck)
		if e.IsCheckmate(opponent, path) {
			result.Checkmate = true
			e.gameOver = true
			e.winner = e.turn
			e.notifier.OnMessage(MessageCheckmate)
		}
	}

	e.turn = opponent
	result.GameOver = e.gameOver
	result.Status = e.GetStatus()

	log.Debug().
		Str("from", result.From).
		Str("to", result.To).
		Str("piece", result.Piece).
		Bool("check", result.Check).
		Bool("checkmate", result.Checkmate).
		Msg("Move committed")
	return result, nil
}

// UndoLastTurn takes back the last committed move and gives the turn back to
// the side that made it. It reopens a game ended by that move.
func (e *Engine) UndoLastTurn() error {
	if e.pending {
		return ErrSelectionPending
	}
	if !e.revertTurn() {
		return ErrNothingToUndo
	}
	e.turn = e.turn.Other()
	e.gameOver = false
	e.notifier.OnMessage(MessageClear)
	log.Debug().Str("turn", e.turn.String()).Msg("Turn undone")
	return nil
}

func (e *Engine) Turn() Color {
	return e.turn
}

func (e *Engine) GameOver() bool {
	return e.gameOver
}

// Winner returns the side that delivered checkmate, if the game is over.
func (e *Engine) Winner() (Color, bool) {
	return e.winner, e.gameOver
}

// Selected returns the pending selection, if any.
func (e *Engine) Selected() (Coordinate, bool) {
	return e.selected, e.pending
}

// Board exposes the board for reading. Callers must not mutate it.
func (e *Engine) Board() *Board {
	return e.board
}

// UndoDepth returns the number of records on the undo log.
func (e *Engine) UndoDepth() int {
	return e.undo.Len()
}

func (e *Engine) GetStatus() GameStatus {
	if !e.gameOver {
		return StatusActive
	}
	if e.winner == White {
		return StatusWhiteWon
	}
	return StatusBlackWon
}

func (e *Engine) GetActiveColor() string {
	return e.turn.String()
}

func (e *Engine) GetPieceValues() map[string]int {
	values := make(map[string]int, len(StandardPieceValues))
	for k, v := range StandardPieceValues {
		values[k] = v
	}
	return values
}

// GetMaterialCount sums piece values still on the board for each side.
func (e *Engine) GetMaterialCount() MaterialCount {
	var count MaterialCount
	for _, p := range e.board.Pieces(White) {
		count.White += p.Value
	}
	for _, p := range e.board.Pieces(Black) {
		count.Black += p.Value
	}
	return count
}

// GetMaterialBalance is White's material minus Black's.
func (e *Engine) GetMaterialBalance() int {
	count := e.GetMaterialCount()
	return count.White - count.Black
}
