package chess

import (
	"fmt"
	"testing"

	notnil "github.com/notnil/chess"
	"github.com/stretchr/testify/require"
)

var (
	kindByType = map[notnil.PieceType]Kind{
		notnil.Pawn: Pawn, notnil.Knight: Knight, notnil.Bishop: Bishop,
		notnil.Rook: Rook, notnil.Queen: Queen, notnil.King: King,
	}
	typeByKind = map[Kind]notnil.PieceType{
		Pawn: notnil.Pawn, Knight: notnil.Knight, Bishop: notnil.Bishop,
		Rook: notnil.Rook, Queen: notnil.Queen, King: notnil.King,
	}
)

func referencePosition(t *testing.T, fen string) *notnil.Position {
	t.Helper()
	opt, err := notnil.FEN(fen)
	require.NoError(t, err)
	return notnil.NewGame(opt).Position()
}

// boardFromFEN places pieces in FEN order, rank 8 first, so roster slots
// follow the order pieces appear in the string.
func boardFromFEN(t *testing.T, fen string) *Board {
	t.Helper()

	ref := referencePosition(t, fen).Board()
	b := NewBoard()
	for rank := 7; rank >= 0; rank-- {
		for file := 0; file < 8; file++ {
			p := ref.Piece(notnil.Square(rank*8 + file))
			if p == notnil.NoPiece {
				continue
			}
			color := White
			if p.Color() == notnil.Black {
				color = Black
			}
			_, err := b.Place(kindByType[p.Type()], color, At(file, rank))
			require.NoError(t, err)
		}
	}
	return b
}

func gameFromFEN(t *testing.T, fen string, n Notifier) *Engine {
	t.Helper()

	turn := White
	if referencePosition(t, fen).Turn() == notnil.Black {
		turn = Black
	}
	e, err := NewGameFromBoard(boardFromFEN(t, fen), turn, n)
	require.NoError(t, err)
	return e
}

// fenOf writes the position with castling and en passant rights cleared,
// since the engine implements neither.
func fenOf(e *Engine) string {
	squares := make(map[notnil.Square]notnil.Piece)
	for _, c := range []Color{White, Black} {
		color := notnil.White
		if c == Black {
			color = notnil.Black
		}
		for _, p := range e.board.Pieces(c) {
			squares[notnil.Square(p.Square.Rank*8+p.Square.File)] = notnil.NewPiece(typeByKind[p.Kind], color)
		}
	}
	return notnil.NewBoard(squares).String() + " " + e.turn.String()[:1] + " - - 0 1"
}

func sq(t *testing.T, name string) Coordinate {
	t.Helper()
	c, err := ParseCoordinate(name)
	require.NoError(t, err)
	return c
}

// play selects from and then to, failing the test on any error.
func play(t *testing.T, e *Engine, from, to string) *MoveResult {
	t.Helper()
	_, err := e.Select(sq(t, from))
	require.NoError(t, err, "select %s", from)
	result, err := e.Select(sq(t, to))
	require.NoError(t, err, "move %s-%s", from, to)
	require.NoError(t, e.Board().Validate())
	return result
}

func cloneBoard(b *Board) *Board {
	c := *b
	c.pieces = append([]Piece(nil), b.pieces...)
	return &c
}

type recorder struct {
	events []string
}

func (r *recorder) OnPieceMoved(p Piece, from, to Coordinate) {
	r.events = append(r.events, fmt.Sprintf("move %s %s-%s", p.Letter(), from, to))
}

func (r *recorder) OnPieceCaptured(p Piece) {
	r.events = append(r.events, fmt.Sprintf("capture %s %s", p.Letter(), p.Square))
}

func (r *recorder) OnPiecePromoted(old, replacement Piece) {
	r.events = append(r.events, fmt.Sprintf("replace %s>%s %s", old.Letter(), replacement.Letter(), replacement.Square))
}

func (r *recorder) OnPieceRestored(p Piece) {
	r.events = append(r.events, fmt.Sprintf("restore %s %s", p.Letter(), p.Square))
}

func (r *recorder) OnMessage(text string) {
	r.events = append(r.events, "msg "+text)
}

func (r *recorder) reset() {
	r.events = nil
}
