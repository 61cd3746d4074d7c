// Package render draws a board position as SVG.
package render

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"
	"github.com/justinabrahms/hotseat/internal/chess"
	"github.com/justinabrahms/hotseat/internal/config"
)

var glyphs = map[chess.Color]map[chess.Kind]string{
	chess.White: {
		chess.King: "♔", chess.Queen: "♕", chess.Rook: "♖",
		chess.Bishop: "♗", chess.Knight: "♘", chess.Pawn: "♙",
	},
	chess.Black: {
		chess.King: "♚", chess.Queen: "♛", chess.Rook: "♜",
		chess.Bishop: "♝", chess.Knight: "♞", chess.Pawn: "♟",
	},
}

const highlightColor = "#f6f669"

// Renderer draws boards with White at the bottom.
type Renderer struct {
	SquareSize int
	LightColor string
	DarkColor  string
}

func New(cfg config.RenderConfig) *Renderer {
	return &Renderer{
		SquareSize: cfg.SquareSize,
		LightColor: cfg.LightColor,
		DarkColor:  cfg.DarkColor,
	}
}

// Board writes the position to w. Squares in highlight are filled with the
// highlight color, typically the current selection.
func (r *Renderer) Board(w io.Writer, b *chess.Board, highlight ...chess.Coordinate) {
	size := r.SquareSize
	marked := make(map[chess.Coordinate]bool, len(highlight))
	for _, sq := range highlight {
		marked[sq] = true
	}

	canvas := svg.New(w)
	canvas.Start(8*size, 8*size)
	canvas.Title("board")

	canvas.Gid("squares")
	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			sq := chess.At(file, rank)
			x, y := r.origin(sq)
			fill := r.DarkColor
			if (file+rank)%2 == 1 {
				fill = r.LightColor
			}
			if marked[sq] {
				fill = highlightColor
			}
			canvas.Rect(x, y, size, size, "fill:"+fill, fmt.Sprintf(`id="%s"`, sq))
		}
	}
	canvas.Gend()

	canvas.Gid("pieces")
	fontSize := size * 3 / 4
	for _, c := range []chess.Color{chess.White, chess.Black} {
		for _, p := range b.Pieces(c) {
			x, y := r.origin(p.Square)
			canvas.Text(x+size/2, y+size*4/5, glyphs[p.Color][p.Kind],
				fmt.Sprintf("text-anchor:middle;font-size:%dpx", fontSize),
				`class="piece"`,
				fmt.Sprintf(`data-square="%s"`, p.Square))
		}
	}
	canvas.Gend()

	canvas.End()
}

// origin is the top-left pixel of a square.
func (r *Renderer) origin(sq chess.Coordinate) (int, int) {
	return sq.File * r.SquareSize, (7 - sq.Rank) * r.SquareSize
}
