package chess

import (
	"fmt"

	"github.com/notnil/chess"
)

// Coordinate is a board square. File 0 is the a-file, Rank 0 is White's back rank.
type Coordinate struct {
	File int `json:"file"`
	Rank int `json:"rank"`
}

// At is shorthand for Coordinate{File: file, Rank: rank}.
func At(file, rank int) Coordinate {
	return Coordinate{File: file, Rank: rank}
}

// OnBoard reports whether c lies inside the 8x8 grid.
func (c Coordinate) OnBoard() bool {
	return c.File >= 0 && c.File < 8 && c.Rank >= 0 && c.Rank < 8
}

// String returns the algebraic name of the square, e.g. "e2".
func (c Coordinate) String() string {
	if !c.OnBoard() {
		return fmt.Sprintf("(%d,%d)", c.File, c.Rank)
	}
	return chess.Square(c.Rank*8 + c.File).String()
}

// ParseCoordinate parses an algebraic square name.
func ParseCoordinate(sq string) (Coordinate, error) {
	if len(sq) != 2 {
		return Coordinate{}, fmt.Errorf("%w: %q", ErrInvalidSquare, sq)
	}

	file := int(sq[0]) - 'a'
	rank := int(sq[1]) - '1'

	c := Coordinate{File: file, Rank: rank}
	if !c.OnBoard() {
		return Coordinate{}, fmt.Errorf("%w: %q", ErrInvalidSquare, sq)
	}
	return c, nil
}

// Path is the trajectory of a candidate move: the mover's square followed by
// every square that must be empty for the move to be legal. The destination
// is not included. The zero Path is invalid.
type Path struct {
	Squares []Coordinate
	valid   bool
}

func newPath(from Coordinate) Path {
	return Path{Squares: []Coordinate{from}, valid: true}
}

func (p *Path) add(c Coordinate) {
	p.Squares = append(p.Squares, c)
}

// Valid reports whether the path describes a legal move.
func (p Path) Valid() bool {
	return p.valid
}

// Origin returns the square the path starts from.
func (p Path) Origin() (Coordinate, bool) {
	if !p.valid || len(p.Squares) == 0 {
		return Coordinate{}, false
	}
	return p.Squares[0], true
}
