package chess

import (
	"fmt"
	"strings"
)

// PieceID is a handle into the board's piece arena. The zero value means
// "no piece".
type PieceID int

const NoPiece PieceID = 0

const rosterSize = 16

// Piece is one chessman. Pieces live in the Board arena and are referenced
// from exactly one grid cell and one roster slot while active.
type Piece struct {
	ID        PieceID    `json:"id"`
	Kind      Kind       `json:"kind"`
	Color     Color      `json:"color"`
	Square    Coordinate `json:"square"`
	Origin    Coordinate `json:"origin"`
	Direction int        `json:"direction"`
	Value     int        `json:"value"`
	Moved     bool       `json:"moved"`
}

func (p Piece) String() string {
	return fmt.Sprintf("%s %s@%s", p.Color, p.Kind, p.Square)
}

// Board is the 8x8 grid plus one 16-slot roster per color. Slot 0 of each
// roster holds that color's king.
type Board struct {
	pieces  []Piece
	grid    [8][8]PieceID
	rosters [2][rosterSize]PieceID
}

// NewBoard returns an empty board.
func NewBoard() *Board {
	// index 0 is the NoPiece sentinel
	return &Board{pieces: make([]Piece, 1, 33)}
}

var backRank = [8]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// NewStandardBoard returns the 32-piece starting layout.
func NewStandardBoard() *Board {
	b := NewBoard()
	for _, color := range []Color{White, Black} {
		home, pawns := 0, 1
		if color == Black {
			home, pawns = 7, 6
		}
		for file, kind := range backRank {
			b.mustPlace(kind, color, At(file, home))
		}
		for file := 0; file < 8; file++ {
			b.mustPlace(Pawn, color, At(file, pawns))
		}
	}
	return b
}

func (b *Board) mustPlace(kind Kind, color Color, sq Coordinate) {
	if _, err := b.Place(kind, color, sq); err != nil {
		panic(err)
	}
}

// Place puts a new, unmoved piece on an empty square. Kings take roster slot
// 0; everything else takes the first free slot after it.
func (b *Board) Place(kind Kind, color Color, sq Coordinate) (PieceID, error) {
	if !sq.OnBoard() {
		return NoPiece, fmt.Errorf("%w: %s", ErrInvalidSquare, sq)
	}
	if b.at(sq) != NoPiece {
		return NoPiece, fmt.Errorf("%w: %s", ErrSquareOccupied, sq)
	}

	slot := -1
	if kind == King {
		if b.rosters[color][0] == NoPiece {
			slot = 0
		}
	} else {
		slot = b.freeSlot(color)
	}
	if slot < 0 {
		return NoPiece, fmt.Errorf("%w: no slot for %s %s", ErrRosterFull, color, kind)
	}

	id := b.newPiece(kind, color, sq)
	b.grid[sq.File][sq.Rank] = id
	b.rosters[color][slot] = id
	return id, nil
}

func (b *Board) newPiece(kind Kind, color Color, sq Coordinate) PieceID {
	id := PieceID(len(b.pieces))
	b.pieces = append(b.pieces, Piece{
		ID:        id,
		Kind:      kind,
		Color:     color,
		Square:    sq,
		Origin:    sq,
		Direction: color.direction(),
		Value:     StandardPieceValues[kind.String()],
	})
	return id
}

// dropLast removes the newest arena entry. Only used when reverting a
// promotion, which always created the newest piece.
func (b *Board) dropLast(id PieceID) {
	if int(id) == len(b.pieces)-1 {
		b.pieces = b.pieces[:id]
	}
}

func (b *Board) freeSlot(color Color) int {
	for i := 1; i < rosterSize; i++ {
		if b.rosters[color][i] == NoPiece {
			return i
		}
	}
	return -1
}

func (b *Board) slotOf(id PieceID) int {
	p := b.piece(id)
	for i, rid := range b.rosters[p.Color] {
		if rid == id {
			return i
		}
	}
	return -1
}

func (b *Board) at(sq Coordinate) PieceID {
	return b.grid[sq.File][sq.Rank]
}

func (b *Board) piece(id PieceID) *Piece {
	return &b.pieces[id]
}

// PieceAt returns a copy of the piece on sq.
func (b *Board) PieceAt(sq Coordinate) (Piece, bool) {
	if !sq.OnBoard() {
		return Piece{}, false
	}
	id := b.at(sq)
	if id == NoPiece {
		return Piece{}, false
	}
	return *b.piece(id), true
}

// Piece returns a copy of the piece behind a handle.
func (b *Board) Piece(id PieceID) (Piece, bool) {
	if id <= NoPiece || int(id) >= len(b.pieces) {
		return Piece{}, false
	}
	return *b.piece(id), true
}

// Roster returns the handles of color's roster, empty slots included.
func (b *Board) Roster(color Color) [rosterSize]PieceID {
	return b.rosters[color]
}

// Pieces returns copies of color's active pieces in roster order.
func (b *Board) Pieces(color Color) []Piece {
	var out []Piece
	for _, id := range b.rosters[color] {
		if id != NoPiece {
			out = append(out, *b.piece(id))
		}
	}
	return out
}

// King returns color's king, if it is on the roster.
func (b *Board) King(color Color) (Piece, bool) {
	id := b.rosters[color][0]
	if id == NoPiece {
		return Piece{}, false
	}
	return *b.piece(id), true
}

// Validate checks grid/roster consistency and returns the first violation.
func (b *Board) Validate() error {
	seen := make(map[PieceID]bool)
	for color := White; color <= Black; color++ {
		for slot, id := range b.rosters[color] {
			if id == NoPiece {
				continue
			}
			if int(id) >= len(b.pieces) {
				return fmt.Errorf("%s roster slot %d: dangling handle %d", color, slot, id)
			}
			if seen[id] {
				return fmt.Errorf("%s roster slot %d: piece %d listed twice", color, slot, id)
			}
			seen[id] = true

			p := b.piece(id)
			if p.Color != color {
				return fmt.Errorf("%s roster slot %d: holds a %s piece", color, slot, p.Color)
			}
			if (slot == 0) != (p.Kind == King) {
				return fmt.Errorf("%s roster slot %d: holds %s", color, slot, p.Kind)
			}
			if !p.Square.OnBoard() || b.at(p.Square) != id {
				return fmt.Errorf("%s not found on its square %s", p, p.Square)
			}
		}
	}

	for file := 0; file < 8; file++ {
		for rank := 0; rank < 8; rank++ {
			id := b.grid[file][rank]
			if id == NoPiece {
				continue
			}
			if !seen[id] {
				return fmt.Errorf("piece %d on %s is not on any roster", id, At(file, rank))
			}
			if sq := b.piece(id).Square; sq != At(file, rank) {
				return fmt.Errorf("piece %d on %s claims square %s", id, At(file, rank), sq)
			}
		}
	}
	return nil
}

var pieceLetters = map[Kind]byte{Pawn: 'p', Knight: 'n', Bishop: 'b', Rook: 'r', Queen: 'q', King: 'k'}

// Letter returns the conventional one-letter symbol, upper case for White.
func (p Piece) Letter() string {
	l := pieceLetters[p.Kind]
	if p.Color == White {
		l -= 'a' - 'A'
	}
	return string(l)
}

// String draws the board from White's side, rank 8 at the top.
func (b *Board) String() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		fmt.Fprintf(&sb, "%d ", rank+1)
		for file := 0; file < 8; file++ {
			if p, ok := b.PieceAt(At(file, rank)); ok {
				sb.WriteString(p.Letter())
			} else {
				sb.WriteByte('.')
			}
			if file < 7 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h\n")
	return sb.String()
}
