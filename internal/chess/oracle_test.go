package chess

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// legalMoves lists every from-to pair the engine accepts for the side to
// move, in long algebraic form.
func legalMoves(e *Engine) []string {
	var moves []string
	for _, p := range e.board.Pieces(e.turn) {
		for rank := 0; rank < 8; rank++ {
			for file := 0; file < 8; file++ {
				dst := At(file, rank)
				if e.board.ComputePath(p.ID, dst).Valid() && e.safeAfter(e.turn, p.Square, dst) {
					moves = append(moves, p.Square.String()+dst.String())
				}
			}
		}
	}
	sort.Strings(moves)
	return moves
}

func referenceMoves(t *testing.T, fen string) []string {
	t.Helper()

	seen := map[string]bool{}
	var moves []string
	for _, m := range referencePosition(t, fen).ValidMoves() {
		// promotions appear once per piece type
		s := m.S1().String() + m.S2().String()
		if !seen[s] {
			seen[s] = true
			moves = append(moves, s)
		}
	}
	sort.Strings(moves)
	return moves
}

// TestLegalMovesAgreeWithReferenceEngine replays the opening of Morphy's
// Opera Game and compares the full legal move list at every ply.
func TestLegalMovesAgreeWithReferenceEngine(t *testing.T) {
	moves := [][2]string{
		{"e2", "e4"}, {"e7", "e5"},
		{"g1", "f3"}, {"d7", "d6"},
		{"d2", "d4"}, {"c8", "g4"},
		{"d4", "e5"}, {"g4", "f3"},
		{"d1", "f3"}, {"d6", "e5"},
		{"f1", "c4"}, {"g8", "f6"},
		{"f3", "b3"}, {"d8", "e7"},
		{"b1", "c3"}, {"c7", "c6"},
		{"c1", "g5"}, {"b7", "b5"},
		{"c3", "b5"}, {"c6", "b5"},
		{"c4", "b5"}, {"b8", "d7"},
	}

	engine := NewGame(nil)
	for i, m := range moves {
		fen := fenOf(engine)
		assert.Equal(t, referenceMoves(t, fen), legalMoves(engine), "ply %d: %s", i, fen)
		require.Equal(t, i, engine.UndoDepth())
		play(t, engine, m[0], m[1])
	}

	fen := fenOf(engine)
	assert.Equal(t, "r3kb1r/p2nqppp/5n2/1B2p1B1/4P3/1Q6/PPP2PPP/R3K2R w - - 0 1", fen)
	assert.Equal(t, referenceMoves(t, fen), legalMoves(engine))
}

func TestLegalMovesAgreeOnPromotionAndPins(t *testing.T) {
	positions := []string{
		// pawns one step from promotion with captures available
		"1n2k3/P1P5/8/8/8/8/5p1p/2K3N1 w - - 0 1",
		"1n2k3/P1P5/8/8/8/8/5p1p/2K3N1 b - - 0 1",
		// knight pinned by the queen while the rook gives check
		"4r1k1/8/8/8/1q6/8/3N4/1B1BK3 w - - 0 1",
		// double check leaves only king moves
		"4k3/8/8/8/8/5n2/8/r3K3 w - - 0 1",
	}

	for _, fen := range positions {
		t.Run(fen, func(t *testing.T) {
			engine := gameFromFEN(t, fen, nil)
			assert.Equal(t, referenceMoves(t, fen), legalMoves(engine))
		})
	}
}
