package chess

// PieceView is the JSON shape of one piece on the board.
type PieceView struct {
	Square string `json:"square"`
	Kind   string `json:"kind"`
	Color  string `json:"color"`
	Letter string `json:"letter"`
	Value  int    `json:"value"`
}

// Snapshot is a read-only view of the game for presentation layers.
type Snapshot struct {
	Turn      string        `json:"turn"`
	Status    GameStatus    `json:"status"`
	GameOver  bool          `json:"gameOver"`
	InCheck   bool          `json:"inCheck"`
	Selected  string        `json:"selected,omitempty"`
	Pieces    []PieceView   `json:"pieces"`
	Material  MaterialCount `json:"material"`
	UndoDepth int           `json:"undoDepth"`
}

// Snapshot captures the current position. Pieces are listed White first, in
// roster order.
func (e *Engine) Snapshot() Snapshot {
	s := Snapshot{
		Turn:      e.GetActiveColor(),
		Status:    e.GetStatus(),
		GameOver:  e.gameOver,
		InCheck:   e.IsInCheck(e.turn).Valid(),
		Material:  e.GetMaterialCount(),
		UndoDepth: e.undo.Len(),
		Pieces:    []PieceView{},
	}
	if sq, ok := e.Selected(); ok {
		s.Selected = sq.String()
	}
	for _, c := range []Color{White, Black} {
		for _, p := range e.board.Pieces(c) {
			s.Pieces = append(s.Pieces, PieceView{
				Square: p.Square.String(),
				Kind:   p.Kind.String(),
				Color:  p.Color.String(),
				Letter: p.Letter(),
				Value:  p.Value,
			})
		}
	}
	return s
}
