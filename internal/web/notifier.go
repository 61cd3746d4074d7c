package web

import "github.com/justinabrahms/hotseat/internal/chess"

// PieceEvent is the payload of move, capture and restore updates.
type PieceEvent struct {
	Kind   string `json:"kind"`
	Color  string `json:"color"`
	Square string `json:"square"`
	From   string `json:"from,omitempty"`
	To     string `json:"to,omitempty"`
}

// PromotionEvent reports one piece replacing another on the same square.
type PromotionEvent struct {
	Square string `json:"square"`
	Color  string `json:"color"`
	Old    string `json:"old"`
	New    string `json:"new"`
}

type MessageEvent struct {
	Text string `json:"text"`
}

// hubNotifier forwards engine notifications for one game to its watchers.
type hubNotifier struct {
	hub    *Hub
	gameID string
}

func (n hubNotifier) send(kind string, data interface{}) {
	n.hub.BroadcastGameUpdate(GameUpdate{GameID: n.gameID, Type: kind, Data: data})
}

func pieceEvent(p chess.Piece) PieceEvent {
	return PieceEvent{
		Kind:   p.Kind.String(),
		Color:  p.Color.String(),
		Square: p.Square.String(),
	}
}

func (n hubNotifier) OnPieceMoved(p chess.Piece, from, to chess.Coordinate) {
	ev := pieceEvent(p)
	ev.From, ev.To = from.String(), to.String()
	n.send("move", ev)
}

func (n hubNotifier) OnPieceCaptured(p chess.Piece) {
	n.send("capture", pieceEvent(p))
}

func (n hubNotifier) OnPiecePromoted(old, replacement chess.Piece) {
	n.send("promotion", PromotionEvent{
		Square: replacement.Square.String(),
		Color:  replacement.Color.String(),
		Old:    old.Kind.String(),
		New:    replacement.Kind.String(),
	})
}

func (n hubNotifier) OnPieceRestored(p chess.Piece) {
	n.send("restore", pieceEvent(p))
}

func (n hubNotifier) OnMessage(text string) {
	n.send("message", MessageEvent{Text: text})
}
