package chess

import "github.com/rs/zerolog"

// Notifier receives display updates from the engine. Calls are synchronous
// and happen only for committed moves and undos, never for trial moves.
type Notifier interface {
	OnPieceMoved(p Piece, from, to Coordinate)
	OnPieceCaptured(p Piece)
	// OnPiecePromoted reports that old was replaced by replacement on the
	// same square. Undoing a promotion reports the queen as old.
	OnPiecePromoted(old, replacement Piece)
	// OnPieceRestored reports a captured piece put back by an undo.
	OnPieceRestored(p Piece)
	OnMessage(text string)
}

type NopNotifier struct{}

func (NopNotifier) OnPieceMoved(Piece, Coordinate, Coordinate) {}
func (NopNotifier) OnPieceCaptured(Piece)                       {}
func (NopNotifier) OnPiecePromoted(Piece, Piece)                {}
func (NopNotifier) OnPieceRestored(Piece)                       {}
func (NopNotifier) OnMessage(string)                            {}

// LogNotifier writes every notification to a zerolog logger.
type LogNotifier struct {
	Logger zerolog.Logger
}

func (n LogNotifier) OnPieceMoved(p Piece, from, to Coordinate) {
	n.Logger.Info().
		Str("color", p.Color.String()).
		Str("piece", p.Kind.String()).
		Str("from", from.String()).
		Str("to", to.String()).
		Msg("Piece moved")
}

func (n LogNotifier) OnPieceCaptured(p Piece) {
	n.Logger.Info().
		Str("color", p.Color.String()).
		Str("piece", p.Kind.String()).
		Str("square", p.Square.String()).
		Msg("Piece captured")
}

func (n LogNotifier) OnPiecePromoted(old, replacement Piece) {
	n.Logger.Info().
		Str("square", replacement.Square.String()).
		Str("old", old.Kind.String()).
		Str("new", replacement.Kind.String()).
		Msg("Piece replaced")
}

func (n LogNotifier) OnPieceRestored(p Piece) {
	n.Logger.Info().
		Str("color", p.Color.String()).
		Str("piece", p.Kind.String()).
		Str("square", p.Square.String()).
		Msg("Piece restored")
}

func (n LogNotifier) OnMessage(text string) {
	if text == MessageClear {
		return
	}
	n.Logger.Warn().Msg(text)
}

// MultiNotifier fans every call out to each notifier in order.
type MultiNotifier []Notifier

func (m MultiNotifier) OnPieceMoved(p Piece, from, to Coordinate) {
	for _, n := range m {
		n.OnPieceMoved(p, from, to)
	}
}

func (m MultiNotifier) OnPieceCaptured(p Piece) {
	for _, n := range m {
		n.OnPieceCaptured(p)
	}
}

func (m MultiNotifier) OnPiecePromoted(old, replacement Piece) {
	for _, n := range m {
		n.OnPiecePromoted(old, replacement)
	}
}

func (m MultiNotifier) OnPieceRestored(p Piece) {
	for _, n := range m {
		n.OnPieceRestored(p)
	}
}

func (m MultiNotifier) OnMessage(text string) {
	for _, n := range m {
		n.OnMessage(text)
	}
}
