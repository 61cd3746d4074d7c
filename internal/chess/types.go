package chess

type GameStatus string

const (
	StatusActive   GameStatus = "active"
	StatusWhiteWon GameStatus = "white_won"
	StatusBlackWon GameStatus = "black_won"
)

// Color of a piece or of the side to move.
type Color uint8

const (
	White Color = iota
	Black
)

// Other returns the opposing color.
func (c Color) Other() Color {
	return c ^ 1
}

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// direction is the rank delta of a forward pawn step.
func (c Color) direction() int {
	if c == White {
		return 1
	}
	return -1
}

// Kind tags a piece variant.
type Kind uint8

const (
	Pawn Kind = iota
	Knight
	Bishop
	Rook
	Queen
	King
)

func (k Kind) String() string {
	switch k {
	case Pawn:
		return "pawn"
	case Knight:
		return "knight"
	case Bishop:
		return "bishop"
	case Rook:
		return "rook"
	case Queen:
		return "queen"
	case King:
		return "king"
	default:
		return "unknown"
	}
}

// Status messages passed to Notifier.OnMessage.
const (
	MessageClear     = ""
	MessageInvalid   = "INVALID MOVE!!"
	MessageCheck     = "CHECK!!"
	MessageSelfCheck = "SELF CHECK!! ILLEGAL MOVE"
	MessageCheckmate = "CHECKMATE"
)

type MoveResult struct {
	From      string     `json:"from"`
	To        string     `json:"to"`
	Piece     string     `json:"piece"`
	Captured  string     `json:"captured,omitempty"`
	Promoted  bool       `json:"promoted"`
	Check     bool       `json:"check"`
	Checkmate bool       `json:"checkmate"`
	GameOver  bool       `json:"gameOver"`
	Status    GameStatus `json:"status"`
}

// MaterialCount represents the material count for both sides
type MaterialCount struct {
	White int `json:"white"`
	Black int `json:"black"`
}

// PieceValues maps piece types to their standard values
var StandardPieceValues = map[string]int{
	"pawn":   1,
	"knight": 3,
	"bishop": 3,
	"rook":   5,
	"queen":  9,
	"king":   0, // King has no material value
}
