package domain

// Piece identifies the owner of a cell. The integer values are the ones
// renderers receive in snapshots.
type Piece int

const (
	Empty       Piece = 0
	PlayerPiece Piece = 1
	AIPiece     Piece = 2
)

// Opponent returns the other non-empty piece. Empty has no opponent.
func (p Piece) Opponent() Piece {
	switch p {
	case PlayerPiece:
		return AIPiece
	case AIPiece:
		return PlayerPiece
	}
	return Empty
}

// Symbol is the single-character form used in text boards.
func (p Piece) Symbol() string {
	switch p {
	case PlayerPiece:
		return "X"
	case AIPiece:
		return "O"
	}
	return "."
}

// board dimensions
const (
	Rows    = 6
	Columns = 7
	ToWin   = 4
)

// CenterColumn is the column the heuristic rewards controlling.
const CenterColumn = Columns / 2

// to represent the game status
type GameStatus string

const (
	StatusAwaitingPlayer GameStatus = "awaiting_player"
	StatusAwaitingAI     GameStatus = "awaiting_ai"
	StatusWon            GameStatus = "won"
	StatusDrawn          GameStatus = "drawn"
)

// IsTerminal reports whether no further moves are accepted.
func (s GameStatus) IsTerminal() bool {
	return s == StatusWon || s == StatusDrawn
}

// basic error that can occur
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrInvalidMove  Error = "invalid move"
	ErrColumnFull   Error = "column is full"
	ErrGameOver     Error = "game is already over"
	ErrNotYourTurn  Error = "not your turn"
	ErrNoLegalMoves Error = "no legal moves"
	ErrInvalidBoard Error = "invalid board layout"
)
