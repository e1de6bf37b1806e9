package domain

// MoveChooser picks a column for the computer. The search engine in
// service/bot satisfies it.
type MoveChooser interface {
	MakeMove(board Board, depth int) (int, bool)
}

// Move is one applied drop.
type Move struct {
	Piece  Piece `json:"piece"`
	Column int   `json:"column"`
	Row    int   `json:"row"`
}

// Game is the per-session state machine:
// AwaitingPlayer -> AwaitingAI -> (Won | Drawn | AwaitingPlayer).
// Won and Drawn are absorbing until Reset.
type Game struct {
	Board      Board
	Status     GameStatus
	Winner     Piece
	MoveCount  int
	History    []Move
	HumanFirst bool
}

func NewGame(humanFirst bool) *Game {
	g := &Game{HumanFirst: humanFirst}
	g.Reset()
	return g
}

// Reset starts a fresh game with the same move order.
func (g *Game) Reset() {
	g.Board = NewBoard()
	g.Winner = Empty
	g.MoveCount = 0
	g.History = nil
	if g.HumanFirst {
		g.Status = StatusAwaitingPlayer
	} else {
		g.Status = StatusAwaitingAI
	}
}

// CurrentPiece is the piece expected to move next, Empty once finished.
func (g *Game) CurrentPiece() Piece {
	switch g.Status {
	case StatusAwaitingPlayer:
		return PlayerPiece
	case StatusAwaitingAI:
		return AIPiece
	}
	return Empty
}

func (g *Game) IsFinished() bool {
	return g.Status.IsTerminal()
}

// PlayerMove applies the human's drop. The board is unchanged on error.
func (g *Game) PlayerMove(column int) (int, error) {
	return g.apply(PlayerPiece, column)
}

// ApplyAIMove applies a column already chosen for the computer.
func (g *Game) ApplyAIMove(column int) (int, error) {
	return g.apply(AIPiece, column)
}

// PlayAI asks chooser for a column at depth and applies it.
func (g *Game) PlayAI(chooser MoveChooser, depth int) (int, int, error) {
	if g.IsFinished() {
		return -1, -1, ErrGameOver
	}
	if g.Status != StatusAwaitingAI {
		return -1, -1, ErrNotYourTurn
	}

	column, ok := chooser.MakeMove(CopyBoard(g.Board), depth)
	if !ok {
		// only reachable on a full board, which apply would already
		// have marked as drawn
		return -1, -1, ErrNoLegalMoves
	}

	row, err := g.ApplyAIMove(column)
	if err != nil {
		return -1, -1, err
	}
	return column, row, nil
}

func (g *Game) apply(piece Piece, column int) (int, error) {
	if g.IsFinished() {
		return -1, ErrGameOver
	}
	if g.CurrentPiece() != piece {
		return -1, ErrNotYourTurn
	}
	if column < 0 || column >= Columns {
		return -1, ErrInvalidMove
	}

	row := LandingRow(g.Board, column)
	if row < 0 || !DropPiece(g.Board, column, piece) {
		return -1, ErrColumnFull
	}

	g.MoveCount++
	g.History = append(g.History, Move{Piece: piece, Column: column, Row: row})

	if CheckWin(g.Board, piece) {
		g.Status = StatusWon
		g.Winner = piece
		return row, nil
	}

	if IsBoardFull(g.Board) {
		g.Status = StatusDrawn
		return row, nil
	}

	if piece == PlayerPiece {
		g.Status = StatusAwaitingAI
	} else {
		g.Status = StatusAwaitingPlayer
	}

	return row, nil
}

// LastMove returns the most recent drop, if any.
func (g *Game) LastMove() (Move, bool) {
	if len(g.History) == 0 {
		return Move{}, false
	}
	return g.History[len(g.History)-1], true
}
