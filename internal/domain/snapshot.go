package domain

// Snapshot commands, mirroring what a board renderer needs to redraw.
const (
	CommandUpdateBoard = "updateBoard"
	CommandGameOver    = "gameOver"
)

// Snapshot is a detached copy of a game for renderers. Mutating it never
// affects the game it came from.
type Snapshot struct {
	Command     string     `json:"command"`
	Board       [][]int    `json:"board"`
	Status      GameStatus `json:"status"`
	Message     string     `json:"message"`
	Winner      int        `json:"winner,omitempty"`
	LastMove    *Move      `json:"lastMove,omitempty"`
	WinningLine [][2]int   `json:"winningLine,omitempty"`
	MoveCount   int        `json:"moveCount"`
	ValidMoves  []int      `json:"validMoves"`
}

func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Command:    CommandUpdateBoard,
		Board:      g.Board.Ints(),
		Status:     g.Status,
		Message:    g.StatusMessage(),
		MoveCount:  g.MoveCount,
		ValidMoves: ValidLocations(g.Board),
	}
	if last, ok := g.LastMove(); ok {
		snap.LastMove = &last
	}
	if g.IsFinished() {
		snap.Command = CommandGameOver
		snap.ValidMoves = []int{}
		if g.Status == StatusWon {
			snap.Winner = int(g.Winner)
			snap.WinningLine = WinningLine(g.Board, g.Winner)
		}
	}
	return snap
}

// StatusMessage is the one-line status shown under the board.
func (g *Game) StatusMessage() string {
	switch g.Status {
	case StatusAwaitingPlayer:
		return "Your turn (Player 1 - X)"
	case StatusAwaitingAI:
		return "AI's turn (thinking...)"
	case StatusWon:
		if g.Winner == PlayerPiece {
			return "You Win!"
		}
		return "AI Wins!"
	case StatusDrawn:
		return "Draw!"
	}
	return ""
}
