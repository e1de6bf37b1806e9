package simulation

import (
	"fmt"
	"io"
	"strings"

	"github.com/CarlKho-Minerva/4-Connect-VS-Code-CS152-25MNRV/internal/domain"
	"github.com/CarlKho-Minerva/4-Connect-VS-Code-CS152-25MNRV/internal/service/bot"
)

const openingLabel = "Forced P1 Opening"

// LogEntry is one move of a logged game. Column is 1-based.
type LogEntry struct {
	MoveNum int          `json:"moveNum"`
	Player  string       `json:"player"`
	Column  int          `json:"col"`
	Board   domain.Board `json:"board"`
}

// GameLog is a move-by-move record of a single game.
type GameLog struct {
	Depth      int          `json:"depth"`
	OpeningCol int          `json:"openingCol"`
	Entries    []LogEntry   `json:"log"`
	Winner     domain.Piece `json:"winner"`
	Err        error        `json:"-"`
}

// RunSingleGameWithLog forces PlayerPiece into openingCol (0-based), then
// plays the engine at depth as AIPiece against a random mover.
func RunSingleGameWithLog(engine *bot.Engine, src bot.RandSource, depth, openingCol int) GameLog {
	gl := GameLog{Depth: depth, OpeningCol: openingCol}

	board := domain.NewBoard()
	if !domain.DropPiece(board, openingCol, domain.PlayerPiece) {
		gl.Err = fmt.Errorf("simulation: opening column %d: %w", openingCol, domain.ErrInvalidMove)
		return gl
	}
	gl.Entries = append(gl.Entries, LogEntry{
		MoveNum: 1,
		Player:  openingLabel,
		Column:  openingCol + 1,
		Board:   domain.CopyBoard(board),
	})

	movers := map[domain.Piece]Mover{
		domain.PlayerPiece: RandomPlayer{Source: src},
		domain.AIPiece:     MinimaxPlayer{Engine: engine, Depth: depth},
	}

	replay := domain.CopyBoard(board)
	rec := PlayGame(board, domain.AIPiece, movers)
	for i, mv := range rec.Moves {
		domain.DropPiece(replay, mv.Column, mv.Piece)
		gl.Entries = append(gl.Entries, LogEntry{
			MoveNum: i + 2,
			Player:  movers[mv.Piece].Label(),
			Column:  mv.Column + 1,
			Board:   domain.CopyBoard(replay),
		})
	}
	gl.Winner = rec.Winner
	gl.Err = rec.Err
	return gl
}

// Result is the closing line of the log.
func (gl GameLog) Result() string {
	switch {
	case gl.Err != nil:
		return "Result: Error"
	case gl.Winner == domain.AIPiece:
		return fmt.Sprintf("Result: AI (D%d) wins", gl.Depth)
	case gl.Winner == domain.PlayerPiece:
		return "Result: Random wins"
	default:
		return "Result: Draw"
	}
}

// WriteGameLog prints the log as plain text.
func WriteGameLog(w io.Writer, gl GameLog) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "--- Single Game Log (AI Depth %d vs Random, P1 Forced Open Col %d) ---\n", gl.Depth, gl.OpeningCol+1)
	for _, e := range gl.Entries {
		fmt.Fprintf(&sb, "\nMove %d: %s in column %d\n", e.MoveNum, e.Player, e.Column)
		for _, line := range strings.Split(strings.TrimSuffix(e.Board.String(), "\n"), "\n") {
			sb.WriteString("  " + line + "\n")
		}
	}
	sb.WriteString(gl.Result() + "\n")

	_, err := io.WriteString(w, sb.String())
	return err
}
