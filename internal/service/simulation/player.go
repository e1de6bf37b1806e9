package simulation

import (
	"fmt"

	"github.com/CarlKho-Minerva/4-Connect-VS-Code-CS152-25MNRV/internal/domain"
	"github.com/CarlKho-Minerva/4-Connect-VS-Code-CS152-25MNRV/internal/service/bot"
)

// Mover chooses a column for whichever piece it has been seated as.
type Mover interface {
	Move(board domain.Board, piece domain.Piece) (int, bool)
	Label() string
}

// MinimaxPlayer searches at a fixed depth.
type MinimaxPlayer struct {
	Engine *bot.Engine
	Depth  int
}

func (p MinimaxPlayer) Move(board domain.Board, piece domain.Piece) (int, bool) {
	return p.Engine.MakeMoveFor(board, piece, p.Depth)
}

func (p MinimaxPlayer) Label() string {
	return fmt.Sprintf("AI (D%d)", p.Depth)
}

// RandomPlayer picks any playable column.
type RandomPlayer struct {
	Source bot.RandSource
}

func (p RandomPlayer) Move(board domain.Board, _ domain.Piece) (int, bool) {
	return bot.RandomMove(board, p.Source)
}

func (p RandomPlayer) Label() string {
	return "Random"
}
