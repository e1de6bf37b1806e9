package bot

import (
	"github.com/CarlKho-Minerva/4-Connect-VS-Code-CS152-25MNRV/internal/domain"
)

// Window weights. Blocking an open three outweighs building one.
const (
	SCORE_FOUR             = 1000
	SCORE_THREE_OPEN       = 10
	SCORE_TWO_OPEN         = 3
	SCORE_BLOCK_THREE_OPEN = -80
	SCORE_BLOCK_TWO_OPEN   = -5
	SCORE_CENTER_PIECE     = 3
)

// evaluateWindow scores four aligned cells from piece's point of view.
func evaluateWindow(window [domain.ToWin]domain.Piece, piece domain.Piece) int {
	opponent := piece.Opponent()

	pieceCount, emptyCount, oppCount := 0, 0, 0
	for _, cell := range window {
		switch cell {
		case piece:
			pieceCount++
		case opponent:
			oppCount++
		default:
			emptyCount++
		}
	}

	score := 0
	switch {
	case pieceCount == 4:
		score += SCORE_FOUR
	case pieceCount == 3 && emptyCount == 1:
		score += SCORE_THREE_OPEN
	case pieceCount == 2 && emptyCount == 2:
		score += SCORE_TWO_OPEN
	}

	switch {
	case oppCount == 3 && emptyCount == 1:
		score += SCORE_BLOCK_THREE_OPEN
	case oppCount == 2 && emptyCount == 2:
		score += SCORE_BLOCK_TWO_OPEN
	}

	return score
}

// ScorePosition is the static heuristic: the sum of every window score
// plus a bonus per piece held in the center column.
func ScorePosition(board domain.Board, piece domain.Piece) int {
	score := 0

	centerCount := 0
	for row := 0; row < domain.Rows; row++ {
		if board[row][domain.CenterColumn] == piece {
			centerCount++
		}
	}
	score += centerCount * SCORE_CENTER_PIECE

	domain.Windows(board, func(window [domain.ToWin]domain.Piece) {
		score += evaluateWindow(window, piece)
	})

	return score
}
