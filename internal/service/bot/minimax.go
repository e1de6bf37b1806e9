package bot

import (
	"math"

	"github.com/CarlKho-Minerva/4-Connect-VS-Code-CS152-25MNRV/internal/domain"
)

const (
	MINIMAX_WIN  = 1000000
	MINIMAX_LOSS = -1000000
	MINIMAX_DRAW = 0
)

// search is the state of one top-level search. Every recursive call works
// on its own board copy, so nothing here is shared between branches.
type search struct {
	me    domain.Piece
	opp   domain.Piece
	rng   RandSource
	nodes int
}

func newSearch(me domain.Piece, rng RandSource) *search {
	return &search{me: me, opp: me.Opponent(), rng: rng}
}

func (s *search) isTerminal(board domain.Board) bool {
	return domain.CheckWin(board, s.opp) || domain.CheckWin(board, s.me) || domain.IsBoardFull(board)
}

// terminalValue scores a finished board. Faster wins and slower losses
// score better, hence the remaining depth in both.
func (s *search) terminalValue(board domain.Board, depth int) int {
	if domain.CheckWin(board, s.me) {
		return MINIMAX_WIN + depth
	}
	if domain.CheckWin(board, s.opp) {
		return MINIMAX_LOSS - depth
	}
	return MINIMAX_DRAW
}

// minimax implements the minimax algorithm with alpha-beta pruning. It
// returns the best column (ok is false only when there is none) and the
// value of the position for s.me.
func (s *search) minimax(board domain.Board, depth int, alpha, beta int, isMaximizing bool) (int, bool, int) {
	s.nodes++

	if depth < 0 {
		depth = 0
	}

	terminal := s.isTerminal(board)
	if depth == 0 || terminal {
		if terminal {
			return -1, false, s.terminalValue(board, depth)
		}
		return -1, false, ScorePosition(board, s.me)
	}

	validColumns := domain.ValidLocations(board)
	if len(validColumns) == 0 {
		return -1, false, MINIMAX_DRAW
	}

	// seeded with a random column; kept only if no child improves on it
	bestCol := validColumns[s.rng.Intn(len(validColumns))]

	if isMaximizing {
		value := math.MinInt
		for _, col := range validColumns {
			testBoard := domain.CopyBoard(board)
			if !domain.DropPiece(testBoard, col, s.me) {
				continue
			}

			_, _, eval := s.minimax(testBoard, depth-1, alpha, beta, false)
			if eval > value {
				value = eval
				bestCol = col
			}
			alpha = max(alpha, value)

			if alpha >= beta {
				break // Beta cutoff
			}
		}
		return bestCol, true, value
	}

	value := math.MaxInt
	for _, col := range validColumns {
		testBoard := domain.CopyBoard(board)
		if !domain.DropPiece(testBoard, col, s.opp) {
			continue
		}

		_, _, eval := s.minimax(testBoard, depth-1, alpha, beta, true)
		if eval < value {
			value = eval
			bestCol = col
		}
		beta = min(beta, value)

		if alpha >= beta {
			break // Alpha cutoff
		}
	}
	return bestCol, true, value
}

// IsTerminal reports whether either side has won or the board is full.
func IsTerminal(board domain.Board) bool {
	return domain.CheckWin(board, domain.PlayerPiece) || domain.CheckWin(board, domain.AIPiece) || domain.IsBoardFull(board)
}
