package domain

import (
	"errors"
	"testing"
)

// scriptedChooser replays fixed columns.
type scriptedChooser struct {
	columns []int
	calls   int
}

func (s *scriptedChooser) MakeMove(board Board, depth int) (int, bool) {
	if s.calls >= len(s.columns) {
		return -1, false
	}
	col := s.columns[s.calls]
	s.calls++
	return col, true
}

func TestGameTurnOrder(t *testing.T) {
	g := NewGame(true)
	if g.Status != StatusAwaitingPlayer || g.CurrentPiece() != PlayerPiece {
		t.Fatalf("expected player to move first, got %s", g.Status)
	}

	if _, err := g.ApplyAIMove(0); !errors.Is(err, ErrNotYourTurn) {
		t.Fatalf("expected ErrNotYourTurn for early AI move, got %v", err)
	}

	row, err := g.PlayerMove(3)
	if err != nil {
		t.Fatalf("player move: %v", err)
	}
	if row != Rows-1 {
		t.Fatalf("expected bottom row, got %d", row)
	}
	if g.Status != StatusAwaitingAI {
		t.Fatalf("expected AI turn, got %s", g.Status)
	}
	if _, err := g.PlayerMove(3); !errors.Is(err, ErrNotYourTurn) {
		t.Fatalf("expected ErrNotYourTurn, got %v", err)
	}

	chooser := &scriptedChooser{columns: []int{3}}
	col, row, err := g.PlayAI(chooser, 5)
	if err != nil {
		t.Fatalf("AI move: %v", err)
	}
	if col != 3 || row != Rows-2 {
		t.Fatalf("unexpected AI move col=%d row=%d", col, row)
	}
	if g.Status != StatusAwaitingPlayer || g.MoveCount != 2 {
		t.Fatalf("unexpected state %s after %d moves", g.Status, g.MoveCount)
	}
}

func TestGameInvalidMovesKeepState(t *testing.T) {
	g := NewGame(true)
	for i := 0; i < Rows; i++ {
		g.Board[i][0] = AIPiece
	}
	before := CopyBoard(g.Board)

	if _, err := g.PlayerMove(0); !errors.Is(err, ErrColumnFull) {
		t.Fatalf("expected ErrColumnFull, got %v", err)
	}
	if _, err := g.PlayerMove(Columns); !errors.Is(err, ErrInvalidMove) {
		t.Fatalf("expected ErrInvalidMove, got %v", err)
	}
	if g.Status != StatusAwaitingPlayer || g.MoveCount != 0 {
		t.Fatalf("state changed after invalid moves: %s, %d moves", g.Status, g.MoveCount)
	}
	for r := range before {
		for c := range before[r] {
			if before[r][c] != g.Board[r][c] {
				t.Fatalf("board changed at (%d,%d)", r, c)
			}
		}
	}
}

func TestGameWinIsAbsorbing(t *testing.T) {
	g := NewGame(true)
	chooser := &scriptedChooser{columns: []int{6, 6, 6}}
	for col := 0; col < 3; col++ {
		if _, err := g.PlayerMove(col); err != nil {
			t.Fatalf("player move %d: %v", col, err)
		}
		if _, _, err := g.PlayAI(chooser, 1); err != nil {
			t.Fatalf("AI move: %v", err)
		}
	}
	if _, err := g.PlayerMove(3); err != nil {
		t.Fatalf("winning move: %v", err)
	}

	if g.Status != StatusWon || g.Winner != PlayerPiece {
		t.Fatalf("expected player win, got %s winner=%v", g.Status, g.Winner)
	}
	if _, err := g.PlayerMove(4); !errors.Is(err, ErrGameOver) {
		t.Fatalf("expected ErrGameOver, got %v", err)
	}
	if _, _, err := g.PlayAI(chooser, 1); !errors.Is(err, ErrGameOver) {
		t.Fatalf("expected ErrGameOver for AI, got %v", err)
	}

	snap := g.Snapshot()
	if snap.Command != CommandGameOver || snap.Message != "You Win!" {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
	if snap.Winner != int(PlayerPiece) || len(snap.WinningLine) != ToWin {
		t.Fatalf("snapshot missing winner details: %+v", snap)
	}

	g.Reset()
	if g.Status != StatusAwaitingPlayer || g.MoveCount != 0 || CountPieces(g.Board, Empty) != Rows*Columns {
		t.Fatalf("reset did not restore a fresh game")
	}
}

func TestGameDraw(t *testing.T) {
	g := NewGame(false)
	g.Board = mustParse(t, drawnBoard)
	// reopen one cell so the final drop fills the board
	g.Board[0][6] = Empty

	chooser := &scriptedChooser{columns: []int{6}}
	if _, _, err := g.PlayAI(chooser, 5); err != nil {
		t.Fatalf("AI move: %v", err)
	}
	if g.Status != StatusDrawn {
		t.Fatalf("expected draw, got %s", g.Status)
	}
	if msg := g.StatusMessage(); msg != "Draw!" {
		t.Fatalf("unexpected message %q", msg)
	}
}

func TestPlayAIWithoutColumn(t *testing.T) {
	g := NewGame(false)
	if _, _, err := g.PlayAI(&scriptedChooser{}, 5); !errors.Is(err, ErrNoLegalMoves) {
		t.Fatalf("expected ErrNoLegalMoves, got %v", err)
	}
}

func TestSnapshotIsDetached(t *testing.T) {
	g := NewGame(true)
	if _, err := g.PlayerMove(3); err != nil {
		t.Fatalf("player move: %v", err)
	}
	snap := g.Snapshot()
	snap.Board[Rows-1][3] = int(AIPiece)
	if g.Board[Rows-1][3] != PlayerPiece {
		t.Fatalf("snapshot aliases the game board")
	}
	if snap.LastMove == nil || snap.LastMove.Column != 3 {
		t.Fatalf("missing last move in snapshot")
	}
	if snap.Message != "AI's turn (thinking...)" {
		t.Fatalf("unexpected message %q", snap.Message)
	}
}
