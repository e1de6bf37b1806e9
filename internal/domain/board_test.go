package domain

import (
	"math/rand"
	"reflect"
	"testing"
)

// drawnBoard is full with no four in a row for either piece.
const drawnBoard = `
X O X O X O X
X O X O X O X
O X O X O X O
O X O X O X O
X O X O X O X
X O X O X O X`

func mustParse(t *testing.T, s string) Board {
	t.Helper()
	b, err := ParseBoard(s)
	if err != nil {
		t.Fatalf("parse board: %v", err)
	}
	return b
}

func TestNewBoardIsEmpty(t *testing.T) {
	b := NewBoard()
	if len(b) != Rows {
		t.Fatalf("expected %d rows, got %d", Rows, len(b))
	}
	for r, row := range b {
		if len(row) != Columns {
			t.Fatalf("row %d: expected %d columns, got %d", r, Columns, len(row))
		}
		for c, cell := range row {
			if cell != Empty {
				t.Fatalf("cell (%d,%d) not empty: %v", r, c, cell)
			}
		}
	}
	if got := ValidLocations(b); !reflect.DeepEqual(got, []int{0, 1, 2, 3, 4, 5, 6}) {
		t.Fatalf("unexpected valid locations %v", got)
	}
}

func TestDropPieceFallsToLowestEmptyRow(t *testing.T) {
	b := NewBoard()
	if !DropPiece(b, 2, PlayerPiece) {
		t.Fatalf("first drop rejected")
	}
	if b[Rows-1][2] != PlayerPiece {
		t.Fatalf("expected piece on bottom row, board:\n%s", b)
	}
	if !DropPiece(b, 2, AIPiece) {
		t.Fatalf("second drop rejected")
	}
	if b[Rows-2][2] != AIPiece {
		t.Fatalf("expected piece stacked above, board:\n%s", b)
	}
}

func TestDropPieceRejectsInvalidColumns(t *testing.T) {
	tests := []struct {
		name   string
		column int
	}{
		{name: "negative", column: -1},
		{name: "past last column", column: Columns},
		{name: "far out of range", column: 100},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			b := NewBoard()
			before := CopyBoard(b)
			if DropPiece(b, tt.column, PlayerPiece) {
				t.Fatalf("drop into column %d accepted", tt.column)
			}
			if !reflect.DeepEqual(b, before) {
				t.Fatalf("board changed after rejected drop")
			}
			if LandingRow(b, tt.column) != -1 {
				t.Fatalf("expected landing row -1 for column %d", tt.column)
			}
		})
	}
}

func TestDropPieceOnFullColumnLeavesBoardUnchanged(t *testing.T) {
	b := NewBoard()
	for i := 0; i < Rows; i++ {
		piece := PlayerPiece
		if i%2 == 1 {
			piece = AIPiece
		}
		if !DropPiece(b, 0, piece) {
			t.Fatalf("drop %d rejected before column was full", i)
		}
	}

	before := CopyBoard(b)
	for i := 0; i < 3; i++ {
		if DropPiece(b, 0, PlayerPiece) {
			t.Fatalf("drop into full column accepted on attempt %d", i)
		}
		if !reflect.DeepEqual(b, before) {
			t.Fatalf("board changed after rejected drop %d", i)
		}
	}
	for _, col := range ValidLocations(b) {
		if col == 0 {
			t.Fatalf("full column listed as valid")
		}
	}
}

func TestRandomDropsKeepGravityInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for game := 0; game < 50; game++ {
		b := NewBoard()
		piece := PlayerPiece
		for !IsBoardFull(b) {
			valid := ValidLocations(b)
			col := valid[rng.Intn(len(valid))]
			if !DropPiece(b, col, piece) {
				t.Fatalf("valid column %d rejected", col)
			}
			if !IsGravityConsistent(b) {
				t.Fatalf("gravity broken after drop in %d:\n%s", col, b)
			}
			if IsBoardFull(b) != (len(ValidLocations(b)) == 0) {
				t.Fatalf("IsBoardFull disagrees with ValidLocations")
			}
			piece = piece.Opponent()
		}
		if CountPieces(b, Empty) != 0 {
			t.Fatalf("full board still has empty cells")
		}
	}
}

func TestCopyBoardIsDeep(t *testing.T) {
	b := NewBoard()
	DropPiece(b, 3, PlayerPiece)
	cp := CopyBoard(b)
	DropPiece(cp, 3, AIPiece)

	if b[Rows-2][3] != Empty {
		t.Fatalf("mutating the copy changed the original")
	}
	if cp[Rows-1][3] != PlayerPiece {
		t.Fatalf("copy lost original contents")
	}
}

func TestParseBoardRoundTrip(t *testing.T) {
	b := mustParse(t, drawnBoard)
	again := mustParse(t, b.String())
	if !reflect.DeepEqual(b, again) {
		t.Fatalf("round trip mismatch:\n%s\n%s", b, again)
	}

	if _, err := ParseBoard("X O X"); err != ErrInvalidBoard {
		t.Fatalf("expected ErrInvalidBoard for short input, got %v", err)
	}
	if _, err := ParseBoard(drawnBoard + "\nX O X O X O X"); err != ErrInvalidBoard {
		t.Fatalf("expected ErrInvalidBoard for extra row, got %v", err)
	}
}

func TestFullBoardHasNoValidLocations(t *testing.T) {
	b := mustParse(t, drawnBoard)
	if !IsBoardFull(b) {
		t.Fatalf("expected full board")
	}
	if len(ValidLocations(b)) != 0 {
		t.Fatalf("expected no valid locations, got %v", ValidLocations(b))
	}
	if CheckWin(b, PlayerPiece) || CheckWin(b, AIPiece) {
		t.Fatalf("drawn board reports a win")
	}
}
