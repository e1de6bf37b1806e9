package domain

import "strings"

// Board is a Rows x Columns grid. board[0] is the top row and
// board[Rows-1] the bottom row, so pieces fill each column from the
// highest index upward.
type Board [][]Piece

func NewBoard() Board {
	board := make(Board, Rows)
	for i := range board {
		board[i] = make([]Piece, Columns)
	}
	return board
}

func IsValidMove(board Board, column int) bool {
	if column < 0 || column >= Columns {
		return false
	}

	// a column is full once its top cell is taken
	return board[0][column] == Empty
}

// LandingRow returns the row a piece dropped into column would occupy,
// or -1 if the column is out of range or full.
func LandingRow(board Board, column int) int {
	if !IsValidMove(board, column) {
		return -1
	}
	for row := Rows - 1; row >= 0; row-- {
		if board[row][column] == Empty {
			return row
		}
	}
	return -1
}

// DropPiece places piece in the lowest empty cell of column. It returns
// false and leaves the board untouched when the column is out of range
// or already full.
func DropPiece(board Board, column int, piece Piece) bool {
	row := LandingRow(board, column)
	if row < 0 {
		return false
	}
	board[row][column] = piece
	return true
}

// ValidLocations lists the playable columns in ascending order.
func ValidLocations(board Board) []int {
	validMoves := make([]int, 0, Columns)
	for col := 0; col < Columns; col++ {
		if board[0][col] == Empty {
			validMoves = append(validMoves, col)
		}
	}
	return validMoves
}

func IsBoardFull(board Board) bool {
	return len(ValidLocations(board)) == 0
}

// this creates a deep copy of the board
func CopyBoard(board Board) Board {
	newBoard := make(Board, len(board))
	for i := range board {
		newBoard[i] = make([]Piece, len(board[i]))
		copy(newBoard[i], board[i])
	}
	return newBoard
}

// CountPieces counts the cells holding piece.
func CountPieces(board Board, piece Piece) int {
	count := 0
	for _, row := range board {
		for _, cell := range row {
			if cell == piece {
				count++
			}
		}
	}
	return count
}

// Ints converts the board into plain integers for renderers and JSON.
func (b Board) Ints() [][]int {
	intBoard := make([][]int, len(b))
	for i := range b {
		intBoard[i] = make([]int, len(b[i]))
		for j := range b[i] {
			intBoard[i][j] = int(b[i][j])
		}
	}
	return intBoard
}

// String renders the board top row first, one line per row.
func (b Board) String() string {
	var sb strings.Builder
	for _, row := range b {
		for c, cell := range row {
			if c > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(cell.Symbol())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// ParseBoard builds a board from Rows lines of Columns symbols
// ('X', 'O' or '.'), whitespace ignored. It is meant for fixtures and
// replaying logged positions.
func ParseBoard(s string) (Board, error) {
	board := NewBoard()
	row := 0
	for _, line := range strings.Split(strings.TrimSpace(s), "\n") {
		line = strings.ReplaceAll(strings.TrimSpace(line), " ", "")
		if line == "" {
			continue
		}
		if row >= Rows || len(line) != Columns {
			return nil, ErrInvalidBoard
		}
		for c, ch := range line {
			switch ch {
			case 'X':
				board[row][c] = PlayerPiece
			case 'O':
				board[row][c] = AIPiece
			case '.':
			default:
				return nil, ErrInvalidBoard
			}
		}
		row++
	}
	if row != Rows {
		return nil, ErrInvalidBoard
	}
	return board, nil
}

// IsGravityConsistent reports whether every column is filled contiguously
// from the bottom row upward.
func IsGravityConsistent(board Board) bool {
	for c := 0; c < Columns; c++ {
		seenEmpty := false
		for r := Rows - 1; r >= 0; r-- {
			if board[r][c] == Empty {
				seenEmpty = true
			} else if seenEmpty {
				return false
			}
		}
	}
	return true
}
