package domain

// directions scanned for four in a row: horizontal, vertical,
// diagonal \ and diagonal /
var directions = [4][2]int{
	{0, 1},
	{1, 0},
	{1, 1},
	{-1, 1},
}

// CheckWin reports whether piece owns ToWin aligned cells anywhere on the
// board. It stops at the first run found.
func CheckWin(board Board, piece Piece) bool {
	if piece == Empty {
		return false
	}
	for row := 0; row < Rows; row++ {
		for col := 0; col < Columns; col++ {
			if board[row][col] != piece {
				continue
			}
			for _, dir := range directions {
				if runFrom(board, row, col, dir[0], dir[1], piece) {
					return true
				}
			}
		}
	}
	return false
}

// runFrom checks ToWin cells starting at (row, col) stepping by (dRow, dCol).
func runFrom(board Board, row, col, dRow, dCol int, piece Piece) bool {
	endRow := row + dRow*(ToWin-1)
	endCol := col + dCol*(ToWin-1)
	if !inBounds(endRow, endCol) {
		return false
	}
	for i := 1; i < ToWin; i++ {
		if board[row+dRow*i][col+dCol*i] != piece {
			return false
		}
	}
	return true
}

// WinningLine returns the cells of the first winning run for piece as
// [row, col] pairs, or nil if piece has not won. Renderers use it to
// highlight the result.
func WinningLine(board Board, piece Piece) [][2]int {
	if piece == Empty {
		return nil
	}
	for row := 0; row < Rows; row++ {
		for col := 0; col < Columns; col++ {
			if board[row][col] != piece {
				continue
			}
			for _, dir := range directions {
				if runFrom(board, row, col, dir[0], dir[1], piece) {
					line := make([][2]int, ToWin)
					for i := range line {
						line[i] = [2]int{row + dir[0]*i, col + dir[1]*i}
					}
					return line
				}
			}
		}
	}
	return nil
}

func inBounds(row, col int) bool {
	return row >= 0 && row < Rows && col >= 0 && col < Columns
}

// Windows calls fn for every aligned run of ToWin cells on the board:
// horizontal, vertical and both diagonals.
func Windows(board Board, fn func(window [ToWin]Piece)) {
	var w [ToWin]Piece
	for row := 0; row < Rows; row++ {
		for col := 0; col < Columns; col++ {
			for _, dir := range directions {
				endRow := row + dir[0]*(ToWin-1)
				endCol := col + dir[1]*(ToWin-1)
				if !inBounds(endRow, endCol) {
					continue
				}
				for i := 0; i < ToWin; i++ {
					w[i] = board[row+dir[0]*i][col+dir[1]*i]
				}
				fn(w)
			}
		}
	}
}
