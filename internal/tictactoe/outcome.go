package tictactoe

import (
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

// WinLines - every row, column and diagonal of a board, in the order they are checked:
// rows, columns, main diagonal, anti-diagonal. Diagonals exist only on square boards.
func WinLines(dimensions entity.Dimensions) [][]entity.Position {
	lines := make([][]entity.Position, 0, dimensions.Rows+dimensions.Cols+2)

	for row := 0; row < dimensions.Rows; row++ {
		line := make([]entity.Position, 0, dimensions.Cols)
		for col := 0; col < dimensions.Cols; col++ {
			line = append(line, entity.Position{Row: row, Col: col})
		}
		lines = append(lines, line)
	}

	for col := 0; col < dimensions.Cols; col++ {
		line := make([]entity.Position, 0, dimensions.Rows)
		for row := 0; row < dimensions.Rows; row++ {
			line = append(line, entity.Position{Row: row, Col: col})
		}
		lines = append(lines, line)
	}

	if !dimensions.IsSquare() {
		return lines
	}

	size := dimensions.Rows
	mainDiagonal := make([]entity.Position, 0, size)
	antiDiagonal := make([]entity.Position, 0, size)
	for i := 0; i < size; i++ {
		mainDiagonal = append(mainDiagonal, entity.Position{Row: i, Col: i})
		antiDiagonal = append(antiDiagonal, entity.Position{Row: i, Col: size - 1 - i})
	}

	return append(lines, mainDiagonal, antiDiagonal)
}

// Winner - returns the state owning the first complete line, or entity.Empty if there is none.
func Winner(board *entity.Board) entity.CellState {
	for _, line := range WinLines(board.Dimensions()) {
		if owner := lineOwner(board, line); owner != entity.Empty {
			return owner
		}
	}

	return entity.Empty
}

// Evaluate - derives the outcome of the game from the board. It never modifies the board.
func Evaluate(board *entity.Board) entity.Outcome {
	switch Winner(board) {
	case entity.Human:
		return entity.HumanWins
	case entity.Opponent:
		return entity.OpponentWins
	case entity.Empty:
	}

	// the game continues until every cell is taken
	if board.IsFull() {
		return entity.Draw
	}

	return entity.InProgress
}

func lineOwner(board *entity.Board, line []entity.Position) entity.CellState {
	if len(line) == 0 {
		return entity.Empty
	}

	first := board.At(line[0])
	if first == entity.Empty {
		return entity.Empty
	}

	for _, pos := range line[1:] {
		if board.At(pos) != first {
			return entity.Empty
		}
	}

	return first
}
