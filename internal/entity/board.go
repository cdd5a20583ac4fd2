package entity

import (
	"errors"
	"fmt"
)

var ErrOutOfBounds = errors.New("cell is out of bounds")

// Dimensions - the size of a board.
type Dimensions struct {
	Rows int
	Cols int
}

// StandardDimensions - the classic 3x3 tic-tac-toe board.
var StandardDimensions = Dimensions{Rows: 3, Cols: 3}

func (that Dimensions) Contains(row, col int) bool {
	return row >= 0 && row < that.Rows && col >= 0 && col < that.Cols
}

func (that Dimensions) IsSquare() bool {
	return that.Rows == that.Cols
}

// Board - a fixed grid of cells stored row-major. It only stores state,
// checking whether a move is legal is up to the caller.
type Board struct {
	dimensions Dimensions
	cells      []CellState
}

func NewBoard(dimensions Dimensions) *Board {
	return &Board{
		dimensions: dimensions,
		cells:      make([]CellState, dimensions.Rows*dimensions.Cols),
	}
}

func (that *Board) Dimensions() Dimensions {
	return that.dimensions
}

func (that *Board) Get(row, col int) (CellState, error) {
	if !that.dimensions.Contains(row, col) {
		return Empty, fmt.Errorf("%w: %d,%d", ErrOutOfBounds, row, col)
	}

	return that.cells[that.index(row, col)], nil
}

func (that *Board) Set(row, col int, state CellState) error {
	if !that.dimensions.Contains(row, col) {
		return fmt.Errorf("%w: %d,%d", ErrOutOfBounds, row, col)
	}

	that.cells[that.index(row, col)] = state

	return nil
}

// At - returns the state of a position known to be on the board.
func (that *Board) At(pos Position) CellState {
	state, err := that.Get(pos.Row, pos.Col)
	if err != nil {
		panic(err)
	}

	return state
}

func (that *Board) IsFull() bool {
	for _, cell := range that.cells {
		if cell == Empty {
			return false
		}
	}

	return true
}

func (that *Board) Clone() *Board {
	cells := make([]CellState, len(that.cells))
	copy(cells, that.cells)

	return &Board{dimensions: that.dimensions, cells: cells}
}

func (that *Board) index(row, col int) int {
	return row*that.dimensions.Cols + col
}
