package tictactoe

import (
	"errors"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

var ErrBoardFull = errors.New("no empty cell left")

// Opponent - the automated player. It takes the first empty cell in row-major
// order and makes no attempt to win or block.
type Opponent struct{}

func NewOpponent() *Opponent {
	return &Opponent{}
}

func (that *Opponent) NextMove(board *entity.Board) (entity.Position, error) {
	dimensions := board.Dimensions()

	for row := 0; row < dimensions.Rows; row++ {
		for col := 0; col < dimensions.Cols; col++ {
			pos := entity.Position{Row: row, Col: col}
			if board.At(pos) == entity.Empty {
				return pos, nil
			}
		}
	}

	return entity.Position{}, ErrBoardFull
}
