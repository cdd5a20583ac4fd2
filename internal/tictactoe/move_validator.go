package tictactoe

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const coordinateSeparator = ","

// ParseMove - turns a raw "row,col" line into a position on the board.
// It reports why the input was rejected and never changes the board.
func ParseMove(input string, board *entity.Board) (entity.Position, error) {
	tokens := strings.Split(strings.TrimSpace(input), coordinateSeparator)
	if len(tokens) != 2 {
		return entity.Position{}, fmt.Errorf("%w: %q", apperror.ErrMalformedInput, input)
	}

	row, err := parseCoordinate(tokens[0])
	if err != nil {
		return entity.Position{}, err
	}

	col, err := parseCoordinate(tokens[1])
	if err != nil {
		return entity.Position{}, err
	}

	if err = validateMove(board, row, col); err != nil {
		return entity.Position{}, err
	}

	return entity.Position{Row: row, Col: col}, nil
}

// validateMove - checks if the cell exists and is free.
func validateMove(board *entity.Board, row, col int) error {
	if !board.Dimensions().Contains(row, col) {
		return fmt.Errorf("%w: %d,%d", apperror.ErrOutOfBoundsCoordinate, row, col)
	}

	if board.At(entity.Position{Row: row, Col: col}) != entity.Empty {
		return fmt.Errorf("%w: %d,%d", apperror.ErrOccupiedCell, row, col)
	}

	return nil
}

func parseCoordinate(token string) (int, error) {
	token = strings.TrimSpace(token)

	value, err := strconv.ParseUint(token, 10, 31)
	if errors.Is(err, strconv.ErrRange) {
		// a number, just not one that fits on any board
		return 0, fmt.Errorf("%w: %s", apperror.ErrOutOfBoundsCoordinate, token)
	}

	if err != nil {
		return 0, fmt.Errorf("%w: %q", apperror.ErrNonNumericCoordinate, token)
	}

	return int(value), nil
}
