package tictactoe

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/stretchr/testify/require"
)

// boardOf - builds a board from rows written with X (human), O (opponent) and - (empty).
func boardOf(t *testing.T, rows ...string) *entity.Board {
	t.Helper()

	board := entity.NewBoard(entity.Dimensions{Rows: len(rows), Cols: len(rows[0])})
	for row, line := range rows {
		require.Len(t, line, len(rows[0]))

		for col, mark := range line {
			var state entity.CellState
			switch mark {
			case 'X':
				state = entity.Human
			case 'O':
				state = entity.Opponent
			case '-':
				state = entity.Empty
			default:
				t.Fatalf("unknown mark %q", mark)
			}

			require.NoError(t, board.Set(row, col, state))
		}
	}

	return board
}
