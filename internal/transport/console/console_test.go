package console

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/config"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var defaultDisplay = config.Display{
	HumanMarker:    "X",
	OpponentMarker: "O",
	EmptyMarker:    "-",
	SeparatorWidth: 39,
}

func newTestConsole(input string) (*Console, *bytes.Buffer) {
	out := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return New(logger, strings.NewReader(input), out, NewRenderer(defaultDisplay)), out
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestRenderer_Board(t *testing.T) {
	// Given: a board with one mark of each player
	board := entity.NewBoard(entity.StandardDimensions)
	require.NoError(t, board.Set(0, 0, entity.Human))
	require.NoError(t, board.Set(1, 2, entity.Opponent))

	// When: rendering it
	got := NewRenderer(defaultDisplay).Board(board)

	// Then: each row shows padded markers between separator lines
	separator := strings.Repeat("=", 39)
	want := "\n" + separator + "\n" +
		" X  -  - \n" +
		" -  -  O \n" +
		" -  -  - \n" +
		separator + "\n"
	assert.Equal(t, want, got)
}

func TestRenderer_CustomMarkers(t *testing.T) {
	renderer := NewRenderer(config.Display{HumanMarker: "#", OpponentMarker: "@", EmptyMarker: ".", SeparatorWidth: 3})
	board := entity.NewBoard(entity.Dimensions{Rows: 1, Cols: 3})
	require.NoError(t, board.Set(0, 1, entity.Human))
	require.NoError(t, board.Set(0, 2, entity.Opponent))

	assert.Equal(t, "\n===\n .  #  @ \n===\n", renderer.Board(board))
}

func TestRenderer_Legend(t *testing.T) {
	got := NewRenderer(defaultDisplay).Legend(entity.StandardDimensions)

	want := "0,0|0,1|0,2\n" +
		"---|---|---\n" +
		"1,0|1,1|1,2\n" +
		"---|---|---\n" +
		"2,0|2,1|2,2\n"
	assert.Equal(t, want, got)
}

func TestConsole_ShowIntro(t *testing.T) {
	c, out := newTestConsole("")

	c.ShowIntro(entity.StandardDimensions)

	assert.True(t, strings.HasPrefix(out.String(), "This is a tic tac toe game.\n"))
	assert.Contains(t, out.String(), "2,0|2,1|2,2\n")
}

func TestConsole_AwaitAcknowledgment(t *testing.T) {
	t.Run("Any line is accepted", func(t *testing.T) {
		c, out := newTestConsole("whatever\n")

		require.NoError(t, c.AwaitAcknowledgment())
		assert.Equal(t, "Press ENTER to continue...\n", out.String())
	})

	t.Run("End of input is fatal", func(t *testing.T) {
		c, _ := newTestConsole("")

		err := c.AwaitAcknowledgment()

		require.ErrorIs(t, err, apperror.ErrInputStream)
		require.ErrorIs(t, err, io.EOF)
	})
}

func TestConsole_PromptMove(t *testing.T) {
	t.Run("Reads lines in order", func(t *testing.T) {
		c, out := newTestConsole("1,1\n2,2")

		first, err := c.PromptMove()
		require.NoError(t, err)
		assert.Equal(t, "1,1\n", first)

		// the last line may come without a newline
		second, err := c.PromptMove()
		require.NoError(t, err)
		assert.Equal(t, "2,2", second)

		assert.Equal(t, 2, strings.Count(out.String(), promptMove))

		_, err = c.PromptMove()
		require.ErrorIs(t, err, apperror.ErrInputStream)
	})

	t.Run("Transport failure is fatal", func(t *testing.T) {
		logger := slog.New(slog.NewTextHandler(io.Discard, nil))
		c := New(logger, failingReader{}, io.Discard, NewRenderer(defaultDisplay))

		_, err := c.PromptMove()

		require.ErrorIs(t, err, apperror.ErrInputStream)
		assert.Contains(t, err.Error(), "broken pipe")
	})
}

func TestConsole_Messages(t *testing.T) {
	tests := []struct {
		name string
		show func(c *Console)
		want string
	}{
		{"Human wins", func(c *Console) { c.ShowResult(entity.HumanWins) }, "You won!\n"},
		{"Opponent wins", func(c *Console) { c.ShowResult(entity.OpponentWins) }, "You lost!\n"},
		{"Draw", func(c *Console) { c.ShowResult(entity.Draw) }, "It's a draw!\n"},
		{"In progress prints nothing", func(c *Console) { c.ShowResult(entity.InProgress) }, ""},
		{"Early draw", func(c *Console) { c.ShowEarlyDraw() }, "draw!\n"},
		{"Occupied rejection", func(c *Console) { c.ShowRejection(apperror.ErrOccupiedCell) }, "Invalid move. Cell is already occupied. Try again.\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, out := newTestConsole("")

			tt.show(c)

			assert.Equal(t, tt.want, out.String())
		})
	}
}
