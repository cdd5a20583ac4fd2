package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const (
	MessageHumanWins    = "You won!"
	MessageOpponentWins = "You lost!"
	MessageDraw         = "It's a draw!"
	MessageEarlyDraw    = "draw!"

	promptContinue = "Press ENTER to continue..."
	promptMove     = "Enter row,col coordinates for your move (0-indexed):"
)

var introduction = []string{
	"This is a tic tac toe game.",
	"You will be playing against the computer.",
	"Below is a board with its coordinates displayed for you.",
}

// Console - line based terminal I/O for a single game session.
type Console struct {
	logger   *slog.Logger
	in       *bufio.Reader
	out      io.Writer
	renderer *Renderer
}

func New(logger *slog.Logger, in io.Reader, out io.Writer, renderer *Renderer) *Console {
	return &Console{
		logger:   logger.With("component", "console"),
		in:       bufio.NewReader(in),
		out:      out,
		renderer: renderer,
	}
}

func (that *Console) ShowIntro(dimensions entity.Dimensions) {
	for _, line := range introduction {
		that.println(line)
	}
	that.print(that.renderer.Legend(dimensions))
}

// AwaitAcknowledgment - blocks until the player presses enter. The line itself is ignored.
func (that *Console) AwaitAcknowledgment() error {
	that.println(promptContinue)

	if _, err := that.readLine(); err != nil {
		return fmt.Errorf("failed to read acknowledgment: %w", err)
	}

	return nil
}

func (that *Console) ShowBoard(board *entity.Board) {
	that.print(that.renderer.Board(board))
}

// PromptMove - asks for coordinates and returns the raw line.
func (that *Console) PromptMove() (string, error) {
	that.println(promptMove)

	line, err := that.readLine()
	if err != nil {
		return "", fmt.Errorf("failed to read move: %w", err)
	}

	return line, nil
}

func (that *Console) ShowRejection(err error) {
	message, ok := apperror.Message(err)
	if !ok {
		message = err.Error()
	}

	that.println(message)
}

func (that *Console) ShowResult(outcome entity.Outcome) {
	switch outcome {
	case entity.HumanWins:
		that.println(MessageHumanWins)
	case entity.OpponentWins:
		that.println(MessageOpponentWins)
	case entity.Draw:
		that.println(MessageDraw)
	case entity.InProgress:
		that.logger.Warn("result requested for a game in progress")
	}
}

func (that *Console) ShowEarlyDraw() {
	that.println(MessageEarlyDraw)
}

// readLine - a full line of input. Hitting the end of the stream before any input is a failure.
func (that *Console) readLine() (string, error) {
	line, err := that.in.ReadString('\n')
	if errors.Is(err, io.EOF) && line != "" {
		return line, nil
	}

	if err != nil {
		return "", fmt.Errorf("%w: %w", apperror.ErrInputStream, err)
	}

	return line, nil
}

func (that *Console) print(text string) {
	if _, err := io.WriteString(that.out, text); err != nil {
		that.logger.Debug("failed to write output", "error", err)
	}
}

func (that *Console) println(text string) {
	that.print(text + "\n")
}
