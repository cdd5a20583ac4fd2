package application

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-console/internal/config"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-console/internal/transport/console"
	"github.com/rocketscienceinc/tictactoe-console/internal/usecase"
)

// RunApp - plays one game on the given terminal streams.
func RunApp(logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app", "session", uuid.NewString())

	view := console.New(log, in, out, console.NewRenderer(conf.Display))
	session := usecase.NewGameSession(log, view, tictactoe.NewOpponent(), entity.StandardDimensions)

	result, err := session.Run()
	if err != nil {
		return fmt.Errorf("game session failed: %w", err)
	}

	log.Debug("session closed", "outcome", result.Outcome.String(), "early_draw", result.EarlyDraw)

	return nil
}
