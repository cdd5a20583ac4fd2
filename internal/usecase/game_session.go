package usecase

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/tictactoe"
)

// State - where the game loop currently is.
type State uint8

const (
	AwaitingHumanMove State = iota
	AwaitingOpponentMove
	Finished
)

func (that State) String() string {
	switch that {
	case AwaitingHumanMove:
		return "awaiting human move"
	case AwaitingOpponentMove:
		return "awaiting opponent move"
	case Finished:
		return "finished"
	default:
		return "unknown"
	}
}

type moveSelector interface {
	NextMove(board *entity.Board) (entity.Position, error)
}

type gameView interface {
	ShowIntro(dimensions entity.Dimensions)
	AwaitAcknowledgment() error
	ShowBoard(board *entity.Board)
	PromptMove() (string, error)
	ShowRejection(err error)
	ShowResult(outcome entity.Outcome)
	ShowEarlyDraw()
}

// Result - how a session ended.
type Result struct {
	Outcome       entity.Outcome
	EarlyDraw     bool // the opponent found no empty cell on its turn
	HumanMoves    int
	OpponentMoves int
}

// GameSession - runs one game between the player at the console and the opponent.
// It owns the board for its whole lifetime.
type GameSession struct {
	logger   *slog.Logger
	view     gameView
	opponent moveSelector

	board      *entity.Board
	state      State
	boardShown bool
	result     Result
}

func NewGameSession(logger *slog.Logger, view gameView, opponent moveSelector, dimensions entity.Dimensions) *GameSession {
	return &GameSession{
		logger:   logger.With("component", "game"),
		view:     view,
		opponent: opponent,
		board:    entity.NewBoard(dimensions),
		state:    AwaitingHumanMove,
	}
}

func (that *GameSession) State() State {
	return that.state
}

// Run - plays the game to the end. Only failures to read input are returned as errors.
func (that *GameSession) Run() (Result, error) {
	that.view.ShowIntro(that.board.Dimensions())

	if err := that.view.AwaitAcknowledgment(); err != nil {
		return that.result, fmt.Errorf("failed to start game: %w", err)
	}

	that.logger.Info("game started")

	for that.state != Finished {
		var err error

		switch that.state {
		case AwaitingHumanMove:
			err = that.humanTurn()
		case AwaitingOpponentMove:
			err = that.opponentTurn()
		case Finished:
		}

		if err != nil {
			return that.result, err
		}
	}

	that.finish()

	return that.result, nil
}

func (that *GameSession) humanTurn() error {
	that.view.ShowBoard(that.board)

	pos, err := that.readHumanMove()
	if err != nil {
		return err
	}

	if err = that.board.Set(pos.Row, pos.Col, entity.Human); err != nil {
		return fmt.Errorf("failed to place human move: %w", err)
	}
	that.result.HumanMoves++

	that.view.ShowBoard(that.board)
	that.boardShown = true

	that.logger.Debug("human moved", "row", pos.Row, "col", pos.Col)
	that.advance(AwaitingOpponentMove)

	return nil
}

// readHumanMove - asks until the player enters a legal move.
func (that *GameSession) readHumanMove() (entity.Position, error) {
	for {
		input, err := that.view.PromptMove()
		if err != nil {
			return entity.Position{}, fmt.Errorf("human turn aborted: %w", err)
		}

		pos, err := tictactoe.ParseMove(input, that.board)
		if err == nil {
			return pos, nil
		}

		if !apperror.IsRecoverable(err) {
			return entity.Position{}, fmt.Errorf("failed to validate move: %w", err)
		}

		that.logger.Debug("move rejected", "input", input, "error", err)
		that.view.ShowRejection(err)
	}
}

func (that *GameSession) opponentTurn() error {
	pos, err := that.opponent.NextMove(that.board)
	if errors.Is(err, tictactoe.ErrBoardFull) {
		that.logger.Info("opponent found no empty cell")
		that.result.Outcome = entity.Draw
		that.result.EarlyDraw = true
		that.state = Finished

		return nil
	}

	if err != nil {
		return fmt.Errorf("opponent failed to choose a move: %w", err)
	}

	if err = that.board.Set(pos.Row, pos.Col, entity.Opponent); err != nil {
		return fmt.Errorf("failed to place opponent move: %w", err)
	}
	that.result.OpponentMoves++
	that.boardShown = false

	that.logger.Debug("opponent moved", "row", pos.Row, "col", pos.Col)
	that.advance(AwaitingHumanMove)

	return nil
}

// advance - moves to next unless the last half-turn decided the game.
func (that *GameSession) advance(next State) {
	outcome := tictactoe.Evaluate(that.board)
	that.result.Outcome = outcome

	if outcome.IsFinished() {
		that.state = Finished
		return
	}

	that.state = next
}

func (that *GameSession) finish() {
	that.logger.Info("game finished",
		"outcome", that.result.Outcome.String(),
		"human_moves", that.result.HumanMoves,
		"opponent_moves", that.result.OpponentMoves,
	)

	if that.result.EarlyDraw {
		that.view.ShowEarlyDraw()
		return
	}

	if !that.boardShown {
		that.view.ShowBoard(that.board)
	}

	that.view.ShowResult(that.result.Outcome)
}
