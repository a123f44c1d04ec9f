package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/board"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const (
	namePrompt      = "Player %d, what's your name?"
	movePrompt      = "%s, choose an empty tile by typing its identifier in a column-row format (for example, A1 for top left)."
	occupiedMessage = "This tile has already been selected! Please choose another one."
	invalidMessage  = "Your answer isn't valid, please use the column-row notation (i.e. A1, B3, C2...)"
	winMessage      = "%s wins!"
	drawMessage     = "It's a draw!"
)

type prompter interface {
	Println(message string) error
	Ask(ctx context.Context, prompt string) (string, error)
}

type PlayerOptions struct {
	Name string
	Mark string
}

type Options struct {
	AskNames bool
	First    PlayerOptions
	Second   PlayerOptions
}

// GameManager runs one game on the console: select move, validate, record, render, check for the end.
type GameManager struct {
	logger  *slog.Logger
	console prompter
	options Options

	newID func() string
}

func NewGameManager(logger *slog.Logger, console prompter, options Options) *GameManager {
	return &GameManager{
		logger:  logger.With("component", "game_manager"),
		console: console,
		options: options,

		newID: uuid.NewString,
	}
}

// Play - runs the turn loop until a player wins or the board is full.
// The game is returned even on error so the caller can inspect how far it got.
func (that *GameManager) Play(ctx context.Context) (*entity.Game, error) {
	first, err := that.newPlayer(ctx, 1, that.options.First)
	if err != nil {
		return nil, err
	}

	second, err := that.newPlayer(ctx, 2, that.options.Second)
	if err != nil {
		return nil, err
	}

	game := entity.NewGame(that.newID(), first, second)
	grid := board.New()

	log := that.logger.With("game_id", game.ID)
	log.Info("game started", "player1", first.Name, "player2", second.Name)

	if err = that.console.Println(grid.String()); err != nil {
		return game, err
	}

	for !game.IsFinished() {
		if err = that.playTurn(ctx, log, game, grid); err != nil {
			log.Warn("game aborted", "moves", game.Moves, "error", err)
			return game, err
		}
	}

	if err = that.announce(game); err != nil {
		return game, err
	}

	if winner := game.Winner(); winner != nil {
		log.Info("game finished", "state", game.State.String(), "moves", game.Moves, "winner_cells", winner.Cells())
	} else {
		log.Info("game finished", "state", game.State.String(), "moves", game.Moves)
	}

	return game, nil
}

func (that *GameManager) newPlayer(ctx context.Context, seat int, options PlayerOptions) (*entity.Player, error) {
	name := options.Name

	if that.options.AskNames {
		answer, err := that.console.Ask(ctx, fmt.Sprintf(namePrompt, seat))
		if err != nil {
			return nil, fmt.Errorf("failed to read player %d name: %w", seat, err)
		}

		if answer = strings.TrimSpace(answer); answer != "" {
			name = answer
		}
	}

	return entity.NewPlayer(name, entity.Mark(options.Mark)), nil
}

func (that *GameManager) playTurn(ctx context.Context, log *slog.Logger, game *entity.Game, grid *board.Board) error {
	mover := game.CurrentPlayer()

	cell, err := that.selectMove(ctx, log, game, mover)
	if err != nil {
		return err
	}

	if err = recordMove(game, grid, cell); err != nil {
		return err
	}

	log.Debug("move accepted", "player", mover.Name, "cell", cell.String(), "move", game.Moves)

	return that.console.Println(grid.String())
}

// recordMove - puts the current player's mark on the board, then records the move in the game.
// The board goes first so a refused placement leaves the game untouched.
func recordMove(game *entity.Game, grid *board.Board, cell entity.Cell) error {
	if err := game.ConfirmOngoingState(); err != nil {
		return err
	}

	if err := grid.Place(cell, game.CurrentPlayer().Mark); err != nil {
		return fmt.Errorf("failed to place mark: %w", err)
	}

	if _, err := game.MakeTurn(cell); err != nil {
		return fmt.Errorf("failed to make turn: %w", err)
	}

	return nil
}

// selectMove - keeps asking until the answer is a well-formed, unclaimed cell.
func (that *GameManager) selectMove(ctx context.Context, log *slog.Logger, game *entity.Game, mover *entity.Player) (entity.Cell, error) {
	answer, err := that.console.Ask(ctx, fmt.Sprintf(movePrompt, mover.Name))

	for {
		if err != nil {
			return entity.Cell{}, fmt.Errorf("failed to read move: %w", err)
		}

		cell, validationErr := game.ValidateMove(answer)

		var reprompt string
		switch {
		case validationErr == nil:
			return cell, nil
		case errors.Is(validationErr, apperror.ErrCellOccupied):
			reprompt = occupiedMessage
		case errors.Is(validationErr, apperror.ErrInvalidCell):
			reprompt = invalidMessage
		default:
			return entity.Cell{}, validationErr
		}

		log.Debug("move rejected", "player", mover.Name, "input", answer, "error", validationErr)

		answer, err = that.console.Ask(ctx, reprompt)
	}
}

func (that *GameManager) announce(game *entity.Game) error {
	switch {
	case game.Winner() != nil:
		return that.console.Println(fmt.Sprintf(winMessage, game.Winner().Name))
	case game.IsDraw():
		return that.console.Println(drawMessage)
	default:
		return fmt.Errorf("no result to announce in state %s", game.State)
	}
}
