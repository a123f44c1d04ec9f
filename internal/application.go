package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/rocketscienceinc/tictactoe-console/internal/config"
	"github.com/rocketscienceinc/tictactoe-console/internal/transport/console"
	"github.com/rocketscienceinc/tictactoe-console/internal/usecase"
)

// RunApp - runs one game on the process standard input and output.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	return Run(context.Background(), logger, conf, os.Stdin, os.Stdout)
}

// Run - wires the console and the game manager and plays a single game.
func Run(ctx context.Context, logger *slog.Logger, conf *config.Config, reader io.Reader, writer io.Writer) error {
	log := logger.With("component", "app")

	gameManager := usecase.NewGameManager(logger, console.New(reader, writer), usecase.Options{
		AskNames: conf.AskNames,
		First: usecase.PlayerOptions{
			Name: conf.Players.FirstName,
			Mark: conf.Players.FirstMark,
		},
		Second: usecase.PlayerOptions{
			Name: conf.Players.SecondName,
			Mark: conf.Players.SecondMark,
		},
	})

	game, err := gameManager.Play(ctx)
	if err != nil {
		return fmt.Errorf("game stopped: %w", err)
	}

	log.Debug("Application finished", "game_id", game.ID, "state", game.State.String())

	return nil
}
