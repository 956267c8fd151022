package application

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-rules/internal/config"
	"github.com/rocketscienceinc/tictactoe-rules/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-rules/internal/usecase"
)

var ErrNoMoves = errors.New("game script has no moves")

// RunApp - replays the configured game and logs its outcome.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	if len(conf.Game.Moves) == 0 {
		return ErrNoMoves
	}

	engine := tictactoe.NewEngine()
	gameManager := usecase.NewGameManager(logger, engine)

	log.Info("Replaying game", "moves", len(conf.Game.Moves))

	result, err := gameManager.Replay(conf.Game.Moves)
	if err != nil {
		return fmt.Errorf("replay failed after %d turns: %w", result.Turns, err)
	}

	if line, ok := engine.WinningLine(); ok {
		log.Info("Game won", "winner", result.Winner, "line", line, "turns", result.Turns)
		return nil
	}

	log.Info("Game result", "status", result.Status, "winner", result.Winner, "turns", result.Turns)

	return nil
}
