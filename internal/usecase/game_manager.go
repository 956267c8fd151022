package usecase

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/rocketscienceinc/tictactoe-rules/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-rules/internal/entity"
)

type rulesEngine interface {
	Play(mark entity.Mark, x, y int) error
	GetWinner() (entity.Mark, bool)
	GetLastTurn() (entity.Turn, error)
	Turns() []entity.Turn
	IsFull() bool
}

// GameManager drives one engine and turns its answers into results.
type GameManager struct {
	logger *slog.Logger

	mu     sync.Mutex
	engine rulesEngine
}

func NewGameManager(logger *slog.Logger, engine rulesEngine) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),
		engine: engine,
	}
}

func (that *GameManager) MakeTurn(mark entity.Mark, x, y int) (*entity.Result, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.makeTurn(mark, x, y)
}

func (that *GameManager) makeTurn(mark entity.Mark, x, y int) (*entity.Result, error) {
	log := that.logger.With("method", "MakeTurn", "mark", mark, "x", x, "y", y)

	if err := that.engine.Play(mark, x, y); err != nil {
		log.Debug("turn rejected", "error", err)

		return that.result(), fmt.Errorf("failed make turn: %w", err)
	}

	result := that.result()
	if result.IsFinished() {
		log.Info("game finished", "winner", result.Winner, "turns", result.Turns)
	} else {
		log.Debug("turn accepted", "turns", result.Turns)
	}

	return result, nil
}

// Replay plays moves in order and stops at the first rejected one.
func (that *GameManager) Replay(moves []entity.Move) (*entity.Result, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	for i, move := range moves {
		if _, err := that.makeTurn(move.Mark, move.X, move.Y); err != nil {
			return that.result(), fmt.Errorf("move %d: %w", i+1, err)
		}
	}

	return that.result(), nil
}

func (that *GameManager) Result() *entity.Result {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.result()
}

func (that *GameManager) result() *entity.Result {
	result := &entity.Result{
		Status: entity.StatusOngoing,
		Turns:  len(that.engine.Turns()),
	}

	last, err := that.engine.GetLastTurn()
	switch {
	case err == nil:
		result.LastTurn = &last
	case !errors.Is(err, apperror.ErrEmptyHistory):
		that.logger.Error("failed to get last turn", "error", err)
	}

	switch winner, ok := that.engine.GetWinner(); {
	// one player wins
	case ok:
		result.Winner = winner
		result.Status = entity.StatusFinished
	// tie
	case that.engine.IsFull():
		result.Winner = entity.PlayerTie
		result.Status = entity.StatusFinished
	}

	return result
}
