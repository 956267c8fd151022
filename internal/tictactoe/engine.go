package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-rules/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-rules/internal/entity"
)

// Engine validates and records the moves of a single game.
// It is not safe for concurrent use.
type Engine struct {
	turns []entity.Turn
}

// NewEngine returns an engine with an empty history.
func NewEngine() *Engine {
	return &Engine{
		turns: make([]entity.Turn, 0, boardWidth*boardHeight),
	}
}

// Play records a move if it is legal, otherwise the history is left untouched.
func (that *Engine) Play(mark entity.Mark, x, y int) error {
	if err := that.validateMove(mark, x, y); err != nil {
		return err
	}

	that.turns = append(that.turns, entity.Turn{Mark: mark, X: x, Y: y})

	return nil
}

// validateMove - checks if the move is valid. The order of checks decides which error a caller sees.
func (that *Engine) validateMove(mark entity.Mark, x, y int) error {
	if winner, ok := that.GetWinner(); ok {
		return fmt.Errorf("%w: won by %s", apperror.ErrGameAlreadyEnded, winner)
	}

	if !mark.IsPlayable() {
		return fmt.Errorf("%w: %q", apperror.ErrInvalidMark, mark)
	}

	if len(that.turns) == 0 && mark != entity.PlayerX {
		return fmt.Errorf("%w: %s can't start, %s goes first", apperror.ErrInvalidFirstPlayer, mark, entity.PlayerX)
	}

	if last, err := that.GetLastTurn(); err == nil && last.Mark == mark {
		return fmt.Errorf("%w: %s played the previous turn", apperror.ErrConsecutiveTurnBySamePlayer, mark)
	}

	if that.isOccupied(x, y) {
		return fmt.Errorf("%w: cell (%d,%d)", apperror.ErrCellAlreadyOccupied, x, y)
	}

	if !isRowAllowed(y) {
		return fmt.Errorf("%w: row %d", apperror.ErrOutOfBoundsRow, y)
	}

	if !isColumnAllowed(x) {
		return fmt.Errorf("%w: column %d", apperror.ErrOutOfBoundsColumn, x)
	}

	return nil
}

func (that *Engine) isOccupied(x, y int) bool {
	for _, turn := range that.turns {
		if turn.X == x && turn.Y == y {
			return true
		}
	}

	return false
}

// GetWinner returns the mark owning the first complete line, if there is one.
func (that *Engine) GetWinner() (entity.Mark, bool) {
	winner, _, ok := that.winningLine()

	return winner, ok
}

// WinningLine names the line that decided the game, e.g. "row 1".
func (that *Engine) WinningLine() (string, bool) {
	_, name, ok := that.winningLine()

	return name, ok
}

func (that *Engine) winningLine() (entity.Mark, string, bool) {
	for _, candidate := range winLines {
		if mark, ok := candidate.owner(that.turns); ok {
			return mark, candidate.name, true
		}
	}

	return entity.NoMark, "", false
}

// GetLastTurn returns the most recent turn, or ErrEmptyHistory before the first one.
func (that *Engine) GetLastTurn() (entity.Turn, error) {
	if len(that.turns) == 0 {
		return entity.Turn{}, apperror.ErrEmptyHistory
	}

	return that.turns[len(that.turns)-1], nil
}

// Turns returns a copy of the history in play order.
func (that *Engine) Turns() []entity.Turn {
	turns := make([]entity.Turn, len(that.turns))
	copy(turns, that.turns)

	return turns
}

// IsFull reports whether every cell has been played.
func (that *Engine) IsFull() bool {
	return len(that.turns) == boardWidth*boardHeight
}
