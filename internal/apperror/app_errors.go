package apperror

import "errors"

var (
	ErrGameAlreadyEnded            = errors.New("game is already finished")
	ErrInvalidMark                 = errors.New("mark can't be played")
	ErrInvalidFirstPlayer          = errors.New("invalid first player")
	ErrConsecutiveTurnBySamePlayer = errors.New("it's not your turn")
	ErrCellAlreadyOccupied         = errors.New("cell is already occupied")
	ErrOutOfBoundsRow              = errors.New("row is out of bounds")
	ErrOutOfBoundsColumn           = errors.New("column is out of bounds")
	ErrEmptyHistory                = errors.New("no turns have been played")
)
