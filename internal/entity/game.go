package entity

import "fmt"

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
)

// Turn is an accepted move. X is the column and Y the row, both starting at 1.
type Turn struct {
	Mark Mark `json:"mark"`
	X    int  `json:"x"`
	Y    int  `json:"y"`
}

func (that Turn) String() string {
	return fmt.Sprintf("%s(%d,%d)", that.Mark, that.X, that.Y)
}

// Move is a requested move, as read from a game script.
type Move struct {
	Mark Mark `yaml:"mark" json:"mark"`
	X    int  `yaml:"x"    json:"x"`
	Y    int  `yaml:"y"    json:"y"`
}

// Result is a snapshot of a game as seen by callers of the engine.
type Result struct {
	Status   string `json:"status"`
	Winner   Mark   `json:"winner"`
	Turns    int    `json:"turns"`
	LastTurn *Turn  `json:"last_turn,omitempty"`
}

func (that *Result) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Result) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Result) IsTie() bool {
	return that.IsFinished() && that.Winner == PlayerTie
}
