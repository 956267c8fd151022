package entity

// Mark is the symbol a player puts on the board.
type Mark string

const (
	PlayerX   Mark = "X"
	PlayerO   Mark = "O"
	PlayerTie Mark = "-"

	NoMark Mark = ""
)

// Opponent returns the other standard mark. Anything else has no opponent.
func (that Mark) Opponent() Mark {
	switch that {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return NoMark
	}
}

// IsPlayable reports whether the mark may be recorded as a turn.
// NoMark and PlayerTie are reserved for results.
func (that Mark) IsPlayable() bool {
	return that != NoMark && that != PlayerTie
}

func (that Mark) String() string {
	return string(that)
}
