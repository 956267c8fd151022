package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResultStatusMethods(t *testing.T) {
	t.Run("IsFinished returns true when result status is finished", func(t *testing.T) {
		// Given: a result with StatusFinished
		result := &Result{Status: StatusFinished, Winner: PlayerX}

		// Then: it should be finished and not ongoing
		assert.True(t, result.IsFinished())
		assert.False(t, result.IsOngoing())
	})

	t.Run("IsOngoing returns true when result status is ongoing", func(t *testing.T) {
		// Given: a result with StatusOngoing
		result := &Result{Status: StatusOngoing}

		// Then: it should be ongoing and not finished
		assert.True(t, result.IsOngoing())
		assert.False(t, result.IsFinished())
	})

	t.Run("IsTie only for finished results without a winning mark", func(t *testing.T) {
		// Given: a finished tie and an ongoing result carrying the tie mark
		tie := &Result{Status: StatusFinished, Winner: PlayerTie}
		notFinished := &Result{Status: StatusOngoing, Winner: PlayerTie}

		// Then: only the finished one is a tie
		assert.True(t, tie.IsTie())
		assert.False(t, notFinished.IsTie())
	})
}

func TestMark_Opponent(t *testing.T) {
	// Given: both standard marks and a foreign symbol
	// Then: standard marks swap, anything else has no opponent
	assert.Equal(t, PlayerO, PlayerX.Opponent())
	assert.Equal(t, PlayerX, PlayerO.Opponent())
	assert.Equal(t, NoMark, PlayerTie.Opponent())
}

func TestMark_IsPlayable(t *testing.T) {
	// Then: reserved marks can't be played, other symbols can
	assert.True(t, PlayerX.IsPlayable())
	assert.True(t, PlayerO.IsPlayable())
	assert.True(t, Mark("Z").IsPlayable())
	assert.False(t, PlayerTie.IsPlayable())
	assert.False(t, NoMark.IsPlayable())
}

func TestTurn_String(t *testing.T) {
	// Given: an accepted turn
	turn := Turn{Mark: PlayerX, X: 2, Y: 3}

	// Then: it renders as mark(column,row)
	assert.Equal(t, "X(2,3)", turn.String())
}
