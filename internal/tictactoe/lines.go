package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-rules/internal/entity"
)

const (
	boardWidth  = 3
	boardHeight = 3
)

// line is a candidate winning line, described by which turns lie on it.
type line struct {
	name     string
	length   int
	contains func(turn entity.Turn) bool
}

// winLines is scanned in order by GetWinner: diagonal, inverted diagonal, columns, rows.
var winLines = buildLines(boardWidth, boardHeight)

func buildLines(width, height int) []line {
	lines := make([]line, 0, width+height+2)

	diagonal := min(width, height)
	lines = append(lines,
		line{
			name:     "diagonal",
			length:   diagonal,
			contains: func(turn entity.Turn) bool { return turn.X == turn.Y },
		},
		line{
			name:     "inverted diagonal",
			length:   diagonal,
			contains: func(turn entity.Turn) bool { return turn.Y == height-turn.X+1 },
		},
	)

	for column := 1; column <= width; column++ {
		lines = append(lines, line{
			name:     fmt.Sprintf("column %d", column),
			length:   height,
			contains: func(turn entity.Turn) bool { return turn.X == column },
		})
	}

	for row := 1; row <= height; row++ {
		lines = append(lines, line{
			name:     fmt.Sprintf("row %d", row),
			length:   width,
			contains: func(turn entity.Turn) bool { return turn.Y == row },
		})
	}

	return lines
}

// owner returns the mark holding every cell of the line.
func (that line) owner(turns []entity.Turn) (entity.Mark, bool) {
	var (
		mark  entity.Mark
		count int
	)

	for _, turn := range turns {
		if !that.contains(turn) {
			continue
		}

		if count > 0 && turn.Mark != mark {
			return entity.NoMark, false
		}

		mark = turn.Mark
		count++
	}

	if count != that.length {
		return entity.NoMark, false
	}

	return mark, true
}

func isRowAllowed(y int) bool {
	return y >= 1 && y <= boardHeight
}

func isColumnAllowed(x int) bool {
	return x >= 1 && x <= boardWidth
}
