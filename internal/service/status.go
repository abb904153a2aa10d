package service

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-deluxe/internal/entity"
)

const (
	AccentTurn = "#79d279"
	AccentDraw = "#f2c94c"

	drawText = "It's a draw! Hit New Round to play again."
)

// Status is the message shown above the board together with its accent colour.
type Status struct {
	Text   string
	Accent string
}

// TurnStatus announces whose move it is.
func TurnStatus(mark entity.Mark) Status {
	return Status{Text: fmt.Sprintf("Player %s's turn", mark), Accent: AccentTurn}
}

// StatusFor maps an accepted move to the next status. The bool is false for
// a rejected move, whose status must stay as it was.
func StatusFor(result entity.MoveResult) (Status, bool) {
	switch result.Outcome {
	case entity.Continued:
		return TurnStatus(result.NextTurn), true
	case entity.Won:
		return Status{Text: fmt.Sprintf("Player %s wins!", result.Symbol), Accent: AccentTurn}, true
	case entity.Draw:
		return Status{Text: drawText, Accent: AccentDraw}, true
	default:
		return Status{}, false
	}
}
