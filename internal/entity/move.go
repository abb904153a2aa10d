package entity

// Outcome tags the result of a single move.
type Outcome uint8

const (
	// Rejected means the cell was occupied or the round already finished.
	Rejected Outcome = iota
	Continued
	Won
	Draw
)

func (that Outcome) String() string {
	switch that {
	case Rejected:
		return "rejected"
	case Continued:
		return "continued"
	case Won:
		return "won"
	case Draw:
		return "draw"
	default:
		return "unknown"
	}
}

// MoveResult is what the engine reports back for a move.
// Symbol and Line are set for Won, NextTurn for Continued.
type MoveResult struct {
	Outcome  Outcome
	Symbol   Mark
	Line     Line
	NextTurn Mark
}

func (that MoveResult) Accepted() bool {
	return that.Outcome != Rejected
}

// Finished reports whether the move ended the round.
func (that MoveResult) Finished() bool {
	return that.Outcome == Won || that.Outcome == Draw
}
