package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-deluxe/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-deluxe/internal/entity"
)

// Engine owns the board, turn, score and lock state of a local two-player game.
// It is driven synchronously from a single UI event loop and is not safe for concurrent use.
type Engine struct {
	board    entity.Board
	turn     entity.Mark
	finished bool
	score    entity.Score
}

func NewEngine() *Engine {
	engine := &Engine{}
	engine.ResetScore()

	return engine
}

// ApplyMove places the current player's mark on the cell at index.
// An occupied cell or a finished round yields a Rejected result and leaves the engine untouched.
// An index outside the board is a caller bug and panics.
func (that *Engine) ApplyMove(index int) entity.MoveResult {
	mustBeInBounds(index)

	if that.finished || that.board[index] != entity.EmptyCell {
		return entity.MoveResult{Outcome: entity.Rejected}
	}

	that.board[index] = that.turn

	if winner, line, ok := that.board.Winner(); ok {
		that.score.AddWin(winner)
		that.finished = true

		return entity.MoveResult{Outcome: entity.Won, Symbol: winner, Line: line}
	}

	// the round ends once every cell is taken
	if that.board.IsFull() {
		that.score.AddDraw()
		that.finished = true

		return entity.MoveResult{Outcome: entity.Draw}
	}

	that.turn = that.turn.Opponent()

	return entity.MoveResult{Outcome: entity.Continued, NextTurn: that.turn}
}

// CanPlay reports whether a move at index would be accepted.
func (that *Engine) CanPlay(index int) bool {
	mustBeInBounds(index)

	return !that.finished && that.board[index] == entity.EmptyCell
}

// NewRound clears the board and hands the first move to X. The score is kept.
func (that *Engine) NewRound() {
	that.board = entity.Board{}
	that.turn = entity.PlayerX
	that.finished = false
}

func (that *Engine) ResetScore() {
	that.score = entity.Score{}
	that.NewRound()
}

func (that *Engine) CurrentTurn() entity.Mark {
	return that.turn
}

func (that *Engine) Scores() entity.Score {
	return that.score
}

func (that *Engine) CellAt(index int) entity.Mark {
	mustBeInBounds(index)

	return that.board[index]
}

func (that *Engine) Board() entity.Board {
	return that.board
}

func (that *Engine) IsFinished() bool {
	return that.finished
}

func mustBeInBounds(index int) {
	if !entity.InBounds(index) {
		panic(fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, index))
	}
}
