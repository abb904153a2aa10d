package usecase

import (
	"github.com/rocketscienceinc/tictactoe-deluxe/internal/entity"
	"github.com/rocketscienceinc/tictactoe-deluxe/internal/service"
)

// CellKind tells a frontend how to paint a cell.
type CellKind uint8

const (
	CellEmpty CellKind = iota
	CellPlaced
	CellPreview
	CellWinning
)

type CellView struct {
	Glyph string
	Kind  CellKind
}

// View is a read-only snapshot of the game for rendering.
type View struct {
	Cells       [entity.BoardSize]CellView
	Status      service.Status
	Glow        string
	Scores      entity.Score
	ScoreLabels []string
	Locked      bool
	Turn        entity.Mark
}

// GameUseCase is what the frontends drive.
type GameUseCase interface {
	Click(index int) entity.MoveResult
	Hover(index int)
	Leave(index int)
	MoveHover(from, to int)
	NewRound()
	ResetScore()

	Snapshot() View
	PulseGeneration() uint64
	TickPulse(gen uint64) bool
}

var _ GameUseCase = (*GameManager)(nil)
