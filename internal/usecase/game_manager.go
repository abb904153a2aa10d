package usecase

import (
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-deluxe/internal/entity"
	"github.com/rocketscienceinc/tictactoe-deluxe/internal/service"
)

const noPreview = -1

type gameEngine interface {
	ApplyMove(index int) entity.MoveResult
	CanPlay(index int) bool
	NewRound()
	ResetScore()

	CurrentTurn() entity.Mark
	Scores() entity.Score
	CellAt(index int) entity.Mark
	IsFinished() bool
}

// GameManager is the presentation-side adapter over the engine. It turns
// input events into engine commands and keeps the transient view state
// (hover preview, winning highlight, status line, glow) that the engine must
// not know about.
type GameManager struct {
	logger *slog.Logger
	engine gameEngine
	pulse  *service.Pulse

	status  service.Status
	preview int
	winning *entity.Line
}

func NewGameManager(logger *slog.Logger, engine gameEngine, pulse *service.Pulse) *GameManager {
	manager := &GameManager{
		logger: logger.With("component", "game-manager"),
		engine: engine,
		pulse:  pulse,

		preview: noPreview,
	}
	manager.startRound()

	return manager
}

// Click plays the current player's mark on index. Rejected moves change nothing.
func (that *GameManager) Click(index int) entity.MoveResult {
	mark := that.engine.CurrentTurn()

	result := that.engine.ApplyMove(index)
	if !result.Accepted() {
		return result
	}

	// a finished board takes no more moves, so no cell may keep a preview
	if that.preview == index || result.Finished() {
		that.preview = noPreview
	}

	log := that.logger.With("cell", index, "mark", mark.String())
	log.Debug("move accepted", "outcome", result.Outcome.String())

	switch result.Outcome {
	case entity.Won:
		line := result.Line
		that.winning = &line
		log.Info("round won", "line", fmt.Sprint(line), "score", that.engine.Scores())
	case entity.Draw:
		log.Info("round drawn", "score", that.engine.Scores())
	}

	if status, ok := service.StatusFor(result); ok {
		that.setStatus(status)
	}

	return result
}

// Hover shows a dimmed preview of the current mark if index is playable.
func (that *GameManager) Hover(index int) {
	if !that.engine.CanPlay(index) {
		return
	}

	that.preview = index
}

// Leave drops the preview, but only if it belongs to index.
func (that *GameManager) Leave(index int) {
	if that.preview != index {
		return
	}

	that.preview = noPreview
}

// MoveHover moves the preview from one cell to another. A negative to means
// the pointer left the board.
func (that *GameManager) MoveHover(from, to int) {
	that.Leave(from)
	if to < 0 {
		return
	}

	that.Hover(to)
}

func (that *GameManager) NewRound() {
	that.engine.NewRound()
	that.startRound()

	that.logger.Debug("new round started")
}

func (that *GameManager) ResetScore() {
	that.engine.ResetScore()
	that.startRound()

	that.logger.Info("score reset")
}

// Close stops the status glow. Ticks a frontend already scheduled become no-ops.
func (that *GameManager) Close() {
	if !that.pulse.Running() {
		return
	}

	that.pulse.Cancel()
	that.logger.Debug("status glow stopped")
}

// Snapshot returns everything a frontend needs to draw one frame.
func (that *GameManager) Snapshot() View {
	view := View{
		Status: that.status,
		Glow:   that.pulse.Glow(),
		Scores: that.engine.Scores(),
		Locked: that.engine.IsFinished(),
		Turn:   that.engine.CurrentTurn(),
	}

	for index := range view.Cells {
		view.Cells[index] = that.cellView(index)
	}

	for _, key := range entity.ScoreKeys() {
		view.ScoreLabels = append(view.ScoreLabels, fmt.Sprintf("%s: %d", key, view.Scores.Of(key)))
	}

	return view
}

// PulseGeneration identifies the current status animation for tick scheduling.
func (that *GameManager) PulseGeneration() uint64 {
	return that.pulse.Generation()
}

// TickPulse advances the status glow; false means the tick is stale and must not be rescheduled.
func (that *GameManager) TickPulse(gen uint64) bool {
	return that.pulse.Tick(gen)
}

func (that *GameManager) cellView(index int) CellView {
	mark := that.engine.CellAt(index)

	switch {
	case mark != entity.EmptyCell && that.isWinning(index):
		return CellView{Glyph: mark.String(), Kind: CellWinning}
	case mark != entity.EmptyCell:
		return CellView{Glyph: mark.String(), Kind: CellPlaced}
	case index == that.preview && !that.engine.IsFinished():
		return CellView{Glyph: that.engine.CurrentTurn().String(), Kind: CellPreview}
	default:
		return CellView{Kind: CellEmpty}
	}
}

func (that *GameManager) isWinning(index int) bool {
	if that.winning == nil {
		return false
	}

	for _, cell := range that.winning {
		if cell == index {
			return true
		}
	}

	return false
}

func (that *GameManager) startRound() {
	that.preview = noPreview
	that.winning = nil
	that.setStatus(service.TurnStatus(that.engine.CurrentTurn()))
}

func (that *GameManager) setStatus(status service.Status) {
	that.status = status
	that.pulse.Start()
}
