package gui

import (
	"time"

	"github.com/rocketscienceinc/tictactoe-deluxe/internal/service"
	"github.com/rocketscienceinc/tictactoe-deluxe/internal/usecase"
)

// input turns pointer positions and clicks in screen pixels into use case
// calls, and paces the status glow off the frame loop.
type input struct {
	game usecase.GameUseCase

	pulse    *service.FixedStep
	pulseGen uint64
	hovered  int
}

func newInput(game usecase.GameUseCase, interval time.Duration) *input {
	return &input{
		game:    game,
		pulse:   service.NewFixedStep(interval),
		hovered: -1,
	}
}

func (that *input) hover(x, y int) {
	index := cellAt(x, y)
	if index == that.hovered {
		return
	}

	that.game.MoveHover(that.hovered, index)
	that.hovered = index
}

func (that *input) click(x, y int) {
	if index := cellAt(x, y); index >= 0 {
		that.game.Click(index)
		return
	}

	switch buttonAt(x, y) {
	case newRoundButton:
		that.game.NewRound()
	case resetScoreButton:
		that.game.ResetScore()
	}
}

// tickPulse restarts the fixed step whenever the status changed so the first frame glows at once.
func (that *input) tickPulse() {
	gen := that.game.PulseGeneration()
	if gen != that.pulseGen {
		that.pulseGen = gen
		that.pulse.Reset()
	}

	if that.pulse.ShouldStep() {
		that.game.TickPulse(gen)
	}
}
