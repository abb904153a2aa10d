package service

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Glow strength is kept in whole percent so the oscillation never drifts.
const (
	pulseStartAlpha = 15
	pulseStep       = 5
	pulseMinAlpha   = 10
	pulseMaxAlpha   = 45

	pulseBaseHex = "#dedede"
	pulsePeakHex = "#ffffff"
)

var (
	pulseBase = mustParseHex(pulseBaseHex)
	pulsePeak = mustParseHex(pulsePeakHex)
)

// Pulse is the cosmetic glow behind the status line. It is a repeating task
// whose ticks are scheduled by the frontend; every Start or Cancel
// invalidates ticks that were already scheduled.
type Pulse struct {
	generation uint64
	running    bool
	alpha      int
	direction  int
	glow       string
}

func NewPulse() *Pulse {
	return &Pulse{glow: pulseBaseHex, direction: 1, alpha: pulseStartAlpha}
}

// Start cancels any pending tick, rewinds the animation and returns the
// generation the next tick must carry.
func (that *Pulse) Start() uint64 {
	that.generation++
	that.running = true
	that.alpha = pulseStartAlpha
	that.direction = 1

	return that.generation
}

// Cancel stops the animation. The last glow colour stays visible.
func (that *Pulse) Cancel() {
	that.generation++
	that.running = false
}

// Tick renders one frame if gen is still current and reports whether the
// caller should schedule another tick.
func (that *Pulse) Tick(gen uint64) bool {
	if !that.running || gen != that.generation {
		return false
	}

	that.glow = pulseBase.BlendRgb(pulsePeak, that.Alpha()).Hex()

	next := that.alpha + that.direction*pulseStep
	if next > pulseMaxAlpha || next < pulseMinAlpha {
		that.direction = -that.direction
	}
	that.alpha = next

	return true
}

func (that *Pulse) Generation() uint64 {
	return that.generation
}

func (that *Pulse) Running() bool {
	return that.running
}

// Alpha is the blend factor the next tick will use.
func (that *Pulse) Alpha() float64 {
	return float64(that.alpha) / 100
}

// Glow is the colour rendered by the latest tick, as #rrggbb.
func (that *Pulse) Glow() string {
	return that.glow
}

func mustParseHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(fmt.Errorf("parse colour %q: %w", s, err))
	}

	return c
}
