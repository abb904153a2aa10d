package service

import (
	"testing"
	"time"

	"github.com/rocketscienceinc/tictactoe-deluxe/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFor(t *testing.T) {
	t.Run("Continued announces the next player", func(t *testing.T) {
		status, ok := StatusFor(entity.MoveResult{Outcome: entity.Continued, NextTurn: entity.PlayerO})

		require.True(t, ok)
		assert.Equal(t, Status{Text: "Player O's turn", Accent: AccentTurn}, status)
	})

	t.Run("Won announces the winner", func(t *testing.T) {
		status, ok := StatusFor(entity.MoveResult{Outcome: entity.Won, Symbol: entity.PlayerX, Line: entity.Line{0, 1, 2}})

		require.True(t, ok)
		assert.Equal(t, Status{Text: "Player X wins!", Accent: AccentTurn}, status)
	})

	t.Run("Draw asks for a new round", func(t *testing.T) {
		status, ok := StatusFor(entity.MoveResult{Outcome: entity.Draw})

		require.True(t, ok)
		assert.Equal(t, Status{Text: "It's a draw! Hit New Round to play again.", Accent: AccentDraw}, status)
	})

	t.Run("Rejected keeps the current status", func(t *testing.T) {
		_, ok := StatusFor(entity.MoveResult{Outcome: entity.Rejected})

		assert.False(t, ok)
	})

	t.Run("TurnStatus", func(t *testing.T) {
		assert.Equal(t, "Player X's turn", TurnStatus(entity.PlayerX).Text)
	})
}

func TestPulse(t *testing.T) {
	t.Run("Idle pulse ignores ticks", func(t *testing.T) {
		// Given: a pulse that was never started
		pulse := NewPulse()

		// When: a tick arrives
		ok := pulse.Tick(pulse.Generation())

		// Then: nothing is rendered
		assert.False(t, ok)
		assert.Equal(t, "#dedede", pulse.Glow())
	})

	t.Run("First tick brightens the base colour", func(t *testing.T) {
		// Given: a started pulse
		pulse := NewPulse()
		gen := pulse.Start()

		// When: the first tick fires
		ok := pulse.Tick(gen)

		// Then: the glow is blended 15% towards white
		require.True(t, ok)
		assert.Equal(t, "#e3e3e3", pulse.Glow())
		assert.InDelta(t, 0.20, pulse.Alpha(), 1e-9)
	})

	t.Run("Alpha oscillates between its bounds", func(t *testing.T) {
		// Given: a started pulse
		pulse := NewPulse()
		gen := pulse.Start()
		var seen []float64

		// When: ticking through more than one full cycle
		for range 40 {
			require.True(t, pulse.Tick(gen))
			seen = append(seen, pulse.Alpha())
		}

		// Then: alpha never leaves [0.05, 0.5] and reaches both extremes
		for _, alpha := range seen {
			assert.GreaterOrEqual(t, alpha, 0.05-1e-9)
			assert.LessOrEqual(t, alpha, 0.5+1e-9)
		}
		assert.Contains(t, seen, 0.5)
		assert.Contains(t, seen, 0.05)
	})

	t.Run("Start cancels ticks scheduled for the previous status", func(t *testing.T) {
		// Given: a pulse that has been ticking
		pulse := NewPulse()
		stale := pulse.Start()
		pulse.Tick(stale)
		pulse.Tick(stale)

		// When: a new status restarts it
		fresh := pulse.Start()

		// Then: the stale tick is dropped and the animation starts over
		assert.False(t, pulse.Tick(stale))
		assert.InDelta(t, 0.15, pulse.Alpha(), 1e-9)
		assert.True(t, pulse.Tick(fresh))
		assert.NotEqual(t, stale, fresh)
	})

	t.Run("Cancel stops the animation", func(t *testing.T) {
		// Given: a running pulse
		pulse := NewPulse()
		gen := pulse.Start()
		require.True(t, pulse.Tick(gen))
		glow := pulse.Glow()

		// When: cancelling it
		pulse.Cancel()

		// Then: no tick is accepted and the last glow stays
		assert.False(t, pulse.Running())
		assert.False(t, pulse.Tick(gen))
		assert.False(t, pulse.Tick(pulse.Generation()))
		assert.Equal(t, glow, pulse.Glow())
	})
}

type fakeClock struct {
	now time.Time
}

func (that *fakeClock) Now() time.Time {
	return that.now
}

func (that *fakeClock) Advance(d time.Duration) {
	that.now = that.now.Add(d)
}

func TestFixedStep(t *testing.T) {
	t.Run("Fires on the first poll and then once per interval", func(t *testing.T) {
		// Given: a 60ms fixed step
		clock := &fakeClock{now: time.Unix(0, 0)}
		step := newFixedStep(60*time.Millisecond, clock.Now)

		// Then: the first poll fires
		assert.True(t, step.ShouldStep())

		// And: polls inside the interval do not
		clock.Advance(30 * time.Millisecond)
		assert.False(t, step.ShouldStep())

		// And: completing the interval fires once
		clock.Advance(30 * time.Millisecond)
		assert.True(t, step.ShouldStep())
		assert.False(t, step.ShouldStep())
	})

	t.Run("A stall fires once", func(t *testing.T) {
		// Given: a step that already fired
		clock := &fakeClock{now: time.Unix(0, 0)}
		step := newFixedStep(60*time.Millisecond, clock.Now)
		require.True(t, step.ShouldStep())

		// When: the loop stalls for a second
		clock.Advance(time.Second)

		// Then: only one step is reported
		assert.True(t, step.ShouldStep())
		assert.False(t, step.ShouldStep())
	})

	t.Run("Reset fires immediately", func(t *testing.T) {
		clock := &fakeClock{now: time.Unix(0, 0)}
		step := newFixedStep(60*time.Millisecond, clock.Now)
		require.True(t, step.ShouldStep())
		require.False(t, step.ShouldStep())

		step.Reset()

		assert.True(t, step.ShouldStep())
	})

	t.Run("Non-positive interval falls back to 60 per second", func(t *testing.T) {
		step := NewFixedStep(0)

		assert.Equal(t, time.Second/60, step.step)
	})
}
