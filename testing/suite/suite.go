package suite

import (
	"io"
	"log/slog"
	"testing"

	"github.com/rocketscienceinc/tictactoe-deluxe/internal/entity"
	"github.com/rocketscienceinc/tictactoe-deluxe/internal/service"
	"github.com/rocketscienceinc/tictactoe-deluxe/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-deluxe/internal/usecase"
)

type Suite struct {
	*testing.T
	Logger *slog.Logger

	Engine  *tictactoe.Engine
	Pulse   *service.Pulse
	Manager *usecase.GameManager
}

// New wires a fresh engine and game manager with logging discarded.
func New(t *testing.T) *Suite {
	t.Helper()

	logger := slog.New(slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	engine := tictactoe.NewEngine()
	pulse := service.NewPulse()

	return &Suite{
		T:      t,
		Logger: logger,

		Engine:  engine,
		Pulse:   pulse,
		Manager: usecase.NewGameManager(logger, engine, pulse),
	}
}

// Play clicks every cell in order and fails the test on a rejected move.
func (that *Suite) Play(cells ...int) entity.MoveResult {
	that.Helper()

	var result entity.MoveResult
	for i, cell := range cells {
		result = that.Manager.Click(cell)
		if !result.Accepted() {
			that.Fatalf("move %d on cell %d was rejected", i, cell)
		}
	}

	return result
}
