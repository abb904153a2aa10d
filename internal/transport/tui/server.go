package tui

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rocketscienceinc/tictactoe-deluxe/internal/usecase"
)

type Server struct {
	logger   *slog.Logger
	game     usecase.GameUseCase
	interval time.Duration
}

func New(logger *slog.Logger, game usecase.GameUseCase, interval time.Duration) *Server {
	return &Server{
		logger:   logger,
		game:     game,
		interval: interval,
	}
}

// Start runs the terminal UI until the player quits or ctx is cancelled.
func (that *Server) Start(ctx context.Context) error {
	log := that.logger.With("component", "tui")

	program := tea.NewProgram(
		NewModel(that.game, that.interval),
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)

	log.Info("starting terminal UI")

	if _, err := program.Run(); err != nil {
		if ctx.Err() != nil {
			log.Info("terminal UI stopped", "reason", ctx.Err())
			return nil
		}

		return fmt.Errorf("run terminal UI: %w", err)
	}

	log.Info("terminal UI closed")

	return nil
}
