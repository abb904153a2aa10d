package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-deluxe/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-deluxe/internal/config"
	"github.com/rocketscienceinc/tictactoe-deluxe/internal/service"
	"github.com/rocketscienceinc/tictactoe-deluxe/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-deluxe/internal/transport/gui"
	"github.com/rocketscienceinc/tictactoe-deluxe/internal/transport/tui"
	"github.com/rocketscienceinc/tictactoe-deluxe/internal/usecase"
)

// RunApp - runs the application with the configured frontend until the player quits or a signal arrives.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	gameManager := usecase.NewGameManager(logger, tictactoe.NewEngine(), service.NewPulse())
	defer gameManager.Close()

	log.Info("starting game", "frontend", conf.Frontend)

	switch conf.Frontend {
	case config.FrontendTUI:
		if err := tui.New(logger, gameManager, conf.Pulse.Interval).Start(ctx); err != nil {
			return fmt.Errorf("terminal frontend: %w", err)
		}
	case config.FrontendGUI:
		if err := gui.Run(ctx, logger, gameManager, conf.Window, conf.Pulse.Interval); err != nil {
			return fmt.Errorf("desktop frontend: %w", err)
		}
	default:
		return fmt.Errorf("%w: %q", apperror.ErrUnknownFrontend, conf.Frontend)
	}

	log.Info("game closed", "scores", gameManager.Snapshot().Scores)

	return nil
}
