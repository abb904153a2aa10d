//go:build !ebiten

package gui

import (
	"context"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/tictactoe-deluxe/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-deluxe/internal/config"
	"github.com/rocketscienceinc/tictactoe-deluxe/internal/usecase"
)

// Run reports that the desktop window is not compiled in.
func Run(context.Context, *slog.Logger, usecase.GameUseCase, config.Window, time.Duration) error {
	return apperror.ErrGUIUnavailable
}
