//go:build ebiten

package gui

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/rocketscienceinc/tictactoe-deluxe/internal/config"
	"github.com/rocketscienceinc/tictactoe-deluxe/internal/usecase"
)

var (
	backgroundColor = hexColor("#252525")
	titleColor      = hexColor("#f2f2f2")
	scoreColor      = hexColor("#3a3a3a")
	buttonTextColor = hexColor("#101010")
	markColor       = hexColor("#f7f7f7")
	previewColor    = hexColor("#6d6d6d")

	cellColors = map[usecase.CellKind]color.RGBA{
		usecase.CellEmpty:   hexColor("#1f1f1f"),
		usecase.CellPlaced:  hexColor("#303030"),
		usecase.CellPreview: hexColor("#333333"),
		usecase.CellWinning: hexColor("#4caf50"),
	}
	buttonColors = map[button]color.RGBA{
		newRoundButton:   hexColor("#79d279"),
		resetScoreButton: hexColor("#f25f5c"),
	}
)

// Game adapts the game use case to the ebiten.Game interface.
type Game struct {
	ctx    context.Context
	logger *slog.Logger
	game   usecase.GameUseCase

	input *input
}

func New(ctx context.Context, logger *slog.Logger, game usecase.GameUseCase, interval time.Duration) *Game {
	return &Game{
		ctx:    ctx,
		logger: logger.With("component", "gui"),
		game:   game,
		input:  newInput(game, interval),
	}
}

// Run opens the window and blocks until it is closed or ctx is cancelled.
func Run(ctx context.Context, logger *slog.Logger, game usecase.GameUseCase, window config.Window, interval time.Duration) error {
	g := New(ctx, logger, game, interval)

	ebiten.SetWindowTitle(window.Title)
	ebiten.SetWindowSize(screenWidth*window.Scale, screenHeight*window.Scale)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)

	g.logger.Info("opening window", "title", window.Title, "scale", window.Scale)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run window: %w", err)
	}

	g.logger.Info("window closed")

	return nil
}

// Update handles input and advances the status glow.
func (g *Game) Update() error {
	if g.ctx.Err() != nil {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.game.NewRound()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.game.ResetScore()
	}

	x, y := ebiten.CursorPosition()
	g.input.hover(x, y)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.input.click(x, y)
	}

	g.input.tickPulse()

	return nil
}

// Draw renders the current snapshot.
func (g *Game) Draw(screen *ebiten.Image) {
	view := g.game.Snapshot()
	face := basicfont.Face7x13

	screen.Fill(backgroundColor)

	text.Draw(screen, "Tic-Tac-Toe", face, margin, titleY, titleColor)

	bounds := text.BoundString(face, view.Status.Text)
	fillRect(screen, image.Rect(margin-4, statusY-13, margin+bounds.Dx()+4, statusY+5), hexColor(view.Glow))
	text.Draw(screen, view.Status.Text, face, margin, statusY, hexColor(view.Status.Accent))

	for slot, label := range view.ScoreLabels {
		rect := scoreRect(slot)
		fillRect(screen, rect, scoreColor)
		drawCentred(screen, label, rect, titleColor)
	}

	for index, cell := range view.Cells {
		rect := cellRect(index)
		fillRect(screen, rect, cellColors[cell.Kind])

		switch cell.Kind {
		case usecase.CellPreview:
			drawMark(screen, cell.Glyph, rect, previewColor)
		case usecase.CellPlaced, usecase.CellWinning:
			drawMark(screen, cell.Glyph, rect, markColor)
		}
	}

	for _, b := range []button{newRoundButton, resetScoreButton} {
		rect := buttonRect(b)
		fillRect(screen, rect, buttonColors[b])
		drawCentred(screen, b.label(), rect, buttonTextColor)
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(int, int) (int, int) {
	return screenWidth, screenHeight
}

func fillRect(dst *ebiten.Image, rect image.Rectangle, clr color.Color) {
	vector.DrawFilledRect(dst, float32(rect.Min.X), float32(rect.Min.Y), float32(rect.Dx()), float32(rect.Dy()), clr, false)
}

func drawCentred(dst *ebiten.Image, label string, rect image.Rectangle, clr color.Color) {
	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()+bounds.Dy())/2 - 2

	text.Draw(dst, label, face, x, y, clr)
}

func drawMark(dst *ebiten.Image, glyph string, rect image.Rectangle, clr color.Color) {
	const (
		inset  = 24
		stroke = 8
	)

	x0, y0 := float32(rect.Min.X+inset), float32(rect.Min.Y+inset)
	x1, y1 := float32(rect.Max.X-inset), float32(rect.Max.Y-inset)

	switch glyph {
	case "X":
		vector.StrokeLine(dst, x0, y0, x1, y1, stroke, clr, true)
		vector.StrokeLine(dst, x0, y1, x1, y0, stroke, clr, true)
	case "O":
		cx, cy := (x0+x1)/2, (y0+y1)/2
		vector.StrokeCircle(dst, cx, cy, (x1-x0)/2, stroke, clr, true)
	}
}
