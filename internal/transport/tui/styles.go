package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/rocketscienceinc/tictactoe-deluxe/internal/entity"
	"github.com/rocketscienceinc/tictactoe-deluxe/internal/usecase"
)

// Board geometry in terminal cells. hitTest depends on these matching View.
const (
	padTop      = 1
	padLeft     = 2
	headerLines = 5

	cellWidth  = 9
	cellHeight = 3
	colGap     = 1
	rowGap     = 1

	boardTop = padTop + headerLines
)

var (
	frameStyle = lipgloss.NewStyle().Padding(padTop, padLeft)
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#f2f2f2"))
	scoreStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f2f2f2")).
			Background(lipgloss.Color("#3a3a3a")).
			Padding(0, 2)
	hintStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	newRound  = lipgloss.NewStyle().Foreground(lipgloss.Color("#101010")).Background(lipgloss.Color("#79d279")).Padding(0, 1)
	resetKey  = lipgloss.NewStyle().Foreground(lipgloss.Color("#101010")).Background(lipgloss.Color("#f25f5c")).Padding(0, 1)

	cellBase = lipgloss.NewStyle().
			Width(cellWidth).
			Height(cellHeight).
			Align(lipgloss.Center).
			AlignVertical(lipgloss.Center).
			Bold(true)
	cellStyles = map[usecase.CellKind]lipgloss.Style{
		usecase.CellEmpty:   cellBase.Background(lipgloss.Color("#1f1f1f")).Foreground(lipgloss.Color("#f7f7f7")),
		usecase.CellPlaced:  cellBase.Background(lipgloss.Color("#303030")).Foreground(lipgloss.Color("#f7f7f7")),
		usecase.CellPreview: cellBase.Background(lipgloss.Color("#333333")).Foreground(lipgloss.Color("#6d6d6d")),
		usecase.CellWinning: cellBase.Background(lipgloss.Color("#4caf50")).Foreground(lipgloss.Color("#f7f7f7")),
	}
	cursorBackground = lipgloss.Color("#333333")
)

func statusStyle(accent, glow string) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(accent)).
		Background(lipgloss.Color(glow)).
		Padding(0, 1)
}

func cellStyle(kind usecase.CellKind, underCursor bool) lipgloss.Style {
	style := cellStyles[kind]
	if underCursor && kind == usecase.CellEmpty {
		style = style.Background(cursorBackground)
	}

	return style
}

// hitTest maps a terminal position to the board cell under it, or -1.
func hitTest(x, y int) int {
	bx, by := x-padLeft, y-boardTop
	if bx < 0 || by < 0 {
		return -1
	}

	col, colOffset := bx/(cellWidth+colGap), bx%(cellWidth+colGap)
	row, rowOffset := by/(cellHeight+rowGap), by%(cellHeight+rowGap)
	if col >= entity.BoardSide || row >= entity.BoardSide || colOffset >= cellWidth || rowOffset >= cellHeight {
		return -1
	}

	return entity.Index(row, col)
}
