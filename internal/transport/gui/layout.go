package gui

import (
	"fmt"
	"image"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/rocketscienceinc/tictactoe-deluxe/internal/entity"
)

// Logical window layout in pixels. Ebitengine scales it to the window.
const (
	screenWidth  = 360
	screenHeight = 490

	margin = 24

	titleY  = 30
	statusY = 54

	scoreTop    = 72
	scoreWidth  = 100
	scoreHeight = 28
	scoreGap    = 6

	boardTop = 116
	cellSize = 100
	cellGap  = 6

	buttonTop    = boardTop + 3*cellSize + 2*cellGap + 18
	buttonWidth  = 153
	buttonHeight = 32
	buttonGap    = 6
)

type button uint8

const (
	noButton button = iota
	newRoundButton
	resetScoreButton
)

func (that button) label() string {
	switch that {
	case newRoundButton:
		return "New Round"
	case resetScoreButton:
		return "Reset Score"
	default:
		return ""
	}
}

// cellRect is the on-screen area of a board cell.
func cellRect(index int) image.Rectangle {
	row, col := entity.RowCol(index)
	x := margin + col*(cellSize+cellGap)
	y := boardTop + row*(cellSize+cellGap)

	return image.Rect(x, y, x+cellSize, y+cellSize)
}

func scoreRect(slot int) image.Rectangle {
	x := margin + slot*(scoreWidth+scoreGap)

	return image.Rect(x, scoreTop, x+scoreWidth, scoreTop+scoreHeight)
}

func buttonRect(b button) image.Rectangle {
	x := margin
	if b == resetScoreButton {
		x += buttonWidth + buttonGap
	}

	return image.Rect(x, buttonTop, x+buttonWidth, buttonTop+buttonHeight)
}

// cellAt returns the board cell under the pointer, or -1.
func cellAt(x, y int) int {
	pt := image.Pt(x, y)
	for index := range entity.BoardSize {
		if pt.In(cellRect(index)) {
			return index
		}
	}

	return -1
}

func buttonAt(x, y int) button {
	pt := image.Pt(x, y)
	for _, b := range []button{newRoundButton, resetScoreButton} {
		if pt.In(buttonRect(b)) {
			return b
		}
	}

	return noButton
}

// hexColor converts a #rrggbb string into an opaque colour.
func hexColor(hex string) color.RGBA {
	c, err := colorful.Hex(hex)
	if err != nil {
		panic(fmt.Errorf("parse colour %q: %w", hex, err))
	}

	r, g, b := c.RGB255()

	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}
