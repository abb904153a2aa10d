package gui

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rocketscienceinc/tictactoe-deluxe/internal/entity"
)

func TestCellAt(t *testing.T) {
	t.Run("Every cell centre maps back to its cell", func(t *testing.T) {
		for index := range entity.BoardSize {
			centre := cellRect(index).Min.Add(image.Pt(cellSize/2, cellSize/2))

			assert.Equal(t, index, cellAt(centre.X, centre.Y))
		}
	})

	t.Run("Gaps and margins hit nothing", func(t *testing.T) {
		assert.Equal(t, -1, cellAt(margin+cellSize, boardTop+10))
		assert.Equal(t, -1, cellAt(margin+10, boardTop+cellSize))
		assert.Equal(t, -1, cellAt(0, 0))
		assert.Equal(t, -1, cellAt(screenWidth-1, boardTop))
	})

	t.Run("Cells are laid out row-major", func(t *testing.T) {
		assert.Equal(t, image.Rect(margin, boardTop, margin+cellSize, boardTop+cellSize), cellRect(0))
		assert.Equal(t, cellRect(0).Min.Y, cellRect(2).Min.Y)
		assert.Equal(t, cellRect(0).Min.X, cellRect(6).Min.X)
		assert.Less(t, cellRect(2).Max.X, screenWidth)
		assert.Less(t, cellRect(8).Max.Y, buttonTop)
	})
}

func TestButtonAt(t *testing.T) {
	newRound := buttonRect(newRoundButton)
	reset := buttonRect(resetScoreButton)

	assert.Equal(t, newRoundButton, buttonAt(newRound.Min.X+1, newRound.Min.Y+1))
	assert.Equal(t, resetScoreButton, buttonAt(reset.Max.X-1, reset.Max.Y-1))
	assert.Equal(t, noButton, buttonAt(newRound.Max.X+1, newRound.Min.Y+1))
	assert.Equal(t, noButton, buttonAt(margin, boardTop))
	assert.LessOrEqual(t, reset.Max.X, screenWidth)
	assert.LessOrEqual(t, reset.Max.Y, screenHeight)

	assert.Equal(t, "New Round", newRoundButton.label())
	assert.Equal(t, "Reset Score", resetScoreButton.label())
}

func TestScoreRect(t *testing.T) {
	assert.LessOrEqual(t, scoreRect(2).Max.X, screenWidth)
	assert.Less(t, scoreRect(0).Max.Y, boardTop)
}

func TestHexColor(t *testing.T) {
	assert.Equal(t, color.RGBA{R: 0x4c, G: 0xaf, B: 0x50, A: 0xff}, hexColor("#4caf50"))
	assert.Panics(t, func() { hexColor("green") })
}
