package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rocketscienceinc/tictactoe-deluxe/internal/entity"
	"github.com/rocketscienceinc/tictactoe-deluxe/internal/usecase"
)

const noCell = -1

type pulseTickMsg struct {
	gen uint64
}

// Model is the Bubble Tea program state. Game state lives in the use case;
// the model only tracks where the keyboard cursor and the mouse are.
type Model struct {
	game     usecase.GameUseCase
	interval time.Duration

	cursor  int
	hovered int
}

func NewModel(game usecase.GameUseCase, interval time.Duration) Model {
	return Model{
		game:     game,
		interval: interval,
		cursor:   4,
		hovered:  noCell,
	}
}

func (m Model) Init() tea.Cmd {
	return pulseNow(m.game.PulseGeneration())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKey(msg)
	case tea.MouseMsg:
		return m.updateMouse(msg)
	case pulseTickMsg:
		if !m.game.TickPulse(msg.gen) {
			return m, nil
		}
		return m, m.pulseLater(msg.gen)
	}

	return m, nil
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key := msg.String(); key {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "up", "k":
		return m.moveCursor(-1, 0), nil
	case "down", "j":
		return m.moveCursor(1, 0), nil
	case "left", "h":
		return m.moveCursor(0, -1), nil
	case "right", "l":
		return m.moveCursor(0, 1), nil
	case "enter", " ", "space":
		return m, m.restartingPulse(func() { m.game.Click(m.cursor) })
	case "n":
		return m, m.restartingPulse(m.game.NewRound)
	case "r":
		return m, m.restartingPulse(m.game.ResetScore)
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			index := int(key[0] - '1')
			m = m.hover(index)
			m.cursor = index
			return m, m.restartingPulse(func() { m.game.Click(index) })
		}
	}

	return m, nil
}

func (m Model) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	index := hitTest(msg.X, msg.Y)

	switch {
	case msg.Action == tea.MouseActionMotion:
		return m.hover(index), nil
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		m = m.hover(index)
		if index == noCell {
			return m, nil
		}
		m.cursor = index
		return m, m.restartingPulse(func() { m.game.Click(index) })
	}

	return m, nil
}

func (m Model) moveCursor(rowDelta, colDelta int) Model {
	row, col := entity.RowCol(m.cursor)
	row = clamp(row+rowDelta, 0, entity.BoardSide-1)
	col = clamp(col+colDelta, 0, entity.BoardSide-1)

	m.cursor = entity.Index(row, col)

	return m.hover(m.cursor)
}

// hover moves the preview to index, leaving the previous cell first.
func (m Model) hover(index int) Model {
	if index == m.hovered {
		return m
	}

	m.game.MoveHover(m.hovered, index)
	m.hovered = index

	return m
}

// restartingPulse runs action and schedules an immediate glow tick if the action changed the status.
func (m Model) restartingPulse(action func()) tea.Cmd {
	before := m.game.PulseGeneration()
	action()

	if gen := m.game.PulseGeneration(); gen != before {
		return pulseNow(gen)
	}

	return nil
}

func (m Model) pulseLater(gen uint64) tea.Cmd {
	return tea.Tick(m.interval, func(time.Time) tea.Msg {
		return pulseTickMsg{gen: gen}
	})
}

func pulseNow(gen uint64) tea.Cmd {
	return func() tea.Msg {
		return pulseTickMsg{gen: gen}
	}
}

func (m Model) View() string {
	view := m.game.Snapshot()

	scores := make([]string, 0, len(view.ScoreLabels)*2)
	for i, label := range view.ScoreLabels {
		if i > 0 {
			scores = append(scores, " ")
		}
		scores = append(scores, scoreStyle.Render(label))
	}

	lines := []string{
		titleStyle.Render("Tic-Tac-Toe"),
		statusStyle(view.Status.Accent, view.Glow).Render(view.Status.Text),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, scores...),
		"",
		m.renderBoard(view),
		"",
		newRound.Render("[n] New Round") + " " + resetKey.Render("[r] Reset Score") + " " + hintStyle.Render("[q] Quit"),
	}

	return frameStyle.Render(strings.Join(lines, "\n"))
}

func (m Model) renderBoard(view usecase.View) string {
	rows := make([]string, 0, entity.BoardSide)
	gap := strings.Repeat(" ", colGap)

	for row := range entity.BoardSide {
		cells := make([]string, 0, entity.BoardSide*2)
		for col := range entity.BoardSide {
			index := entity.Index(row, col)
			if col > 0 {
				cells = append(cells, gap)
			}
			cell := view.Cells[index]
			glyph := cell.Glyph
			if glyph == "" {
				glyph = " "
			}
			cells = append(cells, cellStyle(cell.Kind, index == m.cursor && !view.Locked).Render(glyph))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	return strings.Join(rows, strings.Repeat("\n", rowGap+1))
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
