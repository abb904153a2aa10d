package entity

const (
	BoardSide = 3
	BoardSize = BoardSide * BoardSide
)

// Mark is the content of a single board cell.
type Mark uint8

const (
	EmptyCell Mark = iota
	PlayerX
	PlayerO
)

const (
	ScoreKeyX    = "X"
	ScoreKeyO    = "O"
	ScoreKeyDraw = "Draw"
)

// Line is a triple of board indices forming a row, column or diagonal.
type Line [3]int

// WinCombos lists every winning line: rows, then columns, then diagonals.
var WinCombos = [8]Line{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

func (that Mark) String() string {
	switch that {
	case PlayerX:
		return "X"
	case PlayerO:
		return "O"
	default:
		return ""
	}
}

// Opponent returns the other player's mark. EmptyCell has no opponent.
func (that Mark) Opponent() Mark {
	switch that {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return EmptyCell
	}
}

func (that Mark) IsEmpty() bool {
	return that == EmptyCell
}

// Board is stored row-major: index = row*3 + col.
type Board [BoardSize]Mark

// Winner returns the mark and the first line in WinCombos order made of three equal non-empty cells.
func (that Board) Winner() (Mark, Line, bool) {
	for _, combo := range WinCombos {
		a, b, c := that[combo[0]], that[combo[1]], that[combo[2]]
		if a != EmptyCell && a == b && b == c {
			return a, combo, true
		}
	}

	return EmptyCell, Line{}, false
}

func (that Board) IsFull() bool {
	for _, cell := range that {
		if cell == EmptyCell {
			return false
		}
	}

	return true
}

// RowCol maps a board index to its row and column.
func RowCol(index int) (int, int) {
	return index / BoardSide, index % BoardSide
}

// Index maps a row and column back to a board index.
func Index(row, col int) int {
	return row*BoardSide + col
}

// InBounds reports whether index addresses a board cell.
func InBounds(index int) bool {
	return index >= 0 && index < BoardSize
}

// Score counts wins per player and draws across rounds.
type Score struct {
	X    int
	O    int
	Draw int
}

// ScoreKeys is the display order of the score counters.
func ScoreKeys() []string {
	return []string{ScoreKeyX, ScoreKeyO, ScoreKeyDraw}
}

// Of returns the counter stored under key, or 0 for an unknown key.
func (that Score) Of(key string) int {
	switch key {
	case ScoreKeyX:
		return that.X
	case ScoreKeyO:
		return that.O
	case ScoreKeyDraw:
		return that.Draw
	default:
		return 0
	}
}

func (that *Score) AddWin(mark Mark) {
	switch mark {
	case PlayerX:
		that.X++
	case PlayerO:
		that.O++
	}
}

func (that *Score) AddDraw() {
	that.Draw++
}
