package ui

// CellWidth is the number of terminal columns a cell occupies ("[ ]").
const CellWidth = 3

const (
	paddingX = 2
	paddingY = 2 // Leaves a row for the title
)

// Layout places a columns x rows board on the terminal.
type Layout struct {
	OffsetX, OffsetY int
	Columns, Rows    int
}

// NewLayout returns the layout for a board of the given size.
func NewLayout(columns, rows int) Layout {
	return Layout{
		OffsetX: paddingX,
		OffsetY: paddingY,
		Columns: columns,
		Rows:    rows,
	}
}

// CellAt maps a pointer position to board coordinates.
// ok is false when the pointer is not over a cell.
func (l Layout) CellAt(px, py int) (x, y int, ok bool) {
	dx, dy := px-l.OffsetX, py-l.OffsetY
	if dx < 0 || dy < 0 {
		return 0, 0, false
	}
	x, y = dx/CellWidth, dy
	if x >= l.Columns || y >= l.Rows {
		return 0, 0, false
	}
	return x, y, true
}

// Origin returns the screen position of the left bracket of cell (x, y).
func (l Layout) Origin(x, y int) (px, py int) {
	return l.OffsetX + x*CellWidth, l.OffsetY + y
}

// StatusRow is the screen row just below the board.
func (l Layout) StatusRow() int {
	return l.OffsetY + l.Rows + 1
}

// BannerRow is the screen row for win/loss messages.
func (l Layout) BannerRow() int {
	return l.StatusRow() + 1
}
