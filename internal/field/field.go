// Package field implements the minefield engine: mine layout, adjacency
// counts, reveal and flag state, flood reveal and win detection.
package field

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/minesweeper/internal/telemetry"
)

// Cell holds the state of a single grid position.
type Cell struct {
	Mine     bool
	Adjacent int // Mines among the 8 neighbours; unused for mine cells
	Revealed bool
	Flagged  bool
}

// IsEmpty reports whether the cell is a non-mine cell with no adjacent mines.
func (c Cell) IsEmpty() bool {
	return !c.Mine && c.Adjacent == 0
}

// Field is a width x height minefield.
// A Field is not safe for concurrent use.
type Field struct {
	width  int
	height int
	mines  int
	flags  int
	cells  [][]Cell // Indexed [y][x]
	rng    *rand.Rand
}

// New creates an empty field after validating its configuration.
// No mines are placed until Reset is called.
// A nil rng is replaced by a time-seeded source.
func New(width, height, mines int, rng *rand.Rand) (*Field, error) {
	if err := Validate(width, height, mines); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	f := newField(width, height, rng)
	f.mines = mines
	return f, nil
}

// NewWithMines creates a field with mines at the given points and computes
// adjacency counts. A later Reset discards the layout and places mines at
// random.
func NewWithMines(width, height int, mines []Point) (*Field, error) {
	f, err := New(width, height, len(mines), nil)
	if err != nil {
		return nil, err
	}
	for _, p := range mines {
		if !f.Contains(p.X, p.Y) {
			return nil, fmt.Errorf("%w: mine %v outside %dx%d field", ErrInvalidConfig, p, width, height)
		}
		if f.cells[p.Y][p.X].Mine {
			return nil, fmt.Errorf("%w: duplicate mine at %v", ErrInvalidConfig, p)
		}
		f.cells[p.Y][p.X].Mine = true
	}
	f.computeAdjacent()
	return f, nil
}

func newField(width, height int, rng *rand.Rand) *Field {
	cells := make([][]Cell, height)
	for y := range cells {
		cells[y] = make([]Cell, width)
	}
	return &Field{
		width:  width,
		height: height,
		cells:  cells,
		rng:    rng,
	}
}

// Width returns the number of columns.
func (f *Field) Width() int { return f.width }

// Height returns the number of rows.
func (f *Field) Height() int { return f.height }

// MineCount returns the number of mines on the field.
func (f *Field) MineCount() int { return f.mines }

// Flags returns the number of flagged cells.
func (f *Field) Flags() int { return f.flags }

// MinesRemaining returns mines minus flags. It goes negative when the
// player places more flags than there are mines.
func (f *Field) MinesRemaining() int { return f.mines - f.flags }

// Contains reports whether (x, y) lies on the grid.
func (f *Field) Contains(x, y int) bool {
	return x >= 0 && x < f.width && y >= 0 && y < f.height
}

// Reset clears every cell, places mines at random and computes adjacency
// counts. It starts a new round and may be called any number of times.
func (f *Field) Reset(ctx context.Context) {
	_, span := telemetry.Tracer("field").Start(ctx, "field.reset")
	defer span.End()

	for y := range f.cells {
		clear(f.cells[y])
	}
	f.flags = 0

	f.placeMines()
	f.computeAdjacent()

	span.SetAttributes(
		attribute.Int("field.width", f.width),
		attribute.Int("field.height", f.height),
		attribute.Int("field.mines", f.mines),
	)
}

// placeMines marks exactly f.mines distinct cells as mines, chosen
// uniformly at random.
func (f *Field) placeMines() {
	area := f.width * f.height

	// Rejection sampling degrades as the board fills up; dense boards
	// take a prefix of a random permutation instead.
	if f.mines > area/2 {
		for _, i := range f.rng.Perm(area)[:f.mines] {
			f.cells[i/f.width][i%f.width].Mine = true
		}
		return
	}

	for placed := 0; placed < f.mines; {
		x := f.rng.Intn(f.width)
		y := f.rng.Intn(f.height)
		if f.cells[y][x].Mine {
			continue
		}
		f.cells[y][x].Mine = true
		placed++
	}
}

// computeAdjacent stores the neighbouring mine count on every non-mine cell.
func (f *Field) computeAdjacent() {
	for y := range f.cells {
		for x := range f.cells[y] {
			c := &f.cells[y][x]
			if c.Mine {
				continue
			}
			c.Adjacent = 0
			f.eachNeighbor(Point{x, y}, func(n Point) {
				if f.cells[n.Y][n.X].Mine {
					c.Adjacent++
				}
			})
		}
	}
}

// cell returns the cell at (x, y), panicking if it is off the grid.
func (f *Field) cell(x, y int) *Cell {
	if !f.Contains(x, y) {
		panic(&OutOfBoundsError{X: x, Y: y, Width: f.width, Height: f.height})
	}
	return &f.cells[y][x]
}

// Cell returns a copy of the cell at (x, y).
func (f *Field) Cell(x, y int) Cell {
	return *f.cell(x, y)
}

// IsMine reports whether (x, y) holds a mine.
func (f *Field) IsMine(x, y int) bool {
	return f.cell(x, y).Mine
}

// IsRevealed reports whether (x, y) has been revealed.
func (f *Field) IsRevealed(x, y int) bool {
	return f.cell(x, y).Revealed
}

// IsFlagged reports whether (x, y) carries a flag.
func (f *Field) IsFlagged(x, y int) bool {
	return f.cell(x, y).Flagged
}

// IsEmpty reports whether (x, y) is a non-mine cell with no adjacent mines.
func (f *Field) IsEmpty(x, y int) bool {
	return f.cell(x, y).IsEmpty()
}

// AdjacentMines returns the number of mines around (x, y), or 0 for a mine.
func (f *Field) AdjacentMines(x, y int) int {
	c := f.cell(x, y)
	if c.Mine {
		return 0
	}
	return c.Adjacent
}

// Flag marks (x, y) as a suspected mine. Flagging a flagged cell is a no-op.
func (f *Field) Flag(x, y int) {
	c := f.cell(x, y)
	if c.Flagged {
		return
	}
	c.Flagged = true
	f.flags++
}

// Unflag removes the flag from (x, y), if any.
func (f *Field) Unflag(x, y int) {
	c := f.cell(x, y)
	if !c.Flagged {
		return
	}
	c.Flagged = false
	f.flags--
}

// ToggleFlag flips the flag on (x, y) and returns the new state.
func (f *Field) ToggleFlag(x, y int) bool {
	if f.IsFlagged(x, y) {
		f.Unflag(x, y)
		return false
	}
	f.Flag(x, y)
	return true
}

// Reveal exposes the single cell at (x, y). It never cascades; callers
// follow up with FloodReveal when the cell is empty.
func (f *Field) Reveal(x, y int) {
	f.uncover(f.cell(x, y))
}

// RevealMines exposes every mine and leaves other cells untouched.
func (f *Field) RevealMines() {
	for y := range f.cells {
		for x := range f.cells[y] {
			if f.cells[y][x].Mine {
				f.uncover(&f.cells[y][x])
			}
		}
	}
}

// RevealAll exposes every cell.
func (f *Field) RevealAll() {
	for y := range f.cells {
		for x := range f.cells[y] {
			f.uncover(&f.cells[y][x])
		}
	}
}

// uncover reveals c and reports whether it was hidden. A revealed cell
// cannot hold a flag, so any flag on c is dropped from the count.
func (f *Field) uncover(c *Cell) bool {
	if c.Flagged {
		c.Flagged = false
		f.flags--
	}
	if c.Revealed {
		return false
	}
	c.Revealed = true
	return true
}

// Solved reports whether every non-mine cell has been revealed.
// Flags play no part in winning.
func (f *Field) Solved() bool {
	for y := range f.cells {
		for _, c := range f.cells[y] {
			if !c.Mine && !c.Revealed {
				return false
			}
		}
	}
	return true
}

// String renders the player's view row by row: [ ] for hidden cells,
// [X] for revealed mines and [n] for revealed counts.
func (f *Field) String() string {
	var b strings.Builder
	for y := range f.cells {
		for _, c := range f.cells[y] {
			switch {
			case !c.Revealed:
				b.WriteString("[ ]")
			case c.Mine:
				b.WriteString("[X]")
			default:
				fmt.Fprintf(&b, "[%d]", c.Adjacent)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
