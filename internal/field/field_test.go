package field

import (
	"context"
	"errors"
	"math/rand"
	"testing"
)

func mustField(t *testing.T, width, height int, mines ...Point) *Field {
	t.Helper()
	f, err := NewWithMines(width, height, mines)
	if err != nil {
		t.Fatalf("NewWithMines(%d, %d, %v) failed: %v", width, height, mines, err)
	}
	return f
}

func countMines(f *Field) int {
	n := 0
	for y := 0; y < f.Height(); y++ {
		for x := 0; x < f.Width(); x++ {
			if f.IsMine(x, y) {
				n++
			}
		}
	}
	return n
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name                 string
		width, height, mines int
	}{
		{"zero width", 0, 5, 1},
		{"negative height", 5, -1, 1},
		{"no mines", 5, 5, 0},
		{"negative mines", 5, 5, -3},
		{"mines fill board", 3, 3, 9},
		{"more mines than cells", 2, 2, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := New(tt.width, tt.height, tt.mines, nil)
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("New(%d, %d, %d) error = %v, want ErrInvalidConfig", tt.width, tt.height, tt.mines, err)
			}
			if f != nil {
				t.Errorf("New(%d, %d, %d) returned a field alongside an error", tt.width, tt.height, tt.mines)
			}
		})
	}
}

func TestNewWithMinesRejectsBadLayouts(t *testing.T) {
	tests := []struct {
		name  string
		mines []Point
	}{
		{"empty layout", nil},
		{"outside grid", []Point{{3, 0}}},
		{"negative coordinate", []Point{{0, -1}}},
		{"duplicate", []Point{{1, 1}, {1, 1}}},
		{"every cell", []Point{{0, 0}, {1, 0}, {2, 0}, {0, 1}, {1, 1}, {2, 1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewWithMines(3, 2, tt.mines); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("NewWithMines(3, 2, %v) error = %v, want ErrInvalidConfig", tt.mines, err)
			}
		})
	}
}

func TestResetPlacesExactMineCount(t *testing.T) {
	tests := []struct {
		width, height, mines int
	}{
		{2, 1, 1},
		{3, 3, 8},
		{9, 9, 10},
		{15, 15, 30},
		{16, 16, 200},
		{30, 16, 99},
	}

	ctx := context.Background()
	for _, tt := range tests {
		for seed := int64(1); seed <= 20; seed++ {
			f, err := New(tt.width, tt.height, tt.mines, rand.New(rand.NewSource(seed)))
			if err != nil {
				t.Fatalf("New(%d, %d, %d) failed: %v", tt.width, tt.height, tt.mines, err)
			}
			f.Reset(ctx)
			if got := countMines(f); got != tt.mines {
				t.Errorf("%dx%d seed %d: mine count = %d, want %d", tt.width, tt.height, seed, got, tt.mines)
			}
		}
	}
}

func TestResetIsReproducibleWithSeed(t *testing.T) {
	ctx := context.Background()
	f1, _ := New(16, 16, 40, rand.New(rand.NewSource(12345)))
	f2, _ := New(16, 16, 40, rand.New(rand.NewSource(12345)))
	f1.Reset(ctx)
	f2.Reset(ctx)

	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			if f1.Cell(x, y) != f2.Cell(x, y) {
				t.Fatalf("Cell(%d, %d) differs between equally seeded fields: %+v != %+v",
					x, y, f1.Cell(x, y), f2.Cell(x, y))
			}
		}
	}
}

func TestAdjacentMinesSmallLayout(t *testing.T) {
	f := mustField(t, 3, 3, Point{0, 0}, Point{2, 2})

	// want[y][x]; mine cells report 0
	want := [3][3]int{
		{0, 1, 0},
		{1, 2, 1},
		{0, 1, 0},
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if got := f.AdjacentMines(x, y); got != want[y][x] {
				t.Errorf("AdjacentMines(%d, %d) = %d, want %d", x, y, got, want[y][x])
			}
		}
	}

	if f.IsEmpty(0, 0) {
		t.Error("IsEmpty(0, 0) = true for a mine")
	}
	if !f.IsEmpty(2, 0) {
		t.Error("IsEmpty(2, 0) = false, want true")
	}
	if f.IsEmpty(1, 1) {
		t.Error("IsEmpty(1, 1) = true for a numbered cell")
	}
}

func TestAdjacentMinesMatchesBruteForce(t *testing.T) {
	ctx := context.Background()
	for seed := int64(1); seed <= 25; seed++ {
		f, _ := New(12, 9, 25, rand.New(rand.NewSource(seed)))
		f.Reset(ctx)

		for y := 0; y < f.Height(); y++ {
			for x := 0; x < f.Width(); x++ {
				if f.IsMine(x, y) {
					continue
				}
				want := 0
				for dy := -1; dy <= 1; dy++ {
					for dx := -1; dx <= 1; dx++ {
						nx, ny := x+dx, y+dy
						if (dx != 0 || dy != 0) && f.Contains(nx, ny) && f.IsMine(nx, ny) {
							want++
						}
					}
				}
				if got := f.AdjacentMines(x, y); got != want {
					t.Errorf("seed %d: AdjacentMines(%d, %d) = %d, want %d", seed, x, y, got, want)
				}
			}
		}
	}
}

func TestFlagIsIdempotent(t *testing.T) {
	f := mustField(t, 3, 3, Point{1, 1})

	f.Flag(0, 0)
	f.Flag(0, 0)
	if !f.IsFlagged(0, 0) {
		t.Error("IsFlagged(0, 0) = false after Flag, want true")
	}
	if got := f.Flags(); got != 1 {
		t.Errorf("Flags() after double Flag = %d, want 1", got)
	}
	if got := f.MinesRemaining(); got != 0 {
		t.Errorf("MinesRemaining() = %d, want 0", got)
	}

	f.Unflag(0, 0)
	f.Unflag(0, 0)
	if f.IsFlagged(0, 0) {
		t.Error("IsFlagged(0, 0) = true after Unflag, want false")
	}
	if got := f.Flags(); got != 0 {
		t.Errorf("Flags() after double Unflag = %d, want 0", got)
	}
}

func TestToggleFlag(t *testing.T) {
	f := mustField(t, 3, 3, Point{1, 1})

	if !f.ToggleFlag(2, 2) {
		t.Error("ToggleFlag(2, 2) on unflagged cell = false, want true")
	}
	f.ToggleFlag(0, 2)
	if got := f.MinesRemaining(); got != -1 {
		t.Errorf("MinesRemaining() with two flags = %d, want -1", got)
	}
	if f.ToggleFlag(2, 2) {
		t.Error("ToggleFlag(2, 2) on flagged cell = true, want false")
	}
	if got := f.Flags(); got != 1 {
		t.Errorf("Flags() = %d, want 1", got)
	}
}

func TestRevealDoesNotCascade(t *testing.T) {
	f := mustField(t, 4, 4, Point{3, 3})

	f.Reveal(0, 0)
	if !f.IsRevealed(0, 0) {
		t.Fatal("IsRevealed(0, 0) = false after Reveal")
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if (x != 0 || y != 0) && f.IsRevealed(x, y) {
				t.Errorf("IsRevealed(%d, %d) = true, Reveal must touch one cell only", x, y)
			}
		}
	}
}

func TestRevealMines(t *testing.T) {
	mines := []Point{{0, 0}, {2, 1}, {3, 3}}
	f := mustField(t, 4, 4, mines...)
	f.Reveal(1, 3)

	f.RevealMines()

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			want := f.IsMine(x, y) || (x == 1 && y == 3)
			if got := f.IsRevealed(x, y); got != want {
				t.Errorf("IsRevealed(%d, %d) = %v, want %v", x, y, got, want)
			}
		}
	}
	if f.Solved() {
		t.Error("Solved() = true after RevealMines with hidden safe cells")
	}
}

func TestRevealAll(t *testing.T) {
	f := mustField(t, 3, 2, Point{1, 0})
	f.RevealAll()

	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			if !f.IsRevealed(x, y) {
				t.Errorf("IsRevealed(%d, %d) = false after RevealAll", x, y)
			}
		}
	}
	if !f.Solved() {
		t.Error("Solved() = false after RevealAll")
	}
}

func TestRevealDropsFlag(t *testing.T) {
	f := mustField(t, 3, 3, Point{0, 0}, Point{2, 2})

	f.Flag(1, 1)
	f.Reveal(1, 1)
	if f.IsFlagged(1, 1) {
		t.Error("IsFlagged(1, 1) = true after Reveal, want false")
	}
	if got := f.Flags(); got != 0 {
		t.Errorf("Flags() after Reveal = %d, want 0", got)
	}

	// Flagged mines shown at the end of a round leave the count too
	f.Flag(0, 0)
	f.Flag(0, 1)
	f.RevealMines()
	if got := f.Flags(); got != 1 {
		t.Errorf("Flags() after RevealMines = %d, want 1", got)
	}
	f.RevealAll()
	if got, want := f.MinesRemaining(), 2; got != want {
		t.Errorf("MinesRemaining() after RevealAll = %d, want %d", got, want)
	}
}

func TestSolved(t *testing.T) {
	f := mustField(t, 3, 3, Point{0, 0}, Point{2, 2})
	if f.Solved() {
		t.Fatal("Solved() = true on a fresh field")
	}

	// Flags on every mine do not win the round
	f.Flag(0, 0)
	f.Flag(2, 2)
	if f.Solved() {
		t.Fatal("Solved() = true with all mines flagged and safe cells hidden")
	}

	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if f.IsMine(x, y) {
				continue
			}
			if f.Solved() {
				t.Fatalf("Solved() = true before revealing (%d, %d)", x, y)
			}
			f.Reveal(x, y)
		}
	}
	if !f.Solved() {
		t.Error("Solved() = false with every safe cell revealed")
	}

	f.Unflag(0, 0)
	if !f.Solved() {
		t.Error("Solved() depends on flags, want it to ignore them")
	}
}

func TestResetClearsHistory(t *testing.T) {
	ctx := context.Background()
	f, _ := New(8, 8, 10, rand.New(rand.NewSource(7)))
	f.Reset(ctx)

	f.Flag(1, 1)
	f.Flag(2, 2)
	f.RevealAll()

	f.Reset(ctx)

	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if f.IsRevealed(x, y) || f.IsFlagged(x, y) {
				t.Errorf("cell (%d, %d) = %+v after Reset, want hidden and unflagged", x, y, f.Cell(x, y))
			}
		}
	}
	if f.Flags() != 0 {
		t.Errorf("Flags() after Reset = %d, want 0", f.Flags())
	}
	if f.Solved() {
		t.Error("Solved() = true after Reset")
	}
	if got := countMines(f); got != 10 {
		t.Errorf("mine count after second Reset = %d, want 10", got)
	}
}

func TestOutOfBoundsPanics(t *testing.T) {
	f := mustField(t, 3, 3, Point{1, 1})

	ops := map[string]func(){
		"IsMine":        func() { f.IsMine(3, 0) },
		"IsRevealed":    func() { f.IsRevealed(-1, 0) },
		"IsFlagged":     func() { f.IsFlagged(0, 3) },
		"IsEmpty":       func() { f.IsEmpty(0, -1) },
		"AdjacentMines": func() { f.AdjacentMines(5, 5) },
		"Flag":          func() { f.Flag(3, 3) },
		"Reveal":        func() { f.Reveal(-1, -1) },
		"FloodReveal":   func() { f.FloodReveal(context.Background(), 9, 0) },
	}

	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			defer func() {
				r := recover()
				err, ok := r.(error)
				if !ok {
					t.Fatalf("%s panicked with %v, want an error", name, r)
				}
				if !errors.Is(err, ErrOutOfBounds) {
					t.Errorf("%s panic = %v, want ErrOutOfBounds", name, err)
				}
				var oob *OutOfBoundsError
				if !errors.As(err, &oob) || oob.Width != 3 || oob.Height != 3 {
					t.Errorf("%s panic = %#v, want *OutOfBoundsError on 3x3", name, err)
				}
			}()
			op()
		})
	}
}

func TestString(t *testing.T) {
	f := mustField(t, 2, 2, Point{0, 0})
	f.Reveal(1, 1)
	if got, want := f.String(), "[ ][ ]\n[ ][1]\n"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	f.RevealMines()
	if got, want := f.String(), "[X][ ]\n[ ][1]\n"; got != want {
		t.Errorf("String() after RevealMines = %q, want %q", got, want)
	}
}
