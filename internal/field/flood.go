package field

import (
	"context"

	"github.com/gammazero/deque"
	"github.com/zyedidia/generic/mapset"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/minesweeper/internal/telemetry"
)

// FloodReveal reveals (x, y) together with the connected region of empty
// cells around it and that region's numbered border. Every neighbour of a
// visited cell is revealed; the walk only continues through empty ones.
// Flags on cells it reveals are removed.
//
// Callers invoke it after revealing a cell for which IsEmpty holds. If the
// start cell is not empty only that cell is revealed.
//
// It returns the number of cells that went from hidden to revealed.
func (f *Field) FloodReveal(ctx context.Context, x, y int) int {
	start := f.cell(x, y)

	_, span := telemetry.Tracer("field").Start(ctx, "field.flood_reveal")
	defer span.End()

	revealed := 0
	reveal := func(c *Cell) {
		if f.uncover(c) {
			revealed++
		}
	}

	reveal(start)
	if !start.IsEmpty() {
		span.SetAttributes(attribute.Int("flood.revealed", revealed))
		return revealed
	}

	// Visited state lives only for this call.
	origin := Point{x, y}
	visited := mapset.New[Point]()
	visited.Put(origin)

	var work deque.Deque[Point]
	work.PushBack(origin)

	for work.Len() > 0 {
		p := work.PopBack()
		f.eachNeighbor(p, func(n Point) {
			c := &f.cells[n.Y][n.X]
			reveal(c)
			if c.IsEmpty() && !visited.Has(n) {
				visited.Put(n)
				work.PushBack(n)
			}
		})
	}

	span.SetAttributes(
		attribute.Int("flood.origin_x", x),
		attribute.Int("flood.origin_y", y),
		attribute.Int("flood.visited", visited.Size()),
		attribute.Int("flood.revealed", revealed),
	)
	return revealed
}
