package game

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/minesweeper/internal/telemetry"
)

// newRound deals a fresh field and returns to StatePlaying.
func (g *Game) newRound(ctx context.Context) {
	ctx, span := telemetry.Tracer("game").Start(ctx, "game.new_round")
	defer span.End()

	g.field.Reset(ctx)
	g.state = StatePlaying
	g.roundID = uuid.NewString()
	g.started = time.Now()
	g.moves = 0

	span.SetAttributes(
		attribute.String("round.id", g.roundID),
		attribute.Int("field.width", g.field.Width()),
		attribute.Int("field.height", g.field.Height()),
		attribute.Int("field.mines", g.field.MineCount()),
	)
	g.logger.Info("new round",
		slog.String("round", g.roundID),
		slog.Int("width", g.field.Width()),
		slog.Int("height", g.field.Height()),
		slog.Int("mines", g.field.MineCount()),
	)
}

// reveal opens a covered, unflagged cell. An empty cell cascades and a
// mine ends the round.
func (g *Game) reveal(ctx context.Context, x, y int) {
	if g.state != StatePlaying || g.field.IsRevealed(x, y) || g.field.IsFlagged(x, y) {
		return
	}

	ctx, span := telemetry.Tracer("game").Start(ctx, "game.reveal")
	defer span.End()
	span.SetAttributes(
		attribute.String("round.id", g.roundID),
		attribute.Int("cell.x", x),
		attribute.Int("cell.y", y),
	)

	g.moves++
	g.field.Reveal(x, y)
	g.logger.Debug("reveal", slog.String("round", g.roundID), slog.Int("x", x), slog.Int("y", y))

	switch {
	case g.field.IsMine(x, y):
		g.field.RevealMines()
		g.finish(ctx, StateLost)
		return
	case g.field.IsEmpty(x, y):
		n := g.field.FloodReveal(ctx, x, y)
		span.SetAttributes(attribute.Int("flood.revealed", n))
	}

	if g.field.Solved() {
		g.field.RevealAll()
		g.finish(ctx, StateWon)
	}
}

// toggleFlag flips the flag on a covered cell.
func (g *Game) toggleFlag(x, y int) {
	if g.state != StatePlaying || g.field.IsRevealed(x, y) {
		return
	}
	flagged := g.field.ToggleFlag(x, y)
	g.logger.Debug("flag",
		slog.String("round", g.roundID),
		slog.Int("x", x),
		slog.Int("y", y),
		slog.Bool("flagged", flagged),
	)
}

// finish ends the round. The next input starts a new one.
func (g *Game) finish(ctx context.Context, result State) {
	g.state = result
	elapsed := time.Since(g.started)

	_, span := telemetry.Tracer("game").Start(ctx, "game.round_over")
	span.SetAttributes(
		attribute.String("round.id", g.roundID),
		attribute.String("round.result", result.String()),
		attribute.Int("round.moves", g.moves),
		attribute.Int("round.flags", g.field.Flags()),
		attribute.Int64("round.duration_ms", elapsed.Milliseconds()),
	)
	span.End()

	g.logger.Info("round over",
		slog.String("round", g.roundID),
		slog.String("result", result.String()),
		slog.Int("moves", g.moves),
		slog.Duration("duration", elapsed),
	)
}
