package game

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/minesweeper/internal/field"
	"github.com/samdwyer/minesweeper/internal/theme"
	"github.com/samdwyer/minesweeper/internal/ui"
)

// cursor is the last pointer position mapped onto the board.
type cursor struct {
	x, y int
	ok   bool
}

// Game holds the entire game state.
type Game struct {
	cfg      Config
	logger   *slog.Logger
	screen   *ui.Screen
	renderer *ui.Renderer
	layout   ui.Layout
	field    *field.Field
	state    State
	running  bool

	roundID string
	started time.Time
	moves   int

	hover   cursor
	buttons tcell.ButtonMask // Mouse buttons held at the last event
}

// New creates a game bound to the terminal.
func New(cfg Config, logger *slog.Logger) (*Game, error) {
	g, err := newGame(cfg, logger)
	if err != nil {
		return nil, err
	}

	palette, err := theme.LoadDefault()
	if err != nil {
		return nil, fmt.Errorf("load theme: %w", err)
	}

	screen, err := ui.NewScreen(palette.Background)
	if err != nil {
		return nil, fmt.Errorf("open screen: %w", err)
	}

	g.screen = screen
	g.renderer = ui.NewRenderer(screen, g.layout, palette)
	return g, nil
}

// newGame builds everything except the terminal.
func newGame(cfg Config, logger *slog.Logger) (*Game, error) {
	var rng *rand.Rand
	if cfg.Seed != 0 {
		rng = rand.New(rand.NewSource(cfg.Seed))
	}

	f, err := field.New(cfg.Width, cfg.Height, cfg.Mines, rng)
	if err != nil {
		return nil, fmt.Errorf("create field: %w", err)
	}

	return &Game{
		cfg:     cfg,
		logger:  logger,
		layout:  ui.NewLayout(cfg.Width, cfg.Height),
		field:   f,
		state:   StateNotInitialized,
		running: true,
	}, nil
}

// Run executes the main game loop until the player quits or ctx is done.
func (g *Game) Run(ctx context.Context) error {
	defer g.screen.Close()

	// Unblock PollEvent when the context is cancelled. The loop condition
	// sees the cancellation on the next event either way.
	stop := context.AfterFunc(ctx, func() {
		if err := g.screen.Interrupt(); err != nil {
			g.logger.Warn("interrupt event not queued", slog.Any("error", err))
		}
	})
	defer stop()

	g.newRound(ctx)

	for g.running && ctx.Err() == nil {
		g.renderer.Render(g.field, g.hud())
		g.handleEvent(ctx, g.screen.PollEvent())
	}

	g.logger.Info("game stopped", slog.String("round", g.roundID), slog.String("state", g.state.String()))
	return nil
}

// State returns the state of the current round.
func (g *Game) State() State {
	return g.state
}

// hud describes the status line, hover highlight and banner.
func (g *Game) hud() ui.HUD {
	h := ui.HUD{
		Status: fmt.Sprintf("Mines: %d  Moves: %d   click: reveal  right/space: flag  r: new  q: quit",
			g.field.MinesRemaining(), g.moves),
		Mood: ui.MoodNeutral,
	}

	if g.state == StatePlaying && g.hover.ok {
		h.Hover, h.HoverX, h.HoverY = true, g.hover.x, g.hover.y
	}

	switch g.state {
	case StateWon:
		h.Banner, h.Mood = "You won! Click or press a key for a new round.", ui.MoodWon
	case StateLost:
		h.Banner, h.Mood = "Boom. Click or press a key for a new round.", ui.MoodLost
	}
	return h
}
