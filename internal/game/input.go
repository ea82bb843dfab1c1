package game

import (
	"context"

	"github.com/gdamore/tcell/v2"
)

// handleEvent processes a single input event.
func (g *Game) handleEvent(ctx context.Context, ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKeyEvent(ctx, ev)
	case *tcell.EventMouse:
		g.handleMouseEvent(ctx, ev)
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

// handleKeyEvent processes keyboard input.
func (g *Game) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		g.running = false
	case tcell.KeyRune:
		g.handleRune(ctx, ev.Rune())
	default:
		if g.state.Over() {
			g.newRound(ctx)
			return
		}
		g.handleNavKey(ctx, ev.Key())
	}
}

// handleNavKey drives the hover cursor from the keyboard.
func (g *Game) handleNavKey(ctx context.Context, key tcell.Key) {
	switch key {
	case tcell.KeyUp:
		g.moveHover(0, -1)
	case tcell.KeyDown:
		g.moveHover(0, 1)
	case tcell.KeyLeft:
		g.moveHover(-1, 0)
	case tcell.KeyRight:
		g.moveHover(1, 0)
	case tcell.KeyEnter:
		if g.hover.ok {
			g.reveal(ctx, g.hover.x, g.hover.y)
		}
	}
}

// moveHover shifts the hover cursor by the given delta, staying on the board.
// With no cursor yet it appears at the top-left cell.
func (g *Game) moveHover(dx, dy int) {
	if !g.hover.ok {
		g.hover = cursor{ok: true}
		return
	}
	x, y := g.hover.x+dx, g.hover.y+dy
	if g.field.Contains(x, y) {
		g.hover.x, g.hover.y = x, y
	}
}

// handleRune processes character keys.
func (g *Game) handleRune(ctx context.Context, r rune) {
	switch r {
	case 'q', 'Q':
		g.running = false
		return
	case 'r', 'R':
		g.newRound(ctx)
		return
	}

	if g.state.Over() {
		g.newRound(ctx)
		return
	}

	if r == ' ' && g.hover.ok {
		g.toggleFlag(g.hover.x, g.hover.y)
	}
}

// handleMouseEvent tracks the hovered cell and acts on button presses.
// Buttons act once when pressed, not while held.
func (g *Game) handleMouseEvent(ctx context.Context, ev *tcell.EventMouse) {
	px, py := ev.Position()
	x, y, ok := g.layout.CellAt(px, py)
	g.hover = cursor{x: x, y: y, ok: ok}

	buttons := ev.Buttons() & (tcell.Button1 | tcell.Button2)
	pressed := buttons &^ g.buttons
	g.buttons = buttons
	if pressed == 0 {
		return
	}

	if g.state.Over() {
		g.newRound(ctx)
		return
	}
	if !ok {
		return
	}

	switch {
	case pressed&tcell.Button1 != 0:
		g.reveal(ctx, x, y)
	case pressed&tcell.Button2 != 0:
		g.toggleFlag(x, y)
	}
}
