package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/minesweeper/internal/field"
	"github.com/samdwyer/minesweeper/internal/theme"
)

const title = "MineSweeper"

// Canvas is the drawing surface the renderer writes to. *Screen implements it.
type Canvas interface {
	Clear()
	SetContent(x, y int, r rune, style tcell.Style)
	Show()
}

// Board is the read-only view of a minefield that gets drawn.
type Board interface {
	Width() int
	Height() int
	Cell(x, y int) field.Cell
}

// Mood selects the banner colour.
type Mood int

const (
	MoodNeutral Mood = iota
	MoodWon
	MoodLost
)

// HUD is everything drawn around the board.
type HUD struct {
	Hover          bool // Whether HoverX/HoverY point at a cell
	HoverX, HoverY int
	Status         string
	Banner         string
	Mood           Mood
}

// Renderer handles drawing the game to the screen.
type Renderer struct {
	canvas  Canvas
	layout  Layout
	palette theme.Palette
}

// NewRenderer creates a renderer drawing onto canvas.
func NewRenderer(canvas Canvas, layout Layout, palette theme.Palette) *Renderer {
	return &Renderer{
		canvas:  canvas,
		layout:  layout,
		palette: palette,
	}
}

// Render draws the board and HUD and flushes the canvas.
func (r *Renderer) Render(board Board, hud HUD) {
	r.canvas.Clear()

	textStyle := tcell.StyleDefault.Background(r.palette.Background).Foreground(r.palette.Text)
	r.drawText(r.layout.OffsetX, 0, title, textStyle.Bold(true))

	for y := 0; y < board.Height(); y++ {
		for x := 0; x < board.Width(); x++ {
			hovered := hud.Hover && hud.HoverX == x && hud.HoverY == y
			r.drawCell(x, y, board.Cell(x, y), hovered)
		}
	}

	r.drawText(r.layout.OffsetX, r.layout.StatusRow(), hud.Status, textStyle)

	if hud.Banner != "" {
		banner := textStyle.Bold(true)
		switch hud.Mood {
		case MoodWon:
			banner = banner.Foreground(r.palette.Won)
		case MoodLost:
			banner = banner.Foreground(r.palette.Lost)
		}
		r.drawText(r.layout.OffsetX, r.layout.BannerRow(), hud.Banner, banner)
	}

	r.canvas.Show()
}

// drawCell draws one "[g]" box. Only covered cells take the hover highlight.
func (r *Renderer) drawCell(x, y int, c field.Cell, hovered bool) {
	glyph, style := r.cellFace(c)

	bracket := style.Foreground(r.palette.Board)
	if hovered && !c.Revealed {
		bracket = bracket.Foreground(r.palette.Highlight).Bold(true)
	}

	px, py := r.layout.Origin(x, y)
	r.canvas.SetContent(px, py, '[', bracket)
	r.canvas.SetContent(px+1, py, glyph, style)
	r.canvas.SetContent(px+2, py, ']', bracket)
}

// cellFace returns the glyph and style for the inside of a cell.
func (r *Renderer) cellFace(c field.Cell) (rune, tcell.Style) {
	p := r.palette
	switch {
	case !c.Revealed && c.Flagged:
		return p.FlagGlyph, tcell.StyleDefault.Background(p.Flag).Foreground(p.Board)
	case !c.Revealed:
		return p.CoveredGlyph, tcell.StyleDefault.Background(p.Covered)
	case c.Mine:
		return p.MineGlyph, tcell.StyleDefault.Background(p.Revealed).Foreground(p.Mine).Bold(true)
	case c.Adjacent > 0:
		return rune('0' + c.Adjacent), tcell.StyleDefault.Background(p.Revealed).Foreground(p.Numbers[c.Adjacent])
	default:
		return ' ', tcell.StyleDefault.Background(p.Revealed)
	}
}

func (r *Renderer) drawText(x, y int, msg string, style tcell.Style) {
	for _, ch := range msg {
		r.canvas.SetContent(x, y, ch, style)
		x++
	}
}
