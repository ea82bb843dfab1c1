package theme

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// DefaultFile is the embedded theme used when nothing else is configured.
const DefaultFile = "default.json"

// Theme is the JSON form of a palette: hex colours and single-character glyphs.
type Theme struct {
	Name       string         `json:"name"`
	Background string         `json:"background"` // Terminal background
	Board      string         `json:"board"`      // Cell brackets
	Covered    string         `json:"covered"`    // Hidden cell fill
	Revealed   string         `json:"revealed"`   // Revealed cell fill
	Flag       string         `json:"flag"`       // Flagged cell fill
	Mine       string         `json:"mine"`       // Mine glyph
	Highlight  string         `json:"highlight"`  // Hover brackets
	Text       string         `json:"text"`       // Title and status line
	Won        string         `json:"won"`        // Win banner
	Lost       string         `json:"lost"`       // Loss banner
	Numbers    map[int]string `json:"numbers"`    // Adjacency count (1-8) -> colour
	Glyphs     Glyphs         `json:"glyphs"`
}

// Glyphs are the characters drawn inside a cell.
type Glyphs struct {
	Mine    string `json:"mine"`
	Flag    string `json:"flag"`
	Covered string `json:"covered"`
}

// Palette is a Theme resolved to tcell colours and runes.
type Palette struct {
	Background tcell.Color
	Board      tcell.Color
	Covered    tcell.Color
	Revealed   tcell.Color
	Flag       tcell.Color
	Mine       tcell.Color
	Highlight  tcell.Color
	Text       tcell.Color
	Won        tcell.Color
	Lost       tcell.Color
	Numbers    [9]tcell.Color // Indexed by count; 0 is unused

	MineGlyph    rune
	FlagGlyph    rune
	CoveredGlyph rune
}

// LoadDefault loads and resolves the embedded default theme.
func LoadDefault() (Palette, error) {
	t, err := Load[Theme](DefaultFile)
	if err != nil {
		return Palette{}, err
	}
	return t.Palette()
}

// MustLoadDefault loads the default palette, panicking on error.
func MustLoadDefault() Palette {
	p, err := LoadDefault()
	if err != nil {
		panic(err)
	}
	return p
}

// Palette parses every colour in the theme.
func (t *Theme) Palette() (Palette, error) {
	var p Palette
	var errs []error

	parse := func(name, hex string) tcell.Color {
		c, err := ParseHexColor(hex)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
		}
		return c
	}

	p.Background = parse("background", t.Background)
	p.Board = parse("board", t.Board)
	p.Covered = parse("covered", t.Covered)
	p.Revealed = parse("revealed", t.Revealed)
	p.Flag = parse("flag", t.Flag)
	p.Mine = parse("mine", t.Mine)
	p.Highlight = parse("highlight", t.Highlight)
	p.Text = parse("text", t.Text)
	p.Won = parse("won", t.Won)
	p.Lost = parse("lost", t.Lost)

	for n := 1; n <= 8; n++ {
		hex, ok := t.Numbers[n]
		if !ok {
			errs = append(errs, fmt.Errorf("numbers: missing colour for %d", n))
			continue
		}
		p.Numbers[n] = parse(fmt.Sprintf("numbers[%d]", n), hex)
	}

	p.MineGlyph = glyphRune(t.Glyphs.Mine, '*')
	p.FlagGlyph = glyphRune(t.Glyphs.Flag, '!')
	p.CoveredGlyph = glyphRune(t.Glyphs.Covered, ' ')

	if len(errs) > 0 {
		return Palette{}, fmt.Errorf("theme %q: %w", t.Name, errors.Join(errs...))
	}
	return p, nil
}

// glyphRune returns the first rune of s, or fallback when s is empty.
func glyphRune(s string, fallback rune) rune {
	for _, r := range s {
		return r
	}
	return fallback
}
