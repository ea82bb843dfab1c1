// Package theme provides the embedded colour palette and glyphs used to
// draw the board.
package theme

import "embed"

// themeFS embeds all JSON files from this directory at build time.
//
//go:embed *.json
var themeFS embed.FS
