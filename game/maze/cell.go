package maze

import "github.com/beka-birhanu/vinom-droid/game"

// Layout glyphs.
const (
	OpenGlyph    = '.'
	BlockedGlyph = '#'
	EndGlyph     = 'E'
	PortalGlyph  = 'v'
	StartGlyph   = 'S' // an open cell where agents enter
	AgentGlyph   = '@' // only used when rendering
	commentGlyph = ';'
)

// contentOf maps a layout glyph to the cell content it stands for.
func contentOf(glyph rune) (game.Content, bool) {
	switch glyph {
	case OpenGlyph, StartGlyph:
		return game.Open, true
	case BlockedGlyph:
		return game.Blocked, true
	case EndGlyph:
		return game.End, true
	case PortalGlyph:
		return game.DownPortal, true
	default:
		return game.NotApplicable, false
	}
}

// glyphOf maps cell content back to its layout glyph.
func glyphOf(c game.Content) rune {
	switch c {
	case game.Open:
		return OpenGlyph
	case game.Blocked:
		return BlockedGlyph
	case game.End:
		return EndGlyph
	case game.DownPortal:
		return PortalGlyph
	default:
		return '?'
	}
}
