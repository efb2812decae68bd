package droid

import (
	"fmt"
	"io"
	"strings"

	"github.com/beka-birhanu/vinom-droid/game"
)

// Glyph returns the three character cell used when rendering status s.
func (s CellStatus) Glyph() string {
	switch s {
	case Unknown:
		return "[ ]"
	case Visited:
		return "[.]"
	case OnPath:
		return "[X]"
	case Blocked:
		return "[*]"
	default:
		return "[?]"
	}
}

// Render draws the map level by level: a "Level: n" header followed by one
// line per row, and a trailing empty line.
func Render(m *LocalMap) string {
	var b strings.Builder
	_ = RenderTo(&b, m)
	return b.String()
}

// RenderTo writes the Render output of m to w.
func RenderTo(w io.Writer, m *LocalMap) error {
	width, depth := m.Dimensions()
	for z := 0; z < depth; z++ {
		if _, err := fmt.Fprintf(w, "Level: %d\n", z); err != nil {
			return err
		}
		for y := 0; y < width; y++ {
			var row strings.Builder
			for x := 0; x < width; x++ {
				s, _ := m.Status(game.Coordinate{X: x, Y: y, Z: z})
				row.WriteString(s.Glyph())
			}
			row.WriteByte('\n')
			if _, err := io.WriteString(w, row.String()); err != nil {
				return err
			}
		}
	}
	_, err := io.WriteString(w, "\n")
	return err
}
