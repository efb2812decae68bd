package maze

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/beka-birhanu/vinom-droid/game"
)

// Parse builds a maze from a text layout.
//
// Each level is a square block of rows, level 0 first; levels are separated
// by blank lines. Lines starting with ';' are comments. Whitespace inside a
// row is ignored. Glyphs:
//
//	.  open       #  blocked     E  end
//	v  portal     S  open start cell
//
// Without an S the start is (0,0,0).
func Parse(layout string) (*GridMaze, error) {
	return Read(strings.NewReader(layout))
}

// ParseFile reads a layout from the named file.
func ParseFile(path string) (*GridMaze, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Read(f)
}

// Read builds a maze from a layout read from r. See Parse for the format.
func Read(r io.Reader) (*GridMaze, error) {
	levels, err := scanLevels(r)
	if err != nil {
		return nil, err
	}
	if len(levels) == 0 {
		return nil, fmt.Errorf("%w: no levels", ErrInvalidLayout)
	}

	width := len(levels[0][0].cells)
	m, err := New(width, len(levels))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidLayout, err)
	}

	startSeen := false
	for z, rows := range levels {
		if len(rows) != width {
			return nil, fmt.Errorf("%w: level %d has %d rows, want %d", ErrInvalidLayout, z, len(rows), width)
		}
		for y, row := range rows {
			if len(row.cells) != width {
				return nil, fmt.Errorf("%w: line %d has %d cells, want %d", ErrInvalidLayout, row.line, len(row.cells), width)
			}
			for x, glyph := range row.cells {
				content, ok := contentOf(glyph)
				if !ok {
					return nil, fmt.Errorf("%w: line %d: unknown glyph %q", ErrInvalidLayout, row.line, glyph)
				}
				c := game.Coordinate{X: x, Y: y, Z: z}
				if content == game.DownPortal && z == len(levels)-1 {
					return nil, fmt.Errorf("%w: line %d: portal %s on the last level", ErrInvalidLayout, row.line, c)
				}
				if glyph == StartGlyph {
					if startSeen {
						return nil, fmt.Errorf("%w: line %d: second start cell %s", ErrInvalidLayout, row.line, c)
					}
					startSeen = true
					m.start = c
				}
				m.grid[z][y][x] = content
			}
		}
	}

	if m.Content(m.start) == game.Blocked {
		return nil, fmt.Errorf("%w: start %s is blocked", ErrInvalidLayout, m.start)
	}

	return m, nil
}

type layoutRow struct {
	line  int
	cells []rune
}

// scanLevels splits the layout into levels of rows, dropping comments and
// whitespace.
func scanLevels(r io.Reader) ([][]layoutRow, error) {
	var (
		levels  [][]layoutRow
		current []layoutRow
		line    int
	)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(text, string(commentGlyph)) {
			continue
		}
		if text == "" {
			if len(current) > 0 {
				levels = append(levels, current)
				current = nil
			}
			continue
		}

		cells := make([]rune, 0, len(text))
		for _, glyph := range text {
			if !unicode.IsSpace(glyph) {
				cells = append(cells, glyph)
			}
		}
		current = append(current, layoutRow{line: line, cells: cells})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(current) > 0 {
		levels = append(levels, current)
	}

	return levels, nil
}
