package droid

import (
	"errors"
	"fmt"

	"github.com/beka-birhanu/vinom-droid/game"
)

// CellStatus is what the droid believes about a cell.
type CellStatus int

const (
	Unknown CellStatus = iota // never observed
	OnPath                    // part of the live trail
	Visited                   // left behind after a backtrack
	Blocked                   // sensed as impassable
)

func (s CellStatus) String() string {
	switch s {
	case Unknown:
		return "Unknown"
	case OnPath:
		return "OnPath"
	case Visited:
		return "Visited"
	case Blocked:
		return "Blocked"
	default:
		return fmt.Sprintf("CellStatus(%d)", int(s))
	}
}

var (
	ErrOutOfBounds       = errors.New("coordinate is outside the local map")
	ErrInvalidTransition = errors.New("invalid cell status transition")
	ErrInvalidDimensions = errors.New("invalid local map dimensions")
)

// transitions lists, per status, the statuses a cell may move to.
var transitions = map[CellStatus][]CellStatus{
	Unknown: {OnPath, Blocked},
	OnPath:  {Visited},
	Visited: {OnPath},
}

// LocalMap is the droid's belief about every cell of a width x width x depth maze.
type LocalMap struct {
	width int
	depth int
	cells []CellStatus // indexed by index()
}

// NewLocalMap creates a map with every cell Unknown.
func NewLocalMap(width, depth int) (*LocalMap, error) {
	if width <= 0 || depth <= 0 {
		return nil, fmt.Errorf("%w: width %d, depth %d", ErrInvalidDimensions, width, depth)
	}
	return &LocalMap{
		width: width,
		depth: depth,
		cells: make([]CellStatus, width*width*depth),
	}, nil
}

// Dimensions returns the planar width and the depth of the map.
func (m *LocalMap) Dimensions() (int, int) {
	return m.width, m.depth
}

func (m *LocalMap) inBound(c game.Coordinate) bool {
	return c.X >= 0 && c.X < m.width && c.Y >= 0 && c.Y < m.width && c.Z >= 0 && c.Z < m.depth
}

func (m *LocalMap) index(c game.Coordinate) int {
	return (c.Z*m.width+c.Y)*m.width + c.X
}

// Status returns the status recorded for c.
func (m *LocalMap) Status(c game.Coordinate) (CellStatus, error) {
	if !m.inBound(c) {
		return Unknown, fmt.Errorf("%w: %s", ErrOutOfBounds, c)
	}
	return m.cells[m.index(c)], nil
}

// Mark records status s for c. Marking a cell with the status it already
// has is a no-op; Blocked is terminal.
func (m *LocalMap) Mark(c game.Coordinate, s CellStatus) error {
	current, err := m.Status(c)
	if err != nil {
		return err
	}
	if current == s {
		return nil
	}
	for _, allowed := range transitions[current] {
		if allowed == s {
			m.cells[m.index(c)] = s
			return nil
		}
	}
	return fmt.Errorf("%w: %s from %s to %s", ErrInvalidTransition, c, current, s)
}

// Coordinates returns every cell holding status s, ordered by level, row and column.
func (m *LocalMap) Coordinates(s CellStatus) []game.Coordinate {
	var out []game.Coordinate
	for z := 0; z < m.depth; z++ {
		for y := 0; y < m.width; y++ {
			for x := 0; x < m.width; x++ {
				c := game.Coordinate{X: x, Y: y, Z: z}
				if m.cells[m.index(c)] == s {
					out = append(out, c)
				}
			}
		}
	}
	return out
}

// Count returns how many cells hold status s.
func (m *LocalMap) Count(s CellStatus) int {
	n := 0
	for _, cell := range m.cells {
		if cell == s {
			n++
		}
	}
	return n
}

// Clone returns an independent copy of the map.
func (m *LocalMap) Clone() *LocalMap {
	cells := make([]CellStatus, len(m.cells))
	copy(cells, m.cells)
	return &LocalMap{width: m.width, depth: m.depth, cells: cells}
}
