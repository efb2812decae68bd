/*
Package maze provides the ground-truth grid that agents explore.

A GridMaze is a cube of width x width cells per level, stacked depth levels
deep. Cells are Open, Blocked, End or DownPortal; portals lead one level down
at the same planar position and never back up.

Mazes are built from a text layout (see Parse) or programmatically with New,
Set and SetStart. Agents register with Enter and then sense and move through
the game.Maze contract; the maze validates every move against its bounds and
contents.
*/
package maze

import (
	"errors"
	"fmt"
	"strings"

	"github.com/beka-birhanu/vinom-droid/game"
	"github.com/google/uuid"
)

const (
	// MaxDimension caps both the width and the depth of a maze.
	MaxDimension = 64
)

var (
	ErrInvalidDimensions = errors.New("invalid maze dimensions")
	ErrInvalidLayout     = errors.New("invalid maze layout")
	ErrOutOfBounds       = errors.New("coordinate is out of the maze")
	ErrInvalidMove       = errors.New("invalid move request")
	ErrNotPortal         = errors.New("agent is not standing on a portal")
	ErrAgentNotFound     = errors.New("agent has not entered the maze")
	ErrAgentRegistered   = errors.New("agent already entered the maze")
)

// GridMaze is a layered square grid implementing game.Maze.
type GridMaze struct {
	width  int                           // Cells per planar axis
	depth  int                           // Number of levels
	grid   [][][]game.Content            // grid[z][y][x]
	start  game.Coordinate               // Where agents enter
	agents map[uuid.UUID]game.Coordinate // Current position of each registered agent
}

var _ game.Maze = (*GridMaze)(nil)

// New creates an all-open maze of the given dimensions with its start at the origin.
func New(width, depth int) (*GridMaze, error) {
	if min(width, depth) <= 0 || max(width, depth) > MaxDimension {
		return nil, fmt.Errorf("%w: width %d, depth %d", ErrInvalidDimensions, width, depth)
	}

	grid := make([][][]game.Content, depth)
	for z := range grid {
		grid[z] = make([][]game.Content, width)
		for y := range grid[z] {
			grid[z][y] = make([]game.Content, width)
		}
	}

	return &GridMaze{
		width:  width,
		depth:  depth,
		grid:   grid,
		agents: make(map[uuid.UUID]game.Coordinate),
	}, nil
}

// InBound reports whether c lies inside the maze.
func (m *GridMaze) InBound(c game.Coordinate) bool {
	return c.X >= 0 && c.X < m.width && c.Y >= 0 && c.Y < m.width && c.Z >= 0 && c.Z < m.depth
}

// Content returns the ground truth at c, NotApplicable when out of bounds.
func (m *GridMaze) Content(c game.Coordinate) game.Content {
	if !m.InBound(c) {
		return game.NotApplicable
	}
	return m.grid[c.Z][c.Y][c.X]
}

// Set changes the content of a cell.
func (m *GridMaze) Set(c game.Coordinate, content game.Content) error {
	if !m.InBound(c) {
		return fmt.Errorf("%w: %s", ErrOutOfBounds, c)
	}
	if content == game.NotApplicable {
		return fmt.Errorf("%w: cell %s cannot be %s", ErrInvalidLayout, c, content)
	}
	m.grid[c.Z][c.Y][c.X] = content
	return nil
}

// SetStart moves the entry point of the maze.
func (m *GridMaze) SetStart(c game.Coordinate) error {
	if !m.InBound(c) {
		return fmt.Errorf("%w: %s", ErrOutOfBounds, c)
	}
	m.start = c
	return nil
}

// Start returns the entry point of the maze.
func (m *GridMaze) Start() game.Coordinate {
	return m.start
}

// Dimensions returns the planar width and the depth.
func (m *GridMaze) Dimensions() (int, int) {
	return m.width, m.depth
}

// Enter registers the agent at the start cell.
func (m *GridMaze) Enter(agent uuid.UUID) error {
	if _, ok := m.agents[agent]; ok {
		return fmt.Errorf("%w: %s", ErrAgentRegistered, agent)
	}
	if m.Content(m.start) == game.Blocked {
		return fmt.Errorf("%w: start %s is blocked", ErrInvalidLayout, m.start)
	}
	m.agents[agent] = m.start
	return nil
}

// CurrentCoordinate returns the position of the agent.
func (m *GridMaze) CurrentCoordinate(agent uuid.UUID) (game.Coordinate, error) {
	pos, ok := m.agents[agent]
	if !ok {
		return game.Coordinate{}, fmt.Errorf("%w: %s", ErrAgentNotFound, agent)
	}
	return pos, nil
}

// ScanCurrent returns the content under the agent.
func (m *GridMaze) ScanCurrent(agent uuid.UUID) (game.Content, error) {
	pos, err := m.CurrentCoordinate(agent)
	if err != nil {
		return game.NotApplicable, err
	}
	return m.Content(pos), nil
}

// ScanAdjacent returns the content of the four planar neighbors in game.Steps order.
func (m *GridMaze) ScanAdjacent(agent uuid.UUID) ([4]game.Content, error) {
	var adj [4]game.Content
	pos, err := m.CurrentCoordinate(agent)
	if err != nil {
		return adj, err
	}
	for i, s := range game.Steps {
		adj[i] = m.Content(pos.Add(s.Direction))
	}
	return adj, nil
}

// IsValidMove checks that the neighbor in direction d exists and is not blocked.
func (m *GridMaze) IsValidMove(from game.Coordinate, d game.Direction) bool {
	to := from.Add(d)
	if to == from || !m.InBound(from) || !m.InBound(to) {
		return false
	}
	return m.Content(to) != game.Blocked
}

// Move steps the agent one cell in direction d.
func (m *GridMaze) Move(agent uuid.UUID, d game.Direction) (game.Coordinate, error) {
	pos, err := m.CurrentCoordinate(agent)
	if err != nil {
		return game.Coordinate{}, err
	}
	if !m.IsValidMove(pos, d) {
		return pos, fmt.Errorf("%w: %s from %s", ErrInvalidMove, d, pos)
	}

	next := pos.Add(d)
	m.agents[agent] = next
	return next, nil
}

// UsePortal takes the agent one level down.
func (m *GridMaze) UsePortal(agent uuid.UUID) (game.Coordinate, error) {
	pos, err := m.CurrentCoordinate(agent)
	if err != nil {
		return game.Coordinate{}, err
	}
	if m.Content(pos) != game.DownPortal {
		return pos, fmt.Errorf("%w: %s", ErrNotPortal, pos)
	}

	next := pos.Below()
	if !m.InBound(next) {
		return pos, fmt.Errorf("%w: portal at %s leads out of the maze", ErrInvalidMove, pos)
	}
	if m.Content(next) == game.Blocked {
		return pos, fmt.Errorf("%w: portal at %s leads into a blocked cell", ErrInvalidMove, pos)
	}
	m.agents[agent] = next
	return next, nil
}

// String provides a textual representation of the maze, level by level.
// Registered agents are drawn on top of the cell they occupy.
func (m *GridMaze) String() string {
	occupied := make(map[game.Coordinate]struct{}, len(m.agents))
	for _, pos := range m.agents {
		occupied[pos] = struct{}{}
	}

	var b strings.Builder
	for z := 0; z < m.depth; z++ {
		fmt.Fprintf(&b, "Level: %d\n", z)
		for y := 0; y < m.width; y++ {
			for x := 0; x < m.width; x++ {
				if x > 0 {
					b.WriteByte(' ')
				}
				c := game.Coordinate{X: x, Y: y, Z: z}
				if _, ok := occupied[c]; ok {
					b.WriteRune(AgentGlyph)
					continue
				}
				if c == m.start && m.grid[z][y][x] == game.Open {
					b.WriteRune(StartGlyph)
					continue
				}
				b.WriteRune(glyphOf(m.grid[z][y][x]))
			}
			b.WriteByte('\n')
		}
	}

	return b.String()
}
