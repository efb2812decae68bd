// Package game holds the value types shared by the maze and the agents
// exploring it, together with the Maze contract agents rely on.
package game

import "fmt"

// Content is the ground-truth classification of a maze cell.
type Content int

const (
	Open Content = iota
	Blocked
	End
	DownPortal
	NotApplicable // outside the maze bounds
)

func (c Content) String() string {
	switch c {
	case Open:
		return "Open"
	case Blocked:
		return "Blocked"
	case End:
		return "End"
	case DownPortal:
		return "DownPortal"
	case NotApplicable:
		return "NotApplicable"
	default:
		return fmt.Sprintf("Content(%d)", int(c))
	}
}

// Direction is one of the four planar directions an agent can move in.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Step pairs a direction with the planar offset it applies.
type Step struct {
	Direction Direction
	DX        int
	DY        int
}

// Steps lists the planar directions in scan and priority order. The index of
// each entry matches the index used by Maze.ScanAdjacent.
var Steps = [4]Step{
	{Direction: North, DX: 0, DY: -1},
	{Direction: East, DX: 1, DY: 0},
	{Direction: South, DX: 0, DY: 1},
	{Direction: West, DX: -1, DY: 0},
}

// Coordinate identifies a maze cell. Z is the depth level, growing downward.
type Coordinate struct {
	X int `json:"x"`
	Y int `json:"y"`
	Z int `json:"z"`
}

// Add returns the planar neighbor in direction d.
func (c Coordinate) Add(d Direction) Coordinate {
	for _, s := range Steps {
		if s.Direction == d {
			return Coordinate{X: c.X + s.DX, Y: c.Y + s.DY, Z: c.Z}
		}
	}
	return c
}

// Below returns the cell one level down at the same planar position.
func (c Coordinate) Below() Coordinate {
	return Coordinate{X: c.X, Y: c.Y, Z: c.Z + 1}
}

// DirectionTo returns the single planar direction leading from c to the
// planar position of other. The depth of other is ignored. ok is false when
// other is not a planar neighbor of c.
func (c Coordinate) DirectionTo(other Coordinate) (d Direction, ok bool) {
	for _, s := range Steps {
		if c.X+s.DX == other.X && c.Y+s.DY == other.Y {
			return s.Direction, true
		}
	}
	return 0, false
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d,%d)", c.X, c.Y, c.Z)
}
