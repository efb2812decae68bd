package game

import "github.com/google/uuid"

// Maze defines the sensing and movement contract a maze must offer to the
// agents exploring it. Agents are identified by the ID they entered with.
type Maze interface {
	// Dimensions returns the planar width (shared by both planar axes) and the depth.
	Dimensions() (width, depth int)

	// Enter registers the agent at the maze start. It must be called once,
	// before any other call for that agent.
	Enter(agent uuid.UUID) error

	// CurrentCoordinate returns where the agent stands.
	CurrentCoordinate(agent uuid.UUID) (Coordinate, error)

	// ScanCurrent returns the content of the agent's cell.
	ScanCurrent(agent uuid.UUID) (Content, error)

	// ScanAdjacent returns the content of the four planar neighbors ordered
	// north, east, south, west. Out of bounds neighbors are NotApplicable.
	ScanAdjacent(agent uuid.UUID) ([4]Content, error)

	// Move steps the agent one cell in the given planar direction.
	Move(agent uuid.UUID, d Direction) (Coordinate, error)

	// UsePortal takes the agent one level down. Only valid on a DownPortal.
	UsePortal(agent uuid.UUID) (Coordinate, error)
}
