/*
Package droid implements an agent that explores an unknown maze through the
game.Maze contract.

The droid only senses its own cell and the four planar neighbors. It keeps a
private LocalMap of what it has learned and a Path Stack holding the live
trail from the start to its position, and walks the maze depth first: it
records walls, drops through portals, advances into the first unexplored
neighbor (north, east, south, west) and backtracks along the trail at dead
ends, until it stands on the End cell.
*/
package droid

import (
	"errors"
	"fmt"

	"github.com/beka-birhanu/vinom-droid/game"
	"github.com/beka-birhanu/vinom-droid/stack"
	"github.com/google/uuid"
)

var (
	// ErrMazeUnsolvable is returned when a backtrack finds the trail empty:
	// every reachable cell was explored without reaching End.
	ErrMazeUnsolvable = errors.New("maze unsolvable from available information")
	// ErrPortalUnwind is returned when a backtrack would have to climb back
	// through a one-way portal.
	ErrPortalUnwind = errors.New("backtrack would ascend a one-way portal")
	// ErrEnvironment wraps every error reported by the maze.
	ErrEnvironment = errors.New("maze rejected droid request")
)

// Logger is the logging surface the droid writes to.
type Logger interface {
	Debug(msg string)
	Info(msg string)
}

// Observer is called after the droid enters the maze (step 0) and after every
// cycle with the number of cycles done. The map must not be retained or
// modified; use Clone to keep a snapshot.
type Observer func(step int, m *LocalMap)

// Option configures a Droid.
type Option func(*Droid)

// WithID sets the identifier the droid registers with. Defaults to a random UUID.
func WithID(id uuid.UUID) Option {
	return func(d *Droid) {
		d.id = id
	}
}

// WithLogger sets the logger used to trace decisions.
func WithLogger(l Logger) Option {
	return func(d *Droid) {
		if l != nil {
			d.logger = l
		}
	}
}

// WithObserver registers a function called at every cycle boundary.
func WithObserver(o Observer) Option {
	return func(d *Droid) {
		d.observer = o
	}
}

// Droid is a depth-first maze explorer.
type Droid struct {
	id       uuid.UUID                     // Identifier used with the maze.
	name     string                        // Display name.
	localMap *LocalMap                     // What the droid knows about each cell.
	path     *stack.Stack[game.Coordinate] // Live trail, start at the bottom.
	logger   Logger                        // Decision trace.
	observer Observer                      // Called at every cycle boundary.
}

// New creates a droid with the given display name.
func New(name string, options ...Option) *Droid {
	d := &Droid{
		id:     uuid.New(),
		name:   name,
		path:   stack.New[game.Coordinate](),
		logger: nopLogger{},
	}
	for _, opt := range options {
		opt(d)
	}
	return d
}

// ID returns the identifier the droid registers with.
func (d *Droid) ID() uuid.UUID {
	return d.id
}

// Name returns the display name.
func (d *Droid) Name() string {
	return d.name
}

// Map returns the droid's local map, nil before Run.
func (d *Droid) Map() *LocalMap {
	return d.localMap
}

// Path returns the live trail ordered from the start to the current cell.
func (d *Droid) Path() []game.Coordinate {
	return d.path.Items()
}

// Run explores m until the droid stands on End and returns the number of
// cycles it took. Each run starts from a fresh local map and trail.
func (d *Droid) Run(m game.Maze) (int, error) {
	if err := m.Enter(d.id); err != nil {
		return 0, envError("entering maze", err)
	}

	width, depth := m.Dimensions()
	localMap, err := NewLocalMap(width, depth)
	if err != nil {
		return 0, err
	}
	d.localMap = localMap
	d.path = stack.New[game.Coordinate]()

	start, err := m.CurrentCoordinate(d.id)
	if err != nil {
		return 0, envError("locating start", err)
	}
	if err := d.localMap.Mark(start, OnPath); err != nil {
		return 0, err
	}
	d.path.Push(start)
	d.logger.Debug(fmt.Sprintf("%s entered at %s", d.name, start))
	d.observe(0)

	steps := 0
	for {
		content, err := m.ScanCurrent(d.id)
		if err != nil {
			return steps, envError("scanning current cell", err)
		}
		if content == game.End {
			break
		}

		if err := d.decide(m); err != nil {
			return steps, err
		}
		steps++
		d.observe(steps)
	}

	d.logger.Info(fmt.Sprintf("%s completed the maze in %d steps", d.name, steps))
	return steps, nil
}

// decide runs one cycle: record walls, then descend, advance or backtrack.
func (d *Droid) decide(m game.Maze) error {
	current, err := m.CurrentCoordinate(d.id)
	if err != nil {
		return envError("locating droid", err)
	}
	adj, err := m.ScanAdjacent(d.id)
	if err != nil {
		return envError("scanning neighbors", err)
	}

	if err := d.recordBlocks(current, adj); err != nil {
		return err
	}

	content, err := m.ScanCurrent(d.id)
	if err != nil {
		return envError("scanning current cell", err)
	}
	if content == game.DownPortal {
		return d.descend(m, current)
	}

	dir, found, err := d.nextMove(current, adj)
	if err != nil {
		return err
	}
	if found {
		return d.advance(m, current, dir)
	}
	return d.backtrack(m, current)
}

// recordBlocks marks every neighbor sensed as Blocked, without visiting it.
func (d *Droid) recordBlocks(current game.Coordinate, adj [4]game.Content) error {
	for i, s := range game.Steps {
		if adj[i] != game.Blocked {
			continue
		}
		if err := d.localMap.Mark(current.Add(s.Direction), Blocked); err != nil {
			return err
		}
	}
	return nil
}

// nextMove picks the first neighbor, in game.Steps order, that is passable,
// inside the maze and still Unknown.
func (d *Droid) nextMove(current game.Coordinate, adj [4]game.Content) (game.Direction, bool, error) {
	for i, s := range game.Steps {
		if adj[i] == game.Blocked || adj[i] == game.NotApplicable {
			continue
		}
		status, err := d.localMap.Status(current.Add(s.Direction))
		if err != nil {
			return 0, false, err
		}
		if status == Unknown {
			return s.Direction, true, nil
		}
	}
	return 0, false, nil
}

// descend drops through the portal under the droid. The trail is left as is.
func (d *Droid) descend(m game.Maze, current game.Coordinate) error {
	next, err := m.UsePortal(d.id)
	if err != nil {
		return envError("using portal", err)
	}
	d.logger.Debug(fmt.Sprintf("%s took the portal at %s down to %s", d.name, current, next))
	return d.localMap.Mark(next, OnPath)
}

func (d *Droid) advance(m game.Maze, current game.Coordinate, dir game.Direction) error {
	next, err := m.Move(d.id, dir)
	if err != nil {
		return envError("moving "+dir.String(), err)
	}
	d.path.Push(next)
	d.logger.Debug(fmt.Sprintf("%s moved %s from %s to %s", d.name, dir, current, next))
	return d.localMap.Mark(next, OnPath)
}

// backtrack abandons the current cell and steps back to the new top of the
// trail. The pop already records the step, so the trail is not touched again.
//
// The direction is resolved on the planar position of the trail top. Across a
// portal this leads to the landing cell, the only cell of the lower level
// that is OnPath without being on the trail.
func (d *Droid) backtrack(m game.Maze, current game.Coordinate) error {
	if err := d.localMap.Mark(current, Visited); err != nil {
		return err
	}
	if _, err := d.path.Pop(); err != nil {
		return fmt.Errorf("%w: dead end at %s: %w", ErrMazeUnsolvable, current, err)
	}
	prev, err := d.path.Top()
	if err != nil {
		return fmt.Errorf("%w: dead end at %s: %w", ErrMazeUnsolvable, current, err)
	}

	dir, ok := current.DirectionTo(prev)
	if prev.Z != current.Z {
		if !ok {
			return fmt.Errorf("%w: from %s to %s", ErrPortalUnwind, current, prev)
		}
		status, err := d.localMap.Status(current.Add(dir))
		if err != nil || status != OnPath {
			return fmt.Errorf("%w: from %s to %s", ErrPortalUnwind, current, prev)
		}
	} else if !ok {
		return fmt.Errorf("trail top %s is not adjacent to %s", prev, current)
	}

	next, err := m.Move(d.id, dir)
	if err != nil {
		return envError("backtracking "+dir.String(), err)
	}
	d.logger.Debug(fmt.Sprintf("%s backtracked %s from %s to %s", d.name, dir, current, next))
	return nil
}

func (d *Droid) observe(step int) {
	if d.observer != nil {
		d.observer(step, d.localMap)
	}
}

func envError(action string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrEnvironment, action, err)
}

type nopLogger struct{}

func (nopLogger) Debug(string) {}
func (nopLogger) Info(string)  {}
