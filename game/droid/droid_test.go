package droid

import (
	"fmt"
	"testing"

	"github.com/beka-birhanu/vinom-droid/game"
	"github.com/beka-birhanu/vinom-droid/game/maze"
	"github.com/beka-birhanu/vinom-droid/stack"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingMaze remembers every coordinate the droid was moved to.
type recordingMaze struct {
	*maze.GridMaze
	moves []game.Coordinate
}

func (r *recordingMaze) Move(agent uuid.UUID, d game.Direction) (game.Coordinate, error) {
	next, err := r.GridMaze.Move(agent, d)
	if err == nil {
		r.moves = append(r.moves, next)
	}
	return next, err
}

func (r *recordingMaze) UsePortal(agent uuid.UUID) (game.Coordinate, error) {
	next, err := r.GridMaze.UsePortal(agent)
	if err == nil {
		r.moves = append(r.moves, next)
	}
	return next, err
}

func mustParse(t *testing.T, layout string) *recordingMaze {
	t.Helper()
	m, err := maze.Parse(layout)
	require.NoError(t, err)
	return &recordingMaze{GridMaze: m}
}

type recordingLogger struct {
	debug []string
	info  []string
}

func (l *recordingLogger) Debug(msg string) { l.debug = append(l.debug, msg) }
func (l *recordingLogger) Info(msg string)  { l.info = append(l.info, msg) }

func c(x, y, z int) game.Coordinate {
	return game.Coordinate{X: x, Y: y, Z: z}
}

func TestOpenSingleLevel(t *testing.T) {
	m := mustParse(t, `
S . .
. . .
. . E
`)
	d := New("R2D2")

	steps, err := d.Run(m)
	require.NoError(t, err)
	assert.LessOrEqual(t, steps, 2*(9-1))
	assert.Equal(t, 4, steps)
	assert.Equal(t, []game.Coordinate{c(1, 0, 0), c(2, 0, 0), c(2, 1, 0), c(2, 2, 0)}, m.moves)
	assert.Equal(t, []game.Coordinate{c(0, 0, 0), c(1, 0, 0), c(2, 0, 0), c(2, 1, 0), c(2, 2, 0)}, d.Path())
	assert.Zero(t, d.Map().Count(Blocked))
}

func TestPortalToEnd(t *testing.T) {
	m := mustParse(t, "v\n\nE\n")
	d := New("R2D2")

	steps, err := d.Run(m)
	require.NoError(t, err)
	assert.Equal(t, 1, steps)

	for _, pos := range []game.Coordinate{c(0, 0, 0), c(0, 0, 1)} {
		status, err := d.Map().Status(pos)
		require.NoError(t, err)
		assert.Equal(t, OnPath, status, "status of %s", pos)
	}
	assert.Equal(t, []game.Coordinate{c(0, 0, 0)}, d.Path(), "descending leaves the trail untouched")
	assert.Equal(t, "Level: 0\n[X]\nLevel: 1\n[X]\n\n", Render(d.Map()))
}

func TestDeadEndBranch(t *testing.T) {
	m := mustParse(t, `
# . # #
# . # #
S . . E
# # # #
`)
	d := New("R2D2")

	steps, err := d.Run(m)
	require.NoError(t, err)
	assert.Equal(t, 7, steps)

	want := []game.Coordinate{
		c(1, 2, 0), // corridor
		c(1, 1, 0), // into the branch
		c(1, 0, 0), // branch dead end
		c(1, 1, 0), // backtrack
		c(1, 2, 0), // back at the branch point
		c(2, 2, 0), // corridor again
		c(3, 2, 0), // end
	}
	assert.Equal(t, want, m.moves)
	assert.Equal(t, []game.Coordinate{c(0, 2, 0), c(1, 2, 0), c(2, 2, 0), c(3, 2, 0)}, d.Path())
	assert.ElementsMatch(t, []game.Coordinate{c(1, 0, 0), c(1, 1, 0)}, d.Map().Coordinates(Visited))
}

func TestStartOnEnd(t *testing.T) {
	m := mustParse(t, "E .\n. .\n")
	d := New("R2D2")

	steps, err := d.Run(m)
	require.NoError(t, err)
	assert.Zero(t, steps)
	assert.Empty(t, m.moves)
}

func TestTraversalInvariants(t *testing.T) {
	m := mustParse(t, `
S . # . .
. # . . #
. . . # .
# . # . .
. . . . E
`)

	var (
		cycles      int
		prevBlocked []game.Coordinate
	)
	var d *Droid
	d = New("R2D2", WithObserver(func(step int, lm *LocalMap) {
		assert.Equal(t, cycles, step)
		cycles++

		trail := d.Path()
		assert.ElementsMatch(t, trail, lm.Coordinates(OnPath), "trail and OnPath cells differ at step %d", step)

		blocked := lm.Coordinates(Blocked)
		for _, pos := range blocked {
			assert.Equal(t, game.Blocked, m.Content(pos), "%s marked blocked at step %d", pos, step)
		}
		assert.Subset(t, blocked, prevBlocked, "blocked set shrank at step %d", step)
		prevBlocked = blocked
	}))

	steps, err := d.Run(m)
	require.NoError(t, err)
	assert.Equal(t, steps+1, cycles)

	status, err := d.Map().Status(c(4, 4, 0))
	require.NoError(t, err)
	assert.Equal(t, OnPath, status)
}

func TestOpenMazeCoverage(t *testing.T) {
	m := mustParse(t, `
. . .
. . .
. . .
`)
	d := New("R2D2", WithObserver(func(step int, lm *LocalMap) {
		assert.Zero(t, lm.Count(Blocked), "no walls to record at step %d", step)
	}))

	steps, err := d.Run(m)
	assert.ErrorIs(t, err, ErrMazeUnsolvable)
	assert.ErrorIs(t, err, stack.ErrEmpty)
	assert.Equal(t, 16, steps)

	entered := map[game.Coordinate]int{}
	for i, pos := range m.moves {
		if i < 8 {
			entered[pos]++
		}
	}
	assert.Len(t, entered, 8, "the first eight moves reach eight distinct cells")
	for pos, n := range entered {
		assert.Equal(t, 1, n, "%s entered more than once before backtracking", pos)
	}
	assert.Equal(t, 9, d.Map().Count(Visited))
	assert.Empty(t, d.Path())
}

func TestBacktrackAcrossPortalLanding(t *testing.T) {
	m := mustParse(t, `
v # #
# # #
# # #

. . #
. # #
E # #
`)
	d := New("R2D2")

	steps, err := d.Run(m)
	require.NoError(t, err)
	assert.Equal(t, 5, steps)
	assert.Equal(t, []game.Coordinate{c(0, 0, 1), c(1, 0, 1), c(0, 0, 1), c(0, 1, 1), c(0, 2, 1)}, m.moves)
	assert.Equal(t, []game.Coordinate{c(0, 0, 0), c(0, 1, 1), c(0, 2, 1)}, d.Path())
}

func TestPortalUnwind(t *testing.T) {
	m := mustParse(t, `
S v
# #

# .
# #
`)
	d := New("R2D2")

	steps, err := d.Run(m)
	assert.ErrorIs(t, err, ErrPortalUnwind)
	assert.Equal(t, 2, steps)

	status, err := d.Map().Status(c(1, 0, 1))
	require.NoError(t, err)
	assert.Equal(t, Visited, status)
}

func TestEnvironmentErrors(t *testing.T) {
	m := mustParse(t, "S E\n. .\n")
	id := uuid.New()
	require.NoError(t, m.Enter(id))

	d := New("R2D2", WithID(id))
	assert.Equal(t, id, d.ID())

	_, err := d.Run(m)
	assert.ErrorIs(t, err, ErrEnvironment)
	assert.ErrorIs(t, err, maze.ErrAgentRegistered)
}

func TestLogging(t *testing.T) {
	m := mustParse(t, "S E\n. .\n")
	l := &recordingLogger{}
	d := New("R2D2", WithLogger(l))
	assert.Equal(t, "R2D2", d.Name())

	_, err := d.Run(m)
	require.NoError(t, err)

	require.Len(t, l.info, 1)
	assert.Equal(t, "R2D2 completed the maze in 1 steps", l.info[0])
	assert.Contains(t, l.debug, fmt.Sprintf("R2D2 moved East from %s to %s", c(0, 0, 0), c(1, 0, 0)))
}
