package maze

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/beka-birhanu/vinom-droid/game"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const twoLevels = `
; level 0
S . #
# v .
. . .

; level 1
# # #
# . E
# # #
`

func TestParse(t *testing.T) {
	t.Run("Two levels", func(t *testing.T) {
		m, err := Parse(twoLevels)
		require.NoError(t, err)

		width, depth := m.Dimensions()
		assert.Equal(t, 3, width)
		assert.Equal(t, 2, depth)
		assert.Equal(t, game.Coordinate{}, m.Start())

		assert.Equal(t, game.Open, m.Content(game.Coordinate{X: 0, Y: 0, Z: 0}))
		assert.Equal(t, game.Blocked, m.Content(game.Coordinate{X: 2, Y: 0, Z: 0}))
		assert.Equal(t, game.DownPortal, m.Content(game.Coordinate{X: 1, Y: 1, Z: 0}))
		assert.Equal(t, game.End, m.Content(game.Coordinate{X: 2, Y: 1, Z: 1}))
		assert.Equal(t, game.NotApplicable, m.Content(game.Coordinate{X: 3, Y: 0, Z: 0}))
	})

	t.Run("Start glyph moves the entry point", func(t *testing.T) {
		m, err := Parse("..\n.S\n")
		require.NoError(t, err)
		assert.Equal(t, game.Coordinate{X: 1, Y: 1, Z: 0}, m.Start())
	})

	t.Run("Compact rows without spaces", func(t *testing.T) {
		m, err := Parse("S#\n.E")
		require.NoError(t, err)
		assert.Equal(t, game.End, m.Content(game.Coordinate{X: 1, Y: 1, Z: 0}))
	})

	invalid := map[string]string{
		"empty":              "  \n; only a comment\n",
		"not square":         ". .\n. .\n. .\n",
		"ragged row":         ". .\n.\n",
		"unknown glyph":      ". x\n. .\n",
		"two starts":         "S S\n. .\n",
		"portal on last":     ". v\n. .\n",
		"blocked origin":     "# .\n. .\n",
		"levels differ":      ". .\n. .\n\n. . .\n. . .\n. . .\n",
		"too short a level":  ". .\n. .\n\n. .\n",
		"wider than allowed": wideRow(MaxDimension+1),
	}
	for name, layout := range invalid {
		t.Run("Rejects "+name, func(t *testing.T) {
			_, err := Parse(layout)
			assert.ErrorIs(t, err, ErrInvalidLayout)
		})
	}
}

func wideRow(n int) string {
	row := make([]byte, n)
	for i := range row {
		row[i] = '.'
	}
	return string(row) + "\n"
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "maze.txt")
	require.NoError(t, os.WriteFile(path, []byte(twoLevels), 0o600))

	m, err := ParseFile(path)
	require.NoError(t, err)
	_, depth := m.Dimensions()
	assert.Equal(t, 2, depth)

	_, err = ParseFile(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestNew(t *testing.T) {
	_, err := New(0, 1)
	assert.ErrorIs(t, err, ErrInvalidDimensions)

	_, err = New(2, MaxDimension+1)
	assert.ErrorIs(t, err, ErrInvalidDimensions)

	m, err := New(2, 1)
	require.NoError(t, err)
	assert.Equal(t, game.Open, m.Content(game.Coordinate{X: 1, Y: 1}))

	assert.ErrorIs(t, m.Set(game.Coordinate{X: 2}, game.Blocked), ErrOutOfBounds)
	assert.ErrorIs(t, m.Set(game.Coordinate{}, game.NotApplicable), ErrInvalidLayout)
	assert.ErrorIs(t, m.SetStart(game.Coordinate{Z: 1}), ErrOutOfBounds)
}

func TestAgentContract(t *testing.T) {
	m, err := Parse(twoLevels)
	require.NoError(t, err)
	agent := uuid.New()

	t.Run("Calls before Enter fail", func(t *testing.T) {
		stranger := uuid.New()
		_, err := m.CurrentCoordinate(stranger)
		assert.ErrorIs(t, err, ErrAgentNotFound)
		_, err = m.ScanCurrent(stranger)
		assert.ErrorIs(t, err, ErrAgentNotFound)
		_, err = m.ScanAdjacent(stranger)
		assert.ErrorIs(t, err, ErrAgentNotFound)
		_, err = m.Move(stranger, game.East)
		assert.ErrorIs(t, err, ErrAgentNotFound)
		_, err = m.UsePortal(stranger)
		assert.ErrorIs(t, err, ErrAgentNotFound)
	})

	t.Run("Enter once", func(t *testing.T) {
		require.NoError(t, m.Enter(agent))
		assert.ErrorIs(t, m.Enter(agent), ErrAgentRegistered)

		pos, err := m.CurrentCoordinate(agent)
		require.NoError(t, err)
		assert.Equal(t, game.Coordinate{}, pos)
	})

	t.Run("ScanAdjacent reports bounds", func(t *testing.T) {
		adj, err := m.ScanAdjacent(agent)
		require.NoError(t, err)
		assert.Equal(t, [4]game.Content{game.NotApplicable, game.Open, game.Blocked, game.NotApplicable}, adj)
	})

	t.Run("Move rejects blocked and out of bounds", func(t *testing.T) {
		_, err := m.Move(agent, game.South)
		assert.ErrorIs(t, err, ErrInvalidMove)
		_, err = m.Move(agent, game.North)
		assert.ErrorIs(t, err, ErrInvalidMove)

		pos, err := m.CurrentCoordinate(agent)
		require.NoError(t, err)
		assert.Equal(t, game.Coordinate{}, pos)
	})

	t.Run("Portal only from a portal cell", func(t *testing.T) {
		_, err := m.UsePortal(agent)
		assert.ErrorIs(t, err, ErrNotPortal)
	})

	t.Run("Walk to the portal and descend", func(t *testing.T) {
		pos, err := m.Move(agent, game.East)
		require.NoError(t, err)
		assert.Equal(t, game.Coordinate{X: 1, Y: 0, Z: 0}, pos)

		pos, err = m.Move(agent, game.South)
		require.NoError(t, err)
		assert.Equal(t, game.Coordinate{X: 1, Y: 1, Z: 0}, pos)

		content, err := m.ScanCurrent(agent)
		require.NoError(t, err)
		assert.Equal(t, game.DownPortal, content)

		pos, err = m.UsePortal(agent)
		require.NoError(t, err)
		assert.Equal(t, game.Coordinate{X: 1, Y: 1, Z: 1}, pos)

		pos, err = m.Move(agent, game.East)
		require.NoError(t, err)
		content, err = m.ScanCurrent(agent)
		require.NoError(t, err)
		assert.Equal(t, game.End, content)
		assert.Equal(t, game.Coordinate{X: 2, Y: 1, Z: 1}, pos)
	})
}

func TestUsePortalIntoBlockedCell(t *testing.T) {
	m, err := New(1, 2)
	require.NoError(t, err)
	require.NoError(t, m.Set(game.Coordinate{}, game.DownPortal))
	require.NoError(t, m.Set(game.Coordinate{Z: 1}, game.Blocked))

	agent := uuid.New()
	require.NoError(t, m.Enter(agent))
	_, err = m.UsePortal(agent)
	assert.ErrorIs(t, err, ErrInvalidMove)
}

func TestString(t *testing.T) {
	m, err := Parse("S . #\n. v .\n. . E\n\n. . .\n. . .\n. . .\n")
	require.NoError(t, err)

	want := "Level: 0\nS . #\n. v .\n. . E\nLevel: 1\n. . .\n. . .\n. . .\n"
	assert.Equal(t, want, m.String())

	agent := uuid.New()
	require.NoError(t, m.Enter(agent))
	_, err = m.Move(agent, game.East)
	require.NoError(t, err)

	want = "Level: 0\nS @ #\n. v .\n. . E\nLevel: 1\n. . .\n. . .\n. . .\n"
	assert.Equal(t, want, m.String())
}
