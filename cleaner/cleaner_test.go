package cleaner

import (
	"math/rand"
	"testing"

	"github.com/beka-birhanu/rumba/grid"
	"github.com/beka-birhanu/rumba/grid/gridtest"
	"github.com/beka-birhanu/rumba/house"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("Spawn on dirt does not clean", func(t *testing.T) {
		dirt := grid.NewPositionSet(grid.Position{Row: 1, Col: 1})
		c, err := New(grid.Size{Rows: 3, Cols: 3}, dirt, gridtest.NewScriptedSource(1, 1))
		require.NoError(t, err)

		assert.Equal(t, grid.Position{Row: 1, Col: 1}, c.Position())
		assert.False(t, c.IsClean())
		assert.Equal(t, 1, c.Remaining())
		assert.Empty(t, c.State().Cleaned)
	})

	t.Run("No dirt starts clean", func(t *testing.T) {
		c, err := New(grid.Size{Rows: 4, Cols: 4}, nil, rand.New(rand.NewSource(1)))
		require.NoError(t, err)
		assert.True(t, c.IsClean())

		c, err = New(grid.Size{Rows: 4, Cols: 4}, grid.NewPositionSet(), rand.New(rand.NewSource(1)))
		require.NoError(t, err)
		assert.True(t, c.IsClean())
	})

	t.Run("Invalid construction fails fast", func(t *testing.T) {
		_, err := New(grid.Size{Rows: 0, Cols: 3}, nil, rand.New(rand.NewSource(1)))
		assert.ErrorIs(t, err, grid.ErrInvalidSize)

		_, err = New(grid.Size{Rows: 3, Cols: -2}, nil, rand.New(rand.NewSource(1)))
		assert.ErrorIs(t, err, grid.ErrInvalidSize)

		_, err = New(grid.Size{Rows: 3, Cols: 3}, nil, nil)
		assert.ErrorIs(t, err, grid.ErrNilSource)

		outside := grid.NewPositionSet(grid.Position{Row: 3, Col: 0})
		_, err = New(grid.Size{Rows: 3, Cols: 3}, outside, rand.New(rand.NewSource(1)))
		assert.ErrorIs(t, err, ErrDirtOutOfBounds)
	})
}

func TestMove(t *testing.T) {
	t.Run("Moving up from the top left corner stays put", func(t *testing.T) {
		c, err := New(grid.Size{Rows: 5, Cols: 5}, nil, gridtest.NewScriptedSource(0, 0))
		require.NoError(t, err)

		assert.False(t, c.Move(grid.Up))
		assert.Equal(t, grid.Position{Row: 0, Col: 0}, c.Position())
		c.Move(grid.Left)
		assert.Equal(t, grid.Position{Row: 0, Col: 0}, c.Position())
		c.Move(grid.Down)
		assert.Equal(t, grid.Position{Row: 1, Col: 0}, c.Position())
	})

	t.Run("Single column floor only moves vertically", func(t *testing.T) {
		c, err := New(grid.Size{Rows: 3, Cols: 1}, nil, gridtest.NewScriptedSource(1, 0))
		require.NoError(t, err)
		c.Move(grid.Right)
		assert.Equal(t, grid.Position{Row: 1, Col: 0}, c.Position())
		c.Move(grid.Down)
		assert.Equal(t, grid.Position{Row: 2, Col: 0}, c.Position())
	})
}

func TestScriptedWalkCleansCorner(t *testing.T) {
	size := grid.Size{Rows: 3, Cols: 3}
	draws := []int{0, 0, 2, 2} // dirt at (0,0), spawn at (2,2)
	draws = append(draws, gridtest.Steps(grid.Up, grid.Up, grid.Left, grid.Left)...)
	src := gridtest.NewScriptedSource(draws...)

	h, err := house.New(size, 1, src)
	require.NoError(t, err)
	c, err := New(size, h.TakeDirt(), src)
	require.NoError(t, err)
	require.Equal(t, grid.Position{Row: 2, Col: 2}, c.Position())

	want := []grid.Position{{Row: 1, Col: 2}, {Row: 0, Col: 2}, {Row: 0, Col: 1}, {Row: 0, Col: 0}}
	for i, pos := range want {
		assert.False(t, c.IsClean(), "clean before step %d", i+1)
		c.Step()
		assert.Equal(t, pos, c.Position(), "step %d", i+1)
	}

	assert.True(t, c.IsClean())
	assert.Equal(t, []grid.Position{{Row: 0, Col: 0}}, c.State().Cleaned)
	assert.Zero(t, src.Remaining())
}

func TestStepInvariants(t *testing.T) {
	src := rand.New(rand.NewSource(2024))
	size := grid.Size{Rows: 6, Cols: 4}
	dirt, err := house.GenerateDirt(size, 10, src)
	require.NoError(t, err)
	initial := dirt.Len()

	c, err := New(size, dirt, src)
	require.NoError(t, err)

	for i := 0; i < 2000; i++ {
		before := c.Remaining()
		c.Step()
		after := c.Remaining()

		require.True(t, size.Contains(c.Position()), "step %d left the floor at %v", i, c.Position())
		require.Contains(t, []int{before, before - 1}, after)
		require.Equal(t, initial-after, c.CleanedCount())
	}
}

func TestStepAfterClean(t *testing.T) {
	c, err := New(grid.Size{Rows: 2, Cols: 2}, grid.NewPositionSet(grid.Position{Row: 0, Col: 1}), gridtest.NewScriptedSource(0, 0))
	require.NoError(t, err)

	require.True(t, c.Move(grid.Right))
	require.True(t, c.IsClean())

	c.src = rand.New(rand.NewSource(5))
	for i := 0; i < 50; i++ {
		c.Step()
		assert.True(t, c.IsClean())
		assert.Equal(t, []grid.Position{{Row: 0, Col: 1}}, c.State().Cleaned)
	}
}

func TestStateIsACopy(t *testing.T) {
	dirt := grid.NewPositionSet(grid.Position{Row: 0, Col: 1}, grid.Position{Row: 1, Col: 1})
	c, err := New(grid.Size{Rows: 2, Cols: 2}, dirt, gridtest.NewScriptedSource(0, 0))
	require.NoError(t, err)
	c.Move(grid.Right)

	s := c.State()
	s.Dirt[0] = grid.Position{Row: 0, Col: 0}
	s.Cleaned[0] = grid.Position{Row: 1, Col: 0}
	s.Position = grid.Position{Row: 1, Col: 1}

	fresh := c.State()
	assert.Equal(t, []grid.Position{{Row: 1, Col: 1}}, fresh.Dirt)
	assert.Equal(t, []grid.Position{{Row: 0, Col: 1}}, fresh.Cleaned)
	assert.Equal(t, grid.Position{Row: 0, Col: 1}, fresh.Position)
}
