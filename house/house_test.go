package house

import (
	"math/rand"
	"testing"

	"github.com/beka-birhanu/rumba/grid"
	"github.com/beka-birhanu/rumba/grid/gridtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateDirt(t *testing.T) {
	t.Run("Spots are unique and in bounds", func(t *testing.T) {
		src := rand.New(rand.NewSource(42))
		for _, size := range []grid.Size{{Rows: 1, Cols: 1}, {Rows: 3, Cols: 3}, {Rows: 10, Cols: 10}, {Rows: 2, Cols: 17}} {
			for _, requested := range []int{0, 1, 5, 8, 50, 400} {
				dirt, err := GenerateDirt(size, requested, src)
				require.NoError(t, err)

				assert.LessOrEqual(t, dirt.Len(), min(requested, size.Cells()))
				seen := map[grid.Position]bool{}
				for _, p := range dirt.Positions() {
					assert.True(t, size.Contains(p), "%v outside %v", p, size)
					assert.False(t, seen[p], "duplicate %v", p)
					seen[p] = true
				}
			}
		}
	})

	t.Run("Requesting more spots than cells fills the floor", func(t *testing.T) {
		dirt, err := GenerateDirt(grid.Size{Rows: 2, Cols: 2}, 10, rand.New(rand.NewSource(3)))
		require.NoError(t, err)
		assert.Equal(t, 4, dirt.Len())
	})

	t.Run("Duplicate draws are skipped", func(t *testing.T) {
		src := gridtest.NewScriptedSource(0, 0, 0, 0, 1, 2)
		dirt, err := GenerateDirt(grid.Size{Rows: 3, Cols: 3}, 2, src)
		require.NoError(t, err)
		assert.Equal(t, []grid.Position{{Row: 0, Col: 0}, {Row: 1, Col: 2}}, dirt.Positions())
		assert.Zero(t, src.Remaining())
	})

	t.Run("Same seed yields the same dirt", func(t *testing.T) {
		size := grid.Size{Rows: 10, Cols: 10}
		a, err := GenerateDirt(size, 8, rand.New(rand.NewSource(99)))
		require.NoError(t, err)
		b, err := GenerateDirt(size, 8, rand.New(rand.NewSource(99)))
		require.NoError(t, err)
		assert.Equal(t, a.Positions(), b.Positions())
	})

	t.Run("Invalid input fails fast", func(t *testing.T) {
		_, err := GenerateDirt(grid.Size{Rows: 0, Cols: 4}, 2, rand.New(rand.NewSource(1)))
		assert.ErrorIs(t, err, grid.ErrInvalidSize)

		_, err = GenerateDirt(grid.Size{Rows: 4, Cols: 4}, -1, rand.New(rand.NewSource(1)))
		assert.ErrorIs(t, err, ErrNegativeDirt)

		_, err = GenerateDirt(grid.Size{Rows: 4, Cols: 4}, 1, nil)
		assert.ErrorIs(t, err, grid.ErrNilSource)
	})
}

func TestHouseTakeDirt(t *testing.T) {
	h, err := New(grid.Size{Rows: 5, Cols: 5}, 4, rand.New(rand.NewSource(11)))
	require.NoError(t, err)
	assert.Equal(t, grid.Size{Rows: 5, Cols: 5}, h.Size())
	assert.Equal(t, 4, h.DirtCount())

	dirt := h.TakeDirt()
	assert.Equal(t, 4, dirt.Len())
	assert.Zero(t, h.DirtCount())
	assert.Zero(t, h.TakeDirt().Len())

	dirt.Remove(dirt.Positions()[0])
	assert.Zero(t, h.DirtCount(), "house must not observe the cleaner's set")
}
