package grid_test

import (
	"testing"

	"github.com/katalvlaran/geo2d/grid"
	"github.com/stretchr/testify/require"
)

func TestNewView_RejectsOutOfBoundsWindow(t *testing.T) {
	g, err := grid.NewPolygonGrid(grid.Square, grid.OnEdge, grid.None, 1, 5, 5)
	require.NoError(t, err)

	_, err = grid.NewView(g, grid.Cell{Col: 3, Row: 3}, 4, 4)
	require.ErrorIs(t, err, grid.ErrCellOutOfBounds)
}

func TestView_LocalCoordinates(t *testing.T) {
	g, err := grid.NewPolygonGrid(grid.Square, grid.OnEdge, grid.None, 1, 10, 10)
	require.NoError(t, err)

	v, err := grid.NewView(g, grid.Cell{Col: 2, Row: 2}, 3, 3)
	require.NoError(t, err)
	require.Equal(t, 3, v.Width())
	require.Equal(t, 3, v.Height())

	require.True(t, v.InBounds(grid.Cell{Col: 0, Row: 0}))
	require.False(t, v.InBounds(grid.Cell{Col: 3, Row: 0}))

	backingCenter := g.GridToWorld(grid.Cell{Col: 3, Row: 3})
	localCenter := v.GridToWorld(grid.Cell{Col: 1, Row: 1})
	require.Equal(t, backingCenter, localCenter)
}

func TestView_NeighborClippedToWindow(t *testing.T) {
	g, err := grid.NewPolygonGrid(grid.Square, grid.OnEdge, grid.None, 1, 10, 10)
	require.NoError(t, err)

	v, err := grid.NewView(g, grid.Cell{Col: 0, Row: 0}, 2, 2)
	require.NoError(t, err)

	// Backing grid has a neighbor at (2,0), but it falls outside the window.
	_, ok := v.Neighbor(grid.Cell{Col: 1, Row: 0}, 1)
	require.False(t, ok)
}
