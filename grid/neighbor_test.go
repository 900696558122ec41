package grid_test

import (
	"testing"

	"github.com/katalvlaran/geo2d/grid"
	"github.com/stretchr/testify/require"
)

// TestHexColumnDown_StepDistance exercises scenario S4: a 5x5 grid of
// regular hexagons on edge with a column-down shift.
func TestHexColumnDown_StepDistance(t *testing.T) {
	g, err := grid.NewPolygonGrid(grid.Hexagon, grid.OnEdge, grid.ColumnDown, 1, 5, 5)
	require.NoError(t, err)

	require.Equal(t, 6, g.StepDistance(grid.Cell{Col: 0, Row: 0}, grid.Cell{Col: 4, Row: 4}))
	require.Equal(t, 3, g.StepDistance(grid.Cell{Col: 0, Row: 0}, grid.Cell{Col: 2, Row: 2}))
	require.Equal(t, 0, g.StepDistance(grid.Cell{Col: 2, Row: 2}, grid.Cell{Col: 2, Row: 2}))
}

func TestHexColumnDown_NeighborCounts(t *testing.T) {
	g, err := grid.NewPolygonGrid(grid.Hexagon, grid.OnEdge, grid.ColumnDown, 1, 5, 5)
	require.NoError(t, err)

	interior := g.CellNeighbors(grid.Cell{Col: 2, Row: 2}, 1)
	require.Len(t, interior, 6)

	corner := g.CellNeighbors(grid.Cell{Col: 4, Row: 4}, 1)
	require.Len(t, corner, 3)
}

func TestSquare_Neighbor_RoundTrip(t *testing.T) {
	g, err := grid.NewPolygonGrid(grid.Square, grid.OnEdge, grid.None, 1, 5, 5)
	require.NoError(t, err)

	center := grid.Cell{Col: 2, Row: 2}
	for i := 0; i < g.Connectivity(); i++ {
		n, ok := g.Neighbor(center, i)
		require.True(t, ok)
		idx, ok := g.NeighborIndex(center, n)
		require.True(t, ok)
		require.Equal(t, i, idx)
	}
}

func TestSquare_StepDistance_DiagonalVsManhattan(t *testing.T) {
	manhattan, err := grid.NewPolygonGrid(grid.Square, grid.OnVertex, grid.ColumnDown, 1, 5, 5)
	require.NoError(t, err)
	require.Equal(t, 6, manhattan.StepDistance(grid.Cell{Col: 0, Row: 0}, grid.Cell{Col: 3, Row: 3}))

	chebyshev, err := grid.NewPolygonGrid(grid.Square, grid.OnVertex, grid.ColumnDown, 1, 5, 5, grid.WithVertexAdjacency())
	require.NoError(t, err)
	require.Equal(t, 3, chebyshev.StepDistance(grid.Cell{Col: 0, Row: 0}, grid.Cell{Col: 3, Row: 3}))
}

func TestNeighbors_MultiHop(t *testing.T) {
	g, err := grid.NewPolygonGrid(grid.Square, grid.OnEdge, grid.None, 1, 5, 5)
	require.NoError(t, err)

	two := g.CellNeighbors(grid.Cell{Col: 2, Row: 2}, 2)
	require.NotEmpty(t, two)
	for _, n := range two {
		require.True(t, g.InBounds(n))
	}
}
