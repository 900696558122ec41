package grid_test

import (
	"testing"

	"github.com/katalvlaran/geo2d/geom2d"
	"github.com/katalvlaran/geo2d/graph2d"
	"github.com/katalvlaran/geo2d/grid"
	"github.com/stretchr/testify/require"
)

// TestToSubdivision_HexGrid exercises scenario S5: a 3x3 grid of
// regular hexagons converts to a Subdivision with one bounded face per
// cell plus the unbounded face.
func TestToSubdivision_HexGrid(t *testing.T) {
	g, err := grid.NewPolygonGrid(grid.Hexagon, grid.OnEdge, grid.ColumnDown, 1, 3, 3)
	require.NoError(t, err)

	sub, cellMap, err := g.ToSubdivision(geom2d.PointD{}, 0)
	require.NoError(t, err)

	var faceCount int
	for range sub.Faces() {
		faceCount++
	}
	require.Equal(t, 10, faceCount, "9 cells + unbounded face")

	for col := 0; col < 3; col++ {
		for row := 0; row < 3; row++ {
			cell := grid.Cell{Col: col, Row: row}
			face, ok := cellMap.Face(cell)
			require.True(t, ok)

			back, ok := cellMap.Cell(face)
			require.True(t, ok)
			require.Equal(t, cell, back)

			poly, ok := sub.Region(graph2d.NodeID(face))
			require.True(t, ok)
			require.Len(t, poly, 6)
		}
	}
}

func TestToSubdivision_DefaultEpsilon(t *testing.T) {
	g, err := grid.NewPolygonGrid(grid.Square, grid.OnEdge, grid.None, 10, 2, 2)
	require.NoError(t, err)

	_, _, err = g.ToSubdivision(geom2d.PointD{X: 100, Y: 100}, 0)
	require.NoError(t, err)
}
