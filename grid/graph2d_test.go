package grid_test

import (
	"testing"

	"github.com/katalvlaran/geo2d/geom2d"
	"github.com/katalvlaran/geo2d/graph2d"
	"github.com/katalvlaran/geo2d/grid"
	"github.com/stretchr/testify/require"
)

func TestPolygonGrid_Graph2D(t *testing.T) {
	var g graph2d.Graph2D
	pg, err := grid.NewPolygonGrid(grid.Square, grid.OnEdge, grid.None, 1, 3, 3)
	require.NoError(t, err)
	g = pg

	var nodeCount int
	var ids []graph2d.NodeID
	for id := range g.Nodes() {
		nodeCount++
		ids = append(ids, id)
		require.True(t, g.Contains(id))
	}
	require.Equal(t, 9, nodeCount)
	require.Equal(t, 4, g.Connectivity())

	loc, ok := g.Location(ids[0])
	require.True(t, ok)

	region, ok := g.Region(ids[0])
	require.True(t, ok)
	require.Len(t, region, 4)

	nearest, ok := g.Nearest(loc)
	require.True(t, ok)
	require.Equal(t, ids[0], nearest)

	dist := g.Distance(ids[0], ids[0])
	require.Equal(t, 0, dist)

	neighbors := g.Neighbors(ids[0], 1)
	for _, n := range neighbors {
		require.True(t, g.Contains(n))
	}
}

func TestPolygonGrid_Graph2D_OutOfBounds(t *testing.T) {
	var g graph2d.Graph2D
	pg, err := grid.NewPolygonGrid(grid.Square, grid.OnEdge, grid.None, 1, 3, 3)
	require.NoError(t, err)
	g = pg

	_, ok := g.Location(graph2d.NodeID(1) << 40)
	require.False(t, ok)
	require.Equal(t, -1, g.Distance(graph2d.NodeID(1)<<40, graph2d.NodeID(1)<<40))
	_, ok = g.Nearest(geom2d.PointD{X: 1000, Y: 1000})
	require.False(t, ok)
}
