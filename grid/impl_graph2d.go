package grid

import (
	"iter"

	"github.com/katalvlaran/geo2d/geom2d"
	"github.com/katalvlaran/geo2d/graph2d"
)

var _ graph2d.Graph2D = (*PolygonGrid)(nil)

// nodeID packs a Cell into a graph2d.NodeID: the row in the high 32
// bits, the column in the low 32 bits, both bias-shifted so negative
// coordinates (used by out-of-range cells) still round-trip.
func nodeID(cell Cell) graph2d.NodeID {
	const bias = 1 << 31
	col := uint64(int64(cell.Col) + bias)
	row := uint64(int64(cell.Row) + bias)
	return graph2d.NodeID(row<<32 | col)
}

func cellFromNodeID(id graph2d.NodeID) Cell {
	const bias = 1 << 31
	col := int64(uint64(id)&0xFFFFFFFF) - bias
	row := int64(uint64(id)>>32) - bias
	return Cell{Col: int(col), Row: int(row)}
}

// Nodes returns a lazy sequence over every cell in the grid, in
// column-major order.
func (g *PolygonGrid) Nodes() iter.Seq[graph2d.NodeID] {
	return func(yield func(graph2d.NodeID) bool) {
		for col := 0; col < g.width; col++ {
			for row := 0; row < g.height; row++ {
				if !yield(nodeID(Cell{Col: col, Row: row})) {
					return
				}
			}
		}
	}
}

// Contains reports whether id names a cell within the grid.
func (g *PolygonGrid) Contains(id graph2d.NodeID) bool {
	return g.InBounds(cellFromNodeID(id))
}

// Neighbors satisfies graph2d.Graph2D by wrapping the grid's
// cell-based CellNeighbors query.
func (g *PolygonGrid) Neighbors(id graph2d.NodeID, distance int) []graph2d.NodeID {
	if !g.Contains(id) {
		return nil
	}
	cells := g.CellNeighbors(cellFromNodeID(id), distance)
	out := make([]graph2d.NodeID, len(cells))
	for i, c := range cells {
		out[i] = nodeID(c)
	}
	return out
}

// Location returns the world-space center of the cell named by id.
func (g *PolygonGrid) Location(id graph2d.NodeID) (geom2d.PointD, bool) {
	cell := cellFromNodeID(id)
	if !g.InBounds(cell) {
		return geom2d.PointD{}, false
	}
	return g.GridToWorld(cell), true
}

// Region returns the world-space boundary polygon of the cell named by
// id.
func (g *PolygonGrid) Region(id graph2d.NodeID) ([]geom2d.PointD, bool) {
	cell := cellFromNodeID(id)
	if !g.InBounds(cell) {
		return nil, false
	}
	return g.CellPolygon(cell), true
}

// Nearest returns the cell whose polygon contains point, or false if
// point falls outside every cell.
func (g *PolygonGrid) Nearest(point geom2d.PointD) (graph2d.NodeID, bool) {
	cell, ok := g.WorldToGrid(point)
	if !ok {
		return 0, false
	}
	return nodeID(cell), true
}

// Distance returns g.StepDistance between the cells named by a and b,
// or -1 if either id is out of bounds.
func (g *PolygonGrid) Distance(a, b graph2d.NodeID) int {
	ca, cb := cellFromNodeID(a), cellFromNodeID(b)
	if !g.InBounds(ca) || !g.InBounds(cb) {
		return -1
	}
	return g.StepDistance(ca, cb)
}
