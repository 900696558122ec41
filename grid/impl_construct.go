package grid

// NewPolygonGrid builds a width x height tessellation of polygon in the
// given orientation and shift mode, with the given circumradius
// (center-to-vertex distance). Returns ErrIncompatibleShift if the
// polygon/orientation/shift combination is not in the compatibility
// matrix (spec §4.E):
//
//	Square  + OnEdge   -> None only
//	Square  + OnVertex -> ColumnUp, ColumnDown, RowLeft, RowRight
//	Hexagon + OnEdge   -> ColumnUp, ColumnDown
//	Hexagon + OnVertex -> RowLeft, RowRight
func NewPolygonGrid(polygon Polygon, orientation Orientation, shift ShiftMode, circumradius float64, width, height int, opts ...GridOption) (*PolygonGrid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}
	if circumradius <= 0 {
		return nil, ErrInvalidCircumradius
	}
	if !compatible(polygon, orientation, shift) {
		return nil, ErrIncompatibleShift
	}

	cfg := resolveGridConfig(opts)
	g := &PolygonGrid{
		polygon:         polygon,
		orientation:     orientation,
		shift:           shift,
		circumradius:    circumradius,
		width:           width,
		height:          height,
		vertexAdjacency: cfg.vertexAdjacency && polygon == Square && orientation == OnVertex,
	}
	g.neighborTable = buildNeighborTable(g)
	return g, nil
}

// compatible reports whether (polygon, orientation, shift) appears in
// the compatibility matrix.
func compatible(polygon Polygon, orientation Orientation, shift ShiftMode) bool {
	switch {
	case polygon == Square && orientation == OnEdge:
		return shift == None
	case polygon == Square && orientation == OnVertex:
		return shift == ColumnUp || shift == ColumnDown || shift == RowLeft || shift == RowRight
	case polygon == Hexagon && orientation == OnEdge:
		return shift == ColumnUp || shift == ColumnDown
	case polygon == Hexagon && orientation == OnVertex:
		return shift == RowLeft || shift == RowRight
	default:
		return false
	}
}

// buildNeighborTable precomputes the per-parity neighbor offset list,
// ordered clockwise starting from the topmost edge (or the edge right
// of the topmost vertex when the polygon has no top edge).
func buildNeighborTable(g *PolygonGrid) [2][]Offset {
	switch g.polygon {
	case Square:
		if g.orientation == OnEdge {
			table := squareEdgeOffsets()
			return [2][]Offset{table, table}
		}
		return squareVertexOffsets(g.shift, g.vertexAdjacency)
	case Hexagon:
		if g.orientation == OnEdge {
			return hexEdgeOffsets(g.shift)
		}
		return hexVertexOffsets(g.shift)
	}
	return [2][]Offset{}
}

// squareEdgeOffsets returns the 4-connectivity clockwise-from-N table
// for a flat, unshifted square grid (no column/row parity dependence).
func squareEdgeOffsets() []Offset {
	return []Offset{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
}

// squareVertexOffsets returns the per-parity table for a square grid
// rotated onto its vertices, 4-connected (edges only) or 8-connected
// (edges plus the alternating diagonal vertex neighbors).
func squareVertexOffsets(shift ShiftMode, vertexAdjacency bool) [2][]Offset {
	edge := []Offset{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	if !vertexAdjacency {
		return [2][]Offset{edge, edge}
	}
	full := []Offset{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	return [2][]Offset{full, full}
}

// hexEdgeOffsets returns the per-column-parity table for flat-top
// hexagons with a column shift, clockwise from N: N, NE, SE, S, SW, NW.
// ColumnDown staggers odd columns down (odd-q layout); ColumnUp
// staggers odd columns up (even-q layout), the mirror image.
func hexEdgeOffsets(shift ShiftMode) [2][]Offset {
	if shift == ColumnDown {
		even := []Offset{{0, -1}, {1, -1}, {1, 0}, {0, 1}, {-1, 0}, {-1, -1}}
		odd := []Offset{{0, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}}
		return [2][]Offset{even, odd}
	}
	// ColumnUp
	even := []Offset{{0, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}}
	odd := []Offset{{0, -1}, {1, -1}, {1, 0}, {0, 1}, {-1, 0}, {-1, -1}}
	return [2][]Offset{even, odd}
}

// hexVertexOffsets returns the per-row-parity table for pointy-top
// hexagons with a row shift, clockwise from NE (the edge right of the
// topmost vertex, since pointy-top has no top edge): NE, E, SE, SW, W,
// NW.
func hexVertexOffsets(shift ShiftMode) [2][]Offset {
	if shift == RowRight {
		even := []Offset{{0, -1}, {1, 0}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
		odd := []Offset{{1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 0}, {0, -1}}
		return [2][]Offset{even, odd}
	}
	// RowLeft
	even := []Offset{{1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 0}, {0, -1}}
	odd := []Offset{{0, -1}, {1, 0}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	return [2][]Offset{even, odd}
}
