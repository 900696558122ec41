package grid

// parity selects which half of the neighbor table applies to cell,
// keyed on the parity of whichever axis the grid's shift mode staggers.
func (g *PolygonGrid) parity(cell Cell) int {
	switch g.shift {
	case ColumnUp, ColumnDown:
		return cell.Col & 1
	case RowLeft, RowRight:
		return cell.Row & 1
	default:
		return 0
	}
}

// Neighbor returns the cell at the given clockwise-from-N neighbor
// index, and whether that neighbor lies within the grid.
func (g *PolygonGrid) Neighbor(cell Cell, index int) (Cell, bool) {
	table := g.neighborTable[g.parity(cell)]
	if index < 0 || index >= len(table) {
		return Cell{}, false
	}
	off := table[index]
	n := Cell{Col: cell.Col + off.DCol, Row: cell.Row + off.DRow}
	return n, g.InBounds(n)
}

// NeighborIndex returns the index such that Neighbor(cell, index)
// equals neighbor, or false if neighbor is not adjacent to cell.
func (g *PolygonGrid) NeighborIndex(cell, neighbor Cell) (int, bool) {
	table := g.neighborTable[g.parity(cell)]
	dcol, drow := neighbor.Col-cell.Col, neighbor.Row-cell.Row
	for i, off := range table {
		if off.DCol == dcol && off.DRow == drow {
			return i, true
		}
	}
	return 0, false
}

// CellNeighbors returns every in-bounds cell reachable from cell
// within distance steps (distance == 1 means direct neighbors only).
// Named distinctly from the graph2d.Graph2D Neighbors method, which
// wraps this one.
func (g *PolygonGrid) CellNeighbors(cell Cell, distance int) []Cell {
	if distance <= 0 || !g.InBounds(cell) {
		return nil
	}
	visited := map[Cell]bool{cell: true}
	frontier := []Cell{cell}
	var out []Cell
	for step := 1; step <= distance && len(frontier) > 0; step++ {
		var next []Cell
		for _, c := range frontier {
			table := g.neighborTable[g.parity(c)]
			for _, off := range table {
				n := Cell{Col: c.Col + off.DCol, Row: c.Row + off.DRow}
				if !g.InBounds(n) || visited[n] {
					continue
				}
				visited[n] = true
				out = append(out, n)
				next = append(next, n)
			}
		}
		frontier = next
	}
	return out
}

// StepDistance returns the number of neighbor-graph moves between a
// and b. Squares use Chebyshev (8-connectivity) or Manhattan
// (4-connectivity) distance; hexagons convert offset coordinates to
// cube coordinates and use the standard cube distance, which is
// equivalent to (but more robust to derive than) the piecewise
// column/row-parity formula spec §4.E describes.
func (g *PolygonGrid) StepDistance(a, b Cell) int {
	if g.polygon == Square {
		dx, dy := absInt(b.Col-a.Col), absInt(b.Row-a.Row)
		if g.connectivityAllowsDiagonal() {
			return maxInt(dx, dy)
		}
		return dx + dy
	}
	ax, ay, az := g.toCube(a)
	bx, by, bz := g.toCube(b)
	return (absInt(ax-bx) + absInt(ay-by) + absInt(az-bz)) / 2
}

func (g *PolygonGrid) connectivityAllowsDiagonal() bool {
	return g.orientation == OnVertex && g.vertexAdjacency
}

// toCube converts cell's offset coordinates to cube coordinates for
// hexagon distance computation, following the standard odd-q/even-q
// (column shift) or odd-r/even-r (row shift) conversions.
func (g *PolygonGrid) toCube(cell Cell) (x, y, z int) {
	switch g.shift {
	case ColumnDown:
		x = cell.Col
		z = cell.Row - (cell.Col-(cell.Col&1))/2
	case ColumnUp:
		x = cell.Col
		z = cell.Row - (cell.Col+(cell.Col&1))/2
	case RowRight:
		x = cell.Col - (cell.Row-(cell.Row&1))/2
		z = cell.Row
	case RowLeft:
		x = cell.Col - (cell.Row+(cell.Row&1))/2
		z = cell.Row
	}
	y = -x - z
	return x, y, z
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
