package grid

import (
	"math"

	"github.com/katalvlaran/geo2d/geom2d"
)

// geometry holds the derived spacing and vertex-angle constants for a
// grid's polygon/orientation combination.
type geometry struct {
	colSpacing, rowSpacing float64
	vertexAngles           []float64 // radians, counter-clockwise from +X
}

func anglesDeg(startDeg, stepDeg float64, n int) []float64 {
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = (startDeg + float64(i)*stepDeg) * math.Pi / 180
	}
	return out
}

// geometry derives center spacing and the polygon's vertex template
// from the grid's circumradius and polygon/orientation.
func (g *PolygonGrid) geometry() geometry {
	switch g.polygon {
	case Square:
		side := g.circumradius * math.Sqrt2
		if g.orientation == OnEdge {
			return geometry{colSpacing: side, rowSpacing: side, vertexAngles: anglesDeg(45, 90, 4)}
		}
		return geometry{colSpacing: side, rowSpacing: side, vertexAngles: anglesDeg(0, 90, 4)}
	case Hexagon:
		if g.orientation == OnEdge {
			return geometry{
				colSpacing:   1.5 * g.circumradius,
				rowSpacing:   g.circumradius * math.Sqrt(3),
				vertexAngles: anglesDeg(0, 60, 6),
			}
		}
		return geometry{
			colSpacing:   g.circumradius * math.Sqrt(3),
			rowSpacing:   1.5 * g.circumradius,
			vertexAngles: anglesDeg(30, 60, 6),
		}
	}
	return geometry{}
}

// GridToWorld returns the world-space center of cell, applying the
// grid's shift stagger.
func (g *PolygonGrid) GridToWorld(cell Cell) geom2d.PointD {
	geo := g.geometry()
	x := float64(cell.Col) * geo.colSpacing
	y := float64(cell.Row) * geo.rowSpacing
	switch g.shift {
	case ColumnUp:
		if cell.Col&1 == 1 {
			y -= geo.rowSpacing / 2
		}
	case ColumnDown:
		if cell.Col&1 == 1 {
			y += geo.rowSpacing / 2
		}
	case RowLeft:
		if cell.Row&1 == 1 {
			x -= geo.colSpacing / 2
		}
	case RowRight:
		if cell.Row&1 == 1 {
			x += geo.colSpacing / 2
		}
	}
	return geom2d.PointD{X: x, Y: y}
}

// CellPolygon returns cell's boundary polygon in world space,
// vertices in counter-clockwise order.
func (g *PolygonGrid) CellPolygon(cell Cell) []geom2d.PointD {
	geo := g.geometry()
	center := g.GridToWorld(cell)
	poly := make([]geom2d.PointD, len(geo.vertexAngles))
	for i, theta := range geo.vertexAngles {
		poly[i] = geom2d.PointD{
			X: center.X + g.circumradius*math.Cos(theta),
			Y: center.Y + g.circumradius*math.Sin(theta),
		}
	}
	return poly
}

// WorldToGrid returns the cell whose polygon contains p, searching the
// neighborhood around a naive nearest-center estimate and comparing the
// offset from each candidate's center to its polygon via a
// point-in-polygon test. Returns false if p falls outside every cell.
func (g *PolygonGrid) WorldToGrid(p geom2d.PointD) (Cell, bool) {
	geo := g.geometry()
	colGuess := int(math.Round(p.X / geo.colSpacing))
	rowGuess := int(math.Round(p.Y / geo.rowSpacing))

	best := Cell{-1, -1}
	bestDist := math.Inf(1)
	for dc := -2; dc <= 2; dc++ {
		for dr := -2; dr <= 2; dr++ {
			cand := Cell{Col: colGuess + dc, Row: rowGuess + dr}
			if !g.InBounds(cand) {
				continue
			}
			center := g.GridToWorld(cand)
			if !pointInConvexPolygon(p, g.CellPolygon(cand)) {
				continue
			}
			d := center.Sub(p).Length()
			if d < bestDist {
				bestDist = d
				best = cand
			}
		}
	}
	if best.Col < 0 {
		return Cell{-1, -1}, false
	}
	return best, true
}

// WorldToGridClipped returns WorldToGrid's cell when p lies inside one.
// Otherwise it clamps p to at most half a polygon diameter beyond the
// outermost cell centers and returns the cell whose column and row
// indices are nearest to the clamped point, rounding each axis
// separately and clamping to the grid's index range. That fallback does
// not account for the column or row shift, and always reports true.
func (g *PolygonGrid) WorldToGridClipped(p geom2d.PointD) (Cell, bool) {
	if cell, ok := g.WorldToGrid(p); ok {
		return cell, true
	}
	geo := g.geometry()
	minX, minY := 0.0, 0.0
	maxX := float64(g.width-1) * geo.colSpacing
	maxY := float64(g.height-1) * geo.rowSpacing
	diameter := 2 * g.circumradius

	clamped := p
	if clamped.X < minX-diameter/2 {
		clamped.X = minX - diameter/2
	} else if clamped.X > maxX+diameter/2 {
		clamped.X = maxX + diameter/2
	}
	if clamped.Y < minY-diameter/2 {
		clamped.Y = minY - diameter/2
	} else if clamped.Y > maxY+diameter/2 {
		clamped.Y = maxY + diameter/2
	}

	colGuess := int(math.Round(clamped.X / geo.colSpacing))
	rowGuess := int(math.Round(clamped.Y / geo.rowSpacing))
	colGuess = clampInt(colGuess, 0, g.width-1)
	rowGuess = clampInt(rowGuess, 0, g.height-1)
	return Cell{Col: colGuess, Row: rowGuess}, true
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// pointInConvexPolygon reports whether p lies inside the convex
// polygon described by points (counter-clockwise), via a half-plane
// test against every edge.
func pointInConvexPolygon(p geom2d.PointD, points []geom2d.PointD) bool {
	n := len(points)
	for i := 0; i < n; i++ {
		a, b := points[i], points[(i+1)%n]
		edge := b.Sub(a)
		toP := p.Sub(a)
		if edge.Cross(toP) < 0 {
			return false
		}
	}
	return true
}
