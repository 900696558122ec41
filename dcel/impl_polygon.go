package dcel

import (
	"math"

	"github.com/katalvlaran/geo2d/geom2d"
)

// signedArea computes the shoelace signed area of a closed polygon given
// in order. Positive for counter-clockwise (y growing upward), negative
// for clockwise.
func signedArea(points []geom2d.PointD) float64 {
	var sum float64
	n := len(points)
	for i := 0; i < n; i++ {
		a := points[i]
		b := points[(i+1)%n]
		sum += a.X*b.Y - b.X*a.Y
	}
	return sum / 2
}

// pointInPolygon reports whether p lies inside the closed polygon
// described by points, via ray casting along +X.
func pointInPolygon(p geom2d.PointD, points []geom2d.PointD) bool {
	inside := false
	n := len(points)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := points[i], points[j]
		if (a.Y > p.Y) != (b.Y > p.Y) {
			xCross := a.X + (p.Y-a.Y)/(b.Y-a.Y)*(b.X-a.X)
			if p.X < xCross {
				inside = !inside
			}
		}
	}
	return inside
}

// polygonCentroid returns the area-weighted centroid of the closed
// polygon described by points, given its signed area (as returned by
// signedArea). This is the standard simple-polygon centroid formula; for
// the convex shapes discoverFaces deals with (rectangles, triangles,
// grid cells) the centroid always lies strictly inside the boundary.
func polygonCentroid(points []geom2d.PointD, area float64) geom2d.PointD {
	var cx, cy float64
	n := len(points)
	for i := 0; i < n; i++ {
		a := points[i]
		b := points[(i+1)%n]
		cross := a.X*b.Y - b.X*a.Y
		cx += (a.X + b.X) * cross
		cy += (a.Y + b.Y) * cross
	}
	factor := 1 / (6 * area)
	return geom2d.PointD{X: cx * factor, Y: cy * factor}
}

// interiorProbe returns a point guaranteed to lie off the boundary of
// the closed polygon described by points: testing one of the polygon's
// own vertices against its own boundary is ambiguous under ray casting
// (pointInPolygon's verdict then depends on traversal order rather than
// geometry). Falls back to an inward offset from the longest edge's
// midpoint when area is too close to zero for the centroid formula to
// be meaningful (a degenerate or dangling cycle).
func interiorProbe(points []geom2d.PointD, area float64) geom2d.PointD {
	const minArea = 1e-9
	if area > minArea || area < -minArea {
		return polygonCentroid(points, area)
	}

	n := len(points)
	best := 0
	bestLenSq := -1.0
	for i := 0; i < n; i++ {
		lenSq := points[i].DistanceSq(points[(i+1)%n])
		if lenSq > bestLenSq {
			bestLenSq = lenSq
			best = i
		}
	}
	a, b := points[best], points[(best+1)%n]
	mid := a.Add(b).Scale(0.5)
	dir := b.Sub(a)
	normal := geom2d.PointD{X: -dir.Y, Y: dir.X}
	length := normal.Length()
	if length == 0 {
		return mid
	}
	nudge := 1e-6 * math.Sqrt(bestLenSq)
	return mid.Add(normal.Scale(nudge / length))
}

// cycleHalfEdges returns the half-edge ids visited by following next
// from start back to start.
func (s *Subdivision) cycleHalfEdges(start EdgeID) []EdgeID {
	var cycle []EdgeID
	e := start
	for {
		cycle = append(cycle, e)
		e = s.edges[e].next
		if e == start {
			break
		}
	}
	return cycle
}

// cyclePoints returns the origin points of each half-edge in cycle.
func (s *Subdivision) cyclePoints(cycle []EdgeID) []geom2d.PointD {
	points := make([]geom2d.PointD, len(cycle))
	for i, e := range cycle {
		points[i] = s.vertices[s.edges[e].origin].point
	}
	return points
}
