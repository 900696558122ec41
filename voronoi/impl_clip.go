package voronoi

import "github.com/katalvlaran/geo2d/geom2d"

const halfPlaneEps = 1e-9

// clipPolygonHalfPlane clips the convex polygon points (assumed
// counter-clockwise) against the half-plane left of the directed line
// through p0 with direction dir, via Sutherland-Hodgman. This is the
// same algorithm geom2d.RectD.ClipPolygon uses against the four
// rectangle edges, generalized to an arbitrary line.
func clipPolygonHalfPlane(points []geom2d.PointD, p0, dir geom2d.PointD) []geom2d.PointD {
	if len(points) == 0 {
		return nil
	}
	var output []geom2d.PointD
	prev := points[len(points)-1]
	prevIn := insideHalfPlane(prev, p0, dir)
	for _, curr := range points {
		currIn := insideHalfPlane(curr, p0, dir)
		switch {
		case currIn && prevIn:
			output = append(output, curr)
		case currIn && !prevIn:
			if ip, ok := lineIntersect(prev, curr, p0, dir); ok {
				output = append(output, ip)
			}
			output = append(output, curr)
		case !currIn && prevIn:
			if ip, ok := lineIntersect(prev, curr, p0, dir); ok {
				output = append(output, ip)
			}
		}
		prev, prevIn = curr, currIn
	}
	return output
}

func insideHalfPlane(p, p0, dir geom2d.PointD) bool {
	return dir.Cross(p.Sub(p0)) >= -halfPlaneEps
}

// lineIntersect returns the point where segment a->b crosses the
// infinite line through p0 with direction dir, assuming the segment
// does cross it (the caller only calls this when a and b fall on
// opposite sides).
func lineIntersect(a, b, p0, dir geom2d.PointD) (geom2d.PointD, bool) {
	e := b.Sub(a)
	denom := e.Cross(dir)
	if denom == 0 {
		return geom2d.PointD{}, false
	}
	t := p0.Sub(a).Cross(dir) / denom
	return a.Add(e.Scale(t)), true
}
