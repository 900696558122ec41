package voronoi

import (
	"fmt"
	"math"

	"github.com/katalvlaran/geo2d/geom2d"
)

// duplicateEps is the hard floor below which two sites are considered
// coincident, independent of any caller tolerance (mirroring dcel and
// geom2d's own hard-floor divisor tests).
const duplicateEps = 1e-9

// vertexMergeEps is the tolerance used to dedupe vertex coordinates
// produced independently by different cells' clipping.
const vertexMergeEps = 1e-7

// FindAll builds the clipped Voronoi diagram of points: its vertices,
// its edges (each referencing two generator sites), and the dual
// Delaunay edge set.
func FindAll(points []geom2d.PointD, opts ...DiagramOption) (Diagram, error) {
	if err := validateSites(points); err != nil {
		return Diagram{}, err
	}
	cfg := resolveDiagramConfig(opts)
	clip := boundingClip(points)
	if cfg.hasClip {
		clip = unionRect(clip, cfg.clip)
	}

	rectPoly := rectPolygon(clip)
	cells := make([][]geom2d.PointD, len(points))
	for i, site := range points {
		poly := append([]geom2d.PointD(nil), rectPoly...)
		for j, other := range points {
			if i == j {
				continue
			}
			mid, dir := bisector(site, other)
			poly = clipPolygonHalfPlane(poly, mid, dir)
			if len(poly) == 0 {
				break
			}
		}
		cells[i] = poly
	}

	var vertices []geom2d.PointD
	intern := func(p geom2d.PointD) int {
		for k, v := range vertices {
			if v.DistanceSq(p) <= vertexMergeEps*vertexMergeEps {
				return k
			}
		}
		vertices = append(vertices, p)
		return len(vertices) - 1
	}

	seen := make(map[[2]int]bool)
	var edges []Edge
	var delaunay []DelaunayEdge
	for i, poly := range cells {
		n := len(poly)
		for k := 0; k < n; k++ {
			a, b := poly[k], poly[(k+1)%n]
			j, ok := matchBisector(points, i, a, b)
			if !ok {
				continue
			}
			key := pairKey(i, j)
			if seen[key] {
				continue
			}
			seen[key] = true
			va, vb := intern(a), intern(b)
			edges = append(edges, Edge{SiteA: key[0], SiteB: key[1], VertexA: va, VertexB: vb})
			delaunay = append(delaunay, DelaunayEdge{SiteA: key[0], SiteB: key[1]})
		}
	}

	return Diagram{Vertices: vertices, Edges: edges, Delaunay: delaunay}, nil
}

// FindDelaunay builds only the Delaunay edge set, via the same
// cell-clipping construction FindAll uses.
func FindDelaunay(points []geom2d.PointD) ([]DelaunayEdge, error) {
	diagram, err := FindAll(points)
	if err != nil {
		return nil, err
	}
	return diagram.Delaunay, nil
}

func validateSites(points []geom2d.PointD) error {
	if len(points) < 3 {
		return ErrTooFewSites
	}
	for i := range points {
		for j := i + 1; j < len(points); j++ {
			if points[i].DistanceSq(points[j]) <= duplicateEps*duplicateEps {
				return fmt.Errorf("voronoi: sites %d and %d: %w", i, j, ErrDuplicateSite)
			}
		}
	}
	return nil
}

// boundingClip returns the sites' bounding box inflated by 10% of its
// larger dimension, floored to 1.0 when that margin is not positive
// (both width and height zero). A set with only one zero dimension keeps
// the 10% margin.
func boundingClip(points []geom2d.PointD) geom2d.RectD {
	minX, maxX := points[0].X, points[0].X
	minY, maxY := points[0].Y, points[0].Y
	for _, p := range points[1:] {
		minX = min(minX, p.X)
		maxX = max(maxX, p.X)
		minY = min(minY, p.Y)
		maxY = max(maxY, p.Y)
	}
	width, height := maxX-minX, maxY-minY
	margin := 0.1 * max(width, height)
	if margin <= 0 {
		margin = 1
	}
	return geom2d.NewRectD(minX-margin, minY-margin, width+2*margin, height+2*margin)
}

// unionRect returns the smallest rectangle containing both a and b.
func unionRect(a, b geom2d.RectD) geom2d.RectD {
	left := min(a.Left(), b.Left())
	right := max(a.Right(), b.Right())
	bottom := min(a.Bottom(), b.Bottom())
	top := max(a.Top(), b.Top())
	return geom2d.NewRectD(left, bottom, right-left, top-bottom)
}

// rectPolygon returns r's four corners in counter-clockwise order.
func rectPolygon(r geom2d.RectD) []geom2d.PointD {
	return []geom2d.PointD{
		{X: r.Left(), Y: r.Bottom()},
		{X: r.Right(), Y: r.Bottom()},
		{X: r.Right(), Y: r.Top()},
		{X: r.Left(), Y: r.Top()},
	}
}

// bisector returns a point on and a direction along the perpendicular
// bisector of a and b, oriented so a lies on the half-plane's kept
// (left) side.
func bisector(a, b geom2d.PointD) (point, dir geom2d.PointD) {
	mid := a.Add(b).Scale(0.5)
	d := b.Sub(a)
	perp := geom2d.PointD{X: -d.Y, Y: d.X}
	if perp.Cross(a.Sub(mid)) < 0 {
		perp = geom2d.PointD{X: d.Y, Y: -d.X}
	}
	return mid, perp
}

// matchBisector returns the site j (j != i) whose bisector with site i
// best explains edge a-b, and whether the match is tight enough to
// count as a true Voronoi edge rather than a leftover clip-rectangle
// boundary segment.
func matchBisector(points []geom2d.PointD, i int, a, b geom2d.PointD) (int, bool) {
	site := points[i]
	best := -1
	bestErr := math.Inf(1)
	for j, other := range points {
		if j == i {
			continue
		}
		da := math.Abs(a.DistanceSq(site) - a.DistanceSq(other))
		db := math.Abs(b.DistanceSq(site) - b.DistanceSq(other))
		errVal := math.Max(da, db)
		if errVal < bestErr {
			bestErr = errVal
			best = j
		}
	}
	const matchTol = 1e-4
	return best, best >= 0 && bestErr < matchTol
}

// pairKey returns the sorted pair (min, max) identifying an unordered
// site pair.
func pairKey(i, j int) [2]int {
	if i < j {
		return [2]int{i, j}
	}
	return [2]int{j, i}
}
