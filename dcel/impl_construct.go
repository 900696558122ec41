package dcel

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/geo2d/geom2d"
)

// NewFromLines builds a Subdivision from an unordered list of directed
// segments: every pairwise intersection becomes a vertex and segments
// are split accordingly. Fails if any input segment has zero length.
func NewFromLines(segments []geom2d.LineD, opts ...SubdivisionOption) (*Subdivision, error) {
	cfg := resolveConfig(opts)
	if cfg.eps < 0 {
		return nil, ErrNegativeEpsilon
	}
	for i, seg := range segments {
		if seg.Start.EqualEps(seg.End, cfg.eps) {
			return nil, fmt.Errorf("dcel: NewFromLines: segment %d: %w", i, ErrDegenerateSegment)
		}
	}

	s := &Subdivision{eps: cfg.eps, segments: append([]geom2d.LineD(nil), segments...)}
	if err := s.rebuild(); err != nil {
		return nil, err
	}
	return s, nil
}

// NewFromPolygons builds a Subdivision whose bounded faces correspond
// 1-to-1 with the input polygons in input order (face keys 1..n). Shared
// edges between adjacent polygons are deduplicated. Fails if any polygon
// has fewer than 3 vertices.
func NewFromPolygons(polygons [][]geom2d.PointD, opts ...SubdivisionOption) (*Subdivision, error) {
	cfg := resolveConfig(opts)
	if cfg.eps < 0 {
		return nil, ErrNegativeEpsilon
	}
	for i, poly := range polygons {
		if len(poly) < 3 {
			return nil, fmt.Errorf("dcel: NewFromPolygons: polygon %d: %w", i, ErrEmptyPolygon)
		}
	}

	var segments []geom2d.LineD
	interiors := make([]geom2d.PointD, len(polygons))
	for i, poly := range polygons {
		for j := range poly {
			a, b := poly[j], poly[(j+1)%len(poly)]
			if a.EqualEps(b, cfg.eps) {
				continue
			}
			segments = append(segments, geom2d.LineD{Start: a, End: b})
		}
		interiors[i] = polygonInteriorPoint(poly)
	}

	s := &Subdivision{eps: cfg.eps, segments: segments}
	if err := s.rebuild(); err != nil {
		return nil, err
	}

	// Renumber faces so that input polygon i (0-based) lands on face key
	// i+1, matching the declared contract.
	order := make([]FaceID, len(s.faces))
	order[UnboundedFace] = UnboundedFace
	placed := map[FaceID]bool{UnboundedFace: true}
	for i, interior := range interiors {
		loc := s.Locate(interior)
		if loc.Kind != LocateFace {
			return nil, fmt.Errorf("dcel: NewFromPolygons: polygon %d: %w", i, ErrInvariantViolation)
		}
		want := FaceID(i + 1)
		if int(want) >= len(order) || placed[loc.Face] {
			return nil, fmt.Errorf("dcel: NewFromPolygons: polygon %d: %w", i, ErrInvariantViolation)
		}
		order[want] = loc.Face
		placed[loc.Face] = true
	}
	if err := s.RenumberFaces(order); err != nil {
		return nil, err
	}
	return s, nil
}

// polygonInteriorPoint approximates an interior point of a simple
// polygon by averaging its vertices (exact for convex rings, a
// reasonable representative for the mildly concave rings this package
// targets).
func polygonInteriorPoint(poly []geom2d.PointD) geom2d.PointD {
	var sx, sy float64
	for _, p := range poly {
		sx += p.X
		sy += p.Y
	}
	n := float64(len(poly))
	return geom2d.PointD{X: sx / n, Y: sy / n}
}

// rebuild recomputes the entire arena (vertices, half-edges, faces) from
// s.segments. Edit operations mutate s.segments and then call rebuild,
// trading strict cross-edit ID stability for a simple, always-correct
// construction pipeline; see DESIGN.md.
func (s *Subdivision) rebuild() error {
	s.vertices = nil
	s.vertexOrder = nil
	s.edges = nil
	s.edgeOrder = nil
	s.faces = nil

	pieces, err := s.splitSegments()
	if err != nil {
		return err
	}
	s.buildHalfEdges(pieces)
	s.assembleTopology()
	s.discoverFaces()
	return nil
}

// segPiece is one maximal, pairwise-interior-disjoint edge of the final
// arrangement.
type segPiece struct {
	a, b VertexID
}

// candidateSeg is a segment being tracked through splitting: its
// canonical endpoints and any interior cut vertices discovered so far.
// group is always -1; splitSegments tracks collinear clusters in its own
// union-find instead.
type candidateSeg struct {
	a, b  VertexID
	cuts  []VertexID
	group int
}

// splitSegments canonicalizes every segment's endpoints to vertices,
// resolves collinear overlaps into maximal runs, splits every divergent
// intersection that is interior to at least one segment, and returns the
// final set of pairwise-interior-disjoint edges.
func (s *Subdivision) splitSegments() ([]segPiece, error) {
	n := len(s.segments)
	cands := make([]candidateSeg, n)
	for i, seg := range s.segments {
		a := s.findOrCreateVertex(seg.Start)
		b := s.findOrCreateVertex(seg.End)
		if a == b {
			return nil, fmt.Errorf("dcel: rebuild: segment %d: %w", i, ErrDegenerateSegment)
		}
		cands[i] = candidateSeg{a: a, b: b, group: -1}
	}

	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(x int) int {
		for parent[x] != x {
			parent[x] = parent[parent[x]]
			x = parent[x]
		}
		return x
	}
	union := func(x, y int) {
		rx, ry := find(x), find(y)
		if rx != ry {
			parent[rx] = ry
		}
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			ai, bi := s.vertices[cands[i].a].point, s.vertices[cands[i].b].point
			aj, bj := s.vertices[cands[j].a].point, s.vertices[cands[j].b].point
			if geom2d.Intersect(ai, bi, aj, bj, s.eps).Kind == geom2d.Collinear {
				union(i, j)
			}
		}
	}

	byGroup := make(map[int][]int)
	var roots []int
	for i := 0; i < n; i++ {
		r := find(i)
		if _, ok := byGroup[r]; !ok {
			roots = append(roots, r)
		}
		byGroup[r] = append(byGroup[r], i)
	}

	// Groups are visited in order of their first member, so rebuilding the
	// same segment set always yields the same vertex and edge ids.
	var merged []candidateSeg
	for _, r := range roots {
		idxs := byGroup[r]
		if len(idxs) == 1 {
			merged = append(merged, cands[idxs[0]])
			continue
		}
		merged = append(merged, s.mergeCollinearRuns(idxs, cands)...)
	}

	// Divergent interior intersections across all merged candidates.
	for i := 0; i < len(merged); i++ {
		for j := i + 1; j < len(merged); j++ {
			ai, bi := s.vertices[merged[i].a].point, s.vertices[merged[i].b].point
			aj, bj := s.vertices[merged[j].a].point, s.vertices[merged[j].b].point
			res := geom2d.Intersect(ai, bi, aj, bj, s.eps)
			if res.Kind != geom2d.Divergent {
				continue
			}
			// The crossing point must lie within both segments' real
			// extents, not just one; otherwise the lines cross somewhere
			// neither segment actually reaches.
			if !onSegment(res.ALocation) || !onSegment(res.BLocation) {
				continue
			}
			if res.ALocation == geom2d.Between {
				merged[i].cuts = append(merged[i].cuts, s.findOrCreateVertex(res.Point))
			}
			if res.BLocation == geom2d.Between {
				merged[j].cuts = append(merged[j].cuts, s.findOrCreateVertex(res.Point))
			}
		}
	}

	var pieces []segPiece
	seen := make(map[[2]VertexID]bool)
	for _, c := range merged {
		pts := append([]VertexID{c.a}, c.cuts...)
		pts = append(pts, c.b)
		a0 := s.vertices[c.a].point
		dir := s.vertices[c.b].point.Sub(a0)
		sort.Slice(pts, func(i, j int) bool {
			ti := s.vertices[pts[i]].point.Sub(a0).Dot(dir)
			tj := s.vertices[pts[j]].point.Sub(a0).Dot(dir)
			return ti < tj
		})
		var dedup []VertexID
		for _, v := range pts {
			if len(dedup) == 0 || dedup[len(dedup)-1] != v {
				dedup = append(dedup, v)
			}
		}
		for k := 0; k+1 < len(dedup); k++ {
			a, b := dedup[k], dedup[k+1]
			key := edgeKey(a, b)
			if seen[key] {
				continue
			}
			seen[key] = true
			pieces = append(pieces, segPiece{a: a, b: b})
		}
	}
	return pieces, nil
}

// mergeCollinearRuns merges a cluster of mutually collinear candidates
// into the minimal set of maximal non-overlapping runs along their
// shared line, via interval union.
func (s *Subdivision) mergeCollinearRuns(idxs []int, cands []candidateSeg) []candidateSeg {
	type interval struct {
		lo, hi   float64
		loV, hiV VertexID
	}
	a0 := s.vertices[cands[idxs[0]].a].point
	b0 := s.vertices[cands[idxs[0]].b].point
	dir := b0.Sub(a0)
	length := dir.Length()
	if length == 0 {
		length = 1
	}
	unit := dir.Scale(1 / length)

	intervals := make([]interval, 0, len(idxs))
	for _, idx := range idxs {
		a, b := cands[idx].a, cands[idx].b
		pa, pb := s.vertices[a].point, s.vertices[b].point
		ta := pa.Sub(a0).Dot(unit)
		tb := pb.Sub(a0).Dot(unit)
		if ta <= tb {
			intervals = append(intervals, interval{lo: ta, hi: tb, loV: a, hiV: b})
		} else {
			intervals = append(intervals, interval{lo: tb, hi: ta, loV: b, hiV: a})
		}
	}
	sort.Slice(intervals, func(i, j int) bool { return intervals[i].lo < intervals[j].lo })

	var out []candidateSeg
	cur := intervals[0]
	for _, iv := range intervals[1:] {
		if iv.lo <= cur.hi+s.eps {
			if iv.hi > cur.hi {
				cur.hi, cur.hiV = iv.hi, iv.hiV
			}
			continue
		}
		out = append(out, candidateSeg{a: cur.loV, b: cur.hiV, group: -1})
		cur = iv
	}
	out = append(out, candidateSeg{a: cur.loV, b: cur.hiV, group: -1})
	return out
}

// onSegment reports whether loc places a divergent intersection point
// within a segment's real extent (at an endpoint or strictly between
// them), as opposed to Before/After its span.
func onSegment(loc geom2d.Location) bool {
	return loc == geom2d.Start || loc == geom2d.Between || loc == geom2d.End
}

func edgeKey(a, b VertexID) [2]VertexID {
	if a < b {
		return [2]VertexID{a, b}
	}
	return [2]VertexID{b, a}
}

// buildHalfEdges creates a twin pair of half-edges for every final piece.
func (s *Subdivision) buildHalfEdges(pieces []segPiece) {
	for _, p := range pieces {
		e1 := EdgeID(len(s.edges))
		e2 := EdgeID(len(s.edges) + 1)
		s.edges = append(s.edges,
			halfEdgeRecord{origin: p.a, twin: e2},
			halfEdgeRecord{origin: p.b, twin: e1},
		)
		if s.vertices[p.a].edge == NoEdge {
			s.vertices[p.a].edge = e1
		}
		if s.vertices[p.b].edge == NoEdge {
			s.vertices[p.b].edge = e2
		}
	}
	s.edgeOrder = make([]EdgeID, len(s.edges))
	for i := range s.edgeOrder {
		s.edgeOrder[i] = EdgeID(i)
	}
	sort.Slice(s.edgeOrder, func(i, j int) bool {
		ei, ej := s.edges[s.edgeOrder[i]], s.edges[s.edgeOrder[j]]
		pi, pj := s.vertices[ei.origin].point, s.vertices[ej.origin].point
		if !pi.EqualEps(pj, s.eps) {
			return pi.Less(pj)
		}
		di := s.vertices[s.edges[ei.twin].origin].point
		dj := s.vertices[s.edges[ej.twin].origin].point
		return di.Less(dj)
	})
}

// assembleTopology assigns next/prev for every half-edge by sorting each
// vertex's outgoing half-edges into CCW angular order and linking
// consecutive edges' twins, per the standard DCEL construction
// algorithm: for consecutive outgoing edges (e_i, e_{i+1}) at a vertex,
// twin(e_i).next = e_{i+1} and e_{i+1}.prev = twin(e_i).
func (s *Subdivision) assembleTopology() {
	outgoing := make(map[VertexID][]EdgeID)
	for i := range s.edges {
		id := EdgeID(i)
		outgoing[s.edges[id].origin] = append(outgoing[s.edges[id].origin], id)
	}
	for v, list := range outgoing {
		origin := s.vertices[v].point
		sort.Slice(list, func(i, j int) bool {
			di := s.destinationPoint(list[i]).Sub(origin)
			dj := s.destinationPoint(list[j]).Sub(origin)
			return math.Atan2(di.Y, di.X) < math.Atan2(dj.Y, dj.X)
		})
		for i := range list {
			cur := list[i]
			nxt := list[(i+1)%len(list)]
			t := s.edges[cur].twin
			s.edges[t].next = nxt
			s.edges[nxt].prev = t
		}
	}
}

// destinationPoint returns the world point of half-edge id's destination.
func (s *Subdivision) destinationPoint(id EdgeID) geom2d.PointD {
	return s.vertices[s.edges[s.edges[id].twin].origin].point
}
