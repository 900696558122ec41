package dcel

import (
	"iter"

	"github.com/katalvlaran/geo2d/geom2d"
	"github.com/katalvlaran/geo2d/graph2d"
)

var _ graph2d.Graph2D = (*Subdivision)(nil)

// Nodes returns a lazy sequence over every face, unbounded face
// included, satisfying graph2d.Graph2D.
func (s *Subdivision) Nodes() iter.Seq[graph2d.NodeID] {
	return func(yield func(graph2d.NodeID) bool) {
		for i := range s.faces {
			if s.faces[i].removed {
				continue
			}
			if !yield(graph2d.NodeID(i)) {
				return
			}
		}
	}
}

// Connectivity returns the largest number of distinct neighbor faces
// any single face has.
func (s *Subdivision) Connectivity() int {
	best := 0
	for i := range s.faces {
		if s.faces[i].removed {
			continue
		}
		if n := len(s.faceNeighbors(FaceID(i))); n > best {
			best = n
		}
	}
	return best
}

// Contains reports whether id names a live face.
func (s *Subdivision) Contains(id graph2d.NodeID) bool {
	i := int(id)
	return i >= 0 && i < len(s.faces) && !s.faces[i].removed
}

// Neighbors returns every face reachable from id within distance steps
// of shared-edge adjacency.
func (s *Subdivision) Neighbors(id graph2d.NodeID, distance int) []graph2d.NodeID {
	if distance <= 0 || !s.Contains(id) {
		return nil
	}
	start := FaceID(id)
	visited := map[FaceID]int{start: 0}
	frontier := []FaceID{start}
	var out []graph2d.NodeID
	for step := 1; step <= distance && len(frontier) > 0; step++ {
		var next []FaceID
		for _, f := range frontier {
			for _, n := range s.faceNeighbors(f) {
				if _, ok := visited[n]; ok {
					continue
				}
				visited[n] = step
				out = append(out, graph2d.NodeID(n))
				next = append(next, n)
			}
		}
		frontier = next
	}
	return out
}

// Location returns a bounded face's interior point. The unbounded face
// has no representative interior point and reports false.
func (s *Subdivision) Location(id graph2d.NodeID) (geom2d.PointD, bool) {
	poly, ok := s.Region(id)
	if !ok {
		return geom2d.PointD{}, false
	}
	return polygonInteriorPoint(poly), true
}

// Region returns a bounded face's outer boundary polygon. The unbounded
// face has no boundary polygon and reports false.
func (s *Subdivision) Region(id graph2d.NodeID) ([]geom2d.PointD, bool) {
	i := int(id)
	if i < 0 || i >= len(s.faces) || s.faces[i].removed {
		return nil, false
	}
	f := s.faces[i]
	if f.outer == NoEdge {
		return nil, false
	}
	return s.cyclePoints(s.cycleHalfEdges(f.outer)), true
}

// Nearest returns the face whose interior contains point, the face of
// the boundary feature point lies on, or the unbounded face if point
// lies outside every bounded face.
func (s *Subdivision) Nearest(point geom2d.PointD) (graph2d.NodeID, bool) {
	loc := s.Locate(point)
	switch loc.Kind {
	case LocateFace:
		return graph2d.NodeID(loc.Face), true
	case LocateEdge:
		return graph2d.NodeID(s.edges[loc.Edge].face), true
	case LocateVertex:
		e := s.vertices[loc.Vertex].edge
		if e == NoEdge {
			return graph2d.NodeID(UnboundedFace), true
		}
		return graph2d.NodeID(s.edges[e].face), true
	}
	return 0, false
}

// Distance returns the number of shared-edge hops between faces a and
// b, or -1 if b is unreachable from a.
func (s *Subdivision) Distance(a, b graph2d.NodeID) int {
	if !s.Contains(a) || !s.Contains(b) {
		return -1
	}
	if a == b {
		return 0
	}
	start := FaceID(a)
	target := FaceID(b)
	visited := map[FaceID]bool{start: true}
	frontier := []FaceID{start}
	for step := 1; len(frontier) > 0; step++ {
		var next []FaceID
		for _, f := range frontier {
			for _, n := range s.faceNeighbors(f) {
				if visited[n] {
					continue
				}
				if n == target {
					return step
				}
				visited[n] = true
				next = append(next, n)
			}
		}
		frontier = next
	}
	return -1
}

// faceNeighbors returns the distinct faces adjacent to f across a
// shared edge.
func (s *Subdivision) faceNeighbors(f FaceID) []FaceID {
	seen := make(map[FaceID]bool)
	var out []FaceID
	for i := range s.edges {
		e := &s.edges[i]
		if e.removed || e.face != f {
			continue
		}
		other := s.edges[e.twin].face
		if other == f || seen[other] {
			continue
		}
		seen[other] = true
		out = append(out, other)
	}
	return out
}
