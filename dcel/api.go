package dcel

import (
	"fmt"
	"iter"
	"sort"

	"github.com/katalvlaran/geo2d/geom2d"
)

// UnboundedFace returns the key of the subdivision's unique unbounded
// face (always 0).
func (s *Subdivision) UnboundedFace() FaceID { return UnboundedFace }

// VertexAt returns the public snapshot of vertex id.
func (s *Subdivision) VertexAt(id VertexID) (Vertex, bool) {
	if int(id) >= len(s.vertices) {
		return Vertex{}, false
	}
	return Vertex{ID: id, Point: s.vertices[id].point}, true
}

// EdgeAt returns the public snapshot of half-edge id.
func (s *Subdivision) EdgeAt(id EdgeID) (HalfEdge, bool) {
	if int(id) >= len(s.edges) || s.edges[id].removed {
		return HalfEdge{}, false
	}
	e := s.edges[id]
	return HalfEdge{ID: id, Origin: e.origin, Twin: e.twin, Next: e.next, Prev: e.prev, Face: e.face}, true
}

// FaceAt returns the public snapshot of face id.
func (s *Subdivision) FaceAt(id FaceID) (Face, bool) {
	if int(id) >= len(s.faces) || s.faces[id].removed {
		return Face{}, false
	}
	f := s.faces[id]
	return Face{ID: id, Outer: f.outer, Inner: append([]EdgeID(nil), f.inner...)}, true
}

// Vertices returns a lazy, restartable sequence over every live vertex,
// in ascending ID order. Each call yields a fresh sequence over the
// subdivision's current state.
func (s *Subdivision) Vertices() iter.Seq[Vertex] {
	return func(yield func(Vertex) bool) {
		for i := range s.vertices {
			if !yield(Vertex{ID: VertexID(i), Point: s.vertices[i].point}) {
				return
			}
		}
	}
}

// Edges returns a lazy, restartable sequence over every live half-edge,
// in ascending ID order.
func (s *Subdivision) Edges() iter.Seq[HalfEdge] {
	return func(yield func(HalfEdge) bool) {
		for i := range s.edges {
			if s.edges[i].removed {
				continue
			}
			e := s.edges[i]
			he := HalfEdge{ID: EdgeID(i), Origin: e.origin, Twin: e.twin, Next: e.next, Prev: e.prev, Face: e.face}
			if !yield(he) {
				return
			}
		}
	}
}

// Faces returns a lazy, restartable sequence over every live face, in
// ascending ID order (UnboundedFace first).
func (s *Subdivision) Faces() iter.Seq[Face] {
	return func(yield func(Face) bool) {
		for i := range s.faces {
			if s.faces[i].removed {
				continue
			}
			f := s.faces[i]
			face := Face{ID: FaceID(i), Outer: f.outer, Inner: append([]EdgeID(nil), f.inner...)}
			if !yield(face) {
				return
			}
		}
	}
}

// FindFace returns the bounded face that contains polygon's vertex
// average and whose outer boundary passes through every vertex of
// polygon within epsilon (so any rotation or winding of the ring
// matches), returning ErrFaceNotFound if there is none.
func (s *Subdivision) FindFace(polygon []geom2d.PointD) (FaceID, error) {
	if len(polygon) < 3 {
		return NoFace, ErrEmptyPolygon
	}
	interior := polygonInteriorPoint(polygon)
	loc := s.Locate(interior)
	if loc.Kind != LocateFace || loc.Face == UnboundedFace {
		return NoFace, ErrFaceNotFound
	}
	ring := s.cyclePoints(s.cycleHalfEdges(s.faces[loc.Face].outer))
	for _, p := range polygon {
		onRing := false
		for _, q := range ring {
			if q.EqualEps(p, s.eps) {
				onRing = true
				break
			}
		}
		if !onRing {
			return NoFace, ErrFaceNotFound
		}
	}
	return loc.Face, nil
}

// FindEdge returns the half-edge whose origin is a and destination is b,
// within epsilon. Returns ErrInvalidEdge if no such half-edge exists.
func (s *Subdivision) FindEdge(a, b geom2d.PointD) (EdgeID, error) {
	va, aOK := s.findExistingVertex(a)
	vb, bOK := s.findExistingVertex(b)
	if !aOK || !bOK {
		return NoEdge, ErrInvalidEdge
	}
	for i := range s.edges {
		if s.edges[i].removed {
			continue
		}
		if s.edges[i].origin == va && s.edges[s.edges[i].twin].origin == vb {
			return EdgeID(i), nil
		}
	}
	return NoEdge, ErrInvalidEdge
}

// findExistingVertex looks up a vertex at p without creating one.
func (s *Subdivision) findExistingVertex(p geom2d.PointD) (VertexID, bool) {
	idx := sort.Search(len(s.vertexOrder), func(i int) bool {
		return !s.vertices[s.vertexOrder[i]].point.Less(p)
	})
	return s.scanNeighborhood(idx, p)
}

// Clone returns a deep, independent copy of s.
func (s *Subdivision) Clone() *Subdivision {
	return &Subdivision{
		eps:         s.eps,
		segments:    append([]geom2d.LineD(nil), s.segments...),
		vertices:    append([]vertexRecord(nil), s.vertices...),
		edges:       append([]halfEdgeRecord(nil), s.edges...),
		faces:       cloneFaces(s.faces),
		vertexOrder: append([]VertexID(nil), s.vertexOrder...),
		edgeOrder:   append([]EdgeID(nil), s.edgeOrder...),
	}
}

func cloneFaces(faces []faceRecord) []faceRecord {
	out := make([]faceRecord, len(faces))
	for i, f := range faces {
		out[i] = faceRecord{outer: f.outer, inner: append([]EdgeID(nil), f.inner...), removed: f.removed}
	}
	return out
}

// RenumberFaces replaces the subdivision's face arena with the
// permutation order, such that the face currently keyed order[k] becomes
// keyed k. order must be a bijection over the current face keys with
// order[UnboundedFace] == UnboundedFace.
func (s *Subdivision) RenumberFaces(order []FaceID) error {
	if len(order) != len(s.faces) {
		return fmt.Errorf("dcel: RenumberFaces: %w", ErrInvariantViolation)
	}
	if order[UnboundedFace] != UnboundedFace {
		return fmt.Errorf("dcel: RenumberFaces: %w", ErrInvariantViolation)
	}
	seen := make([]bool, len(order))
	newFaces := make([]faceRecord, len(order))
	inverse := make([]FaceID, len(order))
	for newKey, oldKey := range order {
		if int(oldKey) >= len(s.faces) || seen[oldKey] {
			return fmt.Errorf("dcel: RenumberFaces: %w", ErrInvariantViolation)
		}
		seen[oldKey] = true
		newFaces[newKey] = s.faces[oldKey]
		inverse[oldKey] = FaceID(newKey)
	}
	for i := range s.edges {
		if s.edges[i].removed {
			continue
		}
		s.edges[i].face = inverse[s.edges[i].face]
	}
	s.faces = newFaces
	return nil
}
