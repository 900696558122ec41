package dcel

import (
	"math"
	"sort"

	"github.com/katalvlaran/geo2d/geom2d"
)

// findOrCreateVertex returns the id of an existing vertex within epsilon
// of p, or creates one. Lookup is a binary search on the lexicographic
// (Y, X) spatial order to find the insertion point, followed by a local
// expansion in both directions while the candidate's Y offset from p
// stays within the current epsilon — the same nearest-neighbor shape
// described for vertex snapping throughout this package.
func (s *Subdivision) findOrCreateVertex(p geom2d.PointD) VertexID {
	idx := sort.Search(len(s.vertexOrder), func(i int) bool {
		return !s.vertices[s.vertexOrder[i]].point.Less(p)
	})

	if found, ok := s.scanNeighborhood(idx, p); ok {
		return found
	}

	id := VertexID(len(s.vertices))
	s.vertices = append(s.vertices, vertexRecord{point: p, edge: NoEdge})
	s.insertVertexOrder(id)
	return id
}

// scanNeighborhood looks for a vertex within epsilon of p starting from
// insertion index idx in s.vertexOrder, expanding outward while still
// within epsilon in Y.
func (s *Subdivision) scanNeighborhood(idx int, p geom2d.PointD) (VertexID, bool) {
	for i := idx; i < len(s.vertexOrder); i++ {
		v := s.vertexOrder[i]
		cand := s.vertices[v].point
		if math.Abs(cand.Y-p.Y) > s.eps && cand.Y > p.Y {
			break
		}
		if cand.EqualEps(p, s.eps) {
			return v, true
		}
	}
	for i := idx - 1; i >= 0; i-- {
		v := s.vertexOrder[i]
		cand := s.vertices[v].point
		if p.Y-cand.Y > s.eps {
			break
		}
		if cand.EqualEps(p, s.eps) {
			return v, true
		}
	}
	return NoVertex, false
}

// insertVertexOrder inserts id into s.vertexOrder, keeping it sorted by
// the lexicographic (Y, X) spatial order.
func (s *Subdivision) insertVertexOrder(id VertexID) {
	p := s.vertices[id].point
	idx := sort.Search(len(s.vertexOrder), func(i int) bool {
		return !s.vertices[s.vertexOrder[i]].point.Less(p)
	})
	s.vertexOrder = append(s.vertexOrder, NoVertex)
	copy(s.vertexOrder[idx+1:], s.vertexOrder[idx:])
	s.vertexOrder[idx] = id
}
