package dcel

import "github.com/katalvlaran/geo2d/geom2d"

// LocateKind discriminates the kind of feature a Locate query landed on.
type LocateKind int

const (
	// LocateFace means the query point lies strictly inside a face's
	// interior, away from every boundary vertex or edge.
	LocateFace LocateKind = iota
	// LocateEdge means the query point lies on a half-edge's segment,
	// strictly between its endpoints.
	LocateEdge
	// LocateVertex means the query point coincides with an existing
	// vertex, within the subdivision's epsilon.
	LocateVertex
)

// LocateResult reports what a Locate query found. Exactly one of Face,
// Edge, or Vertex is meaningful, selected by Kind.
type LocateResult struct {
	Kind   LocateKind
	Face   FaceID
	Edge   EdgeID
	Vertex VertexID
}

// Locate classifies point against the subdivision: it reports the vertex
// or edge the point falls on, or else the face whose interior contains
// it. Implementation is a linear scan over vertices, edges, and faces; a
// history-DAG point location structure would make this query-time
// logarithmic but is not required by this package's contract (see
// DESIGN.md).
func (s *Subdivision) Locate(point geom2d.PointD) LocateResult {
	for i := range s.vertices {
		if s.vertices[i].point.EqualEps(point, s.eps) {
			return LocateResult{Kind: LocateVertex, Vertex: VertexID(i)}
		}
	}

	for i := range s.edges {
		e := &s.edges[i]
		if e.removed {
			continue
		}
		a := s.vertices[e.origin].point
		b := s.vertices[s.edges[e.twin].origin].point
		cls := geom2d.Classify(point, a, b, s.eps)
		if cls.Side == geom2d.Collinear && cls.Along == geom2d.Between {
			return LocateResult{Kind: LocateEdge, Edge: EdgeID(i)}
		}
	}

	best := UnboundedFace
	bestArea := -1.0
	for i := range s.faces {
		f := &s.faces[i]
		if f.removed || f.outer == NoEdge {
			continue
		}
		poly := s.cyclePoints(s.cycleHalfEdges(f.outer))
		if !pointInPolygon(point, poly) {
			continue
		}
		area := signedArea(poly)
		if bestArea < 0 || area < bestArea {
			bestArea = area
			best = FaceID(i)
		}
	}
	return LocateResult{Kind: LocateFace, Face: best}
}
