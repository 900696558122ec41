package dcel

import "github.com/katalvlaran/geo2d/geom2d"

// discoverFaces walks every half-edge cycle, allocates a face for each
// positive-area (outer) cycle, and attaches every non-positive-area cycle
// (a hole or an isolated edge pair) to the face that contains it,
// defaulting to the unbounded face (key 0) when none does.
func (s *Subdivision) discoverFaces() {
	// Reserve key 0 for the unbounded face up front.
	s.faces = append(s.faces, faceRecord{outer: NoEdge})

	visited := make([]bool, len(s.edges))

	type outerCycle struct {
		face   FaceID
		area   float64
		points []geom2d.PointD
	}
	var outers []outerCycle
	var innerStarts []EdgeID

	for i := range s.edges {
		start := EdgeID(i)
		if visited[start] {
			continue
		}
		cycle := s.cycleHalfEdges(start)
		for _, e := range cycle {
			visited[e] = true
		}
		points := s.cyclePoints(cycle)
		area := signedArea(points)
		if area > 0 {
			faceID := FaceID(len(s.faces))
			s.faces = append(s.faces, faceRecord{outer: start})
			for _, e := range cycle {
				s.edges[e].face = faceID
			}
			outers = append(outers, outerCycle{face: faceID, area: area, points: points})
		} else {
			innerStarts = append(innerStarts, start)
		}
	}

	for _, start := range innerStarts {
		cycle := s.cycleHalfEdges(start)
		innerPoints := s.cyclePoints(cycle)
		rep := interiorProbe(innerPoints, signedArea(innerPoints))

		container := UnboundedFace
		bestArea := -1.0
		for _, o := range outers {
			if !pointInPolygon(rep, o.points) {
				continue
			}
			if bestArea < 0 || o.area < bestArea {
				bestArea = o.area
				container = o.face
			}
		}
		for _, e := range cycle {
			s.edges[e].face = container
		}
		s.faces[container].inner = append(s.faces[container].inner, start)
	}
}
