package dcel

import "errors"

// Sentinel errors for dcel operations. Contextual failures wrap one of
// these with fmt.Errorf("dcel: %s: %w", op, Err...) so callers can branch
// with errors.Is.
var (
	// ErrDegenerateSegment indicates an input segment of zero effective
	// length (its endpoints coincide within epsilon after snapping).
	ErrDegenerateSegment = errors.New("dcel: segment has zero effective length")

	// ErrEmptyPolygon indicates a polygon with fewer than 3 vertices.
	ErrEmptyPolygon = errors.New("dcel: polygon must have at least 3 vertices")

	// ErrNegativeEpsilon indicates a negative comparison epsilon.
	ErrNegativeEpsilon = errors.New("dcel: epsilon must be non-negative")

	// ErrFaceNotFound indicates find_face matched no existing face.
	ErrFaceNotFound = errors.New("dcel: no face matches the given polygon")

	// ErrInvalidVertex indicates a VertexID outside the subdivision's range.
	ErrInvalidVertex = errors.New("dcel: vertex id out of range")

	// ErrInvalidEdge indicates an EdgeID outside the subdivision's range,
	// or one that refers to a half-edge already removed.
	ErrInvalidEdge = errors.New("dcel: edge id out of range or removed")

	// ErrInvalidFace indicates a FaceID outside the subdivision's range.
	ErrInvalidFace = errors.New("dcel: face id out of range")

	// ErrPointNotOnLine indicates split_edge's point does not lie between
	// the target edge's origin and destination within epsilon.
	ErrPointNotOnLine = errors.New("dcel: split point does not lie on the edge")

	// ErrInvariantViolation indicates an edit would break a DCEL invariant;
	// the call is rejected before any visible state changes.
	ErrInvariantViolation = errors.New("dcel: operation would violate a subdivision invariant")
)
