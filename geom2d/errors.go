package geom2d

import "errors"

// Sentinel errors for geom2d operations.
var (
	// ErrDegenerateSegment indicates a segment whose two endpoints coincide.
	ErrDegenerateSegment = errors.New("geom2d: segment has zero length")

	// ErrNegativeEpsilon indicates a negative epsilon was supplied where
	// only a non-negative tolerance is accepted.
	ErrNegativeEpsilon = errors.New("geom2d: epsilon must be non-negative")

	// ErrEmptyPolygon indicates a polygon with fewer than three vertices
	// was supplied to an operation that requires a closed ring.
	ErrEmptyPolygon = errors.New("geom2d: polygon must have at least 3 vertices")
)
