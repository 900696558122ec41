package dcel

import "github.com/katalvlaran/geo2d/geom2d"

// noIndex is the internal null sentinel for arena indices.
const noIndex uint32 = ^uint32(0)

// VertexID indexes a vertex within a Subdivision.
type VertexID uint32

// EdgeID indexes a half-edge within a Subdivision. Twins are always
// adjacent-or-paired array entries conceptually, but no fixed offset is
// assumed: twin is stored explicitly.
type EdgeID uint32

// FaceID indexes a face within a Subdivision. Key 0 is always the
// unbounded face.
type FaceID uint32

// NoVertex, NoEdge, and NoFace are the exported null sentinels.
const (
	NoVertex = VertexID(noIndex)
	NoEdge   = EdgeID(noIndex)
	NoFace   = FaceID(noIndex)
)

// UnboundedFace is the key of the subdivision's unique unbounded face.
const UnboundedFace FaceID = 0

// vertexRecord is the internal arena record for a vertex.
type vertexRecord struct {
	point geom2d.PointD
	// edge is one outgoing half-edge, or NoEdge when no final edge touches
	// the vertex (the junction of two abutting collinear segments that
	// were merged into one run stays behind as such an isolated vertex).
	edge EdgeID
}

// halfEdgeRecord is the internal arena record for a half-edge.
type halfEdgeRecord struct {
	origin VertexID
	twin   EdgeID
	next   EdgeID
	prev   EdgeID
	face   FaceID
	// removed marks a tombstoned slot, which accessors and iterators skip.
	// rebuild regenerates the arena without tombstones, so an EdgeID
	// handed out before an edit may name a different half-edge after it.
	removed bool
}

// faceRecord is the internal arena record for a face.
type faceRecord struct {
	outer   EdgeID // NoEdge for the unbounded face
	inner   []EdgeID
	removed bool
}

// Vertex is the public, immutable snapshot of a vertex returned by
// Subdivision accessors.
type Vertex struct {
	ID    VertexID
	Point geom2d.PointD
}

// HalfEdge is the public, immutable snapshot of a half-edge returned by
// Subdivision accessors.
type HalfEdge struct {
	ID     EdgeID
	Origin VertexID
	Twin   EdgeID
	Next   EdgeID
	Prev   EdgeID
	Face   FaceID
}

// Face is the public, immutable snapshot of a face returned by
// Subdivision accessors.
type Face struct {
	ID    FaceID
	Outer EdgeID // NoEdge for the unbounded face
	Inner []EdgeID
}

// Subdivision is a planar subdivision: an arena of vertices, half-edges,
// and faces with the invariants documented in this package's doc comment.
// The zero value is not usable; construct one with NewFromLines or
// NewFromPolygons.
type Subdivision struct {
	eps float64

	// segments holds the caller-supplied geometry (one entry per original
	// input segment, polygon edges included) that rebuild regenerates the
	// arena from. Edits mutate this slice and call rebuild rather than
	// performing incremental topology surgery.
	segments []geom2d.LineD

	vertices []vertexRecord
	edges    []halfEdgeRecord
	faces    []faceRecord

	// vertexOrder holds indices into vertices, kept sorted by the
	// lexicographic (Y, X) spatial order, supporting O(log n) binary
	// search for snapping and nearest-vertex queries.
	vertexOrder []VertexID
	// edgeOrder holds indices into edges, kept sorted by the
	// lexicographic order of (origin, destination) in vertex spatial
	// order.
	edgeOrder []EdgeID
}

// Epsilon returns the subdivision's coordinate-comparison tolerance.
func (s *Subdivision) Epsilon() float64 { return s.eps }

// SubdivisionOption configures a Subdivision at construction time.
type SubdivisionOption func(*subdivisionConfig)

type subdivisionConfig struct {
	eps float64
}

// WithEpsilon sets the coordinate-comparison tolerance used throughout
// construction and every subsequent query or edit. eps must be
// non-negative; a zero value means exact coordinate comparison.
func WithEpsilon(eps float64) SubdivisionOption {
	return func(c *subdivisionConfig) { c.eps = eps }
}

func resolveConfig(opts []SubdivisionOption) subdivisionConfig {
	cfg := subdivisionConfig{eps: 0}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
