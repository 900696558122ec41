package graph2d

import (
	"iter"

	"github.com/katalvlaran/geo2d/geom2d"
)

// NodeID identifies a node in a Graph2D view. A dcel.Subdivision node is
// its FaceID widened to NodeID; a grid.PolygonGrid node packs its
// (col, row) pair into one value. Callers should treat NodeID as opaque
// and never construct one directly.
type NodeID uint64

// Graph2D is the common adapter over a planar subdivision's faces or a
// polygon grid's cells: node iteration, connectivity, membership,
// neighbor queries (direct or within a step radius), world-location and
// world-region accessors, nearest-node lookup, and a step-count
// distance metric.
type Graph2D interface {
	// Nodes returns a lazy, restartable sequence over every node.
	Nodes() iter.Seq[NodeID]
	// Connectivity returns the maximum number of direct neighbors any
	// node can have (the structure's fan-out bound, not a per-node count).
	Connectivity() int
	// Contains reports whether id names a live node.
	Contains(id NodeID) bool
	// Neighbors returns every node reachable from id within distance
	// steps (distance == 1 means direct neighbors only).
	Neighbors(id NodeID, distance int) []NodeID
	// Location returns a representative world point for id (a face's
	// interior point, or a cell's center).
	Location(id NodeID) (geom2d.PointD, bool)
	// Region returns id's boundary polygon in order.
	Region(id NodeID) ([]geom2d.PointD, bool)
	// Nearest returns the node whose region contains point, and false
	// when it finds none; the closest node outside every region is not
	// searched for.
	Nearest(point geom2d.PointD) (NodeID, bool)
	// Distance returns the number of steps on the neighbor graph between
	// a and b, or -1 if b is unreachable from a.
	Distance(a, b NodeID) int
}
