// Package dcel implements a planar subdivision — a doubly-connected edge
// list (DCEL) of vertices, half-edges, and faces — with the topological
// invariants, point-location, and incremental editing operations needed
// to build one from line segments or closed polygons and query it
// afterward.
//
// Storage follows an arena-of-indices design: a Subdivision owns three
// dense slices (vertices, half-edges, faces) and every cross-reference
// (twin, next, previous, origin, face, outer/inner boundary) is a plain
// index into one of those slices. The reserved index NoVertex/NoEdge/
// NoFace (the slice-length-independent sentinel ^uint32(0)) encodes a
// null reference. This generalizes the teacher package's map-keyed
// adjacency to integer-indexed arrays, matching this package's need for
// the two simultaneous orderings (creation order and spatial order)
// spec'd for vertices and edges.
//
// Twins, next/previous, and face pointers are always kept consistent:
// every exported mutation either fully succeeds, leaving those links
// consistent, or fails and leaves the subdivision as it was before the
// call.
//
// Coordinate equality throughout the package is controlled by the
// Subdivision's own epsilon, set at construction time: zero means exact
// comparison, a positive value means |a-b| <= eps.
package dcel
