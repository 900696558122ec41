// Package geo2d is a 2-D computational geometry toolkit: a value-type
// geometry kernel, a doubly-connected edge list for planar subdivisions,
// a Voronoi/Delaunay builder, and a regular-polygon grid tessellation,
// all addressable through a shared Graph2D adjacency view.
//
// Under the hood, everything is organized under five subpackages:
//
//	geom2d/   — points, segments, rectangles, and the line-intersection kernel
//	dcel/     — planar subdivisions: vertices, half-edges, faces
//	voronoi/  — half-plane-intersection Voronoi diagram and dual Delaunay triangulation
//	grid/     — square and hexagon tessellations over a rectangular region
//	graph2d/  — the common node/neighbor view shared by dcel and grid
//
// geo2d carries no CGO dependencies and targets the same pure-Go,
// explicit-error, functional-options style throughout every subpackage.
package geo2d
