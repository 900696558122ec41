// Package graph2d defines the common node/neighbor view shared by
// dcel.Subdivision and grid.PolygonGrid, letting external callers write
// path-finding or visibility algorithms once against either backing
// structure. This package implements no such algorithm itself; it only
// defines the adapter surface (see spec §4.F, §6).
package graph2d
