// Package grid tessellates a rectangular region into regular polygons
// (squares or hexagons, on-edge or on-vertex) arranged with an optional
// column or row shift, and exposes neighbor queries, step-distance,
// world↔grid coordinate mapping, and export to a dcel.Subdivision whose
// bounded faces correspond 1-to-1 with grid cells.
//
// Cell centers have x growing with the column and y growing with the
// row. Direction words in this package (up/down, top, N/S in neighbor
// tables) read the grid as on screen, with row 0 on top: "up" and "N"
// point toward smaller rows and smaller y, "down" and "S" toward larger.
//
// What:
//
//   - PolygonGrid wraps a Polygon × Orientation × ShiftMode × size
//     configuration, validated against a fixed compatibility matrix.
//   - Precomputes a per-parity neighbor offset table once, the way
//     gridgraph.NewGridGraph precomputes a single neighbor offset list.
//   - Converts to a *dcel.Subdivision via ToSubdivision, the 2-D
//     generalization of gridgraph.GridGraph.ToCoreGraph.
//
// Complexity:
//
//   - Neighbor/NeighborIndex/StepDistance: O(1).
//   - Neighbors(cell, distance): O(d^distance).
//   - ToSubdivision: O(cols*rows) segments fed into dcel construction.
//
// Errors:
//
//   - ErrEmptyGrid: width or height is not positive.
//   - ErrIncompatibleShift: polygon/orientation/shift combination is not
//     in the compatibility matrix.
//   - ErrCellOutOfBounds: a cell coordinate lies outside the grid.
//   - ErrReadOnlyView: sentinel for a mutating call made through a View.
//     View has no mutating methods, so nothing in this package returns it.
package grid
