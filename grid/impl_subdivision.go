package grid

import (
	"fmt"

	"github.com/katalvlaran/geo2d/dcel"
	"github.com/katalvlaran/geo2d/geom2d"
)

// CellFaceMap is a bidirectional mapping between grid cells and the
// dcel.FaceID values produced by ToSubdivision.
type CellFaceMap struct {
	cellToFace map[Cell]dcel.FaceID
	faceToCell map[dcel.FaceID]Cell
}

// Face returns the face corresponding to cell, if any.
func (m CellFaceMap) Face(cell Cell) (dcel.FaceID, bool) {
	f, ok := m.cellToFace[cell]
	return f, ok
}

// Cell returns the cell corresponding to face, if any.
func (m CellFaceMap) Cell(face dcel.FaceID) (Cell, bool) {
	c, ok := m.faceToCell[face]
	return c, ok
}

// defaultEpsilon returns the epsilon ToSubdivision uses when none is
// supplied: 1e-6 of the grid's circumradius, floored so pathologically
// small circumradii don't collapse to zero.
func (g *PolygonGrid) defaultEpsilon() float64 {
	eps := g.circumradius * 1e-6
	const floor = 1e-12
	if eps < floor {
		return floor
	}
	return eps
}

// ToSubdivision materializes the grid as a dcel.Subdivision: every cell
// becomes a bounded face, translated by offset. eps is the vertex
// dedup tolerance for shared edges between adjacent cells; pass 0 to
// use the grid's default (1e-6 of the circumradius).
func (g *PolygonGrid) ToSubdivision(offset geom2d.PointD, eps float64) (*dcel.Subdivision, CellFaceMap, error) {
	if eps <= 0 {
		eps = g.defaultEpsilon()
	}

	var polygons [][]geom2d.PointD
	var cells []Cell
	for col := 0; col < g.width; col++ {
		for row := 0; row < g.height; row++ {
			cell := Cell{Col: col, Row: row}
			poly := g.CellPolygon(cell)
			for i := range poly {
				poly[i] = poly[i].Add(offset)
			}
			polygons = append(polygons, poly)
			cells = append(cells, cell)
		}
	}

	sub, err := dcel.NewFromPolygons(polygons, dcel.WithEpsilon(eps))
	if err != nil {
		return nil, CellFaceMap{}, fmt.Errorf("grid: ToSubdivision: %w", err)
	}

	m := CellFaceMap{
		cellToFace: make(map[Cell]dcel.FaceID, len(cells)),
		faceToCell: make(map[dcel.FaceID]Cell, len(cells)),
	}
	for i, cell := range cells {
		face := dcel.FaceID(i + 1)
		m.cellToFace[cell] = face
		m.faceToCell[face] = cell
	}
	return sub, m, nil
}
