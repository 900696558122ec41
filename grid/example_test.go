package grid_test

import (
	"fmt"

	"github.com/katalvlaran/geo2d/grid"
)

func ExampleNewPolygonGrid() {
	g, err := grid.NewPolygonGrid(grid.Square, grid.OnEdge, grid.None, 1, 3, 3)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(g.Connectivity(), len(g.CellNeighbors(grid.Cell{Col: 1, Row: 1}, 1)))
	// Output: 4 4
}

func ExamplePolygonGrid_StepDistance() {
	g, err := grid.NewPolygonGrid(grid.Hexagon, grid.OnEdge, grid.ColumnDown, 1, 5, 5)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(g.StepDistance(grid.Cell{Col: 0, Row: 0}, grid.Cell{Col: 4, Row: 4}))
	// Output: 6
}
