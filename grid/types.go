package grid

// Polygon selects the regular polygon tessellating the grid.
type Polygon int

const (
	// Square tessellates the plane with axis-aligned (on-edge) or
	// diamond-rotated (on-vertex) squares.
	Square Polygon = iota
	// Hexagon tessellates the plane with flat-top (on-edge) or
	// pointy-top (on-vertex) regular hexagons.
	Hexagon
)

func (p Polygon) String() string {
	switch p {
	case Square:
		return "Square"
	case Hexagon:
		return "Hexagon"
	default:
		return "Polygon(?)"
	}
}

// Orientation selects whether the polygon's flat side or a vertex faces
// up.
type Orientation int

const (
	// OnEdge orients the polygon so a flat edge faces up.
	OnEdge Orientation = iota
	// OnVertex orients the polygon so a vertex faces up.
	OnVertex
)

func (o Orientation) String() string {
	switch o {
	case OnEdge:
		return "OnEdge"
	case OnVertex:
		return "OnVertex"
	default:
		return "Orientation(?)"
	}
}

// ShiftMode selects how alternating columns or rows are offset to tile
// without gaps.
type ShiftMode int

const (
	// None applies no stagger (only valid for Square+OnEdge).
	None ShiftMode = iota
	// ColumnUp staggers odd columns upward by half a row.
	ColumnUp
	// ColumnDown staggers odd columns downward by half a row.
	ColumnDown
	// RowLeft staggers odd rows leftward by half a column.
	RowLeft
	// RowRight staggers odd rows rightward by half a column.
	RowRight
)

func (s ShiftMode) String() string {
	switch s {
	case None:
		return "None"
	case ColumnUp:
		return "ColumnUp"
	case ColumnDown:
		return "ColumnDown"
	case RowLeft:
		return "RowLeft"
	case RowRight:
		return "RowRight"
	default:
		return "ShiftMode(?)"
	}
}

// Cell identifies a grid cell by its integer column and row, with
// 0 <= Col < Width and 0 <= Row < Height.
type Cell struct {
	Col, Row int
}

// Offset is a relative (Δcol, Δrow) step to a neighboring cell.
type Offset struct {
	DCol, DRow int
}

// GridOption configures a PolygonGrid at construction time.
type GridOption func(*gridConfig)

type gridConfig struct {
	vertexAdjacency bool
}

// WithVertexAdjacency enables the extra diagonal neighbors for
// Square+OnVertex grids, raising connectivity from 4 to 8. It has no
// effect on any other polygon/orientation combination.
func WithVertexAdjacency() GridOption {
	return func(c *gridConfig) { c.vertexAdjacency = true }
}

func resolveGridConfig(opts []GridOption) gridConfig {
	var cfg gridConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// PolygonGrid is an immutable tessellation of a rectangular col/row
// region by a regular polygon. Construct one with NewPolygonGrid.
type PolygonGrid struct {
	polygon      Polygon
	orientation  Orientation
	shift        ShiftMode
	circumradius float64
	width        int
	height       int

	vertexAdjacency bool
	neighborTable   [2][]Offset // indexed by parity of the shifted axis
}

// Polygon returns the grid's polygon kind.
func (g *PolygonGrid) Polygon() Polygon { return g.polygon }

// Orientation returns the grid's polygon orientation.
func (g *PolygonGrid) Orientation() Orientation { return g.orientation }

// Shift returns the grid's stagger mode.
func (g *PolygonGrid) Shift() ShiftMode { return g.shift }

// Circumradius returns the polygon's circumradius (center to vertex).
func (g *PolygonGrid) Circumradius() float64 { return g.circumradius }

// Width returns the number of columns.
func (g *PolygonGrid) Width() int { return g.width }

// Height returns the number of rows.
func (g *PolygonGrid) Height() int { return g.height }

// InBounds reports whether cell lies within the grid.
func (g *PolygonGrid) InBounds(cell Cell) bool {
	return cell.Col >= 0 && cell.Col < g.width && cell.Row >= 0 && cell.Row < g.height
}

// Connectivity returns the number of direct neighbors any interior
// cell has (4, 6, or 8 depending on configuration).
func (g *PolygonGrid) Connectivity() int {
	return len(g.neighborTable[0])
}
