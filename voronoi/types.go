package voronoi

import "github.com/katalvlaran/geo2d/geom2d"

// Edge is a Voronoi edge between two generator sites' cells, referencing
// both sites by index into the input slice and both endpoints by index
// into Diagram.Vertices.
type Edge struct {
	SiteA, SiteB     int
	VertexA, VertexB int
}

// DelaunayEdge connects two sites (by index into the input slice) whose
// Voronoi cells share an edge.
type DelaunayEdge struct {
	SiteA, SiteB int
}

// Diagram is the clipped Voronoi diagram of a site set: every vertex
// (true circumcenters and clip-rectangle pseudo-vertices alike), every
// edge, and the dual Delaunay edge set.
type Diagram struct {
	Vertices []geom2d.PointD
	Edges    []Edge
	Delaunay []DelaunayEdge
}

// DiagramOption configures FindAll.
type DiagramOption func(*diagramConfig)

type diagramConfig struct {
	clip    geom2d.RectD
	hasClip bool
}

// WithClip requests a minimum clipping rectangle. The engine always
// unions this with its own 10%-padded bounding box of the sites rather
// than ever shrinking to it, so edges are never clipped tighter than
// the default.
func WithClip(rect geom2d.RectD) DiagramOption {
	return func(c *diagramConfig) { c.clip = rect; c.hasClip = true }
}

func resolveDiagramConfig(opts []DiagramOption) diagramConfig {
	var cfg diagramConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
