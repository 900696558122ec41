package dcel_test

import (
	"testing"

	"github.com/katalvlaran/geo2d/dcel"
	"github.com/katalvlaran/geo2d/geom2d"
	"github.com/stretchr/testify/require"
)

// crossSegments builds the four-segment cross from S1: a horizontal and
// a vertical bisector, a top rail, and a diagonal, with ε = 0.
func crossSegments() []geom2d.LineD {
	return []geom2d.LineD{
		{Start: geom2d.PointD{X: 0, Y: 0}, End: geom2d.PointD{X: 10, Y: 0}},
		{Start: geom2d.PointD{X: 5, Y: -5}, End: geom2d.PointD{X: 5, Y: 5}},
		{Start: geom2d.PointD{X: 0, Y: 10}, End: geom2d.PointD{X: 10, Y: 10}},
		{Start: geom2d.PointD{X: 0, Y: 0}, End: geom2d.PointD{X: 10, Y: 10}},
	}
}

func TestNewFromLines_CrossCounts(t *testing.T) {
	s, err := dcel.NewFromLines(crossSegments())
	require.NoError(t, err)

	var vertCount, edgeCount, faceCount int
	for range s.Vertices() {
		vertCount++
	}
	for range s.Edges() {
		edgeCount++
	}
	for range s.Faces() {
		faceCount++
	}

	// 6 distinct segment endpoints ((0,0), (10,0), (5,-5), (5,5), (0,10),
	// (10,10)) plus the one crossing at (5,0) interior to both the
	// horizontal and the vertical bisector. The vertical bisector ends at
	// (5,5) on the diagonal's interior, which splits the diagonal there
	// without a new vertex; it stops at y=5 and never reaches the top rail.
	require.Equal(t, 7, vertCount, "6 endpoints + 1 interior crossing")
	require.Equal(t, 14, edgeCount, "7 final pieces, 2 half-edges each")
	// Only the left triangle (0,0)-(5,0)-(5,5) closes into a bounded region;
	// nothing in this segment set closes a second one on the right of the
	// vertical bisector, since no edge joins (10,0) to (10,10).
	require.Equal(t, 2, faceCount, "unbounded + the one triangle left of the vertical bisector")
}

// TestNewFromLines_NoSpuriousCrossing checks the asymmetric case from S1:
// the vertical bisector and the top rail's infinite lines cross at
// (5,10), which is Between for the top rail (t=0.5) but After the
// vertical segment's own span (t=1.5, it stops at y=5). The segments
// never actually touch, so splitSegments must not invent a vertex there.
func TestNewFromLines_NoSpuriousCrossing(t *testing.T) {
	segments := []geom2d.LineD{
		{Start: geom2d.PointD{X: 5, Y: -5}, End: geom2d.PointD{X: 5, Y: 5}},
		{Start: geom2d.PointD{X: 0, Y: 10}, End: geom2d.PointD{X: 10, Y: 10}},
	}
	s, err := dcel.NewFromLines(segments)
	require.NoError(t, err)

	var vertCount, edgeCount int
	for range s.Vertices() {
		vertCount++
	}
	for range s.Edges() {
		edgeCount++
	}

	require.Equal(t, 4, vertCount, "4 segment endpoints, no spurious crossing vertex")
	require.Equal(t, 4, edgeCount, "2 pieces, 2 half-edges each, no split")
}

func TestNewFromLines_RejectsDegenerateSegment(t *testing.T) {
	_, err := dcel.NewFromLines([]geom2d.LineD{
		{Start: geom2d.PointD{X: 1, Y: 1}, End: geom2d.PointD{X: 1, Y: 1}},
	})
	require.ErrorIs(t, err, dcel.ErrDegenerateSegment)
}

func TestNewFromLines_RejectsNegativeEpsilon(t *testing.T) {
	_, err := dcel.NewFromLines(crossSegments(), dcel.WithEpsilon(-1))
	require.ErrorIs(t, err, dcel.ErrNegativeEpsilon)
}

func TestNewFromPolygons_FaceCorrespondence(t *testing.T) {
	square := []geom2d.PointD{
		{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4},
	}
	triangle := []geom2d.PointD{
		{X: 4, Y: 0}, {X: 8, Y: 0}, {X: 4, Y: 4},
	}
	s, err := dcel.NewFromPolygons([][]geom2d.PointD{square, triangle})
	require.NoError(t, err)

	squareFace, err := s.FindFace(square)
	require.NoError(t, err)
	require.Equal(t, dcel.FaceID(1), squareFace)

	triangleFace, err := s.FindFace(triangle)
	require.NoError(t, err)
	require.Equal(t, dcel.FaceID(2), triangleFace)
}

func TestNewFromPolygons_RejectsShortPolygon(t *testing.T) {
	_, err := dcel.NewFromPolygons([][]geom2d.PointD{
		{{X: 0, Y: 0}, {X: 1, Y: 1}},
	})
	require.ErrorIs(t, err, dcel.ErrEmptyPolygon)
}
