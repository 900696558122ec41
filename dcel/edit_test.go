package dcel_test

import (
	"testing"

	"github.com/katalvlaran/geo2d/dcel"
	"github.com/katalvlaran/geo2d/geom2d"
	"github.com/stretchr/testify/require"
)

func TestAddEdge(t *testing.T) {
	s, err := dcel.NewFromLines([]geom2d.LineD{
		{Start: geom2d.PointD{X: 0, Y: 0}, End: geom2d.PointD{X: 4, Y: 0}},
		{Start: geom2d.PointD{X: 4, Y: 0}, End: geom2d.PointD{X: 4, Y: 4}},
		{Start: geom2d.PointD{X: 4, Y: 4}, End: geom2d.PointD{X: 0, Y: 4}},
		{Start: geom2d.PointD{X: 0, Y: 4}, End: geom2d.PointD{X: 0, Y: 0}},
	})
	require.NoError(t, err)

	before := s.Locate(geom2d.PointD{X: 2, Y: 2})
	require.Equal(t, dcel.LocateFace, before.Kind)
	require.Equal(t, dcel.FaceID(1), before.Face)

	_, err = s.AddEdge(geom2d.PointD{X: 0, Y: 0}, geom2d.PointD{X: 4, Y: 4})
	require.NoError(t, err)

	// The diagonal now splits the square into two triangular faces.
	var faceCount int
	for range s.Faces() {
		faceCount++
	}
	require.Equal(t, 3, faceCount)
}

func TestAddEdge_RejectsDegenerate(t *testing.T) {
	s, err := dcel.NewFromLines([]geom2d.LineD{
		{Start: geom2d.PointD{X: 0, Y: 0}, End: geom2d.PointD{X: 1, Y: 1}},
	})
	require.NoError(t, err)

	_, err = s.AddEdge(geom2d.PointD{X: 3, Y: 3}, geom2d.PointD{X: 3, Y: 3})
	require.ErrorIs(t, err, dcel.ErrDegenerateSegment)
}

func TestRemoveEdge(t *testing.T) {
	s, err := dcel.NewFromLines([]geom2d.LineD{
		{Start: geom2d.PointD{X: 0, Y: 0}, End: geom2d.PointD{X: 4, Y: 0}},
		{Start: geom2d.PointD{X: 4, Y: 0}, End: geom2d.PointD{X: 4, Y: 4}},
		{Start: geom2d.PointD{X: 4, Y: 4}, End: geom2d.PointD{X: 0, Y: 4}},
		{Start: geom2d.PointD{X: 0, Y: 4}, End: geom2d.PointD{X: 0, Y: 0}},
		{Start: geom2d.PointD{X: 0, Y: 0}, End: geom2d.PointD{X: 4, Y: 4}},
	})
	require.NoError(t, err)

	e, err := s.FindEdge(geom2d.PointD{X: 0, Y: 0}, geom2d.PointD{X: 4, Y: 4})
	require.NoError(t, err)

	require.NoError(t, s.RemoveEdge(e))

	loc := s.Locate(geom2d.PointD{X: 2, Y: 2})
	require.Equal(t, dcel.LocateFace, loc.Kind)
	require.NotEqual(t, dcel.UnboundedFace, loc.Face)

	var faceCount int
	for range s.Faces() {
		faceCount++
	}
	require.Equal(t, 2, faceCount)
}

func TestSplitEdge(t *testing.T) {
	s, err := dcel.NewFromLines([]geom2d.LineD{
		{Start: geom2d.PointD{X: 0, Y: 0}, End: geom2d.PointD{X: 10, Y: 0}},
	})
	require.NoError(t, err)

	e, err := s.FindEdge(geom2d.PointD{X: 0, Y: 0}, geom2d.PointD{X: 10, Y: 0})
	require.NoError(t, err)

	mid := geom2d.PointD{X: 5, Y: 0}
	v, err := s.SplitEdge(e, mid)
	require.NoError(t, err)

	got, ok := s.VertexAt(v)
	require.True(t, ok)
	require.True(t, got.Point.EqualEps(mid, s.Epsilon()))

	loc := s.Locate(mid)
	require.Equal(t, dcel.LocateVertex, loc.Kind)
}

func TestSplitEdge_RejectsOffLinePoint(t *testing.T) {
	s, err := dcel.NewFromLines([]geom2d.LineD{
		{Start: geom2d.PointD{X: 0, Y: 0}, End: geom2d.PointD{X: 10, Y: 0}},
	})
	require.NoError(t, err)

	e, err := s.FindEdge(geom2d.PointD{X: 0, Y: 0}, geom2d.PointD{X: 10, Y: 0})
	require.NoError(t, err)

	_, err = s.SplitEdge(e, geom2d.PointD{X: 5, Y: 5})
	require.ErrorIs(t, err, dcel.ErrPointNotOnLine)
}
