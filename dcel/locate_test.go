package dcel_test

import (
	"testing"

	"github.com/katalvlaran/geo2d/dcel"
	"github.com/katalvlaran/geo2d/geom2d"
	"github.com/stretchr/testify/require"
)

func TestLocate_Vertex(t *testing.T) {
	s, err := dcel.NewFromLines(crossSegments())
	require.NoError(t, err)

	loc := s.Locate(geom2d.PointD{X: 5, Y: 0})
	require.Equal(t, dcel.LocateVertex, loc.Kind)
	v, ok := s.VertexAt(loc.Vertex)
	require.True(t, ok)
	require.True(t, v.Point.EqualEps(geom2d.PointD{X: 5, Y: 0}, s.Epsilon()))
}

func TestLocate_Edge(t *testing.T) {
	s, err := dcel.NewFromLines(crossSegments())
	require.NoError(t, err)

	loc := s.Locate(geom2d.PointD{X: 2, Y: 0})
	require.Equal(t, dcel.LocateEdge, loc.Kind)
}

func TestLocate_Face(t *testing.T) {
	square := [][]geom2d.PointD{{
		{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4},
	}}
	s, err := dcel.NewFromPolygons(square)
	require.NoError(t, err)

	loc := s.Locate(geom2d.PointD{X: 2, Y: 2})
	require.Equal(t, dcel.LocateFace, loc.Kind)
	require.Equal(t, dcel.FaceID(1), loc.Face)

	outside := s.Locate(geom2d.PointD{X: 100, Y: 100})
	require.Equal(t, dcel.LocateFace, outside.Kind)
	require.Equal(t, dcel.UnboundedFace, outside.Face)
}

func TestFindEdge(t *testing.T) {
	s, err := dcel.NewFromLines(crossSegments())
	require.NoError(t, err)

	_, err = s.FindEdge(geom2d.PointD{X: 0, Y: 0}, geom2d.PointD{X: 5, Y: 0})
	require.NoError(t, err)

	_, err = s.FindEdge(geom2d.PointD{X: 100, Y: 100}, geom2d.PointD{X: 200, Y: 200})
	require.ErrorIs(t, err, dcel.ErrInvalidEdge)
}
