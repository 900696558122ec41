package geom2d

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRectD_Intersect(t *testing.T) {
	r1 := NewRectD(0, 0, 10, 10)
	r2 := NewRectD(5, 5, 10, 10)

	got, ok := r1.Intersect(r2)
	require.True(t, ok)
	require.Equal(t, NewRectD(5, 5, 5, 5), got)

	_, ok = r1.Intersect(NewRectD(20, 20, 5, 5))
	require.False(t, ok)
}

// TestRectD_ClipSegment exercises spec scenario S6.
func TestRectD_ClipSegment(t *testing.T) {
	r := NewRectD(0, 0, 10, 10)

	a, b, ok := r.ClipSegment(PointD{X: -1, Y: 5}, PointD{X: 11, Y: 5})
	require.True(t, ok)
	require.InDelta(t, 0, a.X, 1e-9)
	require.InDelta(t, 5, a.Y, 1e-9)
	require.InDelta(t, 10, b.X, 1e-9)
	require.InDelta(t, 5, b.Y, 1e-9)

	a, b, ok = r.ClipSegment(PointD{X: 5, Y: -1}, PointD{X: 5, Y: 11})
	require.True(t, ok)
	require.InDelta(t, 5, a.X, 1e-9)
	require.InDelta(t, 0, a.Y, 1e-9)
	require.InDelta(t, 5, b.X, 1e-9)
	require.InDelta(t, 10, b.Y, 1e-9)

	_, _, ok = r.ClipSegment(PointD{X: -1, Y: -1}, PointD{X: -0.5, Y: -0.5})
	require.False(t, ok)
}

func TestRectD_ClipPolygon(t *testing.T) {
	r := NewRectD(0, 0, 10, 10)
	triangle := []PointD{
		{X: -5, Y: 5},
		{X: 5, Y: 20},
		{X: 15, Y: 5},
	}
	out := r.ClipPolygon(triangle)
	require.NotEmpty(t, out)
	for _, p := range out {
		require.True(t, r.Inflate(1e-9, 1e-9).Contains(p))
	}

	outside := []PointD{{X: 20, Y: 20}, {X: 30, Y: 20}, {X: 25, Y: 30}}
	require.Empty(t, r.ClipPolygon(outside))
}
