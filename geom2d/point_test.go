package geom2d

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPointD_Arithmetic(t *testing.T) {
	p := PointD{X: 1, Y: 2}
	q := PointD{X: 3, Y: -1}

	require.Equal(t, PointD{X: 4, Y: 1}, p.Add(q))
	require.Equal(t, PointD{X: -2, Y: 3}, p.Sub(q))
	require.Equal(t, PointD{X: 2, Y: 4}, p.Scale(2))
	require.InDelta(t, 1*3+2*-1, p.Dot(q), 1e-12)
	require.InDelta(t, 1*-1-2*3, p.Cross(q), 1e-12)
}

func TestPointD_Distance(t *testing.T) {
	p := PointD{X: 0, Y: 0}
	q := PointD{X: 3, Y: 4}
	require.InDelta(t, 25, p.DistanceSq(q), 1e-12)
	require.InDelta(t, 5, p.Distance(q), 1e-12)
}

func TestPolarD_RoundTrip(t *testing.T) {
	cases := []struct {
		angle, radius float64
	}{
		{0, 1}, {math.Pi / 2, 2}, {math.Pi, 3}, {-math.Pi / 4, 5},
	}
	for _, tc := range cases {
		p := PolarD(tc.angle, tc.radius)
		require.InDelta(t, tc.radius, p.Length(), 1e-9)
		require.InDelta(t, tc.angle, p.Angle(), 1e-9)
	}
}

func TestPointD_EqualEps(t *testing.T) {
	a := PointD{X: 1, Y: 1}
	b := PointD{X: 1.0001, Y: 1}

	require.False(t, a.EqualEps(b, 0))
	require.False(t, a.EqualEps(b, 1e-6))
	require.True(t, a.EqualEps(b, 1e-3))
}

func TestPointD_Less(t *testing.T) {
	require.True(t, (PointD{X: 0, Y: 0}).Less(PointD{X: 0, Y: 1}))
	require.True(t, (PointD{X: 0, Y: 1}).Less(PointD{X: 1, Y: 1}))
	require.False(t, (PointD{X: 1, Y: 1}).Less(PointD{X: 0, Y: 1}))
}
