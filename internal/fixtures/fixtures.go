// Package fixtures generates deterministic, seeded random geometry
// (points, segments, convex polygons) for property-style tests across
// geom2d, dcel, voronoi, and grid, adapted from the teacher's builder
// package's WithSeed/rng determinism contract.
package fixtures

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/geo2d/geom2d"
)

// Option customizes a generator via functional options, mirroring
// builder.BuilderOption's mutate-a-config shape.
type Option func(*config)

type config struct {
	rng    *rand.Rand
	bounds geom2d.RectD
}

func newConfig(opts ...Option) *config {
	cfg := &config{
		rng:    rand.New(rand.NewSource(1)),
		bounds: geom2d.NewRectD(0, 0, 100, 100),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithSeed seeds the generator's RNG for reproducible output, mirroring
// builder.WithSeed.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithBounds constrains generated coordinates to rect (default a
// 100x100 square anchored at the origin).
func WithBounds(rect geom2d.RectD) Option {
	return func(c *config) { c.bounds = rect }
}

// Points returns n points drawn uniformly from the configured bounds.
func Points(n int, opts ...Option) []geom2d.PointD {
	cfg := newConfig(opts...)
	out := make([]geom2d.PointD, n)
	for i := range out {
		out[i] = randomPoint(cfg)
	}
	return out
}

// DistinctPoints returns n points drawn uniformly from the configured
// bounds, guaranteed pairwise distinct by at least eps, by resampling
// any draw that collides.
func DistinctPoints(n int, eps float64, opts ...Option) []geom2d.PointD {
	cfg := newConfig(opts...)
	out := make([]geom2d.PointD, 0, n)
	for len(out) < n {
		p := randomPoint(cfg)
		collision := false
		for _, q := range out {
			if p.DistanceSq(q) <= eps*eps {
				collision = true
				break
			}
		}
		if !collision {
			out = append(out, p)
		}
	}
	return out
}

// Segments returns n directed segments with both endpoints drawn from
// the configured bounds, each guaranteed non-degenerate (endpoints at
// least eps apart).
func Segments(n int, eps float64, opts ...Option) []geom2d.LineD {
	cfg := newConfig(opts...)
	out := make([]geom2d.LineD, n)
	for i := range out {
		a := randomPoint(cfg)
		var b geom2d.PointD
		for {
			b = randomPoint(cfg)
			if a.DistanceSq(b) > eps*eps {
				break
			}
		}
		out[i] = geom2d.LineD{Start: a, End: b}
	}
	return out
}

// ConvexPolygon returns a simple convex polygon with n vertices (n >=
// 3), generated by placing vertices at random angles on a circle of
// random radius around the configured bounds' center and sorting them
// by angle.
func ConvexPolygon(n int, opts ...Option) []geom2d.PointD {
	cfg := newConfig(opts...)
	if n < 3 {
		n = 3
	}
	center := cfg.bounds.Center()
	maxRadius := math.Min(cfg.bounds.Width, cfg.bounds.Height) / 2

	angles := make([]float64, n)
	for i := range angles {
		angles[i] = cfg.rng.Float64() * 2 * math.Pi
	}
	// Simple insertion sort: n is always small in test fixtures.
	for i := 1; i < len(angles); i++ {
		for j := i; j > 0 && angles[j-1] > angles[j]; j-- {
			angles[j-1], angles[j] = angles[j], angles[j-1]
		}
	}

	points := make([]geom2d.PointD, n)
	r := maxRadius * (0.5 + 0.5*cfg.rng.Float64())
	for i, theta := range angles {
		points[i] = geom2d.PointD{
			X: center.X + r*math.Cos(theta),
			Y: center.Y + r*math.Sin(theta),
		}
	}
	return points
}

func randomPoint(cfg *config) geom2d.PointD {
	return geom2d.PointD{
		X: cfg.bounds.Left() + cfg.rng.Float64()*cfg.bounds.Width,
		Y: cfg.bounds.Bottom() + cfg.rng.Float64()*cfg.bounds.Height,
	}
}
