package geom2d

// Intersect returns the intersection of r and other as a rectangle, and
// whether the two rectangles overlap at all (touching at a single point
// or edge counts as overlapping).
func (r RectD) Intersect(other RectD) (RectD, bool) {
	left := max(r.Left(), other.Left())
	right := min(r.Right(), other.Right())
	bottom := max(r.Bottom(), other.Bottom())
	top := min(r.Top(), other.Top())
	if left > right || bottom > top {
		return RectD{}, false
	}
	return RectD{X: left, Y: bottom, Width: right - left, Height: top - bottom}, true
}

// ClipSegment clips the segment a->b against r using the Liang-Barsky
// algorithm, returning the clipped endpoints and whether any part of the
// segment survives within r.
func (r RectD) ClipSegment(a, b PointD) (PointD, PointD, bool) {
	dx, dy := b.X-a.X, b.Y-a.Y

	tMin, tMax := 0.0, 1.0
	p := [4]float64{-dx, dx, -dy, dy}
	q := [4]float64{a.X - r.Left(), r.Right() - a.X, a.Y - r.Bottom(), r.Top() - a.Y}

	for i := 0; i < 4; i++ {
		if p[i] == 0 {
			if q[i] < 0 {
				return PointD{}, PointD{}, false
			}
			continue
		}
		t := q[i] / p[i]
		if p[i] < 0 {
			if t > tMax {
				return PointD{}, PointD{}, false
			}
			if t > tMin {
				tMin = t
			}
		} else {
			if t < tMin {
				return PointD{}, PointD{}, false
			}
			if t < tMax {
				tMax = t
			}
		}
	}
	if tMin > tMax {
		return PointD{}, PointD{}, false
	}
	clippedA := PointD{X: a.X + tMin*dx, Y: a.Y + tMin*dy}
	clippedB := PointD{X: a.X + tMax*dx, Y: a.Y + tMax*dy}
	return clippedA, clippedB, true
}

// ClipPolygon clips the (implicitly closed) polygon described by points
// against r using Sutherland-Hodgman, with r acting as the convex
// clipper. Each vertex created on a clip edge takes that edge's own
// coordinate (X for a vertical edge, Y for a horizontal one) verbatim
// from r rather than from intersection arithmetic, so that subsequent
// exact comparisons against r's borders succeed; the other coordinate is
// interpolated. Returns nil if the polygon is entirely clipped away.
func (r RectD) ClipPolygon(points []PointD) []PointD {
	if len(points) == 0 {
		return nil
	}
	edges := []struct {
		inside func(PointD) bool
		clip   func(a, b PointD) PointD
	}{
		{func(p PointD) bool { return p.X >= r.Left() }, func(a, b PointD) PointD {
			return clipVertical(a, b, r.Left())
		}},
		{func(p PointD) bool { return p.X <= r.Right() }, func(a, b PointD) PointD {
			return clipVertical(a, b, r.Right())
		}},
		{func(p PointD) bool { return p.Y >= r.Bottom() }, func(a, b PointD) PointD {
			return clipHorizontal(a, b, r.Bottom())
		}},
		{func(p PointD) bool { return p.Y <= r.Top() }, func(a, b PointD) PointD {
			return clipHorizontal(a, b, r.Top())
		}},
	}

	output := points
	for _, edge := range edges {
		if len(output) == 0 {
			return nil
		}
		input := output
		output = nil
		prev := input[len(input)-1]
		prevIn := edge.inside(prev)
		for _, curr := range input {
			currIn := edge.inside(curr)
			switch {
			case currIn && prevIn:
				output = append(output, curr)
			case currIn && !prevIn:
				output = append(output, edge.clip(prev, curr), curr)
			case !currIn && prevIn:
				output = append(output, edge.clip(prev, curr))
			}
			prev, prevIn = curr, currIn
		}
	}
	return output
}

// clipVertical intersects segment a->b with the vertical line x=x0,
// snapping the output's X coordinate to the exact boundary value x0 so
// it compares equal to the clip rectangle's own corners.
func clipVertical(a, b PointD, x0 float64) PointD {
	t := (x0 - a.X) / (b.X - a.X)
	return PointD{X: x0, Y: a.Y + t*(b.Y-a.Y)}
}

// clipHorizontal intersects segment a->b with the horizontal line y=y0,
// snapping the output's Y coordinate to the exact boundary value y0.
func clipHorizontal(a, b PointD, y0 float64) PointD {
	t := (y0 - a.Y) / (b.Y - a.Y)
	return PointD{X: a.X + t*(b.X-a.X), Y: y0}
}

func min(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func max(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
