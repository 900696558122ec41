package geom2d

import "math"

// minEpsilon is the hard floor applied to any caller-supplied epsilon
// before it is used inside the intersection kernel, independent of the
// caller's own tolerance.
const minEpsilon = 1e-10

// IntersectionKind classifies how two directed segments relate.
type IntersectionKind int

const (
	// Parallel means the segments' supporting lines never meet.
	Parallel IntersectionKind = iota
	// Collinear means the segments lie on the same line (and may overlap).
	Collinear
	// Divergent means the segments' supporting lines cross at one point.
	Divergent
)

// String returns a human-readable name for k.
func (k IntersectionKind) String() string {
	switch k {
	case Parallel:
		return "Parallel"
	case Collinear:
		return "Collinear"
	case Divergent:
		return "Divergent"
	default:
		return "IntersectionKind(?)"
	}
}

// Intersection is the result of classifying two directed segments
// (a0,a1) and (b0,b1).
type Intersection struct {
	Kind IntersectionKind

	// Point is the single intersection point, valid when Kind == Divergent.
	Point PointD
	// ALocation is Point's position along segment a0->a1, valid when
	// Kind == Divergent.
	ALocation Location
	// BLocation is Point's position along segment b0->b1, valid when
	// Kind == Divergent.
	BLocation Location

	// B0OnA and B1OnA report b0 and b1's positions along a0->a1, valid
	// when Kind == Collinear.
	B0OnA, B1OnA Location
	// A0OnB and A1OnB report a0 and a1's positions along b0->b1, valid
	// when Kind == Collinear.
	A0OnB, A1OnB Location
}

// Intersect classifies the two directed segments a0->a1 and b0->b1,
// using eps (raised internally to at least 1e-10) as the tolerance for
// the cross-product and parameter comparisons that decide the
// classification.
func Intersect(a0, a1, b0, b1 PointD, eps float64) Intersection {
	if eps < minEpsilon {
		eps = minEpsilon
	}

	d1 := a1.Sub(a0)
	d2 := b1.Sub(b0)
	denom := d1.Cross(d2)

	// Scale the determinant tolerance by the segments' lengths so eps
	// stays a distance-like tolerance regardless of segment scale.
	scale := d1.Length() * d2.Length()
	denomEps := eps * math.Max(scale, 1)

	if math.Abs(denom) <= denomEps {
		// Determinant too close to zero to divide safely: degrade to a
		// collinearity test rather than risk a wild intersection point.
		cross := d1.Cross(b0.Sub(a0))
		if math.Abs(cross) > eps*math.Max(d1.Length(), 1) {
			return Intersection{Kind: Parallel}
		}
		return Intersection{
			Kind:  Collinear,
			B0OnA: Classify(b0, a0, a1, eps).Along,
			B1OnA: Classify(b1, a0, a1, eps).Along,
			A0OnB: Classify(a0, b0, b1, eps).Along,
			A1OnB: Classify(a1, b0, b1, eps).Along,
		}
	}

	diff := b0.Sub(a0)
	t := diff.Cross(d2) / denom
	point := a0.Add(d1.Scale(t))

	return Intersection{
		Kind:      Divergent,
		Point:     point,
		ALocation: Classify(point, a0, a1, eps).Along,
		BLocation: Classify(point, b0, b1, eps).Along,
	}
}
