package dcel

import (
	"fmt"

	"github.com/katalvlaran/geo2d/geom2d"
)

// AddEdge inserts a new directed segment from a to b, re-running the
// whole construction pipeline on the updated segment set; see
// DESIGN.md's "Edit-operation ID stability" decision. When a->b crosses
// existing edges, no single half-edge joins a to b after the rebuild;
// the call then fails with ErrInvariantViolation and the subdivision is
// restored to its prior segment set.
func (s *Subdivision) AddEdge(a, b geom2d.PointD) (EdgeID, error) {
	if a.EqualEps(b, s.eps) {
		return NoEdge, ErrDegenerateSegment
	}
	snapshot := s.snapshotSegments()
	s.segments = append(s.segments, geom2d.LineD{Start: a, End: b})
	if err := s.rebuild(); err != nil {
		s.restoreSegments(snapshot)
		return NoEdge, err
	}
	id, err := s.FindEdge(a, b)
	if err != nil {
		s.restoreSegments(snapshot)
		return NoEdge, fmt.Errorf("dcel: AddEdge: %w", ErrInvariantViolation)
	}
	return id, nil
}

// RemoveEdge deletes the geometry spanned by half-edge e from the
// subdivision, then rebuilds. Any original input segment overlapping e's
// span is clipped or removed accordingly; a segment only partially
// covering e's span keeps its non-overlapping remainder.
func (s *Subdivision) RemoveEdge(e EdgeID) error {
	he, ok := s.EdgeAt(e)
	if !ok {
		return ErrInvalidEdge
	}
	p0 := s.vertices[he.Origin].point
	p1 := s.destinationPoint(e)

	snapshot := s.snapshotSegments()
	s.segments = removeInterval(s.segments, p0, p1, s.eps)
	if err := s.rebuild(); err != nil {
		s.restoreSegments(snapshot)
		return err
	}
	return nil
}

// SplitEdge inserts point as a new vertex strictly between half-edge e's
// endpoints, splitting e (and, transitively, whichever original input
// segment currently covers it) into two, then rebuilds. Returns
// ErrPointNotOnLine if point does not lie strictly between e's
// endpoints within epsilon.
func (s *Subdivision) SplitEdge(e EdgeID, point geom2d.PointD) (VertexID, error) {
	he, ok := s.EdgeAt(e)
	if !ok {
		return NoVertex, ErrInvalidEdge
	}
	p0 := s.vertices[he.Origin].point
	p1 := s.destinationPoint(e)

	cls := geom2d.Classify(point, p0, p1, s.eps)
	if cls.Side != geom2d.Collinear || cls.Along != geom2d.Between {
		return NoVertex, ErrPointNotOnLine
	}

	snapshot := s.snapshotSegments()
	s.segments = spliceAt(s.segments, p0, p1, point, s.eps)
	if err := s.rebuild(); err != nil {
		s.restoreSegments(snapshot)
		return NoVertex, err
	}
	v, ok := s.findExistingVertex(point)
	if !ok {
		s.restoreSegments(snapshot)
		return NoVertex, fmt.Errorf("dcel: SplitEdge: %w", ErrInvariantViolation)
	}
	return v, nil
}

func (s *Subdivision) snapshotSegments() []geom2d.LineD {
	return append([]geom2d.LineD(nil), s.segments...)
}

// restoreSegments puts back a prior segment set and rebuilds from it.
// The prior set was valid before the failed edit, so its rebuild cannot
// fail; any error here indicates a bug in rebuild itself rather than in
// caller input, and is deliberately swallowed to keep the edit methods'
// own error the one the caller sees.
func (s *Subdivision) restoreSegments(segments []geom2d.LineD) {
	s.segments = segments
	_ = s.rebuild()
}

func pointAt(p0, unit geom2d.PointD, t float64) geom2d.PointD {
	return p0.Add(unit.Scale(t))
}

// overlapOnLine reports whether seg lies on the infinite line through p0
// in direction unit (length 1), returning its endpoints' signed
// positions along that line if so.
func overlapOnLine(seg geom2d.LineD, p0, unit geom2d.PointD, eps float64) (ok bool, ta, tb float64) {
	dirLen := seg.End.Sub(seg.Start).Length()
	if dirLen == 0 {
		return false, 0, 0
	}
	toStart := seg.Start.Sub(p0)
	if absF(unit.Cross(seg.End.Sub(seg.Start))/dirLen) > eps {
		return false, 0, 0
	}
	if absF(unit.Cross(toStart)) > eps {
		return false, 0, 0
	}
	ta = toStart.Dot(unit)
	tb = seg.End.Sub(p0).Dot(unit)
	return true, ta, tb
}

func absF(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// removeInterval returns segs with the span [p0, p1] removed from every
// segment collinear with and overlapping it, splitting a segment that
// only partially overlaps into its remaining piece(s).
func removeInterval(segs []geom2d.LineD, p0, p1 geom2d.PointD, eps float64) []geom2d.LineD {
	dir := p1.Sub(p0)
	length := dir.Length()
	if length == 0 {
		return segs
	}
	unit := dir.Scale(1 / length)

	out := make([]geom2d.LineD, 0, len(segs))
	for _, seg := range segs {
		ok, ta, tb := overlapOnLine(seg, p0, unit, eps)
		if !ok {
			out = append(out, seg)
			continue
		}
		lo, hi := ta, tb
		if lo > hi {
			lo, hi = hi, lo
		}
		rlo, rhi := maxF(lo, 0), minF(hi, length)
		if rhi <= rlo+eps {
			out = append(out, seg)
			continue
		}
		if rlo-lo > eps {
			out = append(out, geom2d.LineD{Start: pointAt(p0, unit, lo), End: pointAt(p0, unit, rlo)})
		}
		if hi-rhi > eps {
			out = append(out, geom2d.LineD{Start: pointAt(p0, unit, rhi), End: pointAt(p0, unit, hi)})
		}
	}
	return out
}

// spliceAt returns segs with every segment collinear with and strictly
// covering cut (relative to the [p0, p1] span) split into two segments
// meeting at cut, preserving each segment's own full extent.
func spliceAt(segs []geom2d.LineD, p0, p1, cut geom2d.PointD, eps float64) []geom2d.LineD {
	dir := p1.Sub(p0)
	length := dir.Length()
	if length == 0 {
		return segs
	}
	unit := dir.Scale(1 / length)
	tc := cut.Sub(p0).Dot(unit)

	out := make([]geom2d.LineD, 0, len(segs))
	for _, seg := range segs {
		ok, ta, tb := overlapOnLine(seg, p0, unit, eps)
		if !ok {
			out = append(out, seg)
			continue
		}
		lo, hi := ta, tb
		reversed := lo > hi
		if reversed {
			lo, hi = hi, lo
		}
		rlo, rhi := maxF(lo, 0), minF(hi, length)
		if rhi <= rlo+eps || tc <= rlo+eps || tc >= rhi-eps {
			out = append(out, seg)
			continue
		}
		mid := pointAt(p0, unit, tc)
		a := pointAt(p0, unit, lo)
		b := pointAt(p0, unit, hi)
		if reversed {
			out = append(out, geom2d.LineD{Start: b, End: mid}, geom2d.LineD{Start: mid, End: a})
		} else {
			out = append(out, geom2d.LineD{Start: a, End: mid}, geom2d.LineD{Start: mid, End: b})
		}
	}
	return out
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
