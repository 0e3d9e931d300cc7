package area

import (
	"math"

	"github.com/piwi3910/areapocket/internal/boolean"
	"github.com/piwi3910/areapocket/internal/geom"
)

// OverlapType is the relationship between two areas.
type OverlapType int

const (
	Inside OverlapType = iota
	Outside
	Siblings
	Crossing
)

func (t OverlapType) String() string {
	switch t {
	case Inside:
		return "Inside"
	case Outside:
		return "Outside"
	case Siblings:
		return "Siblings"
	default:
		return "Crossing"
	}
}

// insideProbeHalf is half the side length of the 0.02x0.02 square
// IsInside probes with.
const insideProbeHalf = 0.01

// insideProbeAreaTol is the area the probe square's intersection with an
// area must exceed. It equals the probe's full area (0.02x0.02), so only a
// probe lying wholly within the area can exceed it; a probe straddling
// the boundary never does.
const insideProbeAreaTol = 4e-4

// Overlap classifies the relationship between a1 and a2. Checks are
// short-circuited in order, so Inside wins over Outside for identical
// areas: a1 entirely inside a2 (Inside), a2 entirely inside a1
// (Outside), no shared area at all (Siblings), or a partial overlap
// (Crossing).
func Overlap(a1, a2 *Area, units, accuracy float64) OverlapType {
	d1 := a1.Clone()
	d1.Subtract(a2, units, accuracy)
	if len(d1.Curves) == 0 {
		return Inside
	}

	d2 := a2.Clone()
	d2.Subtract(a1, units, accuracy)
	if len(d2.Curves) == 0 {
		return Outside
	}

	x := a1.Clone()
	x.Intersect(a2, units, accuracy)
	if len(x.Curves) == 0 {
		return Siblings
	}

	return Crossing
}

// OverlapCurves is the single-curve convenience overload: each curve is
// wrapped in a throwaway one-curve Area before classifying.
func OverlapCurves(engine boolean.Engine, c1, c2 geom.Curve, units, accuracy float64) OverlapType {
	a1 := &Area{Engine: engine, Curves: []geom.Curve{c1}}
	a2 := &Area{Engine: engine, Curves: []geom.Curve{c2}}
	return Overlap(a1, a2, units, accuracy)
}

// IsInside reports whether p lies inside a, by intersecting a small
// square probe centered on p with a and checking whether the resulting
// area clears the probe-area tolerance.
func IsInside(p geom.Point, a *Area, units, accuracy float64) bool {
	probe := geom.NewCurve(geom.Point{X: p.X - insideProbeHalf, Y: p.Y - insideProbeHalf})
	probe.LineTo(geom.Point{X: p.X + insideProbeHalf, Y: p.Y - insideProbeHalf})
	probe.LineTo(geom.Point{X: p.X + insideProbeHalf, Y: p.Y + insideProbeHalf})
	probe.LineTo(geom.Point{X: p.X - insideProbeHalf, Y: p.Y + insideProbeHalf})
	probe.LineTo(geom.Point{X: p.X - insideProbeHalf, Y: p.Y - insideProbeHalf})

	probeArea := &Area{Engine: a.Engine, Curves: []geom.Curve{probe}}
	probeArea.Intersect(a, units, accuracy)
	return math.Abs(probeArea.GetArea(false)) > insideProbeAreaTol
}

// IsInsideCurve is the single-curve convenience overload.
func IsInsideCurve(engine boolean.Engine, p geom.Point, c geom.Curve, units, accuracy float64) bool {
	return IsInside(p, &Area{Engine: engine, Curves: []geom.Curve{c}}, units, accuracy)
}
