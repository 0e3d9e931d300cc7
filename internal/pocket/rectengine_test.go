package pocket

import (
	"math"

	"github.com/piwi3910/areapocket/internal/geom"
)

// rectEngine is a deterministic, axis-aligned-rectangle-only stand-in for
// boolean.Engine, used so pocket's tests exercise the pocketing
// algorithms against known, hand-checkable geometry instead of the
// scraped external Clipper2 port's unverified output. Every curve this
// test package hands it is a plain axis-aligned rectangle, so treating a
// curve as synonymous with its bounding box is exact, not approximate.
type rectEngine struct{}

func rect(x0, y0, x1, y1 float64) geom.Curve {
	c := geom.NewCurve(geom.Point{X: x0, Y: y0})
	c.LineTo(geom.Point{X: x1, Y: y0})
	c.LineTo(geom.Point{X: x1, Y: y1})
	c.LineTo(geom.Point{X: x0, Y: y1})
	c.LineTo(geom.Point{X: x0, Y: y0})
	return c
}

func (rectEngine) Offset(curves []geom.Curve, delta, units, accuracy float64) []geom.Curve {
	var out []geom.Curve
	for _, c := range curves {
		b := c.Box()
		minX, minY := b.Min.X-delta, b.Min.Y-delta
		maxX, maxY := b.Max.X+delta, b.Max.Y+delta
		if maxX <= minX || maxY <= minY {
			continue
		}
		out = append(out, rect(minX, minY, maxX, maxY))
	}
	return out
}

func (rectEngine) Intersect(a, b []geom.Curve, units, accuracy float64) []geom.Curve {
	var out []geom.Curve
	for _, ca := range a {
		ba := ca.Box()
		for _, cb := range b {
			bb := cb.Box()
			minX, minY := math.Max(ba.Min.X, bb.Min.X), math.Max(ba.Min.Y, bb.Min.Y)
			maxX, maxY := math.Min(ba.Max.X, bb.Max.X), math.Min(ba.Max.Y, bb.Max.Y)
			if maxX > minX && maxY > minY {
				out = append(out, rect(minX, minY, maxX, maxY))
			}
		}
	}
	return out
}

func (rectEngine) Subtract(a, b []geom.Curve, units, accuracy float64) []geom.Curve {
	return a
}

func (rectEngine) HolesLinked(curves []geom.Curve, units float64) bool {
	return false
}
