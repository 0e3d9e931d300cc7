// Package area implements Area, the Orderer, the Splitter and the
// overlap classifier: an Area is an unordered set of Curves treated as
// one even-odd-filled planar region, with boolean operations delegated
// to an external engine.
package area

import (
	"math"

	"github.com/piwi3910/areapocket/internal/boolean"
	"github.com/piwi3910/areapocket/internal/geom"
)

// Area holds a list of curves and delegates boolean operations to an
// external engine.
type Area struct {
	Curves []geom.Curve
	Engine boolean.Engine
}

// New returns an empty area bound to engine.
func New(engine boolean.Engine) *Area {
	return &Area{Engine: engine}
}

// Append adds curve to the area.
func (a *Area) Append(c geom.Curve) {
	a.Curves = append(a.Curves, c)
}

// Clone returns an independent copy of the area sharing the same engine.
func (a *Area) Clone() *Area {
	out := &Area{Engine: a.Engine, Curves: make([]geom.Curve, len(a.Curves))}
	for i, c := range a.Curves {
		out.Curves[i] = c.Clone()
	}
	return out
}

// GetBox returns the union bounding box of every curve in the area.
func (a *Area) GetBox() geom.Box {
	b := geom.NewBox()
	for _, c := range a.Curves {
		c.GetBox(&b)
	}
	return b
}

// NearestPoint returns the point on the area's boundary closest to p.
func (a *Area) NearestPoint(p geom.Point) geom.Point {
	best := p
	bestDist := math.Inf(1)
	for i, c := range a.Curves {
		cand := c.NearestPoint(p)
		if d := p.Dist(cand); i == 0 || d < bestDist {
			bestDist = d
			best = cand
		}
	}
	return best
}

// GetArea returns the sum of the area's curve areas. When alwaysAdd is
// true, each curve's absolute area is summed (useful for measuring total
// boundary coverage); otherwise signed areas are summed so outers and
// holes cancel.
func (a *Area) GetArea(alwaysAdd bool) float64 {
	sum := 0.0
	for _, c := range a.Curves {
		v := c.GetArea()
		if alwaysAdd {
			v = math.Abs(v)
		}
		sum += v
	}
	return sum
}

// Offset replaces the area's curves with self offset by d (via the
// external engine).
func (a *Area) Offset(d, units, accuracy float64) {
	a.Curves = a.Engine.Offset(a.Curves, d, units, accuracy)
}

// Intersect replaces the area's curves with self ∩ other.
func (a *Area) Intersect(other *Area, units, accuracy float64) {
	a.Curves = a.Engine.Intersect(a.Curves, other.Curves, units, accuracy)
}

// Subtract replaces the area's curves with self ∖ other.
func (a *Area) Subtract(other *Area, units, accuracy float64) {
	a.Curves = a.Engine.Subtract(a.Curves, other.Curves, units, accuracy)
}

// HolesLinked reports whether holes are joined to their outer by
// zero-width bridges in the current representation.
func (a *Area) HolesLinked(units float64) bool {
	return a.Engine.HolesLinked(a.Curves, units)
}
