package boolean

import (
	clipper "github.com/go-clipper/clipper2/port"
	"github.com/piwi3910/areapocket/internal/geom"
)

// ClipperEngine binds Engine to the Clipper2 polygon-clipping kernel
// (github.com/go-clipper/clipper2/port).
type ClipperEngine struct {
	// MiterLimit and ArcTolerance tune the offset join geometry; zero
	// values fall back to Clipper2's own defaults (2.0 / 0.25).
	MiterLimit   float64
	ArcTolerance float64
}

var _ Engine = ClipperEngine{}

func (e ClipperEngine) options() clipper.OffsetOptions {
	miter, arcTol := e.MiterLimit, e.ArcTolerance
	if miter == 0 {
		miter = 2.0
	}
	if arcTol == 0 {
		arcTol = 0.25
	}
	return clipper.OffsetOptions{MiterLimit: miter, ArcTolerance: arcTol}
}

// Offset implements Engine.
func (e ClipperEngine) Offset(curves []geom.Curve, delta, units, accuracy float64) []geom.Curve {
	if len(curves) == 0 {
		return nil
	}
	paths := curvesToPaths(curves, accuracy)
	if len(paths) == 0 {
		return nil
	}
	result, err := clipper.InflatePaths64(paths, delta*gridScale, clipper.JoinRound, clipper.EndPolygon, e.options())
	if err != nil {
		return nil
	}
	return pathsToCurves(result, accuracy)
}

// Intersect implements Engine.
func (e ClipperEngine) Intersect(a, b []geom.Curve, units, accuracy float64) []geom.Curve {
	return e.boolOp(a, b, clipper.Intersection, accuracy)
}

// Subtract implements Engine.
func (e ClipperEngine) Subtract(a, b []geom.Curve, units, accuracy float64) []geom.Curve {
	return e.boolOp(a, b, clipper.Difference, accuracy)
}

func (e ClipperEngine) boolOp(a, b []geom.Curve, op clipper.ClipType, accuracy float64) []geom.Curve {
	subjects := curvesToPaths(a, accuracy)
	clips := curvesToPaths(b, accuracy)
	if len(subjects) == 0 {
		return nil
	}
	ve := clipper.NewVattiEngine(op, clipper.EvenOdd)
	solution, _, err := ve.ExecuteClipping(subjects, nil, clips)
	if err != nil {
		return nil
	}
	return pathsToCurves(solution, accuracy)
}

// HolesLinked implements Engine. A holes-linked curve visits some
// interior point twice: once arriving via the outer boundary and once
// via the zero-width bridge to a hole. Plain outer/hole curves never
// revisit an interior point, so a coincident pair of non-adjacent
// vertices (other than the curve's own start/end closure) is the
// signature this probes for.
func (e ClipperEngine) HolesLinked(curves []geom.Curve, units float64) bool {
	tol := 0.002
	if units != 0 {
		tol = 0.002 / units
	}
	for _, c := range curves {
		if len(c) < 4 {
			continue
		}
		for i := 1; i < len(c)-1; i++ {
			for j := i + 1; j < len(c); j++ {
				if j == len(c)-1 && i == 1 {
					continue // the curve's own start/end closure
				}
				if c[i].P.Near(c[j].P, tol) {
					return true
				}
			}
		}
	}
	return false
}
