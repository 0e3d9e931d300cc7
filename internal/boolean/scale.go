package boolean

import (
	"math"

	clipper "github.com/go-clipper/clipper2/port"
	"github.com/piwi3910/areapocket/internal/geom"
)

// gridScale is the fixed conversion factor between areapocket's float64
// user units and clipper's int64 grid. Clipper2 ports operate on integer
// coordinates for numerical robustness; this module's tolerances
// (2e-3/units) stay well above the resulting 1e-6 unit quantization.
const gridScale = 1e6

func toPath64(c geom.Curve, accuracy float64) clipper.Path64 {
	if len(c) == 0 {
		return nil
	}
	path := make(clipper.Path64, 0, len(c))
	path = append(path, toPoint64(c[0].P))
	for i := 1; i < len(c); i++ {
		v := c[i]
		if !v.IsArc() {
			path = append(path, toPoint64(v.P))
			continue
		}
		path = append(path, flattenArc(c[i-1].P, v, accuracy)...)
	}
	return path
}

func toPoint64(p geom.Point) clipper.Point64 {
	return clipper.Point64{
		X: int64(math.Round(p.X * gridScale)),
		Y: int64(math.Round(p.Y * gridScale)),
	}
}

func fromPoint64(p clipper.Point64) geom.Point {
	return geom.Point{X: float64(p.X) / gridScale, Y: float64(p.Y) / gridScale}
}

// flattenArc subdivides the arc ending at v (starting at p0) into line
// segments, fine enough that the chord deviates from the true arc by
// less than accuracy. It does not include the start point p0.
func flattenArc(p0 geom.Point, v geom.Vertex, accuracy float64) clipper.Path64 {
	r := v.C.Dist(p0)
	if r < 1e-12 {
		return clipper.Path64{toPoint64(v.P)}
	}
	if accuracy <= 0 {
		accuracy = 0.01
	}
	a0 := math.Atan2(p0.Y-v.C.Y, p0.X-v.C.X)
	a1 := math.Atan2(v.P.Y-v.C.Y, v.P.X-v.C.X)
	var theta float64
	if v.Type == geom.CCWArc {
		theta = a1 - a0
	} else {
		theta = a0 - a1
	}
	theta = math.Mod(theta, 2*math.Pi)
	if theta < 0 {
		theta += 2 * math.Pi
	}
	// Number of segments so that the sagitta (r * (1 - cos(dtheta/2)))
	// stays under accuracy.
	maxStep := 2 * math.Acos(1-math.Min(accuracy/r, 1))
	if maxStep < 1e-6 {
		maxStep = 1e-6
	}
	n := int(math.Ceil(theta / maxStep))
	if n < 1 {
		n = 1
	}
	dir := 1.0
	if v.Type == geom.CWArc {
		dir = -1
	}
	out := make(clipper.Path64, 0, n)
	for i := 1; i <= n; i++ {
		a := a0 + dir*theta*float64(i)/float64(n)
		out = append(out, toPoint64(geom.Point{
			X: v.C.X + r*math.Cos(a),
			Y: v.C.Y + r*math.Sin(a),
		}))
	}
	return out
}

func curvesToPaths(curves []geom.Curve, accuracy float64) clipper.Paths64 {
	paths := make(clipper.Paths64, 0, len(curves))
	for _, c := range curves {
		if p := toPath64(c, accuracy); len(p) > 0 {
			paths = append(paths, p)
		}
	}
	return paths
}

func pathToCurve(p clipper.Path64, accuracy float64) geom.Curve {
	if len(p) == 0 {
		return nil
	}
	c := geom.NewCurve(fromPoint64(p[0]))
	for i := 1; i < len(p); i++ {
		c.LineTo(fromPoint64(p[i]))
	}
	c.LineTo(fromPoint64(p[0]))
	return c.FitArcs(accuracy)
}

func pathsToCurves(paths clipper.Paths64, accuracy float64) []geom.Curve {
	out := make([]geom.Curve, 0, len(paths))
	for _, p := range paths {
		if len(p) >= 3 {
			out = append(out, pathToCurve(p, accuracy))
		}
	}
	return out
}
