// Package cadio reads and writes the DXF files carrying pocketing job
// input and output: closed boundary curves in, tool-path curves out.
// Entities decode into geom.Curve directly (which keeps arcs as arc
// vertices) instead of a flattened point outline, since area-pocketing
// needs exact arcs for FitArcs and GetArea.
package cadio

import (
	"fmt"
	"math"
	"sort"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/entity"

	"github.com/piwi3910/areapocket/internal/geom"
)

// edge is one loose LINE or ARC entity, chained against its neighbors by
// coincident endpoints, keeping arc entities as arcs rather than
// flattening them to points first.
type edge struct {
	start, end geom.Point
	isArc      bool
	center     geom.Point
	ccw        bool
}

// ReadCurves reads every closed shape in a DXF file as a geom.Curve.
// LWPOLYLINE bulges become arc vertices directly; CIRCLE becomes a
// two-arc closed curve; loose LINE/ARC entities are chained into closed
// curves by matching coincident endpoints within tol.
func ReadCurves(path string, tol float64) ([]geom.Curve, error) {
	drawing, err := dxf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cadio: open %s: %w", path, err)
	}

	entities := drawing.Entities()
	if len(entities) == 0 {
		return nil, fmt.Errorf("cadio: %s contains no entities", path)
	}

	var curves []geom.Curve
	var edges []edge

	for _, ent := range entities {
		switch e := ent.(type) {
		case *entity.LwPolyline:
			if c := lwPolylineToCurve(e); len(c) >= 3 {
				curves = append(curves, c)
			}
		case *entity.Circle:
			curves = append(curves, circleToCurve(e))
		case *entity.Arc:
			edges = append(edges, arcToEdge(e))
		case *entity.Line:
			edges = append(edges, edge{
				start: geom.Point{X: e.Start[0], Y: e.Start[1]},
				end:   geom.Point{X: e.End[0], Y: e.End[1]},
			})
		}
	}

	curves = append(curves, chainEdges(edges, tol)...)
	if len(curves) == 0 {
		return nil, fmt.Errorf("cadio: %s contains no closed shapes", path)
	}
	return curves, nil
}

// lwPolylineToCurve converts one LWPOLYLINE into a closed curve, treating
// every vertex's bulge as the arc sweeping to the next vertex (wrapping
// to the first), exactly as DXF's bulge convention defines it.
func lwPolylineToCurve(lw *entity.LwPolyline) geom.Curve {
	n := len(lw.Vertices)
	if n < 2 {
		return nil
	}
	pt := func(i int) geom.Point {
		v := lw.Vertices[i]
		return geom.Point{X: v[0], Y: v[1]}
	}

	c := geom.NewCurve(pt(0))
	for i := 0; i < n; i++ {
		next := pt((i + 1) % n)
		bulge := 0.0
		if i < len(lw.Bulges) {
			bulge = lw.Bulges[i]
		}
		if math.Abs(bulge) < 1e-9 {
			c.LineTo(next)
			continue
		}
		center, ccw := bulgeCenter(pt(i), next, bulge)
		c.ArcTo(next, center, ccw)
	}
	return c
}

// bulgeCenter recovers the arc center and winding direction from a DXF
// bulge value (tangent of 1/4 the included angle, positive for a
// counter-clockwise arc).
func bulgeCenter(p1, p2 geom.Point, bulge float64) (geom.Point, bool) {
	dx, dy := p2.X-p1.X, p2.Y-p1.Y
	chordLen := math.Hypot(dx, dy)
	if chordLen < 1e-9 {
		return p1, bulge > 0
	}

	sagitta := math.Abs(bulge) * chordLen / 2
	radius := (chordLen*chordLen/(4*sagitta) + sagitta) / 2

	mx, my := (p1.X+p2.X)/2, (p1.Y+p2.Y)/2
	perpX, perpY := -dy/chordLen, dx/chordLen
	dist := radius - sagitta
	if bulge < 0 {
		perpX, perpY = -perpX, -perpY
	}
	return geom.Point{X: mx + perpX*dist, Y: my + perpY*dist}, bulge > 0
}

// circleToCurve approximates a CIRCLE entity as two counter-clockwise
// half-circle arcs, the minimum representation a Vertex-based curve can
// hold for a full loop (see geom.Curve's full-circle area test).
func circleToCurve(c *entity.Circle) geom.Curve {
	cx, cy, r := c.Center[0], c.Center[1], c.Radius
	center := geom.Point{X: cx, Y: cy}
	start := geom.Point{X: cx + r, Y: cy}
	mid := geom.Point{X: cx - r, Y: cy}

	curve := geom.NewCurve(start)
	curve.ArcTo(mid, center, true)
	curve.ArcTo(start, center, true)
	return curve
}

// arcToEdge converts a DXF ARC entity, which always sweeps
// counter-clockwise from Angle[0] to Angle[1], into an edge.
func arcToEdge(a *entity.Arc) edge {
	cx, cy, r := a.Circle.Center[0], a.Circle.Center[1], a.Circle.Radius
	startRad := a.Angle[0] * math.Pi / 180
	endRad := a.Angle[1] * math.Pi / 180
	center := geom.Point{X: cx, Y: cy}
	start := geom.Point{X: cx + r*math.Cos(startRad), Y: cy + r*math.Sin(startRad)}
	end := geom.Point{X: cx + r*math.Cos(endRad), Y: cy + r*math.Sin(endRad)}
	return edge{start: start, end: end, isArc: true, center: center, ccw: true}
}

// chainEdges connects loose LINE/ARC edges into closed curves, largest
// area first.
func chainEdges(edges []edge, tol float64) []geom.Curve {
	if len(edges) == 0 {
		return nil
	}

	used := make([]bool, len(edges))
	var curves []geom.Curve

	for {
		startIdx := -1
		for i, u := range used {
			if !u {
				startIdx = i
				break
			}
		}
		if startIdx == -1 {
			break
		}

		c := geom.NewCurve(edges[startIdx].start)
		appendEdge(&c, edges[startIdx], false)
		used[startIdx] = true

		changed := true
		for changed {
			changed = false
			tail := c.End()
			for i, e := range edges {
				if used[i] {
					continue
				}
				if tail.Near(e.start, tol) {
					appendEdge(&c, e, false)
					used[i] = true
					changed = true
					break
				}
				if tail.Near(e.end, tol) {
					appendEdge(&c, e, true)
					used[i] = true
					changed = true
					break
				}
			}
		}

		if c.IsClosed(1) && (len(c) >= 4 || (len(c) == 3 && (c[1].IsArc() || c[2].IsArc()))) {
			curves = append(curves, c)
		}
	}

	sort.Slice(curves, func(i, j int) bool {
		return math.Abs(curves[i].GetArea()) > math.Abs(curves[j].GetArea())
	})
	return curves
}

// appendEdge appends e to c in its traversal direction: forward if the
// chain's tail matched e's recorded start, reversed (swapping arc
// direction) if it matched e's recorded end instead.
func appendEdge(c *geom.Curve, e edge, reversed bool) {
	if !e.isArc {
		if reversed {
			c.LineTo(e.start)
		} else {
			c.LineTo(e.end)
		}
		return
	}
	if reversed {
		c.ArcTo(e.start, e.center, !e.ccw)
	} else {
		c.ArcTo(e.end, e.center, e.ccw)
	}
}

// WriteCurves writes curves to path as DXF LWPOLYLINE entities, one per
// curve, using bulge values for arc vertices — the same representation
// ReadCurves consumes on the way in.
func WriteCurves(path string, curves []geom.Curve) error {
	d := dxf.NewDrawing()
	for _, c := range curves {
		lw := curveToLwPolyline(c)
		if lw == nil {
			continue
		}
		d.AddEntity(lw)
	}
	if err := d.SaveAs(path); err != nil {
		return fmt.Errorf("cadio: write %s: %w", path, err)
	}
	return nil
}

func curveToLwPolyline(c geom.Curve) *entity.LwPolyline {
	if len(c) < 2 {
		return nil
	}
	n := len(c)
	if c.IsClosed(1) {
		n-- // the last vertex duplicates the seed, closing the loop
	}
	lw := &entity.LwPolyline{
		Vertices: make([][]float64, n),
		Bulges:   make([]float64, n),
	}
	for i := 0; i < n; i++ {
		p := c[i].P
		lw.Vertices[i] = []float64{p.X, p.Y}
		if i+1 < len(c) && c[i+1].IsArc() {
			v := c[i+1]
			lw.Bulges[i] = arcBulge(p, v.P, v.C, v.Type)
		}
	}
	return lw
}

// arcBulge is bulgeCenter's inverse: recovers the DXF bulge value from an
// arc vertex's endpoints, center and direction.
func arcBulge(p0, p1, center geom.Point, t geom.VertexType) float64 {
	r := center.Dist(p0)
	if r < 1e-12 {
		return 0
	}
	a0 := math.Atan2(p0.Y-center.Y, p0.X-center.X)
	a1 := math.Atan2(p1.Y-center.Y, p1.X-center.X)
	ccw := t == geom.CCWArc

	var theta float64
	if ccw {
		theta = a1 - a0
	} else {
		theta = a0 - a1
	}
	theta = math.Mod(theta, 2*math.Pi)
	if theta < 0 {
		theta += 2 * math.Pi
	}

	b := math.Tan(theta / 4)
	if !ccw {
		b = -b
	}
	return b
}
