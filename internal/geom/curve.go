package geom

import "math"

// closeTol returns the coincidence tolerance for the given units scalar,
// per spec: 0.002 / units.
func closeTol(units float64) float64 {
	if units == 0 {
		units = 1
	}
	return 0.002 / units
}

// Curve is an ordered sequence of vertices. A curve of N vertices
// describes N-1 segments; the first vertex is a pure seed whose Type is
// preserved but ignored by every geometric operation.
type Curve []Vertex

// NewCurve returns a curve seeded at p.
func NewCurve(p Point) Curve {
	return Curve{{Type: Line, P: p}}
}

// Append adds a vertex to the end of the curve.
func (c *Curve) Append(v Vertex) {
	*c = append(*c, v)
}

// LineTo appends a straight segment ending at p.
func (c *Curve) LineTo(p Point) {
	c.Append(NewLineVertex(p))
}

// ArcTo appends an arc segment ending at p, centered at center.
func (c *Curve) ArcTo(p, center Point, ccw bool) {
	c.Append(NewArcVertex(p, center, ccw))
}

// Start returns the curve's first point.
func (c Curve) Start() Point {
	if len(c) == 0 {
		return Point{}
	}
	return c[0].P
}

// End returns the curve's last point.
func (c Curve) End() Point {
	if len(c) == 0 {
		return Point{}
	}
	return c[len(c)-1].P
}

// IsClosed reports whether the first and last points coincide within the
// units-scaled tolerance.
func (c Curve) IsClosed(units float64) bool {
	if len(c) < 2 {
		return false
	}
	return c.Start().Near(c.End(), closeTol(units))
}

// GetArea returns the signed area enclosed by the curve: positive for a
// counter-clockwise curve, negative for clockwise. Each line segment
// contributes the shoelace term; each arc adds the circular-segment
// correction between its chord and its swept arc.
func (c Curve) GetArea() float64 {
	if len(c) < 2 {
		return 0
	}
	sum := 0.0
	for i := 1; i < len(c); i++ {
		p0 := c[i-1].P
		v := c[i]
		sum += p0.X*v.P.Y - v.P.X*p0.Y
		if v.IsArc() {
			sum += arcAreaCorrection(p0, v.P, v.C, v.Type)
		}
	}
	return sum / 2
}

// IsClockwise reports whether the curve's signed area is negative.
// Undefined for open curves; the caller must ensure closure first.
func (c Curve) IsClockwise() bool {
	return c.GetArea() < 0
}

// Reverse returns a new curve with the vertex order inverted and every
// vertex's arc direction negated, preserving the shape traced by the
// curve. c itself is left unchanged.
func (c Curve) Reverse() Curve {
	n := len(c)
	if n == 0 {
		return c
	}
	out := make(Curve, n)
	// The new vertex i's point is the old curve's point at n-1-i; its arc
	// center/type comes from the segment that used to leave that point
	// (the old vertex at n-i), reversed.
	out[0] = Vertex{Type: Line, P: c[n-1].P}
	for i := 1; i < n; i++ {
		old := c[n-i]
		v := old.Reversed()
		v.P = c[n-1-i].P
		out[i] = v
	}
	return out
}

// ForceOrientation returns c, reversed if necessary, so that
// IsClockwise() == clockwise.
func (c Curve) ForceOrientation(clockwise bool) Curve {
	if c.IsClockwise() == clockwise {
		return c
	}
	return c.Reverse()
}

// GetBox extends box by every vertex endpoint and every arc extremum on
// the x/y axes.
func (c Curve) GetBox(box *Box) {
	for i, v := range c {
		box.Insert(v.P)
		if i > 0 && v.IsArc() {
			insertArcExtrema(box, c[i-1].P, v.P, v.C, v.Type)
		}
	}
}

// Box returns a fresh bounding box for the curve.
func (c Curve) Box() Box {
	b := NewBox()
	c.GetBox(&b)
	return b
}

// NearestPoint returns the point on the curve closest to p.
func (c Curve) NearestPoint(p Point) Point {
	best := p
	bestDist := math.Inf(1)
	for i := 1; i < len(c); i++ {
		var cand Point
		v := c[i]
		p0 := c[i-1].P
		if v.IsArc() {
			cand = nearestOnArc(p, p0, v.P, v.C, v.Type)
		} else {
			cand = nearestOnSegment(p, p0, v.P)
		}
		if d := p.Dist(cand); d < bestDist {
			bestDist = d
			best = cand
		}
	}
	if len(c) > 0 && math.IsInf(bestDist, 1) {
		best = c[0].P
	}
	return best
}

// Span is one segment of a curve: its start point, the vertex describing
// the segment/arc ending the span, and whether it is the curve's first
// emitted span.
type Span struct {
	Start   Point
	V       Vertex
	IsStart bool
}

// GetSpans emits one Span per segment into out.
func (c Curve) GetSpans(out *[]Span) {
	for i := 1; i < len(c); i++ {
		*out = append(*out, Span{Start: c[i-1].P, V: c[i], IsStart: i == 1})
	}
}

// Clone returns an independent copy of the curve.
func (c Curve) Clone() Curve {
	out := make(Curve, len(c))
	copy(out, c)
	return out
}

// Rotated returns a copy of c with every vertex rotated by (sin, cos).
func (c Curve) Rotated(sin, cos float64) Curve {
	out := make(Curve, len(c))
	for i, v := range c {
		out[i] = v.Rotated(sin, cos)
	}
	return out
}

func arcAreaCorrection(p0, p1, center Point, t VertexType) float64 {
	r := center.Dist(p0)
	if r < 1e-12 {
		return 0
	}
	theta := sweepAngle(p0, p1, center, t)
	segArea := 0.5 * r * r * (theta - math.Sin(theta))
	sign := 1.0
	if t == CWArc {
		sign = -1.0
	}
	return 2 * sign * segArea
}

// sweepAngle returns the positive angle (0..2pi) swept by the arc from p0
// to p1 around center, in the direction given by t.
func sweepAngle(p0, p1, center Point, t VertexType) float64 {
	a0 := math.Atan2(p0.Y-center.Y, p0.X-center.X)
	a1 := math.Atan2(p1.Y-center.Y, p1.X-center.X)
	var theta float64
	if t == CCWArc {
		theta = a1 - a0
	} else {
		theta = a0 - a1
	}
	theta = math.Mod(theta, 2*math.Pi)
	if theta < 0 {
		theta += 2 * math.Pi
	}
	return theta
}

func normalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

func insertArcExtrema(box *Box, p0, p1, center Point, t VertexType) {
	r := center.Dist(p0)
	if r < 1e-12 {
		return
	}
	a0 := math.Atan2(p0.Y-center.Y, p0.X-center.X)
	a1 := math.Atan2(p1.Y-center.Y, p1.X-center.X)
	theta := sweepAngle(p0, p1, center, t)
	start := a0
	if t == CWArc {
		start = a1
	}
	start = normalizeAngle(start)
	for _, axis := range [4]float64{0, math.Pi / 2, math.Pi, 3 * math.Pi / 2} {
		diff := normalizeAngle(axis - start)
		if diff <= theta {
			box.Insert(Point{center.X + r*math.Cos(axis), center.Y + r*math.Sin(axis)})
		}
	}
}

func nearestOnSegment(p, a, b Point) Point {
	dx, dy := b.X-a.X, b.Y-a.Y
	lenSq := dx*dx + dy*dy
	if lenSq < 1e-18 {
		return a
	}
	t := ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return Point{a.X + t*dx, a.Y + t*dy}
}

func nearestOnArc(p, p0, p1, center Point, t VertexType) Point {
	r := center.Dist(p0)
	dir := p.Sub(center)
	d := math.Hypot(dir.X, dir.Y)
	if d < 1e-12 {
		return p0
	}
	cand := Point{center.X + dir.X*r/d, center.Y + dir.Y*r/d}
	angle := normalizeAngle(math.Atan2(cand.Y-center.Y, cand.X-center.X))
	theta := sweepAngle(p0, p1, center, t)
	start := math.Atan2(p0.Y-center.Y, p0.X-center.X)
	if t == CWArc {
		start = math.Atan2(p1.Y-center.Y, p1.X-center.X)
	}
	start = normalizeAngle(start)
	diff := normalizeAngle(angle - start)
	if diff <= theta {
		return cand
	}
	if p.Dist(p0) < p.Dist(p1) {
		return p0
	}
	return p1
}
