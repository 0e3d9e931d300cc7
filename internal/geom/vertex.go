package geom

// VertexType distinguishes how a vertex connects to its predecessor.
type VertexType int

const (
	// Line connects the predecessor to P with a straight segment.
	Line VertexType = 0
	// CCWArc connects the predecessor to P with a counter-clockwise arc
	// centered at C.
	CCWArc VertexType = 1
	// CWArc connects the predecessor to P with a clockwise arc centered
	// at C.
	CWArc VertexType = -1
)

// Vertex is one node of a Curve: the segment or arc ending at P, with
// center C when the vertex describes an arc. UserData is an opaque tag
// preserved through rotation and reversal.
type Vertex struct {
	Type     VertexType
	P        Point
	C        Point
	UserData int
}

// NewLineVertex returns a line-segment vertex ending at p.
func NewLineVertex(p Point) Vertex {
	return Vertex{Type: Line, P: p}
}

// NewArcVertex returns an arc vertex ending at p, centered at c, in the
// direction given by ccw.
func NewArcVertex(p, c Point, ccw bool) Vertex {
	t := CWArc
	if ccw {
		t = CCWArc
	}
	return Vertex{Type: t, P: p, C: c}
}

// IsArc reports whether the vertex describes an arc rather than a line.
func (v Vertex) IsArc() bool { return v.Type != Line }

// Rotated returns v with P and C (when an arc) rotated by (sin, cos).
func (v Vertex) Rotated(sin, cos float64) Vertex {
	out := v
	out.P = v.P.Rotated(sin, cos)
	if v.IsArc() {
		out.C = v.C.Rotated(sin, cos)
	}
	return out
}

// Reversed returns v with its arc direction flipped. The center is
// unchanged; only the winding direction of the vertex type flips.
func (v Vertex) Reversed() Vertex {
	out := v
	switch v.Type {
	case CCWArc:
		out.Type = CWArc
	case CWArc:
		out.Type = CCWArc
	}
	return out
}
