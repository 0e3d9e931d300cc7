package pocket

import (
	"math"

	"github.com/piwi3910/areapocket/internal/area"
	"github.com/piwi3910/areapocket/internal/geom"
)

// closeTol returns the units-scaled coincidence tolerance used to
// decide when two path endpoints are the same point.
func closeTol(units float64) float64 {
	if units == 0 {
		units = 1
	}
	return 0.002 / units
}

// zigZagSession owns the scratch state of one ZigZag call: the rotation
// parameters and the chains being stitched together. Keeping this as a
// stack-allocated value rather than package-level scratch state lets
// concurrent ZigZag calls run without interfering with each other.
type zigZagSession struct {
	sin, cos       float64 // rotates user frame into the working frame
	sinInv, cosInv float64 // rotates the working frame back to user frame
	chains         []*zigZagChain
}

// zigZagChain is one stitched tool path under construction: a sequence of
// zigs known to connect end-to-start, plus the most recent zag appended
// to (but not traversed by) every zig but the last.
type zigZagChain struct {
	zigs []geom.Curve
	zag  geom.Curve
}

// ZigZag sweeps parallel scan lines across a (already tool-offset) area
// at zigAngleDeg degrees, spaced stepover apart.
func ZigZag(ctx *Context, a *area.Area, stepover, zigAngleDeg float64) []geom.Curve {
	if ctx == nil {
		ctx = NewContext(1, 0.01)
	}
	if stepover <= 0 || len(a.Curves) == 0 {
		return nil
	}

	rad := -zigAngleDeg * math.Pi / 180
	s := &zigZagSession{
		sin: math.Sin(rad), cos: math.Cos(rad),
		sinInv: math.Sin(-rad), cosInv: math.Cos(-rad),
	}

	rotated := &area.Area{Engine: a.Engine, Curves: make([]geom.Curve, len(a.Curves))}
	for i, c := range a.Curves {
		rotated.Curves[i] = c.Rotated(s.sin, s.cos)
	}

	box := rotated.GetBox()
	if box.Empty() {
		return nil
	}
	x0, x1 := box.Min.X-1, box.Max.X+1
	y0 := box.Min.Y
	bandCount := int(math.Ceil(box.Height()/stepover)) + 1
	tol := closeTol(ctx.Units)

	stepBudget := 0.0
	if bandCount > 0 {
		stepBudget = 0.8 * ctx.singleAreaBudget() / float64(bandCount)
	}

	rightward := true
	for i := 0; i < bandCount; i++ {
		if ctx.aborted() {
			break
		}
		by0 := y0 + float64(i)*stepover
		by1 := by0 + stepover

		band := geom.NewCurve(geom.Point{X: x0, Y: by0})
		band.LineTo(geom.Point{X: x1, Y: by0})
		band.LineTo(geom.Point{X: x1, Y: by1})
		band.LineTo(geom.Point{X: x0, Y: by1})
		band.LineTo(geom.Point{X: x0, Y: by0})

		probe := &area.Area{Engine: a.Engine, Curves: []geom.Curve{band}}
		probe.Intersect(rotated, ctx.Units, ctx.Accuracy)

		for _, c := range probe.Curves {
			if zig, zag, ok := extractZigZag(c, by0, by1, rightward, tol); ok {
				s.stitch(zig, zag, tol)
			}
		}

		rightward = !rightward
		ctx.advance(stepBudget)
	}

	out := s.flatten()
	for i, c := range out {
		out[i] = c.Rotated(s.sinInv, s.cosInv)
	}
	if !ctx.aborted() {
		ctx.advance(0.2 * ctx.singleAreaBudget())
	}
	return out
}

// extractZigZag locates the zig (the cutting portion) and zag (the
// non-cutting return) of one closed band/area intersection curve.
func extractZigZag(c geom.Curve, y0, y1 float64, rightward bool, tol float64) (zig, zag geom.Curve, ok bool) {
	if len(c) < 3 {
		return nil, nil, false
	}
	c = c.ForceOrientation(!rightward)

	topLeftIdx, topLeftFound := -1, false
	topRightIdx, topRightFound := -1, false
	bottomIdx, bottomFound := -1, false
	var topLeftX, topRightX, bottomX float64

	for i := 1; i < len(c); i++ {
		p := c[i].P
		if p.NearY(y1, tol) {
			if !topLeftFound || (rightward && p.X < topLeftX) || (!rightward && p.X > topLeftX) {
				topLeftIdx, topLeftX, topLeftFound = i, p.X, true
			}
			if !topRightFound || (rightward && p.X > topRightX) || (!rightward && p.X < topRightX) {
				topRightIdx, topRightX, topRightFound = i, p.X, true
			}
		}
		if p.NearY(y0, tol) {
			if !bottomFound || (rightward && p.X < bottomX) || (!rightward && p.X > bottomX) {
				bottomIdx, bottomX, bottomFound = i, p.X, true
			}
		}
	}

	startIdx := bottomIdx
	if !bottomFound {
		if !topLeftFound {
			return nil, nil, false
		}
		startIdx = topLeftIdx
	}

	endIdx := topRightIdx
	if !topRightFound {
		if !bottomFound {
			return nil, nil, false
		}
		endIdx = bottomIdx
	}

	zagEndIdx := bottomIdx
	if topRightFound && topLeftFound {
		zagEndIdx = topLeftIdx
	}
	if !bottomFound {
		zagEndIdx = topLeftIdx
	}

	w := geom.NewRingWalk(c, startIdx)
	w.Next() // the starting point itself, already the zig's seed

	zig = geom.NewCurve(c[startIdx].P)
	reachedEnd := false
	for {
		idx, v, more := w.Next()
		if !more {
			break
		}
		zig.Append(v)
		if idx == endIdx {
			reachedEnd = true
			break
		}
	}
	if !reachedEnd || len(zig) < 2 {
		return nil, nil, false
	}

	zag = geom.NewCurve(c[endIdx].P)
	for {
		idx, v, more := w.Next()
		if !more {
			break
		}
		zag.Append(v)
		if idx == zagEndIdx {
			break
		}
	}

	return zig, zag, true
}

// stitch implements reorder_zigs: attach zig/zag to an existing chain
// when it continues one, start a new chain otherwise, and drop a zag
// that only revisits a vertex some earlier zig already passed through
// (it is internal to an already-emitted path).
func (s *zigZagSession) stitch(zig, zag geom.Curve, tol float64) {
	if len(zag) >= 2 {
		zagStart := zag.Start()
		for _, ch := range s.chains {
			for _, z := range ch.zigs {
				for _, v := range z {
					if v.P.Near(zagStart, tol) {
						zag = nil
						break
					}
				}
				if zag == nil {
					break
				}
			}
			if zag == nil {
				break
			}
		}
	}

	zigStart := zig.Start()
	for _, ch := range s.chains {
		if len(ch.zigs) == 0 {
			continue
		}
		if ch.zigs[len(ch.zigs)-1].End().Near(zigStart, tol) {
			ch.zigs = append(ch.zigs, zig)
			ch.zag = zag
			return
		}
	}

	s.chains = append(s.chains, &zigZagChain{zigs: []geom.Curve{zig}, zag: zag})
}

// flatten concatenates each chain's zigs, in order, then appends its
// final zag, deduplicating every joined vertex.
func (s *zigZagSession) flatten() []geom.Curve {
	var out []geom.Curve
	for _, ch := range s.chains {
		if len(ch.zigs) == 0 {
			continue
		}
		full := geom.NewCurve(ch.zigs[0].Start())
		for _, z := range ch.zigs {
			for j := 1; j < len(z); j++ {
				full.Append(z[j])
			}
		}
		if len(ch.zag) >= 2 {
			for j := 1; j < len(ch.zag); j++ {
				full.Append(ch.zag[j])
			}
		}
		if len(full) >= 2 {
			out = append(out, full)
		}
	}
	return out
}
