package pocket

import (
	"github.com/piwi3910/areapocket/internal/area"
	"github.com/piwi3910/areapocket/internal/geom"
)

// Spiral recursively offsets a to produce nested contours: it applies
// the combined tool-radius + extra-offset inset itself, splits the
// result into simple sub-areas, and emits one spiral contour set per
// sub-area. Use this as the standalone spiral-pocket entry point; the
// pocket driver (MakePocket) instead calls MakeOnePocketCurve directly
// on an area it has already offset, to avoid offsetting twice.
func Spiral(ctx *Context, a *area.Area, params Params) []geom.Curve {
	offset := a.Clone()
	offset.Offset(params.offset(), ctx.Units, ctx.Accuracy)
	if ctx.aborted() {
		return nil
	}

	subs := offset.Split(ctx.Units, ctx.Accuracy)
	budget := 0.0
	if len(subs) > 0 {
		budget = 100.0 / float64(len(subs))
	}

	var out []geom.Curve
	for _, sub := range subs {
		if ctx.aborted() {
			break
		}
		ctx.SetSingleAreaBudget(budget)
		out = append(out, MakeOnePocketCurve(ctx, sub, params.Stepover, params.FromCenter)...)
	}
	return out
}

// MakeOnePocketCurve is the single-contour emitter: one simple area in,
// one ordered set of nested contour curves out, inner-first when
// fromCenter, outer-first otherwise. sub is assumed to already carry its
// tool-radius/extra-offset inset — the pocket driver applies that once,
// before Split.
func MakeOnePocketCurve(ctx *Context, sub *area.Area, stepover float64, fromCenter bool) []geom.Curve {
	if stepover <= 0 {
		return nil
	}
	var acc []geom.Curve
	pocketRecurse(ctx, sub, stepover, fromCenter, &acc)
	return acc
}

// pocketRecurse implements recursive_pocket's pocket_recurse: insert the
// current area's curves into acc (front if fromCenter, back otherwise),
// offset inward by stepover, and recurse into every resulting curve
// wrapped as its own singleton area. Recursion bottoms out once the
// offset collapses to no curves.
func pocketRecurse(ctx *Context, current *area.Area, stepover float64, fromCenter bool, acc *[]geom.Curve) {
	if ctx.aborted() {
		return
	}
	insertContours(acc, current.Curves, fromCenter)

	next := current.Clone()
	next.Offset(-stepover, ctx.Units, ctx.Accuracy)
	if len(next.Curves) == 0 {
		return
	}

	for _, c := range next.Curves {
		if ctx.aborted() {
			return
		}
		singleton := &area.Area{Engine: current.Engine, Curves: []geom.Curve{c}}
		pocketRecurse(ctx, singleton, stepover, fromCenter, acc)
	}
}

func insertContours(acc *[]geom.Curve, curves []geom.Curve, front bool) {
	if !front {
		*acc = append(*acc, curves...)
		return
	}
	merged := make([]geom.Curve, 0, len(curves)+len(*acc))
	merged = append(merged, curves...)
	merged = append(merged, *acc...)
	*acc = merged
}
