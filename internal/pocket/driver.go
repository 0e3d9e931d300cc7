package pocket

import (
	"github.com/piwi3910/areapocket/internal/area"
	"github.com/piwi3910/areapocket/internal/geom"
)

// SplitAndMakePocket temporarily pins Units to 1, splits a into simple
// sub-areas (a 50% progress budget), then runs MakePocket on each
// sub-area (the remaining 50%).
func SplitAndMakePocket(ctx *Context, a *area.Area, params Params) []geom.Curve {
	saved := ctx.Units
	ctx.Units = 1
	defer func() { ctx.Units = saved }()

	subs := a.Split(ctx.Units, ctx.Accuracy)
	ctx.advance(50)
	if ctx.aborted() {
		return nil
	}

	budget := 0.0
	if len(subs) > 0 {
		budget = 50.0 / float64(len(subs))
	}

	var out []geom.Curve
	for _, sub := range subs {
		if ctx.aborted() {
			break
		}
		ctx.SetSingleAreaBudget(budget)
		out = append(out, MakePocket(ctx, sub, params)...)
	}
	return out
}

// MakePocket offsets a by the combined tool-radius + extra-offset inset,
// then dispatches to the zig-zag engine, the spiral engine, or appends
// the offset boundary verbatim, according to params.Mode.
func MakePocket(ctx *Context, a *area.Area, params Params) []geom.Curve {
	if ctx.aborted() {
		return nil
	}

	offset := a.Clone()
	offset.Offset(params.offset(), ctx.Units, ctx.Accuracy)

	var out []geom.Curve
	if params.Mode.hasZigZag() {
		out = append(out, ZigZag(ctx, offset, params.Stepover, params.ZigAngle)...)
	}
	if params.Mode == ModeSpiral {
		subs := offset.Split(ctx.Units, ctx.Accuracy)
		for _, sub := range subs {
			if ctx.aborted() {
				break
			}
			out = append(out, MakeOnePocketCurve(ctx, sub, params.Stepover, params.FromCenter)...)
		}
	}
	if params.Mode.hasSingleOffset() {
		out = append(out, offset.Curves...)
	}
	return out
}
