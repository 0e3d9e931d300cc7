package area

import "github.com/piwi3910/areapocket/internal/geom"

// Split partitions the area into independent sub-areas, each one outer
// together with its holes. Two paths exist:
//
//   - holes-linked fast path: when the engine reports the area's curves
//     already bridge their holes to their outer with zero-width links
//     (HolesLinked), each curve already describes one complete sub-area
//     on its own; no reordering is needed.
//   - reorder-and-walk path: otherwise the curves are reoriented and
//     grouped by Reorder, then walked in list order — each
//     counter-clockwise curve starts a new sub-area, and every following
//     clockwise curve is appended to the current sub-area as a hole,
//     until the next counter-clockwise curve starts the next one. A
//     clockwise curve encountered before any counter-clockwise curve has
//     no outer to attach to and is dropped.
func (a *Area) Split(units, accuracy float64) []*Area {
	if a.HolesLinked(units) {
		out := make([]*Area, 0, len(a.Curves))
		for _, c := range a.Curves {
			out = append(out, &Area{Engine: a.Engine, Curves: []geom.Curve{c}})
		}
		return out
	}

	a.Reorder(units, accuracy)

	var out []*Area
	for _, c := range a.Curves {
		if !c.IsClockwise() {
			out = append(out, &Area{Engine: a.Engine, Curves: []geom.Curve{c}})
			continue
		}
		if len(out) == 0 {
			// A hole with no preceding outer is ill-formed; drop it.
			continue
		}
		last := out[len(out)-1]
		last.Curves = append(last.Curves, c)
	}
	return out
}
