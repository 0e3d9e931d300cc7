package area

import (
	"math"
	"sort"

	"github.com/piwi3910/areapocket/internal/boolean"
	"github.com/piwi3910/areapocket/internal/geom"
)

// orderedCurve tracks one curve through the reordering containment-tree
// algorithm: its ring insertion index (for tie-breaking), its nesting
// depth, and the index of its immediate parent (-1 for a root outer).
type orderedCurve struct {
	ring   int
	curve  geom.Curve
	depth  int
	parent int
	dupOf  int // >=0 if this entry is a duplicate collapsed onto dupOf
}

// Reorder reorients the area's curves so that every outer is
// counter-clockwise and every hole is clockwise, and groups each hole to
// immediately follow its smallest enclosing outer in the curve list, so
// that Split (internal/area/splitter.go) can walk the result in a single
// pass. Curves are inserted into a containment tree keyed by IsInside;
// depth parity decides orientation (even depth: outer, odd depth: hole).
// Boundary-touching ties are broken by preferring the lower ring index;
// exactly-coincident curves collapse into one entry.
func (a *Area) Reorder(units, accuracy float64) {
	entries := make([]*orderedCurve, len(a.Curves))
	for i, c := range a.Curves {
		entries[i] = &orderedCurve{ring: i, curve: c, parent: -1, dupOf: -1}
	}

	// Collapse exact duplicates: curves whose bounding boxes coincide
	// within tolerance and each of which the Overlap classifier finds
	// Inside the other. The lower ring index survives.
	tol := 0.002
	if units != 0 {
		tol = 0.002 / units
	}
	for i := 0; i < len(entries); i++ {
		if entries[i].dupOf >= 0 {
			continue
		}
		for j := i + 1; j < len(entries); j++ {
			if entries[j].dupOf >= 0 {
				continue
			}
			if boxesCoincide(entries[i].curve, entries[j].curve, tol) &&
				OverlapCurves(a.Engine, entries[j].curve, entries[i].curve, units, accuracy) == Inside &&
				OverlapCurves(a.Engine, entries[i].curve, entries[j].curve, units, accuracy) == Inside {
				entries[j].dupOf = i
			}
		}
	}

	// Depth: for each surviving curve, count how many other surviving
	// curves contain its sample point.
	for i, e := range entries {
		if e.dupOf >= 0 {
			continue
		}
		depth := 0
		bestParent := -1
		bestParentArea := math.Inf(1)
		for j, other := range entries {
			if i == j || other.dupOf >= 0 {
				continue
			}
			if sampleInside(a.Engine, e.curve, other.curve, units, accuracy) {
				depth++
				if oa := math.Abs(other.curve.GetArea()); oa < bestParentArea {
					bestParentArea = oa
					bestParent = j
				}
			}
		}
		e.depth = depth
		e.parent = bestParent
	}

	// Resolve dupOf to the root duplicate's depth/parent so children of a
	// dropped duplicate still attach sensibly (defensive; Reorder is not
	// expected to see duplicates with further children in practice).
	for _, e := range entries {
		if e.dupOf < 0 {
			continue
		}
		root := entries[e.dupOf]
		e.depth, e.parent = root.depth, root.parent
	}

	children := make(map[int][]int)
	var roots []int
	for i, e := range entries {
		if e.dupOf >= 0 {
			continue
		}
		if e.parent < 0 {
			roots = append(roots, i)
		} else {
			children[e.parent] = append(children[e.parent], i)
		}
	}
	sort.Ints(roots)
	for k := range children {
		sort.Ints(children[k])
	}

	var out []geom.Curve
	var visit func(i int)
	visit = func(i int) {
		e := entries[i]
		out = append(out, e.curve.ForceOrientation(e.depth%2 == 1))
		for _, c := range children[i] {
			visit(c)
		}
	}
	for _, r := range roots {
		visit(r)
	}

	a.Curves = out
}

func sampleInside(engine boolean.Engine, sample, container geom.Curve, units, accuracy float64) bool {
	p := sample.Start()
	return IsInsideCurve(engine, p, container, units, accuracy)
}

func boxesCoincide(a, b geom.Curve, tol float64) bool {
	ba, bb := a.Box(), b.Box()
	return ba.Min.Near(bb.Min, tol) && ba.Max.Near(bb.Max, tol)
}
