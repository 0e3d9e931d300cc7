// Package boolean adapts the area-pocketing core's curve lists to an
// external polygon-clipping kernel. The core never assumes anything
// about that kernel's internals, only that Offset/Intersect/Subtract/
// HolesLinked behave per the contracts below. Engine is that contract;
// ClipperEngine is the concrete binding to
// github.com/go-clipper/clipper2/port.
package boolean

import "github.com/piwi3910/areapocket/internal/geom"

// Engine is the external boolean area engine the pocketing core
// delegates its polygon math to. All four operations treat their
// curve-list arguments as an even-odd filled planar region (outers
// union holes) and none mutate their inputs; Offset, Intersect and
// Subtract return a fresh curve list.
type Engine interface {
	// Offset inflates (delta>0) or deflates (delta<0) every boundary by
	// delta, dropping regions that collapse entirely.
	Offset(curves []geom.Curve, delta float64, units, accuracy float64) []geom.Curve

	// Intersect returns a ∩ b.
	Intersect(a, b []geom.Curve, units, accuracy float64) []geom.Curve

	// Subtract returns a ∖ b.
	Subtract(a, b []geom.Curve, units, accuracy float64) []geom.Curve

	// HolesLinked reports whether curves represents holes stitched to
	// their outers by zero-width bridges (a single self-intersecting
	// curve per region) rather than separate outer/hole curves.
	HolesLinked(curves []geom.Curve, units float64) bool
}
