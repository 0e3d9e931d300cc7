// Package pocket implements the zig-zag engine, the spiral engine and the
// pocket driver: turning a planar area into an ordered tool-path that
// clears it down to the tool radius.
package pocket

// Context bundles the tunables and progress/cancellation state a
// pocketing run needs, rather than keeping them as process-wide statics.
// Passing one explicitly removes the single-threaded restriction:
// distinct Contexts may run concurrently, though a single Context is
// still non-reentrant — its ProcessingDone/PleaseAbort fields are plain
// fields, not synchronized, and are meant as a simple progress/abort
// side channel rather than a concurrency primitive.
type Context struct {
	// Units scales every tolerance as 0.002/Units; 0 is treated as 1.
	Units float64
	// Accuracy bounds arc-fitting and flattening error.
	Accuracy float64
	// FitArcs, when true, re-fits emitted polylines back into arcs.
	FitArcs bool

	// ProcessingDone tracks progress in [0,100], advanced as work
	// completes: +50 after Split, +step per zig-zag band, +0.2*budget
	// after a zig-zag reorder.
	ProcessingDone float64
	// PleaseAbort is polled at the head of every band/area loop and
	// after Split and Reorder. Once observed, the current call returns
	// promptly with whatever partial output it has accumulated.
	PleaseAbort bool

	// singleAreaProcessingLength is the per-area share of the 100%
	// budget, recomputed on each descent into a sub-area.
	singleAreaProcessingLength float64
}

// NewContext returns a Context with the given units and accuracy; a units
// of 0 is replaced by 1.
func NewContext(units, accuracy float64) *Context {
	if units == 0 {
		units = 1
	}
	return &Context{Units: units, Accuracy: accuracy}
}

// advance adds delta (already expressed in percentage points) to
// ProcessingDone, capped at 100.
func (c *Context) advance(delta float64) {
	c.ProcessingDone += delta
	if c.ProcessingDone > 100 {
		c.ProcessingDone = 100
	}
}

// aborted reports PleaseAbort, the single poll point every loop in this
// package consults at its head.
func (c *Context) aborted() bool {
	return c.PleaseAbort
}

// SetSingleAreaBudget records the current sub-area's share of the 100%
// progress budget, recomputed by the driver on each descent into a
// sub-area.
func (c *Context) SetSingleAreaBudget(v float64) {
	c.singleAreaProcessingLength = v
}

func (c *Context) singleAreaBudget() float64 {
	return c.singleAreaProcessingLength
}
