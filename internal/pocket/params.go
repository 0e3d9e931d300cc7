package pocket

// Params is the immutable pocketing configuration for a single run.
type Params struct {
	// ToolRadius and ExtraOffset combine into one inward offset applied
	// before any mode-specific processing.
	ToolRadius  float64
	ExtraOffset float64
	// Stepover is the scan-line spacing (zig-zag) or the spiral step.
	Stepover float64
	Mode     Mode
	// ZigAngle is the CCW rotation, in degrees, applied before zig-zag
	// and reversed on emitted output.
	ZigAngle float64
	// FromCenter orders spiral contours inner-first (true) or
	// outer-first (false, the default).
	FromCenter bool
}

// offset is the combined inward offset applied before dispatching to
// any mode.
func (p Params) offset() float64 {
	return -(p.ToolRadius + p.ExtraOffset)
}
