package pocket

import "fmt"

// Mode selects exactly one pocketing strategy, matched in the driver,
// in place of a set of independent boolean flags.
type Mode int

const (
	// ModeSpiral recursively offsets inward, emitting nested contours.
	ModeSpiral Mode = iota
	// ModeZigZag sweeps parallel scan lines across the area.
	ModeZigZag
	// ModeSingleOffset emits the tool-radius-offset boundary verbatim,
	// with no interior clearing.
	ModeSingleOffset
	// ModeZigZagThenSingleOffset runs the zig-zag engine and also
	// appends the offset boundary, for a finishing pass after roughing.
	ModeZigZagThenSingleOffset
)

func (m Mode) String() string {
	switch m {
	case ModeSpiral:
		return "Spiral"
	case ModeZigZag:
		return "ZigZag"
	case ModeSingleOffset:
		return "SingleOffset"
	case ModeZigZagThenSingleOffset:
		return "ZigZagThenSingleOffset"
	default:
		return "Unknown"
	}
}

// hasZigZag reports whether m dispatches to the zig-zag engine.
func (m Mode) hasZigZag() bool {
	return m == ModeZigZag || m == ModeZigZagThenSingleOffset
}

// hasSingleOffset reports whether m appends the offset boundary verbatim.
func (m Mode) hasSingleOffset() bool {
	return m == ModeSingleOffset || m == ModeZigZagThenSingleOffset
}

// ParseMode maps a job config's mode string onto a Mode, case-sensitive
// against the same names String returns.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "Spiral":
		return ModeSpiral, nil
	case "ZigZag":
		return ModeZigZag, nil
	case "SingleOffset":
		return ModeSingleOffset, nil
	case "ZigZagThenSingleOffset":
		return ModeZigZagThenSingleOffset, nil
	default:
		return 0, fmt.Errorf("pocket: unknown mode %q", s)
	}
}
