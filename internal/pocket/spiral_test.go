package pocket

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/areapocket/internal/area"
	"github.com/piwi3910/areapocket/internal/geom"
)

// TestSpiralUnitSquare exercises S1: a unit square, tool_radius=0.1,
// stepover=0.2, extra_offset=0, from_center=false collapses after two
// inward offsets (0.1, 0.3 insets); the third (0.5) consumes the whole
// square and is dropped.
func TestSpiralUnitSquare(t *testing.T) {
	a := &area.Area{Engine: rectEngine{}, Curves: []geom.Curve{rect(0, 0, 1, 1)}}
	ctx := NewContext(1, 0.01)
	params := Params{ToolRadius: 0.1, Stepover: 0.2, Mode: ModeSpiral}

	out := MakePocket(ctx, a, params)
	require.Len(t, out, 2)
	assert.InDelta(t, 0.8*0.8, out[0].GetArea(), 1e-9)
	assert.InDelta(t, 0.4*0.4, out[1].GetArea(), 1e-9)
}

func TestSpiralFromCenterReversesOrder(t *testing.T) {
	a := &area.Area{Engine: rectEngine{}, Curves: []geom.Curve{rect(0, 0, 1, 1)}}
	ctx := NewContext(1, 0.01)
	params := Params{ToolRadius: 0.1, Stepover: 0.2, Mode: ModeSpiral, FromCenter: true}

	out := MakePocket(ctx, a, params)
	require.Len(t, out, 2)
	assert.InDelta(t, 0.4*0.4, out[0].GetArea(), 1e-9)
	assert.InDelta(t, 0.8*0.8, out[1].GetArea(), 1e-9)
}

func TestSpiralCollapsesImmediatelyWhenToolTooLarge(t *testing.T) {
	a := &area.Area{Engine: rectEngine{}, Curves: []geom.Curve{rect(0, 0, 1, 1)}}
	ctx := NewContext(1, 0.01)
	params := Params{ToolRadius: 0.6, Stepover: 0.2, Mode: ModeSpiral}

	out := MakePocket(ctx, a, params)
	assert.Empty(t, out)
}
