package pocket

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContextAdvanceClampsAt100(t *testing.T) {
	ctx := NewContext(1, 0.01)
	ctx.advance(60)
	ctx.advance(60)
	assert.Equal(t, 100.0, ctx.ProcessingDone)
}

func TestContextDefaultsUnitsToOne(t *testing.T) {
	ctx := NewContext(0, 0.01)
	assert.Equal(t, 1.0, ctx.Units)
}

func TestParamsOffsetCombinesToolAndExtra(t *testing.T) {
	p := Params{ToolRadius: 0.2, ExtraOffset: 0.05}
	assert.InDelta(t, -0.25, p.offset(), 1e-9)
}
