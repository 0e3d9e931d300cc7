package area

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/areapocket/internal/boolean"
)

func TestSplitGroupsOuterAndHole(t *testing.T) {
	outer := square(0, 0, 10, 10)
	hole := square(2, 2, 4, 4)

	a := &Area{Engine: boolean.ClipperEngine{}}
	a.Curves = append(a.Curves, hole, outer)

	subs := a.Split(1, 0.01)
	require.Len(t, subs, 1)
	require.Len(t, subs[0].Curves, 2)
	assert.False(t, subs[0].Curves[0].IsClockwise())
	assert.True(t, subs[0].Curves[1].IsClockwise())
}

func TestSplitTwoDisjointOuters(t *testing.T) {
	a := &Area{Engine: boolean.ClipperEngine{}}
	a.Curves = append(a.Curves, square(0, 0, 5, 5), square(10, 10, 15, 15))

	subs := a.Split(1, 0.01)
	require.Len(t, subs, 2)
	for _, s := range subs {
		require.Len(t, s.Curves, 1)
		assert.False(t, s.Curves[0].IsClockwise())
	}
}
