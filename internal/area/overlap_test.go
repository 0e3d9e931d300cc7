package area

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/piwi3910/areapocket/internal/boolean"
	"github.com/piwi3910/areapocket/internal/geom"
)

func TestOverlap(t *testing.T) {
	engine := boolean.ClipperEngine{}

	cases := []struct {
		name     string
		a1, a2   geom.Curve
		expected OverlapType
	}{
		{
			name:     "identical areas are Inside",
			a1:       square(0, 0, 10, 10),
			a2:       square(0, 0, 10, 10),
			expected: Inside,
		},
		{
			name:     "a1 strictly inside a2",
			a1:       square(2, 2, 4, 4),
			a2:       square(0, 0, 10, 10),
			expected: Inside,
		},
		{
			name:     "a1 strictly contains a2",
			a1:       square(0, 0, 10, 10),
			a2:       square(2, 2, 4, 4),
			expected: Outside,
		},
		{
			name:     "disjoint squares are Siblings",
			a1:       square(0, 0, 2, 2),
			a2:       square(5, 5, 7, 7),
			expected: Siblings,
		},
		{
			name:     "partially overlapping squares are Crossing",
			a1:       square(0, 0, 4, 4),
			a2:       square(2, 2, 6, 6),
			expected: Crossing,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a1 := &Area{Engine: engine, Curves: []geom.Curve{tc.a1}}
			a2 := &Area{Engine: engine, Curves: []geom.Curve{tc.a2}}
			assert.Equal(t, tc.expected, Overlap(a1, a2, 1, 0.001))
		})
	}
}

func TestOverlapCurvesMatchesOverlap(t *testing.T) {
	engine := boolean.ClipperEngine{}
	c1 := square(0, 0, 10, 10)
	c2 := square(2, 2, 4, 4)

	assert.Equal(t, Inside, OverlapCurves(engine, c2, c1, 1, 0.001))
	assert.Equal(t, Outside, OverlapCurves(engine, c1, c2, 1, 0.001))
}

func TestOverlapTypeString(t *testing.T) {
	assert.Equal(t, "Inside", Inside.String())
	assert.Equal(t, "Outside", Outside.String())
	assert.Equal(t, "Siblings", Siblings.String())
	assert.Equal(t, "Crossing", Crossing.String())
}
