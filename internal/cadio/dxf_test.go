package cadio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/areapocket/internal/geom"
)

func TestBulgeRoundTrip(t *testing.T) {
	p0 := geom.Point{X: 0, Y: 0}
	p1 := geom.Point{X: 2, Y: 0}

	center, ccw := bulgeCenter(p0, p1, 1.0) // bulge=1 is a semicircle
	assert.True(t, ccw)
	assert.InDelta(t, 1, center.X, 1e-6)
	assert.InDelta(t, 0, center.Y, 1e-6)

	got := arcBulge(p0, p1, center, geom.CCWArc)
	assert.InDelta(t, 1.0, got, 1e-6)
}

func TestBulgeNegativeIsClockwise(t *testing.T) {
	p0 := geom.Point{X: 0, Y: 0}
	p1 := geom.Point{X: 2, Y: 0}

	center, ccw := bulgeCenter(p0, p1, -1.0)
	assert.False(t, ccw)

	got := arcBulge(p0, p1, center, geom.CWArc)
	assert.InDelta(t, -1.0, got, 1e-6)
}

func TestChainEdgesStitchesLooseLines(t *testing.T) {
	edges := []edge{
		{start: geom.Point{X: 0, Y: 0}, end: geom.Point{X: 1, Y: 0}},
		{start: geom.Point{X: 1, Y: 1}, end: geom.Point{X: 1, Y: 0}}, // reversed
		{start: geom.Point{X: 1, Y: 1}, end: geom.Point{X: 0, Y: 1}},
		{start: geom.Point{X: 0, Y: 0}, end: geom.Point{X: 0, Y: 1}}, // reversed, closes loop
	}

	curves := chainEdges(edges, 0.01)
	require.Len(t, curves, 1)
	assert.InDelta(t, 1.0, curves[0].GetArea(), 1e-6)
}

func TestChainEdgesKeepsArcDirectionWhenReversed(t *testing.T) {
	center := geom.Point{X: 1, Y: 0}
	edges := []edge{
		{start: geom.Point{X: 0, Y: 0}, end: geom.Point{X: 2, Y: 0}, isArc: true, center: center, ccw: true},
		{start: geom.Point{X: 0, Y: 0}, end: geom.Point{X: 2, Y: 0}, isArc: false},
	}
	// A half-circle arc from (0,0) to (2,0) CCW, closed by a straight
	// line back from (2,0) to (0,0): the line edge's recorded
	// start/end equal the arc's, so it must be traversed reversed.
	curves := chainEdges(edges, 0.01)
	require.Len(t, curves, 1)
	assert.Greater(t, len(curves[0]), 2)
	assert.Equal(t, geom.CCWArc, curves[0][1].Type)
}
