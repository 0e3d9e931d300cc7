package report

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/areapocket/internal/geom"
	"github.com/piwi3910/areapocket/internal/pocket"
)

func square(x0, y0, x1, y1 float64) geom.Curve {
	c := geom.NewCurve(geom.Point{X: x0, Y: y0})
	c.LineTo(geom.Point{X: x1, Y: y0})
	c.LineTo(geom.Point{X: x1, Y: y1})
	c.LineTo(geom.Point{X: x0, Y: y1})
	c.LineTo(geom.Point{X: x0, Y: y0})
	return c
}

func TestCurveLengthStraightSquare(t *testing.T) {
	c := square(0, 0, 2, 2)
	assert.InDelta(t, 8.0, curveLength(c), 1e-9)
}

func TestCurveLengthSemicircle(t *testing.T) {
	center := geom.Point{X: 0, Y: 0}
	c := geom.NewCurve(geom.Point{X: 1, Y: 0})
	c.ArcTo(geom.Point{X: -1, Y: 0}, center, true)

	assert.InDelta(t, math.Pi, curveLength(c), 1e-6)
}

func TestNewSummarySumsLengthAcrossPaths(t *testing.T) {
	paths := []geom.Curve{square(0, 0, 1, 1), square(5, 5, 6, 6)}
	s := NewSummary("job-1", "part.dxf", pocket.Params{ToolRadius: 0.1, Stepover: 0.2, Mode: pocket.ModeZigZag}, paths)

	assert.Equal(t, "job-1", s.JobID)
	assert.Equal(t, 2, s.ContourCount)
	assert.InDelta(t, 8.0, s.TotalLength, 1e-9)
	assert.Equal(t, "ZigZag", s.Mode)
}

func TestWritePDFCreatesNonEmptyFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "job.pdf")

	s := NewSummary("job-1", "part.dxf", pocket.Params{ToolRadius: 0.1, Mode: pocket.ModeSingleOffset}, nil)
	err := WritePDF(path, s, nil)
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(200))
}
