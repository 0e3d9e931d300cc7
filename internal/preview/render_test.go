package preview

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/areapocket/internal/geom"
)

func square(x0, y0, x1, y1 float64) geom.Curve {
	c := geom.NewCurve(geom.Point{X: x0, Y: y0})
	c.LineTo(geom.Point{X: x1, Y: y0})
	c.LineTo(geom.Point{X: x1, Y: y1})
	c.LineTo(geom.Point{X: x0, Y: y1})
	c.LineTo(geom.Point{X: x0, Y: y0})
	return c
}

func TestRenderProducesNonEmptyImage(t *testing.T) {
	boundary := []geom.Curve{square(0, 0, 10, 10)}
	path := []geom.Curve{square(1, 1, 9, 9)}

	img := Render(boundary, path, 200, 200)
	require.NotNil(t, img)
	assert.Equal(t, 200, img.Bounds().Dx())
	assert.Equal(t, 200, img.Bounds().Dy())

	var sawNonWhite bool
	for y := 0; y < 200 && !sawNonWhite; y++ {
		for x := 0; x < 200; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			if color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)} != (color.RGBA{R: 255, G: 255, B: 255}) {
				sawNonWhite = true
				break
			}
		}
	}
	assert.True(t, sawNonWhite, "expected at least one drawn pixel")
}

func TestRenderHandlesEmptyInput(t *testing.T) {
	img := Render(nil, nil, 64, 64)
	require.NotNil(t, img)
	assert.Equal(t, 64, img.Bounds().Dx())
}

func TestFitTransformPreservesAspectRatio(t *testing.T) {
	box := geom.NewBox()
	box.Insert(geom.Point{X: 0, Y: 0})
	box.Insert(geom.Point{X: 10, Y: 5})

	xf, yf := fitTransform(box, 200, 200)
	x0, y0 := xf(0), yf(0)
	x1, y1 := xf(10), yf(5)
	// wider axis (x, 10 units) should map to a larger pixel span than
	// the shorter axis (y, 5 units) once both are scaled uniformly.
	assert.Greater(t, x1-x0, y0-y1)
}
