// Package preview rasterizes an area's boundary curves and a computed
// tool-path to a PNG, for inclusion in job reports. Grounded on
// gmlewis-go-gerber's viewer package, which uses the same gg.Context
// scale-to-fit-then-draw approach for vector geometry.
package preview

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"os"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"

	"github.com/piwi3910/areapocket/internal/geom"
)

// Colors for the boundary curves and the emitted tool-path, chosen to
// read clearly against the white background regardless of nesting depth.
var (
	boundaryColor = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	holeColor     = color.RGBA{R: 0x84, G: 0, B: 0, A: 255}
	pathColor     = color.RGBA{R: 0, G: 0x84, B: 0xc2, A: 255}
)

const margin = 0.08 // fraction of the smaller image dimension, reserved on each side

// Render rasterizes the boundary curves (outers black, holes dark red)
// and the tool-path curves (blue) into a w×h RGBA image, scaled and
// centered to fit every curve's combined bounding box.
func Render(boundary, path []geom.Curve, w, h int) *image.RGBA {
	box := geom.NewBox()
	for _, c := range boundary {
		box.InsertBox(c.Box())
	}
	for _, c := range path {
		box.InsertBox(c.Box())
	}
	if box.Empty() {
		box.Insert(geom.Point{})
		box.Insert(geom.Point{X: 1, Y: 1})
	}

	dc := gg.NewContext(w, h)
	dc.SetColor(color.White)
	dc.Clear()

	xf, yf := fitTransform(box, w, h)

	dc.SetLineWidth(1.5)
	for i, c := range boundary {
		if i > 0 && c.IsClockwise() {
			dc.SetColor(holeColor)
		} else {
			dc.SetColor(boundaryColor)
		}
		strokeCurve(dc, c, xf, yf)
	}

	dc.SetColor(pathColor)
	dc.SetLineWidth(1)
	dc.SetFontFace(basicfont.Face7x13)
	for i, c := range path {
		strokeCurve(dc, c, xf, yf)
		labelContour(dc, c, i, xf, yf)
	}

	return dc.Image().(*image.RGBA)
}

// labelContour draws the contour's 1-based index at its starting point,
// so a printed preview can be cross-referenced against the XLSX manifest
// (internal/report's "Index" column) row for row.
func labelContour(dc *gg.Context, c geom.Curve, i int, xf, yf func(float64) float64) {
	if len(c) == 0 {
		return
	}
	start := c.Start()
	dc.DrawString(fmt.Sprintf("%d", i+1), xf(start.X)+2, yf(start.Y)-2)
}

// RenderFile renders to path (PNG) the same way Render does.
func RenderFile(path string, boundary, pathCurves []geom.Curve, w, h int) error {
	img := Render(boundary, pathCurves, w, h)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("preview: create %s: %w", path, err)
	}
	defer f.Close()
	if err := gg.NewContextForImage(img).EncodePNG(f); err != nil {
		return fmt.Errorf("preview: encode %s: %w", path, err)
	}
	return nil
}

// fitTransform returns functions mapping model-space x/y to pixel-space,
// scaling uniformly to fit box within a margin-reduced w×h canvas and
// flipping y (image rows grow downward, model y grows upward).
func fitTransform(box geom.Box, w, h int) (xf, yf func(float64) float64) {
	usableW := float64(w) * (1 - 2*margin)
	usableH := float64(h) * (1 - 2*margin)

	scale := 1.0
	if box.Width() > 1e-9 {
		scale = usableW / box.Width()
	}
	if box.Height() > 1e-9 {
		if s := usableH / box.Height(); s < scale {
			scale = s
		}
	}

	offX := float64(w)*margin - box.Min.X*scale
	offY := float64(h)*margin + box.Max.Y*scale

	xf = func(x float64) float64 { return x*scale + offX }
	yf = func(y float64) float64 { return offY - y*scale }
	return xf, yf
}

// strokeCurve draws c's spans into dc, approximating arcs with short
// chords the way viewer.go resolves ArcT primitives to line segments.
func strokeCurve(dc *gg.Context, c geom.Curve, xf, yf func(float64) float64) {
	if len(c) == 0 {
		return
	}
	start := c.Start()
	dc.MoveTo(xf(start.X), yf(start.Y))

	var spans []geom.Span
	c.GetSpans(&spans)
	for _, sp := range spans {
		if !sp.V.IsArc() {
			dc.LineTo(xf(sp.V.P.X), yf(sp.V.P.Y))
			continue
		}
		for _, p := range arcPoints(sp) {
			dc.LineTo(xf(p.X), yf(p.Y))
		}
	}
	dc.Stroke()
}

// arcPoints flattens one arc span into a handful of chord points,
// resolution fixed at 24 segments per full turn like viewer.go's
// 0.1mm-per-segment approximation but scale-independent.
func arcPoints(sp geom.Span) []geom.Point {
	const segmentsPerTurn = 24
	center := sp.V.C
	r0 := sp.Start.Dist(center)
	if r0 < 1e-12 {
		return []geom.Point{sp.V.P}
	}

	a0 := angleOf(sp.Start, center)
	a1 := angleOf(sp.V.P, center)
	ccw := sp.V.Type == geom.CCWArc

	sweep := a1 - a0
	if ccw && sweep <= 0 {
		sweep += 2 * math.Pi
	}
	if !ccw && sweep >= 0 {
		sweep -= 2 * math.Pi
	}

	n := int(float64(segmentsPerTurn)*(math.Abs(sweep)/(2*math.Pi))) + 1
	out := make([]geom.Point, 0, n)
	for i := 1; i <= n; i++ {
		a := a0 + sweep*float64(i)/float64(n)
		out = append(out, geom.Point{
			X: center.X + r0*math.Cos(a),
			Y: center.Y + r0*math.Sin(a),
		})
	}
	return out
}

func angleOf(p, center geom.Point) float64 {
	return math.Atan2(p.Y-center.Y, p.X-center.X)
}
