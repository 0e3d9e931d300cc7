// Package report generates the end-of-job PDF summary (with an embedded
// QR code) and the XLSX contour manifest.
package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"math"
	"time"

	"github.com/go-pdf/fpdf"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/piwi3910/areapocket/internal/geom"
	"github.com/piwi3910/areapocket/internal/pocket"
)

// Page layout constants, A4 portrait in mm.
const (
	pageWidth    = 210.0
	pageHeight   = 297.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	qrSize       = 30.0
)

// Summary is the job metadata encoded both into the PDF's text and into
// its QR code, so a phone scan recovers the same facts a human reads.
type Summary struct {
	JobID        string    `json:"job_id"`
	SourceFile   string    `json:"source_file"`
	ToolRadius   float64   `json:"tool_radius_mm"`
	Stepover     float64   `json:"stepover_mm"`
	Mode         string    `json:"mode"`
	ContourCount int       `json:"contour_count"`
	TotalLength  float64   `json:"total_path_length_mm"`
	GeneratedAt  time.Time `json:"generated_at"`
}

// NewSummary builds a Summary from a completed pocketing run.
func NewSummary(jobID, sourceFile string, params pocket.Params, paths []geom.Curve) Summary {
	var length float64
	for _, c := range paths {
		length += curveLength(c)
	}
	return Summary{
		JobID:        jobID,
		SourceFile:   sourceFile,
		ToolRadius:   params.ToolRadius,
		Stepover:     params.Stepover,
		Mode:         params.Mode.String(),
		ContourCount: len(paths),
		TotalLength:  length,
		GeneratedAt:  time.Now(),
	}
}

func curveLength(c geom.Curve) float64 {
	var spans []geom.Span
	c.GetSpans(&spans)
	var total float64
	for _, sp := range spans {
		if sp.V.IsArc() {
			r := sp.Start.Dist(sp.V.C)
			total += r * arcSweep(sp)
		} else {
			total += sp.Start.Dist(sp.V.P)
		}
	}
	return total
}

func arcSweep(sp geom.Span) float64 {
	a0 := angle(sp.Start, sp.V.C)
	a1 := angle(sp.V.P, sp.V.C)
	sweep := a1 - a0
	ccw := sp.V.Type == geom.CCWArc
	const twoPi = 2 * 3.141592653589793
	if ccw && sweep <= 0 {
		sweep += twoPi
	}
	if !ccw && sweep >= 0 {
		sweep -= twoPi
	}
	if sweep < 0 {
		sweep = -sweep
	}
	return sweep
}

func angle(p, center geom.Point) float64 {
	return math.Atan2(p.Y-center.Y, p.X-center.X)
}

// WritePDF renders a single-page job report: a stats block, an embedded
// preview raster (if supplied), and a QR code encoding the summary as
// JSON, so a phone scan recovers the same facts a human reads.
func WritePDF(path string, s Summary, preview *image.RGBA) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 10, "Pocketing Job Report", "", 0, "L", false, 0, "")

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Line(marginLeft, marginTop+12, pageWidth-marginRight, marginTop+12)

	y := marginTop + 18
	pdf.SetFont("Helvetica", "", 10)
	rows := []struct{ label, value string }{
		{"Job ID", s.JobID},
		{"Source file", s.SourceFile},
		{"Mode", s.Mode},
		{"Tool radius", fmt.Sprintf("%.3f mm", s.ToolRadius)},
		{"Stepover", fmt.Sprintf("%.3f mm", s.Stepover)},
		{"Contours emitted", fmt.Sprintf("%d", s.ContourCount)},
		{"Total path length", fmt.Sprintf("%.1f mm", s.TotalLength)},
		{"Generated", s.GeneratedAt.Format(time.RFC3339)},
	}
	for _, r := range rows {
		pdf.SetXY(marginLeft, y)
		pdf.CellFormat(50, 6, r.label+":", "", 0, "L", false, 0, "")
		pdf.CellFormat(120, 6, r.value, "", 0, "L", false, 0, "")
		y += 7
	}
	y += 6

	if preview != nil {
		var buf bytes.Buffer
		if err := png.Encode(&buf, preview); err == nil {
			pdf.RegisterImageOptionsReader("preview", fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(buf.Bytes()))
			previewW := pageWidth - marginLeft - marginRight
			pdf.ImageOptions("preview", marginLeft, y, previewW, 0, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")
			y += previewW*float64(preview.Bounds().Dy())/float64(preview.Bounds().Dx()) + 6
		}
	}

	qrData, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("report: marshal summary: %w", err)
	}
	qrPNG, err := qrcode.Encode(string(qrData), qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("report: encode qr: %w", err)
	}
	pdf.RegisterImageOptionsReader("qr", fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qrPNG))
	pdf.ImageOptions("qr", marginLeft, pageHeight-marginBottom-qrSize, qrSize, qrSize, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("report: write %s: %w", path, err)
	}
	return nil
}
