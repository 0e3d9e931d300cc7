package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/piwi3910/areapocket/internal/area"
	"github.com/piwi3910/areapocket/internal/boolean"
	"github.com/piwi3910/areapocket/internal/geom"
)

const manifestSheet = "Contours"

var manifestHeaders = []string{"Index", "Vertices", "Arcs", "Closed", "Area (mm^2)", "Length (mm)", "Vs Boundary"}

// WriteManifest writes one row per emitted contour/chain to an XLSX
// workbook. For
// every closed contour, "Vs Boundary" classifies its relationship to the
// original boundary curves (Inside/Outside/Siblings/Crossing); open
// chains (zig-zag scan paths) leave the column blank since they aren't
// closed regions a boolean engine can classify.
func WriteManifest(path string, curves []geom.Curve, boundary []geom.Curve, engine boolean.Engine, units, accuracy float64) error {
	f := excelize.NewFile()
	defer f.Close()

	if _, err := f.NewSheet(manifestSheet); err != nil {
		return fmt.Errorf("report: create sheet: %w", err)
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("report: delete default sheet: %w", err)
	}

	for col, header := range manifestHeaders {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(manifestSheet, cell, header)
	}

	boundaryArea := &area.Area{Engine: engine, Curves: boundary}
	for i, c := range curves {
		row := i + 2
		arcs := 0
		for _, v := range c {
			if v.IsArc() {
				arcs++
			}
		}
		closed := c.IsClosed(1)
		vsBoundary := ""
		if closed && engine != nil && len(boundary) > 0 {
			contourArea := &area.Area{Engine: engine, Curves: []geom.Curve{c}}
			vsBoundary = area.Overlap(contourArea, boundaryArea, units, accuracy).String()
		}
		values := []interface{}{
			i + 1,
			len(c),
			arcs,
			closed,
			c.GetArea(),
			curveLength(c),
			vsBoundary,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			f.SetCellValue(manifestSheet, cell, v)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("report: write %s: %w", path, err)
	}
	return nil
}
