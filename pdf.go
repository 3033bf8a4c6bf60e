package main

import (
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

const (
	pdfPageWidth  = 210 // A4 width in mm
	pdfPageHeight = 297 // A4 height in mm
	pdfMargin     = 10  // margin in mm
	pdfLineHeight = 5   // line height in mm
	pdfFontSize   = 9
)

// The core PDF fonts cover cp1252 only, so the box-drawing connectors are
// swapped for their ASCII forms on the page.
var pdfGlyphs = strings.NewReplacer(
	"├── ", "|-- ",
	"└── ", "`-- ",
	"│   ", "|   ",
)

// writePDF typesets the report in Courier on A4 pages and saves it to
// outputPath.
func writePDF(report, outputPath string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(true, pdfMargin)
	pdf.AddPage()

	pdf.SetFont("Courier", "", pdfFontSize)
	pdf.SetTextColor(0, 0, 0)

	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.MultiCell(pdfPageWidth-2*pdfMargin, pdfLineHeight, tr(pdfGlyphs.Replace(report)), "", "L", false)

	if err := pdf.OutputFileAndClose(outputPath); err != nil {
		return fmt.Errorf("save PDF to %s: %w", outputPath, err)
	}
	return nil
}
