// Package render — PDF renderer.
// Lays out the media summary of a page as an A4 PDF using gofpdf:
// title, source line, then one heading per media field and one line per record.
package render

import (
	"bytes"

	"github.com/jung-kurt/gofpdf"

	"github.com/gaurav-prasanna/ogmedia/core"
)

// PDFRenderer renders the media summary as a PDF document.
type PDFRenderer struct{}

// NewPDFRenderer creates a PDFRenderer.
func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

// Render converts the page summary into PDF bytes.
func (r *PDFRenderer) Render(page core.PageJSON) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	if title := pageTitle(page); title != "" {
		pdf.SetFont("Helvetica", "B", 18)
		pdf.MultiCell(0, 8, title, "", "L", false)
		pdf.Ln(4)
	}

	pdf.SetFont("Helvetica", "I", 9)
	pdf.SetTextColor(100, 100, 100)
	pdf.MultiCell(0, 5, "Source: "+page.Metadata.URL, "", "L", false)
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(6)

	sections := mediaSections(page.Meta)
	if len(sections) == 0 {
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, 5, "No media found.", "", "L", false)
	}

	for _, s := range sections {
		renderHeading(pdf, s.Title, 2)
		for _, rec := range s.Records {
			u := recordURL(rec)
			if u == "" {
				u = "(no url)"
			}
			pdf.SetFont("Helvetica", "", 10)
			pdf.MultiCell(0, 5, "• "+u, "", "L", false)

			if d := recordDetails(rec); d != "" {
				pdf.SetFont("Courier", "", 9)
				pdf.SetFillColor(245, 245, 245)
				pdf.MultiCell(0, 4.5, "  "+d, "", "L", true)
			}
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Extension returns the file extension for PDF output.
func (r *PDFRenderer) Extension() string {
	return ".pdf"
}

// renderHeading sets the font size based on heading level and writes text.
func renderHeading(pdf *gofpdf.Fpdf, text string, level int) {
	sizes := map[int]float64{1: 18, 2: 15, 3: 13, 4: 12, 5: 11, 6: 10}
	size, ok := sizes[level]
	if !ok {
		size = 10
	}
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", size)
	pdf.MultiCell(0, size*0.6, text, "", "L", false)
	pdf.Ln(2)
}
