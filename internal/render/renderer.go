package render

import (
	"bytes"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

const (
	titleFontSize = 16.0
	bodyFontSize  = 11.0
	titleLineH    = 9.0
	bodyLineH     = 6.0
	bottomMargin  = 15.0
)

// Document is the projection rendered into a PDF: a title line followed by
// the stored CV body, one stored line per row.
type Document struct {
	Title string
	Body  string
}

// PDF renders the document as paginated A4 bytes. Pages break automatically
// when the body overflows the bottom margin.
func PDF(doc Document) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, bottomMargin)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", titleFontSize)
	pdf.MultiCell(0, titleLineH, doc.Title, "", "L", false)
	pdf.Ln(3)

	pdf.SetFont("Helvetica", "", bodyFontSize)
	for _, line := range strings.Split(doc.Body, "\n") {
		if strings.TrimSpace(line) == "" {
			pdf.Ln(bodyLineH / 2)
			continue
		}
		pdf.MultiCell(0, bodyLineH, line, "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
