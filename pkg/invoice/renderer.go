package invoice

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
)

//go:generate mockery --name Renderer --output mocks --outpkg mocks

// Renderer turns a receipt into a downloadable document.
type Renderer interface {
	Render(receipt Receipt) ([]byte, error)
}

const (
	cellWidth  = 200
	cellHeight = 10
	fontFamily = "Arial"
)

// PDFRenderer renders receipts as single page A4 PDFs.
type PDFRenderer struct{}

// NewPDFRenderer creates a new PDFRenderer.
func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

// Make sure we conform to the interface
var _ Renderer = (*PDFRenderer)(nil)

// Render lays out receipt.Lines() on one page and returns the PDF bytes.
func (p *PDFRenderer) Render(receipt Receipt) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(Title, true)
	pdf.SetAuthor("Grupo 7", true)

	// Core fonts are cp1252; translate accented text such as "Autorización".
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()
	for _, line := range receipt.Lines() {
		pdf.SetFont(fontFamily, line.Style, line.Size)
		pdf.CellFormat(cellWidth, cellHeight, tr(line.Text), "", 1, line.Align, false, 0, "")
		if line.Gap > 0 {
			pdf.Ln(line.Gap)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render invoice PDF: %w", err)
	}

	return buf.Bytes(), nil
}
