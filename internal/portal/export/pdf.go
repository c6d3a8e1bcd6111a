package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/Vijaykarthik1/tnstc-leave/internal/domain/leave"
)

// Relative column widths, in ReportColumns order.
var pdfColumnWeights = []float64{1.3, 1.6, 1.5, 1.1, 2.0, 1.1, 0.9}

// The core fonts only cover cp1252, which has no arrow glyph.
var pdfReplacer = strings.NewReplacer("→", "->")

// PDF writes rows as a landscape A4 document holding one table.
func PDF(w io.Writer, rows []leave.LeaveRequest) error {
	pdf := gofpdf.New("L", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	text := func(s string) string {
		return tr(pdfReplacer.Replace(s))
	}

	pdf.SetMargins(10, 12, 10)
	pdf.SetAutoPageBreak(false, 12)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, Title, "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pageW, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	widths := columnWidths(pageW - left - right)

	header := Header()
	printHeader := func() {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.SetFillColor(230, 230, 230)
		for i, h := range header {
			pdf.CellFormat(widths[i], 8, text(h), "1", 0, "L", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Helvetica", "", 9)
	}

	printHeader()
	for _, row := range Project(rows) {
		_, pageH := pdf.GetPageSize()
		_, _, _, bottom := pdf.GetMargins()
		if pdf.GetY()+7 > pageH-bottom {
			pdf.AddPage()
			printHeader()
		}
		for i, cell := range row {
			pdf.CellFormat(widths[i], 7, text(truncate(cell, widths[i])), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

func columnWidths(total float64) []float64 {
	var sum float64
	for _, wgt := range pdfColumnWeights {
		sum += wgt
	}
	out := make([]float64, len(pdfColumnWeights))
	for i, wgt := range pdfColumnWeights {
		out[i] = total * wgt / sum
	}
	return out
}

// truncate keeps a cell on one line at roughly 2mm per character.
func truncate(s string, width float64) string {
	limit := int(width / 2)
	r := []rune(s)
	if limit < 4 || len(r) <= limit {
		return s
	}
	return string(r[:limit-3]) + "..."
}
