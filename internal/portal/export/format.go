package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/Vijaykarthik1/tnstc-leave/internal/domain/leave"
)

// Format is a report file format.
type Format string

const (
	FormatSpreadsheet Format = "xlsx"
	FormatPDF         Format = "pdf"
)

// ParseFormat accepts xlsx, excel, pdf, case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "xlsx", "excel":
		return FormatSpreadsheet, nil
	case "pdf":
		return FormatPDF, nil
	}
	return "", fmt.Errorf("unknown report format %q", s)
}

// FileName is the default download name for f.
func (f Format) FileName() string {
	if f == FormatPDF {
		return PDFName
	}
	return SpreadsheetName
}

func (f Format) ContentType() string {
	if f == FormatPDF {
		return "application/pdf"
	}
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

// Write renders rows in format.
func Write(w io.Writer, format Format, rows []leave.LeaveRequest) error {
	switch format {
	case FormatSpreadsheet:
		return Spreadsheet(w, rows)
	case FormatPDF:
		return PDF(w, rows)
	}
	return fmt.Errorf("unknown report format %q", format)
}
