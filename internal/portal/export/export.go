// Package export renders leave requests as downloadable reports.
package export

import (
	"github.com/Vijaykarthik1/tnstc-leave/internal/domain/leave"
	"github.com/Vijaykarthik1/tnstc-leave/internal/portal/listing"
)

const (
	Title           = "Leave Report"
	SheetName       = "Leave Report"
	SpreadsheetName = "leave-report.xlsx"
	PDFName         = "leave-report.pdf"
)

// Row is one report line in ReportColumns order.
type Row []string

// Header returns the report column headers.
func Header() Row {
	return listing.Headers(listing.ReportColumns)
}

// Project turns rows into report lines, one per request, in the given order.
func Project(rows []leave.LeaveRequest) []Row {
	cells := listing.Cells(rows, listing.ReportColumns)
	out := make([]Row, len(cells))
	for i, c := range cells {
		out[i] = c
	}
	return out
}
