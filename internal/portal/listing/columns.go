package listing

import (
	"strings"

	"github.com/Vijaykarthik1/tnstc-leave/internal/domain/leave"
)

// Placeholder is shown for optional fields that are not set.
const Placeholder = "—"

// DisplayDateLayout is how leave dates are shown and exported.
const DisplayDateLayout = "02/01/2006"

// Column is one field of a leave request as shown in a table or report.
type Column struct {
	Header string
	Value  func(leave.LeaveRequest) string
}

// OrPlaceholder returns s, or Placeholder when s is blank.
func OrPlaceholder(s string) string {
	if strings.TrimSpace(s) == "" {
		return Placeholder
	}
	return s
}

var (
	ColumnName = Column{Header: "Name", Value: func(r leave.LeaveRequest) string {
		return OrPlaceholder(r.FullName)
	}}
	ColumnRole = Column{Header: "Role", Value: func(r leave.LeaveRequest) string {
		return OrPlaceholder(string(r.Role))
	}}
	ColumnRoute = Column{Header: "Route", Value: func(r leave.LeaveRequest) string {
		return OrPlaceholder(r.RouteFrom) + " → " + OrPlaceholder(r.RouteTo)
	}}
	ColumnDates = Column{Header: "Dates", Value: FormatPeriod}
	ColumnType  = Column{Header: "Leave Type", Value: func(r leave.LeaveRequest) string {
		return OrPlaceholder(string(r.LeaveType))
	}}
	ColumnReason = Column{Header: "Reason", Value: func(r leave.LeaveRequest) string {
		return OrPlaceholder(r.Reason)
	}}
	ColumnReliever = Column{Header: "Reliever", Value: func(r leave.LeaveRequest) string {
		return OrPlaceholder(r.Reliever)
	}}
	ColumnStatus = Column{Header: "Status", Value: func(r leave.LeaveRequest) string {
		return OrPlaceholder(string(r.Status))
	}}
)

// ReportColumns is the fixed column set of exported reports.
var ReportColumns = []Column{
	ColumnName,
	ColumnRoute,
	ColumnDates,
	ColumnType,
	ColumnReason,
	ColumnReliever,
	ColumnStatus,
}

// FormatPeriod renders the leave period as "from - to".
func FormatPeriod(r leave.LeaveRequest) string {
	from, to := Placeholder, Placeholder
	if !r.FromDate.IsZero() {
		from = r.FromDate.Format(DisplayDateLayout)
	}
	if !r.ToDate.IsZero() {
		to = r.ToDate.Format(DisplayDateLayout)
	}
	return from + " - " + to
}

// Headers returns the header of each column.
func Headers(cols []Column) []string {
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = c.Header
	}
	return out
}

// Cells projects rows onto cols.
func Cells(rows []leave.LeaveRequest, cols []Column) [][]string {
	out := make([][]string, len(rows))
	for i, r := range rows {
		line := make([]string, len(cols))
		for j, c := range cols {
			line[j] = c.Value(r)
		}
		out[i] = line
	}
	return out
}
