package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/Vijaykarthik1/tnstc-leave/internal/domain/leave"
	"github.com/Vijaykarthik1/tnstc-leave/internal/portal/listing"
)

func sampleRows(n int) []leave.LeaveRequest {
	rows := make([]leave.LeaveRequest, n)
	for i := range rows {
		rows[i] = leave.LeaveRequest{
			ID:        string(rune('a' + i%26)),
			FullName:  "Murugan",
			RouteFrom: "Madurai",
			RouteTo:   "Trichy",
			FromDate:  time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC),
			ToDate:    time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC),
			LeaveType: leave.LeaveTypeCasual,
			Status:    leave.StatusPending,
		}
	}
	return rows
}

func TestProject(t *testing.T) {
	rows := sampleRows(1)
	rows = append(rows, leave.LeaveRequest{
		FullName:  "Selvi",
		RouteFrom: "Salem",
		RouteTo:   "Erode",
		FromDate:  time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
		ToDate:    time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
		LeaveType: leave.LeaveTypeMedical,
		Reason:    "Fever",
		Status:    leave.StatusApproved,
		Reliever:  "Ravi Kumar",
	})

	got := Project(rows)
	require.Len(t, got, 2)
	assert.Equal(t, Row{"Murugan", "Madurai → Trichy", "02/01/2025 - 05/01/2025", "Casual Leave", "—", "—", "Pending"}, got[0])
	assert.Equal(t, Row{"Selvi", "Salem → Erode", "01/02/2025 - 01/02/2025", "Medical Leave", "Fever", "Ravi Kumar", "Approved"}, got[1])
	assert.Equal(t, Row{"Name", "Route", "Dates", "Leave Type", "Reason", "Reliever", "Status"}, Header())
}

func TestSpreadsheet_RowCountMatchesFilteredRows(t *testing.T) {
	all := sampleRows(12)
	all[3].Status = leave.StatusRejected
	all[7].Status = leave.StatusRejected
	filtered := listing.Apply(all, listing.Filter{Status: leave.StatusRejected})
	require.Len(t, filtered, 2)

	var buf bytes.Buffer
	require.NoError(t, Spreadsheet(&buf, filtered))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SheetName}, f.GetSheetList())
	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	require.Len(t, rows, len(filtered)+1)
	assert.Equal(t, []string(Header()), rows[0])
	assert.Equal(t, "Rejected", rows[1][6])
	assert.Equal(t, "—", rows[1][4])
}

func TestSpreadsheet_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Spreadsheet(&buf, nil))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestPDF(t *testing.T) {
	for _, n := range []int{0, 3, 60} {
		var buf bytes.Buffer
		require.NoError(t, PDF(&buf, sampleRows(n)))
		assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")), "n=%d", n)
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 40))
	assert.Equal(t, "abcdefg...", truncate("abcdefghijklmnop", 20))
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("Excel")
	require.NoError(t, err)
	assert.Equal(t, FormatSpreadsheet, f)
	assert.Equal(t, "leave-report.xlsx", f.FileName())
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", f.ContentType())

	f, err = ParseFormat("pdf")
	require.NoError(t, err)
	assert.Equal(t, "leave-report.pdf", f.FileName())
	assert.Equal(t, "application/pdf", f.ContentType())

	_, err = ParseFormat("csv")
	assert.Error(t, err)
	assert.Error(t, Write(&bytes.Buffer{}, Format("csv"), nil))
}

func TestPDFReplacer_Route(t *testing.T) {
	route := listing.ColumnRoute.Value(sampleRows(1)[0])
	assert.Equal(t, "Madurai → Trichy", route)
	assert.Equal(t, "Madurai -> Trichy", pdfReplacer.Replace(route))
}
