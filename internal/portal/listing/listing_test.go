package listing

import (
	"fmt"
	"testing"
	"time"

	"github.com/Vijaykarthik1/tnstc-leave/internal/domain/leave"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(m time.Month, d int) time.Time {
	return time.Date(2025, m, d, 0, 0, 0, 0, time.UTC)
}

func sample() []leave.LeaveRequest {
	return []leave.LeaveRequest{
		{ID: "1", FullName: "Ravi Kumar", Status: leave.StatusPending, FromDate: day(3, 1), ToDate: day(3, 2)},
		{ID: "2", FullName: "Sathish M", Status: leave.StatusApproved, Reliever: "Ravi Kumar", FromDate: day(3, 10), ToDate: day(3, 12)},
		{ID: "3", FullName: "RAVINDRAN", Status: leave.StatusRejected, FromDate: day(4, 1), ToDate: day(4, 5)},
		{ID: "4", FullName: "Karthick S", Status: leave.StatusPending, FromDate: day(3, 30), ToDate: day(4, 2)},
		{ID: "5", FullName: "Arunraj D", Status: leave.StatusCancelled, FromDate: day(5, 1), ToDate: day(5, 1)},
	}
}

func ids(rows []leave.LeaveRequest) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.ID
	}
	return out
}

func TestFilter_Match(t *testing.T) {
	rows := sample()

	assert.Equal(t, []string{"1", "3"}, ids(Apply(rows, Filter{Name: "ravi"})), "case-insensitive substring")
	assert.Equal(t, []string{"1", "4"}, ids(Apply(rows, Filter{Status: leave.StatusPending})))
	assert.Equal(t, []string{"1", "2"}, ids(Apply(rows, Filter{From: day(3, 1), To: day(3, 31)})), "period must lie inside the range")
	assert.Equal(t, []string{"3", "4", "5"}, ids(Apply(rows, Filter{From: day(3, 15)})))
	assert.Equal(t, []string{"1", "2"}, ids(Apply(rows, Filter{To: day(3, 20)})))
	assert.Equal(t, []string{"1"}, ids(Apply(rows, Filter{Name: "RAVI", Status: leave.StatusPending})))
	assert.Equal(t, ids(rows), ids(Apply(rows, Filter{})), "zero filter matches all")
	assert.True(t, Filter{Name: "  "}.IsZero())
}

func TestFilter_ComposesAsConjunction(t *testing.T) {
	rows := sample()
	filters := []Filter{
		{},
		{Name: "ra"},
		{Name: "s"},
		{Status: leave.StatusPending},
		{Status: leave.StatusApproved},
		{From: day(3, 1)},
		{To: day(4, 2)},
		{Name: "k", From: day(3, 5), To: day(4, 30)},
	}

	for i, f1 := range filters {
		for j, f2 := range filters {
			t.Run(fmt.Sprintf("%d_%d", i, j), func(t *testing.T) {
				assert.Equal(t, ids(Apply(rows, f1, f2)), ids(Apply(Apply(rows, f1), f2)))
				assert.Equal(t, ids(Apply(rows, f1, f2)), ids(Apply(Apply(rows, f2), f1)))
			})
		}
	}
}

func TestParseStatus(t *testing.T) {
	s, ok := ParseStatus("approved")
	assert.True(t, ok)
	assert.Equal(t, leave.StatusApproved, s)

	s, ok = ParseStatus("All")
	assert.True(t, ok)
	assert.Empty(t, s)

	_, ok = ParseStatus("archived")
	assert.False(t, ok)
}

func manyRows(n int) []leave.LeaveRequest {
	rows := make([]leave.LeaveRequest, n)
	for i := range rows {
		rows[i] = leave.LeaveRequest{ID: fmt.Sprint(i + 1), FullName: fmt.Sprintf("Staff %d", i+1), Status: leave.StatusPending}
	}
	return rows
}

func TestView_Pagination(t *testing.T) {
	for _, n := range []int{0, 1, 9, 10, 11, 25, 100} {
		v := NewView(AdminConfig)
		v.Load(manyRows(n))

		want := (n + 9) / 10
		assert.Equal(t, want, v.TotalPages(), "n=%d", n)

		last := want
		if last < 1 {
			last = 1
		}
		assert.Equal(t, 1, v.SetPage(0), "n=%d page 0", n)
		assert.Equal(t, last, v.SetPage(want+1), "n=%d past end", n)
		assert.Equal(t, 1, v.SetPage(-5))
	}

	v := NewView(AdminConfig)
	v.Load(manyRows(25))
	assert.Len(t, v.PageRows(), 10)
	v.SetPage(3)
	assert.Equal(t, []string{"21", "22", "23", "24", "25"}, ids(v.PageRows()))
	assert.Equal(t, 3, v.NextPage())
	assert.Equal(t, 2, v.PrevPage())
}

func TestView_FilterResetsPage(t *testing.T) {
	v := NewView(AdminConfig)
	v.Load(manyRows(30))
	v.SetPage(3)

	v.SetFilter(Filter{Name: "staff 1"})
	assert.Equal(t, 1, v.Page())
	// "Staff 1" and "Staff 10".."Staff 19"
	assert.Equal(t, 11, v.Count())
	assert.Equal(t, 2, v.TotalPages())

	v.SetPage(2)
	v.Load(manyRows(5))
	assert.Equal(t, 1, v.Page(), "reload clamps the page")
	assert.Equal(t, 1, v.Count())
}

func TestView_ServerDateRange(t *testing.T) {
	v := NewView(HistoryConfig)
	v.Load(sample())
	v.SetFilter(Filter{From: day(5, 1), To: day(5, 31), Status: leave.StatusPending})

	// The range was already applied by the backend, so only status is evaluated here.
	assert.Equal(t, []string{"1", "4"}, ids(v.Rows()))
	assert.Equal(t, 1, v.TotalPages(), "history is not paginated")
	assert.Len(t, v.PageRows(), 2)
}

func TestView_Table(t *testing.T) {
	v := NewView(AdminConfig)
	v.Load([]leave.LeaveRequest{{
		ID: "1", FullName: "Ravi Kumar", Role: leave.RequesterDriver, RouteFrom: "Chennai", RouteTo: "Salem",
		FromDate: day(3, 1), ToDate: day(3, 2), LeaveType: leave.LeaveTypeCasual, Status: leave.StatusPending,
	}})

	headers, cells := v.Table()
	assert.Equal(t, []string{"Name", "Role", "Route", "Dates", "Leave Type", "Reason", "Reliever", "Status"}, headers)
	require.Len(t, cells, 1)
	assert.Equal(t, []string{"Ravi Kumar", "Driver", "Chennai → Salem", "01/03/2025 - 02/03/2025", "Casual Leave", "—", "—", "Pending"}, cells[0])

	found, ok := v.Find("1")
	assert.True(t, ok)
	assert.Equal(t, "Ravi Kumar", found.FullName)
	_, ok = v.Find("2")
	assert.False(t, ok)
}

func TestOrPlaceholder(t *testing.T) {
	assert.Equal(t, Placeholder, OrPlaceholder(""))
	assert.Equal(t, Placeholder, OrPlaceholder("   "))
	assert.Equal(t, "x", OrPlaceholder("x"))
	assert.Equal(t, "— - —", FormatPeriod(leave.LeaveRequest{}))
}
