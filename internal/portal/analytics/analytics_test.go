package analytics

import (
	"testing"
	"time"

	"github.com/Vijaykarthik1/tnstc-leave/internal/domain/leave"
	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	rows := []leave.LeaveRequest{
		{Status: leave.StatusApproved},
		{Status: leave.StatusApproved},
		{Status: leave.StatusPending},
		{Status: leave.StatusRejected},
		{Status: leave.StatusCancelled},
	}
	assert.Equal(t, leave.Summary{Total: 5, Approved: 2, Pending: 1, Rejected: 1}, Summarize(rows))
	assert.Equal(t, leave.Summary{}, Summarize(nil))
}

func TestStatsForUser(t *testing.T) {
	rows := []leave.LeaveRequest{
		{UserID: "u1", Status: leave.StatusApproved},
		{UserID: "u1", Status: leave.StatusRejected},
		{UserID: "u1", Status: leave.StatusPending},
		{UserID: "u2", Status: leave.StatusApproved},
	}
	assert.Equal(t, UserStats{Total: 3, Approved: 1, Rejected: 1}, StatsForUser(rows, "u1"))
	assert.Equal(t, UserStats{}, StatsForUser(rows, "u3"))
}

func TestLabelMonths(t *testing.T) {
	stats := []leave.MonthlyStat{
		{Month: 1, Total: 4, Approved: 2, Rejected: 1},
		{Month: 3, Total: 1},
		{Month: 12, Total: 2, Rejected: 2},
		{Month: 13, Total: 9},
	}

	assert.Equal(t, []MonthPoint{
		{Month: "Jan", Total: 4, Approved: 2, Rejected: 1},
		{Month: "Mar", Total: 1},
		{Month: "Dec", Total: 2, Rejected: 2},
	}, LabelMonths(stats), "no zero-filled February")
	assert.Empty(t, LabelMonths(nil))
}

func TestLatestDecision(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	older := leave.LeaveRequest{ID: "old", Status: leave.StatusRejected, CreatedAt: now.Add(-48 * time.Hour)}
	newer := leave.LeaveRequest{ID: "new", Status: leave.StatusApproved, CreatedAt: now}
	pending := leave.LeaveRequest{ID: "pending", Status: leave.StatusPending, CreatedAt: now.Add(time.Hour)}

	// Oldest-first input still yields the newest record.
	got, ok := LatestDecision([]leave.LeaveRequest{older, newer})
	assert.True(t, ok)
	assert.Equal(t, "new", got.ID)

	got, ok = LatestDecision([]leave.LeaveRequest{newer, older})
	assert.True(t, ok)
	assert.Equal(t, "new", got.ID)

	_, ok = LatestDecision([]leave.LeaveRequest{older, newer, pending})
	assert.False(t, ok)

	_, ok = LatestDecision(nil)
	assert.False(t, ok)
}
