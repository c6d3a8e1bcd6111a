// Package analytics derives counts from leave requests that were already fetched.
package analytics

import (
	"sort"
	"time"

	"github.com/Vijaykarthik1/tnstc-leave/internal/domain/leave"
)

// Summarize counts rows by status. Cancelled requests only count toward Total.
func Summarize(rows []leave.LeaveRequest) leave.Summary {
	var s leave.Summary
	for _, r := range rows {
		s.Total++
		switch r.Status {
		case leave.StatusApproved:
			s.Approved++
		case leave.StatusPending:
			s.Pending++
		case leave.StatusRejected:
			s.Rejected++
		}
	}
	return s
}

// UserStats is the per-requester card shown from the admin panel.
type UserStats struct {
	Total    int `json:"total"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
}

// StatsForUser summarizes the requests of one requester within rows.
func StatsForUser(rows []leave.LeaveRequest, userID string) UserStats {
	var mine []leave.LeaveRequest
	for _, r := range rows {
		if r.UserID == userID {
			mine = append(mine, r)
		}
	}
	s := Summarize(mine)
	return UserStats{Total: s.Total, Approved: s.Approved, Rejected: s.Rejected}
}

// MonthPoint is one labelled bar of the monthly trend chart.
type MonthPoint struct {
	Month    string `json:"month"`
	Total    int    `json:"total"`
	Approved int    `json:"approved"`
	Rejected int    `json:"rejected"`
}

// LabelMonths relabels backend month numbers with short month names.
// Months missing from stats stay missing; numbers outside 1-12 are dropped.
func LabelMonths(stats []leave.MonthlyStat) []MonthPoint {
	points := make([]MonthPoint, 0, len(stats))
	for _, s := range stats {
		if s.Month < 1 || s.Month > 12 {
			continue
		}
		points = append(points, MonthPoint{
			Month:    time.Month(s.Month).String()[:3],
			Total:    s.Total,
			Approved: s.Approved,
			Rejected: s.Rejected,
		})
	}
	return points
}

// LatestDecision returns the newest request, by CreatedAt, when it has been
// decided. It reports false when the newest request is still Pending, even if
// older ones were decided. Rows are ordered here rather than trusting their
// position in the response.
func LatestDecision(rows []leave.LeaveRequest) (leave.LeaveRequest, bool) {
	if len(rows) == 0 {
		return leave.LeaveRequest{}, false
	}

	sorted := append([]leave.LeaveRequest(nil), rows...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})

	// Only the newest request matters: a newer pending one means nothing to report yet.
	if sorted[0].Status == leave.StatusPending {
		return leave.LeaveRequest{}, false
	}
	return sorted[0], true
}
