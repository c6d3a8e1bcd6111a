// Package listing derives the filtered, paginated view over a fetched
// collection of leave requests that both the admin panel and the history
// page render.
package listing

import (
	"strings"
	"time"

	"github.com/Vijaykarthik1/tnstc-leave/internal/domain/leave"
)

// Filter selects leave requests. A zero field matches everything on that
// dimension; the set fields are combined with AND.
type Filter struct {
	// Name is matched case-insensitively as a substring of the requester's full name.
	Name   string
	Status leave.Status
	// From and To bound the leave period: a request matches when it starts
	// on or after From and ends on or before To.
	From time.Time
	To   time.Time
}

// IsZero reports whether f matches every request.
func (f Filter) IsZero() bool {
	return strings.TrimSpace(f.Name) == "" && f.Status == "" && f.From.IsZero() && f.To.IsZero()
}

// Match reports whether r satisfies every set field of f.
func (f Filter) Match(r leave.LeaveRequest) bool {
	if name := strings.TrimSpace(f.Name); name != "" {
		if !strings.Contains(strings.ToLower(r.FullName), strings.ToLower(name)) {
			return false
		}
	}
	if f.Status != "" && r.Status != f.Status {
		return false
	}
	if !f.From.IsZero() && leave.DateOnly(r.FromDate).Before(leave.DateOnly(f.From)) {
		return false
	}
	if !f.To.IsZero() && leave.DateOnly(r.ToDate).After(leave.DateOnly(f.To)) {
		return false
	}
	return true
}

// Apply returns, in their original order, the rows matching all filters.
// Apply(Apply(rows, a), b) equals Apply(rows, a, b).
func Apply(rows []leave.LeaveRequest, filters ...Filter) []leave.LeaveRequest {
	out := make([]leave.LeaveRequest, 0, len(rows))
next:
	for _, r := range rows {
		for _, f := range filters {
			if !f.Match(r) {
				continue next
			}
		}
		out = append(out, r)
	}
	return out
}

// ParseStatus maps user input to a status filter; "" and "all" mean no filter.
func ParseStatus(s string) (leave.Status, bool) {
	v := strings.TrimSpace(s)
	if v == "" || strings.EqualFold(v, "all") {
		return "", true
	}
	for _, st := range []leave.Status{leave.StatusPending, leave.StatusApproved, leave.StatusRejected, leave.StatusCancelled} {
		if strings.EqualFold(v, string(st)) {
			return st, true
		}
	}
	return "", false
}
