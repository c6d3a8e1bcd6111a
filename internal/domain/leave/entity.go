package leave

import (
	"strings"
	"time"
)

type Status string

const (
	StatusPending   Status = "Pending"
	StatusApproved  Status = "Approved"
	StatusRejected  Status = "Rejected"
	StatusCancelled Status = "Cancelled"
)

// IsValid reports whether s is a known status.
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition is allowed from s.
func (s Status) IsTerminal() bool {
	return s == StatusApproved || s == StatusRejected || s == StatusCancelled
}

type LeaveType string

const (
	LeaveTypeCasual    LeaveType = "Casual Leave"
	LeaveTypeMedical   LeaveType = "Medical Leave"
	LeaveTypeEmergency LeaveType = "Emergency Leave"
)

// LeaveTypes lists the categories offered on the application form.
var LeaveTypes = []LeaveType{LeaveTypeCasual, LeaveTypeMedical, LeaveTypeEmergency}

// ParseLeaveType accepts both "Casual Leave" and "Casual", case-insensitively.
func ParseLeaveType(s string) (LeaveType, bool) {
	v := strings.ToLower(strings.TrimSpace(s))
	for _, t := range LeaveTypes {
		full := strings.ToLower(string(t))
		if v == full || v == strings.TrimSuffix(full, " leave") {
			return t, true
		}
	}
	return "", false
}

// RequesterRole is the job role entered on the form, distinct from the account role.
type RequesterRole string

const (
	RequesterDriver    RequesterRole = "Driver"
	RequesterConductor RequesterRole = "Conductor"
)

// ParseRequesterRole defaults to Driver when s is blank.
func ParseRequesterRole(s string) (RequesterRole, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "driver":
		return RequesterDriver, true
	case "conductor":
		return RequesterConductor, true
	}
	return "", false
}

// LeaveRequest entity
type LeaveRequest struct {
	ID       string        `json:"_id"`
	UserID   string        `json:"userId"`
	FullName string        `json:"fullName"`
	Role     RequesterRole `json:"role"`

	RouteFrom string `json:"routeFrom"`
	RouteTo   string `json:"routeTo"`

	FromDate time.Time `json:"fromDate"`
	ToDate   time.Time `json:"toDate"`

	LeaveType LeaveType `json:"leaveType"`
	Reason    string    `json:"reason,omitempty"`

	Status   Status `json:"status"` // 'Pending', 'Approved', 'Rejected', 'Cancelled'
	Reliever string `json:"reliever,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Summary is the per-status count shown on the admin panel.
type Summary struct {
	Total    int `json:"total"`
	Approved int `json:"approved"`
	Pending  int `json:"pending"`
	Rejected int `json:"rejected"`
}

// MonthlyStat is one month of the yearly trend; Month is 1-12.
type MonthlyStat struct {
	Month    int `json:"_id"`
	Total    int `json:"total"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
}

// DateOnly truncates t to midnight UTC of its calendar date.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
