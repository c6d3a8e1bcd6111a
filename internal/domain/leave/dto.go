package leave

import (
	"strings"
	"time"

	"github.com/Vijaykarthik1/tnstc-leave/internal/pkg/validator"
)

type ApplyLeaveRequest struct {
	UserID    string `json:"userId"`
	FullName  string `json:"fullName"`
	Role      string `json:"role"`
	RouteFrom string `json:"routeFrom"`
	RouteTo   string `json:"routeTo"`
	FromDate  string `json:"fromDate"`
	ToDate    string `json:"toDate"`
	LeaveType string `json:"leaveType"`
	Reason    string `json:"reason"`
}

func (r *ApplyLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "userId",
			Message: "userId is required",
		})
	}

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "fullName",
			Message: "fullName is required",
		})
	}
	if len(r.FullName) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "fullName",
			Message: "fullName must not exceed 255 characters",
		})
	}

	if _, ok := ParseRequesterRole(r.Role); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be Driver or Conductor",
		})
	}

	if validator.IsEmpty(r.RouteFrom) {
		errs = append(errs, validator.ValidationError{
			Field:   "routeFrom",
			Message: "routeFrom is required",
		})
	}
	if validator.IsEmpty(r.RouteTo) {
		errs = append(errs, validator.ValidationError{
			Field:   "routeTo",
			Message: "routeTo is required",
		})
	}

	from, fromOK := parseDateField(r.FromDate)
	switch {
	case validator.IsEmpty(r.FromDate):
		errs = append(errs, validator.ValidationError{
			Field:   "fromDate",
			Message: "fromDate is required",
		})
	case !fromOK:
		errs = append(errs, validator.ValidationError{
			Field:   "fromDate",
			Message: "fromDate must be in YYYY-MM-DD format",
		})
	}

	to, toOK := parseDateField(r.ToDate)
	switch {
	case validator.IsEmpty(r.ToDate):
		errs = append(errs, validator.ValidationError{
			Field:   "toDate",
			Message: "toDate is required",
		})
	case !toOK:
		errs = append(errs, validator.ValidationError{
			Field:   "toDate",
			Message: "toDate must be in YYYY-MM-DD format",
		})
	}

	if fromOK && toOK && from.After(to) {
		errs = append(errs, validator.ValidationError{
			Field:   "toDate",
			Message: ErrInvalidDateRange.Error(),
		})
	}

	if _, ok := ParseLeaveType(r.LeaveType); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "leaveType",
			Message: "leaveType must be one of: Casual Leave, Medical Leave, Emergency Leave",
		})
	}

	if len(r.Reason) > 1000 {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason must not exceed 1000 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ToEntity builds a pending request. Call Validate first.
func (r *ApplyLeaveRequest) ToEntity() LeaveRequest {
	role, _ := ParseRequesterRole(r.Role)
	leaveType, _ := ParseLeaveType(r.LeaveType)
	from, _ := parseDateField(r.FromDate)
	to, _ := parseDateField(r.ToDate)

	return LeaveRequest{
		UserID:    r.UserID,
		FullName:  strings.TrimSpace(r.FullName),
		Role:      role,
		RouteFrom: strings.TrimSpace(r.RouteFrom),
		RouteTo:   strings.TrimSpace(r.RouteTo),
		FromDate:  from,
		ToDate:    to,
		LeaveType: leaveType,
		Reason:    strings.TrimSpace(r.Reason),
		Status:    StatusPending,
	}
}

// parseDateField accepts YYYY-MM-DD and full RFC3339 timestamps.
func parseDateField(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if d, ok := validator.IsValidDate(s); ok {
		return d, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return DateOnly(t), true
	}
	return time.Time{}, false
}

type UpdateStatusRequest struct {
	Status   Status `json:"status"`
	Reliever string `json:"reliever,omitempty"`
}

func (r *UpdateStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Status != StatusApproved && r.Status != StatusRejected {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be Approved or Rejected",
		})
	}

	if r.Status == StatusApproved && validator.IsEmpty(r.Reliever) {
		errs = append(errs, validator.ValidationError{
			Field:   "reliever",
			Message: ErrRelieverRequired.Error(),
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// DateRangeFilter is the query of GET /api/leave/user/:userId/filter.
type DateRangeFilter struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Parse validates both bounds and returns them as dates.
func (f *DateRangeFilter) Parse() (time.Time, time.Time, error) {
	var errs validator.ValidationErrors

	from, fromOK := parseDateField(f.From)
	if !fromOK {
		errs = append(errs, validator.ValidationError{
			Field:   "from",
			Message: "from must be in YYYY-MM-DD format",
		})
	}
	to, toOK := parseDateField(f.To)
	if !toOK {
		errs = append(errs, validator.ValidationError{
			Field:   "to",
			Message: "to must be in YYYY-MM-DD format",
		})
	}
	if fromOK && toOK && from.After(to) {
		errs = append(errs, validator.ValidationError{
			Field:   "to",
			Message: "from must not be after to",
		})
	}

	if len(errs) > 0 {
		return time.Time{}, time.Time{}, errs
	}
	return from, to, nil
}

type RelieversResponse struct {
	Relievers []string `json:"relievers"`
}
