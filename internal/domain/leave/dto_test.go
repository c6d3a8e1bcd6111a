package leave

import (
	"testing"
	"time"

	"github.com/Vijaykarthik1/tnstc-leave/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validApply() ApplyLeaveRequest {
	return ApplyLeaveRequest{
		UserID:    "u-1",
		FullName:  "Murugan S",
		RouteFrom: "Chennai",
		RouteTo:   "Madurai",
		FromDate:  "2025-03-10",
		ToDate:    "2025-03-12",
		LeaveType: "Casual Leave",
	}
}

func validationFields(t *testing.T, err error) map[string]string {
	t.Helper()
	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	return errs.ToMap()
}

func TestApplyLeaveRequest_Valid(t *testing.T) {
	req := validApply()
	require.NoError(t, req.Validate())

	entity := req.ToEntity()
	assert.Equal(t, RequesterDriver, entity.Role, "role defaults to Driver")
	assert.Equal(t, LeaveTypeCasual, entity.LeaveType)
	assert.Equal(t, StatusPending, entity.Status)
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), entity.FromDate)
	assert.Empty(t, entity.Reliever)
}

func TestApplyLeaveRequest_RequiredFields(t *testing.T) {
	req := ApplyLeaveRequest{LeaveType: "Medical"}
	fields := validationFields(t, req.Validate())

	for _, f := range []string{"userId", "fullName", "routeFrom", "routeTo", "fromDate", "toDate"} {
		assert.Contains(t, fields, f)
	}
	assert.NotContains(t, fields, "leaveType")
	assert.NotContains(t, fields, "reason", "reason is optional")
}

func TestApplyLeaveRequest_DateOrder(t *testing.T) {
	req := validApply()
	req.FromDate = "2025-03-12"
	req.ToDate = "2025-03-10"

	fields := validationFields(t, req.Validate())
	assert.Equal(t, ErrInvalidDateRange.Error(), fields["toDate"])

	req.ToDate = "2025-03-12"
	assert.NoError(t, req.Validate(), "single-day leave is allowed")
}

func TestApplyLeaveRequest_RejectsUnknownCategories(t *testing.T) {
	req := validApply()
	req.LeaveType = "Sabbatical"
	req.Role = "Pilot"

	fields := validationFields(t, req.Validate())
	assert.Contains(t, fields, "leaveType")
	assert.Contains(t, fields, "role")
}

func TestParseLeaveType(t *testing.T) {
	cases := map[string]LeaveType{
		"Casual":          LeaveTypeCasual,
		"casual leave":    LeaveTypeCasual,
		"Medical Leave":   LeaveTypeMedical,
		" emergency ":     LeaveTypeEmergency,
		"Emergency Leave": LeaveTypeEmergency,
	}
	for in, want := range cases {
		got, ok := ParseLeaveType(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}
	_, ok := ParseLeaveType("Annual")
	assert.False(t, ok)
}

func TestUpdateStatusRequest_Validate(t *testing.T) {
	approve := UpdateStatusRequest{Status: StatusApproved}
	assert.Contains(t, validationFields(t, approve.Validate()), "reliever")

	approve.Reliever = "Ravi Kumar"
	assert.NoError(t, approve.Validate())

	reject := UpdateStatusRequest{Status: StatusRejected}
	assert.NoError(t, reject.Validate())

	cancel := UpdateStatusRequest{Status: StatusCancelled}
	assert.Contains(t, validationFields(t, cancel.Validate()), "status")
}

func TestDateRangeFilter_Parse(t *testing.T) {
	f := DateRangeFilter{From: "2025-01-01", To: "2025-01-31"}
	from, to, err := f.Parse()
	require.NoError(t, err)
	assert.True(t, from.Before(to))

	f = DateRangeFilter{From: "2025-02-01", To: "2025-01-31"}
	_, _, err = f.Parse()
	assert.Contains(t, validationFields(t, err), "to")

	f = DateRangeFilter{}
	_, _, err = f.Parse()
	fields := validationFields(t, err)
	assert.Contains(t, fields, "from")
	assert.Contains(t, fields, "to")
}
