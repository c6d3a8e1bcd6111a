// Package lifecycle runs leave request mutations from the client side,
// checking what can be checked locally before calling the backend.
package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Vijaykarthik1/tnstc-leave/internal/domain/leave"
	"github.com/Vijaykarthik1/tnstc-leave/internal/portal/session"
)

var (
	ErrNotConfirmed     = errors.New("cancellation was not confirmed")
	ErrActionNotAllowed = errors.New("action is not available for this request")
)

// API is the subset of the backend the actions need.
type API interface {
	ApplyLeave(ctx context.Context, req leave.ApplyLeaveRequest) (leave.LeaveRequest, error)
	UpdateStatus(ctx context.Context, id string, req leave.UpdateStatusRequest) (leave.LeaveRequest, error)
	Cancel(ctx context.Context, id string) (leave.LeaveRequest, error)
}

// Confirmer asks the user to confirm a destructive action.
type Confirmer func(prompt string) (bool, error)

// Actions performs mutations on behalf of the signed-in user.
type Actions struct {
	api     API
	session session.Session
}

func NewActions(api API, sess session.Session) *Actions {
	return &Actions{api: api, session: sess}
}

// Submit validates the form and applies for leave as the session user.
// The form's userId is always taken from the session.
func (a *Actions) Submit(ctx context.Context, form leave.ApplyLeaveRequest) (leave.LeaveRequest, error) {
	form.UserID = a.session.User.ID
	if strings.TrimSpace(form.Role) == "" {
		form.Role = string(leave.RequesterDriver)
	}
	if err := form.Validate(); err != nil {
		return leave.LeaveRequest{}, err
	}

	created, err := a.api.ApplyLeave(ctx, form)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("submit leave request: %w", err)
	}
	return created, nil
}

// Approve approves r with reliever. A blank reliever fails before any call.
func (a *Actions) Approve(ctx context.Context, r leave.LeaveRequest, reliever string) (leave.LeaveRequest, error) {
	reliever = strings.TrimSpace(reliever)
	if reliever == "" {
		return leave.LeaveRequest{}, leave.ErrRelieverRequired
	}
	if err := a.allowed(r, leave.ActionApprove); err != nil {
		return leave.LeaveRequest{}, err
	}

	updated, err := a.api.UpdateStatus(ctx, r.ID, leave.UpdateStatusRequest{
		Status:   leave.StatusApproved,
		Reliever: reliever,
	})
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("approve leave request: %w", err)
	}
	return updated, nil
}

// Reject rejects r. No reliever is ever sent.
func (a *Actions) Reject(ctx context.Context, r leave.LeaveRequest) (leave.LeaveRequest, error) {
	if err := a.allowed(r, leave.ActionReject); err != nil {
		return leave.LeaveRequest{}, err
	}

	updated, err := a.api.UpdateStatus(ctx, r.ID, leave.UpdateStatusRequest{Status: leave.StatusRejected})
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("reject leave request: %w", err)
	}
	return updated, nil
}

// Cancel withdraws the user's own pending request after confirm agrees.
func (a *Actions) Cancel(ctx context.Context, r leave.LeaveRequest, confirm Confirmer) (leave.LeaveRequest, error) {
	if err := a.allowed(r, leave.ActionCancel); err != nil {
		return leave.LeaveRequest{}, err
	}

	ok, err := confirm(fmt.Sprintf("Cancel your %s from %s?", r.LeaveType, r.FromDate.Format("02/01/2006")))
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("confirm cancellation: %w", err)
	}
	if !ok {
		return leave.LeaveRequest{}, ErrNotConfirmed
	}

	updated, err := a.api.Cancel(ctx, r.ID)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("cancel leave request: %w", err)
	}
	return updated, nil
}

// Available lists the actions the session user may take on r.
func (a *Actions) Available(r leave.LeaveRequest) []leave.Action {
	return leave.AvailableActions(r, a.session.User.ID, a.session.User.Role)
}

func (a *Actions) allowed(r leave.LeaveRequest, action leave.Action) error {
	if leave.CanPerform(r, a.session.User.ID, a.session.User.Role, action) {
		return nil
	}
	if r.Status.IsTerminal() {
		return leave.ErrLeaveRequestAlreadyProcessed
	}
	return ErrActionNotAllowed
}
