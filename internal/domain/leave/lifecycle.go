package leave

import (
	"strings"

	"github.com/Vijaykarthik1/tnstc-leave/internal/domain/user"
)

// transitions lists the targets reachable from each non-terminal status.
var transitions = map[Status][]Status{
	StatusPending: {StatusApproved, StatusRejected, StatusCancelled},
}

// CanTransition reports whether a request in status from may move to status to.
func CanTransition(from, to Status) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// Transition moves r to status to. Approval requires a reliever; every other
// target clears it, so reliever is set exactly when r is Approved.
func (r *LeaveRequest) Transition(to Status, reliever string) error {
	if !to.IsValid() {
		return ErrInvalidStatus
	}
	if r.Status.IsTerminal() {
		return ErrLeaveRequestAlreadyProcessed
	}
	if !CanTransition(r.Status, to) {
		return ErrInvalidTransition
	}

	reliever = strings.TrimSpace(reliever)
	if to == StatusApproved {
		if reliever == "" {
			return ErrRelieverRequired
		}
		r.Reliever = reliever
	} else {
		r.Reliever = ""
	}

	r.Status = to
	return nil
}

type Action string

const (
	ActionApprove Action = "approve"
	ActionReject  Action = "reject"
	ActionCancel  Action = "cancel"
)

// AvailableActions returns what the actor may do with r right now.
// Admins review pending requests; requesters may cancel their own pending ones.
func AvailableActions(r LeaveRequest, actorID string, actorRole user.Role) []Action {
	if r.Status != StatusPending {
		return nil
	}

	var actions []Action
	if actorRole == user.RoleAdmin {
		actions = append(actions, ActionApprove, ActionReject)
	}
	if actorID != "" && r.UserID == actorID {
		actions = append(actions, ActionCancel)
	}
	return actions
}

// CanPerform reports whether action is among AvailableActions.
func CanPerform(r LeaveRequest, actorID string, actorRole user.Role, action Action) bool {
	for _, a := range AvailableActions(r, actorID, actorRole) {
		if a == action {
			return true
		}
	}
	return false
}
