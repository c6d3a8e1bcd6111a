// Package guard decides which leavectl views a session may open. The backend
// repeats every check, so a decision here only saves a round trip.
package guard

import (
	"slices"

	"github.com/Vijaykarthik1/tnstc-leave/internal/domain/user"
	"github.com/Vijaykarthik1/tnstc-leave/internal/portal/session"
)

type View string

const (
	ViewLogin         View = "/"
	ViewUnauthorized  View = "/unauthorized"
	ViewApplyLeave    View = "/apply-leave"
	ViewLeaveHistory  View = "/leave-history"
	ViewAdmin         View = "/admin"
	ViewAnalytics     View = "/analytics"
	ViewUploadProfile View = "/upload-profile"
	ViewProfile       View = "/profile"
)

// Routes maps each protected view to the roles allowed to open it.
// An empty role list means any signed-in user.
var Routes = map[View][]user.Role{
	ViewApplyLeave:    {user.RoleDriver, user.RoleConductor},
	ViewLeaveHistory:  {user.RoleDriver, user.RoleConductor},
	ViewAdmin:         {user.RoleAdmin},
	ViewAnalytics:     {user.RoleAdmin},
	ViewUploadProfile: nil,
	ViewProfile:       nil,
}

// Decision is the outcome of a guard check. A zero Redirect means allow.
type Decision struct {
	Redirect View
}

func (d Decision) Allowed() bool {
	return d.Redirect == ""
}

var Allow = Decision{}

// Authorize checks a loaded session against the allowed roles.
func Authorize(sess session.Session, ok bool, roles ...user.Role) Decision {
	if !ok || !sess.Valid() {
		return Decision{Redirect: ViewLogin}
	}
	if len(roles) > 0 && !slices.Contains(roles, sess.User.Role) {
		return Decision{Redirect: ViewUnauthorized}
	}
	return Allow
}

// Open checks whether the session may open view. Unknown views are public.
func Open(view View, sess session.Session, ok bool) Decision {
	roles, protected := Routes[view]
	if !protected {
		return Allow
	}
	return Authorize(sess, ok, roles...)
}

// Home is the landing view for role.
func Home(role user.Role) View {
	switch {
	case role == user.RoleAdmin:
		return ViewAdmin
	case role.IsStaff():
		return ViewApplyLeave
	default:
		return ViewUnauthorized
	}
}

// AfterLogin is where a freshly signed-in user goes first.
func AfterLogin(u user.User) View {
	if !u.HasProfilePhoto() {
		return ViewUploadProfile
	}
	return Home(u.Role)
}
