package middleware

import (
	"fmt"
	"net/http"

	"github.com/Vijaykarthik1/tnstc-leave/internal/domain/auth"
	"github.com/Vijaykarthik1/tnstc-leave/internal/domain/user"
	"github.com/Vijaykarthik1/tnstc-leave/internal/handler/http/response"
)

// RequireRoles lets the request through only when the token's role is one of roles.
// This is the authoritative counterpart of the client-side route guard.
func RequireRoles(roles ...user.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			actor, err := ActorFromContext(r.Context())
			if err != nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			for _, role := range roles {
				if actor.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}

			response.Forbidden(w, fmt.Sprintf("Insufficient permissions: role '%s' not allowed", actor.Role))
		})
	}
}

// RequireStaff allows drivers and conductors, the roles that apply for leave.
func RequireStaff(next http.Handler) http.Handler {
	return RequireRoles(user.RoleDriver, user.RoleConductor)(next)
}
