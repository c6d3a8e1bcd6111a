package middleware

import (
	"net/http"

	"github.com/Vijaykarthik1/tnstc-leave/internal/domain/auth"
	"github.com/Vijaykarthik1/tnstc-leave/internal/domain/user"
	"github.com/Vijaykarthik1/tnstc-leave/internal/handler/http/response"
)

func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor, err := ActorFromContext(r.Context())
		if err != nil {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		if actor.Role != user.RoleAdmin {
			response.HandleError(w, user.ErrAdminPrivilegeRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
