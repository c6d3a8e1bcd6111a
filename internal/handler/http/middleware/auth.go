package middleware

import (
	"context"
	"net/http"

	"github.com/Vijaykarthik1/tnstc-leave/internal/domain/auth"
	"github.com/Vijaykarthik1/tnstc-leave/internal/domain/user"
	"github.com/Vijaykarthik1/tnstc-leave/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

func AuthRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, _, err := jwtauth.FromContext(r.Context())

			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}

			if token == nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			claims, err := token.AsMap(r.Context())
			if err != nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}
			tokenType, ok := claims["type"].(string)
			if tokenType != "access" || !ok {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}

// Actor is the authenticated caller as carried in the access token.
type Actor struct {
	ID    string
	Email string
	Role  user.Role
}

// ActorFromContext reads the verified claims placed by jwtauth.Verifier.
func ActorFromContext(ctx context.Context) (Actor, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return Actor{}, auth.ErrInvalidToken
	}

	id, _ := claims["user_id"].(string)
	role, _ := claims["role"].(string)
	if id == "" || !user.Role(role).IsValid() {
		return Actor{}, auth.ErrInvalidToken
	}
	email, _ := claims["email"].(string)

	return Actor{ID: id, Email: email, Role: user.Role(role)}, nil
}
