package auth

import (
	"github.com/Vijaykarthik1/tnstc-leave/internal/domain/user"
	"github.com/Vijaykarthik1/tnstc-leave/internal/pkg/validator"
)

// GoogleLoginRequest carries the ID token returned by Google Sign-In.
type GoogleLoginRequest struct {
	Token string `json:"token"`
}

func (r *GoogleLoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Token) {
		errs = append(errs, validator.ValidationError{
			Field:   "token",
			Message: "token is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// LoginResponse is stored verbatim by the client as its session record.
type LoginResponse struct {
	User      user.User `json:"user"`
	Token     string    `json:"token"`
	ExpiresAt int64     `json:"expiresAt"`
}
