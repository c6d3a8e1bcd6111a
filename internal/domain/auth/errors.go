package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("google sign-in was rejected")
	ErrEmailNotVerified   = errors.New("email not verified")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrInvalidState       = errors.New("invalid oauth state")
)
