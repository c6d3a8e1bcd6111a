package session

import "errors"

var (
	ErrNoSession      = errors.New("not signed in")
	ErrInvalidSession = errors.New("session must carry a user id, a known role and a token")
)
