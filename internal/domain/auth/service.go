package auth

import "context"

type AuthService interface {
	// LoginWithGoogleIDToken verifies a Google ID token and signs the user in,
	// creating the account on first login.
	LoginWithGoogleIDToken(ctx context.Context, req GoogleLoginRequest) (LoginResponse, error)
	// LoginWithGoogleCode completes the OAuth2 code flow.
	LoginWithGoogleCode(ctx context.Context, code string) (LoginResponse, error)
}
