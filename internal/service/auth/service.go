package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Vijaykarthik1/tnstc-leave/internal/domain/auth"
	"github.com/Vijaykarthik1/tnstc-leave/internal/domain/user"
	"github.com/Vijaykarthik1/tnstc-leave/internal/pkg/jwt"
	"github.com/Vijaykarthik1/tnstc-leave/internal/pkg/oauth"
)

type AuthServiceImpl struct {
	user.UserRepository
	jwt.Service
	googleService oauth.GoogleService
	adminEmails   map[string]struct{}
}

func NewAuthService(userRepository user.UserRepository, jwtService jwt.Service, googleService oauth.GoogleService, adminEmails []string) auth.AuthService {
	admins := make(map[string]struct{}, len(adminEmails))
	for _, e := range adminEmails {
		admins[strings.ToLower(strings.TrimSpace(e))] = struct{}{}
	}
	return &AuthServiceImpl{
		UserRepository: userRepository,
		Service:        jwtService,
		googleService:  googleService,
		adminEmails:    admins,
	}
}

// LoginWithGoogleIDToken implements auth.AuthService.
func (a *AuthServiceImpl) LoginWithGoogleIDToken(ctx context.Context, req auth.GoogleLoginRequest) (auth.LoginResponse, error) {
	info, err := a.googleService.VerifyIDToken(ctx, req.Token)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("%w: %v", auth.ErrInvalidCredentials, err)
	}
	return a.signIn(ctx, info)
}

// LoginWithGoogleCode implements auth.AuthService.
func (a *AuthServiceImpl) LoginWithGoogleCode(ctx context.Context, code string) (auth.LoginResponse, error) {
	token, err := a.googleService.VerifyToken(ctx, code)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("%w: %v", auth.ErrInvalidCredentials, err)
	}

	info, err := a.googleService.VerifyUser(ctx, token)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("%w: %v", auth.ErrInvalidCredentials, err)
	}
	return a.signIn(ctx, info)
}

// signIn finds or creates the user behind a verified Google identity and issues an access token.
func (a *AuthServiceImpl) signIn(ctx context.Context, info oauth.GoogleInformation) (auth.LoginResponse, error) {
	if info.GoogleID == "" {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}
	if !info.VerifiedEmail {
		return auth.LoginResponse{}, auth.ErrEmailNotVerified
	}

	userData, err := a.UserRepository.GetByGoogleID(ctx, info.GoogleID)
	switch {
	case errors.Is(err, user.ErrUserNotFound):
		newUser := user.User{
			GoogleID: info.GoogleID,
			Email:    info.Email,
			Name:     info.Name,
			Role:     a.roleFor(info.Email),
		}
		userData, err = a.UserRepository.Create(ctx, newUser)
		if err != nil {
			return auth.LoginResponse{}, fmt.Errorf("failed to create user: %w", err)
		}
	case err != nil:
		return auth.LoginResponse{}, fmt.Errorf("failed to get user by google id: %w", err)
	case userData.Name != info.Name || userData.Email != info.Email:
		// Keep the display name in sync with the Google account.
		userData, err = a.UserRepository.UpdateProfile(ctx, userData.ID, info.Name, info.Email)
		if err != nil {
			return auth.LoginResponse{}, fmt.Errorf("failed to update user profile: %w", err)
		}
	}

	accessToken, expiresAt, err := a.Service.GenerateAccessToken(userData.ID, userData.Email, userData.Role)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	return auth.LoginResponse{
		User:      userData,
		Token:     accessToken,
		ExpiresAt: expiresAt,
	}, nil
}

func (a *AuthServiceImpl) roleFor(email string) user.Role {
	if _, ok := a.adminEmails[strings.ToLower(strings.TrimSpace(email))]; ok {
		return user.RoleAdmin
	}
	return user.RoleDriver
}
