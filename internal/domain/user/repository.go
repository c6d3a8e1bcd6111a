package user

import "context"

// UserRepository - interface for users table
type UserRepository interface {
	GetByID(ctx context.Context, id string) (User, error)
	GetByGoogleID(ctx context.Context, googleID string) (User, error)
	Create(ctx context.Context, user User) (User, error)
	UpdateProfile(ctx context.Context, id string, name string, email string) (User, error)
	UpdateProfilePhoto(ctx context.Context, id string, photoURL string) error
}
