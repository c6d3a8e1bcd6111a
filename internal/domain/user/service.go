package user

import "context"

type UserService interface {
	GetByID(ctx context.Context, id string) (User, error)
	// UpdateProfilePhoto lets users change their own photo; admins may change anyone's.
	UpdateProfilePhoto(ctx context.Context, actorID string, actorRole Role, req UpdateProfilePhotoRequest) (UpdateProfilePhotoResponse, error)
}
