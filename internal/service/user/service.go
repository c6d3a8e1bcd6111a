package user

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Vijaykarthik1/tnstc-leave/internal/domain/user"
)

// PhotoRemover deletes a stored profile photo by its public URL.
type PhotoRemover interface {
	RemoveProfilePhoto(ctx context.Context, photoURL string) error
}

type UserServiceImpl struct {
	user.UserRepository
	photos PhotoRemover
}

func NewUserService(userRepository user.UserRepository, photos PhotoRemover) user.UserService {
	return &UserServiceImpl{UserRepository: userRepository, photos: photos}
}

// UpdateProfilePhoto implements user.UserService. The replaced photo is
// removed from storage once the new one is saved.
func (u *UserServiceImpl) UpdateProfilePhoto(ctx context.Context, actorID string, actorRole user.Role, req user.UpdateProfilePhotoRequest) (user.UpdateProfilePhotoResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UpdateProfilePhotoResponse{}, err
	}
	if actorID != req.UserID && actorRole != user.RoleAdmin {
		return user.UpdateProfilePhotoResponse{}, user.ErrNotResourceOwner
	}

	current, err := u.UserRepository.GetByID(ctx, req.UserID)
	if err != nil {
		return user.UpdateProfilePhotoResponse{}, err
	}

	if err := u.UserRepository.UpdateProfilePhoto(ctx, req.UserID, req.ProfilePhoto); err != nil {
		return user.UpdateProfilePhotoResponse{}, fmt.Errorf("failed to update profile photo: %w", err)
	}

	if previous := current.ProfilePhoto; previous != "" && previous != req.ProfilePhoto {
		if err := u.photos.RemoveProfilePhoto(ctx, previous); err != nil {
			slog.Error("UpdateProfilePhoto remove previous photo error", "error", err, "user_id", req.UserID)
		}
	}

	return user.UpdateProfilePhotoResponse{
		Message:      "Profile photo updated",
		ProfilePhoto: req.ProfilePhoto,
	}, nil
}
