package user

import "github.com/Vijaykarthik1/tnstc-leave/internal/pkg/validator"

type UpdateProfilePhotoRequest struct {
	UserID       string `json:"-"`
	ProfilePhoto string `json:"profilePhoto"`
}

func (r *UpdateProfilePhotoRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}
	if validator.IsEmpty(r.ProfilePhoto) {
		errs = append(errs, validator.ValidationError{
			Field:   "profilePhoto",
			Message: "profilePhoto is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateProfilePhotoResponse struct {
	Message      string `json:"message"`
	ProfilePhoto string `json:"profilePhoto"`
}
