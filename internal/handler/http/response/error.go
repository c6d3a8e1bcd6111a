package response

import (
	"errors"
	"net/http"

	"github.com/Vijaykarthik1/tnstc-leave/internal/domain/auth"
	"github.com/Vijaykarthik1/tnstc-leave/internal/domain/leave"
	"github.com/Vijaykarthik1/tnstc-leave/internal/domain/user"
	"github.com/Vijaykarthik1/tnstc-leave/internal/pkg/validator"
	"github.com/Vijaykarthik1/tnstc-leave/internal/service/file"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrInvalidState):
		Unauthorized(w, "Invalid OAuth state")
	case errors.Is(err, auth.ErrEmailNotVerified):
		Forbidden(w, "Email not verified")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")
	case errors.Is(err, user.ErrRoleNotAllowed):
		Forbidden(w, "Role not allowed for this resource")
	case errors.Is(err, user.ErrNotResourceOwner):
		Forbidden(w, "Resource belongs to another user")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrLeaveRequestAlreadyProcessed):
		Conflict(w, "Leave request already processed")
	case errors.Is(err, leave.ErrInvalidTransition):
		Conflict(w, err.Error())
	case errors.Is(err, leave.ErrNotRequestOwner):
		Forbidden(w, err.Error())
	case errors.Is(err, leave.ErrRelieverRequired):
		ValidationError(w, map[string]string{"reliever": err.Error()})
	case errors.Is(err, leave.ErrUnknownReliever):
		ValidationError(w, map[string]string{"reliever": err.Error()})
	case errors.Is(err, leave.ErrInvalidStatus):
		ValidationError(w, map[string]string{"status": err.Error()})
	case errors.Is(err, leave.ErrInvalidDateRange):
		ValidationError(w, map[string]string{"toDate": err.Error()})

	// Upload errors
	case errors.Is(err, file.ErrUnsupportedImage), errors.Is(err, file.ErrCorruptImage), errors.Is(err, file.ErrImageTooLarge):
		BadRequest(w, err.Error(), nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
