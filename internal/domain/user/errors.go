package user

import "errors"

var (
	ErrUserNotFound           = errors.New("user not found")
	ErrAdminPrivilegeRequired = errors.New("admin privilege required")
	ErrRoleNotAllowed         = errors.New("role not allowed for this resource")
	ErrNotResourceOwner       = errors.New("resource belongs to another user")
)
