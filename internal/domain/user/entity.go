package user

import "time"

type Role string

const (
	RoleDriver    Role = "driver"    // Applies for leave
	RoleConductor Role = "conductor" // Applies for leave
	RoleAdmin     Role = "admin"     // Reviews leave requests
)

// IsValid reports whether r is one of the known roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleDriver, RoleConductor, RoleAdmin:
		return true
	}
	return false
}

// IsStaff reports whether r is a role that applies for leave.
func (r Role) IsStaff() bool {
	return r == RoleDriver || r == RoleConductor
}

type User struct {
	ID           string    `json:"_id"`
	GoogleID     string    `json:"googleId,omitempty"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Role         Role      `json:"role"`
	ProfilePhoto string    `json:"profilePhoto,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// IsAdmin checks if user reviews leave requests
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// HasProfilePhoto reports whether the user finished the photo upload step.
func (u *User) HasProfilePhoto() bool {
	return u.ProfilePhoto != ""
}
