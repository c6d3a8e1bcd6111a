package sqlite

import (
	"time"

	"github.com/Vijaykarthik1/tnstc-leave/internal/domain/leave"
	"github.com/Vijaykarthik1/tnstc-leave/internal/domain/user"
)

type userRecord struct {
	ID           string    `gorm:"primaryKey;type:varchar(36)"`
	GoogleID     string    `gorm:"uniqueIndex;not null"`
	Email        string    `gorm:"not null"`
	Name         string    `gorm:"not null;default:''"`
	Role         string    `gorm:"type:varchar(20);not null"` // driver, conductor, admin
	ProfilePhoto string    `gorm:"not null;default:''"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (userRecord) TableName() string {
	return "users"
}

func (r userRecord) toEntity() user.User {
	return user.User{
		ID:           r.ID,
		GoogleID:     r.GoogleID,
		Email:        r.Email,
		Name:         r.Name,
		Role:         user.Role(r.Role),
		ProfilePhoto: r.ProfilePhoto,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

type leaveRequestRecord struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)"`
	UserID    string    `gorm:"not null;index"`
	FullName  string    `gorm:"not null"`
	Role      string    `gorm:"type:varchar(20);not null"`
	RouteFrom string    `gorm:"not null"`
	RouteTo   string    `gorm:"not null"`
	FromDate  time.Time `gorm:"not null;index"`
	ToDate    time.Time `gorm:"not null"`
	LeaveType string    `gorm:"type:varchar(30);not null"`
	Reason    string    `gorm:"not null;default:''"`
	Status    string    `gorm:"type:varchar(20);not null;index"` // Pending, Approved, Rejected, Cancelled
	Reliever  string    `gorm:"not null;default:''"`
	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time
}

func (leaveRequestRecord) TableName() string {
	return "leave_requests"
}

func newLeaveRequestRecord(lr leave.LeaveRequest) leaveRequestRecord {
	return leaveRequestRecord{
		ID:        lr.ID,
		UserID:    lr.UserID,
		FullName:  lr.FullName,
		Role:      string(lr.Role),
		RouteFrom: lr.RouteFrom,
		RouteTo:   lr.RouteTo,
		FromDate:  leave.DateOnly(lr.FromDate),
		ToDate:    leave.DateOnly(lr.ToDate),
		LeaveType: string(lr.LeaveType),
		Reason:    lr.Reason,
		Status:    string(lr.Status),
		Reliever:  lr.Reliever,
		CreatedAt: lr.CreatedAt,
		UpdatedAt: lr.UpdatedAt,
	}
}

func (r leaveRequestRecord) toEntity() leave.LeaveRequest {
	return leave.LeaveRequest{
		ID:        r.ID,
		UserID:    r.UserID,
		FullName:  r.FullName,
		Role:      leave.RequesterRole(r.Role),
		RouteFrom: r.RouteFrom,
		RouteTo:   r.RouteTo,
		FromDate:  leave.DateOnly(r.FromDate),
		ToDate:    leave.DateOnly(r.ToDate),
		LeaveType: leave.LeaveType(r.LeaveType),
		Reason:    r.Reason,
		Status:    leave.Status(r.Status),
		Reliever:  r.Reliever,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}
