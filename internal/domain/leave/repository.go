package leave

import (
	"context"
	"time"
)

// LeaveRequestRepository - interface for leave_requests table.
// List methods return newest first (created_at DESC).
type LeaveRequestRepository interface {
	Create(ctx context.Context, request LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)
	List(ctx context.Context) ([]LeaveRequest, error)
	// ListByUser returns the user's requests whose period lies within [from, to]
	// when both bounds are given.
	ListByUser(ctx context.Context, userID string, from, to *time.Time) ([]LeaveRequest, error)
	// UpdateStatus applies the change only while the stored status equals from.
	UpdateStatus(ctx context.Context, id string, from, to Status, reliever string) (LeaveRequest, error)
	Summary(ctx context.Context) (Summary, error)
	MonthlyStats(ctx context.Context, year int) ([]MonthlyStat, error)
}
