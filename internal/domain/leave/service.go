package leave

import (
	"context"

	"github.com/Vijaykarthik1/tnstc-leave/internal/domain/user"
)

type LeaveService interface {
	Apply(ctx context.Context, req ApplyLeaveRequest) (LeaveRequest, error)
	ListAll(ctx context.Context) ([]LeaveRequest, error)
	ListByUser(ctx context.Context, actorID string, actorRole user.Role, userID string) ([]LeaveRequest, error)
	FilterByUser(ctx context.Context, actorID string, actorRole user.Role, userID string, filter DateRangeFilter) ([]LeaveRequest, error)
	UpdateStatus(ctx context.Context, id string, req UpdateStatusRequest) (LeaveRequest, error)
	Cancel(ctx context.Context, id string, actorID string) (LeaveRequest, error)
	Summary(ctx context.Context) (Summary, error)
	MonthlyStats(ctx context.Context, year int) ([]MonthlyStat, error)
	Relievers() []string
}
