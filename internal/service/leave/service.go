package leave

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Vijaykarthik1/tnstc-leave/internal/domain/leave"
	"github.com/Vijaykarthik1/tnstc-leave/internal/domain/user"
	"github.com/Vijaykarthik1/tnstc-leave/internal/pkg/validator"
)

type LeaveServiceImpl struct {
	leave.LeaveRequestRepository
	user.UserRepository
	relievers []string
	now       func() time.Time
}

func NewLeaveService(leaveRequestRepository leave.LeaveRequestRepository, userRepository user.UserRepository, relievers []string) leave.LeaveService {
	return &LeaveServiceImpl{
		LeaveRequestRepository: leaveRequestRepository,
		UserRepository:         userRepository,
		relievers:              relievers,
		now:                    time.Now,
	}
}

// Apply implements leave.LeaveService.
func (l *LeaveServiceImpl) Apply(ctx context.Context, req leave.ApplyLeaveRequest) (leave.LeaveRequest, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequest{}, err
	}

	if _, err := l.UserRepository.GetByID(ctx, req.UserID); err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to get requester: %w", err)
	}

	created, err := l.LeaveRequestRepository.Create(ctx, req.ToEntity())
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}
	return created, nil
}

// ListAll implements leave.LeaveService.
func (l *LeaveServiceImpl) ListAll(ctx context.Context) ([]leave.LeaveRequest, error) {
	requests, err := l.LeaveRequestRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	return requests, nil
}

// ListByUser implements leave.LeaveService.
func (l *LeaveServiceImpl) ListByUser(ctx context.Context, actorID string, actorRole user.Role, userID string) ([]leave.LeaveRequest, error) {
	if err := canReadHistory(actorID, actorRole, userID); err != nil {
		return nil, err
	}

	requests, err := l.LeaveRequestRepository.ListByUser(ctx, userID, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests of user: %w", err)
	}
	return requests, nil
}

// FilterByUser implements leave.LeaveService.
func (l *LeaveServiceImpl) FilterByUser(ctx context.Context, actorID string, actorRole user.Role, userID string, filter leave.DateRangeFilter) ([]leave.LeaveRequest, error) {
	if err := canReadHistory(actorID, actorRole, userID); err != nil {
		return nil, err
	}

	from, to, err := filter.Parse()
	if err != nil {
		return nil, err
	}

	requests, err := l.LeaveRequestRepository.ListByUser(ctx, userID, &from, &to)
	if err != nil {
		return nil, fmt.Errorf("failed to filter leave requests of user: %w", err)
	}
	return requests, nil
}

// UpdateStatus implements leave.LeaveService.
func (l *LeaveServiceImpl) UpdateStatus(ctx context.Context, id string, req leave.UpdateStatusRequest) (leave.LeaveRequest, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequest{}, err
	}

	reliever := strings.TrimSpace(req.Reliever)
	if req.Status == leave.StatusApproved && !validator.IsInSlice(reliever, l.relievers) {
		return leave.LeaveRequest{}, leave.ErrUnknownReliever
	}

	return l.transition(ctx, id, req.Status, reliever)
}

// Cancel implements leave.LeaveService.
func (l *LeaveServiceImpl) Cancel(ctx context.Context, id string, actorID string) (leave.LeaveRequest, error) {
	current, err := l.LeaveRequestRepository.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveRequest{}, err
	}
	if current.UserID != actorID {
		return leave.LeaveRequest{}, leave.ErrNotRequestOwner
	}

	return l.transition(ctx, id, leave.StatusCancelled, "")
}

// transition checks the move against the stored request and persists it
// conditionally, so a concurrent reviewer that got there first yields
// ErrLeaveRequestAlreadyProcessed instead of an overwrite.
func (l *LeaveServiceImpl) transition(ctx context.Context, id string, to leave.Status, reliever string) (leave.LeaveRequest, error) {
	current, err := l.LeaveRequestRepository.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	from := current.Status
	if err := current.Transition(to, reliever); err != nil {
		return leave.LeaveRequest{}, err
	}

	updated, err := l.LeaveRequestRepository.UpdateStatus(ctx, id, from, current.Status, current.Reliever)
	if err != nil {
		return leave.LeaveRequest{}, err
	}
	return updated, nil
}

// Summary implements leave.LeaveService.
func (l *LeaveServiceImpl) Summary(ctx context.Context) (leave.Summary, error) {
	summary, err := l.LeaveRequestRepository.Summary(ctx)
	if err != nil {
		return leave.Summary{}, fmt.Errorf("failed to summarize leave requests: %w", err)
	}
	return summary, nil
}

// MonthlyStats implements leave.LeaveService. A zero year means the current one.
func (l *LeaveServiceImpl) MonthlyStats(ctx context.Context, year int) ([]leave.MonthlyStat, error) {
	if year == 0 {
		year = l.now().Year()
	}
	stats, err := l.LeaveRequestRepository.MonthlyStats(ctx, year)
	if err != nil {
		return nil, fmt.Errorf("failed to get monthly stats: %w", err)
	}
	return stats, nil
}

// Relievers implements leave.LeaveService.
func (l *LeaveServiceImpl) Relievers() []string {
	out := make([]string, len(l.relievers))
	copy(out, l.relievers)
	return out
}

func canReadHistory(actorID string, actorRole user.Role, userID string) error {
	if actorRole == user.RoleAdmin || actorID == userID {
		return nil
	}
	return user.ErrNotResourceOwner
}
