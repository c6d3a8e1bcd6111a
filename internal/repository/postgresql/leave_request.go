package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/Vijaykarthik1/tnstc-leave/internal/domain/leave"
	"github.com/Vijaykarthik1/tnstc-leave/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const leaveRequestColumns = `
	id, user_id, full_name, role, route_from, route_to, from_date, to_date,
	leave_type, reason, status, reliever, created_at, updated_at
`

type leaveRequestRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepositoryImpl{db: db}
}

func scanLeaveRequest(row pgx.Row) (leave.LeaveRequest, error) {
	var lr leave.LeaveRequest
	err := row.Scan(
		&lr.ID,
		&lr.UserID,
		&lr.FullName,
		&lr.Role,
		&lr.RouteFrom,
		&lr.RouteTo,
		&lr.FromDate,
		&lr.ToDate,
		&lr.LeaveType,
		&lr.Reason,
		&lr.Status,
		&lr.Reliever,
		&lr.CreatedAt,
		&lr.UpdatedAt,
	)
	if err != nil {
		return leave.LeaveRequest{}, err
	}
	lr.FromDate = leave.DateOnly(lr.FromDate)
	lr.ToDate = leave.DateOnly(lr.ToDate)
	return lr, nil
}

func collectLeaveRequests(rows pgx.Rows) ([]leave.LeaveRequest, error) {
	defer rows.Close()

	requests := []leave.LeaveRequest{}
	for rows.Next() {
		lr, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, lr)
	}
	return requests, rows.Err()
}

// Create implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (
			user_id, full_name, role, route_from, route_to,
			from_date, to_date, leave_type, reason, status, reliever
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, '')
		RETURNING ` + leaveRequestColumns

	return scanLeaveRequest(q.QueryRow(ctx, query,
		request.UserID,
		request.FullName,
		request.Role,
		request.RouteFrom,
		request.RouteTo,
		request.FromDate,
		request.ToDate,
		request.LeaveType,
		request.Reason,
		leave.StatusPending,
	))
}

// GetByID implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + leaveRequestColumns + ` FROM leave_requests WHERE id = $1`

	lr, err := scanLeaveRequest(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, err
	}
	return lr, nil
}

// List implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) List(ctx context.Context) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + leaveRequestColumns + ` FROM leave_requests ORDER BY created_at DESC, id DESC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	return collectLeaveRequests(rows)
}

// ListByUser implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) ListByUser(ctx context.Context, userID string, from, to *time.Time) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + leaveRequestColumns + ` FROM leave_requests WHERE user_id = $1`
	args := []interface{}{userID}
	if from != nil && to != nil {
		query += ` AND from_date >= $2 AND to_date <= $3`
		args = append(args, leave.DateOnly(*from), leave.DateOnly(*to))
	}
	query += ` ORDER BY created_at DESC, id DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return collectLeaveRequests(rows)
}

// UpdateStatus implements leave.LeaveRequestRepository.
// The row is only touched while it still holds status from, so two reviewers
// racing on the same request cannot both win.
func (r *leaveRequestRepositoryImpl) UpdateStatus(ctx context.Context, id string, from, to leave.Status, reliever string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET status = $3, reliever = $4, updated_at = NOW()
		WHERE id = $1 AND status = $2
		RETURNING ` + leaveRequestColumns

	lr, err := scanLeaveRequest(q.QueryRow(ctx, query, id, from, to, reliever))
	if err == nil {
		return lr, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return leave.LeaveRequest{}, err
	}

	if _, err := r.GetByID(ctx, id); err != nil {
		return leave.LeaveRequest{}, err
	}
	return leave.LeaveRequest{}, leave.ErrLeaveRequestAlreadyProcessed
}

// Summary implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) Summary(ctx context.Context) (leave.Summary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = 'Approved'),
			COUNT(*) FILTER (WHERE status = 'Pending'),
			COUNT(*) FILTER (WHERE status = 'Rejected')
		FROM leave_requests
	`

	var s leave.Summary
	if err := q.QueryRow(ctx, query).Scan(&s.Total, &s.Approved, &s.Pending, &s.Rejected); err != nil {
		return leave.Summary{}, err
	}
	return s, nil
}

// MonthlyStats implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) MonthlyStats(ctx context.Context, year int) ([]leave.MonthlyStat, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			EXTRACT(MONTH FROM from_date)::int AS month,
			COUNT(*),
			COUNT(*) FILTER (WHERE status = 'Approved'),
			COUNT(*) FILTER (WHERE status = 'Rejected')
		FROM leave_requests
		WHERE EXTRACT(YEAR FROM from_date)::int = $1
		GROUP BY month
		ORDER BY month ASC
	`

	rows, err := q.Query(ctx, query, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats := []leave.MonthlyStat{}
	for rows.Next() {
		var m leave.MonthlyStat
		if err := rows.Scan(&m.Month, &m.Total, &m.Approved, &m.Rejected); err != nil {
			return nil, err
		}
		stats = append(stats, m)
	}
	return stats, rows.Err()
}
