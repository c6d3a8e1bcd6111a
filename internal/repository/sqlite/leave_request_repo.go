package sqlite

import (
	"context"
	"errors"
	"time"

	"github.com/Vijaykarthik1/tnstc-leave/internal/domain/leave"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GormLeaveRequestRepository struct {
	db *gorm.DB
}

func NewGormLeaveRequestRepository(db *gorm.DB) (leave.LeaveRequestRepository, error) {
	if err := db.AutoMigrate(&leaveRequestRecord{}); err != nil {
		return nil, err
	}
	return &GormLeaveRequestRepository{db: db}, nil
}

func toEntities(recs []leaveRequestRecord) []leave.LeaveRequest {
	out := make([]leave.LeaveRequest, 0, len(recs))
	for _, rec := range recs {
		out = append(out, rec.toEntity())
	}
	return out
}

func (r *GormLeaveRequestRepository) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	rec := newLeaveRequestRecord(request)
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	rec.Status = string(leave.StatusPending)
	rec.Reliever = ""
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return leave.LeaveRequest{}, err
	}
	return rec.toEntity(), nil
}

func (r *GormLeaveRequestRepository) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	var rec leaveRequestRecord
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}
	if err != nil {
		return leave.LeaveRequest{}, err
	}
	return rec.toEntity(), nil
}

func (r *GormLeaveRequestRepository) List(ctx context.Context) ([]leave.LeaveRequest, error) {
	var recs []leaveRequestRecord
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&recs).Error
	if err != nil {
		return nil, err
	}
	return toEntities(recs), nil
}

func (r *GormLeaveRequestRepository) ListByUser(ctx context.Context, userID string, from, to *time.Time) ([]leave.LeaveRequest, error) {
	q := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if from != nil && to != nil {
		q = q.Where("from_date >= ? AND to_date <= ?", leave.DateOnly(*from), leave.DateOnly(*to))
	}

	var recs []leaveRequestRecord
	if err := q.Order("created_at DESC").Find(&recs).Error; err != nil {
		return nil, err
	}
	return toEntities(recs), nil
}

// UpdateStatus changes the row only while it is still in status from.
func (r *GormLeaveRequestRepository) UpdateStatus(ctx context.Context, id string, from, to leave.Status, reliever string) (leave.LeaveRequest, error) {
	res := r.db.WithContext(ctx).Model(&leaveRequestRecord{}).
		Where("id = ? AND status = ?", id, string(from)).
		Updates(map[string]interface{}{
			"status":     string(to),
			"reliever":   reliever,
			"updated_at": time.Now().UTC(),
		})
	if res.Error != nil {
		return leave.LeaveRequest{}, res.Error
	}

	current, err := r.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveRequest{}, err
	}
	if res.RowsAffected == 0 {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestAlreadyProcessed
	}
	return current, nil
}

func (r *GormLeaveRequestRepository) Summary(ctx context.Context) (leave.Summary, error) {
	var rows []struct {
		Status string
		Count  int
	}
	err := r.db.WithContext(ctx).Model(&leaveRequestRecord{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return leave.Summary{}, err
	}

	var s leave.Summary
	for _, row := range rows {
		s.Total += row.Count
		switch leave.Status(row.Status) {
		case leave.StatusApproved:
			s.Approved = row.Count
		case leave.StatusPending:
			s.Pending = row.Count
		case leave.StatusRejected:
			s.Rejected = row.Count
		}
	}
	return s, nil
}

// MonthlyStats groups the year's requests by the month of their start date.
func (r *GormLeaveRequestRepository) MonthlyStats(ctx context.Context, year int) ([]leave.MonthlyStat, error) {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(1, 0, 0)

	var recs []leaveRequestRecord
	err := r.db.WithContext(ctx).
		Select("from_date", "status").
		Where("from_date >= ? AND from_date < ?", start, end).
		Find(&recs).Error
	if err != nil {
		return nil, err
	}

	var byMonth [13]leave.MonthlyStat
	for _, rec := range recs {
		m := int(rec.FromDate.UTC().Month())
		byMonth[m].Month = m
		byMonth[m].Total++
		switch leave.Status(rec.Status) {
		case leave.StatusApproved:
			byMonth[m].Approved++
		case leave.StatusRejected:
			byMonth[m].Rejected++
		}
	}

	stats := []leave.MonthlyStat{}
	for m := 1; m <= 12; m++ {
		if byMonth[m].Total > 0 {
			stats = append(stats, byMonth[m])
		}
	}
	return stats, nil
}
