// Package views composes the listing, lifecycle and analytics packages into
// the screens of the portal.
package views

import (
	"context"
	"fmt"
	"io"

	"github.com/Vijaykarthik1/tnstc-leave/internal/domain/leave"
	"github.com/Vijaykarthik1/tnstc-leave/internal/portal/analytics"
	"github.com/Vijaykarthik1/tnstc-leave/internal/portal/export"
	"github.com/Vijaykarthik1/tnstc-leave/internal/portal/lifecycle"
	"github.com/Vijaykarthik1/tnstc-leave/internal/portal/listing"
	"github.com/Vijaykarthik1/tnstc-leave/internal/portal/session"
)

type AdminAPI interface {
	lifecycle.API
	ListAll(ctx context.Context) ([]leave.LeaveRequest, error)
	Summary(ctx context.Context) (leave.Summary, error)
	MonthlyStats(ctx context.Context, year int) ([]leave.MonthlyStat, error)
	Relievers(ctx context.Context) ([]string, error)
}

// AdminPanel lists every leave request for review.
type AdminPanel struct {
	api     AdminAPI
	actions *lifecycle.Actions
	list    *listing.View
}

func NewAdminPanel(api AdminAPI, sess session.Session) *AdminPanel {
	return &AdminPanel{
		api:     api,
		actions: lifecycle.NewActions(api, sess),
		list:    listing.NewView(listing.AdminConfig),
	}
}

func (p *AdminPanel) List() *listing.View {
	return p.list
}

// Refresh refetches every request. On failure the current list is kept.
func (p *AdminPanel) Refresh(ctx context.Context) error {
	rows, err := p.api.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("load leave requests: %w", err)
	}
	p.list.Load(rows)
	return nil
}

func (p *AdminPanel) Approve(ctx context.Context, id, reliever string) (leave.LeaveRequest, error) {
	r, err := p.find(id)
	if err != nil {
		return leave.LeaveRequest{}, err
	}
	updated, err := p.actions.Approve(ctx, r, reliever)
	if err != nil {
		return leave.LeaveRequest{}, err
	}
	return updated, p.Refresh(ctx)
}

func (p *AdminPanel) Reject(ctx context.Context, id string) (leave.LeaveRequest, error) {
	r, err := p.find(id)
	if err != nil {
		return leave.LeaveRequest{}, err
	}
	updated, err := p.actions.Reject(ctx, r)
	if err != nil {
		return leave.LeaveRequest{}, err
	}
	return updated, p.Refresh(ctx)
}

func (p *AdminPanel) Relievers(ctx context.Context) ([]string, error) {
	return p.api.Relievers(ctx)
}

// Summary is the organization-wide status count computed by the backend.
func (p *AdminPanel) Summary(ctx context.Context) (leave.Summary, error) {
	return p.api.Summary(ctx)
}

// MonthlyTrend is the labelled monthly chart for year.
func (p *AdminPanel) MonthlyTrend(ctx context.Context, year int) ([]analytics.MonthPoint, error) {
	stats, err := p.api.MonthlyStats(ctx, year)
	if err != nil {
		return nil, fmt.Errorf("load monthly stats: %w", err)
	}
	return analytics.LabelMonths(stats), nil
}

// UserStats counts one requester's records among the fetched requests.
func (p *AdminPanel) UserStats(userID string) analytics.UserStats {
	return analytics.StatsForUser(p.list.All(), userID)
}

// Export writes the filtered rows, across all pages, in format.
func (p *AdminPanel) Export(w io.Writer, format export.Format) error {
	return export.Write(w, format, p.list.Rows())
}

func (p *AdminPanel) find(id string) (leave.LeaveRequest, error) {
	r, ok := p.list.Find(id)
	if !ok {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}
	return r, nil
}
