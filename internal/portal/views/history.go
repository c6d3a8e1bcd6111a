package views

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/Vijaykarthik1/tnstc-leave/internal/domain/leave"
	"github.com/Vijaykarthik1/tnstc-leave/internal/portal/analytics"
	"github.com/Vijaykarthik1/tnstc-leave/internal/portal/export"
	"github.com/Vijaykarthik1/tnstc-leave/internal/portal/lifecycle"
	"github.com/Vijaykarthik1/tnstc-leave/internal/portal/listing"
	"github.com/Vijaykarthik1/tnstc-leave/internal/portal/session"
)

// ErrIncompleteRange is returned when only one end of a date range is set.
var ErrIncompleteRange = errors.New("a date range needs both from and to")

type HistoryAPI interface {
	lifecycle.API
	ListByUser(ctx context.Context, userID string) ([]leave.LeaveRequest, error)
	FilterByUser(ctx context.Context, userID string, from, to time.Time) ([]leave.LeaveRequest, error)
}

// HistoryPage is a requester's own leave history.
type HistoryPage struct {
	api     HistoryAPI
	userID  string
	actions *lifecycle.Actions
	list    *listing.View
}

func NewHistoryPage(api HistoryAPI, sess session.Session) *HistoryPage {
	return &HistoryPage{
		api:     api,
		userID:  sess.User.ID,
		actions: lifecycle.NewActions(api, sess),
		list:    listing.NewView(listing.HistoryConfig),
	}
}

func (p *HistoryPage) List() *listing.View {
	return p.list
}

// Refresh refetches the history, asking the backend for the date range when
// one is set. On failure the current list is kept.
func (p *HistoryPage) Refresh(ctx context.Context) error {
	f := p.list.Filter()

	var rows []leave.LeaveRequest
	var err error
	if f.From.IsZero() {
		rows, err = p.api.ListByUser(ctx, p.userID)
	} else {
		rows, err = p.api.FilterByUser(ctx, p.userID, f.From, f.To)
	}
	if err != nil {
		return fmt.Errorf("load leave history: %w", err)
	}
	p.list.Load(rows)
	return nil
}

// SetFilter applies f. A change of date range refetches from the backend.
func (p *HistoryPage) SetFilter(ctx context.Context, f listing.Filter) error {
	if f.From.IsZero() != f.To.IsZero() {
		return ErrIncompleteRange
	}
	if f.From.After(f.To) {
		return leave.ErrInvalidDateRange
	}

	prev := p.list.Filter()
	p.list.SetFilter(f)
	if prev.From.Equal(f.From) && prev.To.Equal(f.To) {
		return nil
	}
	if err := p.Refresh(ctx); err != nil {
		p.list.SetFilter(prev)
		return err
	}
	return nil
}

func (p *HistoryPage) Cancel(ctx context.Context, id string, confirm lifecycle.Confirmer) (leave.LeaveRequest, error) {
	r, ok := p.list.Find(id)
	if !ok {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}
	updated, err := p.actions.Cancel(ctx, r, confirm)
	if err != nil {
		return leave.LeaveRequest{}, err
	}
	return updated, p.Refresh(ctx)
}

// Summary counts the fetched history by status.
func (p *HistoryPage) Summary() leave.Summary {
	return analytics.Summarize(p.list.All())
}

// LatestNotice is the message about the newest decided request, if any.
func (p *HistoryPage) LatestNotice() (string, bool) {
	r, ok := analytics.LatestDecision(p.list.All())
	if !ok {
		return "", false
	}
	return fmt.Sprintf("Your latest leave is %s", r.Status), true
}

func (p *HistoryPage) Export(w io.Writer, format export.Format) error {
	return export.Write(w, format, p.list.Rows())
}
