package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/Vijaykarthik1/tnstc-leave/internal/domain/leave"
	"github.com/Vijaykarthik1/tnstc-leave/internal/handler/http/middleware"
	"github.com/Vijaykarthik1/tnstc-leave/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type LeaveHandler interface {
	Apply(w http.ResponseWriter, r *http.Request)
	ListAll(w http.ResponseWriter, r *http.Request)
	Summary(w http.ResponseWriter, r *http.Request)
	MonthlyStats(w http.ResponseWriter, r *http.Request)
	ListByUser(w http.ResponseWriter, r *http.Request)
	FilterByUser(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
	Cancel(w http.ResponseWriter, r *http.Request)
	Relievers(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService leave.LeaveService
}

// Apply implements LeaveHandler.
func (l *LeaveHandlerImpl) Apply(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req leave.ApplyLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Apply decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// The requester is always the caller, whatever the body says.
	req.UserID = actor.ID

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := l.leaveService.Apply(r.Context(), req)
	if err != nil {
		slog.Error("Apply service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Leave request submitted", "leave_id", created.ID, "user_id", actor.ID)
	response.Created(w, created)
}

// ListAll implements LeaveHandler.
func (l *LeaveHandlerImpl) ListAll(w http.ResponseWriter, r *http.Request) {
	requests, err := l.leaveService.ListAll(r.Context())
	if err != nil {
		slog.Error("ListAll service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.OK(w, requests)
}

// Summary implements LeaveHandler.
func (l *LeaveHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := l.leaveService.Summary(r.Context())
	if err != nil {
		slog.Error("Summary service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.OK(w, summary)
}

// MonthlyStats implements LeaveHandler.
func (l *LeaveHandlerImpl) MonthlyStats(w http.ResponseWriter, r *http.Request) {
	year := 0
	if raw := r.URL.Query().Get("year"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 {
			response.BadRequest(w, "Invalid year", map[string]string{"year": "year must be a positive number"})
			return
		}
		year = v
	}

	stats, err := l.leaveService.MonthlyStats(r.Context(), year)
	if err != nil {
		slog.Error("MonthlyStats service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.OK(w, stats)
}

// ListByUser implements LeaveHandler.
func (l *LeaveHandlerImpl) ListByUser(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	requests, err := l.leaveService.ListByUser(r.Context(), actor.ID, actor.Role, chi.URLParam(r, "userId"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.OK(w, requests)
}

// FilterByUser implements LeaveHandler.
func (l *LeaveHandlerImpl) FilterByUser(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	filter := leave.DateRangeFilter{
		From: r.URL.Query().Get("from"),
		To:   r.URL.Query().Get("to"),
	}

	requests, err := l.leaveService.FilterByUser(r.Context(), actor.ID, actor.Role, chi.URLParam(r, "userId"), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.OK(w, requests)
}

// UpdateStatus implements LeaveHandler.
func (l *LeaveHandlerImpl) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req leave.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateStatus decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	id := chi.URLParam(r, "id")
	updated, err := l.leaveService.UpdateStatus(r.Context(), id, req)
	if err != nil {
		slog.Error("UpdateStatus service error", "error", err, "leave_id", id)
		response.HandleError(w, err)
		return
	}

	slog.Info("Leave request reviewed", "leave_id", id, "status", updated.Status, "reliever", updated.Reliever)
	response.OK(w, updated)
}

// Cancel implements LeaveHandler.
func (l *LeaveHandlerImpl) Cancel(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	id := chi.URLParam(r, "id")
	cancelled, err := l.leaveService.Cancel(r.Context(), id, actor.ID)
	if err != nil {
		slog.Error("Cancel service error", "error", err, "leave_id", id)
		response.HandleError(w, err)
		return
	}

	slog.Info("Leave request cancelled", "leave_id", id, "user_id", actor.ID)
	response.OK(w, cancelled)
}

// Relievers implements LeaveHandler.
func (l *LeaveHandlerImpl) Relievers(w http.ResponseWriter, r *http.Request) {
	response.OK(w, leave.RelieversResponse{Relievers: l.leaveService.Relievers()})
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &LeaveHandlerImpl{leaveService: leaveService}
}
