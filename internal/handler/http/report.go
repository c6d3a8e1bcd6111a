package http

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/Vijaykarthik1/tnstc-leave/internal/domain/leave"
	"github.com/Vijaykarthik1/tnstc-leave/internal/handler/http/response"
	"github.com/Vijaykarthik1/tnstc-leave/internal/pkg/validator"
	"github.com/Vijaykarthik1/tnstc-leave/internal/portal/export"
	"github.com/Vijaykarthik1/tnstc-leave/internal/portal/listing"
)

type ReportHandler interface {
	GetLeaveReport(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	leaveService leave.LeaveService
}

// GetLeaveReport implements ReportHandler.
func (h *ReportHandlerImpl) GetLeaveReport(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	format, err := export.ParseFormat(q.Get("format"))
	if err != nil {
		response.BadRequest(w, "format must be xlsx or pdf", nil)
		return
	}

	filter, err := reportFilter(q.Get("name"), q.Get("status"), q.Get("from"), q.Get("to"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	requests, err := h.leaveService.ListAll(r.Context())
	if err != nil {
		slog.Error("GetLeaveReport service error", "error", err)
		response.HandleError(w, err)
		return
	}
	rows := listing.Apply(requests, filter)

	// Render fully before writing so a failure still gets a JSON error.
	var buf bytes.Buffer
	if err := export.Write(&buf, format, rows); err != nil {
		slog.Error("GetLeaveReport render error", "error", err, "format", format)
		response.InternalServerError(w, "Failed to generate report")
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", format.FileName()))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("GetLeaveReport write error", "error", err)
	}
}

func reportFilter(name, status, from, to string) (listing.Filter, error) {
	var errs validator.ValidationErrors

	st, ok := listing.ParseStatus(status)
	if !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be Pending, Approved, Rejected or Cancelled",
		})
	}

	f := listing.Filter{Name: name, Status: st}
	for _, bound := range []struct {
		field string
		value string
		dst   *time.Time
	}{{"from", from, &f.From}, {"to", to, &f.To}} {
		if bound.value == "" {
			continue
		}
		t, err := time.Parse(time.DateOnly, bound.value)
		if err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   bound.field,
				Message: bound.field + " must be in YYYY-MM-DD format",
			})
			continue
		}
		*bound.dst = t
	}
	if !f.From.IsZero() && !f.To.IsZero() && f.From.After(f.To) {
		errs = append(errs, validator.ValidationError{
			Field:   "to",
			Message: "from must not be after to",
		})
	}

	if len(errs) > 0 {
		return listing.Filter{}, errs
	}
	return f, nil
}

func NewReportHandler(leaveService leave.LeaveService) ReportHandler {
	return &ReportHandlerImpl{
		leaveService: leaveService,
	}
}
