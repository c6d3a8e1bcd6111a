package leaveapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/Vijaykarthik1/tnstc-leave/internal/domain/leave"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorded struct {
	Method string
	Path   string
	Query  url.Values
	Auth   string
	Body   []byte
}

func newTestServer(t *testing.T, status int, reply any) (*httptest.Server, *[]recorded) {
	t.Helper()
	var calls []recorded
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		calls = append(calls, recorded{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  r.URL.Query(),
			Auth:   r.Header.Get("Authorization"),
			Body:   body,
		})
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(reply)
	}))
	t.Cleanup(srv.Close)
	return srv, &calls
}

func TestClient_UpdateStatus(t *testing.T) {
	srv, calls := newTestServer(t, http.StatusOK, leave.LeaveRequest{ID: "l-1", Status: leave.StatusApproved, Reliever: "Ravi Kumar"})
	c := NewClient(srv.URL+"/", WithTokenSource(func() string { return "tok" }))

	got, err := c.UpdateStatus(context.Background(), "l-1", leave.UpdateStatusRequest{Status: leave.StatusApproved, Reliever: "Ravi Kumar"})
	require.NoError(t, err)
	assert.Equal(t, "Ravi Kumar", got.Reliever)

	require.Len(t, *calls, 1)
	call := (*calls)[0]
	assert.Equal(t, http.MethodPatch, call.Method)
	assert.Equal(t, "/api/leave/l-1/status", call.Path)
	assert.Equal(t, "Bearer tok", call.Auth)
	assert.JSONEq(t, `{"status":"Approved","reliever":"Ravi Kumar"}`, string(call.Body))
}

func TestClient_RejectOmitsReliever(t *testing.T) {
	srv, calls := newTestServer(t, http.StatusOK, leave.LeaveRequest{ID: "l-1", Status: leave.StatusRejected})
	c := NewClient(srv.URL)

	_, err := c.UpdateStatus(context.Background(), "l-1", leave.UpdateStatusRequest{Status: leave.StatusRejected})
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"Rejected"}`, string((*calls)[0].Body))
	assert.Empty(t, (*calls)[0].Auth)
}

func TestClient_FilterByUser(t *testing.T) {
	srv, calls := newTestServer(t, http.StatusOK, []leave.LeaveRequest{{ID: "a"}, {ID: "b"}})
	c := NewClient(srv.URL)

	from := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)
	rows, err := c.FilterByUser(context.Background(), "u-1", from, to)
	require.NoError(t, err)
	assert.Len(t, rows, 2)

	call := (*calls)[0]
	assert.Equal(t, "/api/leave/user/u-1/filter", call.Path)
	assert.Equal(t, "2025-03-01", call.Query.Get("from"))
	assert.Equal(t, "2025-03-31", call.Query.Get("to"))
}

func TestClient_MonthlyStatsYear(t *testing.T) {
	srv, calls := newTestServer(t, http.StatusOK, []leave.MonthlyStat{{Month: 1, Total: 2}})
	c := NewClient(srv.URL)

	stats, err := c.MonthlyStats(context.Background(), 2024)
	require.NoError(t, err)
	assert.Equal(t, 1, stats[0].Month)
	assert.Equal(t, "2024", (*calls)[0].Query.Get("year"))

	_, err = c.MonthlyStats(context.Background(), 0)
	require.NoError(t, err)
	assert.False(t, (*calls)[1].Query.Has("year"))
}

func TestClient_ErrorEnvelope(t *testing.T) {
	srv, _ := newTestServer(t, http.StatusConflict, map[string]any{
		"success": false,
		"error": map[string]any{
			"code":    "CONFLICT",
			"message": "Leave request already processed",
		},
	})
	c := NewClient(srv.URL)

	_, err := c.Cancel(context.Background(), "l-1")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.StatusCode)
	assert.Equal(t, "CONFLICT", apiErr.Code)
	assert.Equal(t, "Leave request already processed", apiErr.Message)
	assert.True(t, IsStatus(err, http.StatusConflict))
	assert.False(t, IsStatus(err, http.StatusNotFound))
}

func TestClient_ErrorWithoutEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gateway down", http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).ListAll(context.Background())
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "gateway down", apiErr.Message)
}

func TestClient_UploadProfilePhoto(t *testing.T) {
	var field, filename string
	var content []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		file, header, err := r.FormFile("image")
		if err == nil {
			field = "image"
			filename = header.Filename
			content, _ = io.ReadAll(file)
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"imageUrl": "http://localhost:5000/uploads/p.png"})
	}))
	defer srv.Close()

	got, err := NewClient(srv.URL).UploadProfilePhoto(context.Background(), "me.png", bytes.NewReader([]byte("png-bytes")))
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:5000/uploads/p.png", got)
	assert.Equal(t, "image", field)
	assert.Equal(t, "me.png", filename)
	assert.Equal(t, []byte("png-bytes"), content)
}

func TestClient_DownloadReport(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "pdf", r.URL.Query().Get("format"))
		assert.Equal(t, "Pending", r.URL.Query().Get("status"))
		_, _ = w.Write([]byte("%PDF-1.3"))
	}))
	defer srv.Close()

	var buf bytes.Buffer
	err := NewClient(srv.URL).DownloadReport(context.Background(), "pdf", url.Values{"status": {"Pending"}}, &buf)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.3", buf.String())
}
