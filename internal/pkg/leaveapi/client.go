// Package leaveapi is the HTTP client for the leave portal REST API.
package leaveapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Vijaykarthik1/tnstc-leave/internal/domain/auth"
	"github.com/Vijaykarthik1/tnstc-leave/internal/domain/leave"
	"github.com/Vijaykarthik1/tnstc-leave/internal/domain/user"
)

// TokenSource returns the bearer token for the current session, or "" when
// signed out.
type TokenSource func() string

type Client struct {
	baseURL    string
	httpClient *http.Client
	token      TokenSource
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) {
		c.token = ts
	}
}

// NewClient builds a client for the API rooted at baseURL, for example
// http://localhost:5000.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
		token:      func() string { return "" },
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// LoginWithGoogle exchanges a Google ID token for a portal session.
func (c *Client) LoginWithGoogle(ctx context.Context, idToken string) (auth.LoginResponse, error) {
	var resp auth.LoginResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/google", auth.GoogleLoginRequest{Token: idToken}, &resp)
	return resp, err
}

func (c *Client) ApplyLeave(ctx context.Context, req leave.ApplyLeaveRequest) (leave.LeaveRequest, error) {
	var out leave.LeaveRequest
	err := c.do(ctx, http.MethodPost, "/api/leave/apply", req, &out)
	return out, err
}

func (c *Client) ListAll(ctx context.Context) ([]leave.LeaveRequest, error) {
	var out []leave.LeaveRequest
	err := c.do(ctx, http.MethodGet, "/api/leave/all", nil, &out)
	return out, err
}

func (c *Client) ListByUser(ctx context.Context, userID string) ([]leave.LeaveRequest, error) {
	var out []leave.LeaveRequest
	err := c.do(ctx, http.MethodGet, "/api/leave/user/"+url.PathEscape(userID), nil, &out)
	return out, err
}

// FilterByUser asks the backend for the user's requests whose period lies in [from, to].
func (c *Client) FilterByUser(ctx context.Context, userID string, from, to time.Time) ([]leave.LeaveRequest, error) {
	q := url.Values{}
	q.Set("from", from.Format(time.DateOnly))
	q.Set("to", to.Format(time.DateOnly))

	var out []leave.LeaveRequest
	err := c.do(ctx, http.MethodGet, "/api/leave/user/"+url.PathEscape(userID)+"/filter?"+q.Encode(), nil, &out)
	return out, err
}

func (c *Client) UpdateStatus(ctx context.Context, id string, req leave.UpdateStatusRequest) (leave.LeaveRequest, error) {
	var out leave.LeaveRequest
	err := c.do(ctx, http.MethodPatch, "/api/leave/"+url.PathEscape(id)+"/status", req, &out)
	return out, err
}

func (c *Client) Cancel(ctx context.Context, id string) (leave.LeaveRequest, error) {
	var out leave.LeaveRequest
	err := c.do(ctx, http.MethodPatch, "/api/leave/"+url.PathEscape(id)+"/cancel", nil, &out)
	return out, err
}

func (c *Client) Summary(ctx context.Context) (leave.Summary, error) {
	var out leave.Summary
	err := c.do(ctx, http.MethodGet, "/api/leave/summary", nil, &out)
	return out, err
}

// MonthlyStats returns per-month counts for year; year 0 lets the backend pick the current one.
func (c *Client) MonthlyStats(ctx context.Context, year int) ([]leave.MonthlyStat, error) {
	path := "/api/leave/monthly-stats"
	if year > 0 {
		path += "?year=" + strconv.Itoa(year)
	}
	var out []leave.MonthlyStat
	err := c.do(ctx, http.MethodGet, path, nil, &out)
	return out, err
}

func (c *Client) Relievers(ctx context.Context) ([]string, error) {
	var out leave.RelieversResponse
	if err := c.do(ctx, http.MethodGet, "/api/leave/relievers", nil, &out); err != nil {
		return nil, err
	}
	return out.Relievers, nil
}

// UploadProfilePhoto uploads an image and returns its public URL.
func (c *Client) UploadProfilePhoto(ctx context.Context, filename string, image io.Reader) (string, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("image", filename)
	if err != nil {
		return "", fmt.Errorf("build upload: %w", err)
	}
	if _, err := io.Copy(part, image); err != nil {
		return "", fmt.Errorf("build upload: %w", err)
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("build upload: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/api/upload/profile-photo", &body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	var out struct {
		ImageURL string `json:"imageUrl"`
	}
	if err := c.send(req, &out); err != nil {
		return "", err
	}
	return out.ImageURL, nil
}

func (c *Client) UpdateProfilePhoto(ctx context.Context, userID, photoURL string) (user.UpdateProfilePhotoResponse, error) {
	var out user.UpdateProfilePhotoResponse
	err := c.do(ctx, http.MethodPatch, "/api/user/"+url.PathEscape(userID)+"/profile-photo",
		user.UpdateProfilePhotoRequest{ProfilePhoto: photoURL}, &out)
	return out, err
}

// DownloadReport streams the server-rendered report ("xlsx" or "pdf") into w.
func (c *Client) DownloadReport(ctx context.Context, format string, q url.Values, w io.Writer) error {
	if q == nil {
		q = url.Values{}
	}
	q.Set("format", format)

	req, err := c.newRequest(ctx, http.MethodGet, "/api/leave/report?"+q.Encode(), nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("GET /api/leave/report: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return decodeError(resp)
	}
	if _, err := io.Copy(w, resp.Body); err != nil {
		return fmt.Errorf("read report: %w", err)
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := c.newRequest(ctx, method, path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.send(req, out)
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if token := c.token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req, nil
}

func (c *Client) send(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return decodeError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode %s %s: %w", req.Method, req.URL.Path, err)
	}
	return nil
}
