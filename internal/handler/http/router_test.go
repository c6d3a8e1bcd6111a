package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Vijaykarthik1/tnstc-leave/internal/domain/auth"
	"github.com/Vijaykarthik1/tnstc-leave/internal/domain/leave"
	"github.com/Vijaykarthik1/tnstc-leave/internal/pkg/database"
	"github.com/Vijaykarthik1/tnstc-leave/internal/pkg/jwt"
	"github.com/Vijaykarthik1/tnstc-leave/internal/pkg/oauth"
	"github.com/Vijaykarthik1/tnstc-leave/internal/pkg/storage"
	"github.com/Vijaykarthik1/tnstc-leave/internal/repository/sqlite"
	authService "github.com/Vijaykarthik1/tnstc-leave/internal/service/auth"
	"github.com/Vijaykarthik1/tnstc-leave/internal/service/file"
	leaveService "github.com/Vijaykarthik1/tnstc-leave/internal/service/leave"
	userService "github.com/Vijaykarthik1/tnstc-leave/internal/service/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

const handlerTestSecret = "test-secret-key-for-jwt"

// fakeGoogle accepts ID tokens of the form "id:<email>".
type fakeGoogle struct{}

func (fakeGoogle) GenerateState() (string, error)   { return "state-1", nil }
func (fakeGoogle) RedirectURL(state string) string { return "https://accounts.google.com/o/oauth2/auth?state=" + state }
func (fakeGoogle) VerifyToken(ctx context.Context, code string) (*oauth2.Token, error) {
	return nil, errors.New("code flow not available in tests")
}
func (fakeGoogle) VerifyUser(ctx context.Context, token *oauth2.Token) (oauth.GoogleInformation, error) {
	return oauth.GoogleInformation{}, errors.New("code flow not available in tests")
}
func (fakeGoogle) VerifyIDToken(ctx context.Context, idToken string) (oauth.GoogleInformation, error) {
	var email string
	if _, err := fmt.Sscanf(idToken, "id:%s", &email); err != nil {
		return oauth.GoogleInformation{}, errors.New("bad token")
	}
	return oauth.GoogleInformation{GoogleID: "g-" + email, Email: email, VerifiedEmail: true, Name: email}, nil
}

type testAPI struct {
	t      *testing.T
	server *httptest.Server
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	db, err := database.NewSQLiteDB(":memory:")
	require.NoError(t, err)
	users, err := sqlite.NewGormUserRepository(db)
	require.NoError(t, err)
	leaves, err := sqlite.NewGormLeaveRequestRepository(db)
	require.NoError(t, err)

	uploadDir := t.TempDir()
	store, err := storage.NewLocalStorage(uploadDir, "http://localhost:5000/uploads")
	require.NoError(t, err)

	jwtSvc := jwt.NewJWTService(handlerTestSecret, "1h")
	google := fakeGoogle{}
	photos := file.NewFileService(store)
	leaveSvc := leaveService.NewLeaveService(leaves, users, []string{"Ravi Kumar", "Sathish M"})

	router := NewRouter(
		jwtSvc,
		RouterOptions{Env: "test", AllowedOrigins: []string{"http://localhost:3000"}, UploadDir: uploadDir},
		NewAuthHandler(authService.NewAuthService(users, jwtSvc, google, []string{"admin@tnstc.in"}), google),
		NewLeaveHandler(leaveSvc),
		NewUserHandler(userService.NewUserService(users, photos), photos),
		NewReportHandler(leaveSvc),
	)

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return &testAPI{t: t, server: srv}
}

func (a *testAPI) call(method, path, token string, body any) *http.Response {
	a.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(a.t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, a.server.URL+path, &buf)
	require.NoError(a.t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(a.t, err)
	a.t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func (a *testAPI) login(email string) auth.LoginResponse {
	a.t.Helper()
	resp := a.call(http.MethodPost, "/api/auth/google", "", auth.GoogleLoginRequest{Token: "id:" + email})
	require.Equal(a.t, http.StatusOK, resp.StatusCode)
	var out auth.LoginResponse
	require.NoError(a.t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func applyBody(fromDate, toDate string) leave.ApplyLeaveRequest {
	return leave.ApplyLeaveRequest{
		FullName:  "Murugan",
		Role:      "Driver",
		RouteFrom: "Madurai",
		RouteTo:   "Trichy",
		FromDate:  fromDate,
		ToDate:    toDate,
		LeaveType: "Casual Leave",
		Reason:    "Family function",
	}
}

func TestRouter_GoogleLogin(t *testing.T) {
	api := newTestAPI(t)

	driver := api.login("murugan@tnstc.in")
	assert.Equal(t, "driver", string(driver.User.Role))
	assert.NotEmpty(t, driver.Token)

	admin := api.login("admin@tnstc.in")
	assert.Equal(t, "admin", string(admin.User.Role))

	resp := api.call(http.MethodPost, "/api/auth/google", "", auth.GoogleLoginRequest{Token: "garbage"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = api.call(http.MethodPost, "/api/auth/google", "", auth.GoogleLoginRequest{})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestRouter_Authorization(t *testing.T) {
	api := newTestAPI(t)
	driver := api.login("murugan@tnstc.in")
	other := api.login("selvi@tnstc.in")
	admin := api.login("admin@tnstc.in")

	assert.Equal(t, http.StatusUnauthorized, api.call(http.MethodGet, "/api/leave/all", "", nil).StatusCode)
	assert.Equal(t, http.StatusUnauthorized, api.call(http.MethodGet, "/api/leave/all", "not-a-jwt", nil).StatusCode)
	assert.Equal(t, http.StatusForbidden, api.call(http.MethodGet, "/api/leave/all", driver.Token, nil).StatusCode)
	assert.Equal(t, http.StatusForbidden, api.call(http.MethodGet, "/api/leave/summary", driver.Token, nil).StatusCode)
	assert.Equal(t, http.StatusOK, api.call(http.MethodGet, "/api/leave/all", admin.Token, nil).StatusCode)

	assert.Equal(t, http.StatusForbidden, api.call(http.MethodPost, "/api/leave/apply", admin.Token, applyBody("2025-03-10", "2025-03-12")).StatusCode)

	assert.Equal(t, http.StatusOK, api.call(http.MethodGet, "/api/leave/user/"+driver.User.ID, driver.Token, nil).StatusCode)
	assert.Equal(t, http.StatusOK, api.call(http.MethodGet, "/api/leave/user/"+driver.User.ID, admin.Token, nil).StatusCode)
	assert.Equal(t, http.StatusForbidden, api.call(http.MethodGet, "/api/leave/user/"+driver.User.ID, other.Token, nil).StatusCode)
}

func TestRouter_LeaveLifecycle(t *testing.T) {
	api := newTestAPI(t)
	driver := api.login("murugan@tnstc.in")
	admin := api.login("admin@tnstc.in")

	resp := api.call(http.MethodPost, "/api/leave/apply", driver.Token, applyBody("2025-03-12", "2025-03-10"))
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	resp = api.call(http.MethodPost, "/api/leave/apply", driver.Token, applyBody("2025-03-10", "2025-03-12"))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	first := decode[leave.LeaveRequest](t, resp)
	assert.Equal(t, driver.User.ID, first.UserID)
	assert.Equal(t, leave.StatusPending, first.Status)

	statusPath := "/api/leave/" + first.ID + "/status"

	resp = api.call(http.MethodPatch, statusPath, admin.Token, leave.UpdateStatusRequest{Status: leave.StatusApproved})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	resp = api.call(http.MethodPatch, statusPath, admin.Token, leave.UpdateStatusRequest{Status: leave.StatusApproved, Reliever: "Nobody"})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	resp = api.call(http.MethodPatch, statusPath, admin.Token, leave.UpdateStatusRequest{Status: leave.StatusApproved, Reliever: "Ravi Kumar"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	approved := decode[leave.LeaveRequest](t, resp)
	assert.Equal(t, leave.StatusApproved, approved.Status)
	assert.Equal(t, "Ravi Kumar", approved.Reliever)

	resp = api.call(http.MethodPatch, statusPath, admin.Token, leave.UpdateStatusRequest{Status: leave.StatusRejected})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	env := decode[map[string]any](t, resp)
	assert.Equal(t, false, env["success"])

	resp = api.call(http.MethodPatch, "/api/leave/"+first.ID+"/cancel", driver.Token, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	// A second request the driver withdraws.
	resp = api.call(http.MethodPost, "/api/leave/apply", driver.Token, applyBody("2025-04-01", "2025-04-02"))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	second := decode[leave.LeaveRequest](t, resp)

	resp = api.call(http.MethodPatch, "/api/leave/"+second.ID+"/cancel", admin.Token, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = api.call(http.MethodPatch, "/api/leave/"+second.ID+"/cancel", driver.Token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, leave.StatusCancelled, decode[leave.LeaveRequest](t, resp).Status)

	// History is newest first.
	resp = api.call(http.MethodGet, "/api/leave/user/"+driver.User.ID, driver.Token, nil)
	history := decode[[]leave.LeaveRequest](t, resp)
	require.Len(t, history, 2)
	assert.Equal(t, second.ID, history[0].ID)

	resp = api.call(http.MethodGet, "/api/leave/user/"+driver.User.ID+"/filter?from=2025-03-01&to=2025-03-31", driver.Token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	filtered := decode[[]leave.LeaveRequest](t, resp)
	require.Len(t, filtered, 1)
	assert.Equal(t, first.ID, filtered[0].ID)

	resp = api.call(http.MethodGet, "/api/leave/user/"+driver.User.ID+"/filter?from=2025-03-31&to=2025-03-01", driver.Token, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	resp = api.call(http.MethodGet, "/api/leave/summary", admin.Token, nil)
	assert.Equal(t, leave.Summary{Total: 2, Approved: 1}, decode[leave.Summary](t, resp))

	resp = api.call(http.MethodGet, "/api/leave/monthly-stats?year=2025", admin.Token, nil)
	stats := decode[[]leave.MonthlyStat](t, resp)
	require.Len(t, stats, 2)
	assert.Equal(t, 3, stats[0].Month)
	assert.Equal(t, 1, stats[0].Approved)

	resp = api.call(http.MethodGet, "/api/leave/relievers", admin.Token, nil)
	assert.Equal(t, []string{"Ravi Kumar", "Sathish M"}, decode[leave.RelieversResponse](t, resp).Relievers)
}

func TestRouter_Report(t *testing.T) {
	api := newTestAPI(t)
	driver := api.login("murugan@tnstc.in")
	admin := api.login("admin@tnstc.in")

	resp := api.call(http.MethodPost, "/api/leave/apply", driver.Token, applyBody("2025-03-10", "2025-03-12"))
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = api.call(http.MethodGet, "/api/leave/report?format=xlsx&status=pending", admin.Token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "leave-report.xlsx")

	resp = api.call(http.MethodGet, "/api/leave/report?format=pdf", admin.Token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))

	assert.Equal(t, http.StatusBadRequest, api.call(http.MethodGet, "/api/leave/report?format=csv", admin.Token, nil).StatusCode)
	assert.Equal(t, http.StatusUnprocessableEntity, api.call(http.MethodGet, "/api/leave/report?format=pdf&status=Maybe", admin.Token, nil).StatusCode)
	assert.Equal(t, http.StatusForbidden, api.call(http.MethodGet, "/api/leave/report?format=pdf", driver.Token, nil).StatusCode)
}

func TestRouter_GoogleCodeFlowRedirect(t *testing.T) {
	api := newTestAPI(t)
	client := &http.Client{CheckRedirect: func(*http.Request, []*http.Request) error { return http.ErrUseLastResponse }}

	resp, err := client.Get(api.server.URL + "/api/auth/google/login")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusTemporaryRedirect, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Location"), "state=state-1")

	resp2, err := client.Get(api.server.URL + "/api/auth/google/callback?state=other&code=c")
	require.NoError(t, err)
	defer resp2.Body.Close()
	// No state cookie was sent back.
	assert.Equal(t, http.StatusUnauthorized, resp2.StatusCode)
}
