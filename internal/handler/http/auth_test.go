package http

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cmlabs-hris/hris-timekeeping-go/internal/domain/auth"
	"github.com/cmlabs-hris/hris-timekeeping-go/internal/domain/user"
	"github.com/cmlabs-hris/hris-timekeeping-go/internal/pkg/jwt"
	authService "github.com/cmlabs-hris/hris-timekeeping-go/internal/service/auth"
	"github.com/cmlabs-hris/hris-timekeeping-go/internal/testutil/fakes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const (
	handlerTestAccessExp = "1h"
	handlerTestSecret    = "test-secret-key-for-jwt"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Details map[string]string `json:"details"`
	} `json:"error"`
}

func hashedPassword(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

// newTestServer wires the real router around the auth stack; the other
// handlers are never reached by these tests.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	empID := "EMP001"
	users := fakes.NewUserRepository(
		user.User{ID: "u-admin", Username: "admin", PasswordHash: hashedPassword(t, "adminpass"), IsStaff: true, IsActive: true},
		user.User{ID: "u-emp", Username: "EMP001", PasswordHash: hashedPassword(t, "EMP001"), IsActive: true, EmployeeID: &empID},
	)
	jwtSvc := jwt.NewJWTService(handlerTestSecret, handlerTestAccessExp)
	authSvc := authService.NewAuthService(users, jwtSvc, fakes.NewJWTRepository())

	router := NewRouter(
		slog.New(slog.NewTextHandler(io.Discard, nil)),
		[]string{"http://localhost:3000"},
		jwtSvc,
		NewAuthHandler(authSvc),
		NewEmployeeHandler(nil),
		NewMasterHandler(nil),
		NewAttendanceHandler(nil),
		NewPayrollHandler(nil),
		NewLeaveHandler(nil),
		NewMessageHandler(nil),
		NewPerformanceHandler(nil),
		NewDashboardHandler(nil),
	)
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(t *testing.T, srv *httptest.Server, method, path, token string, body interface{}) (*http.Response, envelope) {
	t.Helper()
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, srv.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp, env
}

func login(t *testing.T, srv *httptest.Server, path, username, password string) auth.TokenResponse {
	t.Helper()
	resp, env := doJSON(t, srv, http.MethodPost, path, "", auth.LoginRequest{Username: username, Password: password})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var tok auth.TokenResponse
	require.NoError(t, json.Unmarshal(env.Data, &tok))
	return tok
}

// ===== HANDLER TESTS =====

func TestAuthHandler_AdminLogin_Success(t *testing.T) {
	srv := newTestServer(t)

	tok := login(t, srv, "/api/v1/auth/admin/login", "admin", "adminpass")

	assert.NotEmpty(t, tok.AccessToken)
	assert.Equal(t, "admin", tok.Role)
	assert.Nil(t, tok.EmployeeID)
}

func TestAuthHandler_EmployeeLogin_Success(t *testing.T) {
	srv := newTestServer(t)

	tok := login(t, srv, "/api/v1/auth/employee/login", "EMP001", "EMP001")

	assert.Equal(t, "employee", tok.Role)
	require.NotNil(t, tok.EmployeeID)
	assert.Equal(t, "EMP001", *tok.EmployeeID)
}

func TestAuthHandler_Login_WrongPortal(t *testing.T) {
	srv := newTestServer(t)

	resp, env := doJSON(t, srv, http.MethodPost, "/api/v1/auth/employee/login", "",
		auth.LoginRequest{Username: "admin", Password: "adminpass"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.False(t, env.Success)
	assert.Equal(t, auth.ErrInvalidEmployeeCredentials.Error(), env.Error.Message)

	resp, _ = doJSON(t, srv, http.MethodPost, "/api/v1/auth/admin/login", "",
		auth.LoginRequest{Username: "EMP001", Password: "EMP001"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthHandler_Login_BadRequests(t *testing.T) {
	srv := newTestServer(t)

	resp, _ := doJSON(t, srv, http.MethodPost, "/api/v1/auth/admin/login", "", "{not json")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, env := doJSON(t, srv, http.MethodPost, "/api/v1/auth/admin/login", "", map[string]string{"username": "admin"})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	require.NotNil(t, env.Error)
	assert.Contains(t, env.Error.Details, "password")
}

func TestAuthHandler_ProtectedRoutes(t *testing.T) {
	srv := newTestServer(t)

	resp, _ := doJSON(t, srv, http.MethodGet, "/api/v1/dashboard", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, _ = doJSON(t, srv, http.MethodGet, "/api/v1/dashboard", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	emp := login(t, srv, "/api/v1/auth/employee/login", "EMP001", "EMP001")
	resp, env := doJSON(t, srv, http.MethodGet, "/api/v1/dashboard", emp.AccessToken, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, user.ErrAdminPrivilegeRequired.Error(), env.Error.Message)

	admin := login(t, srv, "/api/v1/auth/admin/login", "admin", "adminpass")
	resp, env = doJSON(t, srv, http.MethodGet, "/api/v1/me/dashboard", admin.AccessToken, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, user.ErrEmployeeAccessRequired.Error(), env.Error.Message)
}

func TestAuthHandler_Logout_RevokesToken(t *testing.T) {
	srv := newTestServer(t)
	tok := login(t, srv, "/api/v1/auth/admin/login", "admin", "adminpass")

	resp, env := doJSON(t, srv, http.MethodPost, "/api/v1/auth/logout", tok.AccessToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, env.Success)

	resp, _ = doJSON(t, srv, http.MethodPost, "/api/v1/auth/logout", tok.AccessToken, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthHandler_ChangePassword(t *testing.T) {
	srv := newTestServer(t)
	tok := login(t, srv, "/api/v1/auth/employee/login", "EMP001", "EMP001")

	resp, _ := doJSON(t, srv, http.MethodPut, "/api/v1/me/password", tok.AccessToken, auth.ChangePasswordRequest{
		OldPassword: "wrong", NewPassword1: "newpassword", NewPassword2: "newpassword",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = doJSON(t, srv, http.MethodPut, "/api/v1/me/password", tok.AccessToken, auth.ChangePasswordRequest{
		OldPassword: "EMP001", NewPassword1: "newpassword", NewPassword2: "newpassword",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	login(t, srv, "/api/v1/auth/employee/login", "EMP001", "newpassword")
}
