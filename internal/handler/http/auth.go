package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/hris-timekeeping-go/internal/domain/auth"
	"github.com/cmlabs-hris/hris-timekeeping-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/hris-timekeeping-go/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

type AuthHandler interface {
	AdminLogin(w http.ResponseWriter, r *http.Request)
	EmployeeLogin(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
	ChangePassword(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	authService auth.AuthService
}

func NewAuthHandler(authService auth.AuthService) AuthHandler {
	return &AuthHandlerImpl{
		authService: authService,
	}
}

func (a *AuthHandlerImpl) decodeLogin(w http.ResponseWriter, r *http.Request) (auth.LoginRequest, bool) {
	var loginReq auth.LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&loginReq); err != nil {
		slog.Error("Login decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return loginReq, false
	}

	if err := loginReq.Validate(); err != nil {
		response.HandleError(w, err)
		return loginReq, false
	}
	return loginReq, true
}

// AdminLogin implements AuthHandler.
func (a *AuthHandlerImpl) AdminLogin(w http.ResponseWriter, r *http.Request) {
	loginReq, ok := a.decodeLogin(w, r)
	if !ok {
		return
	}

	tokenResponse, err := a.authService.AdminLogin(r.Context(), loginReq)
	if err != nil {
		slog.Warn("Admin login failed", "username", loginReq.Username, "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Admin logged in", "username", loginReq.Username)
	response.Created(w, "Logged in successfully", tokenResponse)
}

// EmployeeLogin implements AuthHandler.
func (a *AuthHandlerImpl) EmployeeLogin(w http.ResponseWriter, r *http.Request) {
	loginReq, ok := a.decodeLogin(w, r)
	if !ok {
		return
	}

	tokenResponse, err := a.authService.EmployeeLogin(r.Context(), loginReq)
	if err != nil {
		slog.Warn("Employee login failed", "username", loginReq.Username, "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Employee logged in", "username", loginReq.Username)
	response.Created(w, "Logged in successfully", tokenResponse)
}

// Logout implements AuthHandler.
func (a *AuthHandlerImpl) Logout(w http.ResponseWriter, r *http.Request) {
	token := jwtauth.TokenFromHeader(r)
	if token == "" {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	if err := a.authService.Logout(r.Context(), token); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Logged out successfully", nil)
}

// ChangePassword implements AuthHandler.
func (a *AuthHandlerImpl) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var req auth.ChangePasswordRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("ChangePassword decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := a.authService.ChangePassword(r.Context(), middleware.UserID(r), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Password changed successfully", nil)
}
