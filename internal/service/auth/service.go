package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/hris-timekeeping-go/internal/domain/auth"
	"github.com/cmlabs-hris/hris-timekeeping-go/internal/domain/user"
	"github.com/cmlabs-hris/hris-timekeeping-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/hris-timekeeping-go/internal/repository/postgresql"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	user.UserRepository
	jwt.Service
	postgresql.JWTRepository
}

func NewAuthService(userRepository user.UserRepository, jwtService jwt.Service, jwtRepository postgresql.JWTRepository) auth.AuthService {
	return &AuthServiceImpl{
		UserRepository: userRepository,
		Service:        jwtService,
		JWTRepository:  jwtRepository,
	}
}

func (a *AuthServiceImpl) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// authenticate returns the active user whose password matches, or invalidErr.
func (a *AuthServiceImpl) authenticate(ctx context.Context, req auth.LoginRequest, invalidErr error) (user.User, error) {
	if err := req.Validate(); err != nil {
		return user.User{}, err
	}

	userData, err := a.UserRepository.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return user.User{}, invalidErr
		}
		return user.User{}, fmt.Errorf("failed to get user by username: %w", err)
	}

	if !userData.IsActive {
		return user.User{}, invalidErr
	}
	if err := bcrypt.CompareHashAndPassword([]byte(userData.PasswordHash), []byte(req.Password)); err != nil {
		return user.User{}, invalidErr
	}
	return userData, nil
}

func (a *AuthServiceImpl) issue(userData user.User) (auth.TokenResponse, error) {
	token, expiresAt, err := a.Service.GenerateAccessToken(userData.ID, userData.Username, userData.EmployeeID, userData.Role())
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}
	return auth.TokenResponse{
		AccessToken:          token,
		AccessTokenExpiresIn: expiresAt,
		Role:                 string(userData.Role()),
		EmployeeID:           userData.EmployeeID,
	}, nil
}

// AdminLogin implements auth.AuthService.
func (a *AuthServiceImpl) AdminLogin(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	userData, err := a.authenticate(ctx, req, auth.ErrInvalidAdminCredentials)
	if err != nil {
		return auth.TokenResponse{}, err
	}
	if !userData.IsStaff {
		return auth.TokenResponse{}, auth.ErrInvalidAdminCredentials
	}
	return a.issue(userData)
}

// EmployeeLogin implements auth.AuthService.
func (a *AuthServiceImpl) EmployeeLogin(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	userData, err := a.authenticate(ctx, req, auth.ErrInvalidEmployeeCredentials)
	if err != nil {
		return auth.TokenResponse{}, err
	}
	if userData.IsStaff || userData.EmployeeID == nil {
		return auth.TokenResponse{}, auth.ErrInvalidEmployeeCredentials
	}
	return a.issue(userData)
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context, token string) error {
	expiresAt, err := a.Service.ExpiresAt(token)
	if err != nil {
		return auth.ErrInvalidToken
	}

	a.Service.RevokeToken(token, expiresAt)
	if err := a.JWTRepository.RevokeToken(ctx, jwt.HashToken(token), expiresAt); err != nil {
		return fmt.Errorf("failed to persist token revocation: %w", err)
	}
	return nil
}

// ChangePassword implements auth.AuthService.
func (a *AuthServiceImpl) ChangePassword(ctx context.Context, userID string, req auth.ChangePasswordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	userData, err := a.UserRepository.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(userData.PasswordHash), []byte(req.OldPassword)); err != nil {
		return auth.ErrOldPasswordIncorrect
	}
	if req.NewPassword1 != req.NewPassword2 {
		return auth.ErrPasswordMismatch
	}

	hashed, err := a.hashPassword(req.NewPassword1)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	return a.UserRepository.UpdatePassword(ctx, userID, hashed)
}

// EnsureAdmin implements auth.AuthService.
func (a *AuthServiceImpl) EnsureAdmin(ctx context.Context, username, password string) (bool, error) {
	existing, err := a.UserRepository.GetByUsername(ctx, username)
	if err == nil {
		if !existing.IsStaff {
			return false, fmt.Errorf("user %q exists but is not an admin", username)
		}
		return false, nil
	}
	if !errors.Is(err, user.ErrUserNotFound) {
		return false, fmt.Errorf("failed to get user by username: %w", err)
	}

	hashed, err := a.hashPassword(password)
	if err != nil {
		return false, fmt.Errorf("failed to hash password: %w", err)
	}
	if _, err := a.UserRepository.Create(ctx, user.User{
		Username:     username,
		PasswordHash: hashed,
		IsStaff:      true,
		IsActive:     true,
	}); err != nil {
		return false, err
	}

	slog.Info("admin account created", "username", username)
	return true, nil
}
