package auth

import (
	"context"
	"testing"

	"github.com/cmlabs-hris/hris-timekeeping-go/internal/domain/auth"
	"github.com/cmlabs-hris/hris-timekeeping-go/internal/domain/user"
	"github.com/cmlabs-hris/hris-timekeeping-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/hris-timekeeping-go/internal/pkg/validator"
	"github.com/cmlabs-hris/hris-timekeeping-go/internal/testutil/fakes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const (
	testAccessExp = "1h"
	testSecret    = "test-secret-key-for-jwt"
)

func hashed(t *testing.T, password string) string {
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func setupAuth(t *testing.T) (auth.AuthService, *fakes.UserRepository, jwt.Service, *fakes.JWTRepository) {
	empID := "EMP001"
	users := fakes.NewUserRepository(
		user.User{ID: "u-admin", Username: "admin", PasswordHash: hashed(t, "adminpass"), IsStaff: true, IsActive: true},
		user.User{ID: "u-emp", Username: "EMP001", PasswordHash: hashed(t, "EMP001"), IsActive: true, EmployeeID: &empID},
		user.User{ID: "u-orphan", Username: "orphan", PasswordHash: hashed(t, "orphanpass"), IsActive: true},
		user.User{ID: "u-off", Username: "inactive", PasswordHash: hashed(t, "offpass"), IsStaff: true},
	)
	jwtService := jwt.NewJWTService(testSecret, testAccessExp)
	jwtRepo := fakes.NewJWTRepository()
	return NewAuthService(users, jwtService, jwtRepo), users, jwtService, jwtRepo
}

// Test admin login with valid credentials
func TestAuthService_AdminLogin_Success(t *testing.T) {
	svc, _, _, _ := setupAuth(t)

	resp, err := svc.AdminLogin(context.Background(), auth.LoginRequest{Username: "admin", Password: "adminpass"})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Greater(t, resp.AccessTokenExpiresIn, int64(0))
	assert.Equal(t, "admin", resp.Role)
	assert.Nil(t, resp.EmployeeID)
}

func TestAuthService_AdminLogin_Rejections(t *testing.T) {
	svc, _, _, _ := setupAuth(t)
	ctx := context.Background()

	cases := []auth.LoginRequest{
		{Username: "admin", Password: "wrong"},
		{Username: "nobody", Password: "adminpass"},
		{Username: "EMP001", Password: "EMP001"},
		{Username: "inactive", Password: "offpass"},
	}
	for _, req := range cases {
		_, err := svc.AdminLogin(ctx, req)
		assert.ErrorIs(t, err, auth.ErrInvalidAdminCredentials, req.Username)
	}

	_, err := svc.AdminLogin(ctx, auth.LoginRequest{})
	_, ok := err.(validator.ValidationErrors)
	assert.True(t, ok)
}

func TestAuthService_EmployeeLogin(t *testing.T) {
	svc, _, _, _ := setupAuth(t)
	ctx := context.Background()

	resp, err := svc.EmployeeLogin(ctx, auth.LoginRequest{Username: "EMP001", Password: "EMP001"})
	require.NoError(t, err)
	assert.Equal(t, "employee", resp.Role)
	require.NotNil(t, resp.EmployeeID)
	assert.Equal(t, "EMP001", *resp.EmployeeID)

	_, err = svc.EmployeeLogin(ctx, auth.LoginRequest{Username: "admin", Password: "adminpass"})
	assert.ErrorIs(t, err, auth.ErrInvalidEmployeeCredentials)

	_, err = svc.EmployeeLogin(ctx, auth.LoginRequest{Username: "orphan", Password: "orphanpass"})
	assert.ErrorIs(t, err, auth.ErrInvalidEmployeeCredentials)
}

func TestAuthService_Logout(t *testing.T) {
	svc, _, jwtService, jwtRepo := setupAuth(t)
	ctx := context.Background()

	resp, err := svc.AdminLogin(ctx, auth.LoginRequest{Username: "admin", Password: "adminpass"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, resp.AccessToken))
	assert.True(t, jwtService.IsTokenRevoked(resp.AccessToken))
	assert.Contains(t, jwtRepo.Revoked, jwt.HashToken(resp.AccessToken))

	assert.ErrorIs(t, svc.Logout(ctx, "not-a-token"), auth.ErrInvalidToken)
}

func TestAuthService_ChangePassword(t *testing.T) {
	svc, users, _, _ := setupAuth(t)
	ctx := context.Background()

	err := svc.ChangePassword(ctx, "u-emp", auth.ChangePasswordRequest{OldPassword: "bad", NewPassword1: "newsecret1", NewPassword2: "newsecret1"})
	assert.ErrorIs(t, err, auth.ErrOldPasswordIncorrect)

	err = svc.ChangePassword(ctx, "u-emp", auth.ChangePasswordRequest{OldPassword: "EMP001", NewPassword1: "newsecret1", NewPassword2: "newsecret2"})
	assert.ErrorIs(t, err, auth.ErrPasswordMismatch)

	err = svc.ChangePassword(ctx, "u-emp", auth.ChangePasswordRequest{OldPassword: "EMP001", NewPassword1: "newsecret1", NewPassword2: "newsecret1"})
	require.NoError(t, err)

	u, _ := users.GetByID(ctx, "u-emp")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("newsecret1")))

	_, err = svc.EmployeeLogin(ctx, auth.LoginRequest{Username: "EMP001", Password: "newsecret1"})
	assert.NoError(t, err)
}

func TestAuthService_EnsureAdmin(t *testing.T) {
	svc, users, _, _ := setupAuth(t)
	ctx := context.Background()

	created, err := svc.EnsureAdmin(ctx, "admin", "whatever")
	require.NoError(t, err)
	assert.False(t, created)

	created, err = svc.EnsureAdmin(ctx, "hr-head", "s3cretpass")
	require.NoError(t, err)
	assert.True(t, created)
	u, err := users.GetByUsername(ctx, "hr-head")
	require.NoError(t, err)
	assert.True(t, u.IsStaff)

	_, err = svc.EnsureAdmin(ctx, "EMP001", "x")
	assert.Error(t, err)
}
