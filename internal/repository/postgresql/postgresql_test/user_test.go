package postgresql_test

import (
	"context"
	"testing"

	"github.com/cmlabs-hris/hris-timekeeping-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-timekeeping-go/internal/domain/user"
	"github.com/cmlabs-hris/hris-timekeeping-go/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// Helper to create a user for testing
func createTestUser(t *testing.T, ctx context.Context, repo user.UserRepository, username string, staff bool) user.User {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	created, err := repo.Create(ctx, user.User{
		Username:     username,
		PasswordHash: string(hashed),
		FirstName:    "Test",
		LastName:     "User",
		IsStaff:      staff,
		IsActive:     true,
	})
	require.NoError(t, err)
	return created
}

// ===== USER REPOSITORY TESTS =====

func TestUserRepository_Create_Success(t *testing.T) {
	setup := requireDB(t)
	ctx := context.Background()
	userRepo := postgresql.NewUserRepository(setup.DB)

	created := createTestUser(t, ctx, userRepo, "admin", true)

	assert.NotEmpty(t, created.ID)
	assert.True(t, created.IsStaff)
	assert.False(t, created.CreatedAt.IsZero())
}

func TestUserRepository_Create_DuplicateUsername(t *testing.T) {
	setup := requireDB(t)
	ctx := context.Background()
	userRepo := postgresql.NewUserRepository(setup.DB)

	createTestUser(t, ctx, userRepo, "EMP001", false)

	_, err := userRepo.Create(ctx, user.User{Username: "EMP001", PasswordHash: "x", IsActive: true})
	assert.ErrorIs(t, err, user.ErrUsernameExists)
}

func TestUserRepository_GetByUsername_NotFound(t *testing.T) {
	setup := requireDB(t)
	userRepo := postgresql.NewUserRepository(setup.DB)

	_, err := userRepo.GetByUsername(context.Background(), "nobody")
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestUserRepository_EmployeeLink(t *testing.T) {
	setup := requireDB(t)
	ctx := context.Background()
	userRepo := postgresql.NewUserRepository(setup.DB)
	employeeRepo := postgresql.NewEmployeeRepository(setup.DB)

	u := createTestUser(t, ctx, userRepo, "EMP001", false)
	_, err := employeeRepo.Create(ctx, employee.Employee{
		ID:        "EMP001",
		FirstName: "Ana",
		LastName:  "Reyes",
		Email:     "ana@example.com",
		EmpStatus: employee.EmpStatusRegular,
	})
	require.NoError(t, err)
	require.NoError(t, employeeRepo.LinkUser(ctx, "EMP001", u.ID))

	byUsername, err := userRepo.GetByUsername(ctx, "EMP001")
	require.NoError(t, err)
	require.NotNil(t, byUsername.EmployeeID)
	assert.Equal(t, "EMP001", *byUsername.EmployeeID)

	byEmployee, err := userRepo.GetByEmployeeID(ctx, "EMP001")
	require.NoError(t, err)
	assert.Equal(t, u.ID, byEmployee.ID)

	require.NoError(t, userRepo.Delete(ctx, u.ID))
	emp, err := employeeRepo.GetByID(ctx, "EMP001")
	require.NoError(t, err)
	assert.Nil(t, emp.UserID)
}

func TestUserRepository_UpdatePassword(t *testing.T) {
	setup := requireDB(t)
	ctx := context.Background()
	userRepo := postgresql.NewUserRepository(setup.DB)

	u := createTestUser(t, ctx, userRepo, "admin", true)
	require.NoError(t, userRepo.UpdatePassword(ctx, u.ID, "new-hash"))

	got, err := userRepo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "new-hash", got.PasswordHash)

	assert.ErrorIs(t, userRepo.UpdatePassword(ctx, "00000000-0000-0000-0000-000000000000", "x"), user.ErrUserNotFound)
}
