package master

import (
	"context"
	"testing"

	"github.com/cmlabs-hris/hris-timekeeping-go/internal/domain/master/grade"
	"github.com/cmlabs-hris/hris-timekeeping-go/internal/pkg/validator"
	"github.com/cmlabs-hris/hris-timekeeping-go/internal/testutil/fakes"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMasterService_Grades(t *testing.T) {
	ctx := context.Background()
	repo := fakes.NewGradeRepository(map[int]string{1: "11952", 18: "43608"})
	svc := NewMasterService(repo)

	list, err := svc.ListGrades(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "SG-18", list[1].Label)
	assert.Equal(t, "1982.18", list[1].DailyRate.StringFixed(2))

	resp, err := svc.UpsertGrade(ctx, grade.UpsertGradeRequest{Grade: 18, MonthlySalary: decimal.RequireFromString("45000.005")})
	require.NoError(t, err)
	assert.Equal(t, "45000.01", resp.MonthlySalary.StringFixed(2))

	got, err := svc.GetGrade(ctx, 18)
	require.NoError(t, err)
	assert.Equal(t, "2045.46", got.DailyRate.StringFixed(2))

	require.NoError(t, svc.DeleteGrade(ctx, 1))
	_, err = svc.GetGrade(ctx, 1)
	assert.ErrorIs(t, err, grade.ErrGradeNotFound)
}

func TestMasterService_UpsertGrade_Validation(t *testing.T) {
	svc := NewMasterService(fakes.NewGradeRepository(nil))

	_, err := svc.UpsertGrade(context.Background(), grade.UpsertGradeRequest{Grade: 0, MonthlySalary: decimal.Zero})
	errs, ok := err.(validator.ValidationErrors)
	require.True(t, ok)
	m := errs.ToMap()
	assert.Contains(t, m, "grade")
	assert.Contains(t, m, "monthly_salary")
}

func TestMasterService_UpsertGrade_SalaryOutOfRange(t *testing.T) {
	repo := fakes.NewGradeRepository(nil)
	svc := NewMasterService(repo)

	_, err := svc.UpsertGrade(context.Background(), grade.UpsertGradeRequest{Grade: 5, MonthlySalary: decimal.RequireFromString("10000000000")})
	errs, ok := err.(validator.ValidationErrors)
	require.True(t, ok)
	assert.Equal(t, "monthly_salary must be less than 10000000000", errs.ToMap()["monthly_salary"])

	_, err = svc.UpsertGrade(context.Background(), grade.UpsertGradeRequest{Grade: 5, MonthlySalary: decimal.RequireFromString("9999999999.99")})
	require.NoError(t, err)
}
