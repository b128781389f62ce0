package performance

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-timekeeping-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-timekeeping-go/internal/domain/performance"
	"github.com/cmlabs-hris/hris-timekeeping-go/internal/pkg/clock"
	"github.com/cmlabs-hris/hris-timekeeping-go/internal/pkg/validator"
	"github.com/cmlabs-hris/hris-timekeeping-go/internal/testutil/fakes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (*PerformanceServiceImpl, *fakes.PerformanceRepository, *fakes.Transactor) {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Manila")
	require.NoError(t, err)

	repo := fakes.NewPerformanceRepository()
	tx := fakes.NewTransactor(repo)
	emps := fakes.NewEmployeeRepository(employee.Employee{ID: "EMP001", FirstName: "Ana", LastName: "Reyes"})
	svc := NewPerformanceService(tx, repo, emps, clock.Fixed{At: time.Date(2025, time.March, 10, 9, 0, 0, 0, loc)})
	return svc.(*PerformanceServiceImpl), repo, tx
}

func TestCreateObjective(t *testing.T) {
	svc, _, _ := newTestService(t)

	resp, err := svc.CreateObjective(context.Background(), performance.CreateObjectiveRequest{
		EmployeeID:      "EMP001",
		PeriodLabel:     "Q1 2025",
		ObjectiveName:   "Close books on time",
		KeyResultName:   "Monthly close in 5 days",
		ProgressPercent: 40,
	})
	require.NoError(t, err)
	assert.True(t, resp.IsActive)
	assert.Equal(t, 40, resp.ProgressPercent)
}

func TestCreateObjective_Invalid(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateObjective(ctx, performance.CreateObjectiveRequest{
		EmployeeID: "EMP001", ObjectiveName: "x", KeyResultName: "y", ProgressPercent: 101,
	})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "progress_percent")

	_, err = svc.CreateObjective(ctx, performance.CreateObjectiveRequest{
		EmployeeID: "EMP404", ObjectiveName: "x", KeyResultName: "y",
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestUpdateObjective(t *testing.T) {
	svc, repo, _ := newTestService(t)
	ctx := context.Background()
	obj, err := svc.CreateObjective(ctx, performance.CreateObjectiveRequest{
		EmployeeID: "EMP001", ObjectiveName: "x", KeyResultName: "y",
	})
	require.NoError(t, err)

	require.NoError(t, svc.UpdateObjective(ctx, obj.ID, performance.UpdateObjectiveRequest{ProgressPercent: 100, IsActive: false}))
	assert.Equal(t, 100, repo.Objectives[0].ProgressPercent)
	assert.False(t, repo.Objectives[0].IsActive)

	err = svc.UpdateObjective(ctx, "obj-404", performance.UpdateObjectiveRequest{ProgressPercent: 10, IsActive: true})
	assert.ErrorIs(t, err, performance.ErrObjectiveNotFound)
}

func TestCreateSummary_RejectsReversedWeek(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.CreateSummary(context.Background(), performance.CreateSummaryRequest{
		EmployeeID: "EMP001", WeekStart: "2025-03-14", WeekEnd: "2025-03-10",
	})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "week_end")
}

func TestActivities_RefreshSummaryCounts(t *testing.T) {
	svc, _, tx := newTestService(t)
	ctx := context.Background()

	summary, err := svc.CreateSummary(ctx, performance.CreateSummaryRequest{
		EmployeeID: "EMP001", WeekStart: "2025-03-10", WeekEnd: "2025-03-14", ProgressPercent: 50,
	})
	require.NoError(t, err)
	assert.Equal(t, "2025-03-14", summary.WeekEnd)

	first, err := svc.AddActivity(ctx, summary.ID, performance.CreateActivityRequest{Description: "Reconcile"})
	require.NoError(t, err)
	require.NotNil(t, first.WeekEnd)
	assert.Equal(t, "2025-03-14", *first.WeekEnd)
	_, err = svc.AddActivity(ctx, summary.ID, performance.CreateActivityRequest{Description: "Report"})
	require.NoError(t, err)

	updated, err := svc.SetActivityDone(ctx, first.ID, true)
	require.NoError(t, err)
	assert.Equal(t, 1, updated.ActivitiesDone)
	assert.Equal(t, 2, updated.TotalActivities)

	updated, err = svc.SetActivityDone(ctx, first.ID, false)
	require.NoError(t, err)
	assert.Equal(t, 0, updated.ActivitiesDone)
	assert.Equal(t, 4, tx.Calls)
}

func TestAddActivity_UnknownSummary(t *testing.T) {
	svc, repo, _ := newTestService(t)

	_, err := svc.AddActivity(context.Background(), "sum-404", performance.CreateActivityRequest{Description: "x"})
	assert.ErrorIs(t, err, performance.ErrSummaryNotFound)
	assert.Empty(t, repo.Activities)
}

func TestSetActivityDone_UnknownActivity(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.SetActivityDone(context.Background(), "act-404", true)
	assert.ErrorIs(t, err, performance.ErrActivityNotFound)
}

func TestGetOverview(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	for i := 0; i < 12; i++ {
		_, err := svc.CreateObjective(ctx, performance.CreateObjectiveRequest{
			EmployeeID: "EMP001", ObjectiveName: fmt.Sprintf("obj %d", i), KeyResultName: "kr",
		})
		require.NoError(t, err)
	}
	older, err := svc.CreateSummary(ctx, performance.CreateSummaryRequest{
		EmployeeID: "EMP001", WeekStart: "2025-03-03", WeekEnd: "2025-03-07",
	})
	require.NoError(t, err)
	_, err = svc.AddActivity(ctx, older.ID, performance.CreateActivityRequest{Description: "old"})
	require.NoError(t, err)
	latest, err := svc.CreateSummary(ctx, performance.CreateSummaryRequest{
		EmployeeID: "EMP001", WeekStart: "2025-03-10", WeekEnd: "2025-03-14",
	})
	require.NoError(t, err)
	_, err = svc.AddActivity(ctx, latest.ID, performance.CreateActivityRequest{Description: "new"})
	require.NoError(t, err)

	overview, err := svc.GetOverview(ctx, "EMP001")
	require.NoError(t, err)

	assert.Len(t, overview.Objectives, 10)
	assert.Equal(t, "obj 11", overview.Objectives[0].ObjectiveName)
	require.NotNil(t, overview.WeeklySummary)
	assert.Equal(t, latest.ID, overview.WeeklySummary.ID)
	require.Len(t, overview.Activities, 1)
	assert.Equal(t, "new", overview.Activities[0].Description)
}

func TestGetOverview_Empty(t *testing.T) {
	svc, _, _ := newTestService(t)

	overview, err := svc.GetOverview(context.Background(), "EMP001")
	require.NoError(t, err)
	assert.Empty(t, overview.Objectives)
	assert.Nil(t, overview.WeeklySummary)
	assert.NotNil(t, overview.Activities)
}

func TestListPendingActivities(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	late, err := svc.CreateSummary(ctx, performance.CreateSummaryRequest{
		EmployeeID: "EMP001", WeekStart: "2025-03-10", WeekEnd: "2025-03-14",
	})
	require.NoError(t, err)
	early, err := svc.CreateSummary(ctx, performance.CreateSummaryRequest{
		EmployeeID: "EMP001", WeekStart: "2025-03-03", WeekEnd: "2025-03-07",
	})
	require.NoError(t, err)

	_, err = svc.AddActivity(ctx, late.ID, performance.CreateActivityRequest{Description: "later week"})
	require.NoError(t, err)
	done, err := svc.AddActivity(ctx, early.ID, performance.CreateActivityRequest{Description: "finished"})
	require.NoError(t, err)
	_, err = svc.AddActivity(ctx, early.ID, performance.CreateActivityRequest{Description: "earlier week"})
	require.NoError(t, err)
	_, err = svc.SetActivityDone(ctx, done.ID, true)
	require.NoError(t, err)

	pending, err := svc.ListPendingActivities(ctx, "EMP001")
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.Equal(t, "earlier week", pending[0].Description)
	assert.Equal(t, "later week", pending[1].Description)
}
