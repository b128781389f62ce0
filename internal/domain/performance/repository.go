package performance

import "context"

type PerformanceRepository interface {
	CreateObjective(ctx context.Context, obj Objective) (Objective, error)
	UpdateObjectiveProgress(ctx context.Context, id string, progress int, active bool) error
	ListActiveObjectives(ctx context.Context, employeeID string, limit int) ([]Objective, error)

	CreateSummary(ctx context.Context, s WeeklySummary) (WeeklySummary, error)
	GetSummary(ctx context.Context, id string) (WeeklySummary, error)
	GetLatestSummary(ctx context.Context, employeeID string) (*WeeklySummary, error)

	// RefreshSummaryCounts recomputes done/total from the summary's activities
	RefreshSummaryCounts(ctx context.Context, summaryID string) error

	CreateActivity(ctx context.Context, a WeeklyActivity) (WeeklyActivity, error)
	GetActivity(ctx context.Context, id string) (WeeklyActivity, error)
	SetActivityDone(ctx context.Context, id string, done bool) error
	ListActivities(ctx context.Context, summaryID string) ([]WeeklyActivity, error)

	// ListPendingActivities returns undone activities ordered by week end then id
	ListPendingActivities(ctx context.Context, employeeID string) ([]WeeklyActivity, error)
}
