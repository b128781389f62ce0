package performance

import "context"

type PerformanceService interface {
	CreateObjective(ctx context.Context, req CreateObjectiveRequest) (ObjectiveResponse, error)
	UpdateObjective(ctx context.Context, id string, req UpdateObjectiveRequest) error
	CreateSummary(ctx context.Context, req CreateSummaryRequest) (SummaryResponse, error)
	AddActivity(ctx context.Context, summaryID string, req CreateActivityRequest) (ActivityResponse, error)
	SetActivityDone(ctx context.Context, activityID string, done bool) (SummaryResponse, error)

	// GetOverview returns the latest active OKRs and the most recent weekly summary
	GetOverview(ctx context.Context, employeeID string) (OverviewResponse, error)
	ListPendingActivities(ctx context.Context, employeeID string) ([]ActivityResponse, error)
}
