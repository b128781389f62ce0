package performance

import "time"

// Objective is one OKR line: an objective with a measured key result.
type Objective struct {
	ID              string
	EmployeeID      string
	PeriodLabel     string
	ObjectiveName   string
	KeyResultName   string
	ProgressPercent int
	IsActive        bool
	CreatedAt       time.Time
}

type WeeklySummary struct {
	ID              string
	EmployeeID      string
	WeekStart       time.Time
	WeekEnd         time.Time
	ProgressPercent int
	ActivitiesDone  int
	TotalActivities int
	CreatedAt       time.Time
}

type WeeklyActivity struct {
	ID          string
	SummaryID   string
	Description string
	IsDone      bool

	// Join
	WeekEnd *time.Time
}
