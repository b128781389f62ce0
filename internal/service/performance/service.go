package performance

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/hris-timekeeping-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-timekeeping-go/internal/domain/performance"
	"github.com/cmlabs-hris/hris-timekeeping-go/internal/pkg/clock"
	"github.com/cmlabs-hris/hris-timekeeping-go/internal/pkg/database"
)

// overviewObjectiveLimit caps the OKRs shown on the employee page.
const overviewObjectiveLimit = 10

type PerformanceServiceImpl struct {
	db database.Transactor
	performance.PerformanceRepository
	employeeRepo employee.EmployeeRepository
	clock        clock.Clock
}

func NewPerformanceService(
	db database.Transactor,
	performanceRepo performance.PerformanceRepository,
	employeeRepo employee.EmployeeRepository,
	clk clock.Clock,
) performance.PerformanceService {
	return &PerformanceServiceImpl{
		db:                    db,
		PerformanceRepository: performanceRepo,
		employeeRepo:          employeeRepo,
		clock:                 clk,
	}
}

func (s *PerformanceServiceImpl) CreateObjective(ctx context.Context, req performance.CreateObjectiveRequest) (performance.ObjectiveResponse, error) {
	if err := req.Validate(); err != nil {
		return performance.ObjectiveResponse{}, err
	}
	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return performance.ObjectiveResponse{}, err
	}

	obj, err := s.PerformanceRepository.CreateObjective(ctx, performance.Objective{
		EmployeeID:      req.EmployeeID,
		PeriodLabel:     req.PeriodLabel,
		ObjectiveName:   req.ObjectiveName,
		KeyResultName:   req.KeyResultName,
		ProgressPercent: req.ProgressPercent,
		IsActive:        true,
	})
	if err != nil {
		return performance.ObjectiveResponse{}, fmt.Errorf("failed to create objective: %w", err)
	}
	return performance.NewObjectiveResponse(obj), nil
}

func (s *PerformanceServiceImpl) UpdateObjective(ctx context.Context, id string, req performance.UpdateObjectiveRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return s.PerformanceRepository.UpdateObjectiveProgress(ctx, id, req.ProgressPercent, req.IsActive)
}

func (s *PerformanceServiceImpl) CreateSummary(ctx context.Context, req performance.CreateSummaryRequest) (performance.SummaryResponse, error) {
	if err := req.Validate(); err != nil {
		return performance.SummaryResponse{}, err
	}
	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return performance.SummaryResponse{}, err
	}

	loc := s.clock.Location()
	start, _ := time.ParseInLocation(clock.DateLayout, req.WeekStart, loc)
	end, _ := time.ParseInLocation(clock.DateLayout, req.WeekEnd, loc)

	summary, err := s.PerformanceRepository.CreateSummary(ctx, performance.WeeklySummary{
		EmployeeID:      req.EmployeeID,
		WeekStart:       start,
		WeekEnd:         end,
		ProgressPercent: req.ProgressPercent,
	})
	if err != nil {
		return performance.SummaryResponse{}, fmt.Errorf("failed to create weekly summary: %w", err)
	}
	return performance.NewSummaryResponse(summary), nil
}

// AddActivity appends an activity and refreshes the summary's done/total counts.
func (s *PerformanceServiceImpl) AddActivity(ctx context.Context, summaryID string, req performance.CreateActivityRequest) (performance.ActivityResponse, error) {
	if err := req.Validate(); err != nil {
		return performance.ActivityResponse{}, err
	}

	var created performance.WeeklyActivity
	err := s.db.WithinTransaction(ctx, func(ctx context.Context) error {
		summary, err := s.PerformanceRepository.GetSummary(ctx, summaryID)
		if err != nil {
			return err
		}

		created, err = s.PerformanceRepository.CreateActivity(ctx, performance.WeeklyActivity{
			SummaryID:   summary.ID,
			Description: req.Description,
		})
		if err != nil {
			return fmt.Errorf("failed to create weekly activity: %w", err)
		}
		created.WeekEnd = &summary.WeekEnd

		return s.PerformanceRepository.RefreshSummaryCounts(ctx, summary.ID)
	})
	if err != nil {
		return performance.ActivityResponse{}, err
	}
	return performance.NewActivityResponse(created), nil
}

// SetActivityDone toggles an activity and returns its refreshed summary.
func (s *PerformanceServiceImpl) SetActivityDone(ctx context.Context, activityID string, done bool) (performance.SummaryResponse, error) {
	var summary performance.WeeklySummary
	err := s.db.WithinTransaction(ctx, func(ctx context.Context) error {
		activity, err := s.PerformanceRepository.GetActivity(ctx, activityID)
		if err != nil {
			return err
		}
		if err := s.PerformanceRepository.SetActivityDone(ctx, activity.ID, done); err != nil {
			return err
		}
		if err := s.PerformanceRepository.RefreshSummaryCounts(ctx, activity.SummaryID); err != nil {
			return err
		}
		summary, err = s.PerformanceRepository.GetSummary(ctx, activity.SummaryID)
		return err
	})
	if err != nil {
		return performance.SummaryResponse{}, err
	}
	return performance.NewSummaryResponse(summary), nil
}

func (s *PerformanceServiceImpl) GetOverview(ctx context.Context, employeeID string) (performance.OverviewResponse, error) {
	objectives, err := s.PerformanceRepository.ListActiveObjectives(ctx, employeeID, overviewObjectiveLimit)
	if err != nil {
		return performance.OverviewResponse{}, fmt.Errorf("failed to list objectives: %w", err)
	}

	resp := performance.OverviewResponse{
		Objectives: make([]performance.ObjectiveResponse, 0, len(objectives)),
		Activities: []performance.ActivityResponse{},
	}
	for _, o := range objectives {
		resp.Objectives = append(resp.Objectives, performance.NewObjectiveResponse(o))
	}

	summary, err := s.PerformanceRepository.GetLatestSummary(ctx, employeeID)
	if err != nil {
		return performance.OverviewResponse{}, fmt.Errorf("failed to get latest weekly summary: %w", err)
	}
	if summary == nil {
		return resp, nil
	}

	sr := performance.NewSummaryResponse(*summary)
	resp.WeeklySummary = &sr

	activities, err := s.PerformanceRepository.ListActivities(ctx, summary.ID)
	if err != nil {
		return performance.OverviewResponse{}, fmt.Errorf("failed to list weekly activities: %w", err)
	}
	for _, a := range activities {
		resp.Activities = append(resp.Activities, performance.NewActivityResponse(a))
	}
	return resp, nil
}

func (s *PerformanceServiceImpl) ListPendingActivities(ctx context.Context, employeeID string) ([]performance.ActivityResponse, error) {
	pending, err := s.PerformanceRepository.ListPendingActivities(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending activities: %w", err)
	}

	resp := make([]performance.ActivityResponse, 0, len(pending))
	for _, a := range pending {
		resp = append(resp, performance.NewActivityResponse(a))
	}
	return resp, nil
}
