package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/hris-timekeeping-go/internal/domain/performance"
	"github.com/cmlabs-hris/hris-timekeeping-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type performanceRepositoryImpl struct {
	db *database.DB
}

func NewPerformanceRepository(db *database.DB) performance.PerformanceRepository {
	return &performanceRepositoryImpl{db: db}
}

// ========== OBJECTIVES ==========

func (r *performanceRepositoryImpl) CreateObjective(ctx context.Context, obj performance.Objective) (performance.Objective, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employee_objectives (employee_id, period_label, objective_name, key_result_name, progress_percent, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	created := obj
	err := q.QueryRow(ctx, query,
		obj.EmployeeID, obj.PeriodLabel, obj.ObjectiveName, obj.KeyResultName, obj.ProgressPercent, obj.IsActive,
	).Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		return performance.Objective{}, fmt.Errorf("failed to create objective: %w", err)
	}
	return created, nil
}

func (r *performanceRepositoryImpl) UpdateObjectiveProgress(ctx context.Context, id string, progress int, active bool) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`UPDATE employee_objectives SET progress_percent = $1, is_active = $2 WHERE id = $3`,
		progress, active, id)
	if err != nil {
		return fmt.Errorf("failed to update objective: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return performance.ErrObjectiveNotFound
	}
	return nil
}

func (r *performanceRepositoryImpl) ListActiveObjectives(ctx context.Context, employeeID string, limit int) ([]performance.Objective, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, period_label, objective_name, key_result_name, progress_percent, is_active, created_at
		FROM employee_objectives
		WHERE employee_id = $1 AND is_active = TRUE
		ORDER BY created_at DESC
		LIMIT $2
	`

	rows, err := q.Query(ctx, query, employeeID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list objectives: %w", err)
	}
	defer rows.Close()

	var objectives []performance.Objective
	for rows.Next() {
		var o performance.Objective
		err := rows.Scan(&o.ID, &o.EmployeeID, &o.PeriodLabel, &o.ObjectiveName, &o.KeyResultName,
			&o.ProgressPercent, &o.IsActive, &o.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan objective: %w", err)
		}
		objectives = append(objectives, o)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return objectives, nil
}

// ========== WEEKLY SUMMARIES ==========

const summaryColumns = `id, employee_id, week_start, week_end, progress_percent, activities_done, total_activities, created_at`

func scanSummary(row pgx.Row) (performance.WeeklySummary, error) {
	var s performance.WeeklySummary
	err := row.Scan(&s.ID, &s.EmployeeID, &s.WeekStart, &s.WeekEnd, &s.ProgressPercent,
		&s.ActivitiesDone, &s.TotalActivities, &s.CreatedAt)
	return s, err
}

func (r *performanceRepositoryImpl) CreateSummary(ctx context.Context, s performance.WeeklySummary) (performance.WeeklySummary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO weekly_summaries (employee_id, week_start, week_end, progress_percent)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + summaryColumns

	created, err := scanSummary(q.QueryRow(ctx, query, s.EmployeeID, s.WeekStart, s.WeekEnd, s.ProgressPercent))
	if err != nil {
		return performance.WeeklySummary{}, fmt.Errorf("failed to create weekly summary: %w", err)
	}
	return created, nil
}

func (r *performanceRepositoryImpl) GetSummary(ctx context.Context, id string) (performance.WeeklySummary, error) {
	q := GetQuerier(ctx, r.db)

	s, err := scanSummary(q.QueryRow(ctx, "SELECT "+summaryColumns+" FROM weekly_summaries WHERE id = $1", id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return performance.WeeklySummary{}, performance.ErrSummaryNotFound
		}
		return performance.WeeklySummary{}, fmt.Errorf("failed to get weekly summary: %w", err)
	}
	return s, nil
}

// GetLatestSummary returns nil when the employee has no summary yet.
func (r *performanceRepositoryImpl) GetLatestSummary(ctx context.Context, employeeID string) (*performance.WeeklySummary, error) {
	q := GetQuerier(ctx, r.db)

	query := "SELECT " + summaryColumns + `
		FROM weekly_summaries
		WHERE employee_id = $1
		ORDER BY week_start DESC, created_at DESC
		LIMIT 1
	`

	s, err := scanSummary(q.QueryRow(ctx, query, employeeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get latest weekly summary: %w", err)
	}
	return &s, nil
}

func (r *performanceRepositoryImpl) RefreshSummaryCounts(ctx context.Context, summaryID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE weekly_summaries ws
		SET activities_done = c.done, total_activities = c.total
		FROM (
			SELECT COUNT(*) FILTER (WHERE is_done) AS done, COUNT(*) AS total
			FROM weekly_activities
			WHERE summary_id = $1
		) c
		WHERE ws.id = $1
	`

	tag, err := q.Exec(ctx, query, summaryID)
	if err != nil {
		return fmt.Errorf("failed to refresh weekly summary counts: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return performance.ErrSummaryNotFound
	}
	return nil
}

// ========== WEEKLY ACTIVITIES ==========

func (r *performanceRepositoryImpl) CreateActivity(ctx context.Context, a performance.WeeklyActivity) (performance.WeeklyActivity, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO weekly_activities (summary_id, description, is_done)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	created := a
	if err := q.QueryRow(ctx, query, a.SummaryID, a.Description, a.IsDone).Scan(&created.ID); err != nil {
		return performance.WeeklyActivity{}, fmt.Errorf("failed to create weekly activity: %w", err)
	}
	return created, nil
}

func (r *performanceRepositoryImpl) GetActivity(ctx context.Context, id string) (performance.WeeklyActivity, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.id, a.summary_id, a.description, a.is_done, s.week_end
		FROM weekly_activities a
		JOIN weekly_summaries s ON s.id = a.summary_id
		WHERE a.id = $1
	`

	var a performance.WeeklyActivity
	err := q.QueryRow(ctx, query, id).Scan(&a.ID, &a.SummaryID, &a.Description, &a.IsDone, &a.WeekEnd)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return performance.WeeklyActivity{}, performance.ErrActivityNotFound
		}
		return performance.WeeklyActivity{}, fmt.Errorf("failed to get weekly activity: %w", err)
	}
	return a, nil
}

func (r *performanceRepositoryImpl) SetActivityDone(ctx context.Context, id string, done bool) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE weekly_activities SET is_done = $1 WHERE id = $2`, done, id)
	if err != nil {
		return fmt.Errorf("failed to update weekly activity: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return performance.ErrActivityNotFound
	}
	return nil
}

func (r *performanceRepositoryImpl) listActivities(ctx context.Context, where string, arg interface{}, order string) ([]performance.WeeklyActivity, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.id, a.summary_id, a.description, a.is_done, s.week_end
		FROM weekly_activities a
		JOIN weekly_summaries s ON s.id = a.summary_id
		WHERE ` + where + `
		ORDER BY ` + order

	rows, err := q.Query(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("failed to list weekly activities: %w", err)
	}
	defer rows.Close()

	var activities []performance.WeeklyActivity
	for rows.Next() {
		var a performance.WeeklyActivity
		if err := rows.Scan(&a.ID, &a.SummaryID, &a.Description, &a.IsDone, &a.WeekEnd); err != nil {
			return nil, fmt.Errorf("failed to scan weekly activity: %w", err)
		}
		activities = append(activities, a)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return activities, nil
}

func (r *performanceRepositoryImpl) ListActivities(ctx context.Context, summaryID string) ([]performance.WeeklyActivity, error) {
	return r.listActivities(ctx, "a.summary_id = $1", summaryID, "a.created_at ASC, a.id ASC")
}

func (r *performanceRepositoryImpl) ListPendingActivities(ctx context.Context, employeeID string) ([]performance.WeeklyActivity, error) {
	return r.listActivities(ctx, "s.employee_id = $1 AND a.is_done = FALSE", employeeID, "s.week_end ASC, a.id ASC")
}
